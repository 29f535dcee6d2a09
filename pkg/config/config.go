// Package config handles optional workspace configuration for workflow-report.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Narrative maps a step-name substring to the caption rendered under
// matching step screenshots.
type Narrative struct {
	Match string `yaml:"match"`
	Text  string `yaml:"text"`
}

// Config represents the baseline configuration (config.yaml).
// Every field is optional; flags take precedence over config values.
type Config struct {
	Title     string `yaml:"title"`     // Report title
	Output    string `yaml:"output"`    // Output HTML path
	Frames    string `yaml:"frames"`    // Frames directory
	Recording string `yaml:"recording"` // Recording file path

	// Extra step narratives, checked before the built-in table.
	Narratives []Narrative `yaml:"narratives"`
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}
