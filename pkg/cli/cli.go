// Package cli provides the command-line interface for workflow-report.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "baseline",
		Aliases: []string{"b"},
		Usage:   "Path to the test results directory",
		Value:   "test-results/emulator",
		EnvVars: []string{"WORKFLOW_REPORT_BASELINE"},
	},
	&cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output HTML path (default: <baseline>/workflow-report.html)",
	},
	&cli.StringFlag{
		Name:  "config",
		Usage: "Path to config.yaml (default: looked up in the baseline directory)",
	},
	&cli.BoolFlag{
		Name:  "open",
		Usage: "Open the report in the system viewer after generating",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"WORKFLOW_REPORT_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "workflow-report",
		Usage:   "Generate a narrative HTML report from emulator test results",
		Version: Version,
		Description: `Workflow-report reads the JSON run report produced by the emulator
tests, embeds step screenshots and extracted video frames, and writes a
single self-contained HTML document linking to the full recording.

Examples:
  workflow-report generate
  workflow-report generate --open
  workflow-report generate --baseline tests/emulator/baseline`,
		Flags:    GlobalFlags,
		Commands: []*cli.Command{generateCommand},
		// Bare invocation behaves like "generate".
		Action: generateAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
