package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/devicelab-dev/workflow-report/pkg/config"
	"github.com/devicelab-dev/workflow-report/pkg/frames"
	"github.com/devicelab-dev/workflow-report/pkg/logger"
	"github.com/devicelab-dev/workflow-report/pkg/report"
	"github.com/urfave/cli/v2"
)

var generateCommand = &cli.Command{
	Name:  "generate",
	Usage: "Render the workflow report HTML document",
	Description: `Read <baseline>/report.json and <baseline>/frames/, match frame groups
to test titles, and write one self-contained HTML document. Only a missing
report.json is fatal; every optional asset is skipped on failure.`,
	Action: generateAction,
}

// reportPaths holds the resolved input and output locations for a run.
type reportPaths struct {
	Report    string
	Frames    string
	Recording string
	Output    string
}

// resolvePaths applies precedence: flag > config > baseline default.
func resolvePaths(baseline, outputFlag string, cfg *config.Config) reportPaths {
	p := reportPaths{
		Report:    filepath.Join(baseline, "report.json"),
		Frames:    filepath.Join(baseline, "frames"),
		Recording: filepath.Join(baseline, "recording.mp4"),
		Output:    filepath.Join(baseline, "workflow-report.html"),
	}

	if cfg.Frames != "" {
		p.Frames = cfg.Frames
	}
	if cfg.Recording != "" {
		p.Recording = cfg.Recording
	}
	if cfg.Output != "" {
		p.Output = cfg.Output
	}
	if outputFlag != "" {
		p.Output = outputFlag
	}

	return p
}

func generateAction(c *cli.Context) error {
	if c.Bool("verbose") {
		logger.Init(os.Stderr)
	}

	baseline := c.String("baseline")

	cfg, err := loadConfig(c.String("config"), baseline)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	paths := resolvePaths(baseline, c.String("output"), cfg)

	doc, err := report.Load(paths.Report)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s not found, run the emulator tests first", paths.Report)
		}
		return err
	}

	results := report.Collect(doc)
	logger.Info("collected %d test results", len(results))

	groups, err := frames.Collect(paths.Frames)
	if err != nil {
		logger.Warn("scan frames: %v", err)
		groups = &frames.Groups{}
	}
	logger.Info("grouped frames into %d groups", groups.Len())

	if err := report.GenerateHTML(results, groups, report.HTMLConfig{
		OutputPath: paths.Output,
		Title:      cfg.Title,
		VideoPath:  paths.Recording,
		StartTime:  doc.Stats.StartTime,
		DurationMs: doc.Stats.Duration,
		Narratives: convertNarratives(cfg.Narratives),
	}); err != nil {
		return err
	}

	fmt.Printf("Report: %s\n", paths.Output)

	if c.Bool("open") {
		openInViewer(paths.Output)
	}

	return nil
}

// loadConfig loads an explicit config file, or probes the baseline
// directory. An absent config is not an error.
func loadConfig(path, baseline string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromDir(baseline)
}

// convertNarratives converts config narratives to report narratives.
func convertNarratives(in []config.Narrative) []report.Narrative {
	out := make([]report.Narrative, 0, len(in))
	for _, n := range in {
		out = append(out, report.Narrative{Match: n.Match, Text: n.Text})
	}
	return out
}

// openInViewer launches the system default viewer, best effort.
func openInViewer(path string) {
	name := "xdg-open"
	if runtime.GOOS == "darwin" {
		name = "open"
	}
	if err := exec.Command(name, path).Start(); err != nil {
		logger.Warn("open viewer: %v", err)
	}
}
