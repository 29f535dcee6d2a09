package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devicelab-dev/workflow-report/pkg/config"
	"github.com/urfave/cli/v2"
)

func TestResolvePathsDefaults(t *testing.T) {
	p := resolvePaths("test-results/emulator", "", &config.Config{})

	if p.Report != filepath.Join("test-results/emulator", "report.json") {
		t.Errorf("Report = %q", p.Report)
	}
	if p.Frames != filepath.Join("test-results/emulator", "frames") {
		t.Errorf("Frames = %q", p.Frames)
	}
	if p.Recording != filepath.Join("test-results/emulator", "recording.mp4") {
		t.Errorf("Recording = %q", p.Recording)
	}
	if p.Output != filepath.Join("test-results/emulator", "workflow-report.html") {
		t.Errorf("Output = %q", p.Output)
	}
}

func TestResolvePathsConfigOverrides(t *testing.T) {
	cfg := &config.Config{
		Frames:    "captured/frames",
		Recording: "captured/run.mp4",
		Output:    "captured/report.html",
	}

	p := resolvePaths("baseline", "", cfg)

	if p.Frames != "captured/frames" {
		t.Errorf("Frames = %q", p.Frames)
	}
	if p.Recording != "captured/run.mp4" {
		t.Errorf("Recording = %q", p.Recording)
	}
	if p.Output != "captured/report.html" {
		t.Errorf("Output = %q", p.Output)
	}
	// The report itself always lives in the baseline.
	if p.Report != filepath.Join("baseline", "report.json") {
		t.Errorf("Report = %q", p.Report)
	}
}

func TestResolvePathsFlagBeatsConfig(t *testing.T) {
	cfg := &config.Config{Output: "from-config.html"}

	p := resolvePaths("baseline", "from-flag.html", cfg)
	if p.Output != "from-flag.html" {
		t.Errorf("Output = %q, want flag value", p.Output)
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	baseline := t.TempDir()

	reportJSON := `{
  "stats": {"startTime": "2024-03-01T10:00:00.000Z", "duration": 42000},
  "suites": [
    {
      "title": "emulator.spec.ts",
      "specs": [
        {
          "title": "Explore workflow clear SSH login",
          "tests": [
            {"projectName": "chromium", "results": [{"status": "passed", "duration": 42000}]}
          ]
        }
      ]
    }
  ]
}`
	if err := os.WriteFile(filepath.Join(baseline, "report.json"), []byte(reportJSON), 0o644); err != nil {
		t.Fatalf("write report: %v", err)
	}

	framesDir := filepath.Join(baseline, "frames")
	if err := os.MkdirAll(framesDir, 0o755); err != nil {
		t.Fatalf("create frames dir: %v", err)
	}
	frameName := "explore-workflow-clear-ssh-login-session-0-before.png"
	if err := os.WriteFile(filepath.Join(framesDir, frameName), []byte("png"), 0o644); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	app := &cli.App{
		Flags:    GlobalFlags,
		Commands: []*cli.Command{generateCommand},
	}
	if err := app.Run([]string{"workflow-report", "--baseline", baseline, "generate"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(baseline, "workflow-report.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(content)

	checks := []string{
		"Explore workflow clear SSH login",
		"PASSED",
		"Video Frames",
		"Generated 2024-03-01 10:00:00 UTC",
	}
	for _, check := range checks {
		if !strings.Contains(html, check) {
			t.Errorf("HTML missing expected content: %s", check)
		}
	}
}

func TestGenerateMissingReport(t *testing.T) {
	app := &cli.App{
		Flags:    GlobalFlags,
		Commands: []*cli.Command{generateCommand},
	}
	err := app.Run([]string{"workflow-report", "--baseline", t.TempDir(), "generate"})
	if err == nil {
		t.Fatal("expected error for missing report.json")
	}
	if !strings.Contains(err.Error(), "run the emulator tests first") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestConvertNarratives(t *testing.T) {
	in := []config.Narrative{
		{Match: "a", Text: "first"},
		{Match: "b", Text: "second"},
	}

	out := convertNarratives(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 narratives, got %d", len(out))
	}
	if out[0].Match != "a" || out[0].Text != "first" {
		t.Errorf("out[0] = %+v", out[0])
	}
	if out[1].Match != "b" || out[1].Text != "second" {
		t.Errorf("out[1] = %+v", out[1])
	}
}
