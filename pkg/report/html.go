package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devicelab-dev/workflow-report/pkg/frames"
)

// errorLimit caps rendered error messages; longer messages get an ellipsis.
const errorLimit = 500

// HTMLConfig contains configuration for HTML report generation.
type HTMLConfig struct {
	OutputPath string      // Path to write the HTML file
	Title      string      // Report title (default: "Workflow Exploration Report")
	VideoPath  string      // Recording file; linked only when it exists on disk
	StartTime  string      // ISO-8601 run start from the report stats
	DurationMs float64     // Total run duration in milliseconds
	Narratives []Narrative // Extra step narratives, checked before built-ins
}

// GenerateHTML renders the flattened results and frame groups into one
// self-contained HTML document and writes it to cfg.OutputPath, creating
// parent directories as needed.
func GenerateHTML(results []TestResult, groups *frames.Groups, cfg HTMLConfig) error {
	if cfg.Title == "" {
		cfg.Title = "Workflow Exploration Report"
	}

	data := buildHTMLData(results, groups, cfg)

	html, err := renderHTML(data)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(cfg.OutputPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	return nil
}

// htmlData contains all data needed for the HTML template.
type htmlData struct {
	Title       string
	GeneratedAt string
	Duration    string
	Total       int
	Passed      int
	Failed      int
	Tests       []testSection
	VideoRel    string
}

// testSection is one per-test block formatted for HTML.
type testSection struct {
	Title      string
	Badge      string
	BadgeClass string
	Duration   string
	Error      string
	Steps      []stepSection
	Frames     []frameThumb
	HasContent bool
}

// stepSection is one attachment rendered inside a test section. Image and
// Text are mutually exclusive.
type stepSection struct {
	Label     string
	Narrative string
	Image     template.URL
	Text      string
}

// frameThumb is one recording frame thumbnail.
type frameThumb struct {
	Label string
	Src   template.URL
	Alt   string
}

// statusClass maps the closed status set to badge CSS classes. Unknown
// statuses fall through to an unstyled badge with the status uppercased.
var statusClass = map[Status]string{
	StatusPassed:  "pass",
	StatusFailed:  "fail",
	StatusSkipped: "skip",
}

func buildHTMLData(results []TestResult, groups *frames.Groups, cfg HTMLConfig) htmlData {
	var passed, failed int
	for _, t := range results {
		switch t.Status {
		case StatusPassed:
			passed++
		case StatusFailed:
			failed++
		}
	}

	tests := make([]testSection, len(results))
	for i, t := range results {
		tests[i] = buildTestSection(t, groups, cfg.Narratives)
	}

	return htmlData{
		Title:       cfg.Title,
		GeneratedAt: formatTimestamp(cfg.StartTime),
		Duration:    formatDuration(cfg.DurationMs),
		Total:       len(results),
		Passed:      passed,
		Failed:      failed,
		Tests:       tests,
		VideoRel:    videoRelPath(cfg.VideoPath, cfg.OutputPath),
	}
}

func buildTestSection(t TestResult, groups *frames.Groups, extra []Narrative) testSection {
	sec := testSection{
		Title:      t.Title,
		Badge:      strings.ToUpper(string(t.Status)),
		BadgeClass: statusClass[t.Status],
		Duration:   formatDuration(t.Duration),
		Error:      truncateError(t.Error),
	}

	for _, att := range t.Attachments {
		// The run-level screenshot and trace duplicate the step captures.
		if att.Name == "screenshot" || att.Name == "trace" {
			continue
		}

		switch {
		case strings.HasPrefix(att.ContentType, "image/"):
			src := imageDataURI(att)
			if src == "" {
				continue
			}
			sec.Steps = append(sec.Steps, stepSection{
				Label:     att.Name,
				Narrative: narrativeFor(att.Name, extra),
				Image:     template.URL(src),
			})
		case att.ContentType == "text/plain":
			text := attachmentText(att)
			if text == "" {
				continue
			}
			sec.Steps = append(sec.Steps, stepSection{
				Label: att.Name,
				Text:  text,
			})
		}
	}

	if key := frames.Match(t.Title, groups); key != "" {
		for _, fr := range groups.Get(key) {
			sec.Frames = append(sec.Frames, frameThumb{
				Label: humanizeLabel(fr.Label),
				Src:   template.URL("data:image/png;base64," + fr.B64),
				Alt:   fr.Filename,
			})
		}
	}

	sec.HasContent = sec.Error != "" || len(sec.Steps) > 0 || len(sec.Frames) > 0
	return sec
}

// imageDataURI resolves an image attachment to a data URI. Inline bodies are
// already base64; path contents are encoded on the fly. Returns "" when the
// attachment cannot be resolved.
func imageDataURI(att Attachment) string {
	if att.Body != "" {
		return fmt.Sprintf("data:%s;base64,%s", att.ContentType, att.Body)
	}
	if att.Path != "" {
		data, err := os.ReadFile(att.Path)
		if err == nil {
			return fmt.Sprintf("data:%s;base64,%s", att.ContentType, base64.StdEncoding.EncodeToString(data))
		}
	}
	return ""
}

// attachmentText resolves a text attachment. Inline bodies are base64; on
// decode failure the raw body is kept as-is.
func attachmentText(att Attachment) string {
	if att.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(att.Body)
		if err != nil {
			return att.Body
		}
		return string(decoded)
	}
	if att.Path != "" {
		data, err := os.ReadFile(att.Path)
		if err == nil {
			return string(data)
		}
	}
	return ""
}

// truncateError caps the message at errorLimit characters, counting runes
// so multibyte messages are never cut mid-character.
func truncateError(msg string) string {
	runes := []rune(msg)
	if len(runes) > errorLimit {
		return string(runes[:errorLimit]) + "..."
	}
	return msg
}

// humanizeLabel turns a frame label token into display text.
func humanizeLabel(label string) string {
	s := strings.ReplaceAll(label, "-", " ")
	return strings.ReplaceAll(s, "end ", "end: ")
}

// formatTimestamp renders an ISO-8601 timestamp for the header, falling
// back to the raw string when it does not parse.
func formatTimestamp(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

func formatDuration(ms float64) string {
	s := ms / 1000
	if s < 60 {
		return fmt.Sprintf("%.1fs", s)
	}
	m := int(s / 60)
	return fmt.Sprintf("%dm %.0fs", m, math.Mod(s, 60))
}

// videoRelPath returns the recording path relative to the output file's
// directory, or "" when the recording is absent.
func videoRelPath(videoPath, outputPath string) string {
	if videoPath == "" {
		return ""
	}
	if _, err := os.Stat(videoPath); err != nil {
		return ""
	}
	rel, err := filepath.Rel(filepath.Dir(outputPath), videoPath)
	if err != nil {
		return ""
	}
	return filepath.ToSlash(rel)
}

func renderHTML(data htmlData) (string, error) {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: #0d1117; color: #c9d1d9; line-height: 1.5; padding: 20px; max-width: 1200px; margin: 0 auto; }
h1 { color: #f0f6fc; margin-bottom: 4px; font-size: 1.5rem; }
h2 { color: #f0f6fc; margin: 24px 0 12px; font-size: 1.2rem; }
h3 { color: #e6edf3; margin: 16px 0 8px; font-size: 1rem; }
.summary { display: flex; gap: 16px; flex-wrap: wrap; margin: 12px 0 24px; }
.summary .stat { background: #161b22; border: 1px solid #30363d; border-radius: 6px; padding: 8px 16px; }
.summary .stat .label { font-size: 0.75rem; color: #8b949e; text-transform: uppercase; }
.summary .stat .value { font-size: 1.25rem; font-weight: 600; }
.summary .stat .value.pass { color: #3fb950; }
.summary .stat .value.fail { color: #f85149; }
.badge { display: inline-block; padding: 2px 8px; border-radius: 12px; font-size: 0.75rem;
  font-weight: 600; text-transform: uppercase; }
.badge.pass { background: #1a3a2a; color: #3fb950; }
.badge.fail { background: #3a1a1a; color: #f85149; }
.badge.skip { background: #2a2a1a; color: #d29922; }
.test-section { background: #161b22; border: 1px solid #30363d; border-radius: 8px;
  margin-bottom: 20px; overflow: hidden; }
.test-header { padding: 12px 16px; border-bottom: 1px solid #30363d;
  display: flex; justify-content: space-between; align-items: center; flex-wrap: wrap; gap: 8px; }
.test-header .title { font-weight: 600; color: #f0f6fc; }
.test-header .meta { font-size: 0.8rem; color: #8b949e; }
.test-body { padding: 16px; }
.error-box { background: #2d1117; border: 1px solid #f8514966; border-radius: 6px;
  padding: 10px 14px; margin: 8px 0 16px; font-family: monospace; font-size: 0.8rem;
  color: #f85149; white-space: pre-wrap; word-break: break-word; max-height: 200px; overflow-y: auto; }
.step { margin: 12px 0; }
.step-label { font-size: 0.85rem; color: #8b949e; margin-bottom: 4px; }
.step img { max-width: 360px; border-radius: 6px; border: 1px solid #30363d; cursor: pointer;
  transition: max-width 0.2s; }
.step img:hover { max-width: 100%; }
.step img.wide { max-width: 100%; }
.step-text { background: #0d1117; border: 1px solid #30363d; border-radius: 6px;
  padding: 10px 14px; font-family: monospace; font-size: 0.8rem; white-space: pre-wrap; }
.frames-section { margin-top: 20px; border-top: 1px solid #30363d; padding-top: 16px; }
.frames-grid { display: flex; flex-wrap: wrap; gap: 12px; }
.frame { text-align: center; }
.frame img { max-width: 240px; border-radius: 4px; border: 1px solid #30363d; cursor: pointer;
  transition: max-width 0.2s; }
.frame img:hover { max-width: 480px; }
.frame img.wide { max-width: 100%; }
.frame .frame-label { font-size: 0.7rem; color: #8b949e; margin-top: 4px; }
.video-section { background: #161b22; border: 1px solid #30363d; border-radius: 8px;
  padding: 16px; margin-top: 20px; }
.video-section video { border-radius: 6px; display: block; margin: 8px 0; }
.video-link { margin-top: 8px; }
.video-link a { color: #58a6ff; text-decoration: none; }
.video-link a:hover { text-decoration: underline; }
a { color: #58a6ff; }
.narrative { color: #8b949e; font-style: italic; margin: 4px 0; font-size: 0.85rem; }
.timestamp { color: #484f58; font-size: 0.75rem; }
</style>
</head>
<body>

<h1>{{.Title}}</h1>
<p class="timestamp">Generated {{.GeneratedAt}} / Total duration: {{.Duration}}</p>

<div class="summary">
  <div class="stat"><div class="label">Total</div><div class="value">{{.Total}}</div></div>
  <div class="stat"><div class="label">Passed</div><div class="value pass">{{.Passed}}</div></div>
  <div class="stat"><div class="label">Failed</div><div class="value fail">{{.Failed}}</div></div>
</div>

{{range .Tests}}
<section class="test-section">
  <div class="test-header">
    <div>
      <span class="title">{{.Title}}</span>
      <span class="meta">{{.Duration}}</span>
    </div>
    <span class="badge {{.BadgeClass}}">{{.Badge}}</span>
  </div>
  <div class="test-body">
    {{if .Error}}<div class="error-box">{{.Error}}</div>{{end}}
    {{range .Steps}}
    <div class="step">
      <div class="step-label">{{.Label}}</div>
      {{if .Narrative}}<div class="narrative">{{.Narrative}}</div>{{end}}
      {{if .Image}}<img src="{{.Image}}" alt="{{.Label}}" loading="lazy">{{end}}
      {{if .Text}}<div class="step-text">{{.Text}}</div>{{end}}
    </div>
    {{end}}
    {{if .Frames}}
    <div class="frames-section">
      <h3>Video Frames</h3>
      <div class="narrative">Extracted from screen recording at key moments during test execution</div>
      <div class="frames-grid">
        {{range .Frames}}
        <div class="frame">
          <img src="{{.Src}}" alt="{{.Alt}}" loading="lazy">
          <div class="frame-label">{{.Label}}</div>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
    {{if not .HasContent}}<p class="narrative">No step data captured</p>{{end}}
  </div>
</section>
{{end}}

{{if .VideoRel}}
<section class="video-section">
  <h2>Full Recording</h2>
  <video controls width="360" preload="metadata">
    <source src="{{.VideoRel}}" type="video/mp4">
    Your browser does not support video playback.
  </video>
  <p class="video-link"><a href="{{.VideoRel}}" download>Download recording</a></p>
</section>
{{end}}

<script>
// Toggle image size on click
document.querySelectorAll('.step img, .frame img').forEach(img => {
  img.addEventListener('click', () => img.classList.toggle('wide'));
});
</script>

</body>
</html>
`
