// Package report loads Playwright-style JSON run reports and renders them
// as a single self-contained HTML document.
//
// The source document nests suites arbitrarily deep; the loader flattens it
// into a depth-first ordered list of leaf results. Rendering never fails on
// missing optional assets: unresolvable attachments are skipped and the
// document always completes once the report itself parsed.
package report

// Status represents a test execution status.
type Status string

// Status values from the source report. Anything else renders with the
// fallback badge.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Document is the top-level structure of report.json.
type Document struct {
	Stats  Stats   `json:"stats"`
	Suites []Suite `json:"suites"`
}

// Stats holds run-level metadata.
type Stats struct {
	StartTime string  `json:"startTime"` // ISO-8601
	Duration  float64 `json:"duration"`  // milliseconds
}

// Suite is one grouping level. Suites nest arbitrarily deep.
type Suite struct {
	Title  string  `json:"title"`
	Specs  []Spec  `json:"specs"`
	Suites []Suite `json:"suites"`
}

// Spec is a single test declaration within a suite.
type Spec struct {
	Title string `json:"title"`
	Tests []Test `json:"tests"`
}

// Test is one project/environment instantiation of a spec.
type Test struct {
	ProjectName string   `json:"projectName"`
	Results     []Result `json:"results"`
}

// Result is a single execution outcome.
type Result struct {
	Status      string       `json:"status"`
	Duration    float64      `json:"duration"` // milliseconds
	StartTime   string       `json:"startTime"`
	Error       ResultError  `json:"error"`
	Attachments []Attachment `json:"attachments"`
}

// ResultError carries the failure message, if any.
type ResultError struct {
	Message string `json:"message"`
}

// Attachment is one captured artifact on a result. Body carries inline
// base64 content, Path points at a file on disk; either may be empty.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
	Path        string `json:"path"`
}

// TestResult is one flattened leaf result, immutable once built.
type TestResult struct {
	Suite       string
	Title       string
	Project     string
	Status      Status
	Duration    float64 // milliseconds
	StartTime   string
	Error       string
	Attachments []Attachment
}
