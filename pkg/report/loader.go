package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the run report at path. A missing file surfaces as
// an error wrapping fs.ErrNotExist so the caller can distinguish it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}

	return &doc, nil
}

// Collect flattens the nested suite tree into a depth-first ordered list of
// leaf results. A suite's own specs come before its nested suites.
func Collect(doc *Document) []TestResult {
	var results []TestResult
	collectSuites(doc.Suites, &results)
	return results
}

func collectSuites(suites []Suite, out *[]TestResult) {
	for _, suite := range suites {
		for _, spec := range suite.Specs {
			for _, test := range spec.Tests {
				for _, res := range test.Results {
					*out = append(*out, TestResult{
						Suite:       suite.Title,
						Title:       spec.Title,
						Project:     test.ProjectName,
						Status:      Status(res.Status),
						Duration:    res.Duration,
						StartTime:   res.StartTime,
						Error:       res.Error.Message,
						Attachments: res.Attachments,
					})
				}
			}
		}
		collectSuites(suite.Suites, out)
	}
}
