// Package report renders suite run results as JSON, HTML,
// plain text and Markdown summaries.
package report

import (
	"io"

	"digital.vasic.fluent/pkg/runner"
)

// Reporter defines the interface for generating suite reports.
type Reporter interface {
	// GenerateReport creates a report for a single suite
	// result.
	GenerateReport(result *runner.SuiteResult) ([]byte, error)

	// GenerateMasterSummary creates a summary of all suite
	// results.
	GenerateMasterSummary(
		results []*runner.SuiteResult,
	) ([]byte, error)

	// WriteReport writes a report to the specified writer.
	WriteReport(w io.Writer, result *runner.SuiteResult) error
}

// checkLabel identifies a check in human-readable output.
func checkLabel(id, kind, typ string) string {
	return id + " (" + kind + "." + typ + ")"
}

// totals counts suites and checks across results.
type totals struct {
	suites, passedSuites   int
	checks, passed, failed int
	errored, skipped       int
}

func count(results []*runner.SuiteResult) totals {
	var t totals
	for _, r := range results {
		t.suites++
		if r.OK() {
			t.passedSuites++
		}
		t.checks += r.Total()
		t.passed += r.Passed
		t.failed += r.Failed
		t.errored += r.Errored
		t.skipped += r.Skipped
	}
	return t
}
