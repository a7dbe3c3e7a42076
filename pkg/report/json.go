package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/runner"
)

// JSONReporter generates JSON reports from suite results.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

func (r *JSONReporter) marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if r.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	return data, errors.Wrap(err, "marshal report")
}

// GenerateReport creates a JSON report for a single suite
// result.
func (r *JSONReporter) GenerateReport(
	result *runner.SuiteResult,
) ([]byte, error) {
	return r.marshal(result)
}

// jsonMasterSummary is the JSON structure for a master summary.
type jsonMasterSummary struct {
	GeneratedAt   time.Time             `json:"generated_at"`
	TotalSuites   int                   `json:"total_suites"`
	PassedSuites  int                   `json:"passed_suites"`
	FailedSuites  int                   `json:"failed_suites"`
	TotalChecks   int                   `json:"total_checks"`
	PassedChecks  int                   `json:"passed_checks"`
	FailedChecks  int                   `json:"failed_checks"`
	ErroredChecks int                   `json:"errored_checks"`
	SkippedChecks int                   `json:"skipped_checks"`
	TotalDuration time.Duration         `json:"total_duration_ns"`
	Results       []*runner.SuiteResult `json:"results"`
}

// GenerateMasterSummary creates a JSON summary of all suite
// results.
func (r *JSONReporter) GenerateMasterSummary(
	results []*runner.SuiteResult,
) ([]byte, error) {
	t := count(results)
	summary := jsonMasterSummary{
		GeneratedAt:   time.Now(),
		TotalSuites:   t.suites,
		PassedSuites:  t.passedSuites,
		FailedSuites:  t.suites - t.passedSuites,
		TotalChecks:   t.checks,
		PassedChecks:  t.passed,
		FailedChecks:  t.failed,
		ErroredChecks: t.errored,
		SkippedChecks: t.skipped,
		Results:       results,
	}
	for _, res := range results {
		summary.TotalDuration += res.Duration
	}
	return r.marshal(summary)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	result *runner.SuiteResult,
) error {
	data, err := r.GenerateReport(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
