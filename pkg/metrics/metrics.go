// Package metrics records assertion and suite outcomes.
package metrics

import "time"

// Recorder defines the interface for recording assertion metrics.
type Recorder interface {
	// RecordAssertion records one evaluated check.
	RecordAssertion(kind, operation string, passed bool)
	// RecordSuite records a finished suite run.
	RecordSuite(name string, passed, failed int, duration time.Duration)
	// SetActiveSuites sets the gauge of suites being run.
	SetActiveSuites(count int)
}

// NoopRecorder is a no-op implementation of Recorder useful for
// testing or when metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordAssertion(_, _ string, _ bool)             {}
func (NoopRecorder) RecordSuite(_ string, _, _ int, _ time.Duration) {}
func (NoopRecorder) SetActiveSuites(_ int)                           {}

// Result returns the label value used for an outcome.
func Result(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}
