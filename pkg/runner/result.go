package runner

import (
	"time"

	"digital.vasic.fluent/pkg/engine"
)

// Suite run statuses.
const (
	StatusPassed    = "passed"
	StatusFailed    = "failed"
	StatusError     = "error"
	StatusTimedOut  = "timed_out"
	StatusCancelled = "cancelled"
)

// SuiteResult is the outcome of running one suite.
type SuiteResult struct {
	Suite     string          `json:"suite"`
	Source    string          `json:"source,omitempty"`
	Status    string          `json:"status"`
	Results   []engine.Result `json:"results"`
	Passed    int             `json:"passed"`
	Failed    int             `json:"failed"`
	Errored   int             `json:"errored"`
	Skipped   int             `json:"skipped"`
	Error     string          `json:"error,omitempty"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	Duration  time.Duration   `json:"duration_ns"`
}

// Total is the number of checks that were evaluated.
func (r *SuiteResult) Total() int {
	return r.Passed + r.Failed + r.Errored
}

// OK reports whether the suite passed.
func (r *SuiteResult) OK() bool {
	return r.Status == StatusPassed
}

// Failures returns the results that did not pass.
func (r *SuiteResult) Failures() []engine.Result {
	var out []engine.Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

func (r *SuiteResult) add(res engine.Result) {
	r.Results = append(r.Results, res)
	switch {
	case res.Error != "":
		r.Errored++
	case res.Passed:
		r.Passed++
	default:
		r.Failed++
	}
}

// settle derives the status from the counters unless an
// earlier stage already decided it.
func (r *SuiteResult) settle() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	if r.Status != "" {
		return
	}
	switch {
	case r.Errored > 0:
		r.Status = StatusError
	case r.Failed > 0:
		r.Status = StatusFailed
	default:
		r.Status = StatusPassed
	}
}
