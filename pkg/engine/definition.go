// Package engine evaluates declarative checks through the fluent
// assertion surfaces. A check names a kind ("string"), an
// operation ("start_with"), the value under test and the
// expectation, so suites can be written as data.
package engine

import "time"

// Definition describes a single check.
type Definition struct {
	// ID identifies the check in reports and logs.
	ID string `json:"id" yaml:"id"`

	// Kind selects the assertion surface, such as "string",
	// "numeric" or "datetime".
	Kind string `json:"kind" yaml:"kind"`

	// Type is the operation within the kind, such as
	// "start_with" or "be_on_or_after".
	Type string `json:"type" yaml:"type"`

	// Name overrides the subject name used in failure
	// messages.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Actual is the value under test. A missing value is a
	// null subject.
	Actual any `json:"actual" yaml:"actual"`

	// Expected is the single expected value of binary
	// operations.
	Expected any `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Values holds candidates for "be_one_of" and the bounds
	// of range operations.
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Precision is the tolerance of approximate comparisons or
	// the span of time-span operations.
	Precision any `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Because is the reason format appended to failures.
	Because string `json:"because,omitempty" yaml:"because,omitempty"`

	// BecauseArgs fill the {N} placeholders of Because.
	BecauseArgs []any `json:"because_args,omitempty" yaml:"because_args,omitempty"`

	// Suite is the name of the suite the check was loaded from.
	Suite string `json:"-" yaml:"-"`
}

// Key returns the registry key "kind.type".
func (d Definition) Key() string {
	return d.Kind + "." + d.Type
}

func (d Definition) because() []any {
	if d.Because == "" {
		return nil
	}
	return append([]any{d.Because}, d.BecauseArgs...)
}

// Result captures the outcome of evaluating a single check.
type Result struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`

	// Expected is the expectation of the check.
	Expected any `json:"expected,omitempty"`

	// Actual is the value that was checked.
	Actual any `json:"actual"`

	// Passed indicates whether the check held.
	Passed bool `json:"passed"`

	// Message is the rendered failure message. It is empty
	// for passing checks.
	Message string `json:"message,omitempty"`

	// Error is set when the definition could not be evaluated,
	// such as an unknown operation or an unconvertible value.
	Error string `json:"error,omitempty"`

	Duration time.Duration `json:"duration_ns"`
}
