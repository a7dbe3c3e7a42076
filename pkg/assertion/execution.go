// Package assertion is the evaluation core shared by every
// assertion surface. An Execution evaluates one condition and, only
// when it does not hold, renders a message template and raises it
// through the failure channel.
package assertion

import (
	"strconv"

	"digital.vasic.fluent/pkg/reason"
	"digital.vasic.fluent/pkg/render"
)

// T is the subset of testing.TB used to report failures. Fatal
// must not return; when it does, the failure is raised as a panic
// so that a failing assertion never yields a continuation.
type T interface {
	Helper()
	Fatal(args ...any)
}

// Execution evaluates a single assertion about a named subject.
type Execution struct {
	t      T
	name   string
	reason reason.Reason
	ok     bool
}

// New starts an execution reporting to t under the subject name.
// A nil t raises failures by panicking with *Failure.
func New(t T, name string) *Execution {
	return &Execution{t: t, name: name, ok: true}
}

// BecauseOf attaches the optional reason. It is rendered only if
// the execution fails.
func (e *Execution) BecauseOf(format string, args ...any) *Execution {
	e.reason = reason.New(format, args...)
	return e
}

// ForCondition records the outcome of the predicate.
func (e *Execution) ForCondition(ok bool) *Execution {
	e.ok = ok
	return e
}

// Succeeded reports the recorded outcome.
func (e *Execution) Succeeded() bool {
	return e.ok
}

// FailWith raises a failure built from template when the
// condition does not hold, and does nothing otherwise.
//
// The template understands {subjectName}, {reason} and positional
// {0}..{n} placeholders; positional arguments are rendered with
// render.Value.
func (e *Execution) FailWith(template string, args ...any) {
	if e.ok {
		return
	}
	if e.t != nil {
		e.t.Helper()
	}
	e.Fail(e.Message(template, args...))
}

// Message renders template for this execution's subject and
// reason without evaluating anything.
func (e *Execution) Message(template string, args ...any) string {
	return reason.Expand(template, func(key string) (string, bool) {
		switch key {
		case "subjectName":
			return e.name, true
		case "reason":
			return e.reason.Render(), true
		}
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(args) {
			return "", false
		}
		return render.Value(args[idx]), true
	})
}

// Fail raises message unconditionally.
func (e *Execution) Fail(message string) {
	f := &Failure{Message: message}
	if e.t != nil {
		e.t.Helper()
		e.t.Fatal(message)
	}
	panic(f)
}
