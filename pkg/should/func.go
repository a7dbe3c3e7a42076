package should

import (
	"strings"
	"time"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/render"
	"digital.vasic.fluent/pkg/subject"
)

// FuncAssertions asserts on what happens when an action runs. Every
// assertion runs the action once more.
type FuncAssertions struct {
	core[func()]
}

// Func starts assertions on action. A nil action is missing.
func Func(t assertion.T, action func()) *FuncAssertions {
	s := subject.Of(action)
	if action == nil {
		s = subject.Nullable[func()](nil)
	}
	c := newCore(t, s, "action", "func()")
	c.show = func(func()) any { return render.Raw("func()") }
	return &FuncAssertions{c}
}

// Named returns the assertions reporting the action as name.
func (a *FuncAssertions) Named(name string) *FuncAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// outcome is what running an action produced.
type outcome struct {
	failure  *assertion.Failure
	panicked bool
	value    any
}

func (o outcome) describe() any {
	if o.failure != nil {
		return o.failure.Message
	}
	return o.value
}

func run(action func()) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			o.panicked = true
			o.value = r
			if f, ok := r.(*assertion.Failure); ok {
				o.failure = f
			}
		}
	}()
	action()
	return o
}

// Fail asserts that the action raises an assertion failure. The
// result asserts on that failure.
func (a *FuncAssertions) Fail(because ...any) *FailureAssertions {
	a.helper()
	action, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).FailWith("Expected {subjectName} to fail{reason}, but found <null>.")
		return nil
	}
	o := run(action)
	switch {
	case o.failure != nil:
		return &FailureAssertions{And: a, Which: o.failure}
	case o.panicked:
		e.ForCondition(false).
			FailWith("Expected {subjectName} to fail{reason}, but it panicked with {0}.", o.value)
	default:
		e.ForCondition(false).FailWith("Expected {subjectName} to fail{reason}, but it did not.")
	}
	return nil
}

// NotFail asserts that the action completes without raising an
// assertion failure. Other panics propagate.
func (a *FuncAssertions) NotFail(because ...any) assertion.AndConstraint[*FuncAssertions] {
	a.helper()
	action, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).FailWith("Did not expect {subjectName} to fail{reason}, but found <null>.")
		return assertion.And(a)
	}
	o := run(action)
	if o.panicked && o.failure == nil {
		panic(o.value)
	}
	e.ForCondition(o.failure == nil).
		FailWith("Did not expect {subjectName} to fail{reason}, but it failed with {0}.", o.describe())
	return assertion.And(a)
}

// Panic asserts that the action panics. Which holds the recovered
// value.
func (a *FuncAssertions) Panic(because ...any) assertion.AndWhichConstraint[*FuncAssertions, any] {
	a.helper()
	action, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).FailWith("Expected {subjectName} to panic{reason}, but found <null>.")
		return assertion.AndWhich[*FuncAssertions, any](a, nil, "panic")
	}
	o := run(action)
	e.ForCondition(o.panicked).FailWith("Expected {subjectName} to panic{reason}, but it did not.")
	return assertion.AndWhich(a, o.value, "panic")
}

// NotPanic asserts that the action returns normally.
func (a *FuncAssertions) NotPanic(because ...any) assertion.AndConstraint[*FuncAssertions] {
	a.helper()
	action, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).FailWith("Did not expect {subjectName} to panic{reason}, but found <null>.")
		return assertion.And(a)
	}
	o := run(action)
	e.ForCondition(!o.panicked).
		FailWith("Did not expect {subjectName} to panic{reason}, but it panicked with {0}.", o.describe())
	return assertion.And(a)
}

// CompleteWithin asserts that the action returns within limit. A
// panic inside the action is raised again on the caller's
// goroutine. An action that overruns keeps running in the
// background.
func (a *FuncAssertions) CompleteWithin(limit time.Duration, because ...any) assertion.AndConstraint[*FuncAssertions] {
	a.helper()
	action, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} to complete within {0}{reason}, but found <null>.", limit)
		return assertion.And(a)
	}

	done := make(chan outcome, 1)
	go func() { done <- run(action) }()

	timer := time.NewTimer(limit)
	defer timer.Stop()

	select {
	case o := <-done:
		if o.panicked {
			panic(o.value)
		}
	case <-timer.C:
		e.ForCondition(false).
			FailWith("Expected {subjectName} to complete within {0}{reason}, but it did not.", limit)
	}
	return assertion.And(a)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *FuncAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}

// FailureAssertions asserts on the failure an action raised.
type FailureAssertions struct {
	And   *FuncAssertions
	Which *assertion.Failure
}

// WithMessage asserts that the failure message matches pattern,
// where * matches any run of characters and ? a single one.
func (f *FailureAssertions) WithMessage(pattern string, because ...any) *FailureAssertions {
	f.And.helper()
	if pattern == "" {
		assertion.InvalidArgument("pattern", "Cannot match a failure message against an empty pattern.")
	}
	format, args := splitReason(because)
	assertion.New(f.And.t, "failure").
		BecauseOf(format, args...).
		ForCondition(assertion.MatchWildcard(pattern, f.Which.Message)).
		FailWith("Expected {subjectName} message to match {0}{reason}, but {1} does not.",
			pattern, f.Which.Message)
	return f
}

// WithMessageContaining asserts that the failure message contains
// fragment.
func (f *FailureAssertions) WithMessageContaining(fragment string, because ...any) *FailureAssertions {
	f.And.helper()
	format, args := splitReason(because)
	assertion.New(f.And.t, "failure").
		BecauseOf(format, args...).
		ForCondition(strings.Contains(f.Which.Message, fragment)).
		FailWith("Expected {subjectName} message to contain {0}{reason}, but found {1}.",
			fragment, f.Which.Message)
	return f
}
