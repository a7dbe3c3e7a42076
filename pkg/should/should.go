// Package should is the assertion surface: one entry point per
// kind of value, each returning a fluent assertion object whose
// methods either pass silently, returning a continuation, or fail
// with a descriptive message.
//
//	should.Boolean(t, ok).BeTrue("because {0} succeeded", "setup")
//	should.String(t, name).StartWith("go").And.HaveLength(6)
//
// Every assertion method takes an optional reason: a format string
// with {0}, {1}, ... placeholders followed by its arguments. When
// it is omitted the "because" clause is left out of the message.
//
// Passing a nil T makes failures panic with *assertion.Failure,
// which assertion.Catch recovers.
package should

import (
	"fmt"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/render"
	"digital.vasic.fluent/pkg/subject"
)

// core is the state shared by every surface: where failures go,
// the subject, and how its values appear in messages.
type core[T any] struct {
	t        assertion.T
	subject  subject.Subject[T]
	fallback string
	typeName string
	show     func(T) any
}

func newCore[T any](
	t assertion.T,
	s subject.Subject[T],
	fallback, typeName string,
) core[T] {
	return core[T]{t: t, subject: s, fallback: fallback, typeName: typeName}
}

func (c core[T]) helper() {
	if c.t != nil {
		c.t.Helper()
	}
}

func (c core[T]) name() string {
	return c.subject.Name(c.fallback)
}

func (c core[T]) value() (T, bool) {
	return c.subject.Value()
}

func (c core[T]) exec(because []any) *assertion.Execution {
	format, args := splitReason(because)
	return assertion.New(c.t, c.name()).BecauseOf(format, args...)
}

// display converts a value to what the renderer should see.
func (c core[T]) display(v T) any {
	if c.show != nil {
		return c.show(v)
	}
	return v
}

// actual is the subject as rendered in messages; nil when missing.
func (c core[T]) actual() any {
	v, ok := c.value()
	if !ok {
		return nil
	}
	return c.display(v)
}

// qualifiedActual renders a missing subject as <null> TypeName.
func (c core[T]) qualifiedActual() any {
	if !c.subject.HasValue() {
		return render.NullOf(c.typeName)
	}
	return c.actual()
}

func (c core[T]) displayPtr(p *T) any {
	if p == nil {
		return nil
	}
	return c.display(*p)
}

func (c core[T]) displayAll(vs []T) render.Raw {
	items := make([]any, len(vs))
	for i, v := range vs {
		items[i] = c.display(v)
	}
	return render.Raw(render.Values(items...))
}

func (c core[T]) displayAllPtr(vs []*T) render.Raw {
	items := make([]any, len(vs))
	for i, v := range vs {
		items[i] = c.displayPtr(v)
	}
	return render.Raw(render.Values(items...))
}

// splitReason separates the optional reason format from its
// arguments.
func splitReason(because []any) (string, []any) {
	if len(because) == 0 {
		return "", nil
	}
	format, ok := because[0].(string)
	if !ok {
		format = fmt.Sprint(because[0])
	}
	return format, because[1:]
}

func (c core[T]) haveValue(because []any) {
	c.helper()
	c.exec(because).
		ForCondition(c.subject.HasValue()).
		FailWith("Expected {subjectName} to have a value{reason}, but found {0}.", c.actual())
}

func (c core[T]) notHaveValue(because []any) {
	c.helper()
	c.exec(because).
		ForCondition(!c.subject.HasValue()).
		FailWith("Did not expect {subjectName} to have a value{reason}, but found {0}.", c.actual())
}

// equal fails unless the subject has a value equal to expected.
func (c core[T]) equal(
	expected T,
	eq func(a, b T) bool,
	template string,
	because []any,
) {
	c.helper()
	v, ok := c.value()
	c.exec(because).
		ForCondition(ok && eq(v, expected)).
		FailWith(template, c.display(expected), c.actual())
}

// notEqual fails when the subject has a value equal to unexpected.
// A missing subject is never equal to a value.
func (c core[T]) notEqual(
	unexpected T,
	eq func(a, b T) bool,
	template string,
	because []any,
) {
	c.helper()
	v, ok := c.value()
	c.exec(because).
		ForCondition(!ok || !eq(v, unexpected)).
		FailWith(template, c.display(unexpected), c.actual())
}

// equalNullable compares against an expectation that may itself be
// missing. Two missing values are equal; a missing and a present
// value never are.
func (c core[T]) equalNullable(
	expected *T,
	eq func(a, b T) bool,
	template string,
	because []any,
) {
	c.helper()
	v, ok := c.value()
	match := (expected == nil && !ok) ||
		(expected != nil && ok && eq(v, *expected))
	c.exec(because).
		ForCondition(match).
		FailWith(template, c.displayPtr(expected), c.actual())
}

// oneOf fails unless the subject equals one of values. A missing
// subject never matches.
func (c core[T]) oneOf(
	values []T,
	eq func(a, b T) bool,
	because []any,
) {
	c.helper()
	v, ok := c.value()
	found := false
	if ok {
		for _, candidate := range values {
			if eq(v, candidate) {
				found = true
				break
			}
		}
	}
	c.exec(because).
		ForCondition(found).
		FailWith(
			"Expected {subjectName} to be one of {0}{reason}, but found {1}.",
			c.displayAll(values), c.actual(),
		)
}

// oneOfNullable is oneOf for candidates that may be missing. A
// missing subject matches only an explicit nil candidate.
func (c core[T]) oneOfNullable(
	values []*T,
	eq func(a, b T) bool,
	because []any,
) {
	c.helper()
	v, ok := c.value()
	found := false
	for _, candidate := range values {
		if candidate == nil && !ok ||
			candidate != nil && ok && eq(v, *candidate) {
			found = true
			break
		}
	}
	c.exec(because).
		ForCondition(found).
		FailWith(
			"Expected {subjectName} to be one of {0}{reason}, but found {1}.",
			c.displayAllPtr(values), c.actual(),
		)
}

// ordered fails unless the subject has a value and accept holds
// for cmp(subject, bound). The template receives the bound as {0}
// and the subject as {1}.
func (c core[T]) ordered(
	bound T,
	cmp func(a, b T) int,
	accept func(int) bool,
	template string,
	because []any,
) {
	c.helper()
	v, ok := c.value()
	c.exec(because).
		ForCondition(ok && accept(cmp(v, bound))).
		FailWith(template, c.display(bound), c.actual())
}

func equals[T comparable](a, b T) bool { return a == b }

func lessThan(r int) bool       { return r < 0 }
func lessOrEqual(r int) bool    { return r <= 0 }
func greaterThan(r int) bool    { return r > 0 }
func greaterOrEqual(r int) bool { return r >= 0 }
