package should

import (
	"time"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/chrono"
	"digital.vasic.fluent/pkg/subject"
)

// TimeOnlyAssertions asserts on a time of day that may be missing.
type TimeOnlyAssertions struct {
	core[chrono.TimeOnly]
}

// TimeOnly starts assertions on value.
func TimeOnly(t assertion.T, value chrono.TimeOnly) *TimeOnlyAssertions {
	return &TimeOnlyAssertions{newCore(t, subject.Of(value), "timeOnly", "chrono.TimeOnly")}
}

// NullableTimeOnly starts assertions on the time of day behind
// value, which may be nil.
func NullableTimeOnly(t assertion.T, value *chrono.TimeOnly) *TimeOnlyAssertions {
	return &TimeOnlyAssertions{newCore(t, subject.Nullable(value), "timeOnly", "chrono.TimeOnly")}
}

// Named returns the assertions reporting the subject as name.
func (a *TimeOnlyAssertions) Named(name string) *TimeOnlyAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// Be asserts that the time of day equals expected.
func (a *TimeOnlyAssertions) Be(expected chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.equal(expected, chrono.TimeOnly.Equal,
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeNullable asserts that the time of day equals expected, where
// nil expects a missing value.
func (a *TimeOnlyAssertions) BeNullable(expected *chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.equalNullable(expected, chrono.TimeOnly.Equal,
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBe asserts that the time of day differs from unexpected.
func (a *TimeOnlyAssertions) NotBe(unexpected chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.notEqual(unexpected, chrono.TimeOnly.Equal,
		"Expected {subjectName} not to be {0}{reason}, but it is.", because)
	return assertion.And(a)
}

// BeBefore asserts that the time of day is strictly earlier than
// expected on the same clock, without wrapping around midnight.
func (a *TimeOnlyAssertions) BeBefore(expected chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.ordered(expected, chrono.TimeOnly.Compare, lessThan,
		"Expected {subjectName} to be before {0}{reason}, but it was {1}.", because)
	return assertion.And(a)
}

// BeOnOrBefore asserts that the time of day is no later than
// expected.
func (a *TimeOnlyAssertions) BeOnOrBefore(expected chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.ordered(expected, chrono.TimeOnly.Compare, lessOrEqual,
		"Expected {subjectName} to be on or before {0}{reason}, but it was {1}.", because)
	return assertion.And(a)
}

// BeAfter asserts that the time of day is strictly later than
// expected.
func (a *TimeOnlyAssertions) BeAfter(expected chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.ordered(expected, chrono.TimeOnly.Compare, greaterThan,
		"Expected {subjectName} to be after {0}{reason}, but it was {1}.", because)
	return assertion.And(a)
}

// BeOnOrAfter asserts that the time of day is no earlier than
// expected.
func (a *TimeOnlyAssertions) BeOnOrAfter(expected chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.ordered(expected, chrono.TimeOnly.Compare, greaterOrEqual,
		"Expected {subjectName} to be on or after {0}{reason}, but it was {1}.", because)
	return assertion.And(a)
}

// BeOneOf asserts that the time of day equals one of values.
func (a *TimeOnlyAssertions) BeOneOf(values []chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.oneOf(values, chrono.TimeOnly.Equal, because)
	return assertion.And(a)
}

// BeOneOfNullable is BeOneOf for candidates that may be nil.
func (a *TimeOnlyAssertions) BeOneOfNullable(values []*chrono.TimeOnly, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.oneOfNullable(values, chrono.TimeOnly.Equal, because)
	return assertion.And(a)
}

// BeCloseTo asserts that the time of day lies within precision of
// nearby. Distances are measured around the clock, so 23:59 is one
// minute from 00:00.
func (a *TimeOnlyAssertions) BeCloseTo(nearby chrono.TimeOnly, precision time.Duration, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	checkDurationPrecision(precision)
	v, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} to be within {0} from {1}{reason}, but found <null>.",
				precision, nearby)
		return assertion.And(a)
	}
	off := v.Distance(nearby)
	e.ForCondition(off <= precision).
		FailWith("Expected {subjectName} to be within {0} from {1}{reason}, but {2} was off by {3}.",
			precision, nearby, v, off)
	return assertion.And(a)
}

// NotBeCloseTo asserts that the time of day lies further than
// precision from distant. A missing value passes.
func (a *TimeOnlyAssertions) NotBeCloseTo(distant chrono.TimeOnly, precision time.Duration, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	checkDurationPrecision(precision)
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || v.Distance(distant) > precision).
		FailWith("Did not expect {subjectName} to be within {0} from {1}{reason}, but it was {2}.",
			precision, distant, a.actual())
	return assertion.And(a)
}

// HaveHours asserts on the hour of the time of day.
func (a *TimeOnlyAssertions) HaveHours(expected int, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	havePart(a.core, "hours", expected, chrono.TimeOnly.Hour, because)
	return assertion.And(a)
}

// HaveMinutes asserts on the minute of the time of day.
func (a *TimeOnlyAssertions) HaveMinutes(expected int, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	havePart(a.core, "minutes", expected, chrono.TimeOnly.Minute, because)
	return assertion.And(a)
}

// HaveSeconds asserts on the second of the time of day.
func (a *TimeOnlyAssertions) HaveSeconds(expected int, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	havePart(a.core, "seconds", expected, chrono.TimeOnly.Second, because)
	return assertion.And(a)
}

// HaveMilliseconds asserts on the millisecond of the time of day.
func (a *TimeOnlyAssertions) HaveMilliseconds(expected int, because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	havePart(a.core, "milliseconds", expected, chrono.TimeOnly.Millisecond, because)
	return assertion.And(a)
}

// HaveValue asserts that the time of day is not missing.
func (a *TimeOnlyAssertions) HaveValue(because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.haveValue(because)
	return assertion.And(a)
}

// NotHaveValue asserts that the time of day is missing.
func (a *TimeOnlyAssertions) NotHaveValue(because ...any) assertion.AndConstraint[*TimeOnlyAssertions] {
	a.helper()
	a.notHaveValue(because)
	return assertion.And(a)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *TimeOnlyAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}
