package should

import (
	"time"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/subject"
)

// DurationAssertions asserts on a time span that may be missing.
type DurationAssertions struct {
	core[time.Duration]
}

// Duration starts assertions on value.
func Duration(t assertion.T, value time.Duration) *DurationAssertions {
	return &DurationAssertions{newCore(t, subject.Of(value), "duration", "time.Duration")}
}

// NullableDuration starts assertions on the span behind value,
// which may be nil.
func NullableDuration(t assertion.T, value *time.Duration) *DurationAssertions {
	return &DurationAssertions{newCore(t, subject.Nullable(value), "duration", "time.Duration")}
}

// Named returns the assertions reporting the subject as name.
func (a *DurationAssertions) Named(name string) *DurationAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// Be asserts that the span equals expected.
func (a *DurationAssertions) Be(expected time.Duration, because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.equal(expected, equals[time.Duration],
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBe asserts that the span differs from unexpected.
func (a *DurationAssertions) NotBe(unexpected time.Duration, because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.notEqual(unexpected, equals[time.Duration],
		"Did not expect {subjectName} to be {0}{reason}.", because)
	return assertion.And(a)
}

// BePositive asserts that the span is greater than zero.
func (a *DurationAssertions) BePositive(because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.ordered(0, compareNumbers[time.Duration], greaterThan,
		"Expected {subjectName} to be positive{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeNegative asserts that the span is less than zero.
func (a *DurationAssertions) BeNegative(because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.ordered(0, compareNumbers[time.Duration], lessThan,
		"Expected {subjectName} to be negative{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeLessThan asserts that the span is shorter than expected.
func (a *DurationAssertions) BeLessThan(expected time.Duration, because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.ordered(expected, compareNumbers[time.Duration], lessThan,
		"Expected {subjectName} to be less than {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeLessThanOrEqualTo asserts that the span is at most expected.
func (a *DurationAssertions) BeLessThanOrEqualTo(expected time.Duration, because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.ordered(expected, compareNumbers[time.Duration], lessOrEqual,
		"Expected {subjectName} to be less than or equal to {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeGreaterThan asserts that the span is longer than expected.
func (a *DurationAssertions) BeGreaterThan(expected time.Duration, because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.ordered(expected, compareNumbers[time.Duration], greaterThan,
		"Expected {subjectName} to be greater than {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeGreaterThanOrEqualTo asserts that the span is at least
// expected.
func (a *DurationAssertions) BeGreaterThanOrEqualTo(expected time.Duration, because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.ordered(expected, compareNumbers[time.Duration], greaterOrEqual,
		"Expected {subjectName} to be greater than or equal to {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeCloseTo asserts that the span lies within precision of nearby.
func (a *DurationAssertions) BeCloseTo(nearby, precision time.Duration, because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	checkDurationPrecision(precision)
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && absDuration(v-nearby) <= precision).
		FailWith("Expected {subjectName} to be within {0} from {1}{reason}, but found {2}.",
			precision, nearby, a.actual())
	return assertion.And(a)
}

// NotBeCloseTo asserts that the span lies further than precision
// from distant.
func (a *DurationAssertions) NotBeCloseTo(distant, precision time.Duration, because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	checkDurationPrecision(precision)
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && absDuration(v-distant) > precision).
		FailWith("Expected {subjectName} to not be within {0} from {1}{reason}, but found {2}.",
			precision, distant, a.actual())
	return assertion.And(a)
}

// HaveValue asserts that the span is not missing.
func (a *DurationAssertions) HaveValue(because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.haveValue(because)
	return assertion.And(a)
}

// NotHaveValue asserts that the span is missing.
func (a *DurationAssertions) NotHaveValue(because ...any) assertion.AndConstraint[*DurationAssertions] {
	a.helper()
	a.notHaveValue(because)
	return assertion.And(a)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *DurationAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}
