package should

import (
	"time"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/chrono"
	"digital.vasic.fluent/pkg/subject"
)

// DateOnlyAssertions asserts on a calendar date that may be
// missing.
type DateOnlyAssertions struct {
	core[chrono.DateOnly]
}

// DateOnly starts assertions on value.
func DateOnly(t assertion.T, value chrono.DateOnly) *DateOnlyAssertions {
	return &DateOnlyAssertions{newCore(t, subject.Of(value), "dateOnly", "chrono.DateOnly")}
}

// NullableDateOnly starts assertions on the date behind value,
// which may be nil.
func NullableDateOnly(t assertion.T, value *chrono.DateOnly) *DateOnlyAssertions {
	return &DateOnlyAssertions{newCore(t, subject.Nullable(value), "dateOnly", "chrono.DateOnly")}
}

// Named returns the assertions reporting the subject as name.
func (a *DateOnlyAssertions) Named(name string) *DateOnlyAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// Be asserts that the date equals expected.
func (a *DateOnlyAssertions) Be(expected chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.equal(expected, chrono.DateOnly.Equal,
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeNullable asserts that the date equals expected, where nil
// expects a missing date.
func (a *DateOnlyAssertions) BeNullable(expected *chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.equalNullable(expected, chrono.DateOnly.Equal,
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBe asserts that the date differs from unexpected.
func (a *DateOnlyAssertions) NotBe(unexpected chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.notEqual(unexpected, chrono.DateOnly.Equal,
		"Expected {subjectName} not to be {0}{reason}, but it is.", because)
	return assertion.And(a)
}

// BeBefore asserts that the date is strictly earlier than expected.
func (a *DateOnlyAssertions) BeBefore(expected chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.ordered(expected, chrono.DateOnly.Compare, lessThan,
		"Expected {subjectName} to be before {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeOnOrBefore asserts that the date is no later than expected.
func (a *DateOnlyAssertions) BeOnOrBefore(expected chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.ordered(expected, chrono.DateOnly.Compare, lessOrEqual,
		"Expected {subjectName} to be on or before {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeAfter asserts that the date is strictly later than expected.
func (a *DateOnlyAssertions) BeAfter(expected chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.ordered(expected, chrono.DateOnly.Compare, greaterThan,
		"Expected {subjectName} to be after {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeOnOrAfter asserts that the date is no earlier than expected.
func (a *DateOnlyAssertions) BeOnOrAfter(expected chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.ordered(expected, chrono.DateOnly.Compare, greaterOrEqual,
		"Expected {subjectName} to be on or after {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeOneOf asserts that the date equals one of values.
func (a *DateOnlyAssertions) BeOneOf(values []chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.oneOf(values, chrono.DateOnly.Equal, because)
	return assertion.And(a)
}

// BeOneOfNullable is BeOneOf for candidates that may be nil.
func (a *DateOnlyAssertions) BeOneOfNullable(values []*chrono.DateOnly, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.oneOfNullable(values, chrono.DateOnly.Equal, because)
	return assertion.And(a)
}

// HaveYear asserts on the year of the date.
func (a *DateOnlyAssertions) HaveYear(expected int, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	havePart(a.core, "year", expected, chrono.DateOnly.Year, because)
	return assertion.And(a)
}

// NotHaveYear asserts that the year of the date differs from
// unexpected.
func (a *DateOnlyAssertions) NotHaveYear(unexpected int, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	notHavePart(a.core, "year", unexpected, chrono.DateOnly.Year, because)
	return assertion.And(a)
}

// HaveMonth asserts on the month of the date.
func (a *DateOnlyAssertions) HaveMonth(expected time.Month, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	havePart(a.core, "month", int(expected), monthNumber(chrono.DateOnly.Month), because)
	return assertion.And(a)
}

// NotHaveMonth asserts that the month of the date differs from
// unexpected.
func (a *DateOnlyAssertions) NotHaveMonth(unexpected time.Month, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	notHavePart(a.core, "month", int(unexpected), monthNumber(chrono.DateOnly.Month), because)
	return assertion.And(a)
}

// HaveDay asserts on the day of the month of the date.
func (a *DateOnlyAssertions) HaveDay(expected int, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	havePart(a.core, "day", expected, chrono.DateOnly.Day, because)
	return assertion.And(a)
}

// NotHaveDay asserts that the day of the date differs from
// unexpected.
func (a *DateOnlyAssertions) NotHaveDay(unexpected int, because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	notHavePart(a.core, "day", unexpected, chrono.DateOnly.Day, because)
	return assertion.And(a)
}

// HaveValue asserts that the date is not missing.
func (a *DateOnlyAssertions) HaveValue(because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.haveValue(because)
	return assertion.And(a)
}

// NotHaveValue asserts that the date is missing.
func (a *DateOnlyAssertions) NotHaveValue(because ...any) assertion.AndConstraint[*DateOnlyAssertions] {
	a.helper()
	a.notHaveValue(because)
	return assertion.And(a)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *DateOnlyAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}
