package should

import (
	"time"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/chrono"
	"digital.vasic.fluent/pkg/render"
	"digital.vasic.fluent/pkg/subject"
)

// DateTimeAssertions asserts on a point in time that may be
// missing. Equality compares instants, so two values in different
// locations that name the same instant are equal.
type DateTimeAssertions struct {
	core[time.Time]
}

// DateTime starts assertions on value.
func DateTime(t assertion.T, value time.Time) *DateTimeAssertions {
	return newDateTime(t, subject.Of(value), false)
}

// NullableDateTime starts assertions on the time behind value,
// which may be nil.
func NullableDateTime(t assertion.T, value *time.Time) *DateTimeAssertions {
	return newDateTime(t, subject.Nullable(value), false)
}

// DateTimeOffset starts assertions on value, rendering it and
// every expectation with its UTC offset.
func DateTimeOffset(t assertion.T, value time.Time) *DateTimeAssertions {
	return newDateTime(t, subject.Of(value), true)
}

// NullableDateTimeOffset is DateTimeOffset for a value that may be
// nil.
func NullableDateTimeOffset(t assertion.T, value *time.Time) *DateTimeAssertions {
	return newDateTime(t, subject.Nullable(value), true)
}

func newDateTime(t assertion.T, s subject.Subject[time.Time], withOffset bool) *DateTimeAssertions {
	c := newCore(t, s, "dateTime", "time.Time")
	if withOffset {
		c.fallback = "dateTimeOffset"
		c.show = func(v time.Time) any { return render.WithOffset(v) }
	}
	return &DateTimeAssertions{c}
}

// Named returns the assertions reporting the subject as name.
func (a *DateTimeAssertions) Named(name string) *DateTimeAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// Be asserts that the value is the same instant as expected.
func (a *DateTimeAssertions) Be(expected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.equal(expected, sameInstant,
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeNullable asserts that the value is the same instant as
// expected, where nil expects a missing value.
func (a *DateTimeAssertions) BeNullable(expected *time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.equalNullable(expected, sameInstant,
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBe asserts that the value is a different instant from
// unexpected.
func (a *DateTimeAssertions) NotBe(unexpected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.notEqual(unexpected, sameInstant,
		"Expected {subjectName} not to be {0}{reason}, but it is.", because)
	return assertion.And(a)
}

// BeExactly asserts that the value is the same instant as expected
// and carries the same UTC offset.
func (a *DateTimeAssertions) BeExactly(expected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && sameInstant(v, expected) && offsetOf(v) == offsetOf(expected)).
		FailWith("Expected {subjectName} to be exactly {0}{reason}, but found {1}.",
			render.WithOffset(expected), a.offsetActual())
	return assertion.And(a)
}

// BeCloseTo asserts that the value lies within precision of
// nearby, in either direction.
func (a *DateTimeAssertions) BeCloseTo(nearby time.Time, precision time.Duration, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	checkDurationPrecision(precision)
	v, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} to be within {0} from {1}{reason}, but found <null>.",
				precision, a.display(nearby))
		return assertion.And(a)
	}
	off := absDuration(v.Sub(nearby))
	e.ForCondition(off <= precision).
		FailWith("Expected {subjectName} to be within {0} from {1}{reason}, but {2} was off by {3}.",
			precision, a.display(nearby), a.display(v), off)
	return assertion.And(a)
}

// NotBeCloseTo asserts that the value lies further than precision
// from distant. A missing value passes.
func (a *DateTimeAssertions) NotBeCloseTo(distant time.Time, precision time.Duration, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	checkDurationPrecision(precision)
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || absDuration(v.Sub(distant)) > precision).
		FailWith("Did not expect {subjectName} to be within {0} from {1}{reason}, but it was {2}.",
			precision, a.display(distant), a.actual())
	return assertion.And(a)
}

// BeBefore asserts that the value is strictly earlier than
// expected.
func (a *DateTimeAssertions) BeBefore(expected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.ordered(expected, time.Time.Compare, lessThan,
		"Expected {subjectName} to be before {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBeBefore is BeOnOrAfter.
func (a *DateTimeAssertions) NotBeBefore(unexpected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	return a.BeOnOrAfter(unexpected, because...)
}

// BeOnOrBefore asserts that the value is no later than expected.
func (a *DateTimeAssertions) BeOnOrBefore(expected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.ordered(expected, time.Time.Compare, lessOrEqual,
		"Expected {subjectName} to be on or before {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBeOnOrBefore is BeAfter.
func (a *DateTimeAssertions) NotBeOnOrBefore(unexpected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	return a.BeAfter(unexpected, because...)
}

// BeAfter asserts that the value is strictly later than expected.
func (a *DateTimeAssertions) BeAfter(expected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.ordered(expected, time.Time.Compare, greaterThan,
		"Expected {subjectName} to be after {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBeAfter is BeOnOrBefore.
func (a *DateTimeAssertions) NotBeAfter(unexpected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	return a.BeOnOrBefore(unexpected, because...)
}

// BeOnOrAfter asserts that the value is no earlier than expected.
func (a *DateTimeAssertions) BeOnOrAfter(expected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.ordered(expected, time.Time.Compare, greaterOrEqual,
		"Expected {subjectName} to be on or after {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBeOnOrAfter is BeBefore.
func (a *DateTimeAssertions) NotBeOnOrAfter(unexpected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	return a.BeBefore(unexpected, because...)
}

// BeOneOf asserts that the value is the same instant as one of
// values.
func (a *DateTimeAssertions) BeOneOf(values []time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.oneOf(values, sameInstant, because)
	return assertion.And(a)
}

// BeOneOfNullable is BeOneOf for candidates that may be nil. A
// missing value matches only a nil candidate.
func (a *DateTimeAssertions) BeOneOfNullable(values []*time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.oneOfNullable(values, sameInstant, because)
	return assertion.And(a)
}

// HaveYear asserts on the year of the value in its own location.
func (a *DateTimeAssertions) HaveYear(expected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	havePart(a.core, "year", expected, time.Time.Year, because)
	return assertion.And(a)
}

// NotHaveYear asserts that the year of the value differs from
// unexpected.
func (a *DateTimeAssertions) NotHaveYear(unexpected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	notHavePart(a.core, "year", unexpected, time.Time.Year, because)
	return assertion.And(a)
}

// HaveMonth asserts on the month of the value.
func (a *DateTimeAssertions) HaveMonth(expected time.Month, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	havePart(a.core, "month", int(expected), monthNumber(time.Time.Month), because)
	return assertion.And(a)
}

// NotHaveMonth asserts that the month of the value differs from
// unexpected.
func (a *DateTimeAssertions) NotHaveMonth(unexpected time.Month, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	notHavePart(a.core, "month", int(unexpected), monthNumber(time.Time.Month), because)
	return assertion.And(a)
}

// HaveDay asserts on the day of the month of the value.
func (a *DateTimeAssertions) HaveDay(expected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	havePart(a.core, "day", expected, time.Time.Day, because)
	return assertion.And(a)
}

// NotHaveDay asserts that the day of the value differs from
// unexpected.
func (a *DateTimeAssertions) NotHaveDay(unexpected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	notHavePart(a.core, "day", unexpected, time.Time.Day, because)
	return assertion.And(a)
}

// HaveHour asserts on the hour of the value.
func (a *DateTimeAssertions) HaveHour(expected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	havePart(a.core, "hour", expected, time.Time.Hour, because)
	return assertion.And(a)
}

// NotHaveHour asserts that the hour of the value differs from
// unexpected.
func (a *DateTimeAssertions) NotHaveHour(unexpected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	notHavePart(a.core, "hour", unexpected, time.Time.Hour, because)
	return assertion.And(a)
}

// HaveMinute asserts on the minute of the value.
func (a *DateTimeAssertions) HaveMinute(expected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	havePart(a.core, "minute", expected, time.Time.Minute, because)
	return assertion.And(a)
}

// NotHaveMinute asserts that the minute of the value differs from
// unexpected.
func (a *DateTimeAssertions) NotHaveMinute(unexpected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	notHavePart(a.core, "minute", unexpected, time.Time.Minute, because)
	return assertion.And(a)
}

// HaveSecond asserts on the second of the value.
func (a *DateTimeAssertions) HaveSecond(expected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	havePart(a.core, "second", expected, time.Time.Second, because)
	return assertion.And(a)
}

// NotHaveSecond asserts that the second of the value differs from
// unexpected.
func (a *DateTimeAssertions) NotHaveSecond(unexpected int, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	notHavePart(a.core, "second", unexpected, time.Time.Second, because)
	return assertion.And(a)
}

// HaveOffset asserts on the UTC offset of the value.
func (a *DateTimeAssertions) HaveOffset(expected time.Duration, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	havePart(a.core, "offset", expected, offsetOf, because)
	return assertion.And(a)
}

// BeSameDateAs asserts that the value falls on the calendar date
// of expected, ignoring the clock.
func (a *DateTimeAssertions) BeSameDateAs(expected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	v, ok := a.value()
	want := chrono.DateOnlyFromTime(expected)
	a.exec(because).
		ForCondition(ok && chrono.DateOnlyFromTime(v).Equal(want)).
		FailWith("Expected the date part of {subjectName} to be {0}{reason}, but found {1}.",
			want, a.qualifiedActual())
	return assertion.And(a)
}

// NotBeSameDateAs asserts that the value falls on a different
// calendar date from unexpected.
func (a *DateTimeAssertions) NotBeSameDateAs(unexpected time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	v, ok := a.value()
	avoid := chrono.DateOnlyFromTime(unexpected)
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected the date part of {subjectName} to not be {0}{reason}, but found {1}.",
				avoid, a.qualifiedActual())
		return assertion.And(a)
	}
	e.ForCondition(!chrono.DateOnlyFromTime(v).Equal(avoid)).
		FailWith("Expected the date part of {subjectName} to not be {0}{reason}, but it was.", avoid)
	return assertion.And(a)
}

// BeIn asserts that the value is expressed in location.
func (a *DateTimeAssertions) BeIn(location *time.Location, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	if location == nil {
		assertion.InvalidArgument("location", "Cannot compare the location of a time against a <null> location.")
	}
	v, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} to be in {0}{reason}, but found <null>.", render.Raw(location.String()))
		return assertion.And(a)
	}
	e.ForCondition(v.Location().String() == location.String()).
		FailWith("Expected {subjectName} to be in {0}{reason}, but found {1}.",
			render.Raw(location.String()), render.Raw(v.Location().String()))
	return assertion.And(a)
}

// BeMoreThan starts a condition that the value lies more than
// span from a target.
func (a *DateTimeAssertions) BeMoreThan(span time.Duration) *TimeSpanCondition {
	return a.span(span, "more than", func(d time.Duration) bool { return d > span })
}

// BeAtLeast starts a condition that the value lies at least span
// from a target.
func (a *DateTimeAssertions) BeAtLeast(span time.Duration) *TimeSpanCondition {
	return a.span(span, "at least", func(d time.Duration) bool { return d >= span })
}

// BeExactlyApart starts a condition that the value lies exactly
// span from a target.
func (a *DateTimeAssertions) BeExactlyApart(span time.Duration) *TimeSpanCondition {
	return a.span(span, "exactly", func(d time.Duration) bool { return d == span })
}

// BeWithin starts a condition that the value lies no further than
// span from a target, on the named side of it.
func (a *DateTimeAssertions) BeWithin(span time.Duration) *TimeSpanCondition {
	return a.span(span, "within", func(d time.Duration) bool { return d >= 0 && d <= span })
}

// BeLessThan starts a condition that the value lies less than span
// from a target, on the named side of it.
func (a *DateTimeAssertions) BeLessThan(span time.Duration) *TimeSpanCondition {
	return a.span(span, "less than", func(d time.Duration) bool { return d >= 0 && d < span })
}

func (a *DateTimeAssertions) span(span time.Duration, display string, accept func(time.Duration) bool) *TimeSpanCondition {
	return &TimeSpanCondition{parent: a, span: span, display: display, accept: accept}
}

// HaveValue asserts that the value is not missing.
func (a *DateTimeAssertions) HaveValue(because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.haveValue(because)
	return assertion.And(a)
}

// NotBeNull is HaveValue.
func (a *DateTimeAssertions) NotBeNull(because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	return a.HaveValue(because...)
}

// NotHaveValue asserts that the value is missing.
func (a *DateTimeAssertions) NotHaveValue(because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	a.notHaveValue(because)
	return assertion.And(a)
}

// BeNull is NotHaveValue.
func (a *DateTimeAssertions) BeNull(because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	a.helper()
	return a.NotHaveValue(because...)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *DateTimeAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}

func (a *DateTimeAssertions) offsetActual() any {
	v, ok := a.value()
	if !ok {
		return nil
	}
	return render.WithOffset(v)
}

// TimeSpanCondition is a pending assertion about how far the value
// lies from a target. It is completed by Before or After.
type TimeSpanCondition struct {
	parent  *DateTimeAssertions
	span    time.Duration
	display string
	accept  func(time.Duration) bool
}

// Before completes the condition with the value on or before
// target.
func (c *TimeSpanCondition) Before(target time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	c.parent.helper()
	c.evaluate(target, "before", because, func(v time.Time) time.Duration { return target.Sub(v) })
	return assertion.And(c.parent)
}

// After completes the condition with the value on or after target.
func (c *TimeSpanCondition) After(target time.Time, because ...any) assertion.AndConstraint[*DateTimeAssertions] {
	c.parent.helper()
	c.evaluate(target, "after", because, func(v time.Time) time.Duration { return v.Sub(target) })
	return assertion.And(c.parent)
}

// Equals is not an assertion. It always panics, pointing at Before
// and After.
func (c *TimeSpanCondition) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBeforeAfter)
}

func (c *TimeSpanCondition) evaluate(
	target time.Time,
	side string,
	because []any,
	signed func(time.Time) time.Duration,
) {
	a := c.parent
	a.helper()
	e := a.exec(because)
	v, ok := a.value()
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} to be "+c.display+" {0} "+side+" {1}{reason}, but found {2}.",
				c.span, a.display(target), a.qualifiedActual())
		return
	}

	position := "ahead"
	if v.Before(target) {
		position = "behind"
	}
	e.ForCondition(c.accept(signed(v))).
		FailWith("Expected {subjectName} {0} to be "+c.display+" {1} "+side+" {2}{reason}, "+
			"but it is "+position+" by {3}.",
			a.display(v), c.span, a.display(target), absDuration(v.Sub(target)))
}

// havePart asserts that part, extracted by get, equals expected.
// A missing value renders as <null> TypeName.
func havePart[T any, P comparable](c core[T], part string, expected P, get func(T) P, because []any) {
	c.helper()
	v, ok := c.value()
	var found any = c.qualifiedActual()
	if ok {
		found = get(v)
	}
	c.exec(because).
		ForCondition(ok && get(v) == expected).
		FailWith("Expected the "+part+" part of {subjectName} to be {0}{reason}, but found {1}.",
			expected, found)
}

func notHavePart[T any, P comparable](c core[T], part string, unexpected P, get func(T) P, because []any) {
	c.helper()
	v, ok := c.value()
	e := c.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Did not expect the "+part+" part of {subjectName} to be {0}{reason}, but found {1}.",
				unexpected, c.qualifiedActual())
		return
	}
	e.ForCondition(get(v) != unexpected).
		FailWith("Did not expect the "+part+" part of {subjectName} to be {0}{reason}, but it was.",
			unexpected)
}

// monthNumber reports months as 1-12 so every part message shows
// a number.
func monthNumber[T any](get func(T) time.Month) func(T) int {
	return func(v T) int { return int(get(v)) }
}

func sameInstant(a, b time.Time) bool {
	return a.Equal(b)
}

func offsetOf(t time.Time) time.Duration {
	_, secs := t.Zone()
	return time.Duration(secs) * time.Second
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

func checkDurationPrecision(precision time.Duration) {
	if precision < 0 {
		assertion.InvalidArgument("precision", "The precision must be non-negative.")
	}
}
