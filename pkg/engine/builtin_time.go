package engine

import (
	"time"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/should"
)

// span builds an evaluator for the time-span operations: the
// span comes from d.Precision and the target from d.Expected.
func span(
	subject subjectFunc[*should.DateTimeAssertions],
	predicate func(*should.DateTimeAssertions, time.Duration) *should.TimeSpanCondition,
	after bool,
) Evaluator {
	return func(t assertion.T, d Definition) error {
		a, err := subject(t, d)
		if err != nil {
			return err
		}
		if d.Precision == nil {
			return missing("precision")
		}
		if d.Expected == nil {
			return missing("expected")
		}
		s, err := field("precision", toDuration)(d.Precision)
		if err != nil {
			return err
		}
		target, err := field("expected", toDateTime)(d.Expected)
		if err != nil {
			return err
		}
		condition := predicate(a, s)
		if after {
			condition.After(target, d.because()...)
		} else {
			condition.Before(target, d.because()...)
		}
		return nil
	}
}

func dateTimeEvaluators(
	plain func(assertion.T, time.Time) *should.DateTimeAssertions,
	nullable func(assertion.T, *time.Time) *should.DateTimeAssertions,
) map[string]Evaluator {
	subject := subjectOf(toDateTime, plain, nullable)
	type A = *should.DateTimeAssertions

	evaluators := map[string]Evaluator{
		"be":                  equality(subject, toDateTime, A.Be, A.BeNullable),
		"not_be":              binary(subject, toDateTime, A.NotBe),
		"be_exactly":          binary(subject, toDateTime, A.BeExactly),
		"be_close_to":         precise(subject, toDateTime, toDuration, A.BeCloseTo),
		"not_be_close_to":     precise(subject, toDateTime, toDuration, A.NotBeCloseTo),
		"be_before":           binary(subject, toDateTime, A.BeBefore),
		"not_be_before":       binary(subject, toDateTime, A.NotBeBefore),
		"be_on_or_before":     binary(subject, toDateTime, A.BeOnOrBefore),
		"not_be_on_or_before": binary(subject, toDateTime, A.NotBeOnOrBefore),
		"be_after":            binary(subject, toDateTime, A.BeAfter),
		"not_be_after":        binary(subject, toDateTime, A.NotBeAfter),
		"be_on_or_after":      binary(subject, toDateTime, A.BeOnOrAfter),
		"not_be_on_or_after":  binary(subject, toDateTime, A.NotBeOnOrAfter),
		"be_one_of":           oneOfNullable(subject, toDateTime, A.BeOneOf, A.BeOneOfNullable),
		"have_year":           binary(subject, toInt, A.HaveYear),
		"not_have_year":       binary(subject, toInt, A.NotHaveYear),
		"have_month":          binary(subject, toMonth, A.HaveMonth),
		"not_have_month":      binary(subject, toMonth, A.NotHaveMonth),
		"have_day":            binary(subject, toInt, A.HaveDay),
		"not_have_day":        binary(subject, toInt, A.NotHaveDay),
		"have_hour":           binary(subject, toInt, A.HaveHour),
		"not_have_hour":       binary(subject, toInt, A.NotHaveHour),
		"have_minute":         binary(subject, toInt, A.HaveMinute),
		"not_have_minute":     binary(subject, toInt, A.NotHaveMinute),
		"have_second":         binary(subject, toInt, A.HaveSecond),
		"not_have_second":     binary(subject, toInt, A.NotHaveSecond),
		"have_offset":         binary(subject, toDuration, A.HaveOffset),
		"be_same_date_as":     binary(subject, toDateTime, A.BeSameDateAs),
		"not_be_same_date_as": binary(subject, toDateTime, A.NotBeSameDateAs),
		"be_in":               binary(subject, toLocation, A.BeIn),
		"have_value":          unary(subject, A.HaveValue),
		"not_have_value":      unary(subject, A.NotHaveValue),
		"be_null":             unary(subject, A.BeNull),
		"not_be_null":         unary(subject, A.NotBeNull),
	}

	spans := map[string]func(A, time.Duration) *should.TimeSpanCondition{
		"be_more_than":     A.BeMoreThan,
		"be_at_least":      A.BeAtLeast,
		"be_exactly_apart": A.BeExactlyApart,
		"be_within":        A.BeWithin,
		"be_less_than":     A.BeLessThan,
	}
	for name, predicate := range spans {
		evaluators[name+"_before"] = span(subject, predicate, false)
		evaluators[name+"_after"] = span(subject, predicate, true)
	}

	return evaluators
}

func dateOnlyEvaluators() map[string]Evaluator {
	subject := subjectOf(toDateOnly, should.DateOnly, should.NullableDateOnly)
	type A = *should.DateOnlyAssertions

	return map[string]Evaluator{
		"be":              equality(subject, toDateOnly, A.Be, A.BeNullable),
		"not_be":          binary(subject, toDateOnly, A.NotBe),
		"be_before":       binary(subject, toDateOnly, A.BeBefore),
		"be_on_or_before": binary(subject, toDateOnly, A.BeOnOrBefore),
		"be_after":        binary(subject, toDateOnly, A.BeAfter),
		"be_on_or_after":  binary(subject, toDateOnly, A.BeOnOrAfter),
		"be_one_of":       oneOfNullable(subject, toDateOnly, A.BeOneOf, A.BeOneOfNullable),
		"have_year":       binary(subject, toInt, A.HaveYear),
		"not_have_year":   binary(subject, toInt, A.NotHaveYear),
		"have_month":      binary(subject, toMonth, A.HaveMonth),
		"not_have_month":  binary(subject, toMonth, A.NotHaveMonth),
		"have_day":        binary(subject, toInt, A.HaveDay),
		"not_have_day":    binary(subject, toInt, A.NotHaveDay),
		"have_value":      unary(subject, A.HaveValue),
		"not_have_value":  unary(subject, A.NotHaveValue),
	}
}

func timeOnlyEvaluators() map[string]Evaluator {
	subject := subjectOf(toTimeOnly, should.TimeOnly, should.NullableTimeOnly)
	type A = *should.TimeOnlyAssertions

	return map[string]Evaluator{
		"be":                equality(subject, toTimeOnly, A.Be, A.BeNullable),
		"not_be":            binary(subject, toTimeOnly, A.NotBe),
		"be_before":         binary(subject, toTimeOnly, A.BeBefore),
		"be_on_or_before":   binary(subject, toTimeOnly, A.BeOnOrBefore),
		"be_after":          binary(subject, toTimeOnly, A.BeAfter),
		"be_on_or_after":    binary(subject, toTimeOnly, A.BeOnOrAfter),
		"be_one_of":         oneOfNullable(subject, toTimeOnly, A.BeOneOf, A.BeOneOfNullable),
		"be_close_to":       precise(subject, toTimeOnly, toDuration, A.BeCloseTo),
		"not_be_close_to":   precise(subject, toTimeOnly, toDuration, A.NotBeCloseTo),
		"have_hours":        binary(subject, toInt, A.HaveHours),
		"have_minutes":      binary(subject, toInt, A.HaveMinutes),
		"have_seconds":      binary(subject, toInt, A.HaveSeconds),
		"have_milliseconds": binary(subject, toInt, A.HaveMilliseconds),
		"have_value":        unary(subject, A.HaveValue),
		"not_have_value":    unary(subject, A.NotHaveValue),
	}
}

func durationEvaluators() map[string]Evaluator {
	subject := subjectOf(toDuration, should.Duration, should.NullableDuration)
	type A = *should.DurationAssertions

	return map[string]Evaluator{
		"be":                          binary(subject, toDuration, A.Be),
		"not_be":                      binary(subject, toDuration, A.NotBe),
		"be_positive":                 unary(subject, A.BePositive),
		"be_negative":                 unary(subject, A.BeNegative),
		"be_less_than":                binary(subject, toDuration, A.BeLessThan),
		"be_less_than_or_equal_to":    binary(subject, toDuration, A.BeLessThanOrEqualTo),
		"be_greater_than":             binary(subject, toDuration, A.BeGreaterThan),
		"be_greater_than_or_equal_to": binary(subject, toDuration, A.BeGreaterThanOrEqualTo),
		"be_close_to":                 precise(subject, toDuration, toDuration, A.BeCloseTo),
		"not_be_close_to":             precise(subject, toDuration, toDuration, A.NotBeCloseTo),
		"have_value":                  unary(subject, A.HaveValue),
		"not_have_value":              unary(subject, A.NotHaveValue),
	}
}
