package should

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/chrono"
)

func TestDateOnly_BeFailureMessage(t *testing.T) {
	msg := failureOf(t, func() {
		DateOnly(nil, chrono.NewDateOnly(2012, 3, 10)).
			Be(chrono.NewDateOnly(2012, 3, 11), "because we want to test the failure {0}", "message")
	})

	assert.True(t, assertion.MatchWildcard(
		"Expected dateOnly to be <2012-03-11>*failure message, but found <2012-03-10>.", msg), msg)
}

func TestDateOnly_Equality(t *testing.T) {
	d := chrono.NewDateOnly(2012, 3, 10)

	passes(t, func() { DateOnly(nil, d).Be(d).And.NotBe(d.AddDays(1)).And.BeNullable(&d) })
	passes(t, func() { NullableDateOnly(nil, nil).BeNullable(nil).And.NotHaveValue() })

	msg := failureOf(t, func() { DateOnly(nil, d).NotBe(d) })
	assert.Equal(t, "Expected dateOnly not to be <2012-03-10>, but it is.", msg)

	msg = failureOf(t, func() { NullableDateOnly(nil, nil).HaveValue() })
	assert.Equal(t, "Expected dateOnly to have a value, but found <null>.", msg)
}

func TestDateOnly_Ordering(t *testing.T) {
	d := chrono.NewDateOnly(2012, 3, 10)

	passes(t, func() {
		DateOnly(nil, d).BeBefore(d.AddDays(1)).And.BeAfter(d.AddDays(-1)).
			And.BeOnOrBefore(d).And.BeOnOrAfter(d)
	})

	for _, s := range []chrono.DateOnly{d.AddDays(-1), d, d.AddDays(1)} {
		before := assertion.Catch(func() { DateOnly(nil, s).BeBefore(d) }) == nil
		onOrAfter := assertion.Catch(func() { DateOnly(nil, s).BeOnOrAfter(d) }) == nil
		assert.NotEqual(t, before, onOrAfter, "%v", s)
	}

	msg := failureOf(t, func() { DateOnly(nil, d).BeAfter(d) })
	assert.Equal(t, "Expected dateOnly to be after <2012-03-10>, but found <2012-03-10>.", msg)
}

func TestDateOnly_BeOneOf(t *testing.T) {
	d := chrono.NewDateOnly(2012, 3, 10)

	passes(t, func() { DateOnly(nil, d).BeOneOf([]chrono.DateOnly{d.AddDays(1), d}) })
	passes(t, func() { NullableDateOnly(nil, nil).BeOneOfNullable([]*chrono.DateOnly{nil}) })

	msg := failureOf(t, func() { DateOnly(nil, d).BeOneOf([]chrono.DateOnly{d.AddDays(1)}) })
	assert.Equal(t, "Expected dateOnly to be one of {<2012-03-11>}, but found <2012-03-10>.", msg)
}

func TestDateOnly_Parts(t *testing.T) {
	d := chrono.NewDateOnly(2012, 3, 10)

	passes(t, func() {
		DateOnly(nil, d).HaveYear(2012).And.HaveMonth(time.March).And.HaveDay(10).
			And.NotHaveYear(2011).And.NotHaveMonth(time.May).And.NotHaveDay(1)
	})

	msg := failureOf(t, func() { NullableDateOnly(nil, nil).HaveYear(2012) })
	assert.Equal(t, "Expected the year part of dateOnly to be 2012, but found <null> chrono.DateOnly.", msg)

	msg = failureOf(t, func() { DateOnly(nil, d).NotHaveDay(10) })
	assert.Equal(t, "Did not expect the day part of dateOnly to be 10, but it was.", msg)

	msg = failureOf(t, func() { DateOnly(nil, d).HaveMonth(time.April) })
	assert.Equal(t, "Expected the month part of dateOnly to be 4, but found 3.", msg)
}
