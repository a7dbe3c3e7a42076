package should

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"digital.vasic.fluent/pkg/assertion"
)

var (
	june4  = time.Date(2016, 6, 4, 0, 0, 0, 0, time.UTC)
	plus2  = time.FixedZone("", 2*3600)
	berlin = time.FixedZone("CEST", 2*3600)
)

func TestDateTime_BeOneOfListsCandidatesInOrder(t *testing.T) {
	msg := failureOf(t, func() {
		DateTime(nil, june4).BeOneOf([]time.Time{june4.AddDate(0, 0, 1), june4.Add(time.Millisecond)})
	})

	assert.Equal(t,
		"Expected dateTime to be one of {<2016-06-05>, <2016-06-04 00:00:00.001>}, but found <2016-06-04>.",
		msg,
	)
}

func TestDateTime_BeOneOfNullMembership(t *testing.T) {
	passes(t, func() { NullableDateTime(nil, nil).BeOneOfNullable([]*time.Time{ptr(june4), nil}) })

	msg := failureOf(t, func() { NullableDateTime(nil, nil).BeOneOfNullable([]*time.Time{ptr(june4)}) })
	assert.Equal(t, "Expected dateTime to be one of {<2016-06-04>}, but found <null>.", msg)
}

func TestDateTime_BeIgnoresLocation(t *testing.T) {
	local := time.Date(2016, 6, 4, 2, 0, 0, 0, plus2)

	passes(t, func() { DateTime(nil, local).Be(june4) })

	msg := failureOf(t, func() { DateTime(nil, local).NotBe(june4) })
	assert.Equal(t, "Expected dateTime not to be <2016-06-04>, but it is.", msg)
}

func TestDateTime_BeAndNotBeAreComplements(t *testing.T) {
	for _, other := range []time.Time{june4, june4.Add(time.Nanosecond)} {
		be := assertion.Catch(func() { DateTime(nil, june4).Be(other) }) == nil
		notBe := assertion.Catch(func() { DateTime(nil, june4).NotBe(other) }) == nil
		assert.NotEqual(t, be, notBe)
	}
}

func TestDateTime_Nullable(t *testing.T) {
	passes(t, func() { DateTime(nil, june4).BeNullable(ptr(june4)) })
	passes(t, func() { NullableDateTime(nil, nil).BeNullable(nil).And.BeNull().And.NotHaveValue() })
	passes(t, func() { NullableDateTime(nil, ptr(june4)).HaveValue().And.NotBeNull() })

	msg := failureOf(t, func() { NullableDateTime(nil, nil).Be(june4, "because {0}", "it matters") })
	assert.Equal(t, "Expected dateTime to be <2016-06-04> because it matters, but found <null>.", msg)
}

func TestDateTimeOffset_RendersOffsets(t *testing.T) {
	subject := time.Date(2016, 6, 4, 10, 0, 0, 0, plus2)

	msg := failureOf(t, func() { DateTimeOffset(nil, subject).Be(subject.Add(time.Hour)) })
	assert.Equal(t,
		"Expected dateTimeOffset to be <2016-06-04 11:00:00 +2h>, but found <2016-06-04 10:00:00 +2h>.",
		msg,
	)
}

func TestDateTime_BeExactly(t *testing.T) {
	subject := time.Date(2016, 6, 4, 10, 0, 0, 0, plus2)

	passes(t, func() { DateTimeOffset(nil, subject).BeExactly(subject) })

	msg := failureOf(t, func() { DateTimeOffset(nil, subject).BeExactly(subject.UTC()) })
	assert.Equal(t,
		"Expected dateTimeOffset to be exactly <2016-06-04 08:00:00 +0h>, but found <2016-06-04 10:00:00 +2h>.",
		msg,
	)
}

func TestDateTime_BeforeAfterExclusivity(t *testing.T) {
	times := []time.Time{june4.Add(-time.Second), june4, june4.Add(time.Second)}
	for _, s := range times {
		before := assertion.Catch(func() { DateTime(nil, s).BeBefore(june4) }) == nil
		onOrAfter := assertion.Catch(func() { DateTime(nil, s).BeOnOrAfter(june4) }) == nil
		after := assertion.Catch(func() { DateTime(nil, s).BeAfter(june4) }) == nil
		onOrBefore := assertion.Catch(func() { DateTime(nil, s).BeOnOrBefore(june4) }) == nil

		assert.NotEqual(t, before, onOrAfter, "%v", s)
		assert.NotEqual(t, after, onOrBefore, "%v", s)
	}

	passes(t, func() { DateTime(nil, june4).BeOnOrBefore(june4).And.BeOnOrAfter(june4) })
	passes(t, func() {
		DateTime(nil, june4).NotBeBefore(june4).And.NotBeAfter(june4).
			And.NotBeOnOrBefore(june4.Add(-1)).And.NotBeOnOrAfter(june4.Add(1))
	})
}

func TestDateTime_OrderingMessages(t *testing.T) {
	msg := failureOf(t, func() { DateTime(nil, june4).BeBefore(june4) })
	assert.Equal(t, "Expected dateTime to be before <2016-06-04>, but found <2016-06-04>.", msg)

	msg = failureOf(t, func() { DateTime(nil, june4).Named("deadline").BeOnOrAfter(june4.AddDate(0, 0, 1)) })
	assert.Equal(t, "Expected deadline to be on or after <2016-06-05>, but found <2016-06-04>.", msg)

	msg = failureOf(t, func() { NullableDateTime(nil, nil).BeAfter(june4) })
	assert.Equal(t, "Expected dateTime to be after <2016-06-04>, but found <null>.", msg)
}

func TestDateTime_CloseTo(t *testing.T) {
	passes(t, func() { DateTime(nil, june4).BeCloseTo(june4.Add(20*time.Millisecond), 20*time.Millisecond) })
	passes(t, func() { DateTime(nil, june4).NotBeCloseTo(june4.Add(time.Second), 999*time.Millisecond) })

	msg := failureOf(t, func() { DateTime(nil, june4).BeCloseTo(june4.Add(time.Second), 100*time.Millisecond) })
	assert.Equal(t,
		"Expected dateTime to be within 100ms from <2016-06-04 00:00:01>, but <2016-06-04> was off by 1s.",
		msg,
	)

	msg = failureOf(t, func() { DateTime(nil, june4).NotBeCloseTo(june4, time.Second) })
	assert.Equal(t,
		"Did not expect dateTime to be within 1s from <2016-06-04>, but it was <2016-06-04>.",
		msg,
	)

	msg = failureOf(t, func() { NullableDateTime(nil, nil).BeCloseTo(june4, time.Second) })
	assert.Equal(t, "Expected dateTime to be within 1s from <2016-06-04>, but found <null>.", msg)

	err := argumentError(t, func() { DateTime(nil, june4).BeCloseTo(june4, -time.Second) })
	assert.Equal(t, "precision", err.Param)
}

func TestDateTime_Parts(t *testing.T) {
	moment := time.Date(2012, 3, 10, 14, 25, 36, 0, time.UTC)

	passes(t, func() {
		DateTime(nil, moment).HaveYear(2012).And.HaveMonth(time.March).And.HaveDay(10).
			And.HaveHour(14).And.HaveMinute(25).And.HaveSecond(36).
			And.NotHaveYear(2013).And.NotHaveMonth(time.April).And.NotHaveDay(11).
			And.NotHaveHour(1).And.NotHaveMinute(1).And.NotHaveSecond(1)
	})

	msg := failureOf(t, func() { DateTime(nil, moment).HaveYear(2011, "because {0}", "history") })
	assert.Equal(t, "Expected the year part of dateTime to be 2011 because history, but found 2012.", msg)

	msg = failureOf(t, func() { NullableDateTime(nil, nil).HaveDay(1) })
	assert.Equal(t, "Expected the day part of dateTime to be 1, but found <null> time.Time.", msg)

	msg = failureOf(t, func() { DateTime(nil, moment).NotHaveMonth(time.March) })
	assert.Equal(t, "Did not expect the month part of dateTime to be 3, but it was.", msg)

	msg = failureOf(t, func() { DateTime(nil, moment).HaveMonth(time.April) })
	assert.Equal(t, "Expected the month part of dateTime to be 4, but found 3.", msg)

	msg = failureOf(t, func() { NullableDateTime(nil, nil).NotHaveHour(3) })
	assert.Equal(t, "Did not expect the hour part of dateTime to be 3, but found <null> time.Time.", msg)
}

func TestDateTime_Offset(t *testing.T) {
	moment := time.Date(2016, 6, 4, 10, 0, 0, 0, plus2)

	passes(t, func() { DateTimeOffset(nil, moment).HaveOffset(2 * time.Hour) })

	msg := failureOf(t, func() { DateTimeOffset(nil, moment).HaveOffset(time.Hour) })
	assert.Equal(t, "Expected the offset part of dateTimeOffset to be 1h, but found 2h.", msg)
}

func TestDateTime_SameDate(t *testing.T) {
	moment := time.Date(2016, 6, 4, 23, 59, 0, 0, time.UTC)

	passes(t, func() { DateTime(nil, moment).BeSameDateAs(june4).And.NotBeSameDateAs(june4.AddDate(0, 0, 1)) })

	msg := failureOf(t, func() { DateTime(nil, moment).BeSameDateAs(june4.AddDate(0, 0, 1)) })
	assert.Equal(t,
		"Expected the date part of dateTime to be <2016-06-05>, but found <2016-06-04 23:59:00>.",
		msg,
	)

	msg = failureOf(t, func() { DateTime(nil, moment).NotBeSameDateAs(june4) })
	assert.Equal(t, "Expected the date part of dateTime to not be <2016-06-04>, but it was.", msg)

	msg = failureOf(t, func() { NullableDateTime(nil, nil).BeSameDateAs(june4) })
	assert.Equal(t, "Expected the date part of dateTime to be <2016-06-04>, but found <null> time.Time.", msg)
}

func TestDateTime_BeIn(t *testing.T) {
	moment := time.Date(2016, 6, 4, 10, 0, 0, 0, berlin)

	passes(t, func() { DateTime(nil, moment).BeIn(berlin) })

	msg := failureOf(t, func() { DateTime(nil, moment).BeIn(time.UTC) })
	assert.Equal(t, "Expected dateTime to be in UTC, but found CEST.", msg)

	err := argumentError(t, func() { DateTime(nil, moment).BeIn(nil) })
	assert.Equal(t, "location", err.Param)
}

func TestTimeSpanCondition(t *testing.T) {
	target := june4.Add(time.Hour)
	subject := june4.Add(41 * time.Minute)

	passes(t, func() { DateTime(nil, subject).BeWithin(20 * time.Minute).Before(target) })
	passes(t, func() { DateTime(nil, subject).BeLessThan(20 * time.Minute).Before(target) })
	passes(t, func() { DateTime(nil, subject).BeAtLeast(19 * time.Minute).Before(target) })
	passes(t, func() { DateTime(nil, subject).BeExactlyApart(19 * time.Minute).Before(target) })
	passes(t, func() { DateTime(nil, target).BeMoreThan(18 * time.Minute).After(subject) })

	msg := failureOf(t, func() { DateTime(nil, subject).BeWithin(10 * time.Minute).Before(target) })
	assert.Equal(t,
		"Expected dateTime <2016-06-04 00:41:00> to be within 10m before <2016-06-04 01:00:00>, but it is behind by 19m.",
		msg,
	)

	msg = failureOf(t, func() { DateTime(nil, subject).BeWithin(30 * time.Minute).After(target) })
	assert.Equal(t,
		"Expected dateTime <2016-06-04 00:41:00> to be within 30m after <2016-06-04 01:00:00>, but it is behind by 19m.",
		msg,
	)

	msg = failureOf(t, func() { DateTime(nil, target).BeMoreThan(time.Hour).After(subject, "because {0}", "gaps") })
	assert.Equal(t,
		"Expected dateTime <2016-06-04 01:00:00> to be more than 1h after <2016-06-04 00:41:00> because gaps, but it is ahead by 19m.",
		msg,
	)

	msg = failureOf(t, func() { NullableDateTime(nil, nil).BeAtLeast(time.Minute).Before(target) })
	assert.Equal(t,
		"Expected dateTime to be at least 1m before <2016-06-04 01:00:00>, but found <null> time.Time.",
		msg,
	)
}

func TestTimeSpanCondition_EqualsIsUnsupported(t *testing.T) {
	err := unsupported(t, func() { DateTime(nil, june4).BeWithin(time.Second).Equals(nil) })

	assert.Equal(t,
		"Equals is not part of Fluent Assertions. Did you mean Before() or After() instead?",
		err.Error(),
	)
}

func TestDateTime_EqualsIsUnsupported(t *testing.T) {
	unsupported(t, func() { DateTime(nil, june4).Equals(june4) })
}
