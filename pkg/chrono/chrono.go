// Package chrono provides calendar-date and time-of-day value
// types for assertions that must not carry a time zone or a
// clock component.
package chrono

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// DateOnly is a calendar date without a time of day. The zero
// value is 0000-01-01. Values built by NewDateOnly are
// comparable with ==.
type DateOnly struct {
	year  int
	month time.Month
	day   int
}

// NewDateOnly returns the date for the given year, month and
// day. Out-of-range values are normalized the way time.Date
// normalizes them.
func NewDateOnly(year int, month time.Month, dayOfMonth int) DateOnly {
	return DateOnlyFromTime(
		time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC),
	)
}

// DateOnlyFromTime returns the calendar date of t in t's own
// location.
func DateOnlyFromTime(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{year: y, month: m, day: d}
}

// Year returns the year.
func (d DateOnly) Year() int { return d.year }

// Month returns the month.
func (d DateOnly) Month() time.Month {
	if d.month == 0 {
		return time.January
	}
	return d.month
}

// Day returns the day of the month.
func (d DateOnly) Day() int {
	if d.day == 0 {
		return 1
	}
	return d.day
}

// Time returns midnight UTC at the start of the date.
func (d DateOnly) Time() time.Time {
	return time.Date(d.year, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier when negative).
func (d DateOnly) AddDays(n int) DateOnly {
	return DateOnlyFromTime(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before,
// equal to or after other.
func (d DateOnly) Compare(other DateOnly) int {
	return d.Time().Compare(other.Time())
}

// Before reports whether d is strictly before other.
func (d DateOnly) Before(other DateOnly) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d DateOnly) After(other DateOnly) bool { return d.Compare(other) > 0 }

// Equal reports whether both values name the same date.
func (d DateOnly) Equal(other DateOnly) bool { return d.Compare(other) == 0 }

// String formats the date as yyyy-MM-dd.
func (d DateOnly) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.Month()), d.Day())
}

// TimeOnly is a time of day in the range [00:00, 24:00) with
// nanosecond resolution. The zero value is midnight.
type TimeOnly struct {
	offset time.Duration
}

// NewTimeOnly returns the time of day for the given components.
// Values past midnight wrap around.
func NewTimeOnly(hour, minute, second, nanosecond int) TimeOnly {
	return TimeOnlyOf(
		time.Duration(hour)*time.Hour +
			time.Duration(minute)*time.Minute +
			time.Duration(second)*time.Second +
			time.Duration(nanosecond),
	)
}

// TimeOnlyOf returns the time of day that lies d after midnight,
// wrapping around a full day.
func TimeOnlyOf(d time.Duration) TimeOnly {
	d %= day
	if d < 0 {
		d += day
	}
	return TimeOnly{offset: d}
}

// TimeOnlyFromTime returns the clock reading of t in t's own
// location.
func TimeOnlyFromTime(t time.Time) TimeOnly {
	return NewTimeOnly(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// SinceMidnight returns the offset of the time of day.
func (t TimeOnly) SinceMidnight() time.Duration { return t.offset }

// Hour returns the hour component.
func (t TimeOnly) Hour() int { return int(t.offset / time.Hour) }

// Minute returns the minute component.
func (t TimeOnly) Minute() int { return int(t.offset % time.Hour / time.Minute) }

// Second returns the second component.
func (t TimeOnly) Second() int { return int(t.offset % time.Minute / time.Second) }

// Millisecond returns the millisecond component.
func (t TimeOnly) Millisecond() int {
	return int(t.offset % time.Second / time.Millisecond)
}

// Nanosecond returns the sub-second component in nanoseconds.
func (t TimeOnly) Nanosecond() int { return int(t.offset % time.Second) }

// Add returns the time of day d later, wrapping around midnight.
func (t TimeOnly) Add(d time.Duration) TimeOnly {
	return TimeOnlyOf(t.offset + d)
}

// Compare returns -1, 0 or +1 depending on whether t is before,
// equal to or after other.
func (t TimeOnly) Compare(other TimeOnly) int {
	switch {
	case t.offset < other.offset:
		return -1
	case t.offset > other.offset:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly before other.
func (t TimeOnly) Before(other TimeOnly) bool { return t.offset < other.offset }

// After reports whether t is strictly after other.
func (t TimeOnly) After(other TimeOnly) bool { return t.offset > other.offset }

// Equal reports whether both values name the same time of day.
func (t TimeOnly) Equal(other TimeOnly) bool { return t.offset == other.offset }

// Distance returns the shortest span between t and other on a
// 24-hour clock, so 23:59 and 00:01 are two minutes apart.
func (t TimeOnly) Distance(other TimeOnly) time.Duration {
	diff := t.offset - other.offset
	if diff < 0 {
		diff = -diff
	}
	if diff > day/2 {
		diff = day - diff
	}
	return diff
}

// String formats the time as HH:mm:ss with a .fff suffix when
// there is a sub-second component.
func (t TimeOnly) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		if ns%int(time.Millisecond) == 0 {
			s += fmt.Sprintf(".%03d", ns/int(time.Millisecond))
		} else {
			s += fmt.Sprintf(".%09d", ns)
		}
	}
	return s
}
