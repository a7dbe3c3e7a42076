package render

import (
	"fmt"
	"strings"
	"time"
)

type offsetTime time.Time

func (o offsetTime) RenderValue() string {
	return "<" + Time(time.Time(o), true) + ">"
}

// WithOffset wraps t so that it renders with its UTC offset,
// e.g. <2016-06-04 10:00:00 +2h>.
func WithOffset(t time.Time) Renderer {
	return offsetTime(t)
}

// Time formats t without angle brackets. The date is printed as
// yyyy-MM-dd and the clock as HH:mm:ss only when it is not
// midnight; sub-second precision is printed as .fff, or with full
// nanoseconds when it is not a whole millisecond.
func Time(t time.Time, withOffset bool) string {
	var sb strings.Builder

	y, m, d := t.Date()
	hasDate := !(y == 1 && m == time.January && d == 1)
	ns := t.Nanosecond()
	hasClock := t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || ns != 0

	if hasDate || !hasClock {
		sb.WriteString(t.Format("2006-01-02"))
	}

	if hasClock {
		if hasDate {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Format("15:04:05"))
		if ns != 0 {
			if ns%int(time.Millisecond) == 0 {
				fmt.Fprintf(&sb, ".%03d", ns/int(time.Millisecond))
			} else {
				fmt.Fprintf(&sb, ".%09d", ns)
			}
		}
	}

	if withOffset {
		sb.WriteByte(' ')
		sb.WriteString(Offset(t))
	}

	return sb.String()
}

// Offset renders the UTC offset of t as +Nh or +NhMm.
func Offset(t time.Time) string {
	_, secs := t.Zone()

	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}

	hours := secs / 3600
	minutes := secs % 3600 / 60
	if minutes == 0 {
		return fmt.Sprintf("%s%dh", sign, hours)
	}
	return fmt.Sprintf("%s%dh%dm", sign, hours, minutes)
}

// Duration renders d as its non-zero components, largest first:
// "1d, 2h, 3m, 4s, 5ms". A zero duration renders as "0s".
func Duration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	// Work on the magnitude as uint64 so math.MinInt64 does not
	// overflow when negated.
	sign := ""
	mag := uint64(d)
	if d < 0 {
		sign = "-"
		mag = uint64(-(d + 1)) + 1
	}

	units := []struct {
		size   uint64
		suffix string
	}{
		{uint64(24 * time.Hour), "d"},
		{uint64(time.Hour), "h"},
		{uint64(time.Minute), "m"},
		{uint64(time.Second), "s"},
		{uint64(time.Millisecond), "ms"},
		{uint64(time.Microsecond), "µs"},
		{uint64(time.Nanosecond), "ns"},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		if n := mag / u.size; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
			mag -= n * u.size
		}
	}

	return sign + strings.Join(parts, ", ")
}
