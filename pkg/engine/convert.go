package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/chrono"
)

// ErrInvalidDefinition is the cause of every conversion error.
var ErrInvalidDefinition = errors.New("invalid definition")

func invalid(v any, want string) error {
	return errors.Wrapf(ErrInvalidDefinition, "cannot use %v (%T) as %s", v, v, want)
}

// dateTimeLayouts are tried in order when parsing timestamps.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, invalid(v, "bool")
		}
		return parsed, nil
	}
	return false, invalid(v, "bool")
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, invalid(v, "number")
		}
		return f, nil
	case string:
		switch strings.ToLower(n) {
		case "nan":
			return math.NaN(), nil
		case "inf", "+inf":
			return math.Inf(1), nil
		case "-inf":
			return math.Inf(-1), nil
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, invalid(v, "number")
		}
		return f, nil
	}
	return 0, invalid(v, "number")
}

func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, invalid(v, "integer")
	}
	return int(f), nil
}

func toMonth(v any) (time.Month, error) {
	if s, ok := v.(string); ok {
		for m := time.January; m <= time.December; m++ {
			if strings.EqualFold(m.String(), s) {
				return m, nil
			}
		}
	}
	n, err := toInt(v)
	if err != nil || n < 1 || n > 12 {
		return 0, invalid(v, "month")
	}
	return time.Month(n), nil
}

func toString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case bool, int, int64, float64, json.Number:
		return fmt.Sprint(s), nil
	}
	return "", invalid(v, "string")
}

func toDateTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range dateTimeLayouts {
			parsed, err := time.Parse(layout, t)
			if err == nil {
				return parsed, nil
			}
		}
	}
	return time.Time{}, invalid(v, "timestamp")
}

func toDateOnly(v any) (chrono.DateOnly, error) {
	switch d := v.(type) {
	case chrono.DateOnly:
		return d, nil
	case time.Time:
		return chrono.DateOnlyFromTime(d), nil
	case string:
		parsed, err := time.Parse("2006-01-02", d)
		if err == nil {
			return chrono.DateOnlyFromTime(parsed), nil
		}
	}
	return chrono.DateOnly{}, invalid(v, "date")
}

func toTimeOnly(v any) (chrono.TimeOnly, error) {
	switch t := v.(type) {
	case chrono.TimeOnly:
		return t, nil
	case string:
		for _, layout := range []string{"15:04:05.999999999", "15:04"} {
			parsed, err := time.Parse(layout, t)
			if err == nil {
				return chrono.TimeOnlyFromTime(parsed), nil
			}
		}
	}
	return chrono.TimeOnly{}, invalid(v, "time of day")
}

func toDuration(v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err == nil {
			return parsed, nil
		}
	case int:
		return time.Duration(d) * time.Millisecond, nil
	}
	return 0, invalid(v, "duration")
}

func toGUID(v any) (uuid.UUID, error) {
	switch u := v.(type) {
	case uuid.UUID:
		return u, nil
	case string:
		parsed, err := uuid.Parse(u)
		if err == nil {
			return parsed, nil
		}
	}
	return uuid.Nil, invalid(v, "guid")
}

func toLocation(v any) (*time.Location, error) {
	name, ok := v.(string)
	if !ok {
		return nil, invalid(v, "location")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDefinition, "unknown location %q", name)
	}
	return loc, nil
}

func toAny(v any) (any, error) {
	return v, nil
}

// field decorates conversion errors with the definition field
// they came from.
func field[V any](name string, conv func(any) (V, error)) func(any) (V, error) {
	return func(v any) (V, error) {
		out, err := conv(v)
		if err != nil {
			return out, errors.WithMessage(err, name)
		}
		return out, nil
	}
}

func toSlice[V any](vs []any, conv func(any) (V, error)) ([]V, error) {
	out := make([]V, 0, len(vs))
	for i, v := range vs {
		c, err := conv(v)
		if err != nil {
			return nil, errors.WithMessagef(err, "values[%d]", i)
		}
		out = append(out, c)
	}
	return out, nil
}

func toNullableSlice[V any](vs []any, conv func(any) (V, error)) ([]*V, error) {
	out := make([]*V, 0, len(vs))
	for i, v := range vs {
		if v == nil {
			out = append(out, nil)
			continue
		}
		c, err := conv(v)
		if err != nil {
			return nil, errors.WithMessagef(err, "values[%d]", i)
		}
		out = append(out, &c)
	}
	return out, nil
}
