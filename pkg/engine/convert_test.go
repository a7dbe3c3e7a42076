package engine

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.fluent/pkg/chrono"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{1, 1},
		{int64(-2), -2},
		{2.5, 2.5},
		{float32(0.5), 0.5},
		{"1e3", 1000},
		{json.Number("42"), 42},
		{"-Inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		got, err := toFloat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	nan, err := toFloat("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan))

	_, err = toFloat([]any{})
	assert.Equal(t, ErrInvalidDefinition, errors.Cause(err))
}

func TestToInt(t *testing.T) {
	n, err := toInt(7.0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = toInt(7.5)
	assert.EqualError(t, err, "cannot use 7.5 (float64) as integer: invalid definition")
}

func TestToMonth(t *testing.T) {
	m, err := toMonth("march")
	require.NoError(t, err)
	assert.Equal(t, time.March, m)

	m, err = toMonth(12)
	require.NoError(t, err)
	assert.Equal(t, time.December, m)

	_, err = toMonth(13)
	assert.Error(t, err)
}

func TestToDateTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2016-06-04", time.Date(2016, 6, 4, 0, 0, 0, 0, time.UTC)},
		{"2016-06-04T10:20:30Z", time.Date(2016, 6, 4, 10, 20, 30, 0, time.UTC)},
		{"2016-06-04 10:20:30.5", time.Date(2016, 6, 4, 10, 20, 30, 5e8, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := toDateTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}

	withOffset, err := toDateTime("2016-06-04T10:00:00+02:00")
	require.NoError(t, err)
	_, offset := withOffset.Zone()
	assert.Equal(t, 7200, offset)

	_, err = toDateTime("yesterday")
	assert.EqualError(t, err, "cannot use yesterday (string) as timestamp: invalid definition")
}

func TestToDateOnlyAndTimeOnly(t *testing.T) {
	d, err := toDateOnly("2012-03-10")
	require.NoError(t, err)
	assert.Equal(t, chrono.NewDateOnly(2012, time.March, 10), d)

	tod, err := toTimeOnly("13:45:10.250")
	require.NoError(t, err)
	assert.Equal(t, chrono.NewTimeOnly(13, 45, 10, 250_000_000), tod)

	_, err = toTimeOnly("25:00")
	assert.Error(t, err)
}

func TestToDuration(t *testing.T) {
	d, err := toDuration("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	d, err = toDuration(250)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	_, err = toDuration(true)
	assert.Error(t, err)
}

func TestToGUIDAndLocation(t *testing.T) {
	u, err := toGUID("6f9619ff-8b86-d011-b42d-00c04fc964ff")
	require.NoError(t, err)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", u.String())

	_, err = toGUID("nope")
	assert.Error(t, err)

	loc, err := toLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = toLocation("Mars/Olympus")
	assert.EqualError(t, err, `unknown location "Mars/Olympus": invalid definition`)
}

func TestToNullableSlice(t *testing.T) {
	values, err := toNullableSlice([]any{1, nil}, toFloat)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, 1.0, *values[0])
	assert.Nil(t, values[1])

	_, err = toSlice([]any{1, "x"}, toFloat)
	assert.EqualError(t, err, "values[1]: cannot use x (string) as number: invalid definition")
}
