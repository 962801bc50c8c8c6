package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeOfDay(t *testing.T) {
	loc, err := time.LoadLocation(CivilTimezone)
	require.NoError(t, err)

	c := NewCivilClock()

	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"morning", time.Date(2024, 3, 1, 9, 5, 0, 0, loc), "09:05 AM"},
		{"noon", time.Date(2024, 3, 1, 12, 0, 0, 0, loc), "12:00 PM"},
		{"midnight", time.Date(2024, 3, 1, 0, 30, 0, 0, loc), "12:30 AM"},
		{"evening", time.Date(2024, 3, 1, 18, 45, 0, 0, loc), "06:45 PM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.FormatTimeOfDay(tc.in))
		})
	}
}

func TestFormatTimeOfDayConvertsZone(t *testing.T) {
	c := NewCivilClock()

	// 03:30 UTC is 09:00 in IST.
	in := time.Date(2024, 3, 1, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "09:00 AM", c.FormatTimeOfDay(in))
}

func TestTodayIsMidnight(t *testing.T) {
	loc, err := time.LoadLocation(CivilTimezone)
	require.NoError(t, err)

	fixed := Fixed(time.Date(2024, 3, 1, 23, 59, 59, 0, loc))
	today := fixed.Today()

	assert.Equal(t, 2024, today.Year())
	assert.Equal(t, time.March, today.Month())
	assert.Equal(t, 1, today.Day())
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
}

func TestMidnightKeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation(CivilTimezone)
	require.NoError(t, err)

	in := time.Date(2024, 6, 15, 13, 22, 7, 0, loc)
	got := Midnight(in)
	assert.Equal(t, loc, got.Location())
	assert.True(t, got.Before(in))
}
