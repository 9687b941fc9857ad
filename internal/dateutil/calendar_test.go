package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticHelpers(t *testing.T) {
	base := time.Date(2024, time.March, 10, 8, 15, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 15, 8, 15, 0, 0, time.UTC), AddDays(base, 5))
	assert.Equal(t, time.Date(2024, time.March, 5, 8, 15, 0, 0, time.UTC), AddDays(base, -5))
	assert.Equal(t, time.Date(2024, time.March, 10, 11, 15, 0, 0, time.UTC), AddHours(base, 3))
	assert.Equal(t, time.Date(2024, time.March, 10, 8, 45, 0, 0, time.UTC), AddMinutes(base, 30))

	// Input must remain untouched.
	assert.Equal(t, time.Date(2024, time.March, 10, 8, 15, 0, 0, time.UTC), base)
}

func TestDayBoundaries(t *testing.T) {
	mid := time.Date(2024, time.March, 10, 13, 45, 30, 123456789, time.UTC)

	start := StartOfDay(mid)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), start)

	end := EndOfDay(mid)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.Before(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)))
}

func TestWeekBoundaries(t *testing.T) {
	tests := []struct {
		name          string
		input         time.Time
		expectedStart time.Time
	}{
		{
			name:          "wednesday maps to preceding monday",
			input:         time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC), // Wednesday
			expectedStart: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "monday maps to itself",
			input:         time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "sunday belongs to week started previous monday",
			input:         time.Date(2024, time.June, 16, 20, 0, 0, 0, time.UTC), // Sunday
			expectedStart: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := StartOfWeek(tt.input)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, time.Monday, start.Weekday())

			end := EndOfWeek(tt.input)
			assert.Equal(t, time.Sunday, end.Weekday())
			assert.True(t, end.After(start))
		})
	}
}

func TestMonthBoundaries(t *testing.T) {
	leapFeb := time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(leapFeb))
	assert.Equal(t, 29, EndOfMonth(leapFeb).Day())

	dec := time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 31, EndOfMonth(dec).Day())
	assert.Equal(t, time.December, EndOfMonth(dec).Month())
}

func TestDayPredicates(t *testing.T) {
	now := time.Date(2024, time.June, 12, 12, 0, 0, 0, time.UTC) // Wednesday

	assert.True(t, IsToday(time.Date(2024, time.June, 12, 23, 59, 0, 0, time.UTC), now))
	assert.False(t, IsToday(time.Date(2024, time.June, 13, 0, 0, 1, 0, time.UTC), now))

	assert.True(t, IsYesterday(time.Date(2024, time.June, 11, 1, 0, 0, 0, time.UTC), now))
	assert.True(t, IsTomorrow(time.Date(2024, time.June, 13, 22, 0, 0, 0, time.UTC), now))
	assert.False(t, IsYesterday(now, now))
	assert.False(t, IsTomorrow(now, now))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2024, time.June, 16, 10, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, IsWeekend(time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC))) // Wednesday
}

func TestIsBusinessHours(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{name: "weekday mid-morning", input: time.Date(2024, time.June, 12, 10, 30, 0, 0, time.UTC), expected: true},
		{name: "weekday opening hour", input: time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC), expected: true},
		{name: "weekday last business hour", input: time.Date(2024, time.June, 12, 18, 59, 0, 0, time.UTC), expected: true},
		{name: "weekday after close", input: time.Date(2024, time.June, 12, 19, 0, 0, 0, time.UTC), expected: false},
		{name: "weekday before open", input: time.Date(2024, time.June, 12, 8, 59, 0, 0, time.UTC), expected: false},
		{name: "saturday mid-morning", input: time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBusinessHours(tt.input))
		})
	}
}

func TestDiff(t *testing.T) {
	a := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		a, b     time.Time
		unit     Unit
		expected int64
	}{
		{name: "same instant is zero in days", a: a, b: a, unit: UnitDays, expected: 0},
		{name: "same instant is zero in seconds", a: a, b: a, unit: UnitSeconds, expected: 0},
		{name: "order does not matter", a: a, b: a.AddDate(0, 0, 10), unit: UnitDays, expected: 10},
		{name: "hours", a: a.Add(30 * time.Hour), b: a, unit: UnitHours, expected: 30},
		{name: "weeks truncate", a: a.AddDate(0, 0, 13), b: a, unit: UnitWeeks, expected: 1},
		{name: "months use fixed 30-day buckets", a: a.AddDate(0, 0, 61), b: a, unit: UnitMonths, expected: 2},
		{name: "years use fixed 365-day buckets", a: a.AddDate(0, 0, 365), b: a, unit: UnitYears, expected: 1},
		{name: "unknown unit counts days", a: a.AddDate(0, 0, 3), b: a, unit: Unit("bogus"), expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Diff(tt.a, tt.b, tt.unit))
		})
	}
}

func TestRange(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("single element when start equals end", func(t *testing.T) {
		seq := Range(start, start, UnitDays)
		require.Len(t, seq, 1)
		assert.Equal(t, start, seq[0])
	})

	t.Run("daily steps are inclusive", func(t *testing.T) {
		seq := Range(start, start.AddDate(0, 0, 4), UnitDays)
		require.Len(t, seq, 5)
		assert.Equal(t, start, seq[0])
		assert.Equal(t, start.AddDate(0, 0, 4), seq[4])
	})

	t.Run("weekly steps", func(t *testing.T) {
		seq := Range(start, start.AddDate(0, 0, 21), UnitWeeks)
		require.Len(t, seq, 4)
		assert.Equal(t, start.AddDate(0, 0, 7), seq[1])
	})

	t.Run("monthly steps", func(t *testing.T) {
		seq := Range(start, start.AddDate(0, 3, 0), UnitMonths)
		require.Len(t, seq, 4)
		assert.Equal(t, time.July, seq[1].Month())
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		assert.Empty(t, Range(start.AddDate(0, 0, 1), start, UnitDays))
	})
}

func TestPresetRanges(t *testing.T) {
	now := time.Date(2024, time.June, 12, 15, 30, 0, 0, time.UTC) // Wednesday

	ranges := PresetRanges(now)
	require.Len(t, ranges, 9)

	byLabel := make(map[string]DateRange, len(ranges))
	for _, r := range ranges {
		byLabel[r.Label] = r
	}

	today := byLabel["Hoy"]
	assert.Equal(t, StartOfDay(now), today.Start)
	assert.True(t, today.Contains(now))

	yesterday := byLabel["Ayer"]
	assert.Equal(t, 11, yesterday.Start.Day())
	assert.Equal(t, 11, yesterday.End.Day())

	thisWeek := byLabel["Esta semana"]
	assert.Equal(t, time.Monday, thisWeek.Start.Weekday())
	assert.Equal(t, time.Sunday, thisWeek.End.Weekday())

	last7 := byLabel["Últimos 7 días"]
	assert.Equal(t, int64(6), Diff(last7.End, last7.Start, UnitDays))

	last30 := byLabel["Últimos 30 días"]
	assert.True(t, last30.Contains(now.AddDate(0, 0, -29)))
	assert.False(t, last30.Contains(now.AddDate(0, 0, -30)))

	lastMonth := byLabel["Mes pasado"]
	assert.Equal(t, time.May, lastMonth.Start.Month())
	assert.Equal(t, 31, lastMonth.End.Day())
}
