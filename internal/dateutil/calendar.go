package dateutil

import (
	"time"
)

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddHours returns t shifted by n hours.
func AddHours(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Hour)
}

// AddMinutes returns t shifted by n minutes.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// StartOfDay returns t floored to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns local midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// EndOfWeek returns the last instant of the Sunday of t's week.
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns local midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// sameDay compares calendar fields only, never raw instants, so time-of-day
// differences are ignored.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the same calendar day as now.
func IsToday(t, now time.Time) bool {
	return sameDay(t, now)
}

// IsYesterday reports whether t falls on the calendar day before now.
func IsYesterday(t, now time.Time) bool {
	return sameDay(t, now.AddDate(0, 0, -1))
}

// IsTomorrow reports whether t falls on the calendar day after now.
func IsTomorrow(t, now time.Time) bool {
	return sameDay(t, now.AddDate(0, 0, 1))
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessHours reports whether t falls on a weekday between 09:00 and
// 18:59 local time.
func IsBusinessHours(t time.Time) bool {
	if IsWeekend(t) {
		return false
	}
	return t.Hour() >= 9 && t.Hour() < 19
}

// Unit identifies a calendar step or difference unit
type Unit string

const (
	UnitSeconds Unit = "seconds"
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
	UnitDays    Unit = "days"
	UnitWeeks   Unit = "weeks"
	UnitMonths  Unit = "months"
	UnitYears   Unit = "years"
)

// unitMillis holds the fixed unit lengths used by Diff. Months and years are
// approximated at 30 and 365 days; this matches historical report behavior
// and is intentionally not calendar-accurate.
var unitMillis = map[Unit]int64{
	UnitSeconds: 1000,
	UnitMinutes: 60 * 1000,
	UnitHours:   60 * 60 * 1000,
	UnitDays:    24 * 60 * 60 * 1000,
	UnitWeeks:   7 * 24 * 60 * 60 * 1000,
	UnitMonths:  30 * 24 * 60 * 60 * 1000,
	UnitYears:   365 * 24 * 60 * 60 * 1000,
}

// Diff returns the non-negative difference between a and b in the requested
// unit, truncated toward zero. Unknown units count in days.
func Diff(a, b time.Time, unit Unit) int64 {
	ms := a.Sub(b).Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	length, ok := unitMillis[unit]
	if !ok {
		length = unitMillis[UnitDays]
	}
	return ms / length
}

// Range produces the inclusive ascending sequence of instants from start to
// end, stepping by the given unit (days, weeks or months). An inverted range
// yields an empty slice.
func Range(start, end time.Time, step Unit) []time.Time {
	var out []time.Time
	for cur := start; !cur.After(end); {
		out = append(out, cur)
		switch step {
		case UnitWeeks:
			cur = cur.AddDate(0, 0, 7)
		case UnitMonths:
			cur = cur.AddDate(0, 1, 0)
		default:
			cur = cur.AddDate(0, 0, 1)
		}
	}
	return out
}
