package dateutil

import (
	"fmt"
	"time"
)

// InvalidDateSentinel is returned by formatting functions when the input is
// not a usable date. Callers render it as-is instead of handling an error.
const InvalidDateSentinel = "Fecha inválida"

// Style selects a named date presentation
type Style string

const (
	StyleDefault Style = "default" // 15/01/2024
	StyleShort   Style = "short"   // 15/01/24
	StyleLong    Style = "long"    // 15 de enero de 2024
	StyleNumeric Style = "numeric" // 2024-01-15
)

// spanishMonths maps time.Month to its lowercase Spanish name
var spanishMonths = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// FormatDate renders t in the requested style. A zero time is treated as
// invalid and yields the sentinel string rather than an error.
func FormatDate(t time.Time, style Style) string {
	if t.IsZero() {
		return InvalidDateSentinel
	}
	switch style {
	case StyleShort:
		return t.Format("02/01/06")
	case StyleLong:
		return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()], t.Year())
	case StyleNumeric:
		return t.Format("2006-01-02")
	default:
		return t.Format("02/01/2006")
	}
}

// relativeUnit pairs a fixed unit length with its Spanish singular/plural names
type relativeUnit struct {
	length   time.Duration
	singular string
	plural   string
}

// Fixed-length buckets. Months are 30 days and years 365 days on purpose:
// the relative phrasing is approximate and must stay stable across callers.
var relativeUnits = []relativeUnit{
	{365 * 24 * time.Hour, "año", "años"},
	{30 * 24 * time.Hour, "mes", "meses"},
	{7 * 24 * time.Hour, "semana", "semanas"},
	{24 * time.Hour, "día", "días"},
	{time.Hour, "hora", "horas"},
	{time.Minute, "minuto", "minutos"},
	{time.Second, "segundo", "segundos"},
}

// FormatRelative renders t relative to now ("hace 3 días", "en 2 horas"),
// picking the largest unit whose count is at least one. Differences beyond a
// year fall back to an absolute short date.
func FormatRelative(t, now time.Time) string {
	if t.IsZero() {
		return InvalidDateSentinel
	}

	diff := t.Sub(now)
	past := diff < 0
	if past {
		diff = -diff
	}

	if diff >= 365*24*time.Hour {
		return FormatDate(t, StyleShort)
	}
	if diff < time.Second {
		return "ahora"
	}

	for _, unit := range relativeUnits {
		count := int64(diff / unit.length)
		if count < 1 {
			continue
		}
		name := unit.plural
		if count == 1 {
			name = unit.singular
		}
		if past {
			return fmt.Sprintf("hace %d %s", count, name)
		}
		return fmt.Sprintf("en %d %s", count, name)
	}
	return "ahora"
}

// durationUnit pairs a millisecond length with its compact label
type durationUnit struct {
	millis int64
	label  string
}

var durationUnits = []durationUnit{
	{365 * 24 * 60 * 60 * 1000, "a"},
	{30 * 24 * 60 * 60 * 1000, "me"},
	{7 * 24 * 60 * 60 * 1000, "sem"},
	{24 * 60 * 60 * 1000, "d"},
	{60 * 60 * 1000, "h"},
	{60 * 1000, "m"},
	{1000, "s"},
}

// FormatDuration decomposes a millisecond count greedily into the largest
// applicable units and renders up to maxUnits groups ("2d 5h 3m"). Negative
// or zero input yields "0s". withMillis appends a trailing millisecond group
// when a remainder exists.
func FormatDuration(ms int64, maxUnits int, withMillis bool) string {
	if ms <= 0 {
		return "0s"
	}
	if maxUnits <= 0 {
		maxUnits = 2
	}

	var parts []string
	remaining := ms
	for _, unit := range durationUnits {
		if len(parts) >= maxUnits {
			break
		}
		count := remaining / unit.millis
		if count < 1 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", count, unit.label))
		remaining -= count * unit.millis
	}
	if withMillis && remaining > 0 && len(parts) < maxUnits {
		parts = append(parts, fmt.Sprintf("%dms", remaining))
	}
	if len(parts) == 0 {
		// Sub-second input without the millisecond group enabled.
		return "0s"
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}
