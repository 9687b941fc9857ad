package dateutil

import (
	"time"
)

// DateRange is an inclusive pair of instants with an optional display label.
type DateRange struct {
	Label string    `json:"label,omitempty"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// PresetRanges returns the named ranges the dashboard offers as filters, each
// computed against the supplied instant. Nothing is cached; callers get fresh
// boundaries on every call.
func PresetRanges(now time.Time) []DateRange {
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)
	lastMonth := now.AddDate(0, -1, 0)

	return []DateRange{
		{Label: "Hoy", Start: StartOfDay(now), End: EndOfDay(now)},
		{Label: "Ayer", Start: StartOfDay(yesterday), End: EndOfDay(yesterday)},
		{Label: "Esta semana", Start: StartOfWeek(now), End: EndOfWeek(now)},
		{Label: "Semana pasada", Start: StartOfWeek(lastWeek), End: EndOfWeek(lastWeek)},
		{Label: "Este mes", Start: StartOfMonth(now), End: EndOfMonth(now)},
		{Label: "Mes pasado", Start: StartOfMonth(lastMonth), End: EndOfMonth(lastMonth)},
		{Label: "Últimos 7 días", Start: StartOfDay(now.AddDate(0, 0, -6)), End: EndOfDay(now)},
		{Label: "Últimos 30 días", Start: StartOfDay(now.AddDate(0, 0, -29)), End: EndOfDay(now)},
		{Label: "Últimos 90 días", Start: StartOfDay(now.AddDate(0, 0, -89)), End: EndOfDay(now)},
	}
}
