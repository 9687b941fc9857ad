package exporter

import (
	"errors"
	"sort"
	"time"

	"cocopet/internal/dateutil"
)

// Typed failures returned by the marshalers. Callers branch on these instead
// of string-matching error text.
var (
	ErrNoData       = errors.New("no data to export")
	ErrBadFormat    = errors.New("unsupported export format")
	ErrBadDelimiter = errors.New("invalid delimiter")
)

// Record is one row of exportable data keyed by column name. Values are
// scalars (string, numeric, bool, nil) or time.Time.
type Record map[string]any

// Format identifies the target serialization
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel" // tab-delimited text fallback
	FormatJSON  Format = "json"
	FormatXLSX  Format = "xlsx"
)

// MIME types for the produced artifacts
const (
	MIMECSV  = "text/csv;charset=utf-8"
	MIMEJSON = "application/json"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Options configures one export call. Constructed fresh per call; nothing is
// shared between exports.
type Options struct {
	Format         Format         `json:"format" validate:"omitempty,oneof=csv excel json xlsx"`
	Delimiter      rune           `json:"-"`
	IncludeHeaders bool           `json:"include_headers"`
	Columns        []string       `json:"columns,omitempty"`
	DateStyle      dateutil.Style `json:"date_style,omitempty"`
	Indent         int            `json:"indent" validate:"gte=0,lte=8"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	// Now is the instant stamped into filenames and JSON documents. The
	// caller injects it so exports are reproducible in tests.
	Now time.Time `json:"-"`
}

// DefaultOptions returns the options used by the dashboard's one-click
// exports: comma-separated CSV with headers and default date rendering.
func DefaultOptions() Options {
	return Options{
		Format:         FormatCSV,
		Delimiter:      ',',
		IncludeHeaders: true,
		DateStyle:      dateutil.StyleDefault,
		Indent:         2,
	}
}

// now returns the injected instant, falling back to the wall clock when the
// caller did not supply one.
func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// columnsFor resolves the column order: the explicit option wins, otherwise
// the first record's keys sorted alphabetically for deterministic output.
func (o Options) columnsFor(records []Record) []string {
	if len(o.Columns) > 0 {
		return o.Columns
	}
	if len(records) == 0 {
		return nil
	}
	cols := make([]string, 0, len(records[0]))
	for k := range records[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatXLSX:
		return ".xlsx"
	default:
		return ".csv"
	}
}

// MIME returns the MIME type the artifact should be served with.
func (f Format) MIME() string {
	switch f {
	case FormatJSON:
		return MIMEJSON
	case FormatXLSX:
		return MIMEXLSX
	default:
		return MIMECSV
	}
}

// Valid reports whether f names a supported serialization.
func (f Format) Valid() bool {
	switch f {
	case FormatCSV, FormatExcel, FormatJSON, FormatXLSX:
		return true
	}
	return false
}
