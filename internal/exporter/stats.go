package exporter

import (
	"encoding/json"
	"fmt"
	"time"
)

// sizeSampleLimit caps how many records the size estimate serializes
const sizeSampleLimit = 10

// consistencySampleLimit caps how many records Validate compares key sets for
const consistencySampleLimit = 100

// performanceWarningThreshold is the record count beyond which exports get a
// performance warning
const performanceWarningThreshold = 100000

// ExportStats summarizes a record slice before export.
type ExportStats struct {
	TotalRecords  int               `json:"total_records"`
	EstimatedSize string            `json:"estimated_size"`
	Columns       int               `json:"columns"`
	DataTypes     map[string]string `json:"data_types"`
}

// Stats derives a rough pre-export summary: the per-record size estimate
// samples at most the first ten records, and column types are inferred from
// the first record's values only.
func Stats(records []Record) ExportStats {
	stats := ExportStats{
		EstimatedSize: "0 KB",
		DataTypes:     map[string]string{},
	}
	if len(records) == 0 {
		return stats
	}

	stats.TotalRecords = len(records)
	stats.Columns = len(records[0])
	for key, value := range records[0] {
		stats.DataTypes[key] = typeName(value)
	}

	sample := records
	if len(sample) > sizeSampleLimit {
		sample = sample[:sizeSampleLimit]
	}
	var sampleBytes int
	for _, record := range sample {
		if encoded, err := json.Marshal(record); err == nil {
			sampleBytes += len(encoded)
		}
	}
	perRecord := sampleBytes / len(sample)
	totalKB := (perRecord*len(records) + 1023) / 1024
	stats.EstimatedSize = fmt.Sprintf("%d KB", totalKB)

	return stats
}

// typeName maps a record value to its coarse column type.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case float64, float32, int, int32, int64:
		return "number"
	case time.Time, *time.Time:
		return "date"
	case bool:
		return "boolean"
	default:
		return "string"
	}
}

// Validation is the outcome of the structural pre-export checks. Warnings
// never block an export; Errors mark data the marshalers would reject.
type Validation struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate runs the structural pre-checks: emptiness (a warning, not an
// error), key-set consistency across up to the first hundred records
// (order-insensitive) and the oversized-dataset performance warning. It
// never fails; the caller decides what to do with the findings.
func Validate(records []Record) Validation {
	v := Validation{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}

	if len(records) == 0 {
		v.Warnings = append(v.Warnings, "No hay datos para exportar")
		return v
	}

	if len(records) > performanceWarningThreshold {
		v.Warnings = append(v.Warnings,
			fmt.Sprintf("El conjunto de datos tiene %d registros, la exportación puede tardar", len(records)))
	}

	first := records[0]
	if len(first) == 0 {
		v.IsValid = false
		v.Errors = append(v.Errors, "El primer registro está vacío")
		return v
	}

	limit := len(records)
	if limit > consistencySampleLimit {
		limit = consistencySampleLimit
	}
	for i := 1; i < limit; i++ {
		if !sameKeys(first, records[i]) {
			v.Warnings = append(v.Warnings,
				fmt.Sprintf("El registro %d no tiene las mismas columnas que el primero", i))
		}
	}

	return v
}

// sameKeys compares key sets ignoring order.
func sameKeys(a, b Record) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
