package exporter

import (
	"fmt"
	"strconv"
	"time"

	"cocopet/internal/dateutil"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	// Always format with exactly 2 decimal places for consistency
	// This ensures values like 13.4 appear as 13.40 in the output
	return fmt.Sprintf("%.2f", f)
}

// formatBool formats a boolean value for CSV output
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// cellString converts one record value to its textual cell representation.
// Nil becomes the empty string and dates go through dateutil, so the CSV
// quoting layer only ever sees plain strings.
func cellString(v any, style dateutil.Style) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return formatBool(val)
	case time.Time:
		return dateutil.FormatDate(val, style)
	case *time.Time:
		if val == nil {
			return ""
		}
		return dateutil.FormatDate(*val, style)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
