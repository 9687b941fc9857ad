package exporter

import (
	"bytes"
	"fmt"
)

// Marshal dispatches to the format-specific serializer. All four formats
// share the record model and column resolution; only the final encoding
// differs.
func Marshal(records []Record, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatCSV, "":
		return MarshalCSV(records, opts)
	case FormatExcel:
		return MarshalExcelTab(records, opts)
	case FormatJSON:
		return MarshalJSON(records, opts)
	case FormatXLSX:
		var buf bytes.Buffer
		if err := WriteXLSX(records, opts, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("marshal: %w: %q", ErrBadFormat, opts.Format)
	}
}
