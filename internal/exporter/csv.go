package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
)

// MarshalCSV serializes records into delimiter-separated text. Column order
// comes from Options.Columns, defaulting to the first record's keys sorted
// alphabetically. Cells containing the delimiter, a quote or a newline are
// quoted with internal quotes doubled (RFC 4180). Nil values serialize as
// empty strings and dates are rendered through dateutil first.
func MarshalCSV(records []Record, opts Options) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("marshal csv: %w", ErrNoData)
	}
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}
	if delimiter == '"' || delimiter == '\n' || delimiter == '\r' {
		return nil, fmt.Errorf("marshal csv: %w: %q", ErrBadDelimiter, delimiter)
	}

	columns := opts.columnsFor(records)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = delimiter

	if opts.IncludeHeaders {
		if err := writer.Write(columns); err != nil {
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
	}

	row := make([]string, len(columns))
	for i, record := range records {
		for j, col := range columns {
			row[j] = cellString(record[col], opts.DateStyle)
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalExcelTab produces spreadsheet-importable tab-delimited text. It is
// the legacy "Excel" export kept for compatibility with older dashboard
// builds; WriteXLSX produces a real workbook. The warning keeps the fallback
// visible in the logs without failing the export.
func MarshalExcelTab(records []Record, opts Options) ([]byte, error) {
	slog.Warn("excel export falling back to tab-delimited text",
		slog.Int("record_count", len(records)))

	opts.Delimiter = '\t'
	content, err := MarshalCSV(records, opts)
	if err != nil {
		return nil, fmt.Errorf("marshal excel fallback: %w", err)
	}
	return content, nil
}
