package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Reporte"

// WriteXLSX serializes records into a real XLSX workbook. The header row is
// bold; cells keep their native types so spreadsheet formulas work on
// numeric columns. Dates are written as display strings using the configured
// style, matching the CSV output.
func WriteXLSX(records []Record, opts Options, w io.Writer) error {
	if len(records) == 0 {
		return fmt.Errorf("write xlsx: %w", ErrNoData)
	}

	columns := opts.columnsFor(records)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	rowNum := 1
	if opts.IncludeHeaders {
		headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("failed to create header style: %w", err)
		}
		header := make([]any, len(columns))
		for i, col := range columns {
			header[i] = col
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(xlsxSheetName, cell, &header); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
		endCell, _ := excelize.CoordinatesToCellName(len(columns), rowNum)
		if err := f.SetCellStyle(xlsxSheetName, cell, endCell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header row: %w", err)
		}
		rowNum++
	}

	row := make([]any, len(columns))
	for i, record := range records {
		for j, col := range columns {
			row[j] = xlsxCell(record[col], opts)
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(xlsxSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
		rowNum++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// xlsxCell keeps numeric and boolean values typed; everything else goes
// through the shared string conversion.
func xlsxCell(v any, opts Options) any {
	switch v.(type) {
	case nil:
		return ""
	case float64, float32, int, int32, int64, bool:
		return v
	case time.Time, *time.Time:
		return cellString(v, opts.DateStyle)
	default:
		return cellString(v, opts.DateStyle)
	}
}
