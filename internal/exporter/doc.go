// Package exporter serializes uniform record slices into downloadable
// report artifacts for the CocoPet dashboard.
//
// This package contains three main components:
//
// Marshalers: MarshalCSV, MarshalExcelTab, MarshalJSON and WriteXLSX turn a
// []Record into CSV text, tab-delimited spreadsheet text, a JSON report
// document, or a real XLSX workbook.
//
// Sink: persists finished artifacts under the configured exports directory
// with UTF-8 BOM support for Excel compatibility.
//
// Inspection helpers: Stats estimates the serialized size and infers column
// types; Validate runs the structural pre-export checks and reports
// warnings without blocking the export.
//
// Example usage:
//
//	records := []exporter.Record{{"id": 1, "name": "Alimento premium"}}
//	opts := exporter.DefaultOptions()
//
//	content, err := exporter.MarshalCSV(records, opts)
//	if err != nil {
//		return err
//	}
//
//	sink := exporter.NewSink(cfg.ExportsDir)
//	path, err := sink.Save(exporter.NewArtifact("reporte.csv", exporter.MIMECSV, content))
package exporter
