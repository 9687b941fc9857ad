// exportgen converts a JSON record file into a CSV, tab-delimited, JSON or
// XLSX export artifact, using the same pipeline the web service exposes.
//
// Usage:
//
//	exportgen -in records.json -format xlsx -name ventas
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cocopet/internal/config"
	"cocopet/internal/exporter"
	"cocopet/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "input JSON file holding an array of records (required)")
	format := flag.String("format", "csv", "export format: csv | excel | json | xlsx")
	name := flag.String("name", "cocopet_export", "artifact base name, date stamp and extension are appended")
	out := flag.String("out", "", "output directory (defaults to the configured exports dir)")
	columns := flag.String("columns", "", "comma-separated column order (defaults to sorted record keys)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		defaults := config.Default()
		cfg = &defaults
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *in == "" {
		logger.Error("Missing required -in flag")
		flag.Usage()
		os.Exit(1)
	}
	if *out == "" {
		*out = cfg.Paths.ExportsDir
	}

	records, err := loadRecords(*in)
	if err != nil {
		logger.Error("Cannot read input records",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	opts := exporter.DefaultOptions()
	opts.Format = exporter.Format(*format)
	opts.Indent = cfg.Export.JSONIndent
	if *columns != "" {
		opts.Columns = strings.Split(*columns, ",")
	}

	validation := exporter.Validate(records)
	for _, warning := range validation.Warnings {
		logger.Warn("Export validation warning", slog.String("warning", warning))
	}
	if !validation.IsValid {
		for _, e := range validation.Errors {
			logger.Error("Export validation error", slog.String("error", e))
		}
		os.Exit(1)
	}

	stats := exporter.Stats(records)
	logger.Info("Starting export",
		slog.String("input", *in),
		slog.String("format", *format),
		slog.Int("records", stats.TotalRecords),
		slog.String("estimated_size", stats.EstimatedSize))

	content, err := exporter.Marshal(records, opts)
	if err != nil {
		logger.Error("Export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	filename := fmt.Sprintf("%s_%s%s", *name, time.Now().Format("20060102"), opts.Format.Extension())
	artifact := exporter.NewArtifact(filename, opts.Format.MIME(), content)
	artifact.BOMPrefix = opts.Format == exporter.FormatCSV || opts.Format == exporter.FormatExcel

	path, err := exporter.NewSink(*out).Save(artifact)
	if err != nil {
		logger.Error("Cannot write artifact",
			slog.String("path", *out),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Export written",
		slog.String("path", path),
		slog.Int64("size", artifact.Size))
}

// loadRecords reads a JSON array of flat objects.
func loadRecords(path string) ([]exporter.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []exporter.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
