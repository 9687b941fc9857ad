package http

import (
	"context"

	"cocopet/internal/exporter"
	"cocopet/internal/reports"
	"cocopet/internal/services"
)

// ExportServiceInterface defines the operations the export handler needs
// from the service layer. Declared here so handler tests can stub it.
type ExportServiceInterface interface {
	Export(ctx context.Context, kind reports.Kind, opts reports.Options) (*services.ExportResult, error)
	ExportRecords(ctx context.Context, records []exporter.Record, opts exporter.Options, filename string) (*services.ExportResult, error)
	ExportAll(ctx context.Context, opts reports.Options) ([]*services.ExportResult, error)
}
