package http

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"cocopet/internal/dateutil"
	apierrors "cocopet/internal/errors"
	"cocopet/internal/exporter"
	"cocopet/internal/files"
	"cocopet/internal/middleware"
	"cocopet/internal/reports"
)

// ExportHandler exposes the report exporters over HTTP
type ExportHandler struct {
	service      ExportServiceInterface
	registry     *files.ArtifactRegistry
	validate     *validator.Validate
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ExportServiceInterface, registry *files.ArtifactRegistry, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ExportHandler {
	return &ExportHandler{
		service:      service,
		registry:     registry,
		validate:     validator.New(),
		logger:       logger.With(slog.String("component", "export_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the export routes with proper Chi patterns
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	// Use render for consistent JSON responses
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/reports", func(r chi.Router) {
		r.Get("/ranges", h.GetPresetRanges)
		r.Post("/export-all", h.ExportAllReports)

		r.Route("/{kind}", func(r chi.Router) {
			r.Use(h.KindCtx) // Validate report kind
			r.Get("/export", h.ExportReport)
		})
	})

	// Generated artifact routes
	r.Get("/exports", h.ListExports)
	r.Get("/exports/{filename}", h.DownloadExport)

	// Ad-hoc record exports
	r.Post("/export", h.ExportRecords)
	r.Post("/export/validate", h.ValidateRecords)

	return r
}

// KindCtx middleware validates the report kind parameter
func (h *ExportHandler) KindCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := reports.Kind(chi.URLParam(r, "kind"))
		if !kind.Valid() {
			h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusNotFound,
				"REPORT_NOT_FOUND",
				fmt.Sprintf("Unknown report type: %s", kind),
				map[string]interface{}{
					"kind":  string(kind),
					"known": []string{"productos", "pedidos", "predicciones", "inventario"},
				},
			))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ExportReport handles GET /api/reports/{kind}/export
func (h *ExportHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	kind := reports.Kind(chi.URLParam(r, "kind"))

	opts, apiErr := parseReportOptions(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	h.logger.InfoContext(r.Context(), "exporting report",
		slog.String("request_id", reqID),
		slog.String("kind", string(kind)),
		slog.String("format", string(opts.Format)),
	)

	result, err := h.service.Export(r.Context(), kind, opts)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to export report",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
			slog.String("kind", string(kind)),
		)

		h.errorHandler.HandleError(w, r, mapExportError(err, kind))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
	})
}

// ExportAllReports handles POST /api/reports/export-all
func (h *ExportHandler) ExportAllReports(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	opts, apiErr := parseReportOptions(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	h.logger.InfoContext(r.Context(), "exporting all reports",
		slog.String("request_id", reqID),
		slog.String("format", string(opts.Format)),
	)

	results, err := h.service.ExportAll(r.Context(), opts)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to export all reports",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, apierrors.ExportFailedWithError(err))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   results,
		"count":  len(results),
	})
}

// GetPresetRanges handles GET /api/reports/ranges
func (h *ExportHandler) GetPresetRanges(w http.ResponseWriter, r *http.Request) {
	ranges := dateutil.PresetRanges(time.Now())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   ranges,
		"count":  len(ranges),
	})
}

// ListExports handles GET /api/exports
func (h *ExportHandler) ListExports(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	artifacts, err := h.registry.List()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list exports",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   artifacts,
		"count":  len(artifacts),
	})
}

// downloadMIMEs maps artifact extensions to download content types.
var downloadMIMEs = map[string]string{
	".csv":  exporter.MIMECSV,
	".json": exporter.MIMEJSON,
	".xlsx": exporter.MIMEXLSX,
}

// DownloadExport handles GET /api/exports/{filename}
func (h *ExportHandler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	filename := chi.URLParam(r, "filename")

	path, err := h.registry.Resolve(filename)
	if err != nil {
		h.logger.WarnContext(r.Context(), "export download rejected",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
			slog.String("filename", filename),
		)

		if errors.Is(err, fs.ErrNotExist) {
			h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusNotFound,
				"EXPORT_NOT_FOUND",
				fmt.Sprintf("Export '%s' not found", filename),
				map[string]interface{}{
					"filename": filename,
				},
			))
			return
		}

		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("filename", "Invalid export filename"))
		return
	}

	h.logger.InfoContext(r.Context(), "downloading export",
		slog.String("request_id", reqID),
		slog.String("filename", filename),
	)

	if mime, ok := downloadMIMEs[strings.ToLower(filepath.Ext(filename))]; ok {
		w.Header().Set("Content-Type", mime)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

// adHocExportRequest is the POST /api/export payload
type adHocExportRequest struct {
	Records  []exporter.Record      `json:"records" validate:"required,min=1"`
	Format   exporter.Format        `json:"format" validate:"omitempty,oneof=csv excel json xlsx"`
	Filename string                 `json:"filename" validate:"omitempty,max=128"`
	Columns  []string               `json:"columns,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ExportRecords handles POST /api/export
func (h *ExportHandler) ExportRecords(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var req adHocExportRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest,
			"VALIDATION_FAILED",
			"Request validation failed",
			err.Error(),
		))
		return
	}

	opts := exporter.DefaultOptions()
	if req.Format != "" {
		opts.Format = req.Format
	}
	opts.Columns = req.Columns
	opts.Metadata = req.Metadata

	h.logger.InfoContext(r.Context(), "exporting ad-hoc records",
		slog.String("request_id", reqID),
		slog.String("format", string(opts.Format)),
		slog.Int("records", len(req.Records)),
	)

	result, err := h.service.ExportRecords(r.Context(), req.Records, opts, req.Filename)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to export records",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, mapExportError(err, ""))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
	})
}

// validateRequest is the POST /api/export/validate payload
type validateRequest struct {
	Records []exporter.Record `json:"records"`
}

// ValidateRecords handles POST /api/export/validate. It runs the pre-export
// checks without generating an artifact, so the dashboard can warn before a
// large download.
func (h *ExportHandler) ValidateRecords(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":     "success",
		"validation": exporter.Validate(req.Records),
		"stats":      exporter.Stats(req.Records),
	})
}

// parseReportOptions builds report options from the request query string.
func parseReportOptions(r *http.Request) (reports.Options, *apierrors.APIError) {
	q := r.URL.Query()

	opts := reports.Options{
		Format: exporter.FormatCSV,
		Now:    time.Now(),

		IncludeAnalytics:  queryBool(q.Get("include_analytics")),
		IncludeCustomer:   queryBool(q.Get("include_customer")),
		IncludeDelivery:   queryBool(q.Get("include_delivery")),
		IncludeConfidence: queryBool(q.Get("include_confidence")),
		IncludeMetrics:    queryBool(q.Get("include_metrics")),
		IncludeValuation:  queryBool(q.Get("include_valuation")),
		IncludeMovements:  queryBool(q.Get("include_movements")),
		LowStockOnly:      queryBool(q.Get("low_stock_only")),
	}

	if format := q.Get("format"); format != "" {
		opts.Format = exporter.Format(format)
		if !opts.Format.Valid() {
			return opts, apierrors.ErrValidation("format", "Format must be one of: csv, excel, json, xlsx")
		}
	}

	from, to := q.Get("from"), q.Get("to")
	if from != "" || to != "" {
		dateRange, err := parseDateRange(from, to)
		if err != nil {
			return opts, apierrors.ErrValidation("from/to", err.Error())
		}
		opts.DateRange = dateRange
	}

	return opts, nil
}

// parseDateRange builds an inclusive range from the from/to query parameters.
// A missing boundary leaves that side open.
func parseDateRange(from, to string) (*dateutil.DateRange, error) {
	dateRange := &dateutil.DateRange{
		Start: time.Time{},
		End:   dateutil.EndOfDay(time.Date(9999, 12, 31, 0, 0, 0, 0, time.Local)),
	}

	if from != "" {
		t, err := dateutil.Parse(from)
		if err != nil {
			return nil, fmt.Errorf("invalid 'from' date: %q", from)
		}
		dateRange.Start = dateutil.StartOfDay(t)
	}

	if to != "" {
		t, err := dateutil.Parse(to)
		if err != nil {
			return nil, fmt.Errorf("invalid 'to' date: %q", to)
		}
		dateRange.End = dateutil.EndOfDay(t)
	}

	if dateRange.End.Before(dateRange.Start) {
		return nil, fmt.Errorf("'to' date precedes 'from' date")
	}
	return dateRange, nil
}

// queryBool interprets the truthy query flag values the dashboard sends.
func queryBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// mapExportError converts exporter errors into API errors.
func mapExportError(err error, kind reports.Kind) error {
	switch {
	case errors.Is(err, exporter.ErrNoData):
		if kind != "" {
			return apierrors.NewWithDetails(
				http.StatusUnprocessableEntity,
				"NO_EXPORT_DATA",
				"No data available for export",
				map[string]interface{}{"kind": string(kind)},
			)
		}
		return apierrors.ErrNoExportData
	case errors.Is(err, exporter.ErrBadFormat):
		return apierrors.ErrValidation("format", "Format must be one of: csv, excel, json, xlsx")
	case errors.Is(err, exporter.ErrBadDelimiter):
		return apierrors.ErrValidation("delimiter", "Delimiter cannot be a quote or newline")
	}
	return apierrors.ExportFailedWithError(err)
}
