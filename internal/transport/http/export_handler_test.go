package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cocopet/internal/errors"
	"cocopet/internal/exporter"
	"cocopet/internal/files"
	"cocopet/internal/reports"
	"cocopet/internal/services"
)

// MockExportService is a mock implementation of ExportServiceInterface
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, kind reports.Kind, opts reports.Options) (*services.ExportResult, error) {
	args := m.Called(kind, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ExportResult), args.Error(1)
}

func (m *MockExportService) ExportRecords(ctx context.Context, records []exporter.Record, opts exporter.Options, filename string) (*services.ExportResult, error) {
	args := m.Called(records, opts, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ExportResult), args.Error(1)
}

func (m *MockExportService) ExportAll(ctx context.Context, opts reports.Options) ([]*services.ExportResult, error) {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.ExportResult), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(service *MockExportService, dir string) *ExportHandler {
	logger := testLogger()
	return NewExportHandler(service, files.NewArtifactRegistry(dir), logger, errors.NewErrorHandler(logger))
}

func serveRoutes(h *ExportHandler, r *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Mount("/api", h.Routes())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestExportHandler_ExportReport(t *testing.T) {
	result := &services.ExportResult{
		ID:       "a3f0",
		Kind:     "productos",
		Filename: "cocopet_productos_20240612.csv",
		MIME:     exporter.MIMECSV,
		Size:     128,
		Records:  3,
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockExportService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful export",
			url:  "/api/reports/productos/export?format=csv&include_analytics=true",
			setupMock: func(m *MockExportService) {
				m.On("Export", reports.KindProducts, mock.MatchedBy(func(opts reports.Options) bool {
					return opts.Format == exporter.FormatCSV && opts.IncludeAnalytics
				})).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "cocopet_productos_20240612.csv",
		},
		{
			name:           "unknown report kind",
			url:            "/api/reports/facturas/export",
			setupMock:      func(m *MockExportService) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "REPORT_NOT_FOUND",
		},
		{
			name: "empty report",
			url:  "/api/reports/pedidos/export",
			setupMock: func(m *MockExportService) {
				m.On("Export", reports.KindOrders, mock.Anything).
					Return(nil, fmt.Errorf("build: %w", exporter.ErrNoData))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "NO_EXPORT_DATA",
		},
		{
			name:           "invalid format",
			url:            "/api/reports/productos/export?format=pdf",
			setupMock:      func(m *MockExportService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_FAILED",
		},
		{
			name:           "invalid from date",
			url:            "/api/reports/pedidos/export?from=notadate",
			setupMock:      func(m *MockExportService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_FAILED",
		},
		{
			name:           "from after to",
			url:            "/api/reports/pedidos/export?from=2024-06-12&to=2024-06-01",
			setupMock:      func(m *MockExportService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "precedes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockExportService)
			tt.setupMock(service)
			handler := newTestHandler(service, t.TempDir())

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := serveRoutes(handler, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			service.AssertExpectations(t)
		})
	}
}

func TestExportHandler_ExportReportDateRange(t *testing.T) {
	service := new(MockExportService)
	service.On("Export", reports.KindOrders, mock.MatchedBy(func(opts reports.Options) bool {
		if opts.DateRange == nil {
			return false
		}
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
		end := time.Date(2024, 6, 12, 23, 59, 59, 999999999, time.Local)
		return opts.DateRange.Start.Equal(start) && opts.DateRange.End.Equal(end)
	})).Return(&services.ExportResult{Kind: "pedidos"}, nil)

	handler := newTestHandler(service, t.TempDir())
	req := httptest.NewRequest(http.MethodGet, "/api/reports/pedidos/export?from=01/06/2024&to=12/06/2024", nil)
	rec := serveRoutes(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestExportHandler_ExportAllReports(t *testing.T) {
	service := new(MockExportService)
	service.On("ExportAll", mock.Anything).Return([]*services.ExportResult{
		{Kind: "productos"},
		{Kind: "pedidos"},
	}, nil)

	handler := newTestHandler(service, t.TempDir())
	req := httptest.NewRequest(http.MethodPost, "/api/reports/export-all?format=json", nil)
	rec := serveRoutes(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(2), body["count"])
	service.AssertExpectations(t)
}

func TestExportHandler_GetPresetRanges(t *testing.T) {
	handler := newTestHandler(new(MockExportService), t.TempDir())
	req := httptest.NewRequest(http.MethodGet, "/api/reports/ranges", nil)
	rec := serveRoutes(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hoy")
	assert.Contains(t, rec.Body.String(), "Últimos 30 días")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(9), body["count"])
}

func TestExportHandler_ListExports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cocopet_productos_20240612.csv"), []byte("a,b\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	handler := newTestHandler(new(MockExportService), dir)
	req := httptest.NewRequest(http.MethodGet, "/api/exports", nil)
	rec := serveRoutes(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["count"])
	assert.Contains(t, rec.Body.String(), "cocopet_productos_20240612.csv")
	assert.NotContains(t, rec.Body.String(), "notes.txt")
}

func TestExportHandler_DownloadExport(t *testing.T) {
	dir := t.TempDir()
	content := "id,nombre\n1,Collar\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cocopet_productos_20240612.csv"), []byte(content), 0o644))

	handler := newTestHandler(new(MockExportService), dir)

	t.Run("serves artifact with download headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/exports/cocopet_productos_20240612.csv", nil)
		rec := serveRoutes(handler, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, content, rec.Body.String())
		assert.Equal(t, exporter.MIMECSV, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), `attachment; filename="cocopet_productos_20240612.csv"`)
	})

	t.Run("missing artifact returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/exports/cocopet_pedidos_20240612.csv", nil)
		rec := serveRoutes(handler, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "EXPORT_NOT_FOUND")
	})

	t.Run("unknown extension rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/exports/config.yaml", nil)
		rec := serveRoutes(handler, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})
}

func TestExportHandler_ExportRecords(t *testing.T) {
	t.Run("creates artifact", func(t *testing.T) {
		service := new(MockExportService)
		service.On("ExportRecords", mock.Anything, mock.MatchedBy(func(opts exporter.Options) bool {
			return opts.Format == exporter.FormatJSON
		}), "ventas.json").Return(&services.ExportResult{Filename: "ventas.json"}, nil)

		handler := newTestHandler(service, t.TempDir())
		body := `{"records":[{"id":1,"nombre":"Collar"}],"format":"json","filename":"ventas.json"}`
		req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := serveRoutes(handler, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "ventas.json")
		service.AssertExpectations(t)
	})

	t.Run("missing records rejected", func(t *testing.T) {
		handler := newTestHandler(new(MockExportService), t.TempDir())
		req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader(`{"format":"csv"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := serveRoutes(handler, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		handler := newTestHandler(new(MockExportService), t.TempDir())
		req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		rec := serveRoutes(handler, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
	})
}

func TestExportHandler_ValidateRecords(t *testing.T) {
	handler := newTestHandler(new(MockExportService), t.TempDir())

	t.Run("consistent records", func(t *testing.T) {
		body := `{"records":[{"id":1,"nombre":"Collar"},{"id":2,"nombre":"Correa"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/export/validate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := serveRoutes(handler, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Validation exporter.Validation  `json:"validation"`
			Stats      exporter.ExportStats `json:"stats"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Validation.IsValid)
		assert.Empty(t, resp.Validation.Errors)
		assert.Equal(t, 2, resp.Stats.TotalRecords)
	})

	t.Run("empty payload warns", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/export/validate", strings.NewReader(`{"records":[]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := serveRoutes(handler, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No hay datos para exportar")
	})
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	handler := NewHealthHandler("1.2.0", testLogger())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.HealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "cocopet-reports", body["service"])
	assert.Equal(t, "1.2.0", body["version"])
}
