package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cocopet/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.ExportsDir = filepath.Join(dir, "data", "exports")
	cfg.Paths.LogsDir = filepath.Join(dir, "logs")
	cfg.Logging.Output = "console"
	require.NoError(t, os.MkdirAll(cfg.Paths.ExportsDir, 0o755))
	return &cfg
}

func TestNewWithConfig(t *testing.T) {
	application, err := NewWithConfig(testConfig(t))
	require.NoError(t, err)

	assert.NotNil(t, application.Router)
	assert.NotNil(t, application.Server)
	assert.NotNil(t, application.ExportService)
	assert.Equal(t, ":8080", application.Server.Addr)
}

func TestApplication_Routes(t *testing.T) {
	application, err := NewWithConfig(testConfig(t))
	require.NoError(t, err)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"health check", http.MethodGet, "/healthz", http.StatusOK},
		{"version", http.MethodGet, "/version", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"list exports", http.MethodGet, "/api/exports", http.StatusOK},
		{"preset ranges", http.MethodGet, "/api/reports/ranges", http.StatusOK},
		{"unknown report kind", http.MethodGet, "/api/reports/facturas/export", http.StatusNotFound},
		{"empty snapshot export", http.MethodGet, "/api/reports/productos/export", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			application.Router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestApplication_SecurityHeaders(t *testing.T) {
	application, err := NewWithConfig(testConfig(t))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
