package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cocopet/internal/exporter"
	"cocopet/internal/reports"
	"cocopet/pkg/contracts/domain"
)

// stubStore returns canned domain data for the service tests
type stubStore struct {
	products    []domain.Product
	orders      []domain.Order
	predictions []domain.Prediction
	movements   []domain.StockMovement
	err         error
}

func (s *stubStore) Products(ctx context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubStore) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubStore) Predictions(ctx context.Context) ([]domain.Prediction, error) {
	return s.predictions, s.err
}

func (s *stubStore) StockMovements(ctx context.Context) ([]domain.StockMovement, error) {
	return s.movements, s.err
}

func newTestService(t *testing.T, store *stubStore) *ExportService {
	t.Helper()
	return NewExportService(
		store,
		exporter.NewSink(t.TempDir()),
		NewExportMetrics(prometheus.NewRegistry()),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func fullStore() *stubStore {
	now := time.Date(2024, time.June, 12, 12, 0, 0, 0, time.UTC)
	return &stubStore{
		products: []domain.Product{
			{ID: 1, Name: "Alimento premium", Brand: "CocoPet", Category: "Alimentos",
				Price: 120, Cost: 80, CurrentStock: 50, MinStock: 10, MaxStock: 100,
				IsActive: true, CreatedAt: now},
		},
		orders: []domain.Order{
			{OrderID: "VTA7001", ProductName: "Alimento premium", Quantity: 2,
				UnitPrice: 120, TotalPrice: 240, Status: domain.OrderStatusDelivered,
				Source: domain.OrderSourceWhatsApp, OrderDate: now},
		},
		predictions: []domain.Prediction{
			{Type: domain.PredictionTypeDaily, PredictedValue: 14.2,
				ModelName: "prophet", TargetDate: now},
		},
		movements: []domain.StockMovement{
			{ProductID: 1, Type: domain.MovementTypeOut, NewStock: 50, CreatedAt: now},
		},
	}
}

func TestExportService_Export(t *testing.T) {
	service := newTestService(t, fullStore())

	opts := reports.Options{
		Format: exporter.FormatCSV,
		Now:    time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC),
	}

	result, err := service.Export(context.Background(), reports.KindProducts, opts)
	require.NoError(t, err)

	assert.Equal(t, "cocopet_productos_20240612.csv", result.Filename)
	assert.Equal(t, 1, result.Records)
	assert.NotEmpty(t, result.ID)
	assert.Positive(t, result.Size)

	// The artifact landed on disk.
	written, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "Alimento premium")

	// Success metric recorded.
	count := testutil.ToFloat64(service.metrics.exports.WithLabelValues("productos", "csv", "success"))
	assert.Equal(t, 1.0, count)
}

func TestExportService_ExportEmptyDataFails(t *testing.T) {
	service := newTestService(t, &stubStore{})

	_, err := service.Export(context.Background(), reports.KindOrders, reports.Options{Format: exporter.FormatCSV})
	require.Error(t, err)
	assert.ErrorIs(t, err, exporter.ErrNoData)

	count := testutil.ToFloat64(service.metrics.exports.WithLabelValues("pedidos", "csv", "error"))
	assert.Equal(t, 1.0, count)
}

func TestExportService_ExportStoreFailure(t *testing.T) {
	service := newTestService(t, &stubStore{err: fmt.Errorf("disk error")})

	_, err := service.Export(context.Background(), reports.KindProducts, reports.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load products")
}

func TestExportService_ExportUnknownKind(t *testing.T) {
	service := newTestService(t, fullStore())

	_, err := service.Export(context.Background(), reports.Kind("clientes"), reports.Options{})
	assert.Error(t, err)
}

func TestExportService_ExportRecords(t *testing.T) {
	service := newTestService(t, &stubStore{})

	opts := exporter.DefaultOptions()
	opts.Format = exporter.FormatJSON
	opts.Now = time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)

	result, err := service.ExportRecords(context.Background(),
		[]exporter.Record{{"id": 1}, {"id": 2}}, opts, "")
	require.NoError(t, err)

	assert.Equal(t, "cocopet_export_20240612.json", result.Filename)
	assert.Equal(t, "adhoc", result.Kind)
	assert.Equal(t, 2, result.Records)
}

func TestExportService_ExportAll(t *testing.T) {
	t.Run("all kinds with data", func(t *testing.T) {
		service := newTestService(t, fullStore())

		results, err := service.ExportAll(context.Background(), reports.Options{
			Format: exporter.FormatCSV,
			Now:    time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Len(t, results, 4)
	})

	t.Run("empty kinds are skipped", func(t *testing.T) {
		store := fullStore()
		store.predictions = nil
		service := newTestService(t, store)

		results, err := service.ExportAll(context.Background(), reports.Options{Format: exporter.FormatCSV})
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("store failure aborts the batch", func(t *testing.T) {
		service := newTestService(t, &stubStore{err: fmt.Errorf("disk error")})

		_, err := service.ExportAll(context.Background(), reports.Options{Format: exporter.FormatCSV})
		assert.Error(t, err)
	})
}
