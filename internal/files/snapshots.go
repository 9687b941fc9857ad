package files

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cocopet/pkg/contracts/domain"
)

// Snapshot file names inside the data directory
const (
	productsFile    = "products.json"
	ordersFile      = "orders.json"
	predictionsFile = "predictions.json"
	movementsFile   = "stock_movements.json"
)

// SnapshotStore reads the domain snapshot files the dashboard backend syncs
// into the data directory. Each call re-reads the file, so a fresh sync is
// picked up without restarting the service.
type SnapshotStore struct {
	dir    string
	logger *slog.Logger
}

// NewSnapshotStore creates a store rooted at the data directory.
func NewSnapshotStore(dir string, logger *slog.Logger) *SnapshotStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotStore{
		dir:    dir,
		logger: logger.With(slog.String("component", "snapshot_store")),
	}
}

// Products returns the product catalogue snapshot.
func (s *SnapshotStore) Products(ctx context.Context) ([]domain.Product, error) {
	return readSnapshot[domain.Product](s, ctx, productsFile)
}

// Orders returns the orders snapshot.
func (s *SnapshotStore) Orders(ctx context.Context) ([]domain.Order, error) {
	return readSnapshot[domain.Order](s, ctx, ordersFile)
}

// Predictions returns the model forecasts snapshot.
func (s *SnapshotStore) Predictions(ctx context.Context) ([]domain.Prediction, error) {
	return readSnapshot[domain.Prediction](s, ctx, predictionsFile)
}

// StockMovements returns the stock movements snapshot.
func (s *SnapshotStore) StockMovements(ctx context.Context) ([]domain.StockMovement, error) {
	return readSnapshot[domain.StockMovement](s, ctx, movementsFile)
}

// readSnapshot loads and decodes one snapshot file. A missing file is not an
// error: it decodes as an empty slice so reports over absent data sets fail
// with the exporter's no-data error instead of a filesystem error.
func readSnapshot[T any](s *SnapshotStore, ctx context.Context, name string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.DebugContext(ctx, "snapshot file missing",
			slog.String("file", name))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", name, err)
	}

	s.logger.DebugContext(ctx, "snapshot loaded",
		slog.String("file", name),
		slog.Int("records", len(out)))
	return out, nil
}
