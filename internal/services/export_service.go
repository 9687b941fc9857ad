package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"cocopet/internal/exporter"
	"cocopet/internal/reports"
	"cocopet/pkg/contracts/domain"
)

// DataStore provides the domain snapshots the report builders consume.
type DataStore interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Orders(ctx context.Context) ([]domain.Order, error)
	Predictions(ctx context.Context) ([]domain.Prediction, error)
	StockMovements(ctx context.Context) ([]domain.StockMovement, error)
}

// ExportResult describes one persisted export artifact.
type ExportResult struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Filename  string    `json:"filename"`
	Path      string    `json:"-"`
	MIME      string    `json:"mime_type"`
	Size      int64     `json:"size"`
	Records   int       `json:"records"`
	CreatedAt time.Time `json:"created_at"`
}

// ExportService orchestrates report building, serialization and persistence.
type ExportService struct {
	store   DataStore
	sink    *exporter.Sink
	metrics *ExportMetrics
	logger  *slog.Logger
}

// NewExportService creates the export orchestrator.
func NewExportService(store DataStore, sink *exporter.Sink, metrics *ExportMetrics, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{
		store:   store,
		sink:    sink,
		metrics: metrics,
		logger:  logger.With(slog.String("component", "export_service")),
	}
}

// Export builds the requested report, serializes it in the requested format
// and persists the artifact.
func (s *ExportService) Export(ctx context.Context, kind reports.Kind, opts reports.Options) (*ExportResult, error) {
	start := time.Now()
	if opts.Now.IsZero() {
		opts.Now = start
	}

	result, err := s.export(ctx, kind, opts)
	if s.metrics != nil {
		var size int64
		if result != nil {
			size = result.Size
		}
		s.metrics.observe(string(kind), string(opts.Format), time.Since(start).Seconds(), size, err)
	}
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "export completed",
		slog.String("kind", string(kind)),
		slog.String("format", string(opts.Format)),
		slog.String("filename", result.Filename),
		slog.Int64("size", result.Size),
		slog.String("duration", time.Since(start).String()))
	return result, nil
}

// export runs the build-marshal-save path without instrumentation.
func (s *ExportService) export(ctx context.Context, kind reports.Kind, opts reports.Options) (*ExportResult, error) {
	report, err := s.build(ctx, kind, opts)
	if err != nil {
		return nil, err
	}

	artifact, err := report.Marshal(opts)
	if err != nil {
		return nil, err
	}

	path, err := s.sink.Save(artifact)
	if err != nil {
		return nil, fmt.Errorf("save %s export: %w", kind, err)
	}

	return &ExportResult{
		ID:        artifact.ID.String(),
		Kind:      string(kind),
		Filename:  artifact.Filename,
		Path:      path,
		MIME:      artifact.MIME,
		Size:      artifact.Size,
		Records:   len(report.Records),
		CreatedAt: artifact.CreatedAt,
	}, nil
}

// build loads the snapshot data for the kind and projects it.
func (s *ExportService) build(ctx context.Context, kind reports.Kind, opts reports.Options) (*reports.Report, error) {
	switch kind {
	case reports.KindProducts:
		products, err := s.store.Products(ctx)
		if err != nil {
			return nil, fmt.Errorf("load products: %w", err)
		}
		return reports.BuildProducts(products, opts), nil

	case reports.KindOrders:
		orders, err := s.store.Orders(ctx)
		if err != nil {
			return nil, fmt.Errorf("load orders: %w", err)
		}
		return reports.BuildOrders(orders, opts), nil

	case reports.KindPredictions:
		predictions, err := s.store.Predictions(ctx)
		if err != nil {
			return nil, fmt.Errorf("load predictions: %w", err)
		}
		return reports.BuildPredictions(predictions, opts), nil

	case reports.KindInventory:
		products, err := s.store.Products(ctx)
		if err != nil {
			return nil, fmt.Errorf("load products: %w", err)
		}
		movements, err := s.store.StockMovements(ctx)
		if err != nil {
			return nil, fmt.Errorf("load stock movements: %w", err)
		}
		return reports.BuildInventory(products, movements, opts), nil

	default:
		return nil, fmt.Errorf("unknown report kind: %q", kind)
	}
}

// ExportRecords serializes and persists an ad-hoc record payload supplied by
// the caller, bypassing the report builders.
func (s *ExportService) ExportRecords(ctx context.Context, records []exporter.Record, opts exporter.Options, filename string) (*ExportResult, error) {
	start := time.Now()
	if opts.Now.IsZero() {
		opts.Now = start
	}
	if filename == "" {
		filename = fmt.Sprintf("cocopet_export_%s%s", opts.Now.Format("20060102"), opts.Format.Extension())
	}

	content, err := exporter.Marshal(records, opts)
	if s.metrics != nil {
		s.metrics.observe("adhoc", string(opts.Format), time.Since(start).Seconds(), int64(len(content)), err)
	}
	if err != nil {
		return nil, err
	}

	artifact := exporter.NewArtifact(filename, opts.Format.MIME(), content)
	artifact.BOMPrefix = opts.Format == exporter.FormatCSV || opts.Format == exporter.FormatExcel

	path, err := s.sink.Save(artifact)
	if err != nil {
		return nil, fmt.Errorf("save export: %w", err)
	}

	return &ExportResult{
		ID:        artifact.ID.String(),
		Kind:      "adhoc",
		Filename:  artifact.Filename,
		Path:      path,
		MIME:      artifact.MIME,
		Size:      artifact.Size,
		Records:   len(records),
		CreatedAt: artifact.CreatedAt,
	}, nil
}

// ExportAll generates the four standard reports concurrently. Reports whose
// data set is empty are skipped rather than failing the batch; any other
// error aborts the group.
func (s *ExportService) ExportAll(ctx context.Context, opts reports.Options) ([]*ExportResult, error) {
	kinds := []reports.Kind{
		reports.KindProducts,
		reports.KindOrders,
		reports.KindPredictions,
		reports.KindInventory,
	}

	results := make([]*ExportResult, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			result, err := s.Export(gctx, kind, opts)
			if err != nil {
				if isNoData(err) {
					s.logger.WarnContext(gctx, "skipping empty report",
						slog.String("kind", string(kind)))
					return nil
				}
				return fmt.Errorf("export %s: %w", kind, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*ExportResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// isNoData reports whether err is the exporter's empty-input failure.
func isNoData(err error) bool {
	return errors.Is(err, exporter.ErrNoData)
}
