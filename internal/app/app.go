package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cocopet/internal/config"
	apierrors "cocopet/internal/errors"
	"cocopet/internal/exporter"
	"cocopet/internal/files"
	"cocopet/internal/infrastructure"
	custommw "cocopet/internal/middleware"
	"cocopet/internal/services"
	transport "cocopet/internal/transport/http"
)

// AppName identifies the service in logs and health responses.
const AppName = "cocopet-reports"

// Version is overridden at build time via -ldflags.
var Version = "dev"

// Application is the main application container
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	Router        *chi.Mux
	Server        *http.Server
	ExportService *services.ExportService
	Registry      *files.ArtifactRegistry
	OTelProviders *infrastructure.TracerProviders

	promRegistry *prometheus.Registry
}

// New creates the application from the default configuration sources.
func New() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig wires the application from an explicit configuration.
func NewWithConfig(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	providers, err := infrastructure.InitializeTracing(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := files.NewSnapshotStore(cfg.Paths.DataDir, logger)
	sink := exporter.NewSink(cfg.Paths.ExportsDir)

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: providers,
		ExportService: services.NewExportService(store, sink, services.NewExportMetrics(promRegistry), logger),
		Registry:      files.NewArtifactRegistry(cfg.Paths.ExportsDir),
		promRegistry:  promRegistry,
	}

	app.setupRouter()
	app.createServer()
	return app, nil
}

// setupRouter builds the middleware chain and mounts the handlers.
// Ordering: RequestID → RealIP → Tracing → Logger → Recoverer → the rest.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	exportHandler := transport.NewExportHandler(a.ExportService, a.Registry, a.Logger, errorHandler)
	healthHandler := transport.NewHealthHandler(Version, a.Logger)

	r.Group(func(r chi.Router) {
		r.Use(custommw.Tracing)
		r.Use(custommw.StructuredLogger(a.Logger))
		r.Use(custommw.Recoverer(a.Logger))
		r.Use(custommw.SecurityHeaders)

		if a.Config.Security.EnableCORS {
			r.Use(custommw.CORS(custommw.CORSConfig{
				AllowedOrigins: a.Config.Security.AllowedOrigins,
			}))
		}

		if a.Config.Security.RateLimit.Enabled {
			r.Use(custommw.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.Logger,
			).Handler)
		}

		r.Mount("/api", exportHandler.Routes())
		r.Get("/healthz", healthHandler.HealthCheck)
		r.Get("/version", healthHandler.Version)
	})

	// Outside the middleware group so scrapes skip logging and rate limits.
	r.Handle("/metrics", promhttp.HandlerFor(a.promRegistry, promhttp.HandlerOpts{}))

	a.Router = r
}

// createServer configures the HTTP server from the server config.
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Start begins serving. Server failures cancel the supplied context so Run
// can unwind.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) {
	a.Logger.InfoContext(ctx, "starting application",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.Int("port", a.Config.Server.Port),
		slog.String("exports_dir", a.Config.Paths.ExportsDir),
	)

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "server error", slog.String("error", err.Error()))
			cancel()
		}
	}()
}

// Stop drains the server and shuts down observability.
func (a *Application) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	a.Logger.InfoContext(shutdownCtx, "shutting down application")

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		a.Logger.ErrorContext(shutdownCtx, "server shutdown error", slog.String("error", err.Error()))
		return fmt.Errorf("server shutdown: %w", err)
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.WarnContext(shutdownCtx, "tracing shutdown error", slog.String("error", err.Error()))
		}
	}

	return infrastructure.CloseLogger()
}

// Run starts the application and blocks until an interrupt arrives.
func (a *Application) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a.Start(ctx, cancel)

	<-ctx.Done()
	a.Logger.Info("received shutdown signal")

	return a.Stop(context.Background())
}
