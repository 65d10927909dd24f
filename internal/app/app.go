package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fundpulse/internal/config"
	"fundpulse/internal/dataprocessing"
	"fundpulse/internal/infrastructure"
	"fundpulse/internal/metrics"
	customMiddleware "fundpulse/internal/middleware"
	httphandlers "fundpulse/internal/transport/http"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Application wires together the configuration, dataset loader, metric
// calculator and HTTP stack.
type Application struct {
	Config     *config.Config
	Paths      *config.Paths
	Logger     *slog.Logger
	Loader     *dataprocessing.Loader
	Calculator *metrics.Calculator
	Router     chi.Router
	Server     *http.Server
}

// NewApplication creates a fully wired application.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}
	paths.LogPathResolution()

	app := &Application{
		Config:     cfg,
		Paths:      paths,
		Logger:     logger,
		Loader:     dataprocessing.NewLoader(paths, logger),
		Calculator: metrics.NewCalculator(logger),
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter builds the middleware chain and mounts all routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
		AllowedOrigins: []string{"*"},
		Logger:         a.Logger,
	}))
	r.Use(customMiddleware.Metrics)
	r.Use(customMiddleware.Compress(5))

	if a.Config.Security.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.Logger))

		healthHandler := httphandlers.NewHealthHandler(a.Paths, Version, a.Logger)
		r.Mount("/health", healthHandler.Routes())
		r.Get("/version", healthHandler.Version)

		metricsHandler := httphandlers.NewMetricsHandler(a.Loader, a.Calculator, a.Logger)
		r.Mount("/metrics", metricsHandler.Routes())

		qualityHandler := httphandlers.NewQualityHandler(a.Loader, a.Logger)
		r.Mount("/quality", qualityHandler.Routes())

		recordsHandler := httphandlers.NewRecordsHandler(a.Loader, a.Logger)
		r.Mount("/records", recordsHandler.Routes())
	})

	// Prometheus scrape endpoint, outside the API middleware group
	r.Handle("/metrics", promhttp.Handler())

	a.Router = r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start runs the HTTP server until the context is canceled or the server
// fails. Shutdown is graceful within the configured timeout.
func (a *Application) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Info("Server starting",
			slog.String("addr", a.Server.Addr),
			slog.String("version", Version))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		return a.Stop()
	}
}

// Stop shuts the server down gracefully.
func (a *Application) Stop() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	a.Logger.Info("Server shutting down",
		slog.Duration("timeout", a.Config.Server.ShutdownTimeout))

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	infrastructure.CloseLogFile()
	return nil
}

// Run starts the application and blocks until an interrupt or terminate
// signal arrives.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err := a.Start(ctx)
	a.Logger.Info("Server stopped", slog.Duration("uptime", time.Since(start)))
	return err
}
