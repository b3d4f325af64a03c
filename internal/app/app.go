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
	"github.com/go-chi/render"

	"retailpulse/internal/config"
	"retailpulse/internal/infrastructure"
	customMiddleware "retailpulse/internal/middleware"
	"retailpulse/internal/services"
	handlers "retailpulse/internal/transport/http"
)

const (
	// Version is overridable at link time
	Version = "1.0.0"
	// AppName identifies the service in startup logs
	AppName = "RetailPulse Reporting"
)

// Application represents the main application container
type Application struct {
	Config *config.Config
	Router *chi.Mux
	Server *http.Server
	Logger *slog.Logger

	SalesService    *services.SalesService
	VarianceService *services.VarianceService
	HealthService   *services.HealthService
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	// Workbooks are cached for the process lifetime; replacing a file on
	// disk requires a restart to take effect.
	logger.Info("dataset sources",
		slog.String("price_list", cfg.Datasets.PriceList),
		slog.String("sales_workbook", cfg.Datasets.SalesWorkbook),
		slog.String("stock_book", cfg.Datasets.StockBook),
		slog.String("physical_count", cfg.Datasets.PhysicalCount))

	app := &Application{
		Config:          cfg,
		Logger:          logger,
		SalesService:    services.NewSalesService(cfg, logger),
		VarianceService: services.NewVarianceService(cfg, logger),
		HealthService:   services.NewHealthService(Version, cfg.Datasets, logger),
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter wires middleware and routes
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(handlers.CountRequests)

	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
			Logger:         a.Logger,
		}))
	}

	if a.Config.Security.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Mount("/sales", handlers.NewSalesHandler(a.SalesService, a.Logger).Routes())
		r.Mount("/variance", handlers.NewVarianceHandler(a.VarianceService, a.Logger).Routes())
		r.Mount("/health", handlers.NewHealthHandler(a.HealthService).Routes())
	})

	r.Handle("/metrics", handlers.MetricsHandler())

	a.Router = r
}

// createServer builds the HTTP server from configuration
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start runs the HTTP server until the context is cancelled
func (a *Application) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Info("HTTP server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return a.Stop(context.Background())
	}
}

// Stop gracefully shuts down the server
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.Info("shutting down",
		slog.Duration("timeout", a.Config.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
		return err
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		return err
	}

	a.Logger.Info("shutdown complete")
	return nil
}

// Run starts the application and blocks until SIGINT/SIGTERM
func (a *Application) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	err := a.Start(ctx)
	a.Logger.Info("server stopped", slog.Duration("uptime", time.Since(start)))
	return err
}
