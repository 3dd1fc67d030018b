package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	exportApi "github.com/ghuser/stockroom/services/export/application/api"
	ledgerApi "github.com/ghuser/stockroom/services/ledger/application/api"
	ledgerSvcs "github.com/ghuser/stockroom/services/ledger/application/services"
	"github.com/ghuser/stockroom/services/ledger/application/subscribers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
	}

	svcs, err := ledgerSvcs.New(appConfig)
	if err != nil {
		log.Error("failed to initialize ledger", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	log.Info("ledger loaded", "snapshot", cfg.SnapshotPath)

	// The GoChannel transport is in-process: subscribers must be registered in
	// this binary or events published by the API are dropped.
	if err := subscribers.RegisterLowStockAlerts(ctx, eventBus, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Snapshot: svcs.Ledger,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, svcs, log)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, svcs *ledgerSvcs.Services, log logger.Logger) {
	ledgerApi.LedgerRoutes(r, svcs)
	exportApi.ExportRoutes(r, svcs.Ledger, log)
}
