package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/vtexgate/internal/aggregate"
	"github.com/fr0stylo/vtexgate/internal/config"
	"github.com/fr0stylo/vtexgate/internal/observability"
	"github.com/fr0stylo/vtexgate/internal/server"
	"github.com/fr0stylo/vtexgate/internal/server/routes"
	"github.com/fr0stylo/vtexgate/internal/vtex"
)

func Run() error {
	log := observability.NewLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Server.LogLevel != slog.LevelInfo {
		log = observability.NewLogger(os.Stdout, cfg.Server.LogLevel)
		slog.SetDefault(log)
	}

	shutdownTelemetry, err := observability.SetupOpenTelemetry(context.Background(), log, observability.OpenTelemetryConfig{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVer:        cfg.Observability.ServiceVer,
		Environment:       cfg.Environment,
		AccountName:       cfg.Upstream.AccountName,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			slog.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	srv := newServer(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("Starting server", "port", cfg.Server.Port, "environment", cfg.Environment)
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return <-errCh
}

// newServer wires the upstream client, the fan-out aggregator and every route.
func newServer(cfg config.Config, log *slog.Logger) *server.Server {
	client := vtex.NewClient(vtex.Credentials{
		BaseURL:  cfg.Upstream.BaseURL,
		AppKey:   cfg.Upstream.AppKey,
		AppToken: cfg.Upstream.AppToken,
	},
		vtex.WithHTTPClient(observability.HTTPClient(cfg.Upstream.Timeout)),
		vtex.WithLogger(log),
	)
	commerce := vtex.NewAPI(client, vtex.NewEndpoints(
		client.BaseURL(),
		cfg.Upstream.AccountName,
		cfg.Upstream.CollectionSearchURL,
	))
	aggregator := aggregate.New(
		aggregate.WithLimit(cfg.FanOut.Limit),
		aggregate.WithLogger(log),
	)

	srv := server.New(log, server.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		ServiceName: cfg.Observability.ServiceName,
		Tracing:     cfg.Observability.Enabled,
	})
	srv.RegisterRouter(routes.HealthRoutes{})
	srv.RegisterRouter(routes.NewCatalogRoutes(commerce, aggregator, log))
	srv.RegisterRouter(routes.NewCartRoutes(commerce, aggregator, log))
	return srv
}
