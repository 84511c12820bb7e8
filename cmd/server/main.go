package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/getsentry/sentry-go"
	"github.com/grafana/pyroscope-go"

	"github.com/tourhive/tourhive/internal/config"
	"github.com/tourhive/tourhive/internal/logger"
	pgclient "github.com/tourhive/tourhive/internal/postgres"
	repo "github.com/tourhive/tourhive/internal/repository/postgres"
	"github.com/tourhive/tourhive/internal/rest"
	"github.com/tourhive/tourhive/internal/service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.GetLogger().Fatalf("failed to load configuration: %v", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		logger.GetLogger().Fatalf("failed to initialize logger: %v", err)
	}

	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			TracesSampleRate: cfg.Sentry.SampleRate,
		}); err != nil {
			log.Warnw("failed to initialize sentry", "error", err)
		}
	}

	if cfg.Pyroscope.Enabled {
		if _, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "tourhive-server",
			ServerAddress:   cfg.Pyroscope.ServerAddress,
			Logger:          log,
		}); err != nil {
			log.Warnw("failed to start pyroscope", "error", err)
		}
	}

	client, err := pgclient.NewClient(cfg, log)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer client.Close()

	params := service.ServiceParams{
		Logger:      log,
		Config:      cfg,
		BookingRepo: repo.NewBookingRepository(client, log),
		PackageRepo: repo.NewPackageRepository(client, log),
	}

	router := rest.NewRouter(cfg, log, rest.NewHandlers(params, log))

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		log.Infow("starting server", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}
}
