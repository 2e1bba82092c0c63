// cmd/worker-manager/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitchdeck/internal/common/camunda"
	"pitchdeck/internal/common/config"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/observability"
	"pitchdeck/internal/deck/repository"
	"pitchdeck/pkg/registry"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("storage", cfg.Storage.Backend),
	)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("observability disabled", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = obs.Shutdown(ctx)
	}()

	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("registry load failed", zap.Error(err))
	}
	if err := reg.Validate(); err != nil {
		zapLog.Fatal("registry invalid", zap.Error(err))
	}

	ctx := context.Background()

	backend, err := openBackend(ctx, cfg.Storage)
	if err != nil {
		zapLog.Fatal("storage open failed", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	defer backend.Close()
	zapLog.Info("Storage ready", zap.String("backend", cfg.Storage.Backend))

	repo := repository.New(backend.store, log, repository.WithKeyPrefix(cfg.Storage.KeyPrefix))

	zeebe, err := camunda.NewClient(ctx, camunda.ClientConfigFrom(cfg.Camunda))
	if err != nil {
		zapLog.Fatal("zeebe client failed", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	handlers, err := buildHandlers(cfg, repo, reg, log, obs)
	if err != nil {
		zapLog.Fatal("worker setup failed", zap.Error(err))
	}
	workers := startWorkers(zeebe.GetClient(), cfg, handlers, log)
	zapLog.Info("Workers registered", zap.Int("count", len(workers)))

	srv := &http.Server{
		Addr:              cfg.Metrics.Address,
		Handler:           newHealthMux(backend.ping, zeebe.HealthCheck),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
