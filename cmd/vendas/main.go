package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vendas/internal/backend"
	"vendas/internal/catalog"
	"vendas/internal/config"
	apphttp "vendas/internal/http"
	"vendas/internal/ledger"
	applog "vendas/internal/log"
	"vendas/internal/settings"
)

func main() {
	// Load .env file if present (ignore errors for production deployments)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}

	factory := backend.NewFactory(logger.WithComponent(applog.ComponentBackend).Logger)
	result, err := factory.CreateStore(backendCfg)
	if err != nil {
		logger.Error("Failed to initialize record store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Record store cleanup failed", "error", err)
			}
		}()
	}

	catalogSvc := catalog.NewService(result.Store, nil, nil)
	ledgerSvc := ledger.NewService(result.Store, nil, nil)
	settingsSvc := settings.NewService(result.Store)

	srv := apphttp.NewServer(":"+cfg.Port, catalogSvc, ledgerSvc, settingsSvc, result.Store, apphttp.Options{
		CacheTTL:  cfg.DashboardCacheTTL,
		CacheSize: cfg.DashboardCacheSize,
	})

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting vendas server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
