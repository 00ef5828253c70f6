// Package main implements the entry point for the identity API server.
// It validates the bootstrap configuration before anything else is
// initialized: a service with an unsafe or inconsistent configuration must
// not start.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dashsoft/identity-api/internal/config"
	"github.com/dashsoft/identity-api/internal/platform/logger"
	"github.com/dashsoft/identity-api/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		// Structural failure: the configuration could not even be
		// materialized.
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var logging *config.LoggingConfig
	if cfg.Application != nil {
		logging = cfg.Application.Logging
	}
	log := logger.Setup(logging)

	// Policy judgment. Every failing domain is reported before exiting so
	// the operator can fix the whole configuration in one pass.
	result, err := config.NewValidator().ValidateWithDetails(cfg)
	if err != nil {
		return fmt.Errorf("configuration validation aborted: %w", err)
	}
	if !result.IsValid() {
		for _, msg := range result.Errors() {
			log.Error("configuration rejected", "reason", msg)
		}
		return errors.New("configuration failed validation")
	}

	log.Info("configuration validated",
		"environment", cfg.Environment,
		"service", cfg.Application.Name,
		"version", cfg.Application.Version,
		"port", cfg.Application.Server.Port)

	db, err := openDatabase(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database connection", "error", err)
		}
	}()

	if cfg.Database.EnableMigrations {
		if err := runMigrations(db, cfg.Database, log); err != nil {
			return err
		}
	}

	users := postgres.NewUserStore(db)
	router, err := newRouter(cfg, db, users, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Application.Server.Host, cfg.Application.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
