package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/dashsoft/identity-api/internal/config"
)

// runMigrations applies pending schema migrations from the configured
// location. Called only when migrations are enabled in the database
// configuration.
func runMigrations(db *sql.DB, cfg *config.DatabaseConfig, log *slog.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	log.Info("applying database migrations", "location", cfg.MigrationLocation)
	if err := goose.Up(db, cfg.MigrationLocation); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Info("database migrations applied", "version", version)
	return nil
}
