// Package logger provides structured logging for the identity service.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/dashsoft/identity-api/internal/config"
)

// Setup builds a structured JSON logger from the logging configuration and
// installs it as the process default. A nil configuration or an unknown
// level falls back to info.
func Setup(cfg *config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		switch strings.ToLower(cfg.Level) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			tmp := slog.New(slog.NewTextHandler(os.Stderr, nil))
			tmp.Warn("invalid log level configured, using default level",
				"configured_level", cfg.Level,
				"default_level", "info")
		}
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
