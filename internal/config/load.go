package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variables, e.g.
// IDENTITY_DATABASE_URL maps to the "database.url" key.
const envPrefix = "IDENTITY"

// Load reads the complete configuration from environment variables and,
// when present, a config.yaml file in the working directory or /etc/identity.
// Environment variables take precedence over file values, which take
// precedence over defaults.
//
// Load performs the structural pass only: the file decodes, every section is
// present, and individual fields have the right shape. Policy judgment
// (pool bounds, secret entropy, CORS rules, cross-domain invariants) is the
// Validator's job and runs separately during bootstrap.
func Load() (*CompleteConfiguration, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/identity")
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; env vars and defaults still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg CompleteConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers a default for every known key. Registering the key
// is also what lets AutomaticEnv pick up env-only values during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", EnvDev)

	v.SetDefault("database.url", "")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.max_pool_size", 10)
	v.SetDefault("database.min_pool_size", 1)
	v.SetDefault("database.connection_timeout", 30*time.Second)
	v.SetDefault("database.enable_migrations", false)
	v.SetDefault("database.migration_location", "migrations")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_time", 3600)
	v.SetDefault("jwt.issuer", "identity-api")
	v.SetDefault("jwt.signing_algorithm", "HS256")
	v.SetDefault("jwt.refresh_token_enabled", false)
	v.SetDefault("jwt.refresh_token_expiration", 604800)

	v.SetDefault("security.environment", EnvDev)
	v.SetDefault("security.password_policy.min_length", 8)
	v.SetDefault("security.password_policy.require_uppercase", true)
	v.SetDefault("security.password_policy.require_lowercase", true)
	v.SetDefault("security.password_policy.require_digits", true)
	v.SetDefault("security.password_policy.require_special_chars", false)
	v.SetDefault("security.session.max_sessions", 3)
	v.SetDefault("security.session.session_timeout", 2*time.Hour)
	v.SetDefault("security.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE"})
	v.SetDefault("security.cors.max_age", time.Hour)
	v.SetDefault("security.rate_limit.enabled", true)
	v.SetDefault("security.rate_limit.requests_per_minute", 60)
	v.SetDefault("security.rate_limit.burst_capacity", 100)

	v.SetDefault("application.name", "identity-api")
	v.SetDefault("application.version", "0.0.0")
	v.SetDefault("application.environment", EnvDev)
	v.SetDefault("application.server.port", 8080)
	v.SetDefault("application.server.host", "0.0.0.0")
	v.SetDefault("application.server.max_threads", 200)
	v.SetDefault("application.logging.level", "info")
	v.SetDefault("application.logging.file", "")
	v.SetDefault("application.logging.max_file_size", "10MB")
	v.SetDefault("application.logging.max_history", 30)
	v.SetDefault("application.health_check.enabled", true)
	v.SetDefault("application.health_check.endpoint", "/health")
	v.SetDefault("application.health_check.timeout", 10*time.Second)
}
