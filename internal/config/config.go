package config

import "time"

// Deployment environment tags recognized across the configuration.
const (
	EnvDev        = "dev"
	EnvTest       = "test"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// CompleteConfiguration aggregates every domain configuration the identity
// service needs at bootstrap, plus free-form extension properties.
//
// Nested sections are pointers so that an absent section is distinguishable
// from a zero-valued one; the validation engine treats the two differently.
// A CompleteConfiguration is constructed once per boot (or reload) and is
// never mutated by validation.
type CompleteConfiguration struct {
	Environment      string             `mapstructure:"environment"`
	Database         *DatabaseConfig    `mapstructure:"database" validate:"required"`
	JWT              *JWTConfig         `mapstructure:"jwt" validate:"required"`
	Security         *SecurityConfig    `mapstructure:"security" validate:"required"`
	Application      *ApplicationConfig `mapstructure:"application" validate:"required"`
	CustomProperties map[string]string  `mapstructure:"custom_properties"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL               string        `mapstructure:"url" validate:"required"`
	Username          string        `mapstructure:"username" validate:"required"`
	Password          string        `mapstructure:"password" validate:"required"`
	MaxPoolSize       int           `mapstructure:"max_pool_size" validate:"required,gt=0,lte=1000"`
	MinPoolSize       int           `mapstructure:"min_pool_size"`
	ConnectionTimeout time.Duration `mapstructure:"connection_timeout"`
	EnableMigrations  bool          `mapstructure:"enable_migrations"`
	MigrationLocation string        `mapstructure:"migration_location"`
}

// JWTConfig contains token issuance settings for the identity service.
// ExpirationTime and RefreshTokenExpiration are expressed in seconds.
type JWTConfig struct {
	Secret                 string `mapstructure:"secret" validate:"required,min=32"`
	ExpirationTime         int    `mapstructure:"expiration_time" validate:"required,gte=1,lte=86400"`
	Issuer                 string `mapstructure:"issuer" validate:"required"`
	SigningAlgorithm       string `mapstructure:"signing_algorithm" validate:"required"`
	RefreshTokenEnabled    bool   `mapstructure:"refresh_token_enabled"`
	RefreshTokenExpiration int    `mapstructure:"refresh_token_expiration"`
}

// SecurityConfig groups the security policy knobs: password rules,
// session management, CORS, and rate limiting.
type SecurityConfig struct {
	Environment    string           `mapstructure:"environment"`
	PasswordPolicy *PasswordPolicy  `mapstructure:"password_policy" validate:"required"`
	Session        *SessionConfig   `mapstructure:"session"`
	Cors           *CorsConfig      `mapstructure:"cors"`
	RateLimit      *RateLimitConfig `mapstructure:"rate_limit"`
}

// PasswordPolicy defines the minimum requirements for user passwords.
type PasswordPolicy struct {
	MinLength           int  `mapstructure:"min_length" validate:"required,gte=8"`
	RequireUppercase    bool `mapstructure:"require_uppercase"`
	RequireLowercase    bool `mapstructure:"require_lowercase"`
	RequireDigits       bool `mapstructure:"require_digits"`
	RequireSpecialChars bool `mapstructure:"require_special_chars"`
}

// SessionConfig controls concurrent session limits and session lifetime.
type SessionConfig struct {
	MaxSessions    int           `mapstructure:"max_sessions"`
	SessionTimeout time.Duration `mapstructure:"session_timeout"`
}

// CorsConfig lists the origins and methods the service will accept
// cross-origin requests from.
type CorsConfig struct {
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	AllowedMethods []string      `mapstructure:"allowed_methods"`
	MaxAge         time.Duration `mapstructure:"max_age"`
}

// RateLimitConfig controls request throttling.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	BurstCapacity     int  `mapstructure:"burst_capacity"`
}

// ApplicationConfig contains service identity and server settings.
type ApplicationConfig struct {
	Name        string             `mapstructure:"name" validate:"required"`
	Version     string             `mapstructure:"version"`
	Environment string             `mapstructure:"environment"`
	Server      *ServerConfig      `mapstructure:"server" validate:"required"`
	Logging     *LoggingConfig     `mapstructure:"logging"`
	HealthCheck *HealthCheckConfig `mapstructure:"health_check"`
}

// ServerConfig contains the HTTP listener settings.
type ServerConfig struct {
	Port       int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	Host       string `mapstructure:"host" validate:"required"`
	MaxThreads int    `mapstructure:"max_threads"`
}

// LoggingConfig controls log level and file rotation settings.
type LoggingConfig struct {
	Level       string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	File        string `mapstructure:"file"`
	MaxFileSize string `mapstructure:"max_file_size"`
	MaxHistory  int    `mapstructure:"max_history"`
}

// HealthCheckConfig controls the liveness endpoint exposed by the server.
type HealthCheckConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}
