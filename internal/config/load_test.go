package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for a test and returns a cleanup
// function restoring the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		require.NoError(t, os.Setenv(name, value), "failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// requiredEnv returns the minimal environment for a loadable configuration.
func requiredEnv() map[string]string {
	return map[string]string{
		"IDENTITY_DATABASE_URL":      "postgres://localhost:5432/identity_db",
		"IDENTITY_DATABASE_USERNAME": "admin",
		"IDENTITY_DATABASE_PASSWORD": "password123",
		"IDENTITY_JWT_SECRET":        "thisisasecretkeythatis32charslong!!",
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, requiredEnv())
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, EnvDev, cfg.Environment)
	assert.Equal(t, 8080, cfg.Application.Server.Port, "default server port should be 8080")
	assert.Equal(t, "info", cfg.Application.Logging.Level, "default log level should be 'info'")
	assert.Equal(t, 10, cfg.Database.MaxPoolSize)
	assert.Equal(t, 3600, cfg.JWT.ExpirationTime)
	assert.Equal(t, "HS256", cfg.JWT.SigningAlgorithm)
	assert.Equal(t, 8, cfg.Security.PasswordPolicy.MinLength)
	assert.True(t, cfg.Application.HealthCheck.Enabled)
	assert.Equal(t, "/health", cfg.Application.HealthCheck.Endpoint)
}

func TestLoadFromEnv(t *testing.T) {
	env := requiredEnv()
	env["IDENTITY_ENVIRONMENT"] = "staging"
	env["IDENTITY_APPLICATION_SERVER_PORT"] = "9090"
	env["IDENTITY_APPLICATION_LOGGING_LEVEL"] = "debug"
	env["IDENTITY_JWT_EXPIRATION_TIME"] = "1800"
	env["IDENTITY_SECURITY_PASSWORD_POLICY_MIN_LENGTH"] = "12"
	cleanup := setupEnv(t, env)
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 9090, cfg.Application.Server.Port)
	assert.Equal(t, "debug", cfg.Application.Logging.Level)
	assert.Equal(t, "postgres://localhost:5432/identity_db", cfg.Database.URL)
	assert.Equal(t, "thisisasecretkeythatis32charslong!!", cfg.JWT.Secret)
	assert.Equal(t, 1800, cfg.JWT.ExpirationTime)
	assert.Equal(t, 12, cfg.Security.PasswordPolicy.MinLength)
}

func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "missing required fields",
			envVars: map[string]string{
				"IDENTITY_DATABASE_URL":      "",
				"IDENTITY_DATABASE_USERNAME": "",
				"IDENTITY_DATABASE_PASSWORD": "",
				"IDENTITY_JWT_SECRET":        "",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "port out of range",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["IDENTITY_APPLICATION_SERVER_PORT"] = "999999"
				return env
			}(),
			errorSubstring: "validation failed",
		},
		{
			name: "invalid log level",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["IDENTITY_APPLICATION_LOGGING_LEVEL"] = "loud"
				return env
			}(),
			errorSubstring: "validation failed",
		},
		{
			name: "short JWT secret",
			envVars: func() map[string]string {
				env := requiredEnv()
				env["IDENTITY_JWT_SECRET"] = "tooshort"
				return env
			}(),
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg)
		})
	}
}
