// Package config holds the identity service's bootstrap configuration:
// the domain configuration value objects, a viper-based loader that
// materializes them from environment variables and an optional YAML file,
// and the validation engine that judges a loaded configuration before the
// service is allowed to start or reload.
package config
