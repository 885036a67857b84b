// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"github.com/allisson/secrets-validator/internal/secrets/domain"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MaxAllowedSecretInBytes is the largest secret payload accepted, in bytes.
	MaxAllowedSecretInBytes int
	// ValidationConcurrency is the number of documents validated in parallel by a batch.
	ValidationConcurrency int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfilePath is where batch runs write Prometheus metrics. Empty disables the file.
	MetricsTextfilePath string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Validation
		MaxAllowedSecretInBytes: env.GetInt("MAX_ALLOWED_SECRET_IN_BYTES", domain.DefaultMaxSecretBytes),
		ValidationConcurrency:   env.GetInt("VALIDATION_CONCURRENCY", 4),

		// Metrics
		MetricsEnabled:      env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace:    env.GetString("METRICS_NAMESPACE", "secrets_validator"),
		MetricsTextfilePath: env.GetString("METRICS_TEXTFILE_PATH", ""),
	}
}

// MaxSecretBytes returns the configured secret payload limit, so a Config can be
// handed to validators as their size limit.
func (c *Config) MaxSecretBytes() int {
	return c.MaxAllowedSecretInBytes
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
