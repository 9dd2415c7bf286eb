package config

import (
	"os"
	"strconv"

	"winelab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds dataset loading settings. The remote dataset address itself
// is fixed and not configurable; only the local fallbacks are.
type DataConfig struct {
	// CacheFile, when set, holds a copy of the last successfully fetched
	// dataset and is used when the remote fetch fails.
	CacheFile string
	// LocalFile, when set, is loaded instead of the remote dataset.
	// Supports semicolon-delimited .csv and .xlsx files.
	LocalFile string
	// FetchTimeoutSeconds bounds the one-time remote fetch.
	FetchTimeoutSeconds int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			CacheFile:           os.Getenv("DATASET_CACHE"),
			LocalFile:           os.Getenv("DATASET_FILE"),
			FetchTimeoutSeconds: getEnvIntOrDefault("DATASET_FETCH_TIMEOUT", 30),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	if config.Data.FetchTimeoutSeconds <= 0 {
		return errors.ConfigInvalid("DATASET_FETCH_TIMEOUT must be positive")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
