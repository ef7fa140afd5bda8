// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	// Pipeline inputs and outputs
	SourcePath     string
	PlatformPrefix string
	TopGames       int
	TopPublishers  int
	ChartPath      string
	ReportDir      string // empty disables CSV export

	// Optional relational import
	ImportEnabled bool
	Postgres      *PostgresConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Default values
		SourcePath:     getEnv("SOURCE_CSV", "data/Video_Games.csv"),
		PlatformPrefix: getEnv("PLATFORM_PREFIX", "PS"),
		TopGames:       getEnvAsInt("TOP_GAMES", 10),
		TopPublishers:  getEnvAsInt("TOP_PUBLISHERS", 10),
		ChartPath:      getEnv("CHART_PATH", "results/genre_sales.png"),
		ReportDir:      getEnv("REPORT_DIR", ""),
		ImportEnabled:  getEnvAsBool("IMPORT_ENABLED", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
	}

	// The database is an optional collaborator; its configuration is only
	// required when the import step is switched on.
	if cfg.ImportEnabled {
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.SourcePath == "" {
		return errors.New("source path is required")
	}

	if c.TopGames <= 0 {
		return errors.New("top games count must be positive")
	}

	if c.TopPublishers <= 0 {
		return errors.New("top publishers count must be positive")
	}

	if c.ChartPath == "" {
		return errors.New("chart path is required")
	}

	if c.ImportEnabled && c.Postgres == nil {
		return errors.New("postgreSQL configuration is required when import is enabled")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
