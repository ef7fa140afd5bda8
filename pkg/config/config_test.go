package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "data/Video_Games.csv", cfg.SourcePath)
	assert.Equal(t, "PS", cfg.PlatformPrefix)
	assert.Equal(t, 10, cfg.TopGames)
	assert.Equal(t, 10, cfg.TopPublishers)
	assert.Equal(t, "results/genre_sales.png", cfg.ChartPath)
	assert.Empty(t, cfg.ReportDir)
	assert.False(t, cfg.ImportEnabled)
	assert.Nil(t, cfg.Postgres)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SOURCE_CSV", "/data/sales.csv")
	t.Setenv("PLATFORM_PREFIX", "X")
	t.Setenv("TOP_GAMES", "5")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/data/sales.csv", cfg.SourcePath)
	assert.Equal(t, "X", cfg.PlatformPrefix)
	assert.Equal(t, 5, cfg.TopGames)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("TOP_GAMES", "lots")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TopGames)
}

func TestLoadConfigRejectsNonPositiveCounts(t *testing.T) {
	t.Setenv("TOP_GAMES", "0")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top games")
}

func TestLoadConfigImportRequiresPostgres(t *testing.T) {
	t.Setenv("IMPORT_ENABLED", "true")
	t.Setenv("POSTGRES_USER", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_USER")
}

func TestLoadPostgresConfig(t *testing.T) {
	t.Setenv("POSTGRES_USER", "ingest")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "games")
	t.Setenv("POSTGRES_PORT", "6543")

	cfg, err := LoadPostgresConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, 1000, cfg.BatchSize)
	assert.Equal(t, "host=localhost port=6543 user=ingest password=secret dbname=games sslmode=disable", cfg.ConnectionString())
}
