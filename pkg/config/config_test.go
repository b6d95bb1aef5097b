package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "https://api.coingecko.com/api/v3", cfg.Market.BaseURL)
	require.Equal(t, 1200*time.Millisecond, cfg.Market.RateLimitDelay)
	require.Equal(t, 30, cfg.Market.HistoryDays)
	require.Equal(t, 5*time.Minute, cfg.Market.SeriesCacheTTL)
	require.Equal(t, time.Minute, cfg.Market.SpotCacheTTL)
	require.Equal(t, 10, cfg.Forecast.Lookback)
	require.Equal(t, 7, cfg.Forecast.DefaultHorizon)
	require.Equal(t, "memory", cfg.Cache.Backend)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9000
market:
  rate_limit_delay: 1500ms
cache:
  backend: redis
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, 1500*time.Millisecond, cfg.Market.RateLimitDelay)
	require.Equal(t, "redis", cfg.Cache.Backend)
	// Untouched values keep their defaults.
	require.Equal(t, 30, cfg.Market.HistoryDays)
}

func TestLoadInvalidBackend(t *testing.T) {
	path := writeConfig(t, "cache:\n  backend: memcached\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cache.backend")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: staging\n")

	t.Setenv("PORT", "7070")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithEnv(path)
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "redis", cfg.Cache.Backend)
	require.Equal(t, "cache.internal", cfg.Cache.Redis.Host)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidateLookback(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	cfg.Forecast.Lookback = 1
	require.Error(t, cfg.Validate())
}
