package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-fieldsales/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DATABASE_URL":      "postgres://localhost/fieldsales",
		"REDIS_URL":         "redis://localhost:6379",
		"PORT":              "",
		"CURRENCY_SYMBOL":   "",
		"SUBMIT_RATE_MAX":   "",
		"CATALOG_CACHE_TTL": "",
	})
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "₹", cfg.CurrencySymbol)
	require.Equal(t, 30, cfg.SubmitRateMax)
	require.Equal(t, 10*time.Minute, cfg.CatalogCacheTTL)
	require.False(t, cfg.RunMigrations)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"DATABASE_URL": "",
		"REDIS_URL":    "redis://localhost:6379",
	})
	require.Error(t, err)
}

func TestLoadRequiresRedisURL(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"DATABASE_URL": "postgres://localhost/fieldsales",
		"REDIS_URL":    "",
	})
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DATABASE_URL":       "postgres://localhost/fieldsales",
		"REDIS_URL":          "redis://localhost:6379",
		"PORT":               "9091",
		"SUBMIT_RATE_MAX":    "5",
		"SUBMIT_RATE_WINDOW": "30s",
		"RUN_MIGRATIONS":     "true",
	})
	require.NoError(t, err)
	require.Equal(t, ":9091", cfg.HTTPAddr())
	require.Equal(t, 5, cfg.SubmitRateMax)
	require.Equal(t, 30*time.Second, cfg.SubmitRateWindow)
	require.True(t, cfg.RunMigrations)
}
