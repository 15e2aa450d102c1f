package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("CSRF_SECRET", "c")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, 120, cfg.AppRateLimit)
	assert.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
	assert.Equal(t, "0 2 * * *", cfg.WarmupCron)
	assert.True(t, cfg.MigrateOnBoot)
	assert.False(t, cfg.DemoData)
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"DASHBOARD_CACHE_TTL": "-1s",
		"APP_RATE_LIMIT":      "0",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", "production")
			t.Setenv("SESSION_SECRET", "s")
			t.Setenv("CSRF_SECRET", "c")
			t.Setenv(key, value)

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestLoadConfigRateLimit(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("CSRF_SECRET", "c")
	t.Setenv("APP_RATE_LIMIT", "30")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.AppRateLimit)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel(" Debug ").String())
	assert.Equal(t, "WARN", parseLevel("warning").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("").String())

	var nilConfig *Config
	assert.False(t, nilConfig.IsProduction())
}
