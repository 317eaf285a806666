package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "DB_TYPE", "DB_PATH", "DATABASE_URL", "CORS_ORIGINS", "ADMIN_PASSWORD",
		"IDLE_TIMEOUT", "SWEEP_INTERVAL", "RANDOM_SEED", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "./save-the-dragon.db", cfg.DBPath)
	assert.Equal(t, "superman", cfg.AdminPassword)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 60*time.Second, cfg.SweepInterval)
	assert.Zero(t, cfg.RandomSeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:5173")
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_TYPE", "Postgres")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("IDLE_TIMEOUT", "90s")
	t.Setenv("RANDOM_SEED", "1234")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 90*time.Second, cfg.IdleTimeout)
	assert.Equal(t, int64(1234), cfg.RandomSeed)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"IDLE_TIMEOUT":   "soon",
		"SWEEP_INTERVAL": "-5s",
		"RANDOM_SEED":    "abc",
		"DB_TYPE":        "mongo",
		"LOG_FORMAT":     "xml",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
