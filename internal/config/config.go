package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the server settings read from the environment
type Config struct {
	Port          string
	DBType        string
	DBPath        string
	DatabaseURL   string
	CORSOrigins   []string
	AdminPassword string
	IdleTimeout   time.Duration
	SweepInterval time.Duration
	RandomSeed    int64
	LogLevel      string
	LogFormat     string
}

const (
	defaultDatabaseURL = "host=localhost port=5432 user=postgres password=postgres dbname=save_the_dragon sslmode=disable"
	defaultCORSOrigins = "http://localhost:3000,http://localhost:5173"
)

// Load reads the configuration, falling back to defaults for unset variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBType:        strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DBPath:        getEnv("DB_PATH", "./save-the-dragon.db"),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", defaultCORSOrigins)),
		AdminPassword: getEnv("ADMIN_PASSWORD", "superman"),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "console")),
	}

	var err error
	if cfg.IdleTimeout, err = getDuration("IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getDuration("SWEEP_INTERVAL", 60*time.Second); err != nil {
		return nil, err
	}
	if raw := os.Getenv("RANDOM_SEED"); raw != "" {
		if cfg.RandomSeed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED %q: %w", raw, err)
		}
	}

	switch cfg.DBType {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("invalid DB_TYPE %q: want sqlite or postgres", cfg.DBType)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want console or json", cfg.LogFormat)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
