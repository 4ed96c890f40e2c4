// File path: internal/sqlite/config.go
package sqlite

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config controls the SQLite connection pool. Values come from the
// environment; zero values fall back to defaults in applyDefaults.
type Config struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration
}

// LoadConfig reads pool settings from the environment and applies defaults.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if path := strings.TrimSpace(os.Getenv("SQLITE_PATH")); path != "" {
		cfg.Path = path
	}
	if raw := strings.TrimSpace(os.Getenv("SQLITE_MAX_OPEN_CONNS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SQLITE_MAX_OPEN_CONNS: %w", err)
		}
		cfg.MaxOpenConns = value
	}
	if raw := strings.TrimSpace(os.Getenv("SQLITE_MAX_IDLE_CONNS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SQLITE_MAX_IDLE_CONNS: %w", err)
		}
		cfg.MaxIdleConns = value
	}
	if raw := strings.TrimSpace(os.Getenv("SQLITE_CONN_MAX_LIFETIME")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SQLITE_CONN_MAX_LIFETIME: %w", err)
		}
		cfg.ConnMaxLifetime = parsed
	}
	if raw := strings.TrimSpace(os.Getenv("SQLITE_BUSY_TIMEOUT")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SQLITE_BUSY_TIMEOUT: %w", err)
		}
		cfg.BusyTimeout = parsed
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 8
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = c.MaxOpenConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = 15 * time.Minute
	}
	if c.BusyTimeout <= 0 {
		c.BusyTimeout = 5 * time.Second
	}
}
