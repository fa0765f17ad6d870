package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// DatabaseConfig contains ledger database settings.
type DatabaseConfig struct {
	Path string // SQLite DSN for the session allocation ledger
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// DefaultLedgerPath keeps the allocation ledger in memory so nothing
// survives the session; point DB_PATH at a file to inspect a session's
// ledger with external tools.
const DefaultLedgerPath = "file:medswap?mode=memory&cache=shared"

// Load loads configuration from environment variables with sensible
// defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", DefaultLedgerPath),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.Log.Format)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s, Log: %s/%s}", c.Database.Path, c.Log.Level, c.Log.Format)
}
