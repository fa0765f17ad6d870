// Package logger centralizes slog initialization so every component
// logs through one consistently configured handler.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"medswap/internal/config"
)

var defaultLogger *slog.Logger

// Setup builds the default logger from the log config. Output goes to
// standard error so the operator shell keeps stdout for its tables.
func Setup(cfg config.LogConfig) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	var h slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	}
	defaultLogger = slog.New(h)
	return defaultLogger
}

// L returns the default logger, initializing it with defaults if Setup
// has not run.
func L() *slog.Logger {
	if defaultLogger == nil {
		return Setup(config.LogConfig{Level: "info", Format: "text"})
	}
	return defaultLogger
}
