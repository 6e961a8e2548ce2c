// Package logger provides structured logging functionality for the
// application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/workstream/internal/config"
)

// Setup initializes and configures the application's logging system based
// on the provided configuration. It creates a structured JSON logger with
// the appropriate log level and sets it as the default logger for the
// application.
func Setup(cfg config.LogConfig) (*slog.Logger, error) {
	return setup(cfg, os.Stderr)
}

// setup is the testable core of Setup, writing to the given sink.
func setup(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level := parseLevel(cfg.Level)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	// Set this logger as the default so package-level slog calls use it.
	slog.SetDefault(logger)

	return logger, nil
}

// parseLevel maps a configured level name (case-insensitive) to a slog
// level, falling back to info for anything unrecognized. Config validation
// already rejects unknown levels; the fallback covers callers that build a
// LogConfig by hand.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
