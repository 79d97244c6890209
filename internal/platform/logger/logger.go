// Package logger builds the session's structured logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a structured logger writing to stderr, keeping stdout free for
// anything piped through the process.
// level: "debug", "info", "warn", "error" (default "info").
// format: "text" or "json" (default "text").
func New(level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(h)
}
