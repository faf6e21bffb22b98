// Package logger exposes a process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the shared slog logger used across all packages.
var Log *slog.Logger

func init() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	Log = slog.New(handler)
}
