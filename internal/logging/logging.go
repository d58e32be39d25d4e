package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds the application logger writing text records to stderr, sets
// it as the slog default, and returns it. Unrecognized levels mean info.
func Setup(level string) *slog.Logger {
	return SetupWriter(level, os.Stderr)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(level string, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
