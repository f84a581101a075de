package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates the process logger. Development gets a human-readable text
// handler at debug level; any other environment gets JSON at info level.
func New(environment string) *slog.Logger {
	return NewWithOutput(environment, os.Stdout)
}

// NewWithOutput is New writing to the given destination.
func NewWithOutput(environment string, w io.Writer) *slog.Logger {
	if environment == "development" {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Discard returns a logger that drops everything. Useful as an option
// default.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
