// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New builds a logger writing to w. format is "text" or "json"; level is
// one of debug, info, warn, error.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q: must be 'text' or 'json'", format)
	}

	return slog.New(handler).With("service", "landing"), nil
}

// Init builds a logger with New and installs it as the slog default.
func Init(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := New(w, level, format)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return l, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
