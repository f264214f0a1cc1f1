// Package logging configures structured logging with tint.
//
// tabsplit is a full-screen terminal app, so logs cannot share the
// terminal with the UI: while the wizard is running they go to a file
// (SetupFile), and the non-interactive subcommands log to stderr (Setup).
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored stderr logging at the level specified by the
// LOG_LEVEL env var (default: INFO).
func Setup() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      LevelFromEnv(),
			TimeFormat: time.Kitchen,
		}),
	))
}

// SetupFile configures logging to the named file, created or appended.
// The caller owns the returned file and should close it on exit.
func SetupFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(f, &tint.Options{
			Level:      LevelFromEnv(),
			TimeFormat: time.TimeOnly,
			NoColor:    true,
		}),
	))
	return f, nil
}

// Discard routes logging to nowhere, for interactive runs with no log
// file configured.
func Discard() {
	slog.SetDefault(slog.New(slog.DiscardHandler))
}

// LevelFromEnv maps LOG_LEVEL to a slog level, defaulting to INFO.
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
