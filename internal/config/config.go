// Package config loads tabsplit settings from the environment.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tabsplit/tabsplit/internal/numeric"
)

const (
	defaultBackendURL = "http://localhost:8000"
	defaultTimeout    = 30 * time.Second
	defaultTipPercent = 18.0
)

// Config holds application configuration sourced from environment
// variables.
type Config struct {
	// BackendURL is the origin of the bill-splitting backend.
	BackendURL string

	// Timeout bounds each backend call.
	Timeout time.Duration

	// DefaultTipPercent preloads the tip field on both strategy screens.
	DefaultTipPercent float64

	// LogFile receives structured logs while the TUI owns the terminal.
	// Empty means logging stays on stderr.
	LogFile string
}

// Load reads environment variables and returns a populated Config.
// A local .env file is applied first, best-effort; production setups
// should use real env injection.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BackendURL:        getEnv("TABSPLIT_BACKEND_URL", defaultBackendURL),
		Timeout:           defaultTimeout,
		DefaultTipPercent: defaultTipPercent,
		LogFile:           os.Getenv("TABSPLIT_LOG_FILE"),
	}

	if raw := os.Getenv("TABSPLIT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			slog.Warn("Ignoring invalid TABSPLIT_TIMEOUT", "value", raw)
		} else {
			cfg.Timeout = d
		}
	}

	if raw := os.Getenv("TABSPLIT_DEFAULT_TIP"); raw != "" {
		tip := numeric.ParseAmount(raw)
		if !tip.OK || tip.Value < 0 {
			slog.Warn("Ignoring invalid TABSPLIT_DEFAULT_TIP", "value", raw)
		} else {
			cfg.DefaultTipPercent = tip.Value
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
