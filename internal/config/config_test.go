package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("BackendURL = %q, want default", cfg.BackendURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.DefaultTipPercent != 18 {
		t.Errorf("DefaultTipPercent = %v, want 18", cfg.DefaultTipPercent)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TABSPLIT_BACKEND_URL", "http://bills.internal:9000")
	t.Setenv("TABSPLIT_TIMEOUT", "5s")
	t.Setenv("TABSPLIT_DEFAULT_TIP", "20")
	t.Setenv("TABSPLIT_LOG_FILE", "/tmp/tabsplit.log")

	cfg := Load()
	if cfg.BackendURL != "http://bills.internal:9000" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.DefaultTipPercent != 20 {
		t.Errorf("DefaultTipPercent = %v, want 20", cfg.DefaultTipPercent)
	}
	if cfg.LogFile != "/tmp/tabsplit.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TABSPLIT_TIMEOUT", "soon")
	t.Setenv("TABSPLIT_DEFAULT_TIP", "-5")

	cfg := Load()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("bad timeout accepted: %v", cfg.Timeout)
	}
	if cfg.DefaultTipPercent != 18 {
		t.Errorf("negative tip accepted: %v", cfg.DefaultTipPercent)
	}
}
