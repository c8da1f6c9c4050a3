package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != defaultAPIBind {
		t.Fatalf("APIBind = %q, want %q", cfg.APIBind, defaultAPIBind)
	}
	if cfg.DebounceMS != defaultDebounceMS {
		t.Fatalf("DebounceMS = %d, want %d", cfg.DebounceMS, defaultDebounceMS)
	}
	if cfg.Offline {
		t.Fatalf("Offline = true, want false by default")
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_bind = "10.0.0.4:9001"
debounce_ms = 250
offline = true
log_level = "debug"
log_file = "/tmp/garagem-test.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != "10.0.0.4:9001" {
		t.Fatalf("APIBind = %q", cfg.APIBind)
	}
	if cfg.DebounceWindow() != 250*time.Millisecond {
		t.Fatalf("DebounceWindow = %v, want 250ms", cfg.DebounceWindow())
	}
	if !cfg.Offline {
		t.Fatalf("Offline = false, want true")
	}
	if cfg.LogLevel != "debug" || cfg.LogFile != "/tmp/garagem-test.log" {
		t.Fatalf("logging fields = %q %q", cfg.LogLevel, cfg.LogFile)
	}
}

func TestLoad_BadTomlFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("api_bind = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted invalid toml")
	}
}

func TestLoad_IgnoresNonPositiveDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("debounce_ms = -5"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DebounceMS != defaultDebounceMS {
		t.Fatalf("DebounceMS = %d, want default %d", cfg.DebounceMS, defaultDebounceMS)
	}
}
