package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	input := `
multibyte = false
gap_size = 512
log_level = "debug"
`
	cfg, err := LoadFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Multibyte {
		t.Error("expected multibyte disabled")
	}
	if cfg.GapSize != 512 {
		t.Errorf("gap_size = %d, want 512", cfg.GapSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadFromPartial(t *testing.T) {
	cfg, err := LoadFrom(strings.NewReader(`gap_size = 64`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	// Unset keys keep their defaults.
	if !cfg.Multibyte {
		t.Error("multibyte should default to true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want info", cfg.LogLevel)
	}
	if cfg.GapSize != 64 {
		t.Errorf("gap_size = %d, want 64", cfg.GapSize)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	if _, err := LoadFrom(strings.NewReader(`gap_size = [`)); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
