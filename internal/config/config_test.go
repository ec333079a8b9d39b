package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.General.DisplayName != "Daniella" {
		t.Fatalf("default display name = %q", cfg.General.DisplayName)
	}
	if cfg.General.Currency != "₦" {
		t.Fatalf("default currency = %q", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "campus-light" {
		t.Fatalf("default theme = %q", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Fatal("Exists reported a config that was never saved")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DisplayName = "Tunde"
	cfg.General.DataDir = "/tmp/planner-data"
	cfg.Appearance.Theme = "flexoki-dark"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestDataDir_OverrideWins(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/xdg-data", "campus-companion") {
		t.Fatalf("DataDir without override = %q", got)
	}

	cfg.General.DataDir = "/custom"
	if got := DataDir(cfg); got != "/custom" {
		t.Fatalf("DataDir with override = %q, want /custom", got)
	}
}
