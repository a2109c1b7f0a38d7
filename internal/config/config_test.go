package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "bouncing_ball" {
		t.Errorf("expected model bouncing_ball, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Model = "oscillator"
	cfg.Dt = 0.02
	cfg.Params["omega"] = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Model != "oscillator" || loaded.Dt != 0.02 {
		t.Errorf("unexpected config: %+v", loaded)
	}
	if loaded.Params["omega"] != 2.5 {
		t.Errorf("expected omega 2.5, got %f", loaded.Params["omega"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bouncing_ball", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["restitution"] != 0.9 {
		t.Errorf("expected restitution 0.9, got %f", cfg.Params["restitution"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("bouncing_ball", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "classic") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("oscillator")) == 0 {
		t.Error("expected presets for oscillator")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}
