package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Threshold != 500 {
		t.Errorf("expected threshold 500, got %d", cfg.Threshold)
	}
	if cfg.View != FullView {
		t.Errorf("expected full view, got %+v", cfg.View)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandelterm.yaml")
	data := []byte("threshold: 120\ncache:\n  kind: lru\n  size: 4096\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Threshold != 120 {
		t.Errorf("threshold = %d, want 120", cfg.Threshold)
	}
	if cfg.Cache.Kind != "lru" || cfg.Cache.Size != 4096 {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Keys.FastPan != DefaultFastPan {
		t.Errorf("unset key multiplier lost its default: %d", cfg.Keys.FastPan)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Workers = 3
	if err := cfg.ApplyPreset("seahorse"); err != nil {
		t.Fatal(err)
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip: got %+v, want %+v", got, cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative threshold", "threshold: -1\n"},
		{"empty view", "view: {x_min: 1, x_max: 1, y_min: 0, y_max: 1}\n"},
		{"zero multiplier", "keys: {fast_pan: 0}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestApplyPreset_NotFound(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyPreset("nonexistent")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if cfg.View != FullView {
		t.Error("failed preset should leave the view untouched")
	}
}

func TestPresetsAreValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("ListPresets returned %d names, want %d", len(names), len(Presets))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		cfg := DefaultConfig()
		if err := cfg.ApplyPreset(name); err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
