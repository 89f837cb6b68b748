package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if cfg.Grid.Width != 64 || cfg.Grid.Height != 64 {
		t.Fatalf("default grid %dx%d, expected 64x64", cfg.Grid.Width, cfg.Grid.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := "grid:\n  width: 32\nseed: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != 32 {
		t.Fatalf("width %d, expected the overlaid 32", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 64 {
		t.Fatalf("height %d, expected the default 64", cfg.Grid.Height)
	}
	if cfg.Seed != 7 {
		t.Fatalf("seed %d, expected 7", cfg.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidateRejectsDegenerateGrid(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Grid.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected zero width to be rejected")
	}
}
