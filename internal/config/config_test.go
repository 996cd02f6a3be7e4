package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moodboard.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
title: Board
theme: light
seed_swatches: false
camera:
  max_zoom: 4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Board" || cfg.Theme != "light" || cfg.SeedSwatches {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Camera.MaxZoom != 4 || cfg.Camera.MinZoom != 0.5 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Width != 1280 {
		t.Errorf("unset fields should keep defaults, width=%d", cfg.Width)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"malformed", "title: [unclosed", "load config"},
		{"bad theme", "theme: sepia", "theme"},
		{"bad zoom", "camera:\n  min_zoom: 5\n  max_zoom: 1", "zoom range"},
		{"bad size", "width: -1", "window size"},
		{"bad pan button", "camera:\n  pan_button: left", "pan button"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Load error = %v, want mention of %q", err, tt.errPart)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Title = "Saved"
	cfg.Camera.ZoomStep = 0.25
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestApplyFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-debug", "-theme", "light", "-width", "800", "-script", "run.json"}); err != nil {
		t.Fatal(err)
	}
	if f.Path != DefaultPath {
		t.Errorf("Path = %q", f.Path)
	}

	cfg, err := ApplyFlags(Default(), f)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug || !cfg.ShowFPS || cfg.LogLevel != "debug" {
		t.Errorf("-debug not applied: %+v", cfg)
	}
	if cfg.Theme != "light" || cfg.Width != 800 || cfg.Height != 720 || cfg.Script != "run.json" {
		t.Errorf("overrides = %+v", cfg)
	}

	if _, err := ApplyFlags(Default(), &Flags{Theme: "sepia"}); err == nil {
		t.Error("invalid theme flag should fail")
	}
}
