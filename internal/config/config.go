// Package config loads canvas settings from a YAML file. Command-line
// flags are applied on top with ApplyFlags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the canvas looks for its config when -config is not
// given, relative to the working directory.
const DefaultPath = "moodboard.yaml"

// Camera holds viewport navigation settings.
type Camera struct {
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
	// PanButton is "middle" or "right".
	PanButton string `yaml:"pan_button"`
}

// Config is the full set of canvas settings.
type Config struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Theme         string `yaml:"theme"`
	TPS           int    `yaml:"tps"`
	Debug         bool   `yaml:"debug"`
	ShowFPS       bool   `yaml:"show_fps"`
	LogLevel      string `yaml:"log_level"`
	SeedSwatches  bool   `yaml:"seed_swatches"`
	Camera        Camera `yaml:"camera"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	// Script is an optional path to a JSON input script run on startup.
	Script string `yaml:"script,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Title:        "Moodboard",
		Width:        1280,
		Height:       720,
		Theme:        "dark",
		TPS:          60,
		LogLevel:     "info",
		SeedSwatches: true,
		Camera: Camera{
			MinZoom:   0.5,
			MaxZoom:   10,
			ZoomStep:  0.1,
			PanButton: "middle",
		},
		ScreenshotDir: "screenshots",
	}
}

// Load reads path over the defaults. A missing file is not an error; a file
// that cannot be parsed or holds invalid values is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values the canvas cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.TPS)
	case c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom:
		return fmt.Errorf("zoom range [%v, %v] is invalid", c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.ZoomStep <= 0:
		return fmt.Errorf("zoom step %v must be positive", c.Camera.ZoomStep)
	}
	switch c.Camera.PanButton {
	case "middle", "right":
	default:
		return fmt.Errorf("pan button %q must be middle or right", c.Camera.PanButton)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("theme %q must be dark or light", c.Theme)
	}
	return nil
}

// Flags holds the command-line overrides. Zero values leave the file
// setting alone.
type Flags struct {
	Path   string
	Debug  bool
	Theme  string
	Script string
	Width  int
	Height int
}

// RegisterFlags binds the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", DefaultPath, "path to YAML config")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging and overlay")
	fs.StringVar(&f.Theme, "theme", "", "color theme: dark or light")
	fs.StringVar(&f.Script, "script", "", "JSON input script to run")
	fs.IntVar(&f.Width, "width", 0, "window width")
	fs.IntVar(&f.Height, "height", 0, "window height")
	return f
}

// ApplyFlags copies every set override onto cfg and revalidates.
func ApplyFlags(cfg Config, f *Flags) (Config, error) {
	if f.Debug {
		cfg.Debug = true
		cfg.ShowFPS = true
		cfg.LogLevel = "debug"
	}
	if f.Theme != "" {
		cfg.Theme = f.Theme
	}
	if f.Script != "" {
		cfg.Script = f.Script
	}
	if f.Width > 0 {
		cfg.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Height = f.Height
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
