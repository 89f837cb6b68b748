// Package config provides configuration loading for the host front-ends.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all host configuration parameters.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Display  DisplayConfig  `yaml:"display"`
	Terminal TerminalConfig `yaml:"terminal"`
	Seed     int64          `yaml:"seed"` // 0 = seed from the wall clock
}

// GridConfig holds universe dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DisplayConfig holds graphical viewer settings.
type DisplayConfig struct {
	Scale int `yaml:"scale"` // pixel scale multiplier
	TPS   int `yaml:"tps"`   // generations per second while running
}

// TerminalConfig holds terminal viewer settings.
type TerminalConfig struct {
	TPS        int    `yaml:"tps"`
	AliveGlyph string `yaml:"alive_glyph"`
	DeadGlyph  string `yaml:"dead_glyph"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return &cfg, nil
}

// Load returns the defaults overlaid with the yaml file at path. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine treats as programmer error,
// so the hosts fail before constructing a degenerate universe.
func (c *Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("grid dimensions must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Display.Scale < 1 {
		return fmt.Errorf("display scale must be at least 1, got %d", c.Display.Scale)
	}
	if c.Display.TPS < 1 || c.Terminal.TPS < 1 {
		return fmt.Errorf("tick rates must be at least 1")
	}
	return nil
}
