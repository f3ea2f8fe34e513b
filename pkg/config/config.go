// Package config loads aquarelle's TOML configuration.
//
// Every value has a sensible default, so the file is optional; flags
// override whatever the file sets. Example:
//
//	seed = 42
//	size-multiplier = 2.0
//	line-thickness = 8.0
//
//	[serve]
//	addr = ":8080"
//	cache-dir = "~/.cache/aquarelle"
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the file-backed configuration.
type Config struct {
	// Seed is the default random seed, 0-999999.
	Seed int64 `toml:"seed"`
	// SizeMultiplier scales the base 1200x600 canvas, 0.5-10.
	SizeMultiplier float64 `toml:"size-multiplier"`
	// LineThickness is the base grid stroke width, 1-50.
	LineThickness float64 `toml:"line-thickness"`

	Serve ServeConfig `toml:"serve"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr     string `toml:"addr"`
	CacheDir string `toml:"cache-dir"`
}

// Default returns the configuration used when no file is given, matching
// the original plugin's dialog defaults.
func Default() Config {
	return Config{
		Seed:           42,
		SizeMultiplier: 2.0,
		LineThickness:  8.0,
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path
// returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the parameter ranges the original plugin enforced in
// its dialog.
func (c Config) Validate() error {
	if c.Seed < 0 || c.Seed > 999999 {
		return fmt.Errorf("seed %d outside [0, 999999]", c.Seed)
	}
	if c.SizeMultiplier < 0.5 || c.SizeMultiplier > 10 {
		return fmt.Errorf("size-multiplier %v outside [0.5, 10]", c.SizeMultiplier)
	}
	if c.LineThickness < 1 || c.LineThickness > 50 {
		return fmt.Errorf("line-thickness %v outside [1, 50]", c.LineThickness)
	}
	return nil
}

// CanvasSize returns the pixel dimensions for the configured multiplier:
// always 2:1, base 1200x600.
func (c Config) CanvasSize() (width, height int) {
	return int(1200 * c.SizeMultiplier), int(600 * c.SizeMultiplier)
}
