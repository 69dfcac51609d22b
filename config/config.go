// Package config loads the editor's TOML configuration file. A missing
// file yields the defaults; a malformed one is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/gridmire/gridmire/content"
	"github.com/gridmire/gridmire/input"
)

// Config is the full editor configuration
type Config struct {
	Title string      `toml:"title"`
	Audio AudioConfig `toml:"audio"`
	Mobs  MobConfig   `toml:"mobs"`

	// Keys maps action names (see input.ParseAction) to single-rune
	// bindings, overriding the defaults
	Keys map[string]string `toml:"keys"`
}

// AudioConfig controls feedback tones
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// MobConfig tunes random encounter generation
type MobConfig struct {
	IntervalSize int     `toml:"interval_size"`
	LevelFactor  float64 `toml:"level_factor"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Title: "gridmire",
		Audio: AudioConfig{Enabled: true},
		Mobs: MobConfig{
			IntervalSize: content.DefaultIntervalSize,
			LevelFactor:  content.DefaultLevelFactor,
		},
	}
}

// DefaultPath returns the per-user config location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gridmire", "config.toml")
}

// Load reads the config at path, layered over the defaults. A missing or
// empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Mobs.IntervalSize < 1 {
		return fmt.Errorf("config: mobs.interval_size must be positive, got %d", c.Mobs.IntervalSize)
	}
	if c.Mobs.LevelFactor <= 0 || c.Mobs.LevelFactor > 1 {
		return fmt.Errorf("config: mobs.level_factor must be in (0, 1], got %v", c.Mobs.LevelFactor)
	}
	for name, key := range c.Keys {
		if _, ok := input.ParseAction(name); !ok {
			return fmt.Errorf("config: unknown action %q in [keys]", name)
		}
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("config: binding for %q must be a single character, got %q", name, key)
		}
	}
	return nil
}

// ApplyKeys overlays the configured rune bindings onto a key table
func (c Config) ApplyKeys(kt *input.KeyTable) {
	for name, key := range c.Keys {
		action, ok := input.ParseAction(name)
		if !ok {
			continue
		}
		r, _ := utf8.DecodeRuneInString(key)
		kt.Bind(r, action)
	}
}
