// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid reports a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the complete CLI configuration.
type Config struct {
	Map MapConfig `toml:"map"`
	Log LogConfig `toml:"log"`
}

// MapConfig selects the map to load.
type MapConfig struct {
	File          string `toml:"file"`
	ParallelRoads bool   `toml:"parallel_roads"`
}

// LogConfig configures structured logging and optional file rotation.
type LogConfig struct {
	Level   string `toml:"level"`
	Format  string `toml:"format"`
	File    string `toml:"file"`
	MaxSize int    `toml:"max_size"` // megabytes
	MaxAge  int    `toml:"max_age"`  // days
}

// Default returns the built-in settings: Bay Area map, info-level text logs
// on stderr.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:   "info",
			Format:  "text",
			MaxSize: 10,
			MaxAge:  7,
		},
	}
}

// Load decodes the TOML file at path on top of Default and validates the
// result. Keys the file does not set keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate normalizes Level and Format to lower case and checks every field.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q: must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q: must be 'text' or 'json'", ErrInvalid, c.Log.Format)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("%w: log rotation limits must not be negative", ErrInvalid)
	}

	return nil
}
