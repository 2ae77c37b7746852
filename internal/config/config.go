// Package config loads compiler configuration from an optional
// vlc.toml next to the input, falling back to built-in defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// FileName is the config file searched for next to the input spec.
const FileName = "vlc.toml"

// DefaultProjectionType is assumed when neither the spec nor the
// config names a projection type.
const DefaultProjectionType = "equalEarth"

// Config carries per-family default property bags and view defaults.
type Config struct {
	Projection map[string]any `toml:"projection"`
	View       ViewConfig     `toml:"view"`
}

// ViewConfig holds default view extents, used to seed the width and
// height signals.
type ViewConfig struct {
	Width  int64 `toml:"width"`
	Height int64 `toml:"height"`
}

// Size returns the view extents narrowed to int32, substituting the
// defaults for missing or out-of-range values.
func (v ViewConfig) Size() (int32, int32) {
	w, err := safecast.Conv[int32](v.Width)
	if err != nil || w <= 0 {
		w = 200
	}
	h, err := safecast.Conv[int32](v.Height)
	if err != nil || h <= 0 {
		h = 200
	}
	return w, h
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Projection: map[string]any{},
		View:       ViewConfig{Width: 200, Height: 200},
	}
}

// Load reads dir/vlc.toml. The second result reports whether a config
// file was found; when it is false the returned config is Default().
func Load(dir string) (*Config, bool, error) {
	path := filepath.Join(dir, FileName)
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, false, nil
		}
		return cfg, false, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return cfg, true, err
	}
	if cfg.Projection == nil {
		cfg.Projection = map[string]any{}
	}
	return cfg, true, nil
}

// FamilyDefaults returns the default property bag for a property
// family. Families without configured defaults get an empty bag.
func (c *Config) FamilyDefaults(family string) map[string]any {
	switch family {
	case "projection":
		return c.Projection
	default:
		return map[string]any{}
	}
}
