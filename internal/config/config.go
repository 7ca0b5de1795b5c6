// Package config loads Ganitha settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the settings the game reads at startup. Every field has a
// usable default, so a missing or partial config file is fine.
type Config struct {
	Mode            string  `toml:"mode"`
	CameraID        int     `toml:"camera_id"`
	HTTPAddr        string  `toml:"http_addr"`
	StaticDir       string  `toml:"static_dir"`
	PluginDir       string  `toml:"plugin_dir"`
	DBPath          string  `toml:"db_path"`
	MotionThreshold float64 `toml:"motion_threshold"`
}

// Default returns the built-in configuration. Paths live under ~/.ganitha.
func Default() Config {
	dir := Dir()
	return Config{
		Mode:            "comparison",
		CameraID:        0,
		HTTPAddr:        ":8080",
		PluginDir:       filepath.Join(dir, "plugins"),
		DBPath:          filepath.Join(dir, "ganitha.db"),
		MotionThreshold: 1.0,
	}
}

// Dir returns the Ganitha data directory, ~/.ganitha.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".ganitha"
	}
	return filepath.Join(home, ".ganitha")
}

// DefaultPath returns the default TOML config path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads a TOML config from the given path and overlays it on the
// defaults. Missing file is not an error; keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config path is empty")
	}
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
