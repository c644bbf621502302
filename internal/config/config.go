// Package config reads and writes the roical configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"roical/internal/model"
)

// Config holds all roical configuration.
type Config struct {
	Scenario   model.Scenario   `toml:"scenario"`
	Appearance AppearanceConfig `toml:"appearance"`
	Export     ExportConfig     `toml:"export"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ExportConfig holds export output settings.
type ExportConfig struct {
	Directory string `toml:"directory,omitempty"`
}

// Default returns the default configuration. The scenario section seeds
// the session inputs; the live values are never written back unless the
// user explicitly saves them as new defaults.
func Default() Config {
	return Config{
		Scenario: model.DefaultScenario(),
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "roical")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "roical")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if !cfg.Scenario.PricingModel.Valid() {
		cfg.Scenario.PricingModel = model.PricingMonthly
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// ExportDir returns the directory export files are written to,
// defaulting to the current working directory.
func ExportDir(cfg Config) string {
	if cfg.Export.Directory != "" {
		return cfg.Export.Directory
	}
	return "."
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
