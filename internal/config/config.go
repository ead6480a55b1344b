// Package config loads and saves the tally configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/tally/internal/model"

	"github.com/BurntSushi/toml"
)

const appName = "tally"

// Environment variables that override the file.
const (
	EnvDataDir  = "TALLY_DATA_DIR"
	EnvLogLevel = "TALLY_LOG_LEVEL"
)

// Config holds all tally configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
	Categories []model.Category `toml:"categories,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir      string `toml:"data_dir,omitempty"`
	Locale       string `toml:"locale"`
	DefaultSort  string `toml:"default_sort"`
	DefaultOrder string `toml:"default_order"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Locale:       "en-US",
			DefaultSort:  string(model.DefaultSort.Field),
			DefaultOrder: string(model.DefaultSort.Order),
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied last.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads the config file without environment overrides. It is what
// gets edited and saved back, so env values never leak into the file.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.General.DataDir = dir
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
}

// Validate checks enumerated settings and category names.
func (c Config) Validate() error {
	if c.General.DefaultSort != "" {
		if _, ok := model.ParseSortField(c.General.DefaultSort); !ok {
			return fmt.Errorf("invalid default_sort %q", c.General.DefaultSort)
		}
	}
	if c.General.DefaultOrder != "" {
		if _, ok := model.ParseSortOrder(c.General.DefaultOrder); !ok {
			return fmt.Errorf("invalid default_order %q", c.General.DefaultOrder)
		}
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if seen[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// DataDir returns the configured data directory, or the XDG default.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	return DefaultDataDir()
}

// CategoryList returns the configured categories, or the built-in list.
func (c Config) CategoryList() []model.Category {
	if len(c.Categories) == 0 {
		return model.DefaultCategories()
	}
	return c.Categories
}

// Sort returns the configured initial sort, falling back to date/desc.
func (c Config) Sort() model.SortConfig {
	cfg := model.DefaultSort
	if f, ok := model.ParseSortField(c.General.DefaultSort); ok {
		cfg.Field = f
	}
	if o, ok := model.ParseSortOrder(c.General.DefaultOrder); ok {
		cfg.Order = o
	}
	return cfg
}
