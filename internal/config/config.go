package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// CatalogConfig holds the sqlite catalog location.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Lang       string `mapstructure:"lang"`
	DateFormat string `mapstructure:"date_format"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Path returns the config file location: $OMPPUI_CONFIG or ~/.config/omppui/config.toml.
func Path() string {
	if p := os.Getenv("OMPPUI_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "omppui", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix OMPPUI_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("catalog.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "omppui", "catalog.db"))
	v.SetDefault("ui.lang", "")
	v.SetDefault("ui.date_format", "2006-01-02 15:04:05")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("OMPPUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Lang = strings.TrimSpace(c.UI.Lang)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return c, nil
}

// Save writes cfg to the config file, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("ui.lang", cfg.UI.Lang)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
