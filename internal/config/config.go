// Package config loads scrawl configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	TUI   TUIConfig   `mapstructure:"tui"`
	Board BoardConfig `mapstructure:"board"`
	Log   LogConfig   `mapstructure:"log"`
}

// TUIConfig configures the terminal UI.
type TUIConfig struct {
	// Theme names the chrome palette ("default" or "high-contrast").
	Theme string `mapstructure:"theme"`
}

// BoardConfig configures the startup selections. Both groups must name
// exactly one valid default entry; the store rejects anything else at
// startup.
type BoardConfig struct {
	DefaultTool  string `mapstructure:"default_tool"`
	DefaultColor string `mapstructure:"default_color"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from ~/.config/scrawl/config.yaml (when
// present) and SCRAWL_* environment variables, with defaults applied.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("SCRAWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tui.theme", "default")
	v.SetDefault("board.default_tool", "pen")
	v.SetDefault("board.default_color", "black")
	v.SetDefault("log.level", "info")
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "scrawl"), nil
}
