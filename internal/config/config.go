// Package config manages application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const appName = "clang-tidy-hook"

// Config represents the application configuration.
type Config struct {
	Tidy TidyConfig `mapstructure:"tidy"`
	Log  LogConfig  `mapstructure:"log"`
}

// TidyConfig represents how clang-tidy is located and run.
type TidyConfig struct {
	Command        string `mapstructure:"command"`
	CacheProxy     string `mapstructure:"cache_proxy"`
	DisableCache   bool   `mapstructure:"disable_cache"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	FailFast       bool   `mapstructure:"fail_fast"`
}

// Timeout returns the per-file timeout, zero when unlimited.
func (t TidyConfig) Timeout() time.Duration {
	if t.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// LogConfig represents logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from files and environment variables.
// It searches for config files in the following order:
// 1. /etc/clang-tidy-hook/config.{toml,yaml,yml}
// 2. $XDG_CONFIG_HOME/clang-tidy-hook/config.{toml,yaml,yml} (or ~/.config/clang-tidy-hook/)
// 3. ./config.{toml,yaml,yml}
//
// Environment variables override file settings using the prefix CLANG_TIDY_HOOK_
// For example: CLANG_TIDY_HOOK_TIDY_COMMAND
func Load() (*Config, error) {
	v := New()

	v.SetConfigName("config")
	v.AddConfigPath("/etc/" + appName + "/")
	v.AddConfigPath(getXDGConfigPath())
	v.AddConfigPath(".")

	// Config file not found is OK, we'll use defaults and env vars
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return LoadWithViper(v)
}

// New returns a Viper instance with defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("tidy.command", "clang-tidy")
	v.SetDefault("tidy.cache_proxy", "")
	v.SetDefault("tidy.disable_cache", false)
	v.SetDefault("tidy.timeout_seconds", 0)
	v.SetDefault("tidy.fail_fast", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("CLANG_TIDY_HOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadWithViper loads configuration using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Legacy switch, kept working for existing hook setups
	if os.Getenv("CLANG_TIDY_HOOK_DEBUG") == "1" {
		cfg.Log.Level = "debug"
	}

	return &cfg, nil
}

// getXDGConfigPath returns the XDG config directory for clang-tidy-hook.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home
		return "."
	}

	return filepath.Join(homeDir, ".config", appName)
}
