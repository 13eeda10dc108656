// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. BENCH_LOG_LEVEL
const EnvPrefix = "BENCH"

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Environment overrides, storage.path -> BENCH_STORAGE_PATH
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// DefaultPath returns ~/.workbench/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".workbench", "config.yaml"), nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Storage defaults
	v.SetDefault("storage.type", "sqlite")
	v.SetDefault("storage.path", defaultDataPath("workbench.db"))

	// Palette defaults
	v.SetDefault("palette.base_color", "#3B82F6")
	v.SetDefault("palette.saturation", 100)
	v.SetDefault("palette.lightness", 50)
	v.SetDefault("palette.auto_save", false)
	v.SetDefault("palette.format", "scss")

	// UI defaults
	v.SetDefault("ui.message_timeout", "3s")
	v.SetDefault("ui.browser", true)

	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit", 30)
	v.SetDefault("server.rate_interval", "1m")
	v.SetDefault("server.allowed_networks", []string{"127.0.0.0/8", "::1/128"})

	// Backup defaults
	v.SetDefault("backups.path", defaultDataPath("backups"))
	v.SetDefault("backups.interval", "24h")           // Daily backups
	v.SetDefault("backups.retention", 10)             // Keep last 10 backups
	v.SetDefault("backups.enable_auto_backup", false) // server only

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".workbench", name)
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat returns a config value as float64
func GetFloat(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// GetStringSlice returns a config value as []string
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
