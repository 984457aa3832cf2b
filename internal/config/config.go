// Package config handles configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Wayland WaylandConfig `mapstructure:"wayland"`
	Apply   ApplyConfig   `mapstructure:"apply"`
	Prompt  PromptConfig  `mapstructure:"prompt"`
	List    ListConfig    `mapstructure:"list"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

// WaylandConfig selects the compositor socket
type WaylandConfig struct {
	Display string `mapstructure:"display"` // Socket name or path, empty means $WAYLAND_DISPLAY
}

// ApplyConfig tunes configuration transactions
type ApplyConfig struct {
	Renormalize bool `mapstructure:"renormalize"` // Move the layout back to the origin after a change
}

// PromptConfig controls interactive confirmations
type PromptConfig struct {
	AssumeYes bool `mapstructure:"assume_yes"`
}

// ListConfig holds defaults of the list command
type ListConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

const (
	configName = "wlout"
	envPrefix  = "WLOUT"
)

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
		Wayland: WaylandConfig{
			Display: "",
		},
		Apply: ApplyConfig{
			Renormalize: true,
		},
		Prompt: PromptConfig{
			AssumeYes: false,
		},
		List: ListConfig{
			Verbose: false,
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")

	// If a specific path is set, use only that
	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		for _, dir := range searchPaths() {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)
	viper.SetDefault("wayland.display", DefaultConfig.Wayland.Display)
	viper.SetDefault("apply.renormalize", DefaultConfig.Apply.Renormalize)
	viper.SetDefault("prompt.assume_yes", DefaultConfig.Prompt.AssumeYes)
	viper.SetDefault("list.verbose", DefaultConfig.List.Verbose)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	// Unmarshal config
	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	cfg = c

	return nil
}

// searchPaths lists config directories from highest to lowest priority.
func searchPaths() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, configName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", configName))
	}
	return append(dirs, ".")
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		d := DefaultConfig
		return &d
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Reset forgets the loaded configuration and path override (for testing)
func Reset() {
	viper.Reset()
	cfg = nil
	configPathOverride = ""
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	c := Get()
	viper.Set("logging.log_level", c.Logging.LogLevel)
	viper.Set("wayland.display", c.Wayland.Display)
	viper.Set("apply.renormalize", c.Apply.Renormalize)
	viper.Set("prompt.assume_yes", c.Prompt.AssumeYes)
	viper.Set("list.verbose", c.List.Verbose)

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	// If override is set, use that
	if configPathOverride != "" {
		return configPathOverride
	}

	// Check if config file is already loaded
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	return filepath.Join(searchPaths()[0], configName+".toml")
}
