// SPDX-License-Identifier: MPL-2.0

// Package config loads cardbox configuration: where the flashcard data file
// lives and how the terminal UI behaves. Configuration comes from a TOML
// file in the platform config directory, overridable per key with
// CARDBOX_-prefixed environment variables and per run with CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for config and data paths.
	AppName = "cardbox"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// DataFileName is the default name of the flashcards data file.
	DataFileName = "cards.json"
)

// Config is the resolved application configuration.
type Config struct {
	// Data controls persistence.
	Data DataConfig `mapstructure:"data" toml:"data"`
	// UI controls the terminal interface.
	UI UIConfig `mapstructure:"ui" toml:"ui"`
}

// DataConfig controls where the flashcards document is stored.
type DataConfig struct {
	// File is the path of the JSON data file.
	File string `mapstructure:"file" toml:"file"`
}

// UIConfig controls the terminal interface.
type UIConfig struct {
	// Theme selects the prompt theme (default, charm, dracula, catppuccin, base16).
	Theme string `mapstructure:"theme" toml:"theme"`
	// Accessible forces screen-reader friendly prompts.
	Accessible bool `mapstructure:"accessible" toml:"accessible"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
}

// ConfigDir returns the cardbox configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DataDir returns the cardbox data directory: %LOCALAPPDATA% on Windows,
// ~/Library/Application Support on macOS, $XDG_DATA_HOME (defaulting to
// ~/.local/share) elsewhere.
func DataDir() (string, error) {
	var dataDir string

	switch runtime.GOOS {
	case "windows":
		dataDir = os.Getenv("LOCALAPPDATA")
		if dataDir == "" {
			dataDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, "Library", "Application Support")
	default:
		dataDir = os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			dataDir = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(dataDir, AppName), nil
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present. The data file path is resolved in Load so that
// DefaultConfig itself cannot fail.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{Theme: "default"},
	}
}

// Load reads configuration, applying defaults first, then the config file
// (the given path, or the default location when path is empty), then
// CARDBOX_* environment variables. A missing config file is not an error; a
// malformed one is.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("data.file", defaults.Data.File)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.accessible", defaults.UI.Accessible)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Data.File == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		cfg.Data.File = filepath.Join(dir, DataFileName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "default", "charm", "dracula", "catppuccin", "base16":
		return nil
	default:
		return fmt.Errorf("invalid ui.theme %q (valid: default, charm, dracula, catppuccin, base16)", c.UI.Theme)
	}
}
