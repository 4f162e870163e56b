package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDirName  = "iroai"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "IROAI"
)

var (
	configDir  string
	configPath string
)

func init() {
	// Get user config directory
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		homeDir, _ := os.UserHomeDir()
		userConfigDir = filepath.Join(homeDir, ".config")
	}

	configDir = filepath.Join(userConfigDir, configDirName)
	configPath = filepath.Join(configDir, configFileName+"."+configFileType)
}

// Load loads the configuration from the user config directory
func Load() (*Config, error) {
	return LoadFrom(configDir)
}

// LoadFrom loads the configuration from dir, writing a default config file
// there when none exists. IROAI_* environment variables override file values
// (e.g. IROAI_GENERATOR_COUNT=7).
func LoadFrom(dir string) (*Config, error) {
	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(dir)

	// Try to read the config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, write one and fall through to defaults
		if err := createDefaultConfig(dir); err != nil {
			return nil, err
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaultPaths(config)

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the user config directory
func Save(config *Config) error {
	return SaveTo(configDir, config)
}

// SaveTo saves the configuration as dir/config.yaml
func SaveTo(dir string, config *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Validate before saving
	if err := Validate(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configFileType)
	v.Set("generator", config.Generator)
	v.Set("preferences", config.Preferences)
	v.Set("paths", config.Paths)

	path := filepath.Join(dir, configFileName+"."+configFileType)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// newViper builds a viper instance seeded with defaults so that partial
// config files and env overrides resolve every key
func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("generator.count", def.Generator.Count)
	v.SetDefault("generator.brightness", def.Generator.Brightness)
	v.SetDefault("generator.hue_min", def.Generator.HueMin)
	v.SetDefault("generator.hue_max", def.Generator.HueMax)
	v.SetDefault("generator.harmony", def.Generator.Harmony)
	v.SetDefault("preferences.cvd_preview", def.Preferences.CVDPreview)
	v.SetDefault("preferences.show_names", def.Preferences.ShowNames)
	v.SetDefault("preferences.share_base_url", def.Preferences.ShareBaseURL)
	v.SetDefault("paths.export_dir", def.Paths.ExportDir)
	v.SetDefault("paths.debug_log", def.Paths.DebugLog)

	return v
}

// createDefaultConfig saves a default configuration into dir. Paths stay
// empty in the file so it remains portable.
func createDefaultConfig(dir string) error {
	if err := SaveTo(dir, DefaultConfig()); err != nil {
		return fmt.Errorf("failed to save default config: %w", err)
	}
	return nil
}

// setDefaultPaths sets default paths if not already set
func setDefaultPaths(config *Config) {
	if config.Paths.ExportDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			config.Paths.ExportDir = filepath.Join(os.TempDir(), "iroai")
		} else {
			config.Paths.ExportDir = filepath.Join(homeDir, "Downloads", "Iroai")
		}
	}

	if config.Paths.DebugLog == "" {
		config.Paths.DebugLog = os.Getenv("IROAI_DEBUG_LOG")
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	return configPath
}

// Exists checks if the config file exists
func Exists() bool {
	return ExistsIn(configDir)
}

// ExistsIn checks for a config file in dir
func ExistsIn(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, configFileName+"."+configFileType))
	return err == nil
}
