package config

import (
	"github.com/Justice-Caban/Iroai/internal/cvd"
	"github.com/Justice-Caban/Iroai/internal/harmony"
	"github.com/Justice-Caban/Iroai/internal/palette"
)

// Config represents the application configuration
type Config struct {
	Generator   GeneratorConfig   `mapstructure:"generator" yaml:"generator"`
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences"`
	Paths       PathsConfig       `mapstructure:"paths" yaml:"paths"`
}

// GeneratorConfig holds the controls a fresh session starts with
type GeneratorConfig struct {
	Count      int     `mapstructure:"count" yaml:"count"`           // 1-10 colors
	Brightness int     `mapstructure:"brightness" yaml:"brightness"` // 0-100
	HueMin     float64 `mapstructure:"hue_min" yaml:"hue_min"`
	HueMax     float64 `mapstructure:"hue_max" yaml:"hue_max"`
	Harmony    string  `mapstructure:"harmony" yaml:"harmony"` // see harmony.Styles
}

// PreferencesConfig represents user preferences
type PreferencesConfig struct {
	CVDPreview   string `mapstructure:"cvd_preview" yaml:"cvd_preview"` // "none" or a cvd.Type
	ShowNames    bool   `mapstructure:"show_names" yaml:"show_names"`
	ShareBaseURL string `mapstructure:"share_base_url" yaml:"share_base_url"`
}

// PathsConfig represents path configurations
type PathsConfig struct {
	ExportDir string `mapstructure:"export_dir" yaml:"export_dir"`
	DebugLog  string `mapstructure:"debug_log" yaml:"debug_log"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Count:      5,
			Brightness: 50,
			HueMin:     0,
			HueMax:     360,
			Harmony:    string(harmony.StyleRandom),
		},
		Preferences: PreferencesConfig{
			CVDPreview:   string(cvd.None),
			ShowNames:    true,
			ShareBaseURL: "https://iroai.app/",
		},
		Paths: PathsConfig{
			ExportDir: "", // Will be set to default location
			DebugLog:  "",
		},
	}
}

// HueRange returns the configured hue range
func (g GeneratorConfig) HueRange() palette.HueRange {
	return palette.HueRange{Min: g.HueMin, Max: g.HueMax}
}

// HarmonyStyle returns the configured style, falling back to random
func (g GeneratorConfig) HarmonyStyle() harmony.Style {
	s, err := harmony.Parse(g.Harmony)
	if err != nil {
		return harmony.StyleRandom
	}
	return s
}

// CVDType returns the configured preview deficiency, falling back to none
func (p PreferencesConfig) CVDType() cvd.Type {
	t, err := cvd.Parse(p.CVDPreview)
	if err != nil {
		return cvd.None
	}
	return t
}
