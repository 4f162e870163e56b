package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Justice-Caban/Iroai/internal/cvd"
	"github.com/Justice-Caban/Iroai/internal/harmony"
	"github.com/Justice-Caban/Iroai/internal/palette"
)

// Validate validates the configuration
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateGenerator(&config.Generator); err != nil {
		return fmt.Errorf("invalid generator settings: %w", err)
	}

	if err := validatePreferences(&config.Preferences); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	if err := validatePaths(&config.Paths); err != nil {
		return fmt.Errorf("invalid paths: %w", err)
	}

	return nil
}

// validateGenerator validates the generator defaults
func validateGenerator(gen *GeneratorConfig) error {
	if gen == nil {
		return fmt.Errorf("generator is nil")
	}

	if gen.Count < 1 || gen.Count > palette.MaxSlots {
		return fmt.Errorf("count must be between 1 and %d, got: %d", palette.MaxSlots, gen.Count)
	}

	if gen.Brightness < 0 || gen.Brightness > 100 {
		return fmt.Errorf("brightness must be between 0 and 100, got: %d", gen.Brightness)
	}

	// Ranges that wrap through 0 are allowed, so only the bounds are checked
	if gen.HueMin < 0 || gen.HueMin > 360 || gen.HueMax < 0 || gen.HueMax > 360 {
		return fmt.Errorf("hue range must lie within [0, 360], got: [%g, %g]", gen.HueMin, gen.HueMax)
	}

	if _, err := harmony.Parse(gen.Harmony); err != nil {
		return err
	}

	return nil
}

// validatePreferences validates preferences configuration
func validatePreferences(prefs *PreferencesConfig) error {
	if prefs == nil {
		return fmt.Errorf("preferences is nil")
	}

	if _, err := cvd.Parse(prefs.CVDPreview); err != nil {
		return err
	}

	if prefs.ShareBaseURL != "" {
		if err := ValidateShareURL(prefs.ShareBaseURL); err != nil {
			return fmt.Errorf("invalid share base URL: %w", err)
		}
	}

	return nil
}

// validatePaths validates path configuration
func validatePaths(paths *PathsConfig) error {
	if paths == nil {
		return fmt.Errorf("paths is nil")
	}

	// Paths can be empty (will be set to defaults)
	if paths.ExportDir != "" && !isValidPath(paths.ExportDir) {
		return fmt.Errorf("invalid export path: %s", paths.ExportDir)
	}

	if paths.DebugLog != "" && !isValidPath(paths.DebugLog) {
		return fmt.Errorf("invalid debug log path: %s", paths.DebugLog)
	}

	return nil
}

// isValidPath checks if a path string is valid
func isValidPath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	return true
}

// ValidateShareURL validates the base URL share links are built on
func ValidateShareURL(urlStr string) error {
	if strings.TrimSpace(urlStr) == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must use http or https scheme")
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("URL must have a host")
	}

	return nil
}
