// Package settings provides dashboard user preferences persistence.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
)

// Theme constants.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings holds dashboard user preferences persisted to disk.
//
// Settings are stored at ~/.config/aidash/settings.json
type Settings struct {
	// Theme selects the color palette: "dark" or "light".
	// Empty string means use the default theme (dark).
	Theme string `json:"theme"`

	// ActiveTab is the tab restored on the next launch.
	ActiveTab Tab `json:"activeTab"`

	// DefaultCollection is the preselected document collection.
	// Empty string means use the configured default.
	DefaultCollection string `json:"defaultCollection"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:             config.Get("theme", ThemeDark),
		ActiveTab:         TabSummarize,
		DefaultCollection: config.Get("default_collection", "default"),
	}
}

// Load reads settings from the config directory.
// If the settings file does not exist, returns default settings.
func Load() (*Settings, error) {
	config.Load()
	settingsPath := getSettingsPath()

	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	// An unknown tab falls back to the first one instead of failing the load.
	settings.ActiveTab = NormalizeTab(string(settings.ActiveTab))

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to the config directory.
// Creates the config directory if it doesn't exist.
func Save(settings *Settings) error {
	config.Load()

	if err := validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	configDir := config.Get("config_dir", "")
	if configDir == "" {
		return fmt.Errorf("config_dir not configured")
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	settingsPath := getSettingsPath()
	if err := os.WriteFile(settingsPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// validate checks that settings values are valid.
func validate(settings *Settings) error {
	if settings.Theme != "" && settings.Theme != ThemeDark && settings.Theme != ThemeLight {
		return fmt.Errorf("invalid theme value: %s", settings.Theme)
	}
	if settings.ActiveTab != "" && !IsValidTab(string(settings.ActiveTab)) {
		return fmt.Errorf("invalid activeTab value: %s", settings.ActiveTab)
	}
	return nil
}

// getSettingsPath returns the path to the settings.json file.
func getSettingsPath() string {
	configDir := config.Get("config_dir", "")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, "aidash")
	}
	return filepath.Join(configDir, "settings.json")
}
