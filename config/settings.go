// Package config provides settings persistence for RGB Manager.
// It handles loading and saving the session aggregate: the profile
// list, the last-active profile, and update-check metadata.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yllada/rgb-manager/common"
	"github.com/yllada/rgb-manager/effect"
)

// Updates tracks software update state across sessions.
type Updates struct {
	// VersionName is the most recent release seen by the update check,
	// empty when no newer release is known.
	VersionName string `yaml:"version_name,omitempty"`
	// SkipVersion suppresses the update notice for VersionName.
	SkipVersion bool `yaml:"skip_version"`
}

// Settings is the persisted session aggregate. It is loaded once at
// startup, mutated in memory for the whole session, and written back
// exactly once at orderly shutdown.
type Settings struct {
	// Profiles is the user's profile list; order defines cycle order.
	Profiles []effect.Profile `yaml:"profiles"`
	// UIState is the profile that was active when the session ended.
	UIState effect.Profile `yaml:"ui_state"`
	// Updates is the update-check metadata.
	Updates Updates `yaml:"updates"`
}

// DefaultSettings returns the settings used when no saved state exists.
func DefaultSettings() Settings {
	return Settings{
		UIState: effect.DefaultProfile(),
	}
}

// LoadWithRecovery loads settings from path, falling back to defaults
// on any read or parse failure. Used at startup: a missing or corrupt
// file must never block the application.
func LoadWithRecovery(path string) Settings {
	settings, err := load(path)
	if err != nil {
		common.LogWarn("Settings not loaded (%v), using defaults", err)
		return DefaultSettings()
	}
	return settings
}

// LoadOrDefault loads settings from path, returning defaults when the
// file cannot be read. Used at shutdown so the final save starts from
// whatever is on disk and only overwrites the fields this session owns.
func LoadOrDefault(path string) Settings {
	settings, err := load(path)
	if err != nil {
		return DefaultSettings()
	}
	return settings
}

// load reads and sanitizes the settings file.
func load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}

	// An externally edited file must not leak invalid values into the
	// hardware layer.
	settings.UIState.Sanitize()
	for i := range settings.Profiles {
		settings.Profiles[i].Sanitize()
	}

	return settings, nil
}

// Save writes the settings to path as an all-or-nothing operation.
// A failure here at shutdown is fatal for the caller: the session's
// edits have no later opportunity to be persisted.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: %v", common.ErrSettingsSave, err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrSettingsSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrSettingsSave, err)
	}

	return nil
}
