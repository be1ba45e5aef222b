// Package common provides shared constants, types, and utilities
// used across the RGB Manager application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.rgbmanager.app"
	// AppName is the display name of the application.
	AppName = "RGB Manager"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "rgb-manager"
)

// File names used by the application.
const (
	SettingsFileName = "settings.yaml"
	LogFileName      = "rgb-manager.log"
)

// Keyboard layout.
const (
	// ZoneCount is the number of independently addressable lighting zones.
	ZoneCount = 4
)

// Timing of the runtime loops.
const (
	// TickInterval is how often the coordinator tick runs on the UI thread.
	TickInterval = 50 * time.Millisecond
	// InputPollBackoff is how long the hotkey listener sleeps when the
	// input source has no pending event.
	InputPollBackoff = 5 * time.Millisecond
	// UpdateCheckTimeout bounds the startup release check.
	UpdateCheckTimeout = 10 * time.Second
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 720
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 460
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)
