// Package ui provides the graphical user interface for RGB Manager.
// This file contains the desktop notification integration.
package ui

import (
	"github.com/gen2brain/beeep"

	"github.com/yllada/rgb-manager/common"
)

// DesktopNotifier sends desktop notifications through the platform
// notification service. It implements common.Notifier.
type DesktopNotifier struct{}

// Notify sends a notification with the given title and message.
func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// notify sends a notification and logs failures instead of surfacing
// them; a missing notification daemon must never break the app.
func notify(title, message string) {
	if err := (DesktopNotifier{}).Notify(title, message); err != nil {
		common.LogDebug("Notification failed: %v", err)
	}
}

// NotifyProfileActivated announces a profile activated via the hotkey
// or tray, where no window feedback is visible.
func NotifyProfileActivated(profileName string) {
	notify(common.AppName, "Profile activated: "+profileName)
}

// NotifyDegraded announces that the app started without hardware.
func NotifyDegraded() {
	notify(common.AppName, "No supported keyboard detected; running in view-only mode")
}

// NotifyUpdateAvailable announces a newer release.
func NotifyUpdateAvailable(version string) {
	notify(common.AppName, "Version "+version+" is available")
}
