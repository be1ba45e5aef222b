// Package ui provides the graphical user interface for RGB Manager.
// This file contains the system tray indicator functionality.
package ui

import (
	"fmt"

	"fyne.io/systray"

	"github.com/yllada/rgb-manager/common"
)

// Pre-generated icons for performance.
var (
	iconActive   = GenerateActiveIcon()
	iconDegraded = GenerateDegradedIcon()
)

// TrayIndicator manages the system tray icon and menu. It runs on its
// own goroutine and never touches GTK or the coordinator directly:
// every action is posted to the mailbox and handled by the main loop.
type TrayIndicator struct {
	app         *Application
	profileItem *systray.MenuItem

	// Snapshotted on the main thread at construction; onReady runs on
	// the tray goroutine and must not read coordinator state.
	degraded       bool
	initialProfile string
}

// NewTrayIndicator creates a new system tray indicator.
// Must be called on the main thread.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{
		app:            app,
		degraded:       app.coordinator.Degraded(),
		initialProfile: app.coordinator.ActiveProfile().Name,
	}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit stops the tray loop.
func (t *TrayIndicator) Quit() {
	systray.Quit()
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	if t.degraded {
		systray.SetIcon(iconDegraded)
		systray.SetTooltip(common.AppName + " - No keyboard detected")
	} else {
		systray.SetIcon(iconActive)
		systray.SetTooltip(common.AppName)
	}
	systray.SetTitle(common.AppName)

	// Active profile display
	t.profileItem = systray.AddMenuItem("Profile: -", "Active lighting profile")
	t.profileItem.Disable()

	systray.AddSeparator()

	// Cycle to the next profile
	cycleItem := systray.AddMenuItem("Next profile", "Activate the next lighting profile")
	go func() {
		for range cycleItem.ClickedCh {
			t.app.post(MessageCycleProfiles)
		}
	}()

	// Show window
	showItem := systray.AddMenuItem("Open "+common.AppName, "Show main window")
	go func() {
		for range showItem.ClickedCh {
			t.app.post(MessageShowWindow)
		}
	}()

	systray.AddSeparator()

	// Quit
	quitItem := systray.AddMenuItem("Quit", "Close "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			t.app.post(MessageQuit)
		}
	}()

	t.SetActiveProfile(t.initialProfile)
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator cleanup completed")
}

// SetActiveProfile updates the profile shown in the tray menu.
// Safe to call from the main loop; systray marshals internally.
func (t *TrayIndicator) SetActiveProfile(name string) {
	if t.profileItem == nil {
		return
	}
	t.profileItem.SetTitle(fmt.Sprintf("Profile: %s", name))
}
