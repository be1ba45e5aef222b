package ui

import (
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/rgb-manager/common"
	"github.com/yllada/rgb-manager/config"
	"github.com/yllada/rgb-manager/effect"
	"github.com/yllada/rgb-manager/updates"
)

// Application represents the main application.
type Application struct {
	app         *gtk.Application
	window      *MainWindow
	coordinator *Coordinator
	manager     *effect.Manager
	mailbox     *Mailbox
	hotkeys     *HotkeyListener
	tray        *TrayIndicator
	version     string

	// managerErr is the hardware probe failure shown once at startup.
	managerErr error

	// persistFailed is set by shutdown when the final settings save
	// fails; the session's edits are lost and the process must not
	// report success.
	persistFailed bool

	shutdownOnce sync.Once
}

// StartupOptions selects the initial lighting state, overriding the
// default of restoring the last session's profile.
type StartupOptions struct {
	// ProfileName activates the named saved profile at startup.
	ProfileName string
	// EffectPath pre-queues a custom effect file so the first tick
	// commits it.
	EffectPath string
}

// NewApplication creates a new application.
func NewApplication(appID, version string, opts StartupOptions) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	mailbox := NewMailbox()

	// A missing keyboard is not fatal; the app runs degraded.
	manager, managerErr := effect.NewManager()
	if managerErr != nil {
		common.LogWarn("Effect manager unavailable: %v", managerErr)
		manager = nil
	}

	settingsPath, err := common.SettingsPath()
	if err != nil {
		common.LogError("Could not resolve settings path: %v", err)
	}
	settings := config.LoadWithRecovery(settingsPath)

	var backend EffectBackend
	if manager != nil {
		backend = manager
	}
	coordinator := NewCoordinator(mailbox, backend, settings, settingsPath)

	if opts.ProfileName != "" {
		if err := coordinator.UseProfile(opts.ProfileName); err != nil {
			common.LogWarn("Startup profile not used: %v", err)
		}
	}
	if opts.EffectPath != "" {
		if custom, err := effect.LoadCustomEffect(opts.EffectPath); err != nil {
			common.LogWarn("Startup effect rejected: %v", err)
		} else if err := coordinator.QueueCustomEffect(custom); err != nil {
			common.LogWarn("Startup effect not queued: %v", err)
		}
	}

	application := &Application{
		app:         app,
		coordinator: coordinator,
		manager:     manager,
		mailbox:     mailbox,
		version:     version,
		managerErr:  managerErr,
	}

	app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application and returns the process exit status.
func (a *Application) Run(args []string) int {
	return exitStatusAfter(a.app.Run(args), a.persistFailed)
}

// exitStatusAfter merges the GTK run status with the shutdown outcome.
// A failed final persist turns an otherwise clean exit into an error
// exit; the session's edits were lost and callers must be able to see
// that.
func exitStatusAfter(gtkStatus int, persistFailed bool) int {
	if gtkStatus != 0 {
		return gtkStatus
	}
	if persistFailed {
		return 1
	}
	return 0
}

// onActivate is called when the application is activated.
func (a *Application) onActivate() {
	LoadStyles()

	a.window = NewMainWindow(a)
	a.window.Show()

	a.coordinator.SetOnShowWindow(a.showWindow)
	a.coordinator.SetOnProfileCycled(func(p effect.Profile) {
		a.window.RefreshControls()
		if a.tray != nil {
			a.tray.SetActiveProfile(p.Name)
		}
		NotifyProfileActivated(p.Name)
	})

	// Restore the last session's lighting.
	a.coordinator.ApplyActive()

	// Start system tray indicator
	a.tray = NewTrayIndicator(a)
	go a.tray.Run()

	// Start global hotkey listener
	var source common.InputSource
	if a.manager != nil {
		source = a.manager
	}
	a.hotkeys = NewHotkeyListener(source, a.mailbox, a.wakeMainLoop)
	a.hotkeys.Start()

	if a.managerErr != nil {
		a.window.SetControlsEnabled(false)
		showBackendErrorDialog(a.window, a.managerErr)
		NotifyDegraded()
	}

	// Tick pump: the coordinator runs on every timer pulse.
	glib.TimeoutAdd(uint(common.TickInterval.Milliseconds()), a.onTick)

	go a.checkForUpdates()
}

// onTick runs one coordinator tick on the main thread. Returning
// false removes the timer source, which only happens at shutdown.
func (a *Application) onTick() bool {
	a.coordinator.Tick(a.window.TakeIntent())
	a.window.updateCustomControls()

	if a.coordinator.ShutdownRequested() {
		a.shutdown()
		return false
	}
	return true
}

// post queues a control message and wakes the main loop.
func (a *Application) post(msg ControlMessage) {
	a.mailbox.Post(msg)
	a.wakeMainLoop()
}

// wakeMainLoop nudges GTK so a sleeping main loop notices new work.
func (a *Application) wakeMainLoop() {
	glib.IdleAdd(func() {})
}

// showWindow shows the main window.
func (a *Application) showWindow() {
	if a.window != nil {
		a.window.Present()
	}
}

// GetVersion returns the application version.
func (a *Application) GetVersion() string {
	return a.version
}

// shutdown runs the orderly shutdown sequence exactly once: stop the
// producers, persist the session, release the hardware, quit GTK.
func (a *Application) shutdown() {
	a.shutdownOnce.Do(func() {
		common.LogInfo("Shutting down %s", common.AppName)

		if a.hotkeys != nil {
			a.hotkeys.Stop()
		}
		a.mailbox.Close()

		if err := a.coordinator.Persist(); err != nil {
			common.LogError("Settings not saved: %v", err)
			a.persistFailed = true
		}

		if a.manager != nil {
			a.manager.Close()
		}
		if a.tray != nil {
			a.tray.Quit()
		}

		a.app.Quit()
	})
}

// checkForUpdates queries the release endpoint in the background and
// shows the update notice unless the user skipped this version.
func (a *Application) checkForUpdates() {
	latest, ok := updates.CheckLatest(a.version)
	if !ok {
		return
	}

	// Coordinator state is main-thread only; decide there.
	glib.IdleAdd(func() {
		meta := a.coordinator.Updates()
		if meta.SkipVersion && meta.VersionName == latest {
			common.LogDebug("Update %s available but skipped by user", latest)
			return
		}

		common.LogInfo("Update available: %s", latest)
		NotifyUpdateAvailable(latest)
		showUpdateDialog(a.window, latest)
	})
}
