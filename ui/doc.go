// Package ui provides the graphical user interface for RGB Manager.
//
// This package implements the GTK4-based user interface including:
//
//   - Main application window with zone color and effect controls
//   - System tray indicator for quick access
//   - Global hotkey listener for cycling profiles
//   - Desktop notifications
//
// # Architecture
//
// The UI is built on GTK4 using the gotk4 bindings. Key components:
//
//   - Application: Main GTK application lifecycle management
//   - Coordinator: GTK-free runtime core driven by a periodic tick
//   - Mailbox: Control messages posted from the tray and hotkey threads
//   - MainWindow: Primary window with lighting controls
//   - TrayIndicator: System tray integration for background operation
//
// # Thread Safety
//
// GTK operations must execute on the main thread. The tray and hotkey
// listener run on their own goroutines and never touch widgets; they
// post control messages to the Mailbox, which the Coordinator drains
// on the main thread during its periodic tick. Background goroutines
// that do need to update widgets use glib.IdleAdd().
//
// # File Organization
//
//   - app.go: Application lifecycle, tick pump and shutdown
//   - coordinator.go: Runtime core (profile cycling, custom effects, persistence)
//   - messages.go: Control message mailbox
//   - hotkey.go: Global hotkey chord listener
//   - window.go: Main window layout and lighting controls
//   - modals.go: Startup error and update dialogs
//   - tray.go: System tray indicator
//   - icons.go: Icon generation for tray
//   - styles.go: CSS styling
//   - notifications.go: Desktop notification integration
package ui
