// Package ui provides the graphical user interface for RGB Manager.
// This file contains the main window layout and lighting controls.
package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/rgb-manager/common"
	"github.com/yllada/rgb-manager/effect"
)

// MainWindow represents the main application window.
type MainWindow struct {
	app       *Application
	window    *gtk.ApplicationWindow
	headerBar *gtk.HeaderBar

	profileList *gtk.ListBox
	profileIDs  []string

	controlsBox     *gtk.Box
	effectDropDown  *gtk.DropDown
	speedScale      *gtk.Scale
	brightnessScale *gtk.Scale
	directionDrop   *gtk.DropDown
	zoneButtons     [common.ZoneCount]*gtk.ColorButton
	globalButton    *gtk.ColorButton
	loadButton      *gtk.Button
	stopButton      *gtk.Button

	statusBar   *gtk.Box
	statusLabel *gtk.Label

	// pendingIntent records user edits between ticks; the tick pump
	// takes it via TakeIntent.
	pendingIntent Intent
	// refreshing suppresses intent recording while widgets are being
	// updated programmatically.
	refreshing bool
}

// NewMainWindow creates a new main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	mw.window.SetResizable(false)
	mw.window.SetIconName("rgb-manager")

	// Clicking X hides the window; the app keeps running in the tray
	// and lighting stays active.
	mw.window.SetHideOnClose(true)

	mw.createLayout()
	mw.RefreshControls()
	mw.RefreshProfileList()

	return mw
}

// Show presents the window.
func (mw *MainWindow) Show() {
	mw.window.Show()
}

// Present raises the window, restoring it from the tray.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// TakeIntent returns the pending edit intent and resets it.
func (mw *MainWindow) TakeIntent() Intent {
	intent := mw.pendingIntent
	mw.pendingIntent = IntentNone
	return intent
}

// recordIntent notes a user edit for the next tick.
func (mw *MainWindow) recordIntent(intent Intent) {
	if mw.refreshing {
		return
	}
	mw.pendingIntent = intent
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	mw.headerBar = gtk.NewHeaderBar()

	// Button to save the current state as a new profile
	saveButton := gtk.NewButton()
	saveButton.SetIconName("list-add-symbolic")
	saveButton.SetTooltipText("Save as profile")
	saveButton.ConnectClicked(mw.onSaveProfile)
	mw.headerBar.PackStart(saveButton)

	// Menu button
	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	mw.headerBar.PackEnd(menuButton)
	menuButton.SetMenuModel(mw.createMenu())

	mw.window.SetTitlebar(mw.headerBar)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	contentBox := gtk.NewBox(gtk.OrientationHorizontal, 0)
	contentBox.SetVExpand(true)

	// Profile sidebar
	contentBox.Append(mw.createSidebar())
	contentBox.Append(gtk.NewSeparator(gtk.OrientationVertical))

	// Lighting controls
	mw.controlsBox = mw.createControls()
	contentBox.Append(mw.controlsBox)

	mainBox.Append(contentBox)

	mw.createStatusBar()
	mainBox.Append(mw.statusBar)

	mw.window.SetChild(mainBox)
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	mw.setupActions()

	return menu
}

// setupActions configures menu actions.
func (mw *MainWindow) setupActions() {
	// About action
	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAbout()
	})
	mw.app.app.AddAction(aboutAction)

	// Quit action (Ctrl+Q) routes through the mailbox so shutdown
	// always runs the same orderly sequence.
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		mw.app.mailbox.Post(MessageQuit)
	})
	mw.app.app.AddAction(quitAction)
	mw.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// createSidebar creates the saved profile list.
func (mw *MainWindow) createSidebar() gtk.Widgetter {
	box := gtk.NewBox(gtk.OrientationVertical, 0)
	box.SetSizeRequest(200, -1)

	header := gtk.NewLabel("Profiles")
	header.AddCSSClass("heading")
	header.SetMarginTop(12)
	header.SetMarginBottom(6)
	box.Append(header)

	mw.profileList = gtk.NewListBox()
	mw.profileList.SetSelectionMode(gtk.SelectionSingle)
	mw.profileList.ConnectRowActivated(func(row *gtk.ListBoxRow) {
		idx := row.Index()
		if idx < 0 || idx >= len(mw.profileIDs) {
			return
		}
		if err := mw.app.coordinator.SelectProfile(mw.profileIDs[idx]); err != nil {
			mw.SetStatus(fmt.Sprintf("Could not select profile: %v", err))
			return
		}
		mw.RefreshControls()
	})

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetChild(mw.profileList)
	box.Append(scrolled)

	// Delete button for the selected profile
	deleteButton := gtk.NewButton()
	deleteButton.SetIconName("user-trash-symbolic")
	deleteButton.SetTooltipText("Delete selected profile")
	deleteButton.SetMarginTop(6)
	deleteButton.SetMarginBottom(6)
	deleteButton.ConnectClicked(mw.onDeleteProfile)
	box.Append(deleteButton)

	return box
}

// createControls creates the lighting control panel.
func (mw *MainWindow) createControls() *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetHExpand(true)
	box.SetMarginTop(16)
	box.SetMarginBottom(16)
	box.SetMarginStart(16)
	box.SetMarginEnd(16)

	// Effect selector
	effectNames := make([]string, 0, len(effect.AllEffects()))
	for _, e := range effect.AllEffects() {
		effectNames = append(effectNames, e.String())
	}

	mw.effectDropDown = gtk.NewDropDown(gtk.NewStringList(effectNames), nil)
	mw.effectDropDown.NotifyProperty("selected", func() {
		if mw.refreshing {
			return
		}
		selected := int(mw.effectDropDown.Selected())
		all := effect.AllEffects()
		if selected < 0 || selected >= len(all) {
			return
		}
		mw.app.coordinator.ActiveProfile().Effect = all[selected]
		mw.updateControlSensitivity()
		mw.recordIntent(IntentEffectSelected)
	})
	box.Append(mw.labeledRow("Effect", mw.effectDropDown))

	// Speed
	mw.speedScale = gtk.NewScaleWithRange(gtk.OrientationHorizontal, 1, 4, 1)
	mw.speedScale.SetDrawValue(true)
	mw.speedScale.SetHExpand(true)
	mw.speedScale.ConnectValueChanged(func() {
		if mw.refreshing {
			return
		}
		mw.app.coordinator.ActiveProfile().Speed = int(mw.speedScale.Value())
		mw.recordIntent(IntentProfileEdited)
	})
	box.Append(mw.labeledRow("Speed", mw.speedScale))

	// Brightness
	mw.brightnessScale = gtk.NewScaleWithRange(gtk.OrientationHorizontal, 1, 2, 1)
	mw.brightnessScale.SetDrawValue(true)
	mw.brightnessScale.SetHExpand(true)
	mw.brightnessScale.ConnectValueChanged(func() {
		if mw.refreshing {
			return
		}
		mw.app.coordinator.ActiveProfile().Brightness = int(mw.brightnessScale.Value())
		mw.recordIntent(IntentProfileEdited)
	})
	box.Append(mw.labeledRow("Brightness", mw.brightnessScale))

	// Direction
	mw.directionDrop = gtk.NewDropDown(gtk.NewStringList([]string{"Left", "Right"}), nil)
	mw.directionDrop.NotifyProperty("selected", func() {
		if mw.refreshing {
			return
		}
		direction := effect.DirectionLeft
		if mw.directionDrop.Selected() == 1 {
			direction = effect.DirectionRight
		}
		mw.app.coordinator.ActiveProfile().Direction = direction
		mw.recordIntent(IntentProfileEdited)
	})
	box.Append(mw.labeledRow("Direction", mw.directionDrop))

	// Zone colors
	zoneRow := gtk.NewBox(gtk.OrientationHorizontal, 12)
	for i := range mw.zoneButtons {
		zone := i
		btn := gtk.NewColorButton()
		btn.SetTooltipText(fmt.Sprintf("Zone %d color", zone+1))
		btn.ConnectColorSet(func() {
			if mw.refreshing {
				return
			}
			mw.app.coordinator.ActiveProfile().Zones[zone].RGB = rgbFromButton(btn)
			mw.recordIntent(IntentProfileEdited)
		})
		mw.zoneButtons[i] = btn
		zoneRow.Append(btn)
	}
	box.Append(mw.labeledRow("Zones", zoneRow))

	// Global color applied to every zone at once
	mw.globalButton = gtk.NewColorButton()
	mw.globalButton.SetTooltipText("Apply one color to all zones")
	mw.globalButton.ConnectColorSet(func() {
		if mw.refreshing {
			return
		}
		mw.app.coordinator.ActiveProfile().SetAllZones(rgbFromButton(mw.globalButton))
		mw.RefreshControls()
		mw.recordIntent(IntentProfileEdited)
	})
	box.Append(mw.labeledRow("All zones", mw.globalButton))

	box.Append(gtk.NewSeparator(gtk.OrientationHorizontal))

	// Custom effect controls
	customRow := gtk.NewBox(gtk.OrientationHorizontal, 12)

	mw.loadButton = gtk.NewButtonWithLabel("Load custom effect…")
	mw.loadButton.ConnectClicked(mw.onLoadCustomEffect)
	customRow.Append(mw.loadButton)

	mw.stopButton = gtk.NewButtonWithLabel("Stop")
	mw.stopButton.SetSensitive(false)
	mw.stopButton.ConnectClicked(mw.onStopCustomEffect)
	customRow.Append(mw.stopButton)

	box.Append(customRow)

	return box
}

// labeledRow lays out a control with a fixed-width leading label.
func (mw *MainWindow) labeledRow(text string, child gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)

	label := gtk.NewLabel(text)
	label.SetXAlign(0)
	label.SetSizeRequest(90, -1)
	label.AddCSSClass("dim-label")
	row.Append(label)
	row.Append(child)

	return row
}

// createStatusBar creates the status bar.
func (mw *MainWindow) createStatusBar() {
	mw.statusBar = gtk.NewBox(gtk.OrientationHorizontal, 12)
	mw.statusBar.AddCSSClass("status-bar")

	mw.statusLabel = gtk.NewLabel("Ready")
	mw.statusLabel.SetXAlign(0)
	mw.statusBar.Append(mw.statusLabel)
}

// SetStatus updates the status text.
func (mw *MainWindow) SetStatus(text string) {
	if mw.statusLabel != nil {
		mw.statusLabel.SetText(text)
	}
}

// SetControlsEnabled toggles the lighting controls. Disabled in
// degraded mode when no supported keyboard is present.
func (mw *MainWindow) SetControlsEnabled(enabled bool) {
	mw.controlsBox.SetSensitive(enabled)
}

// RefreshControls updates every widget from the active profile.
func (mw *MainWindow) RefreshControls() {
	mw.refreshing = true
	defer func() { mw.refreshing = false }()

	profile := mw.app.coordinator.ActiveProfile()

	all := effect.AllEffects()
	for i, e := range all {
		if e == profile.Effect {
			mw.effectDropDown.SetSelected(uint(i))
			break
		}
	}

	mw.speedScale.SetValue(float64(profile.Speed))
	mw.brightnessScale.SetValue(float64(profile.Brightness))

	if profile.Direction == effect.DirectionRight {
		mw.directionDrop.SetSelected(1)
	} else {
		mw.directionDrop.SetSelected(0)
	}

	for i, btn := range mw.zoneButtons {
		setButtonRGB(btn, profile.Zones[i].RGB)
	}

	mw.updateCustomControls()
}

// updateControlSensitivity enables only the controls the selected
// effect understands. While a custom effect occupies the slot the
// profile controls are locked; the user stops it first.
func (mw *MainWindow) updateControlSensitivity() {
	e := mw.app.coordinator.ActiveProfile().Effect
	busy := mw.app.coordinator.CustomEffectState() != effect.StateNone

	mw.effectDropDown.SetSensitive(!busy)
	mw.speedScale.SetSensitive(!busy && e.TakesSpeed())
	mw.brightnessScale.SetSensitive(!busy)
	mw.directionDrop.SetSensitive(!busy && e.TakesDirection())

	colors := !busy && e.TakesColorArray()
	for _, btn := range mw.zoneButtons {
		btn.SetSensitive(colors)
	}
	mw.globalButton.SetSensitive(colors)
}

// updateCustomControls syncs the custom effect buttons with the slot
// and locks or releases the profile controls.
func (mw *MainWindow) updateCustomControls() {
	busy := mw.app.coordinator.CustomEffectState() != effect.StateNone
	mw.stopButton.SetSensitive(busy)
	mw.loadButton.SetSensitive(!busy)
	mw.updateControlSensitivity()
}

// RefreshProfileList rebuilds the profile sidebar.
func (mw *MainWindow) RefreshProfileList() {
	for {
		row := mw.profileList.RowAtIndex(0)
		if row == nil {
			break
		}
		mw.profileList.Remove(row)
	}

	profiles := mw.app.coordinator.Profiles()
	mw.profileIDs = mw.profileIDs[:0]

	for _, profile := range profiles {
		label := gtk.NewLabel(profile.Name)
		label.SetXAlign(0)
		label.SetMarginTop(8)
		label.SetMarginBottom(8)
		label.SetMarginStart(12)
		label.SetMarginEnd(12)

		row := gtk.NewListBoxRow()
		row.SetChild(label)
		mw.profileList.Append(row)
		mw.profileIDs = append(mw.profileIDs, profile.ID)
	}
}

// Event handlers

func (mw *MainWindow) onSaveProfile() {
	window := gtk.NewWindow()
	window.SetTitle("Save profile")
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(360, 160)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	entry := gtk.NewEntry()
	entry.SetPlaceholderText("My profile")

	contentBox := gtk.NewBox(gtk.OrientationVertical, 12)
	contentBox.SetMarginTop(24)
	contentBox.SetMarginBottom(12)
	contentBox.SetMarginStart(24)
	contentBox.SetMarginEnd(24)

	lbl := gtk.NewLabel("Enter a name for this lighting profile")
	lbl.SetXAlign(0)
	contentBox.Append(lbl)
	contentBox.Append(entry)

	mainBox.Append(contentBox)

	buttonBox := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBox.SetHAlign(gtk.AlignEnd)
	buttonBox.SetMarginTop(12)
	buttonBox.SetMarginBottom(24)
	buttonBox.SetMarginStart(24)
	buttonBox.SetMarginEnd(24)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		window.Close()
	})
	buttonBox.Append(cancelBtn)

	acceptBtn := gtk.NewButtonWithLabel("Save")
	acceptBtn.AddCSSClass("suggested-action")
	acceptBtn.ConnectClicked(func() {
		name := entry.Text()
		window.Close()

		profile, err := mw.app.coordinator.SaveActiveAsProfile(name)
		if err != nil {
			mw.SetStatus(fmt.Sprintf("Could not save profile: %v", err))
			return
		}

		mw.RefreshProfileList()
		mw.SetStatus(fmt.Sprintf("Saved profile %q", profile.Name))
	})
	buttonBox.Append(acceptBtn)

	entry.ConnectActivate(func() {
		acceptBtn.Activate()
	})

	mainBox.Append(buttonBox)
	window.SetChild(mainBox)
	window.Show()
	entry.GrabFocus()
}

func (mw *MainWindow) onDeleteProfile() {
	row := mw.profileList.SelectedRow()
	if row == nil {
		return
	}
	idx := row.Index()
	if idx < 0 || idx >= len(mw.profileIDs) {
		return
	}

	if err := mw.app.coordinator.DeleteProfile(mw.profileIDs[idx]); err != nil {
		mw.SetStatus(fmt.Sprintf("Could not delete profile: %v", err))
		return
	}

	mw.RefreshProfileList()
	mw.SetStatus("Profile deleted")
}

func (mw *MainWindow) onLoadCustomEffect() {
	dialog := gtk.NewFileChooserNative(
		"Select custom effect file",
		&mw.window.Window,
		gtk.FileChooserActionOpen,
		"Open",
		"Cancel",
	)

	filter := gtk.NewFileFilter()
	filter.SetName("Effect files (*.yaml, *.yml)")
	filter.AddPattern("*.yaml")
	filter.AddPattern("*.yml")
	dialog.AddFilter(filter)

	dialog.ConnectResponse(func(responseID int) {
		if responseID == int(gtk.ResponseAccept) {
			file := dialog.File()
			if file != nil {
				mw.queueCustomEffect(file.Path())
			}
		}
		dialog.Destroy()
	})

	dialog.Show()
}

// queueCustomEffect loads an effect file and stages it for playback.
func (mw *MainWindow) queueCustomEffect(path string) {
	custom, err := effect.LoadCustomEffect(path)
	if err != nil {
		common.LogWarn("Custom effect rejected: %v", err)
		mw.SetStatus(fmt.Sprintf("Could not load effect: %v", err))
		return
	}

	if err := mw.app.coordinator.QueueCustomEffect(custom); err != nil {
		mw.SetStatus(fmt.Sprintf("Could not start effect: %v", err))
		return
	}

	mw.updateCustomControls()
	name := custom.Name
	if name == "" {
		name = "custom effect"
	}
	mw.SetStatus(fmt.Sprintf("Playing %s", name))
}

func (mw *MainWindow) onStopCustomEffect() {
	if err := mw.app.coordinator.StopCustomEffect(); err != nil {
		mw.SetStatus(fmt.Sprintf("Nothing to stop: %v", err))
		return
	}
	mw.updateCustomControls()
	mw.SetStatus("Custom effect stopped")
}

func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)
	about.SetProgramName(common.AppName)
	about.SetVersion(mw.app.version)
	about.SetComments("Four-zone keyboard backlight control")
	about.Show()
}

// rgbFromButton reads a color button as an 8-bit RGB triple.
func rgbFromButton(btn *gtk.ColorButton) [3]uint8 {
	rgba := btn.RGBA()
	return [3]uint8{
		uint8(rgba.Red() * 255),
		uint8(rgba.Green() * 255),
		uint8(rgba.Blue() * 255),
	}
}

// setButtonRGB writes an 8-bit RGB triple into a color button.
func setButtonRGB(btn *gtk.ColorButton, rgb [3]uint8) {
	rgba := gdk.NewRGBA(
		float32(rgb[0])/255,
		float32(rgb[1])/255,
		float32(rgb[2])/255,
		1,
	)
	btn.SetRGBA(&rgba)
}
