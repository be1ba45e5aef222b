// Package ui provides the graphical user interface for RGB Manager.
// This file contains the startup error and update notice dialogs.
package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/rgb-manager/common"
	"github.com/yllada/rgb-manager/config"
)

// showBackendErrorDialog tells the user no supported keyboard was
// found. Shown at most once per session, after the main window is up.
func showBackendErrorDialog(mw *MainWindow, cause error) {
	window := gtk.NewWindow()
	window.SetTitle("Keyboard not found")
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(420, 200)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	contentBox := gtk.NewBox(gtk.OrientationVertical, 12)
	contentBox.SetMarginTop(24)
	contentBox.SetMarginBottom(12)
	contentBox.SetMarginStart(24)
	contentBox.SetMarginEnd(24)

	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 12)
	icon := gtk.NewImage()
	icon.SetFromIconName("dialog-warning-symbolic")
	icon.SetPixelSize(32)
	headerBox.Append(icon)

	title := gtk.NewLabel("No supported keyboard detected")
	title.AddCSSClass("title-3")
	headerBox.Append(title)
	contentBox.Append(headerBox)

	detail := gtk.NewLabel(fmt.Sprintf(
		"%s could not reach a compatible lighting controller:\n%v\n\n"+
			"You can keep editing profiles; changes will be saved but "+
			"nothing reaches the hardware.", common.AppName, cause))
	detail.SetWrap(true)
	detail.SetXAlign(0)
	detail.AddCSSClass("dim-label")
	contentBox.Append(detail)

	mainBox.Append(contentBox)

	buttonBox := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBox.SetHAlign(gtk.AlignEnd)
	buttonBox.SetMarginTop(12)
	buttonBox.SetMarginBottom(24)
	buttonBox.SetMarginStart(24)
	buttonBox.SetMarginEnd(24)

	quitBtn := gtk.NewButtonWithLabel("Quit")
	quitBtn.ConnectClicked(func() {
		window.Close()
		mw.app.mailbox.Post(MessageQuit)
	})
	buttonBox.Append(quitBtn)

	okBtn := gtk.NewButtonWithLabel("Continue")
	okBtn.AddCSSClass("suggested-action")
	okBtn.ConnectClicked(func() {
		window.Close()
	})
	buttonBox.Append(okBtn)

	mainBox.Append(buttonBox)
	window.SetChild(mainBox)
	window.Show()
}

// showUpdateDialog announces a newer release. The skip toggle mutes
// the notice for this version on future startups.
func showUpdateDialog(mw *MainWindow, version string) {
	window := gtk.NewWindow()
	window.SetTitle("Update available")
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(380, 180)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	contentBox := gtk.NewBox(gtk.OrientationVertical, 12)
	contentBox.SetMarginTop(24)
	contentBox.SetMarginBottom(12)
	contentBox.SetMarginStart(24)
	contentBox.SetMarginEnd(24)

	title := gtk.NewLabel(fmt.Sprintf("%s %s is available", common.AppName, version))
	title.AddCSSClass("title-3")
	title.SetXAlign(0)
	contentBox.Append(title)

	detail := gtk.NewLabel("Download the new release from the project page.")
	detail.SetXAlign(0)
	detail.AddCSSClass("dim-label")
	contentBox.Append(detail)

	skipCheck := gtk.NewCheckButtonWithLabel("Don't remind me about this version")
	skipCheck.SetMarginTop(8)
	contentBox.Append(skipCheck)

	mainBox.Append(contentBox)

	buttonBox := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBox.SetHAlign(gtk.AlignEnd)
	buttonBox.SetMarginTop(12)
	buttonBox.SetMarginBottom(24)
	buttonBox.SetMarginStart(24)
	buttonBox.SetMarginEnd(24)

	okBtn := gtk.NewButtonWithLabel("Close")
	okBtn.AddCSSClass("suggested-action")
	okBtn.ConnectClicked(func() {
		mw.app.coordinator.SetUpdates(config.Updates{
			VersionName: version,
			SkipVersion: skipCheck.Active(),
		})
		window.Close()
	})
	buttonBox.Append(okBtn)

	mainBox.Append(buttonBox)
	window.SetChild(mainBox)
	window.Show()
}
