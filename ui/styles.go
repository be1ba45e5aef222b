// Package ui provides the graphical user interface for RGB Manager.
// This file contains the CSS styles for a clean, theme-aware UI.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// CSS styles for the RGB Manager UI - dark theme compatible.
const appCSS = `
/* ============================================
   RGB Manager - UI Styles (GTK4)
   Theme-aware styles
   ============================================ */

/* Profile sidebar rows */
list {
    background-color: transparent;
}

list > row {
    border-radius: 8px;
    margin: 2px 8px;
}

list > row:selected {
    background-color: alpha(#3584e4, 0.25);
}

list > row:hover {
    background-color: alpha(currentColor, 0.05);
}

/* Section headings */
.heading {
    font-weight: 600;
    font-size: 13px;
}

/* Zone color buttons */
colorswatch {
    border-radius: 8px;
}

/* Status Bar */
.status-bar {
    border-top: 1px solid alpha(currentColor, 0.15);
    padding: 6px 12px;
    opacity: 0.8;
}

/* Scales */
scale {
    min-width: 180px;
}

/* Flat button */
button.flat {
    background-color: transparent;
}

button.flat:hover {
    background-color: alpha(currentColor, 0.1);
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
