// Package cli provides command-line interface functionality for RGB Manager.
// This allows users to apply lighting profiles and play custom effects from
// the terminal without launching the GUI application.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/yllada/rgb-manager/common"
	"github.com/yllada/rgb-manager/config"
	"github.com/yllada/rgb-manager/effect"
)

// CLI represents the command-line interface.
type CLI struct {
	settings config.Settings
}

// New creates a new CLI instance backed by the saved settings.
func New() (*CLI, error) {
	path, err := common.SettingsPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate settings: %w", err)
	}

	return &CLI{
		settings: config.LoadOrDefault(path),
	}, nil
}

// ListProfiles lists all saved lighting profiles.
func (c *CLI) ListProfiles() error {
	profiles := c.settings.Profiles

	if len(profiles) == 0 {
		fmt.Println("No lighting profiles saved.")
		fmt.Println("Use the GUI to create profiles: rgb-manager")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEFFECT\tSPEED\tBRIGHTNESS")
	fmt.Fprintln(w, "--\t----\t------\t-----\t----------")

	for _, profile := range profiles {
		// Truncate ID for display
		shortID := profile.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		speed := "-"
		if profile.Effect.TakesSpeed() {
			speed = fmt.Sprintf("%d", profile.Speed)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			shortID, profile.Name, profile.Effect, speed, profile.Brightness)
	}

	w.Flush()
	return nil
}

// ApplyProfile applies a saved profile to the keyboard and exits.
func (c *CLI) ApplyProfile(nameOrID string) error {
	profile := c.findProfile(nameOrID)
	if profile == nil {
		return fmt.Errorf("profile not found: %s", nameOrID)
	}

	manager, err := effect.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize effect manager: %w", err)
	}
	defer manager.Close()

	fmt.Printf("Applying %s...\n", profile.Name)
	manager.SetProfile(*profile)

	// Commands are handed to a worker; give it a moment to reach the
	// hardware before tearing the manager down.
	time.Sleep(200 * time.Millisecond)

	fmt.Printf("✓ Applied %s\n", profile.Name)
	return nil
}

// PlayEffect plays a custom effect file until the context is cancelled.
func (c *CLI) PlayEffect(ctx context.Context, path string) error {
	custom, err := effect.LoadCustomEffect(path)
	if err != nil {
		return fmt.Errorf("failed to load effect: %w", err)
	}

	manager, err := effect.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize effect manager: %w", err)
	}
	defer manager.Close()

	name := custom.Name
	if name == "" {
		name = path
	}

	fmt.Printf("Playing %s (Ctrl+C to stop)...\n", name)
	manager.QueueCustomEffect(custom)

	if custom.Loop {
		<-ctx.Done()
	} else {
		// A one-shot effect ends on its own; wait for its runtime or
		// an interrupt, whichever comes first.
		select {
		case <-ctx.Done():
		case <-time.After(custom.Duration() + 200*time.Millisecond):
		}
	}

	fmt.Println("✓ Stopped")
	return nil
}

// findProfile finds a profile by name or ID (case-insensitive).
func (c *CLI) findProfile(nameOrID string) *effect.Profile {
	nameOrID = strings.ToLower(strings.TrimSpace(nameOrID))

	for i := range c.settings.Profiles {
		profile := &c.settings.Profiles[i]
		if strings.ToLower(profile.Name) == nameOrID ||
			strings.ToLower(profile.ID) == nameOrID ||
			strings.HasPrefix(strings.ToLower(profile.ID), nameOrID) {
			return profile
		}
	}

	return nil
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`RGB Manager - Command Line Interface

Usage:
  rgb-manager [OPTIONS]

Options:
  --version         Show version and exit
  --verbose         Enable verbose logging
  --list            List all saved lighting profiles
  --profile NAME    Start with the named saved profile active
  --effect PATH     Start with a custom effect file queued for playback
  --headless        Apply --profile or play --effect without the GUI
  --help            Show this help message

Examples:
  rgb-manager --list
  rgb-manager --profile "Work"
  rgb-manager --headless --profile "Work"
  rgb-manager --headless --effect ~/.config/rgb-manager/effects/pulse.yaml

Notes:
  - Profiles are created and edited via the GUI
  - Applying a profile requires a supported keyboard to be attached
  - Run without options to launch the GUI with the last session's profile`)
}
