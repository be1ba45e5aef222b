// Package ui provides the graphical user interface for RGB Manager.
// This file contains the runtime core driven by the periodic tick.
package ui

import (
	"fmt"
	"strings"

	"github.com/yllada/rgb-manager/common"
	"github.com/yllada/rgb-manager/config"
	"github.com/yllada/rgb-manager/effect"
)

// Intent describes what the user changed in the window since the
// previous tick. The widgets record an intent; the tick consumes it.
type Intent int

const (
	// IntentNone means no lighting-relevant edit happened.
	IntentNone Intent = iota
	// IntentProfileEdited means a zone color, speed, brightness or
	// direction control changed.
	IntentProfileEdited
	// IntentEffectSelected means a built-in effect was chosen.
	IntentEffectSelected
)

// EffectBackend is the hardware-facing surface the coordinator drives.
// *effect.Manager implements it.
type EffectBackend interface {
	SetProfile(p effect.Profile)
	QueueCustomEffect(e *effect.CustomEffect)
}

// Coordinator owns the runtime state of a session: the profile list,
// the active profile, the custom-effect slot and the shutdown flag.
// All methods must be called from the main loop; cross-thread input
// arrives only through the mailbox.
//
// A nil backend puts the coordinator in degraded mode: the UI stays
// usable for editing and persistence but nothing reaches hardware.
type Coordinator struct {
	mailbox *Mailbox
	backend EffectBackend
	slot    effect.CustomEffectSlot

	settings     config.Settings
	settingsPath string
	updatesDirty bool
	shutdown     bool

	onShowWindow    func()
	onProfileCycled func(effect.Profile)
}

// NewCoordinator creates a coordinator over the given session state.
func NewCoordinator(mailbox *Mailbox, backend EffectBackend, settings config.Settings, settingsPath string) *Coordinator {
	return &Coordinator{
		mailbox:      mailbox,
		backend:      backend,
		settings:     settings,
		settingsPath: settingsPath,
	}
}

// SetOnShowWindow sets the callback for MessageShowWindow.
func (c *Coordinator) SetOnShowWindow(fn func()) {
	c.onShowWindow = fn
}

// SetOnProfileCycled sets the callback invoked after a profile becomes
// active through cycling or selection.
func (c *Coordinator) SetOnProfileCycled(fn func(effect.Profile)) {
	c.onProfileCycled = fn
}

// Degraded reports whether no hardware backend is available.
func (c *Coordinator) Degraded() bool {
	return c.backend == nil
}

// ActiveProfile returns the profile currently being edited and shown.
func (c *Coordinator) ActiveProfile() *effect.Profile {
	return &c.settings.UIState
}

// Profiles returns the saved profile list in cycle order.
func (c *Coordinator) Profiles() []effect.Profile {
	return c.settings.Profiles
}

// Updates returns the session's update-check metadata.
func (c *Coordinator) Updates() config.Updates {
	return c.settings.Updates
}

// SetUpdates records update-check metadata for persistence.
func (c *Coordinator) SetUpdates(u config.Updates) {
	c.settings.Updates = u
	c.updatesDirty = true
}

// Tick is the heart of the main loop, invoked on every timer pulse.
// It processes at most one control message, applies the UI intent,
// and forwards a queued custom effect to the backend.
func (c *Coordinator) Tick(intent Intent) {
	if msg, ok := c.mailbox.TryReceive(); ok {
		c.handleMessage(msg)
	}

	if intent != IntentNone {
		// Any profile edit cancels a pending or playing custom effect.
		c.slot.Clear()
		c.applyActive()
	}

	if c.slot.IsQueued() {
		e, err := c.slot.Commit()
		if err == nil && c.backend != nil {
			c.backend.QueueCustomEffect(e)
		}
	}
}

// handleMessage dispatches one control message.
func (c *Coordinator) handleMessage(msg ControlMessage) {
	common.LogDebug("Control message: %s", msg)

	switch msg {
	case MessageShowWindow:
		if c.onShowWindow != nil {
			c.onShowWindow()
		}
	case MessageCycleProfiles:
		c.CycleProfiles()
	case MessageQuit:
		c.RequestShutdown()
	}
}

// CycleProfiles activates the profile after the current one, wrapping
// at the end of the list. The current position is found by name; when
// the active profile's name is not in the list the cycle is a no-op.
func (c *Coordinator) CycleProfiles() {
	profiles := c.settings.Profiles
	if len(profiles) == 0 {
		return
	}

	current := -1
	for i := range profiles {
		if profiles[i].Name == c.settings.UIState.Name {
			current = i
			break
		}
	}
	if current < 0 {
		common.LogDebug("Active profile %q not in list, cycle skipped", c.settings.UIState.Name)
		return
	}

	next := profiles[(current+1)%len(profiles)]
	c.activateProfile(next)
}

// UseProfile makes the named saved profile active without touching the
// hardware. Used before the first tick to honor a profile requested on
// the command line; the startup apply pushes it to the backend.
func (c *Coordinator) UseProfile(name string) error {
	for i := range c.settings.Profiles {
		if strings.EqualFold(c.settings.Profiles[i].Name, name) {
			c.settings.UIState = c.settings.Profiles[i]
			return nil
		}
	}
	return fmt.Errorf("%w: %s", common.ErrProfileNotFound, name)
}

// SelectProfile activates a saved profile by ID.
func (c *Coordinator) SelectProfile(id string) error {
	for i := range c.settings.Profiles {
		if c.settings.Profiles[i].ID == id {
			c.activateProfile(c.settings.Profiles[i])
			return nil
		}
	}
	return fmt.Errorf("%w: %s", common.ErrProfileNotFound, id)
}

// activateProfile makes p the active profile and pushes it to hardware.
func (c *Coordinator) activateProfile(p effect.Profile) {
	c.settings.UIState = p
	c.slot.Clear()
	c.applyActive()

	common.LogInfo("Activated profile %q", p.Name)
	if c.onProfileCycled != nil {
		c.onProfileCycled(p)
	}
}

// SaveActiveAsProfile snapshots the active state as a new named
// profile and appends it to the cycle list.
func (c *Coordinator) SaveActiveAsProfile(name string) (effect.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return effect.Profile{}, common.ErrInvalidProfile
	}

	p := c.settings.UIState
	p.ID = common.GenerateID()
	p.Name = name
	if err := p.Validate(); err != nil {
		return effect.Profile{}, err
	}

	c.settings.Profiles = append(c.settings.Profiles, p)
	c.settings.UIState.Name = name
	return p, nil
}

// DeleteProfile removes a saved profile by ID.
func (c *Coordinator) DeleteProfile(id string) error {
	for i := range c.settings.Profiles {
		if c.settings.Profiles[i].ID == id {
			c.settings.Profiles = append(c.settings.Profiles[:i], c.settings.Profiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", common.ErrProfileNotFound, id)
}

// applyActive pushes the active profile to the backend, if any.
func (c *Coordinator) applyActive() {
	if c.backend == nil {
		return
	}
	c.backend.SetProfile(c.settings.UIState)
}

// ApplyActive pushes the active profile to hardware. Used once at
// startup to restore the last session's lighting.
func (c *Coordinator) ApplyActive() {
	c.applyActive()
}

// QueueCustomEffect stages a custom effect; the next tick forwards it.
func (c *Coordinator) QueueCustomEffect(e *effect.CustomEffect) error {
	if c.backend == nil {
		return common.ErrManagerUnavailable
	}
	return c.slot.Queue(e)
}

// StopCustomEffect ends a playing custom effect and restores the
// active profile's lighting.
func (c *Coordinator) StopCustomEffect() error {
	if err := c.slot.Stop(); err != nil {
		return err
	}
	c.applyActive()
	return nil
}

// CustomEffectState returns the lifecycle state of the custom slot.
func (c *Coordinator) CustomEffectState() effect.EffectState {
	return c.slot.State()
}

// RequestShutdown marks the session for orderly shutdown. The tick
// pump owner notices the flag and runs the shutdown sequence exactly
// once.
func (c *Coordinator) RequestShutdown() {
	c.shutdown = true
}

// ShutdownRequested reports whether an orderly shutdown was requested.
func (c *Coordinator) ShutdownRequested() bool {
	return c.shutdown
}

// Persist writes the session state to disk. It re-reads the file
// first and overwrites only the fields this session owns, so settings
// written by another process since startup survive where possible.
func (c *Coordinator) Persist() error {
	disk := config.LoadOrDefault(c.settingsPath)

	disk.Profiles = c.settings.Profiles
	disk.UIState = c.settings.UIState
	if c.updatesDirty {
		disk.Updates = c.settings.Updates
	}

	return disk.Save(c.settingsPath)
}
