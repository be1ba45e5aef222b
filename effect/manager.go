// Package effect provides the lighting domain for RGB Manager.
// This file contains the Manager facade that drives the hardware.
package effect

import (
	"fmt"
	"sync"
	"time"

	"github.com/yllada/rgb-manager/common"
)

// command is a single instruction for the manager worker. Exactly one
// field is set.
type command struct {
	profile *Profile
	custom  *CustomEffect
}

// Manager drives the keyboard backlight hardware. Apply operations are
// fire-and-forget: they hand a command to a dedicated worker goroutine
// and return immediately, so the UI thread never waits on the device.
//
// Manager also owns the raw keyboard event reader and exposes it as a
// non-blocking source (common.InputSource) for the hotkey listener.
type Manager struct {
	dev   *device
	input *inputReader

	commands  chan command
	done      chan struct{}
	closeOnce sync.Once
}

// NewManager probes the hardware and starts the worker. It fails with
// an error wrapping common.ErrManagerUnavailable when no supported
// controller is present; the application then runs in UI-only mode.
func NewManager() (*Manager, error) {
	dev, err := openDevice()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrManagerUnavailable, err)
	}

	input, err := newInputReader()
	if err != nil {
		// The hotkey chord degrades gracefully without input devices;
		// lighting control still works.
		common.LogWarn("Keyboard event reader unavailable: %v", err)
		input = nil
	}

	m := &Manager{
		dev:      dev,
		input:    input,
		commands: make(chan command, 1),
		done:     make(chan struct{}),
	}
	go m.run()

	return m, nil
}

// SetProfile asks the worker to apply a profile. The latest pending
// command wins; intermediate states of a fast edit burst are skipped.
func (m *Manager) SetProfile(p Profile) {
	m.submit(command{profile: &p})
}

// QueueCustomEffect asks the worker to start playing a custom effect.
func (m *Manager) QueueCustomEffect(e *CustomEffect) {
	m.submit(command{custom: e})
}

// TryReadKey implements common.InputSource over the event reader.
func (m *Manager) TryReadKey() (common.KeyEvent, bool) {
	if m.input == nil {
		return common.KeyEvent{}, false
	}
	return m.input.TryReadKey()
}

// Close stops the worker and releases the hardware.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		if m.input != nil {
			m.input.close()
		}
	})
}

// submit replaces any pending command with the new one without
// blocking the caller.
func (m *Manager) submit(cmd command) {
	for {
		select {
		case m.commands <- cmd:
			return
		default:
			select {
			case <-m.commands:
			default:
			}
		}
	}
}

// run is the worker loop. It applies profile commands directly and
// steps through custom effect frames, honoring per-step delays, until
// the effect ends or a new command arrives.
func (m *Manager) run() {
	defer m.dev.close()

	var playing *CustomEffect
	step := 0

	for {
		if playing == nil {
			select {
			case cmd := <-m.commands:
				playing, step = m.handle(cmd)
			case <-m.done:
				return
			}
			continue
		}

		frame := playing.Steps[step]
		if err := m.dev.applyZones(frame.Zones); err != nil {
			common.LogError("Custom effect frame write failed: %v", err)
		}

		timer := time.NewTimer(frame.Delay())
		select {
		case cmd := <-m.commands:
			timer.Stop()
			playing, step = m.handle(cmd)
		case <-timer.C:
			step++
			if step >= len(playing.Steps) {
				if playing.Loop {
					step = 0
				} else {
					// The hardware keeps the last frame.
					playing = nil
					step = 0
				}
			}
		case <-m.done:
			timer.Stop()
			return
		}
	}
}

// handle applies a command and returns the new playback state.
func (m *Manager) handle(cmd command) (*CustomEffect, int) {
	if cmd.profile != nil {
		if err := m.dev.applyProfile(*cmd.profile); err != nil {
			common.LogError("Profile apply failed: %v", err)
		}
		return nil, 0
	}
	return cmd.custom, 0
}
