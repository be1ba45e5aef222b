// Package ui provides the graphical user interface for RGB Manager.
// This file contains the global hotkey chord listener.
package ui

import (
	"sync"
	"time"

	evdev "github.com/holoplot/go-evdev"

	"github.com/yllada/rgb-manager/common"
)

// Profile cycle chord: both keys held at once.
const (
	chordKeyA = uint16(evdev.KEY_RIGHTALT)
	chordKeyB = uint16(evdev.KEY_LEFTMETA)
)

// chordTracker detects the cycle chord from a stream of key events.
// It fires once when the second chord key goes down while the other is
// held, and re-arms only after at least one chord key is released.
type chordTracker struct {
	downA bool
	downB bool
	fired bool
}

// observe feeds one key event to the tracker and reports whether the
// chord fired on this event.
func (c *chordTracker) observe(ev common.KeyEvent) bool {
	switch ev.Code {
	case chordKeyA:
		c.downA = ev.Pressed
	case chordKeyB:
		c.downB = ev.Pressed
	default:
		return false
	}

	if c.downA && c.downB {
		if c.fired {
			return false
		}
		c.fired = true
		return true
	}

	c.fired = false
	return false
}

// HotkeyListener watches raw keyboard events for the profile cycle
// chord and posts MessageCycleProfiles to the mailbox when it fires.
// It runs on its own goroutine and never touches GTK; the optional
// wake callback nudges the main loop so the message is seen promptly.
type HotkeyListener struct {
	source  common.InputSource
	mailbox *Mailbox
	wake    func()

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHotkeyListener creates a listener over the given event source.
// wake may be nil.
func NewHotkeyListener(source common.InputSource, mailbox *Mailbox, wake func()) *HotkeyListener {
	return &HotkeyListener{
		source:  source,
		mailbox: mailbox,
		wake:    wake,
		stop:    make(chan struct{}),
	}
}

// Start begins listening. It is a no-op when the event source is
// unavailable; the chord simply does nothing in that session.
func (h *HotkeyListener) Start() {
	if h.source == nil {
		common.LogWarn("Hotkey listener disabled: no input source")
		return
	}

	h.wg.Add(1)
	go h.run()
}

// Stop ends the listener and waits for its goroutine to exit.
func (h *HotkeyListener) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
	h.wg.Wait()
}

// run polls the event source, sleeping with a growing backoff while it
// is idle so a quiet keyboard costs almost no CPU.
func (h *HotkeyListener) run() {
	defer h.wg.Done()

	var tracker chordTracker
	backoff := time.Millisecond

	for {
		select {
		case <-h.stop:
			return
		default:
		}

		ev, ok := h.source.TryReadKey()
		if !ok {
			select {
			case <-h.stop:
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > common.InputPollBackoff {
				backoff = common.InputPollBackoff
			}
			continue
		}
		backoff = time.Millisecond

		if tracker.observe(ev) {
			common.LogDebug("Profile cycle chord detected")
			h.mailbox.Post(MessageCycleProfiles)
			if h.wake != nil {
				h.wake()
			}
		}
	}
}
