// Package ui provides the graphical user interface for RGB Manager.
// This file contains the control message mailbox.
package ui

import "sync"

// ControlMessage is a request posted to the main loop from another
// goroutine, such as the tray menu or the hotkey listener.
type ControlMessage int

const (
	// MessageShowWindow asks the main loop to present the main window.
	MessageShowWindow ControlMessage = iota
	// MessageCycleProfiles asks the main loop to activate the next profile.
	MessageCycleProfiles
	// MessageQuit asks the main loop to begin an orderly shutdown.
	MessageQuit
)

// String returns a human-readable message name.
func (m ControlMessage) String() string {
	switch m {
	case MessageShowWindow:
		return "ShowWindow"
	case MessageCycleProfiles:
		return "CycleProfiles"
	case MessageQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Mailbox is an unbounded FIFO queue of control messages. Any number
// of goroutines may Post; only the main loop receives. Post never
// blocks, so producers like the hotkey listener can run at input speed
// regardless of how busy the UI is.
type Mailbox struct {
	mu      sync.Mutex
	pending []ControlMessage
	closed  bool
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Post appends a message to the queue. Messages posted after Close are
// discarded; producers may outlive the main loop during shutdown.
func (m *Mailbox) Post(msg ControlMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.pending = append(m.pending, msg)
}

// TryReceive removes and returns the oldest pending message. It never
// blocks; ok is false when the queue is empty.
func (m *Mailbox) TryReceive() (msg ControlMessage, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) == 0 {
		return 0, false
	}

	msg = m.pending[0]
	m.pending = m.pending[1:]
	return msg, true
}

// Len returns the number of pending messages.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Close discards pending messages and drops everything posted later.
func (m *Mailbox) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.pending = nil
}
