// Package effect provides the lighting domain for RGB Manager.
// This file contains the custom-effect lifecycle state machine.
package effect

import "github.com/yllada/rgb-manager/common"

// EffectState is the lifecycle state of the custom-effect slot.
type EffectState int

const (
	// StateNone means no custom effect is queued or playing.
	StateNone EffectState = iota
	// StateQueued means a custom effect is waiting to be committed.
	StateQueued
	// StatePlaying means a custom effect has been handed to the backend.
	StatePlaying
)

// String returns a human-readable state name.
func (s EffectState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateQueued:
		return "Queued"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// CustomEffectSlot tracks the lifecycle of a user-submitted custom
// effect. Valid transitions are None → Queued → Playing → None only;
// the slot owns the queued effect until Commit moves it out, so the
// same effect can never be forwarded twice.
//
// The slot is owned by the UI thread and is not safe for concurrent use.
type CustomEffectSlot struct {
	state  EffectState
	queued *CustomEffect
}

// State returns the current lifecycle state.
func (s *CustomEffectSlot) State() EffectState {
	return s.state
}

// IsNone reports whether no custom effect is queued or playing.
func (s *CustomEffectSlot) IsNone() bool {
	return s.state == StateNone
}

// IsQueued reports whether a custom effect is waiting to be committed.
func (s *CustomEffectSlot) IsQueued() bool {
	return s.state == StateQueued
}

// IsPlaying reports whether a custom effect is playing.
func (s *CustomEffectSlot) IsPlaying() bool {
	return s.state == StatePlaying
}

// Queue stores a custom effect for the next commit. Only valid while
// the slot is empty; the UI disables the triggering control otherwise.
func (s *CustomEffectSlot) Queue(e *CustomEffect) error {
	if s.state != StateNone {
		return common.ErrEffectBusy
	}
	s.state = StateQueued
	s.queued = e
	return nil
}

// Commit moves the queued effect out of the slot and transitions to
// Playing. The returned effect is the caller's to forward; the slot no
// longer references it.
func (s *CustomEffectSlot) Commit() (*CustomEffect, error) {
	if s.state != StateQueued {
		return nil, common.ErrNothingQueued
	}
	e := s.queued
	s.queued = nil
	s.state = StatePlaying
	return e, nil
}

// Stop ends a playing effect, returning the slot to empty.
func (s *CustomEffectSlot) Stop() error {
	if s.state != StatePlaying {
		return common.ErrNothingPlaying
	}
	s.state = StateNone
	return nil
}

// Clear empties the slot from any state, discarding a queued effect.
// Used when the user selects a built-in effect or edits a zone color.
func (s *CustomEffectSlot) Clear() {
	s.state = StateNone
	s.queued = nil
}
