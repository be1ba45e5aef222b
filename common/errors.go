// Package common provides shared constants, types, and utilities
// used across the RGB Manager application.
package common

import "errors"

// Sentinel errors for lighting operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Backend errors.
	ErrManagerUnavailable = errors.New("effect backend unavailable")
	ErrNoDevice           = errors.New("no supported keyboard device found")

	// Custom effect errors.
	ErrEffectBusy     = errors.New("a custom effect is already queued or playing")
	ErrEmptyEffect    = errors.New("custom effect has no steps")
	ErrInvalidEffect  = errors.New("invalid custom effect file")
	ErrNothingQueued  = errors.New("no custom effect queued")
	ErrNothingPlaying = errors.New("no custom effect playing")

	// Profile errors.
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile data")

	// Settings errors.
	ErrSettingsSave = errors.New("failed to save settings")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
