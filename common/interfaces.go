// Package common provides shared constants, types, and utilities
// used across the RGB Manager application.
package common

// KeyEvent is a single raw keyboard event observed by the input layer.
type KeyEvent struct {
	// Code is the platform key code (Linux input event code).
	Code uint16
	// Pressed is true for a key press and false for a release.
	Pressed bool
}

// InputSource is a non-blocking source of raw keyboard events.
// Implementations must never block in TryReadKey; when no event is
// pending they return ok == false and the caller decides how to wait.
type InputSource interface {
	// TryReadKey returns the next pending key event, if any.
	TryReadKey() (event KeyEvent, ok bool)
}

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
}

// Logger defines the interface for leveled logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}
