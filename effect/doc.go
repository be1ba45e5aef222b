// Package effect provides the lighting domain for RGB Manager.
//
// It contains the profile and effect data model, the custom-effect
// state machine, and the effect manager that drives the keyboard
// backlight hardware:
//
//   - Profile: a named per-zone color configuration with a built-in effect
//   - Effects: the catalog of built-in lighting effects
//   - CustomEffect: a user-supplied stepped animation loaded from a file
//   - CustomEffectSlot: the None/Queued/Playing lifecycle of a custom effect
//   - Manager: the hardware facade with fire-and-forget apply operations
//     and a non-blocking raw keyboard event source
//
// # Thread Safety
//
// Manager methods are safe to call from any goroutine; commands are
// handed to a dedicated worker. CustomEffectSlot and Profile are owned
// by the UI thread and need no synchronization.
package effect
