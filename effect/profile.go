// Package effect provides the lighting domain for RGB Manager.
// This file contains the Profile type and the built-in effect catalog.
package effect

import (
	"errors"
	"fmt"

	"github.com/yllada/rgb-manager/common"
)

// Effects identifies a built-in lighting effect.
type Effects string

// Built-in effect catalog.
const (
	EffectStatic       Effects = "Static"
	EffectBreath       Effects = "Breath"
	EffectSmooth       Effects = "Smooth"
	EffectWave         Effects = "Wave"
	EffectLightning    Effects = "Lightning"
	EffectAmbientLight Effects = "AmbientLight"
	EffectSmoothWave   Effects = "SmoothWave"
	EffectSwipe        Effects = "Swipe"
	EffectDisco        Effects = "Disco"
	EffectChristmas    Effects = "Christmas"
	EffectFade         Effects = "Fade"
	EffectTemperature  Effects = "Temperature"
	EffectRipple       Effects = "Ripple"
)

// AllEffects returns the catalog in display order.
func AllEffects() []Effects {
	return []Effects{
		EffectStatic,
		EffectBreath,
		EffectSmooth,
		EffectWave,
		EffectLightning,
		EffectAmbientLight,
		EffectSmoothWave,
		EffectSwipe,
		EffectDisco,
		EffectChristmas,
		EffectFade,
		EffectTemperature,
		EffectRipple,
	}
}

// String returns the display name of the effect.
func (e Effects) String() string {
	return string(e)
}

// IsValid reports whether the effect is part of the catalog.
func (e Effects) IsValid() bool {
	for _, known := range AllEffects() {
		if e == known {
			return true
		}
	}
	return false
}

// TakesColorArray reports whether the effect uses the per-zone colors.
// The zone color controls are disabled for effects that generate their
// own colors.
func (e Effects) TakesColorArray() bool {
	switch e {
	case EffectStatic, EffectBreath, EffectSwipe, EffectFade, EffectRipple:
		return true
	default:
		return false
	}
}

// TakesSpeed reports whether the effect animates and honors the speed
// setting.
func (e Effects) TakesSpeed() bool {
	switch e {
	case EffectStatic, EffectAmbientLight, EffectTemperature:
		return false
	default:
		return true
	}
}

// TakesDirection reports whether the effect honors the direction setting.
func (e Effects) TakesDirection() bool {
	switch e {
	case EffectWave, EffectSmoothWave, EffectSwipe:
		return true
	default:
		return false
	}
}

// Direction of a moving effect.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Zone holds the color of a single lighting zone.
type Zone struct {
	// RGB is the zone color as red, green, blue channel values.
	RGB [3]uint8 `json:"rgb" yaml:"rgb"`
}

// Profile represents a named lighting configuration.
// Profiles are identified by name when cycling; the ID exists for
// stable references from UI rows and tray menu entries.
type Profile struct {
	// ID is a unique identifier for the profile (UUID format).
	ID string `json:"id" yaml:"id"`
	// Name is a human-readable name for the profile.
	Name string `json:"name" yaml:"name"`
	// Zones holds the per-zone colors, left to right.
	Zones [common.ZoneCount]Zone `json:"zones" yaml:"zones"`
	// Effect is the selected built-in effect.
	Effect Effects `json:"effect" yaml:"effect"`
	// Speed is the animation speed, 1 (slow) to 4 (fast).
	Speed int `json:"speed" yaml:"speed"`
	// Brightness is the backlight brightness, 1 (low) or 2 (high).
	Brightness int `json:"brightness" yaml:"brightness"`
	// Direction is the movement direction for directional effects.
	Direction Direction `json:"direction" yaml:"direction"`
}

// DefaultProfile returns the profile used when no saved state exists.
func DefaultProfile() Profile {
	p := Profile{
		ID:         common.GenerateID(),
		Name:       "Default",
		Effect:     EffectStatic,
		Speed:      1,
		Brightness: 2,
		Direction:  DirectionRight,
	}
	p.SetAllZones([3]uint8{255, 255, 255})
	return p
}

// Validate checks if the profile has all required fields.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile name is required")
	}
	if !p.Effect.IsValid() {
		return fmt.Errorf("%w: unknown effect %q", common.ErrInvalidProfile, p.Effect)
	}
	return nil
}

// Sanitize clamps out-of-range fields to valid values so a profile
// loaded from an edited settings file cannot reach the hardware layer
// malformed.
func (p *Profile) Sanitize() {
	if p.ID == "" {
		p.ID = common.GenerateID()
	}
	if !p.Effect.IsValid() {
		p.Effect = EffectStatic
	}
	if p.Direction != DirectionLeft && p.Direction != DirectionRight {
		p.Direction = DirectionRight
	}
	p.Speed = common.Clamp(p.Speed, 1, 4)
	p.Brightness = common.Clamp(p.Brightness, 1, 2)
}

// SetAllZones applies a single color to every zone.
func (p *Profile) SetAllZones(rgb [3]uint8) {
	for i := range p.Zones {
		p.Zones[i].RGB = rgb
	}
}
