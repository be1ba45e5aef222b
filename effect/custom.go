// Package effect provides the lighting domain for RGB Manager.
// This file contains the user-supplied custom effect format.
package effect

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yllada/rgb-manager/common"
)

// EffectStep is a single frame of a custom effect animation.
type EffectStep struct {
	// Zones holds the per-zone colors shown during this step.
	Zones [common.ZoneCount]Zone `yaml:"zones"`
	// DelayMS is how long the step is held, in milliseconds.
	DelayMS int `yaml:"delay_ms"`
}

// Delay returns the hold time of the step.
func (s EffectStep) Delay() time.Duration {
	return time.Duration(s.DelayMS) * time.Millisecond
}

// CustomEffect is a user-supplied stepped animation that bypasses the
// built-in effect catalog. It plays until stopped or replaced.
type CustomEffect struct {
	// Name is an optional display name for the effect.
	Name string `yaml:"name,omitempty"`
	// Loop restarts the animation from the first step after the last.
	Loop bool `yaml:"loop"`
	// Steps are the animation frames, played in order.
	Steps []EffectStep `yaml:"steps"`
}

// LoadCustomEffect reads and validates a custom effect file.
func LoadCustomEffect(path string) (*CustomEffect, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open effect file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var custom CustomEffect
	if err := decoder.Decode(&custom); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidEffect, err)
	}

	if err := custom.Validate(); err != nil {
		return nil, err
	}

	return &custom, nil
}

// Validate verifies that the effect can be played.
func (e *CustomEffect) Validate() error {
	if len(e.Steps) == 0 {
		return common.ErrEmptyEffect
	}
	for i, step := range e.Steps {
		if step.DelayMS < 0 {
			return fmt.Errorf("%w: step %d has negative delay", common.ErrInvalidEffect, i)
		}
	}
	return nil
}

// Duration returns the playback time of a single pass over the steps.
func (e *CustomEffect) Duration() time.Duration {
	var total time.Duration
	for _, step := range e.Steps {
		total += step.Delay()
	}
	return total
}
