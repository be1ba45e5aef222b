// Package ui provides the graphical user interface for RGB Manager.
// This file contains icon generation utilities for the system tray.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/yllada/rgb-manager/common"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	BodyColor   color.RGBA
	BorderColor color.RGBA
	KeyColors   []color.RGBA
}

// DefaultActiveIconConfig returns the config for the normal state:
// a keyboard with the four zone colors.
func DefaultActiveIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		BodyColor:   color.RGBA{40, 44, 52, 255},    // Dark slate
		BorderColor: color.RGBA{120, 126, 138, 255}, // Gray
		KeyColors: []color.RGBA{
			{229, 57, 53, 255},  // Red
			{67, 160, 71, 255},  // Green
			{30, 136, 229, 255}, // Blue
			{253, 216, 53, 255}, // Yellow
		},
	}
}

// DefaultDegradedIconConfig returns the config for the degraded state:
// the same keyboard with unlit gray zones.
func DefaultDegradedIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		BodyColor:   color.RGBA{66, 66, 66, 255},    // Dark gray
		BorderColor: color.RGBA{117, 117, 117, 255}, // Gray
		KeyColors: []color.RGBA{
			{97, 97, 97, 255},
			{97, 97, 97, 255},
			{97, 97, 97, 255},
			{97, 97, 97, 255},
		},
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawBody(img)
	g.drawZones(img)

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// drawBody draws the keyboard outline.
func (g *IconGenerator) drawBody(img *image.RGBA) {
	size := g.config.Size
	top := size / 4
	bottom := size - size/4

	for y := top; y <= bottom; y++ {
		for x := 1; x < size-1; x++ {
			isBorder := y == top || y == bottom || x == 1 || x == size-2
			if isBorder {
				img.Set(x, y, g.config.BorderColor)
			} else {
				img.Set(x, y, g.config.BodyColor)
			}
		}
	}
}

// drawZones draws one lit key block per lighting zone.
func (g *IconGenerator) drawZones(img *image.RGBA) {
	size := g.config.Size
	zones := len(g.config.KeyColors)
	if zones == 0 {
		return
	}

	top := size/4 + 3
	bottom := size - size/4 - 3
	inner := size - 6
	zoneWidth := inner / zones

	for z, c := range g.config.KeyColors {
		x0 := 3 + z*zoneWidth
		x1 := x0 + zoneWidth - 2
		for y := top; y <= bottom; y++ {
			for x := x0; x <= x1; x++ {
				img.Set(x, y, c)
			}
		}
	}
}

// GenerateActiveIcon generates the normal state icon.
func GenerateActiveIcon() []byte {
	gen := NewIconGenerator(DefaultActiveIconConfig())
	return gen.Generate()
}

// GenerateDegradedIcon generates the no-hardware state icon.
func GenerateDegradedIcon() []byte {
	gen := NewIconGenerator(DefaultDegradedIconConfig())
	return gen.Generate()
}
