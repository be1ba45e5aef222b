// Package effect provides the lighting domain for RGB Manager.
// This file contains the hidraw writer for the 4-zone keyboard
// backlight controller.
package effect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yllada/rgb-manager/common"
)

// Supported backlight controllers (ITE vendor ID as it appears in the
// hidraw uevent HID_ID line).
const (
	hidVendorITE = "048D"
)

var supportedProducts = []string{"C935", "C955", "C965", "C975", "C985"}

// device is an open handle to the keyboard backlight controller.
type device struct {
	file *os.File
	path string
}

// openDevice scans the hidraw class devices for a supported backlight
// controller and opens it for writing.
func openDevice() (*device, error) {
	entries, err := filepath.Glob("/sys/class/hidraw/hidraw*")
	if err != nil || len(entries) == 0 {
		return nil, common.ErrNoDevice
	}

	for _, entry := range entries {
		uevent, err := os.ReadFile(filepath.Join(entry, "device", "uevent"))
		if err != nil {
			continue
		}
		if !ueventMatches(string(uevent)) {
			continue
		}

		devPath := filepath.Join("/dev", filepath.Base(entry))
		file, err := os.OpenFile(devPath, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("found controller at %s but cannot open it: %w", devPath, err)
		}

		common.LogInfo("Using backlight controller at %s", devPath)
		return &device{file: file, path: devPath}, nil
	}

	return nil, common.ErrNoDevice
}

// ueventMatches reports whether a hidraw uevent belongs to a supported
// controller.
func ueventMatches(uevent string) bool {
	for _, line := range strings.Split(uevent, "\n") {
		if !strings.HasPrefix(line, "HID_ID=") {
			continue
		}
		id := strings.ToUpper(line)
		if !strings.Contains(id, "0000"+hidVendorITE) {
			return false
		}
		for _, product := range supportedProducts {
			if strings.Contains(id, "0000"+product) {
				return true
			}
		}
	}
	return false
}

// effectCode maps a built-in effect to its wire identifier.
func effectCode(e Effects) byte {
	codes := map[Effects]byte{
		EffectStatic:       0x01,
		EffectBreath:       0x03,
		EffectSmooth:       0x06,
		EffectWave:         0x04,
		EffectLightning:    0x05,
		EffectAmbientLight: 0x07,
		EffectSmoothWave:   0x08,
		EffectSwipe:        0x09,
		EffectDisco:        0x0A,
		EffectChristmas:    0x0B,
		EffectFade:         0x0C,
		EffectTemperature:  0x0D,
		EffectRipple:       0x0E,
	}
	if code, ok := codes[e]; ok {
		return code
	}
	return 0x01
}

// applyProfile writes the full control packet for a profile.
func (d *device) applyProfile(p Profile) error {
	return d.writePacket(effectCode(p.Effect), byte(p.Speed), byte(p.Brightness), p.Direction, p.Zones)
}

// applyZones writes a static frame with the given zone colors, used
// for custom effect playback.
func (d *device) applyZones(zones [common.ZoneCount]Zone) error {
	return d.writePacket(effectCode(EffectStatic), 1, 2, DirectionRight, zones)
}

// writePacket builds and writes the 33-byte control report.
func (d *device) writePacket(code, speed, brightness byte, dir Direction, zones [common.ZoneCount]Zone) error {
	packet := make([]byte, 33)
	packet[0] = 0xCC
	packet[1] = 0x16
	packet[2] = code
	packet[3] = speed
	packet[4] = brightness

	for i, zone := range zones {
		offset := 5 + i*3
		packet[offset] = zone.RGB[0]
		packet[offset+1] = zone.RGB[1]
		packet[offset+2] = zone.RGB[2]
	}

	if dir == DirectionLeft {
		packet[19] = 0x01
	} else {
		packet[19] = 0x02
	}

	if _, err := d.file.Write(packet); err != nil {
		return fmt.Errorf("failed to write control packet: %w", err)
	}
	return nil
}

// close releases the controller handle.
func (d *device) close() error {
	return d.file.Close()
}
