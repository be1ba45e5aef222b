// Package effect provides the lighting domain for RGB Manager.
// This file contains the raw keyboard event reader backing the
// manager's non-blocking input source.
package effect

import (
	"errors"
	"os"
	"strings"
	"sync"
	"syscall"
	"time"

	evdev "github.com/holoplot/go-evdev"

	"github.com/yllada/rgb-manager/common"
)

// inputReader watches every physical keyboard for key press/release
// events and buffers them for non-blocking consumption. Events are
// dropped when the buffer is full; the hotkey chord only needs the
// modifier edges, not a complete stream.
type inputReader struct {
	devices   []*evdev.InputDevice
	events    chan common.KeyEvent
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// newInputReader opens all non-virtual input devices with key
// capabilities and starts one read goroutine per device.
func newInputReader() (*inputReader, error) {
	devices, err := openKeyDevices()
	if err != nil {
		return nil, err
	}

	r := &inputReader{
		devices: devices,
		events:  make(chan common.KeyEvent, 256),
		done:    make(chan struct{}),
	}

	for _, dev := range devices {
		r.wg.Add(1)
		go r.readLoop(dev)
	}

	return r, nil
}

// TryReadKey returns the next buffered key event without blocking.
func (r *inputReader) TryReadKey() (common.KeyEvent, bool) {
	select {
	case event := <-r.events:
		return event, true
	default:
		return common.KeyEvent{}, false
	}
}

// close stops the read goroutines and releases the devices.
func (r *inputReader) close() {
	r.closeOnce.Do(func() {
		close(r.done)
		for _, dev := range r.devices {
			dev.Close()
		}
		r.wg.Wait()
	})
}

// readLoop pumps key events from a single device into the shared
// buffer. Transient read failures are ignored per poll; the loop
// simply continues.
func (r *inputReader) readLoop(dev *evdev.InputDevice) {
	defer r.wg.Done()

	for {
		select {
		case <-r.done:
			return
		default:
		}

		event, err := dev.ReadOne()
		if err != nil {
			if isClosedError(err) {
				return
			}
			if !r.sleep(common.InputPollBackoff) {
				return
			}
			continue
		}
		if event == nil || event.Type != evdev.EV_KEY {
			continue
		}

		// Value 2 is auto-repeat; only edges matter here.
		if event.Value != 0 && event.Value != 1 {
			continue
		}

		key := common.KeyEvent{
			Code:    uint16(event.Code),
			Pressed: event.Value == 1,
		}
		select {
		case r.events <- key:
		default:
		}
	}
}

// sleep waits for the given duration unless the reader is closed first.
func (r *inputReader) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-r.done:
		return false
	case <-timer.C:
		return true
	}
}

// openKeyDevices opens every readable non-virtual input device that
// exposes key events, in non-blocking mode.
func openKeyDevices() ([]*evdev.InputDevice, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, err
	}

	devices := make([]*evdev.InputDevice, 0, len(paths))
	for _, path := range paths {
		dev, err := evdev.OpenWithFlags(path.Path, os.O_RDONLY)
		if err != nil {
			continue
		}

		name := path.Name
		if actualName, nameErr := dev.Name(); nameErr == nil && actualName != "" {
			name = actualName
		}
		if deviceIsVirtual(dev, name) || len(dev.CapableEvents(evdev.EV_KEY)) == 0 {
			dev.Close()
			continue
		}
		if err := dev.NonBlock(); err != nil {
			dev.Close()
			continue
		}
		devices = append(devices, dev)
	}

	if len(devices) == 0 {
		return nil, errors.New("no readable input devices with key events found")
	}
	return devices, nil
}

// deviceIsVirtual filters out uinput and other synthetic devices so
// injected events cannot feed back into the hotkey chord.
func deviceIsVirtual(dev *evdev.InputDevice, name string) bool {
	if id, err := dev.InputID(); err == nil && id.BusType == uint16(evdev.BUS_VIRTUAL) {
		return true
	}
	lower := strings.ToLower(name)
	return strings.Contains(lower, "virtual") || strings.Contains(lower, "uinput")
}

// isClosedError reports whether a read failed because the device was
// closed underneath the loop.
func isClosedError(err error) bool {
	return errors.Is(err, os.ErrClosed) || errors.Is(err, syscall.EBADF) || errors.Is(err, syscall.ENODEV)
}
