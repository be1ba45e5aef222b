package ui

import (
	"sync"
	"testing"
	"time"

	"github.com/yllada/rgb-manager/common"
)

func press(code uint16) common.KeyEvent   { return common.KeyEvent{Code: code, Pressed: true} }
func release(code uint16) common.KeyEvent { return common.KeyEvent{Code: code, Pressed: false} }

func TestChordTracker_FiresOncePerHold(t *testing.T) {
	var tracker chordTracker

	if tracker.observe(press(chordKeyA)) {
		t.Error("first chord key alone should not fire")
	}
	if !tracker.observe(press(chordKeyB)) {
		t.Error("completing the chord should fire")
	}
	if tracker.observe(press(chordKeyB)) {
		t.Error("holding the chord should not fire again")
	}

	// Releasing one key re-arms the chord.
	if tracker.observe(release(chordKeyB)) {
		t.Error("release should not fire")
	}
	if !tracker.observe(press(chordKeyB)) {
		t.Error("re-pressing after release should fire again")
	}
}

func TestChordTracker_OrderIndependent(t *testing.T) {
	var tracker chordTracker

	tracker.observe(press(chordKeyB))
	if !tracker.observe(press(chordKeyA)) {
		t.Error("chord should fire regardless of key order")
	}
}

func TestChordTracker_IgnoresOtherKeys(t *testing.T) {
	var tracker chordTracker

	tracker.observe(press(chordKeyA))
	if tracker.observe(press(30)) { // KEY_A
		t.Error("unrelated key should not fire")
	}
	if tracker.observe(release(30)) {
		t.Error("unrelated release should not fire")
	}
	if !tracker.observe(press(chordKeyB)) {
		t.Error("chord should still fire with unrelated keys interleaved")
	}
}

// scriptedSource replays a fixed event sequence, then reports empty.
type scriptedSource struct {
	mu     sync.Mutex
	events []common.KeyEvent
}

func (s *scriptedSource) TryReadKey() (common.KeyEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		return common.KeyEvent{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func TestHotkeyListener_PostsCycleMessage(t *testing.T) {
	source := &scriptedSource{events: []common.KeyEvent{
		press(chordKeyA),
		press(chordKeyB),
		release(chordKeyB),
		release(chordKeyA),
	}}
	mailbox := NewMailbox()

	woke := make(chan struct{}, 1)
	listener := NewHotkeyListener(source, mailbox, func() {
		select {
		case woke <- struct{}{}:
		default:
		}
	})
	listener.Start()
	defer listener.Stop()

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not fire within timeout")
	}

	msg, ok := mailbox.TryReceive()
	if !ok {
		t.Fatal("no message posted")
	}
	if msg != MessageCycleProfiles {
		t.Errorf("message = %v, want CycleProfiles", msg)
	}
	if _, ok := mailbox.TryReceive(); ok {
		t.Error("one chord hold should post exactly one message")
	}
}

func TestHotkeyListener_NilSource(t *testing.T) {
	listener := NewHotkeyListener(nil, NewMailbox(), nil)

	// Start must be a no-op and Stop must not hang.
	listener.Start()
	listener.Stop()
}

func TestHotkeyListener_StopTerminates(t *testing.T) {
	listener := NewHotkeyListener(&scriptedSource{}, NewMailbox(), nil)
	listener.Start()

	done := make(chan struct{})
	go func() {
		listener.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not terminate the listener")
	}
}
