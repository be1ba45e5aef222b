package ui

import (
	"sync"
	"testing"
)

func TestMailbox_FIFO(t *testing.T) {
	mb := NewMailbox()

	mb.Post(MessageShowWindow)
	mb.Post(MessageCycleProfiles)
	mb.Post(MessageQuit)

	expected := []ControlMessage{MessageShowWindow, MessageCycleProfiles, MessageQuit}
	for i, want := range expected {
		msg, ok := mb.TryReceive()
		if !ok {
			t.Fatalf("message %d missing", i)
		}
		if msg != want {
			t.Errorf("message %d = %v, want %v", i, msg, want)
		}
	}

	if _, ok := mb.TryReceive(); ok {
		t.Error("drained mailbox should be empty")
	}
}

func TestMailbox_TryReceiveEmpty(t *testing.T) {
	mb := NewMailbox()

	if _, ok := mb.TryReceive(); ok {
		t.Error("empty mailbox should report ok == false")
	}
}

func TestMailbox_PostAfterClose(t *testing.T) {
	mb := NewMailbox()

	mb.Post(MessageShowWindow)
	mb.Close()
	mb.Post(MessageQuit)

	if _, ok := mb.TryReceive(); ok {
		t.Error("closed mailbox should discard all messages")
	}
	if mb.Len() != 0 {
		t.Errorf("Len() = %d, want 0", mb.Len())
	}
}

func TestMailbox_ConcurrentProducers(t *testing.T) {
	mb := NewMailbox()

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				mb.Post(MessageCycleProfiles)
			}
		}()
	}
	wg.Wait()

	if mb.Len() != producers*perProducer {
		t.Errorf("Len() = %d, want %d", mb.Len(), producers*perProducer)
	}

	count := 0
	for {
		if _, ok := mb.TryReceive(); !ok {
			break
		}
		count++
	}
	if count != producers*perProducer {
		t.Errorf("received %d messages, want %d", count, producers*perProducer)
	}
}

func TestControlMessage_String(t *testing.T) {
	tests := []struct {
		msg      ControlMessage
		expected string
	}{
		{MessageShowWindow, "ShowWindow"},
		{MessageCycleProfiles, "CycleProfiles"},
		{MessageQuit, "Quit"},
		{ControlMessage(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.msg.String(); got != tt.expected {
			t.Errorf("String() = %v, want %v", got, tt.expected)
		}
	}
}
