package klog

import (
	"testing"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

type mockLogger struct {
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.events = append(m.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	mock1 := &mockLogger{}
	mock2 := &mockLogger{}
	mock3 := &mockLogger{}

	multi := NewMultiLogger(mock1, mock2, mock3)

	event := Event{
		Timestamp:    time.Now(),
		DeviceID:     "dev-1",
		InputKeyCode: keycode.A,
	}

	multi.Log(event)

	for i, mock := range []*mockLogger{mock1, mock2, mock3} {
		if len(mock.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(mock.events))
			continue
		}
		if mock.events[0].DeviceID != "dev-1" {
			t.Errorf("logger %d: DeviceID = %q, want %q", i, mock.events[0].DeviceID, "dev-1")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()

	// Should not panic with an empty logger list.
	multi.Log(Event{Timestamp: time.Now(), DeviceID: "dev-1", InputKeyCode: keycode.A})
}

func TestMultiLoggerSingleLogger(t *testing.T) {
	mock := &mockLogger{}
	multi := NewMultiLogger(mock)

	event := Event{
		Timestamp:    time.Now(),
		DeviceID:     "dev-2",
		InputKeyCode: keycode.B,
	}

	multi.Log(event)

	if len(mock.events) != 1 {
		t.Fatalf("got %d events, want 1", len(mock.events))
	}
	if mock.events[0].DeviceID != "dev-2" {
		t.Errorf("DeviceID = %q, want %q", mock.events[0].DeviceID, "dev-2")
	}
}

func TestMultiLoggerInterfaceSatisfaction(t *testing.T) {
	var _ Logger = (*MultiLogger)(nil)
}
