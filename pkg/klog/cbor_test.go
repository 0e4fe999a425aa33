package klog

import (
	"testing"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp:    ts,
		DeviceID:     "device-001",
		InputKeyCode: keycode.A,
		OutputEvents: []engine.OutEvent{
			{KeyCode: keycode.B, Kind: engine.Press},
			{KeyCode: keycode.B, Kind: engine.Release},
		},
		LatencyUs: 842,
		Warning:   "",
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.DeviceID != original.DeviceID {
		t.Errorf("DeviceID: got %q, want %q", decoded.DeviceID, original.DeviceID)
	}
	if decoded.InputKeyCode != original.InputKeyCode {
		t.Errorf("InputKeyCode: got %v, want %v", decoded.InputKeyCode, original.InputKeyCode)
	}
	if len(decoded.OutputEvents) != 2 {
		t.Fatalf("OutputEvents: got %d, want 2", len(decoded.OutputEvents))
	}
	if decoded.OutputEvents[0].KeyCode != keycode.B || decoded.OutputEvents[0].Kind != engine.Press {
		t.Errorf("OutputEvents[0]: got %+v", decoded.OutputEvents[0])
	}
	if decoded.LatencyUs != original.LatencyUs {
		t.Errorf("LatencyUs: got %d, want %d", decoded.LatencyUs, original.LatencyUs)
	}
}

func TestEventCBOROmitsEmptyOutputEvents(t *testing.T) {
	original := Event{
		Timestamp:    time.Now(),
		DeviceID:     "device-002",
		InputKeyCode: keycode.A,
		LatencyUs:    10,
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var rawMap map[uint64]any
	if err := logDecMode.Unmarshal(data, &rawMap); err != nil {
		t.Fatalf("failed to decode as map: %v", err)
	}
	if _, ok := rawMap[4]; ok {
		t.Error("key 4 (OutputEvents) should be omitted when empty")
	}
	if _, ok := rawMap[6]; ok {
		t.Error("key 6 (Warning) should be omitted when empty")
	}
}

func TestEventCBORWithWarning(t *testing.T) {
	original := Event{
		Timestamp:    time.Now(),
		DeviceID:     "device-003",
		InputKeyCode: keycode.CapsLock,
		LatencyUs:    50,
		Warning:      "scan code outside blocked set",
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.Warning != original.Warning {
		t.Errorf("Warning: got %q, want %q", decoded.Warning, original.Warning)
	}
}

func TestEventCBORUsesIntegerKeys(t *testing.T) {
	event := Event{
		Timestamp:    time.Now(),
		DeviceID:     "device-004",
		InputKeyCode: keycode.A,
		LatencyUs:    1,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var rawMap map[uint64]any
	if err := logDecMode.Unmarshal(data, &rawMap); err != nil {
		t.Fatalf("failed to decode as map: %v", err)
	}

	for _, key := range []uint64{1, 2, 3, 5} {
		if _, ok := rawMap[key]; !ok {
			t.Errorf("expected integer key %d not found in encoded data", key)
		}
	}

	var stringMap map[string]any
	if err := logDecMode.Unmarshal(data, &stringMap); err == nil && len(stringMap) > 0 {
		t.Error("encoded data contains string keys, expected integer keys only")
	}
}
