package klog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

func TestSlogAdapterLogsEvent(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slogger := slog.New(handler)

	adapter := NewSlogAdapter(slogger)

	adapter.Log(Event{
		Timestamp:    time.Now(),
		DeviceID:     "dev-1",
		InputKeyCode: keycode.A,
		OutputEvents: []engine.OutEvent{{KeyCode: keycode.B, Kind: engine.Press}},
		LatencyUs:    256,
	})

	output := buf.String()
	if output == "" {
		t.Fatal("no output produced")
	}

	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if logEntry["device_id"] != "dev-1" {
		t.Errorf("device_id: got %v, want %q", logEntry["device_id"], "dev-1")
	}
	if logEntry["latency_us"] != float64(256) {
		t.Errorf("latency_us: got %v, want %v", logEntry["latency_us"], 256)
	}
}

func TestSlogAdapterWarningRaisesLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slogger := slog.New(handler)

	adapter := NewSlogAdapter(slogger)

	adapter.Log(Event{
		Timestamp:    time.Now(),
		DeviceID:     "dev-1",
		InputKeyCode: keycode.A,
		Warning:      "scan code already blocked",
	})

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if logEntry["level"] != "WARN" {
		t.Errorf("level: got %v, want %q", logEntry["level"], "WARN")
	}
	if logEntry["warning"] != "scan code already blocked" {
		t.Errorf("warning: got %v", logEntry["warning"])
	}
}

func TestSlogAdapterInterfaceSatisfaction(t *testing.T) {
	var _ Logger = (*SlogAdapter)(nil)
}
