package klog

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.klog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, reader *Reader) []Event {
	t.Helper()
	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
	return read
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), DeviceID: "dev-1", InputKeyCode: keycode.A},
		{Timestamp: time.Now(), DeviceID: "dev-2", InputKeyCode: keycode.B},
		{Timestamp: time.Now(), DeviceID: "dev-3", InputKeyCode: keycode.C},
	}

	path := createTestLogFile(t, events)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].DeviceID != "dev-1" {
		t.Errorf("first event DeviceID = %q, want %q", read[0].DeviceID, "dev-1")
	}
	if read[2].DeviceID != "dev-3" {
		t.Errorf("last event DeviceID = %q, want %q", read[2].DeviceID, "dev-3")
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderFilterByDeviceID(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), DeviceID: "dev-A", InputKeyCode: keycode.A},
		{Timestamp: time.Now(), DeviceID: "dev-B", InputKeyCode: keycode.B},
		{Timestamp: time.Now(), DeviceID: "dev-A", InputKeyCode: keycode.C},
		{Timestamp: time.Now(), DeviceID: "dev-C", InputKeyCode: keycode.D},
	}

	path := createTestLogFile(t, events)

	reader, err := NewFilteredReader(path, Filter{DeviceID: "dev-A"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	for _, e := range read {
		if e.DeviceID != "dev-A" {
			t.Errorf("event has DeviceID=%q, want %q", e.DeviceID, "dev-A")
		}
	}
}

func TestReaderFilterByInputKeyCode(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), DeviceID: "dev-1", InputKeyCode: keycode.A},
		{Timestamp: time.Now(), DeviceID: "dev-1", InputKeyCode: keycode.B},
		{Timestamp: time.Now(), DeviceID: "dev-1", InputKeyCode: keycode.A},
	}

	path := createTestLogFile(t, events)

	kc := keycode.A
	reader, err := NewFilteredReader(path, Filter{InputKeyCode: &kc})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
}

func TestReaderFilterByTimeRange(t *testing.T) {
	baseTime := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)

	events := []Event{
		{Timestamp: baseTime.Add(-1 * time.Hour), DeviceID: "dev-1", InputKeyCode: keycode.A},
		{Timestamp: baseTime, DeviceID: "dev-2", InputKeyCode: keycode.B},
		{Timestamp: baseTime.Add(30 * time.Minute), DeviceID: "dev-3", InputKeyCode: keycode.C},
		{Timestamp: baseTime.Add(2 * time.Hour), DeviceID: "dev-4", InputKeyCode: keycode.D},
	}

	path := createTestLogFile(t, events)

	start := baseTime.Add(-5 * time.Minute)
	end := baseTime.Add(1 * time.Hour)
	reader, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	if read[0].DeviceID != "dev-2" || read[1].DeviceID != "dev-3" {
		t.Errorf("got devices %q, %q, want dev-2, dev-3", read[0].DeviceID, read[1].DeviceID)
	}
}

func TestReaderFilterWarningsOnly(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), DeviceID: "dev-1", InputKeyCode: keycode.A},
		{Timestamp: time.Now(), DeviceID: "dev-1", InputKeyCode: keycode.B, Warning: "dropped"},
		{Timestamp: time.Now(), DeviceID: "dev-1", InputKeyCode: keycode.C},
	}

	path := createTestLogFile(t, events)

	reader, err := NewFilteredReader(path, Filter{WarningsOnly: true})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 1 {
		t.Fatalf("got %d events, want 1", len(read))
	}
	if read[0].Warning != "dropped" {
		t.Errorf("Warning: got %q, want %q", read[0].Warning, "dropped")
	}
}

func TestReaderCombinedFilters(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), DeviceID: "dev-A", InputKeyCode: keycode.A},
		{Timestamp: time.Now(), DeviceID: "dev-A", InputKeyCode: keycode.B},
		{Timestamp: time.Now(), DeviceID: "dev-B", InputKeyCode: keycode.A},
		{Timestamp: time.Now(), DeviceID: "dev-A", InputKeyCode: keycode.A},
	}

	path := createTestLogFile(t, events)

	kc := keycode.A
	reader, err := NewFilteredReader(path, Filter{DeviceID: "dev-A", InputKeyCode: &kc})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
}
