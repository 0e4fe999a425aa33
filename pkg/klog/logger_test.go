package klog

import (
	"testing"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp:    time.Now(),
		DeviceID:     "dev-1",
		InputKeyCode: keycode.A,
		LatencyUs:    120,
	}

	logger.Log(event)

	event.Warning = "blocked scan code"
	logger.Log(event)
}

func TestLoggerInterfaceSatisfaction(t *testing.T) {
	var _ Logger = NoopLogger{}
	var _ Logger = &NoopLogger{}
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}
