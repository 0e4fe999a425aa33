package klog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes event records to an slog.Logger — development-time
// console visibility, distinct from the binary FileLogger sink.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter builds an adapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("device_id", event.DeviceID),
		slog.String("input", event.InputKeyCode.String()),
		slog.Uint64("latency_us", uint64(event.LatencyUs)),
	}
	if len(event.OutputEvents) > 0 {
		outs := make([]string, len(event.OutputEvents))
		for i, oe := range event.OutputEvents {
			outs[i] = oe.KeyCode.String() + ":" + oe.Kind.String()
		}
		attrs = append(attrs, slog.Any("outputs", outs))
	}
	if event.Warning != "" {
		attrs = append(attrs, slog.String("warning", event.Warning))
	}

	level := slog.LevelDebug
	if event.Warning != "" {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "keyrx event", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
