package engine

import "github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"

// EventKind discriminates a key press from a key release.
type EventKind uint8

const (
	Press EventKind = iota
	Release
)

func (k EventKind) String() string {
	if k == Release {
		return "Release"
	}
	return "Press"
}

// InputEvent is one physical key transition delivered by the platform
// input adapter.
type InputEvent struct {
	KeyCode     keycode.KeyCode
	Kind        EventKind
	TimestampUs uint64
	DeviceID    string
}

// OutEvent is one output key transition the engine wants injected through
// the platform output adapter.
type OutEvent struct {
	KeyCode keycode.KeyCode
	Kind    EventKind
}
