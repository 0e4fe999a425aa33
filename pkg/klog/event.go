package klog

import (
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// Event is one processed input event, captured for SubscribeEvents and for
// the file/console log sinks. CBOR encoding uses integer keys for
// compactness.
type Event struct {
	Timestamp    time.Time        `cbor:"1,keyasint"`
	DeviceID     string           `cbor:"2,keyasint"`
	InputKeyCode keycode.KeyCode  `cbor:"3,keyasint"`
	OutputEvents []engine.OutEvent `cbor:"4,keyasint,omitempty"`
	LatencyUs    uint32           `cbor:"5,keyasint"`
	// Warning carries a non-fatal diagnostic (e.g. an output event that
	// could not be injected, such as a keycode with no scan code). Empty
	// for ordinary events.
	Warning string `cbor:"6,keyasint,omitempty"`
}
