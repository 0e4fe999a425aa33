package engine

import (
	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// decisionKind tags what press-time outcome a pressed_sources entry
// records, so Release can mirror it exactly.
type decisionKind uint8

const (
	decisionPassthrough decisionKind = iota
	decisionSimple
	decisionModifier
	decisionLock
	decisionTapHold
	decisionModifiedOutput
)

// decision is what Machine remembers per held input key, so that Release
// can undo exactly what Press did.
type decision struct {
	kind decisionKind

	// decisionSimple / decisionPassthrough
	outKey keycode.KeyCode

	// decisionModifier
	modifierID config.ModifierID

	// decisionLock
	lockID config.LockID

	// decisionTapHold
	pending *pendingEntry

	// decisionModifiedOutput
	outTo           keycode.KeyCode
	synthesizedMods []keycode.KeyCode // only the mods this press actually synthesized, press order
}

// tapHoldPhase is the resolution state of one pending tap/hold entry.
type tapHoldPhase uint8

const (
	phasePending tapHoldPhase = iota
	phaseTapped
	phaseHeld
)

// pendingEntry tracks one in-flight tap/hold disambiguation.
type pendingEntry struct {
	from        keycode.KeyCode
	pressedAtUs uint64
	thresholdUs uint64
	phase       tapHoldPhase
	mapping     config.BaseKeyMapping
}
