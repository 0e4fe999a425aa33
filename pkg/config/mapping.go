package config

import "github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"

// BaseKeyMappingKind discriminates the tagged BaseKeyMapping variants.
type BaseKeyMappingKind uint8

const (
	MappingSimple BaseKeyMappingKind = iota
	MappingModifier
	MappingLock
	MappingTapHold
	MappingModifiedOutput
)

// HoldKind discriminates the two TapHold hold targets.
type HoldKind uint8

const (
	HoldModifier HoldKind = iota
	HoldKey
)

// BaseKeyMapping is one unconditional mapping rule. Only the fields
// relevant to Kind are populated; this flattened shape (rather than a Go
// interface per variant) is what carries directly through the CBOR codec
// and the lookup-table builder without a type switch at decode time.
type BaseKeyMapping struct {
	Kind BaseKeyMappingKind `cbor:"1,keyasint"`
	From keycode.KeyCode    `cbor:"2,keyasint"`

	// Simple, ModifiedOutput
	To keycode.KeyCode `cbor:"3,keyasint,omitempty"`

	// Modifier
	ModifierID ModifierID `cbor:"4,keyasint,omitempty"`

	// Lock
	LockID LockID `cbor:"5,keyasint,omitempty"`

	// TapHold
	Tap         keycode.KeyCode `cbor:"6,keyasint,omitempty"`
	HoldKind    HoldKind        `cbor:"7,keyasint,omitempty"`
	HoldModID   ModifierID      `cbor:"8,keyasint,omitempty"`
	HoldKey     keycode.KeyCode `cbor:"9,keyasint,omitempty"`
	ThresholdMs uint16          `cbor:"10,keyasint,omitempty"`

	// ModifiedOutput
	PhysicalMods []keycode.KeyCode `cbor:"11,keyasint,omitempty"`
}

// Simple builds a one-to-one substitution mapping.
func Simple(from, to keycode.KeyCode) BaseKeyMapping {
	return BaseKeyMapping{Kind: MappingSimple, From: from, To: to}
}

// Modifier builds a mapping that activates id while from is held.
func Modifier(from keycode.KeyCode, id ModifierID) BaseKeyMapping {
	return BaseKeyMapping{Kind: MappingModifier, From: from, ModifierID: id}
}

// Lock builds a mapping that toggles id on each press of from.
func Lock(from keycode.KeyCode, id LockID) BaseKeyMapping {
	return BaseKeyMapping{Kind: MappingLock, From: from, LockID: id}
}

// TapHoldModifier builds a tap/hold mapping whose hold side activates a
// custom modifier.
func TapHoldModifier(from, tap keycode.KeyCode, hold ModifierID, thresholdMs uint16) BaseKeyMapping {
	return BaseKeyMapping{
		Kind: MappingTapHold, From: from, Tap: tap,
		HoldKind: HoldModifier, HoldModID: hold, ThresholdMs: thresholdMs,
	}
}

// TapHoldKey builds a tap/hold mapping whose hold side emits a key press.
func TapHoldKey(from, tap, hold keycode.KeyCode, thresholdMs uint16) BaseKeyMapping {
	return BaseKeyMapping{
		Kind: MappingTapHold, From: from, Tap: tap,
		HoldKind: HoldKey, HoldKey: hold, ThresholdMs: thresholdMs,
	}
}

// ModifiedOutput builds a mapping that synthesizes physicalMods around to.
func ModifiedOutput(from, to keycode.KeyCode, physicalMods ...keycode.KeyCode) BaseKeyMapping {
	return BaseKeyMapping{Kind: MappingModifiedOutput, From: from, To: to, PhysicalMods: physicalMods}
}

// KeyMapping is either an unconditional BaseKeyMapping or a Conditional
// block of BaseKeyMappings gated by a single (non-nested) Condition.
type KeyMapping struct {
	// Conditional is nil for an unconditional (Base) mapping.
	Condition *Condition       `cbor:"1,keyasint,omitempty"`
	Base      BaseKeyMapping   `cbor:"2,keyasint,omitempty"`
	Mappings  []BaseKeyMapping `cbor:"3,keyasint,omitempty"`
}

// Base wraps an unconditional mapping.
func Base(m BaseKeyMapping) KeyMapping {
	return KeyMapping{Base: m}
}

// Conditional wraps a block of mappings gated by cond.
func Conditional(cond Condition, mappings ...BaseKeyMapping) KeyMapping {
	return KeyMapping{Condition: &cond, Mappings: mappings}
}

// IsConditional reports whether m is a Conditional block rather than a bare
// Base mapping.
func (m KeyMapping) IsConditional() bool { return m.Condition != nil }
