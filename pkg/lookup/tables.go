// Package lookup derives per-device O(1) keycode lookup tables from a
// config.DeviceConfig: one base table plus an ordered list of conditional
// overlays, consulted first-match-wins at event time.
package lookup

import (
	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// OverlayState is the subset of engine state a Condition needs to evaluate:
// which custom modifiers/locks are currently active, and the active
// device's identity string (for DeviceMatches).
type OverlayState interface {
	ModifierActive(id config.ModifierID) bool
	LockActive(id config.LockID) bool
	DeviceIdentity() string
}

type overlay struct {
	condition config.Condition
	table     map[keycode.KeyCode]config.BaseKeyMapping
}

// Tables is the derived lookup structure for one matched physical device.
// Immutable once built; safe for concurrent reads from multiple goroutines.
type Tables struct {
	base     map[keycode.KeyCode]config.BaseKeyMapping
	overlays []overlay
}

// Build derives Tables from dc. Mapping order within each scope is
// preserved only insofar as later duplicate "from" keys overwrite earlier
// ones in the same scope; config.Validate rejects that case before this
// ever runs, so in practice every entry is unique per scope.
func Build(dc config.DeviceConfig) *Tables {
	t := &Tables{base: make(map[keycode.KeyCode]config.BaseKeyMapping)}

	for _, m := range dc.Mappings {
		if !m.IsConditional() {
			t.base[m.Base.From] = m.Base
			continue
		}
		ov := overlay{condition: *m.Condition, table: make(map[keycode.KeyCode]config.BaseKeyMapping, len(m.Mappings))}
		for _, base := range m.Mappings {
			ov.table[base.From] = base
		}
		t.overlays = append(t.overlays, ov)
	}
	return t
}

// Resolve returns the mapping that applies to kc given the current overlay
// state: the first overlay (in source order) whose condition holds, or the
// base table if none matches, or (zero, false) for a lookup miss (the
// caller passes the raw event through unchanged).
func (t *Tables) Resolve(kc keycode.KeyCode, state OverlayState) (config.BaseKeyMapping, bool) {
	for _, ov := range t.overlays {
		if !Evaluate(ov.condition, state) {
			continue
		}
		if m, ok := ov.table[kc]; ok {
			return m, true
		}
		// Condition holds but this overlay has no mapping for kc: per
		// spec, fall through to the base table rather than to later
		// overlays (the winning scope is the overlay itself).
		break
	}
	m, ok := t.base[kc]
	return m, ok
}

// Evaluate reports whether cond currently holds against state.
func Evaluate(cond config.Condition, state OverlayState) bool {
	switch cond.Kind {
	case config.CondModifierActive:
		return state.ModifierActive(config.ModifierID(cond.ID))
	case config.CondLockActive:
		return state.LockActive(config.LockID(cond.ID))
	case config.CondAllActive:
		for _, item := range cond.Items {
			if !evaluateItem(item, state) {
				return false
			}
		}
		return true
	case config.CondNotActive:
		for _, item := range cond.Items {
			if evaluateItem(item, state) {
				return false
			}
		}
		return true
	case config.CondDeviceMatches:
		identity := state.DeviceIdentity()
		if identity == "" {
			return false
		}
		return config.DevicePattern(cond.Pattern).Matches(identity)
	default:
		return false
	}
}

func evaluateItem(item config.ConditionItem, state OverlayState) bool {
	if item.Kind == config.ItemModifierActive {
		return state.ModifierActive(config.ModifierID(item.ID))
	}
	return state.LockActive(config.LockID(item.ID))
}
