package engine

import (
	"sort"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// ActiveModifiers returns the currently active custom modifier ids, in
// ascending order, for the orchestrator's QueryState.
func (m *Machine) ActiveModifiers() []config.ModifierID {
	var ids []config.ModifierID
	for id := 0; id < 255; id++ {
		if m.modifiers.test(uint8(id)) {
			ids = append(ids, config.ModifierID(id))
		}
	}
	return ids
}

// ActiveLocks returns the currently active custom lock ids, in ascending
// order, for the orchestrator's QueryState.
func (m *Machine) ActiveLocks() []config.LockID {
	var ids []config.LockID
	for id := 0; id < 255; id++ {
		if m.locks.test(uint8(id)) {
			ids = append(ids, config.LockID(id))
		}
	}
	return ids
}

// Flush emits synthetic releases for every currently pressed source, in
// ascending keycode order, so a shutdown or profile swap never leaves a key
// stuck down on the OS side (spec.md §5's cancellation guarantee). Each
// source goes through the ordinary release path; lock state and the last
// tick time are left unchanged.
func (m *Machine) Flush() []OutEvent {
	var keys []keycode.KeyCode
	for kc := range m.pressedSources {
		keys = append(keys, kc)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var out []OutEvent
	for _, kc := range keys {
		out = m.processRelease(InputEvent{KeyCode: kc, Kind: Release, TimestampUs: m.lastTickUs}, out)
	}
	return out
}
