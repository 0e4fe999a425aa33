package engine

import (
	"sort"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/lookup"
)

// State is the subset of Machine needed to evaluate conditions; it
// satisfies lookup.OverlayState.
type state struct {
	m *Machine
}

func (s state) ModifierActive(id config.ModifierID) bool { return s.m.modifiers.test(uint8(id)) }
func (s state) LockActive(id config.LockID) bool          { return s.m.locks.test(uint8(id)) }
func (s state) DeviceIdentity() string                    { return s.m.deviceIdentity }

// Machine is the per-device event dispatch state machine: tap/hold
// disambiguation, permissive-hold, custom modifier/lock tracking, and
// ModifiedOutput synthesis. A Machine is owned by exactly one device pump
// goroutine; nothing inside it is safe for concurrent use.
type Machine struct {
	tables         *lookup.Tables
	deviceIdentity string

	modifiers bitvec256
	locks     bitvec256

	tapHold        map[keycode.KeyCode]*pendingEntry
	pressedSources map[keycode.KeyCode]decision
	heldPhysical   map[keycode.KeyCode]bool

	lastTickUs uint64
}

// New builds a Machine bound to tables, reporting deviceIdentity for
// DeviceMatches conditions.
func New(tables *lookup.Tables, deviceIdentity string) *Machine {
	return &Machine{
		tables:         tables,
		deviceIdentity: deviceIdentity,
		tapHold:        make(map[keycode.KeyCode]*pendingEntry),
		pressedSources: make(map[keycode.KeyCode]decision),
		heldPhysical:   make(map[keycode.KeyCode]bool),
	}
}

func (m *Machine) overlayState() lookup.OverlayState { return state{m} }

// Process advances the machine by one input event and returns the output
// events it produces, in order. It never returns an error: a lookup miss
// is passthrough, not a failure (spec.md §4.F failure semantics).
func (m *Machine) Process(ev InputEvent) []OutEvent {
	var out []OutEvent
	out = m.tick(ev.TimestampUs, out)

	if isPhysicalModifier(ev.KeyCode) {
		m.heldPhysical[ev.KeyCode] = ev.Kind == Press
	}

	if ev.Kind == Press {
		return m.processPress(ev, out)
	}
	return m.processRelease(ev, out)
}

// Tick runs threshold-timer maintenance only, with no associated input
// event. The orchestrator's 10ms ticker drives this so tap-hold decisions
// resolve even without a subsequent keystroke.
func (m *Machine) Tick(nowUs uint64) []OutEvent {
	return m.tick(nowUs, nil)
}

// tick clamps backwards wall-clock jumps to the previous tick, then
// promotes every Pending entry whose threshold has elapsed to Held,
// emitting its hold effect.
func (m *Machine) tick(nowUs uint64, out []OutEvent) []OutEvent {
	if nowUs < m.lastTickUs {
		nowUs = m.lastTickUs
	}
	m.lastTickUs = nowUs

	for _, from := range m.pendingKeysSorted() {
		p := m.tapHold[from]
		if p.pressedAtUs+p.thresholdUs > nowUs {
			continue
		}
		out = m.promoteToHeld(from, p, out)
	}
	return out
}

// pendingKeysSorted returns the "from" keycodes of every Pending tap-hold
// entry in ascending numeric order. Iterating a Go map directly would make
// the emitted output order depend on map randomization, violating the
// byte-identical determinism guarantee for identical input sequences.
func (m *Machine) pendingKeysSorted() []keycode.KeyCode {
	var keys []keycode.KeyCode
	for from, p := range m.tapHold {
		if p.phase == phasePending {
			keys = append(keys, from)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// promoteToHeld transitions a Pending entry to Held and emits its hold
// effect (activate modifier, or inject key press).
func (m *Machine) promoteToHeld(from keycode.KeyCode, p *pendingEntry, out []OutEvent) []OutEvent {
	p.phase = phaseHeld
	if p.mapping.HoldKind == config.HoldModifier {
		m.modifiers.set(uint8(p.mapping.HoldModID))
	} else {
		out = append(out, OutEvent{KeyCode: p.mapping.HoldKey, Kind: Press})
	}
	return out
}

func (m *Machine) processPress(ev InputEvent, out []OutEvent) []OutEvent {
	kc := ev.KeyCode

	// Step 2: auto-repeat of the same pending tap-hold key is ignored.
	if p, ok := m.tapHold[kc]; ok && p.phase == phasePending {
		return out
	}

	// Step 3: permissive-hold. Any other still-pending tap-hold entry is
	// forced to Held before the new press is processed.
	for _, other := range m.pendingKeysSorted() {
		if other == kc {
			continue
		}
		out = m.promoteToHeld(other, m.tapHold[other], out)
	}

	// Step 4: consult the lookup tables.
	mapping, ok := m.tables.Resolve(kc, m.overlayState())
	if !ok {
		out = append(out, OutEvent{KeyCode: kc, Kind: Press})
		m.pressedSources[kc] = decision{kind: decisionPassthrough, outKey: kc}
		return out
	}

	switch mapping.Kind {
	case config.MappingSimple:
		out = append(out, OutEvent{KeyCode: mapping.To, Kind: Press})
		m.pressedSources[kc] = decision{kind: decisionSimple, outKey: mapping.To}

	case config.MappingModifier:
		m.modifiers.set(uint8(mapping.ModifierID))
		m.pressedSources[kc] = decision{kind: decisionModifier, modifierID: mapping.ModifierID}

	case config.MappingLock:
		m.locks.toggle(uint8(mapping.LockID))
		m.pressedSources[kc] = decision{kind: decisionLock, lockID: mapping.LockID}

	case config.MappingTapHold:
		p := &pendingEntry{
			from:        kc,
			pressedAtUs: ev.TimestampUs,
			thresholdUs: uint64(mapping.ThresholdMs) * 1000,
			phase:       phasePending,
			mapping:     mapping,
		}
		m.tapHold[kc] = p
		m.pressedSources[kc] = decision{kind: decisionTapHold, pending: p}

	case config.MappingModifiedOutput:
		var synthesized []keycode.KeyCode
		for _, mod := range mapping.PhysicalMods {
			if m.heldPhysical[mod] {
				continue
			}
			out = append(out, OutEvent{KeyCode: mod, Kind: Press})
			synthesized = append(synthesized, mod)
		}
		out = append(out, OutEvent{KeyCode: mapping.To, Kind: Press})
		m.pressedSources[kc] = decision{kind: decisionModifiedOutput, outTo: mapping.To, synthesizedMods: synthesized}

	default:
		out = append(out, OutEvent{KeyCode: kc, Kind: Press})
		m.pressedSources[kc] = decision{kind: decisionPassthrough, outKey: kc}
	}

	return out
}

func (m *Machine) processRelease(ev InputEvent, out []OutEvent) []OutEvent {
	kc := ev.KeyCode
	d, ok := m.pressedSources[kc]
	if !ok {
		return out
	}
	defer delete(m.pressedSources, kc)

	switch d.kind {
	case decisionTapHold:
		p := d.pending
		if p.phase == phasePending {
			p.phase = phaseTapped
			out = append(out, OutEvent{KeyCode: p.mapping.Tap, Kind: Press})
			out = append(out, OutEvent{KeyCode: p.mapping.Tap, Kind: Release})
		} else if p.phase == phaseHeld {
			out = m.releaseHeldTapHold(p, out)
		}
		delete(m.tapHold, kc)

	case decisionModifier:
		m.modifiers.clear(uint8(d.modifierID))

	case decisionLock:
		// Lock toggles on press only; release is a no-op.

	case decisionModifiedOutput:
		out = append(out, OutEvent{KeyCode: d.outTo, Kind: Release})
		for i := len(d.synthesizedMods) - 1; i >= 0; i-- {
			out = append(out, OutEvent{KeyCode: d.synthesizedMods[i], Kind: Release})
		}

	case decisionSimple, decisionPassthrough:
		out = append(out, OutEvent{KeyCode: d.outKey, Kind: Release})
	}

	return out
}

// releaseHeldTapHold mirrors step 2/3 of Release dispatch for an entry that
// was already promoted to Held by the time its "from" key is released.
func (m *Machine) releaseHeldTapHold(p *pendingEntry, out []OutEvent) []OutEvent {
	if p.mapping.HoldKind == config.HoldModifier {
		m.modifiers.clear(uint8(p.mapping.HoldModID))
	} else {
		out = append(out, OutEvent{KeyCode: p.mapping.HoldKey, Kind: Release})
	}
	return out
}

func isPhysicalModifier(kc keycode.KeyCode) bool {
	switch kc {
	case keycode.LShift, keycode.RShift, keycode.LCtrl, keycode.RCtrl,
		keycode.LAlt, keycode.RAlt, keycode.LMeta, keycode.RMeta:
		return true
	default:
		return false
	}
}
