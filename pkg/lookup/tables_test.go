package lookup

import (
	"testing"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

type fakeState struct {
	modifiers map[config.ModifierID]bool
	locks     map[config.LockID]bool
	identity  string
}

func (s fakeState) ModifierActive(id config.ModifierID) bool { return s.modifiers[id] }
func (s fakeState) LockActive(id config.LockID) bool         { return s.locks[id] }
func (s fakeState) DeviceIdentity() string                   { return s.identity }

func testDeviceConfig() config.DeviceConfig {
	return config.DeviceConfig{
		Identifier: config.AnyDevice(),
		Mappings: []config.KeyMapping{
			config.Base(config.Simple(keycode.CapsLock, keycode.Escape)),
			config.Conditional(config.ModifierActive(1), config.Simple(keycode.H, keycode.Left)),
		},
	}
}

func TestResolveFallsThroughToBaseWhenNoConditionHolds(t *testing.T) {
	tables := Build(testDeviceConfig())
	state := fakeState{}

	m, ok := tables.Resolve(keycode.CapsLock, state)
	if !ok || m.To != keycode.Escape {
		t.Fatalf("Resolve(CapsLock) = %+v, %v; want Escape mapping", m, ok)
	}

	_, ok = tables.Resolve(keycode.H, state)
	if ok {
		t.Fatal("Resolve(H) with no active modifier should miss")
	}
}

func TestResolveUsesOverlayWhenConditionHolds(t *testing.T) {
	tables := Build(testDeviceConfig())
	state := fakeState{modifiers: map[config.ModifierID]bool{1: true}}

	m, ok := tables.Resolve(keycode.H, state)
	if !ok || m.To != keycode.Left {
		t.Fatalf("Resolve(H) = %+v, %v; want Left mapping", m, ok)
	}
}

func TestResolveOverlayMissFallsBackToBase(t *testing.T) {
	tables := Build(testDeviceConfig())
	state := fakeState{modifiers: map[config.ModifierID]bool{1: true}}

	// CapsLock only exists in the base table; the active overlay doesn't
	// define it, so the base mapping should still apply.
	m, ok := tables.Resolve(keycode.CapsLock, state)
	if !ok || m.To != keycode.Escape {
		t.Fatalf("Resolve(CapsLock) = %+v, %v; want Escape mapping from base", m, ok)
	}
}

func TestEvaluateAllActiveRequiresEveryItem(t *testing.T) {
	cond := config.AllActive(
		config.ConditionItem{Kind: config.ItemModifierActive, ID: 1},
		config.ConditionItem{Kind: config.ItemLockActive, ID: 2},
	)

	if Evaluate(cond, fakeState{modifiers: map[config.ModifierID]bool{1: true}}) {
		t.Error("AllActive should be false when only one item holds")
	}
	if !Evaluate(cond, fakeState{
		modifiers: map[config.ModifierID]bool{1: true},
		locks:     map[config.LockID]bool{2: true},
	}) {
		t.Error("AllActive should be true when every item holds")
	}
}

func TestEvaluateDeviceMatchesFalseForEmptyIdentity(t *testing.T) {
	cond := config.DeviceMatches("usb-*")
	if Evaluate(cond, fakeState{identity: ""}) {
		t.Error("DeviceMatches should be false for an absent device identity")
	}
}
