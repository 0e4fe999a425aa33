package engine

import (
	"testing"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/lookup"
)

func TestActiveModifiersAndLocks(t *testing.T) {
	dc := config.DeviceConfig{
		Identifier: config.AnyDevice(),
		Mappings: []config.KeyMapping{
			config.Base(config.Modifier(keycode.LShift, 3)),
			config.Base(config.Lock(keycode.CapsLock, 7)),
		},
	}
	m := New(lookup.Build(dc), "dev")

	if mods := m.ActiveModifiers(); len(mods) != 0 {
		t.Fatalf("expected no active modifiers yet, got %+v", mods)
	}

	m.Process(press(keycode.LShift, 0))
	m.Process(press(keycode.CapsLock, 10))

	mods := m.ActiveModifiers()
	if len(mods) != 1 || mods[0] != 3 {
		t.Fatalf("expected modifier 3 active, got %+v", mods)
	}
	locks := m.ActiveLocks()
	if len(locks) != 1 || locks[0] != 7 {
		t.Fatalf("expected lock 7 active, got %+v", locks)
	}

	m.Process(release(keycode.LShift, 20))
	if mods := m.ActiveModifiers(); len(mods) != 0 {
		t.Fatalf("expected modifier cleared on release, got %+v", mods)
	}
}

func TestFlushReleasesEveryPressedSource(t *testing.T) {
	dc := config.DeviceConfig{
		Identifier: config.AnyDevice(),
		Mappings: []config.KeyMapping{
			config.Base(config.Simple(keycode.A, keycode.B)),
			config.Base(config.Simple(keycode.C, keycode.D)),
		},
	}
	m := New(lookup.Build(dc), "dev")

	m.Process(press(keycode.A, 0))
	m.Process(press(keycode.C, 10))

	out := m.Flush()
	if len(out) != 2 {
		t.Fatalf("expected 2 synthetic releases, got %+v", out)
	}
	if out[0] != (OutEvent{KeyCode: keycode.B, Kind: Release}) {
		t.Errorf("expected B release first (ascending keycode order), got %+v", out[0])
	}
	if out[1] != (OutEvent{KeyCode: keycode.D, Kind: Release}) {
		t.Errorf("expected D release second, got %+v", out[1])
	}

	if out2 := m.Flush(); len(out2) != 0 {
		t.Fatalf("expected nothing left to flush, got %+v", out2)
	}
}
