package engine

import (
	"math/rand"
	"testing"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/lookup"
)

func determinismDeviceConfig() config.DeviceConfig {
	return config.DeviceConfig{
		Identifier: config.AnyDevice(),
		Mappings: []config.KeyMapping{
			config.Base(config.Simple(keycode.Q, keycode.W)),
			config.Base(config.Modifier(keycode.LShift, 1)),
			config.Base(config.Lock(keycode.CapsLock, 2)),
			config.Base(config.TapHoldModifier(keycode.M, keycode.M, 3, 150)),
			config.Base(config.ModifiedOutput(keycode.Digit1, keycode.F1, keycode.LShift)),
			config.Conditional(config.ModifierActive(1), config.Simple(keycode.A, keycode.Left)),
			config.Conditional(config.ModifierActive(3), config.Simple(keycode.O, keycode.Down)),
		},
	}
}

// randomEventSequence generates n pseudo-random, monotonically
// timestamped input events over a small fixed alphabet of keycodes, using a
// seeded RNG so the exact same sequence can be regenerated independently.
func randomEventSequence(seed int64, n int) []InputEvent {
	alphabet := []keycode.KeyCode{
		keycode.Q, keycode.A, keycode.O, keycode.M, keycode.Digit1,
		keycode.LShift, keycode.CapsLock, keycode.Z,
	}
	r := rand.New(rand.NewSource(seed))
	events := make([]InputEvent, 0, n)
	var tsUs uint64
	down := make(map[keycode.KeyCode]bool)

	for len(events) < n {
		kc := alphabet[r.Intn(len(alphabet))]
		tsUs += uint64(r.Intn(5000)) + 1

		kind := Press
		if down[kc] {
			kind = Release
		}
		down[kc] = kind == Press

		events = append(events, InputEvent{KeyCode: kc, Kind: kind, TimestampUs: tsUs, DeviceID: "dev"})
	}
	return events
}

func runSequence(events []InputEvent) []OutEvent {
	m := New(lookup.Build(determinismDeviceConfig()), "dev")
	var all []OutEvent
	for _, ev := range events {
		all = append(all, m.Process(ev)...)
	}
	return all
}

// TestDeterminism replays the same >=10000-event pseudo-random sequence
// through two independently constructed machines and requires a
// byte-identical (field-identical) output sequence, matching the
// determinism guarantee: identical input with identical timestamps and
// identical initial state must produce identical output.
func TestDeterminism(t *testing.T) {
	const eventCount = 10_000
	events := randomEventSequence(42, eventCount)

	runA := runSequence(events)
	runB := runSequence(events)

	if len(runA) != len(runB) {
		t.Fatalf("output length differs: %d vs %d", len(runA), len(runB))
	}
	for i := range runA {
		if runA[i] != runB[i] {
			t.Fatalf("output[%d] differs: %+v vs %+v", i, runA[i], runB[i])
		}
	}
}

// TestDeterminismAcrossSeeds spot-checks several independent seeds so the
// property isn't accidentally true only for one sequence shape.
func TestDeterminismAcrossSeeds(t *testing.T) {
	for _, seed := range []int64{1, 7, 1337, 99999} {
		events := randomEventSequence(seed, 2000)
		runA := runSequence(events)
		runB := runSequence(events)
		if len(runA) != len(runB) {
			t.Fatalf("seed %d: output length differs: %d vs %d", seed, len(runA), len(runB))
		}
		for i := range runA {
			if runA[i] != runB[i] {
				t.Fatalf("seed %d: output[%d] differs: %+v vs %+v", seed, i, runA[i], runB[i])
			}
		}
	}
}
