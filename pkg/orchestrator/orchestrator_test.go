package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform/simulated"
)

func testDeviceInfo() platform.DeviceInfo {
	return platform.DeviceInfo{Bus: 3, Vendor: 0x1234, Product: 0x5678, PhysPath: "usb-0000:00:14.0-1", Name: "Test Keyboard", Serial: "SN1"}
}

func singleMappingConfig(from, to keycode.KeyCode) *config.ConfigRoot {
	return &config.ConfigRoot{
		Devices: []config.DeviceConfig{
			{
				Identifier: config.AnyDevice(),
				Mappings:   []config.KeyMapping{config.Base(config.Simple(from, to))},
			},
		},
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestRunRemapsSimpleKey(t *testing.T) {
	info := testDeviceInfo()
	input := simulated.NewInput(info)
	output := simulated.NewOutput()

	o := New(input, output)
	root := singleMappingConfig(keycode.CapsLock, keycode.LCtrl)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- o.Run(ctx, root, "test") }()

	waitFor(t, time.Second, func() bool { return o.running.Load() })

	input.Feed(platform.RawEvent{KeyCode: keycode.CapsLock, Kind: engine.Press, TimestampUs: 1000, DeviceID: info.DedupKey()})

	waitFor(t, time.Second, func() bool { return len(output.Recorded()) >= 1 })
	recorded := output.Recorded()
	if recorded[0].KeyCode != keycode.LCtrl || recorded[0].Kind != engine.Press {
		t.Fatalf("got %+v, want LCtrl press", recorded[0])
	}

	cancel()
	if err := <-runDone; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestRunFlushesOnShutdown(t *testing.T) {
	info := testDeviceInfo()
	input := simulated.NewInput(info)
	output := simulated.NewOutput()

	o := New(input, output)
	root := singleMappingConfig(keycode.CapsLock, keycode.LCtrl)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- o.Run(ctx, root, "test") }()

	waitFor(t, time.Second, func() bool { return o.running.Load() })
	input.Feed(platform.RawEvent{KeyCode: keycode.CapsLock, Kind: engine.Press, TimestampUs: 1000, DeviceID: info.DedupKey()})
	waitFor(t, time.Second, func() bool { return len(output.Recorded()) >= 1 })

	cancel()
	if err := <-runDone; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	recorded := output.Recorded()
	if len(recorded) != 2 {
		t.Fatalf("got %d output events, want 2 (press + flush release)", len(recorded))
	}
	if recorded[1].KeyCode != keycode.LCtrl || recorded[1].Kind != engine.Release {
		t.Fatalf("second event = %+v, want LCtrl release", recorded[1])
	}
}

func TestRunSkipsUnmatchedDevices(t *testing.T) {
	matched := testDeviceInfo()
	unmatched := platform.DeviceInfo{Bus: 3, Vendor: 0xaaaa, Product: 0xbbbb, PhysPath: "usb-0000:00:14.0-2", Name: "Other Device", Serial: "SN2"}

	input := simulated.NewInput(matched, unmatched)
	output := simulated.NewOutput()

	root := &config.ConfigRoot{
		Devices: []config.DeviceConfig{
			{
				Identifier: config.DevicePattern("Test Keyboard\x00*"),
				Mappings:   []config.KeyMapping{config.Base(config.Simple(keycode.A, keycode.B))},
			},
		},
	}

	o := New(input, output)
	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- o.Run(ctx, root, "test") }()

	waitFor(t, time.Second, func() bool { return o.running.Load() })

	snap := o.QueryState()
	if snap.DeviceCount != 1 {
		t.Fatalf("DeviceCount = %d, want 1 (only the matched device)", snap.DeviceCount)
	}

	cancel()
	<-runDone
}

func TestQueryStateReflectsActiveModifier(t *testing.T) {
	info := testDeviceInfo()
	input := simulated.NewInput(info)
	output := simulated.NewOutput()

	root := &config.ConfigRoot{
		Devices: []config.DeviceConfig{
			{
				Identifier: config.AnyDevice(),
				Mappings:   []config.KeyMapping{config.Base(config.Modifier(keycode.CapsLock, config.ModifierID(3)))},
			},
		},
	}

	o := New(input, output)
	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- o.Run(ctx, root, "test") }()

	waitFor(t, time.Second, func() bool { return o.running.Load() })
	input.Feed(platform.RawEvent{KeyCode: keycode.CapsLock, Kind: engine.Press, TimestampUs: 1000, DeviceID: info.DedupKey()})

	waitFor(t, time.Second, func() bool {
		snap := o.QueryState()
		return len(snap.Devices) == 1 && len(snap.Devices[0].ModifiersActive) == 1
	})

	snap := o.QueryState()
	if snap.Devices[0].ModifiersActive[0] != config.ModifierID(3) {
		t.Fatalf("ModifiersActive = %v, want [3]", snap.Devices[0].ModifiersActive)
	}

	cancel()
	<-runDone
}

func TestSubscribeEventsReceivesProcessedEvents(t *testing.T) {
	info := testDeviceInfo()
	input := simulated.NewInput(info)
	output := simulated.NewOutput()

	o := New(input, output)
	root := singleMappingConfig(keycode.CapsLock, keycode.LCtrl)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- o.Run(ctx, root, "test") }()

	waitFor(t, time.Second, func() bool { return o.running.Load() })

	subCtx, subCancel := context.WithCancel(context.Background())
	events, _, unsubscribe := o.SubscribeEvents(subCtx)
	defer subCancel()
	defer unsubscribe()

	input.Feed(platform.RawEvent{KeyCode: keycode.CapsLock, Kind: engine.Press, TimestampUs: 1000, DeviceID: info.DedupKey()})

	select {
	case rec := <-events:
		if rec.InputKeyCode != keycode.CapsLock {
			t.Fatalf("InputKeyCode = %v, want CapsLock", rec.InputKeyCode)
		}
		if len(rec.OutputEvents) != 1 || rec.OutputEvents[0].KeyCode != keycode.LCtrl {
			t.Fatalf("OutputEvents = %+v, want [LCtrl press]", rec.OutputEvents)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for subscribed event")
	}

	cancel()
	<-runDone
}

func TestQueryLatencyReportsStats(t *testing.T) {
	info := testDeviceInfo()
	input := simulated.NewInput(info)
	output := simulated.NewOutput()

	o := New(input, output)
	root := singleMappingConfig(keycode.CapsLock, keycode.LCtrl)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- o.Run(ctx, root, "test") }()

	waitFor(t, time.Second, func() bool { return o.running.Load() })
	input.Feed(platform.RawEvent{KeyCode: keycode.CapsLock, Kind: engine.Press, TimestampUs: 1000, DeviceID: info.DedupKey()})
	waitFor(t, time.Second, func() bool { return len(output.Recorded()) >= 1 })

	snap := o.QueryLatency()
	if snap.SampleCount == 0 {
		t.Fatal("expected at least one recorded latency sample")
	}

	cancel()
	<-runDone
}

func TestSwitchProfileReplacesDeviceSet(t *testing.T) {
	info := testDeviceInfo()
	input := simulated.NewInput(info)
	output := simulated.NewOutput()

	o := New(input, output)
	root := singleMappingConfig(keycode.CapsLock, keycode.LCtrl)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- o.Run(ctx, root, "first") }()

	waitFor(t, time.Second, func() bool { return o.running.Load() })

	second := singleMappingConfig(keycode.CapsLock, keycode.Escape)
	prev, err := o.SwitchProfile(second, "second")
	if err != nil {
		t.Fatalf("SwitchProfile failed: %v", err)
	}
	if prev != "first" {
		t.Fatalf("previous profile = %q, want %q", prev, "first")
	}

	input.Feed(platform.RawEvent{KeyCode: keycode.CapsLock, Kind: engine.Press, TimestampUs: 2000, DeviceID: info.DedupKey()})
	waitFor(t, time.Second, func() bool { return len(output.Recorded()) >= 1 })

	recorded := output.Recorded()
	if recorded[0].KeyCode != keycode.Escape {
		t.Fatalf("got %+v, want Escape press under the new profile", recorded[0])
	}

	cancel()
	<-runDone
}

func TestLoadProfileRejectsMissingFile(t *testing.T) {
	o := New(simulated.NewInput(), simulated.NewOutput())
	if _, err := o.LoadProfile("/nonexistent/path.krx"); err == nil {
		t.Fatal("expected an error loading a nonexistent profile")
	}
}
