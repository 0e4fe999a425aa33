package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
)

func TestInputFeedAndStop(t *testing.T) {
	in := NewInput(platform.DeviceInfo{Name: "fake kbd"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := in.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	in.Feed(platform.RawEvent{KeyCode: keycode.A, Kind: engine.Press, TimestampUs: 1})

	select {
	case ev := <-ch:
		if ev.KeyCode != keycode.A {
			t.Fatalf("got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for fed event")
	}

	if err := in.Stop(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-ch; ok {
		t.Fatal("expected channel closed after Stop")
	}
}

func TestOutputRecordsInjectedEvents(t *testing.T) {
	out := NewOutput()
	if err := out.Start(); err != nil {
		t.Fatal(err)
	}
	if err := out.Inject(engine.OutEvent{KeyCode: keycode.Escape, Kind: engine.Press}); err != nil {
		t.Fatal(err)
	}
	if err := out.Inject(engine.OutEvent{KeyCode: keycode.Escape, Kind: engine.Release}); err != nil {
		t.Fatal(err)
	}
	got := out.Recorded()
	if len(got) != 2 {
		t.Fatalf("got %+v", got)
	}
}
