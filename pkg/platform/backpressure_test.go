package platform

import (
	"context"
	"testing"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

func TestDropOldestDropsOldestNotNewest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := make(chan RawEvent)
	var counter DropCounter
	out := DropOldest(ctx, src, 2, &counter)

	go func() {
		for i := 0; i < 5; i++ {
			src <- RawEvent{KeyCode: keycode.KeyCode(i), Kind: engine.Press, TimestampUs: uint64(i)}
		}
	}()

	time.Sleep(20 * time.Millisecond)

	last := RawEvent{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-out:
			last = ev
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for output event")
		}
	}
	if last.KeyCode != keycode.KeyCode(4) {
		t.Fatalf("expected the newest event to survive, got keycode %d", last.KeyCode)
	}
	if counter.Load() == 0 {
		t.Fatal("expected at least one recorded drop")
	}
}

func TestDropOldestClosesOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := make(chan RawEvent)
	var counter DropCounter
	out := DropOldest(ctx, src, 4, &counter)

	cancel()

	select {
	case _, ok := <-out:
		if ok {
			t.Fatal("expected channel to close")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
