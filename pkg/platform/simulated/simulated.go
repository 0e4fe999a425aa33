// Package simulated provides in-memory InputAdapter/OutputAdapter fakes
// for driving pkg/engine and pkg/orchestrator in tests without a real
// device grab.
package simulated

import (
	"context"
	"sync"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
)

var (
	_ platform.InputAdapter  = (*Input)(nil)
	_ platform.OutputAdapter = (*Output)(nil)
)

// Input is a fake InputAdapter fed by test code calling Feed.
type Input struct {
	devices []platform.DeviceInfo

	mu      sync.Mutex
	started bool
	ch      chan platform.RawEvent
}

// NewInput builds a fake input adapter reporting devices as its enumerated
// device set.
func NewInput(devices ...platform.DeviceInfo) *Input {
	return &Input{devices: devices}
}

func (i *Input) Start(ctx context.Context) (<-chan platform.RawEvent, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ch = make(chan platform.RawEvent, 64)
	i.started = true
	go func() {
		<-ctx.Done()
		i.mu.Lock()
		defer i.mu.Unlock()
		if i.started {
			close(i.ch)
			i.started = false
		}
	}()
	return i.ch, nil
}

func (i *Input) Devices() ([]platform.DeviceInfo, error) { return i.devices, nil }

func (i *Input) Stop() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.started {
		close(i.ch)
		i.started = false
	}
	return nil
}

// Feed injects ev into the adapter's output stream, as if a physical key
// transition had just occurred. Safe to call only while Start's context is
// still live.
func (i *Input) Feed(ev platform.RawEvent) {
	i.mu.Lock()
	ch := i.ch
	started := i.started
	i.mu.Unlock()
	if started {
		ch <- ev
	}
}

// Output is a fake OutputAdapter that records every injected event instead
// of touching any OS device.
type Output struct {
	mu      sync.Mutex
	started bool
	blocked map[keycode.ScanCode]struct{}
	Events  []engine.OutEvent
}

// NewOutput builds a fake output adapter.
func NewOutput() *Output { return &Output{} }

func (o *Output) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started = true
	return nil
}

func (o *Output) Inject(ev engine.OutEvent) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Events = append(o.Events, ev)
	return nil
}

func (o *Output) UpdateBlockedScanCodes(blocked map[keycode.ScanCode]struct{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.blocked = blocked
}

func (o *Output) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started = false
	return nil
}

// Recorded returns a copy of every event injected so far.
func (o *Output) Recorded() []engine.OutEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]engine.OutEvent, len(o.Events))
	copy(out, o.Events)
	return out
}
