// Package orchestrator wires the per-device engine (pkg/engine) to a
// platform's input/output adapters (pkg/platform), owns the active
// configuration, and services profile-switch and query commands from
// external collaborators (CLI, tests).
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/klog"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/latency"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/lookup"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
)

// tickInterval is the monotonic tap-hold threshold ticker granularity
// (spec.md §5's "10ms granularity").
const tickInterval = 10 * time.Millisecond

// deviceChannelCapacity bounds the per-device fan-out queue between the
// platform's single merged input stream and each device's own dispatch
// goroutine.
const deviceChannelCapacity = 256

// deviceUnit is everything the orchestrator tracks for one matched
// physical device: its engine.Machine, owned exclusively by this device's
// own goroutine (pkg/engine's single-threaded-per-device contract), plus
// the fan-out channel feeding it.
type deviceUnit struct {
	info       platform.DeviceInfo
	machine    *engine.Machine
	fromKeys   []keycode.KeyCode
	ch         chan platform.RawEvent
	drops      dropCounter
	stateCache atomic.Pointer[DeviceState]
}

// dropCounter counts events discarded under backpressure. Distinct from
// platform.DropCounter, whose increment method is private to that package;
// the orchestrator tracks its own per-device and per-subscriber drops.
type dropCounter struct {
	n atomic.Uint64
}

func (c *dropCounter) inc() { c.n.Add(1) }

// Load returns the number of events dropped so far.
func (c *dropCounter) Load() uint64 { return c.n.Load() }

// activeConfig is the atomically-swappable snapshot spec.md §4.J and §9
// require: SwitchProfile installs a new one wholesale so readers never see
// a mix of two configurations.
type activeConfig struct {
	root        *config.ConfigRoot
	profileName string
	devices     map[string]*deviceUnit // keyed by platform.DeviceInfo.DedupKey()
}

// runningDevice tracks one live per-device dispatch goroutine so
// SwitchProfile can cancel the ones no longer matched and wait for them to
// flush before returning.
type runningDevice struct {
	unit   *deviceUnit
	cancel context.CancelFunc
	done   chan struct{}
}

// Orchestrator owns the active configuration, one engine.Machine per
// matched device, the latency recorder, and the broadcast fan-out of
// processed events to subscribers (spec.md §4.J).
type Orchestrator struct {
	input     platform.InputAdapter
	output    platform.OutputAdapter
	scanTable *keycode.Table
	logger    klog.Logger
	env       EnvProvider

	cfg atomic.Pointer[activeConfig]

	recorder   *latency.Recorder
	aggregator *latency.Aggregator

	startedAt time.Time
	running   atomic.Bool

	runMu   sync.Mutex
	runCtx  context.Context
	devices map[string]*runningDevice

	subsMu sync.Mutex
	subs   map[uint64]*subscriber
	subSeq atomic.Uint64

	switchMu sync.Mutex
}

// Option configures an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithLogger sets the event sink every processed input event is reported
// to. Defaults to klog.NoopLogger{}.
func WithLogger(logger klog.Logger) Option {
	return func(o *Orchestrator) {
		if logger == nil {
			logger = klog.NoopLogger{}
		}
		o.logger = logger
	}
}

// WithEnvProvider overrides the default RealEnvProvider, letting tests
// control the environment variables ConfigDir resolves against.
func WithEnvProvider(env EnvProvider) Option {
	return func(o *Orchestrator) { o.env = env }
}

// WithScanTable supplies the platform scan-code table used to compute the
// aggregate blocked-scancode set published to the output adapter
// (keycode.LinuxTable or keycode.WindowsTable, chosen by the caller that
// already knows which platform package it imported). Without one, blocked
// scan codes are never published — fine for pkg/platform/simulated, which
// ignores them.
func WithScanTable(t *keycode.Table) Option {
	return func(o *Orchestrator) { o.scanTable = t }
}

// New builds an Orchestrator over the given platform adapters. Run must be
// called to load a profile and begin pumping events.
func New(input platform.InputAdapter, output platform.OutputAdapter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		input:      input,
		output:     output,
		logger:     klog.NoopLogger{},
		env:        RealEnvProvider{},
		recorder:   latency.NewRecorder(),
		aggregator: latency.NewAggregator(),
		devices:    make(map[string]*runningDevice),
		subs:       make(map[uint64]*subscriber),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run loads root as the initial active configuration, enumerates physical
// devices, matches them against root.Devices, starts the platform
// adapters, and pumps events until ctx is canceled or an adapter fails.
// Run blocks until shutdown completes; on return every device has flushed
// its pressed sources and every adapter has been stopped.
func (o *Orchestrator) Run(ctx context.Context, root *config.ConfigRoot, profileName string) error {
	if err := root.Validate(); err != nil {
		return fmt.Errorf("orchestrator: refusing to run invalid config: %w", err)
	}

	active, err := o.buildActiveConfig(root, profileName)
	if err != nil {
		return err
	}

	if err := o.output.Start(); err != nil {
		return newPlatformError("output.Start", "%v", err)
	}
	o.output.UpdateBlockedScanCodes(o.blockedScanCodes(active))

	rawEvents, err := o.input.Start(ctx)
	if err != nil {
		_ = o.output.Stop()
		return newPlatformError("input.Start", "%v", err)
	}

	o.runMu.Lock()
	o.runCtx = ctx
	o.runMu.Unlock()

	o.cfg.Store(active)
	o.startedAt = time.Now()
	o.running.Store(true)
	defer o.running.Store(false)

	g, gctx := errgroup.WithContext(ctx)
	o.runMu.Lock()
	for key, du := range active.devices {
		o.startDeviceLocked(gctx, key, du)
	}
	o.runMu.Unlock()
	g.Go(func() error { return o.runFanOut(gctx, rawEvents) })

	runErr := g.Wait()

	o.runMu.Lock()
	for key := range o.devices {
		o.stopDeviceLocked(key)
	}
	o.runMu.Unlock()

	_ = o.input.Stop()
	_ = o.output.Stop()
	return runErr
}

// buildActiveConfig enumerates physical devices via o.input, matches each
// against root's device patterns (first match wins, per spec.md §4.J step
// 2), and derives a lookup.Tables + engine.Machine for each match.
func (o *Orchestrator) buildActiveConfig(root *config.ConfigRoot, profileName string) (*activeConfig, error) {
	infos, err := o.input.Devices()
	if err != nil {
		return nil, newPlatformError("input.Devices", "%v", err)
	}

	active := &activeConfig{root: root, profileName: profileName, devices: make(map[string]*deviceUnit)}
	for _, info := range infos {
		idx, ok := root.MatchDevice(info.MatchString())
		if !ok {
			continue
		}
		tables := lookup.Build(root.Devices[idx])
		active.devices[info.DedupKey()] = &deviceUnit{
			info:     info,
			machine:  engine.New(tables, info.MatchString()),
			fromKeys: deviceFromKeyCodes(root.Devices[idx]),
			ch:       make(chan platform.RawEvent, deviceChannelCapacity),
		}
	}
	return active, nil
}

// blockedScanCodes computes the aggregate set of input scan codes every
// matched device's mapping set remaps away from passthrough, so a Windows
// hook knows which native key deliveries to swallow (spec.md §4.J step 4).
// Returns nil if no scan table was configured (WithScanTable).
func (o *Orchestrator) blockedScanCodes(active *activeConfig) map[keycode.ScanCode]struct{} {
	if o.scanTable == nil {
		return nil
	}
	blocked := make(map[keycode.ScanCode]struct{})
	for _, du := range active.devices {
		for _, from := range du.fromKeys {
			if sc, ok := o.scanTable.KeyCodeToScanCode(from); ok {
				blocked[sc] = struct{}{}
			}
		}
	}
	return blocked
}

// deviceFromKeyCodes returns every "from" keycode dc's mapping set
// remaps, across its base table and every conditional overlay.
func deviceFromKeyCodes(dc config.DeviceConfig) []keycode.KeyCode {
	var keys []keycode.KeyCode
	for _, m := range dc.Mappings {
		if !m.IsConditional() {
			keys = append(keys, m.Base.From)
			continue
		}
		for _, base := range m.Mappings {
			keys = append(keys, base.From)
		}
	}
	return keys
}

// runFanOut reads the platform's single merged raw event stream and routes
// each event to the matching device's dispatch channel by DedupKey,
// dropping the oldest queued event for that device under backpressure
// rather than blocking the input adapter's read loop. It re-reads the
// active configuration on every event so a profile switch mid-stream is
// picked up without restarting this goroutine.
func (o *Orchestrator) runFanOut(ctx context.Context, raw <-chan platform.RawEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-raw:
			if !ok {
				return nil
			}
			active := o.cfg.Load()
			if active == nil {
				continue
			}
			du, ok := active.devices[ev.DeviceID]
			if !ok {
				continue
			}
			sendDropOldest(du.ch, ev, &du.drops)
		}
	}
}

// sendDropOldest enqueues ev onto ch, discarding the oldest queued event
// first if ch is full — the same "stale-is-better-than-blocked" policy as
// platform.DropOldest, applied per-device instead of per-adapter.
func sendDropOldest(ch chan platform.RawEvent, ev platform.RawEvent, counter *dropCounter) {
	for {
		select {
		case ch <- ev:
			return
		default:
			select {
			case <-ch:
				counter.inc()
			default:
			}
		}
	}
}

// startDeviceLocked spawns du's dispatch goroutine and registers it under
// key so a later SwitchProfile can find and stop it. Callers must hold
// o.runMu... except this one is only ever called from Run (before any
// SwitchProfile can race it) or from SwitchProfile itself, which takes
// runMu before calling it.
func (o *Orchestrator) startDeviceLocked(ctx context.Context, key string, du *deviceUnit) {
	devCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	o.devices[key] = &runningDevice{unit: du, cancel: cancel, done: done}
	go func() {
		defer close(done)
		o.runDevice(devCtx, du)
	}()
}

// stopDeviceLocked cancels the device goroutine registered under key and
// waits for it to finish flushing. Callers must hold o.runMu.
func (o *Orchestrator) stopDeviceLocked(key string) {
	rd, ok := o.devices[key]
	if !ok {
		return
	}
	rd.cancel()
	<-rd.done
	delete(o.devices, key)
}

// runDevice is the single goroutine that exclusively owns du.machine: it
// serializes incoming events and the tap-hold threshold ticker so no two
// goroutines ever touch the same Machine concurrently.
func (o *Orchestrator) runDevice(ctx context.Context, du *deviceUnit) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.inject(du, du.machine.Flush())
			updateDeviceState(du)
			return
		case ev, ok := <-du.ch:
			if !ok {
				o.inject(du, du.machine.Flush())
				updateDeviceState(du)
				return
			}
			o.dispatch(du, ev)
			updateDeviceState(du)
		case t := <-ticker.C:
			o.inject(du, du.machine.Tick(uint64(t.UnixMicro())))
			updateDeviceState(du)
		}
	}
}

// dispatch processes one physical event through du.machine, injects the
// resulting output events, records the elapsed latency, and reports the
// event to the logger and every subscriber.
func (o *Orchestrator) dispatch(du *deviceUnit, ev platform.RawEvent) {
	start := time.Now()
	out := du.machine.Process(engine.InputEvent{
		KeyCode:     ev.KeyCode,
		Kind:        ev.Kind,
		TimestampUs: ev.TimestampUs,
		DeviceID:    ev.DeviceID,
	})
	latencyUs := uint32(time.Since(start).Microseconds())
	o.recorder.Record(uint64(latencyUs))
	o.inject(du, out)
	o.report(du, ev.KeyCode, out, latencyUs)
}

// inject forwards every output event to the platform's OutputAdapter.
// Injection failures are runtime errors (spec.md §4.F/G failure
// semantics): logged as a warning, never fatal to the device's dispatch
// loop.
func (o *Orchestrator) inject(du *deviceUnit, out []engine.OutEvent) {
	for _, ev := range out {
		if err := o.output.Inject(ev); err != nil {
			o.logger.Log(klog.Event{
				Timestamp: time.Now(),
				DeviceID:  du.info.MatchString(),
				Warning:   fmt.Sprintf("injection failed: %v", err),
			})
		}
	}
}

// report publishes one processed event to the configured logger and every
// live subscriber.
func (o *Orchestrator) report(du *deviceUnit, inputKey keycode.KeyCode, out []engine.OutEvent, latencyUs uint32) {
	event := klog.Event{
		Timestamp:    time.Now(),
		DeviceID:     du.info.MatchString(),
		InputKeyCode: inputKey,
		OutputEvents: out,
		LatencyUs:    latencyUs,
	}
	o.logger.Log(event)
	o.publish(event)
}
