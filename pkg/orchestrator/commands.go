package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/klog"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/krx"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/latency"
)

// ConfigDir resolves the directory profiles are searched in when
// LoadProfile is given a bare name rather than a path, in priority order:
// KEYRX_CONFIG_DIR, then XDG_CONFIG_HOME/keyrx (Linux), then
// $HOME/.config/keyrx (or %USERPROFILE%\.config\keyrx on Windows).
func (o *Orchestrator) ConfigDir() (string, error) {
	if dir, ok := o.env.Var("KEYRX_CONFIG_DIR"); ok && dir != "" {
		return dir, nil
	}
	if runtime.GOOS == "linux" {
		if xdg, ok := o.env.Var("XDG_CONFIG_HOME"); ok && xdg != "" {
			return filepath.Join(xdg, "keyrx"), nil
		}
	}
	home, ok := o.env.Var("HOME")
	if !ok || home == "" {
		home, ok = o.env.Var("USERPROFILE")
	}
	if !ok || home == "" {
		return "", newRuntimeError("could not determine home directory to locate the config directory")
	}
	return filepath.Join(home, ".config", "keyrx"), nil
}

// LoadProfile reads and validates a .krx file, returning the parsed
// ConfigRoot without installing it. Call SwitchProfile (or Run, for the
// very first profile) to make it active. A bare filename (no path
// separator) is resolved against ConfigDir; anything else is used as-is.
func (o *Orchestrator) LoadProfile(name string) (*config.ConfigRoot, error) {
	path := name
	if filepath.Base(name) == name {
		dir, err := o.ConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: opening profile: %w", err)
	}
	defer f.Close()
	return krx.LoadReader(f)
}

// SwitchProfile atomically installs root as the active configuration,
// re-enumerating physical devices and re-deriving lookup tables and
// engine.Machine state for every match. Devices no longer matched by root
// are torn down (flushing their pressed sources first); newly matched
// devices are started fresh. Returns the previously active profile's name.
// In-flight events already dequeued by a device goroutine finish under the
// PREVIOUS configuration; no event splits across the swap boundary.
func (o *Orchestrator) SwitchProfile(root *config.ConfigRoot, profileName string) (string, error) {
	if err := root.Validate(); err != nil {
		return "", fmt.Errorf("orchestrator: refusing to switch to invalid config: %w", err)
	}

	o.switchMu.Lock()
	defer o.switchMu.Unlock()

	previous := o.cfg.Load()
	previousName := ""
	if previous != nil {
		previousName = previous.profileName
	}

	next, err := o.buildActiveConfig(root, profileName)
	if err != nil {
		return "", err
	}

	o.cfg.Store(next)
	o.output.UpdateBlockedScanCodes(o.blockedScanCodes(next))

	o.runMu.Lock()
	defer o.runMu.Unlock()

	parentCtx := o.runCtx
	if parentCtx == nil {
		// Orchestrator isn't running yet; Run will start these devices
		// itself once called with this newly-installed config.
		return previousName, nil
	}

	for key, du := range next.devices {
		o.stopDeviceLocked(key) // no-op if key wasn't previously running
		o.startDeviceLocked(parentCtx, key, du)
	}
	for key := range o.devices {
		if _, stillMatched := next.devices[key]; !stillMatched {
			o.stopDeviceLocked(key)
		}
	}

	return previousName, nil
}

// QueryLatency returns the current hot-path latency statistics snapshot
// (spec.md §4.I).
func (o *Orchestrator) QueryLatency() latency.Snapshot {
	return o.aggregator.Compute(o.recorder)
}

// DeviceState is one device's custom modifier/lock activity at the moment
// QueryState was called.
type DeviceState struct {
	DeviceID        string
	ModifiersActive []config.ModifierID
	LocksActive     []config.LockID
}

// StateSnapshot answers spec.md §6's QueryState() command.
type StateSnapshot struct {
	Running       bool
	UptimeSecs    uint64
	ActiveProfile string
	DeviceCount   int
	Devices       []DeviceState
}

// QueryState reports the orchestrator's current lifecycle and per-device
// state. Safe to call concurrently with the hot path: per-device state is
// read from a cache each device's own goroutine refreshes after every
// event and tick, never from the Machine itself (which is single-owner).
func (o *Orchestrator) QueryState() StateSnapshot {
	snap := StateSnapshot{Running: o.running.Load()}

	active := o.cfg.Load()
	if active == nil {
		return snap
	}
	snap.ActiveProfile = active.profileName
	snap.DeviceCount = len(active.devices)
	if snap.Running {
		snap.UptimeSecs = uint64(time.Since(o.startedAt).Seconds())
	}

	for _, du := range active.devices {
		if s := du.stateCache.Load(); s != nil {
			snap.Devices = append(snap.Devices, *s)
		} else {
			snap.Devices = append(snap.Devices, DeviceState{DeviceID: du.info.MatchString()})
		}
	}
	sort.Slice(snap.Devices, func(i, j int) bool { return snap.Devices[i].DeviceID < snap.Devices[j].DeviceID })
	return snap
}

// updateDeviceState refreshes du's cached state snapshot. Called from
// du's own dispatch goroutine only.
func updateDeviceState(du *deviceUnit) {
	du.stateCache.Store(&DeviceState{
		DeviceID:        du.info.MatchString(),
		ModifiersActive: du.machine.ActiveModifiers(),
		LocksActive:     du.machine.ActiveLocks(),
	})
}

// EventRecord is spec.md §6's SubscribeEvents payload: one fully-processed
// input event and the output events it produced.
type EventRecord struct {
	TimestampUs  uint64
	DeviceID     string
	InputKeyCode keycode.KeyCode
	OutputEvents []engine.OutEvent
	LatencyUs    uint32
}

// subscriberCapacity bounds each subscriber's event queue; a subscriber
// that falls behind has its oldest queued record dropped rather than ever
// blocking the engine's dispatch goroutines.
const subscriberCapacity = 256

type subscriber struct {
	ch    chan EventRecord
	drops dropCounter
}

// SubscribeEvents registers a new subscriber and returns its event
// channel, a drop counter tracking records dropped because the subscriber
// fell behind, and an unsubscribe function. ctx bounds the subscription's
// lifetime; canceling it (or calling unsubscribe) closes the channel.
func (o *Orchestrator) SubscribeEvents(ctx context.Context) (<-chan EventRecord, func() uint64, func()) {
	sub := &subscriber{ch: make(chan EventRecord, subscriberCapacity)}
	id := o.subSeq.Add(1)

	o.subsMu.Lock()
	o.subs[id] = sub
	o.subsMu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			o.subsMu.Lock()
			delete(o.subs, id)
			close(sub.ch)
			o.subsMu.Unlock()
		})
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			unsubscribe()
		}()
	}

	return sub.ch, sub.drops.Load, unsubscribe
}

// publish fans event out to every live subscriber, dropping the oldest
// queued record for any subscriber whose channel is full.
func (o *Orchestrator) publish(event klog.Event) {
	o.subsMu.Lock()
	defer o.subsMu.Unlock()
	if len(o.subs) == 0 {
		return
	}

	record := EventRecord{
		TimestampUs:  uint64(event.Timestamp.UnixMicro()),
		DeviceID:     event.DeviceID,
		InputKeyCode: event.InputKeyCode,
		OutputEvents: event.OutputEvents,
		LatencyUs:    event.LatencyUs,
	}
	for _, sub := range o.subs {
		select {
		case sub.ch <- record:
		default:
			select {
			case <-sub.ch:
				sub.drops.inc()
			default:
			}
			select {
			case sub.ch <- record:
			default:
			}
		}
	}
}
