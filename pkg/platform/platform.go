// Package platform declares the capability-set interfaces the engine uses
// to grab physical keyboards and inject synthesized output, independent of
// any one operating system. Concrete adapters live in pkg/platform/linux,
// pkg/platform/windows, and pkg/platform/simulated.
package platform

import (
	"context"
	"fmt"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// RawEvent is one physical key transition as delivered by an InputAdapter,
// before it reaches any device's engine.Machine.
type RawEvent struct {
	KeyCode     keycode.KeyCode
	Kind        engine.EventKind
	TimestampUs uint64
	DeviceID    string
}

// DeviceInfo identifies one physical input device as enumerated by an
// InputAdapter.
type DeviceInfo struct {
	Bus, Vendor, Product uint16
	PhysPath             string
	Name                 string
	Serial               string
}

// DedupKey is the (bus, vendor, product, phys_path) tuple the orchestrator
// uses to fold multiple event nodes exposed by the same physical device
// into a single logical device.
func (d DeviceInfo) DedupKey() string {
	return fmt.Sprintf("%04x:%04x:%04x:%s", d.Bus, d.Vendor, d.Product, d.PhysPath)
}

// MatchString is the identity string config.DeviceIdentifier patterns are
// matched against.
func (d DeviceInfo) MatchString() string {
	return d.Name + "\x00" + d.Serial + "\x00" + d.PhysPath
}

// InputAdapter grabs physical keyboard devices exclusively and streams
// their key events.
type InputAdapter interface {
	// Start begins capture and returns the bounded event stream. The
	// channel closes when ctx is canceled or Stop is called.
	Start(ctx context.Context) (<-chan RawEvent, error)
	// Devices enumerates currently present keyboard-class input devices.
	Devices() ([]DeviceInfo, error)
	// Stop releases every device grab acquired by Start.
	Stop() error
}

// OutputAdapter owns the single synthetic keyboard device events are
// injected through.
type OutputAdapter interface {
	// Start creates the synthetic device. Called once at orchestrator
	// startup.
	Start() error
	// Inject emits one output event through the synthetic device.
	Inject(ev engine.OutEvent) error
	// UpdateBlockedScanCodes atomically replaces the set of scan codes the
	// adapter must suppress from native delivery (Windows hook) or that
	// are already implied by the exclusive grab (Linux).
	UpdateBlockedScanCodes(blocked map[keycode.ScanCode]struct{})
	// Stop releases the synthetic device.
	Stop() error
}
