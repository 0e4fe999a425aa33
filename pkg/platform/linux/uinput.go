//go:build linux

package linux

import (
	"encoding/binary"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
)

const (
	evSyn = 0x00
	// evKey is declared in evdev.go

	synReport = 0
)

const uinputMaxNameSize = 80
const uinputSetupSize = 8 + uinputMaxNameSize + 4 // struct input_id + name + ff_effects_max

// syntheticDeviceName is the identity string so users can tell the
// synthesized keyboard apart from their physical ones.
const syntheticDeviceName = "keyrx virtual keyboard"

// Output is the Linux OutputAdapter: a single /dev/uinput virtual keyboard
// that all remapped events are injected through.
type Output struct {
	mu      sync.Mutex
	fd      int
	started bool
	blocked map[keycode.ScanCode]struct{}
}

// NewOutput builds an unstarted uinput output adapter.
func NewOutput() *Output { return &Output{fd: -1} }

// Start opens /dev/uinput, declares the key event capability for every
// KeyCode known to the Linux scan-code table, and creates the device.
func (o *Output) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	fd, err := unix.Open("/dev/uinput", unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return fmt.Errorf("linux: open /dev/uinput: %w", err)
	}

	if err := ioctl(fd, uiSetEvBit, evKey); err != nil {
		unix.Close(fd)
		return fmt.Errorf("linux: UI_SET_EVBIT EV_KEY: %w", err)
	}
	if err := ioctl(fd, uiSetEvBit, evSyn); err != nil {
		unix.Close(fd)
		return fmt.Errorf("linux: UI_SET_EVBIT EV_SYN: %w", err)
	}
	for _, sc := range keycode.LinuxTable.AllScanCodes() {
		if err := ioctl(fd, uiSetKeyBit, uintptr(sc.Code)); err != nil {
			unix.Close(fd)
			return fmt.Errorf("linux: UI_SET_KEYBIT %d: %w", sc.Code, err)
		}
	}

	setup := make([]byte, uinputSetupSize)
	// struct input_id: bustype, vendor, product, version (all uint16, BUS_VIRTUAL)
	binary.LittleEndian.PutUint16(setup[0:2], 0x06)
	copy(setup[8:8+uinputMaxNameSize], syntheticDeviceName)
	if err := ioctl(fd, uiDevSetup, uintptrOf(&setup[0])); err != nil {
		unix.Close(fd)
		return fmt.Errorf("linux: UI_DEV_SETUP: %w", err)
	}
	if err := ioctl(fd, uiDevCreate, 0); err != nil {
		unix.Close(fd)
		return fmt.Errorf("linux: UI_DEV_CREATE: %w", err)
	}

	o.fd = fd
	o.started = true
	return nil
}

// Inject writes one key event followed by a SYN_REPORT so the kernel input
// core flushes it to readers immediately.
func (o *Output) Inject(ev engine.OutEvent) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.started {
		return fmt.Errorf("linux: output adapter not started")
	}

	sc, ok := keycode.LinuxTable.KeyCodeToScanCode(ev.KeyCode)
	if !ok {
		return fmt.Errorf("linux: no scan code for keycode %s", ev.KeyCode)
	}

	value := int32(0)
	if ev.Kind == engine.Press {
		value = 1
	}

	if err := o.writeEvent(evKey, sc.Code, value); err != nil {
		return err
	}
	return o.writeEvent(evSyn, synReport, 0)
}

func (o *Output) writeEvent(typ, code uint16, value int32) error {
	buf := make([]byte, inputEventSize)
	binary.LittleEndian.PutUint16(buf[16:18], typ)
	binary.LittleEndian.PutUint16(buf[18:20], code)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(value))
	_, err := unix.Write(o.fd, buf)
	return err
}

// UpdateBlockedScanCodes records the current blocked set. On Linux the
// exclusive evdev grab already suppresses native delivery of every
// physical key, so this is informational only (surfaced through the query
// interface), not enforced here.
func (o *Output) UpdateBlockedScanCodes(blocked map[keycode.ScanCode]struct{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.blocked = blocked
}

// Stop destroys the uinput device and releases the file descriptor.
func (o *Output) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.started {
		return nil
	}
	_ = ioctl(o.fd, uiDevDestroy, 0)
	err := unix.Close(o.fd)
	o.started = false
	o.fd = -1
	return err
}

var _ platform.OutputAdapter = (*Output)(nil)
