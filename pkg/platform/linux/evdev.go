//go:build linux

// Package linux implements pkg/platform's InputAdapter/OutputAdapter over
// the Linux evdev character devices and the uinput virtual-device
// facility.
package linux

import (
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
)

// EV_KEY is the evdev event type carrying key press/release/repeat.
const evKey = 0x01

// Autorepeat value; the orchestrator never sees these (spec.md §4.G: "ignore
// auto-repeat").
const keyAutorepeat = 2

const inputEventSize = 24 // sec(8) + usec(8) + type(2) + code(2) + value(4)

type grabbedDevice struct {
	fd   int
	info platform.DeviceInfo
}

// Input is the Linux evdev InputAdapter: it exclusively grabs every
// keyboard-class /dev/input/eventN node and streams Press/Release events.
type Input struct {
	mu      sync.Mutex
	grabbed []grabbedDevice
	counter platform.DropCounter
}

// NewInput builds an unstarted evdev input adapter.
func NewInput() *Input { return &Input{} }

// Devices enumerates /dev/input/event* nodes and reads their identity via
// EVIOCGID/EVIOCGNAME/EVIOCGPHYS.
func (in *Input) Devices() ([]platform.DeviceInfo, error) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("linux: glob event nodes: %w", err)
	}

	var devices []platform.DeviceInfo
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			continue
		}
		info, err := readDeviceInfo(fd)
		unix.Close(fd)
		if err != nil {
			continue
		}
		devices = append(devices, info)
	}
	return devices, nil
}

func readDeviceInfo(fd int) (platform.DeviceInfo, error) {
	var id [8]byte
	if err := ioctl(fd, evIOCGID, uintptrOf(&id[0])); err != nil {
		return platform.DeviceInfo{}, err
	}
	name := make([]byte, 256)
	_ = ioctl(fd, evIOCGName(uint32(len(name))), uintptrOf(&name[0]))
	phys := make([]byte, 256)
	_ = ioctl(fd, evIOCGPhys(uint32(len(phys))), uintptrOf(&phys[0]))

	return platform.DeviceInfo{
		Bus:      binary.LittleEndian.Uint16(id[0:2]),
		Vendor:   binary.LittleEndian.Uint16(id[2:4]),
		Product:  binary.LittleEndian.Uint16(id[4:6]),
		PhysPath: cString(phys),
		Name:     cString(name),
	}, nil
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// Start exclusively grabs every enumerated device and begins pumping their
// events into a bounded, drop-oldest channel.
func (in *Input) Start(ctx context.Context) (<-chan platform.RawEvent, error) {
	raw := make(chan platform.RawEvent)

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDWR, 0)
		if err != nil {
			continue
		}
		info, err := readDeviceInfo(fd)
		if err != nil {
			unix.Close(fd)
			continue
		}
		if err := ioctl(fd, evIOCGrab, 1); err != nil {
			unix.Close(fd)
			continue
		}

		in.mu.Lock()
		in.grabbed = append(in.grabbed, grabbedDevice{fd: fd, info: info})
		in.mu.Unlock()

		go in.pump(ctx, fd, info.DedupKey(), raw)
	}

	return platform.DropOldest(ctx, raw, 4096, &in.counter), nil
}

func (in *Input) pump(ctx context.Context, fd int, deviceID string, out chan<- platform.RawEvent) {
	buf := make([]byte, inputEventSize)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := unix.Read(fd, buf)
		if err != nil || n != inputEventSize {
			return
		}

		typ := binary.LittleEndian.Uint16(buf[16:18])
		code := binary.LittleEndian.Uint16(buf[18:20])
		value := int32(binary.LittleEndian.Uint32(buf[20:24]))
		sec := binary.LittleEndian.Uint64(buf[0:8])
		usec := binary.LittleEndian.Uint64(buf[8:16])

		if typ != evKey || value == keyAutorepeat {
			continue
		}
		kc, ok := keycode.LinuxTable.ScanCodeToKeyCode(keycode.ScanCode{Code: code})
		if !ok {
			continue
		}
		kind := engine.Release
		if value == 1 {
			kind = engine.Press
		}

		select {
		case out <- platform.RawEvent{KeyCode: kc, Kind: kind, TimestampUs: sec*1_000_000 + usec, DeviceID: deviceID}:
		case <-ctx.Done():
			return
		}
	}
}

// Stop releases every grab acquired by Start.
func (in *Input) Stop() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, g := range in.grabbed {
		_ = ioctl(g.fd, evIOCGrab, 0)
		unix.Close(g.fd)
	}
	in.grabbed = nil
	return nil
}

var _ platform.InputAdapter = (*Input)(nil)
