//go:build windows

package windows

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
)

// Input is the Windows InputAdapter: a single WH_KEYBOARD_LL hook covering
// every keyboard attached to the session, since Win32 gives no per-device
// handle for low-level keyboard hooks.
type Input struct {
	mu        sync.Mutex
	hookHandle uintptr
	hookThread uint32
	counter    platform.DropCounter
	done       chan struct{}
}

// NewInput builds an unstarted low-level keyboard hook adapter.
func NewInput() *Input { return &Input{} }

const syntheticDeviceID = "windows-session-keyboard"

// Devices reports a single synthetic entry: WH_KEYBOARD_LL sees every
// keyboard in the session as one merged stream, with no way to recover
// which physical device produced a given key (spec.md's per-device pattern
// matching therefore degrades to "the one Windows device" on this
// platform).
func (in *Input) Devices() ([]platform.DeviceInfo, error) {
	return []platform.DeviceInfo{{
		Name:     "Windows session keyboard",
		PhysPath: syntheticDeviceID,
	}}, nil
}

var activeRaw atomic.Pointer[chan platform.RawEvent]

// Start installs the low-level keyboard hook and begins pumping its
// message loop on a dedicated OS thread, since SetWindowsHookEx's hook
// lives only as long as the thread that installed it keeps dispatching
// messages.
func (in *Input) Start(ctx context.Context) (<-chan platform.RawEvent, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	raw := make(chan platform.RawEvent)
	activeRaw.Store(&raw)

	ready := make(chan error, 1)
	in.done = make(chan struct{})
	go in.runMessageLoop(ctx, ready)

	if err := <-ready; err != nil {
		return nil, err
	}

	return platform.DropOldest(ctx, raw, 4096, &in.counter), nil
}

// runMessageLoop pins itself to its OS thread with runtime.LockOSThread,
// since SetWindowsHookEx/GetMessage need to run on the thread that
// installed the hook, installs the hook, and pumps GetMessageW until told
// to stop.
func (in *Input) runMessageLoop(ctx context.Context, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	threadID, _, _ := procGetCurrentThreadId.Call()
	in.hookThread = uint32(threadID)

	moduleHandle, _, _ := procGetModuleHandleW.Call(0)

	hook, _, callErr := procSetWindowsHookExW.Call(
		uintptr(whKeyboardLL),
		lowLevelKeyboardProcCallback,
		moduleHandle,
		0,
	)
	if hook == 0 {
		ready <- fmt.Errorf("windows: SetWindowsHookEx: %w", callErr)
		close(in.done)
		return
	}
	in.hookHandle = hook
	ready <- nil

	go func() {
		<-ctx.Done()
		procPostThreadMessageW.Call(uintptr(in.hookThread), wmQuit, 0, 0)
	}()

	var msg struct {
		hwnd    uintptr
		message uint32
		wParam  uintptr
		lParam  uintptr
		time    uint32
		pt      struct{ x, y int32 }
	}
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		if ret == 0 {
			break
		}
	}

	procUnhookWindowsHookEx.Call(in.hookHandle)
	close(in.done)
}

// lowLevelKeyboardProcCallback is the single process-wide hook procedure.
// It cannot be a method value: SetWindowsHookEx needs a plain C calling
// convention function pointer, produced here via syscall.NewCallback.
var lowLevelKeyboardProcCallback = windows.NewCallback(lowLevelKeyboardProc)

func lowLevelKeyboardProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 {
		kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
		sc := keycode.ScanCode{
			Code:     uint16(kb.ScanCode),
			Extended: kb.Flags&llKHFExtended != 0,
		}

		if rawPtr := activeRaw.Load(); rawPtr != nil {
			if kc, ok := keycode.WindowsTable.ScanCodeToKeyCode(sc); ok {
				kind := engine.Press
				if kb.Flags&llKHFUp != 0 {
					kind = engine.Release
				}
				select {
				case *rawPtr <- platform.RawEvent{KeyCode: kc, Kind: kind, TimestampUs: uint64(kb.Time) * 1000, DeviceID: platform.DeviceInfo{PhysPath: syntheticDeviceID}.DedupKey()}:
				default:
					// Never block the system hook procedure; platform.DropOldest
					// downstream handles backpressure once the event is on the
					// channel, but an unbuffered send here would stall every
					// keyboard in the session.
				}
			}
		}

		if sharedBlockedScanCodes.blocked(sc) {
			return 1
		}
	}

	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

// Stop posts WM_QUIT to the hook's message loop and waits for it to unwind.
func (in *Input) Stop() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.hookThread == 0 {
		return nil
	}
	procPostThreadMessageW.Call(uintptr(in.hookThread), wmQuit, 0, 0)
	<-in.done
	activeRaw.Store(nil)
	return nil
}

var _ platform.InputAdapter = (*Input)(nil)
