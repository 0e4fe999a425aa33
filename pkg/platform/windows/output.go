//go:build windows

package windows

import (
	"fmt"
	"sync"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/engine"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
)

// Output is the Windows OutputAdapter: it injects remapped key events
// through SendInput using KEYEVENTF_SCANCODE, so the receiving application
// sees the same scan codes a physical keyboard would produce.
type Output struct {
	mu      sync.Mutex
	started bool
	blocked map[keycode.ScanCode]struct{}
}

// NewOutput builds an unstarted SendInput output adapter.
func NewOutput() *Output { return &Output{} }

// Start marks the adapter ready. SendInput needs no device handle or setup
// step, unlike uinput's create-a-virtual-device dance.
func (o *Output) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started = true
	return nil
}

// Inject sends one key event via SendInput, using the scan code's Extended
// bit to set KEYEVENTF_EXTENDEDKEY the way a physical extended key (the
// right-hand Ctrl/Alt, the arrow cluster, and similar) would report.
func (o *Output) Inject(ev engine.OutEvent) error {
	o.mu.Lock()
	started := o.started
	o.mu.Unlock()
	if !started {
		return fmt.Errorf("windows: output adapter not started")
	}

	sc, ok := keycode.WindowsTable.KeyCodeToScanCode(ev.KeyCode)
	if !ok {
		return fmt.Errorf("windows: no scan code for keycode %s", ev.KeyCode)
	}

	flags := uint32(keyEventFScanCode)
	if sc.Extended {
		flags |= keyEventFExtendedKey
	}
	if ev.Kind == engine.Release {
		flags |= keyEventFKeyUp
	}

	in := input{
		inputType: inputTypeKeyboard,
		ki: keybdInput{
			wVk:     0,
			wScan:   sc.Code,
			dwFlags: flags,
		},
	}
	if _, err := sendInput(&in); err != nil {
		return fmt.Errorf("windows: SendInput: %w", err)
	}
	return nil
}

// UpdateBlockedScanCodes records the scan codes the low-level hook should
// swallow rather than forward to the rest of the system. Unlike Linux's
// exclusive evdev grab, Windows sees every physical keystroke by default,
// so suppression has to happen key-by-key inside the hook procedure
// (see lowLevelKeyboardProc in input.go).
func (o *Output) UpdateBlockedScanCodes(blocked map[keycode.ScanCode]struct{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.blocked = blocked
	sharedBlockedScanCodes.store(blocked)
}

// Stop releases no resources: SendInput holds nothing open between calls.
func (o *Output) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started = false
	return nil
}

var _ platform.OutputAdapter = (*Output)(nil)
