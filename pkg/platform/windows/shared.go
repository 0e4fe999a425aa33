//go:build windows

package windows

import (
	"sync/atomic"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// blockedScanCodeSet holds the keys a low-level hook procedure should
// swallow. A WH_KEYBOARD_LL callback is a single process-wide C function
// pointer (registered via syscall.NewCallback), so it cannot close over a
// particular *Input the way a method value normally would; this atomic
// value is the hook's only way to see configuration updates.
type blockedScanCodeSet struct {
	atomic.Pointer[map[keycode.ScanCode]struct{}]
}

func (b *blockedScanCodeSet) store(m map[keycode.ScanCode]struct{}) {
	b.Pointer.Store(&m)
}

func (b *blockedScanCodeSet) blocked(sc keycode.ScanCode) bool {
	p := b.Pointer.Load()
	if p == nil {
		return false
	}
	_, ok := (*p)[sc]
	return ok
}

var sharedBlockedScanCodes blockedScanCodeSet
