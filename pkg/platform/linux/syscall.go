//go:build linux

package linux

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl issues the raw ioctl(2) syscall. arg is either a small integer
// value (for EVIOCGRAB-style requests) or a uintptr obtained from
// uintptrOf for requests that read/write a buffer.
func ioctl(fd int, request uint32, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(request), arg)
	if errno != 0 {
		return errno
	}
	return nil
}

func uintptrOf(p *byte) uintptr { return uintptr(unsafe.Pointer(p)) }
