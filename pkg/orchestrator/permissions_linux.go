//go:build linux

package orchestrator

import (
	"golang.org/x/sys/unix"
)

// CheckPermissions reports whether the calling process can open the evdev
// and uinput device nodes it needs. Running as root always satisfies this;
// otherwise the caller must be in the "input" group (for /dev/input/event*)
// and have write access to /dev/uinput.
func (o *Orchestrator) CheckPermissions() error {
	if unix.Geteuid() == 0 {
		return nil
	}

	var problems []string
	if err := unix.Access("/dev/uinput", unix.W_OK); err != nil {
		problems = append(problems, "no write access to /dev/uinput (join the 'input' group or run as root)")
	}
	if err := unix.Access("/dev/input", unix.R_OK); err != nil {
		problems = append(problems, "no read access to /dev/input (join the 'input' group or run as root)")
	}
	if len(problems) == 0 {
		return nil
	}
	return newPlatformError("CheckPermissions", "%v", problems)
}

// IsElevated reports whether the process is running with root privileges.
func (o *Orchestrator) IsElevated() bool {
	return unix.Geteuid() == 0
}
