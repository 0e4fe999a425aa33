//go:build windows

package orchestrator

import (
	"golang.org/x/sys/windows"
)

// CheckPermissions reports whether the calling process is running elevated.
// Low-level keyboard hooks can only observe and block input from other
// elevated processes when this process is itself elevated.
func (o *Orchestrator) CheckPermissions() error {
	if windows.GetCurrentProcessToken().IsElevated() {
		return nil
	}
	return newPlatformError("CheckPermissions", "not running as administrator; key remapping may not affect elevated applications")
}

// IsElevated reports whether the process is running with administrator
// privileges.
func (o *Orchestrator) IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
