//go:build !linux && !windows

package orchestrator

// CheckPermissions always succeeds on platforms without a specific
// permission model wired up.
func (o *Orchestrator) CheckPermissions() error { return nil }

// IsElevated is unknown on unsupported platforms; reports false.
func (o *Orchestrator) IsElevated() bool { return false }
