//go:build !linux && !windows

package commands

import (
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform/simulated"
)

// No real device backend exists for this platform; fall back to the
// simulated adapters so the binary still builds and the test/validate
// commands remain usable without hardware.
func newInputAdapter() platform.InputAdapter   { return simulated.NewInput() }
func newOutputAdapter() platform.OutputAdapter { return simulated.NewOutput() }
func platformScanTable() *keycode.Table        { return keycode.LinuxTable }
