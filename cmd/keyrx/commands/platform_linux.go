//go:build linux

package commands

import (
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform/linux"
)

func newInputAdapter() platform.InputAdapter   { return linux.NewInput() }
func newOutputAdapter() platform.OutputAdapter { return linux.NewOutput() }
func platformScanTable() *keycode.Table        { return keycode.LinuxTable }
