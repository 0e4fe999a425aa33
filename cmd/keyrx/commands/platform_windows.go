//go:build windows

package commands

import (
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/platform/windows"
)

func newInputAdapter() platform.InputAdapter   { return windows.NewInput() }
func newOutputAdapter() platform.OutputAdapter { return windows.NewOutput() }
func platformScanTable() *keycode.Table        { return keycode.WindowsTable }
