package commands

import "github.com/RyosukeMondo/keyrx-sub002/pkg/buildinfo"

// VersionString is the line printed by `keyrx --version`.
func VersionString() string { return buildinfo.String() }

const (
	exitSuccess    = 0
	exitConfig     = 1
	exitPermission = 2
	exitRuntime    = 3
)
