// Package buildinfo holds version metadata stamped into the keyrx binary at
// build time via -ldflags.
package buildinfo

// Version, GitCommit, and BuildDate are overridden at build time, e.g.:
//
//	go build -ldflags "-X github.com/RyosukeMondo/keyrx-sub002/pkg/buildinfo.Version=1.2.0 \
//	  -X github.com/RyosukeMondo/keyrx-sub002/pkg/buildinfo.GitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/RyosukeMondo/keyrx-sub002/pkg/buildinfo.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "0.0.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String formats the full version line printed by `keyrx -version`.
func String() string {
	return "keyrx " + Version + " (built " + BuildDate + ", commit " + GitCommit + ")"
}
