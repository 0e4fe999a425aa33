//go:build tools

package tools

// mockery is kept as a tool reference only. It runs as an installed binary
// (not via go run), so no blank import is needed here. No generated mocks
// exist in this module: pkg/orchestrator's tests use the hand-written fakes
// in pkg/platform/simulated.
