package krx

import "github.com/RyosukeMondo/keyrx-sub002/pkg/config"

// Validate performs the structural pass required before any unchecked
// access to a decoded ConfigRoot: every tagged-union discriminant, vector
// length, and string is already bounds-checked by Go's memory model and by
// decMode's collection limits (codec.go); this layer additionally enforces
// the config package's own semantic invariants (config.ConfigRoot.Validate),
// so a .krx file that decodes cleanly but encodes an impossible config
// (unknown discriminant, out-of-range id, malformed tap_hold) is still
// rejected before the orchestrator ever sees it.
func Validate(root *config.ConfigRoot) error {
	return root.Validate()
}
