package krx

import (
	"encoding/hex"
	"fmt"
)

// DeserializeErrorKind discriminates the load-contract failure variants
// named in spec.md §4.C.
type DeserializeErrorKind uint8

const (
	ErrInvalidMagic DeserializeErrorKind = iota
	ErrVersionMismatch
	ErrHashMismatch
	ErrDecode
	ErrStructural
	ErrIO
)

// DeserializeError is returned for any failure to load a .krx file. Expected/
// Got carry the raw bytes for InvalidMagic and HashMismatch so callers can
// report a precise diagnostic without re-deriving it.
type DeserializeError struct {
	Kind     DeserializeErrorKind
	Message  string
	Expected []byte
	Got      []byte
}

func (e *DeserializeError) Error() string {
	switch e.Kind {
	case ErrInvalidMagic:
		return fmt.Sprintf("krx: invalid magic: expected %s, got %s", hex.EncodeToString(e.Expected), hex.EncodeToString(e.Got))
	case ErrVersionMismatch:
		return "krx: " + e.Message
	case ErrHashMismatch:
		return fmt.Sprintf("krx: hash mismatch: expected %s, got %s", hex.EncodeToString(e.Expected), hex.EncodeToString(e.Got))
	case ErrDecode:
		return "krx: decode error: " + e.Message
	case ErrStructural:
		return "krx: structural validation failed: " + e.Message
	case ErrIO:
		return "krx: " + e.Message
	default:
		return "krx: unknown error"
	}
}
