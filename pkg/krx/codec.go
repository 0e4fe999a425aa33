// Package krx implements the .krx binary container format: a
// content-addressed, versioned encoding of a config.ConfigRoot with a
// fixed-layout header guarding the CBOR data section.
package krx

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode/decMode mirror the teacher's canonical-CBOR configuration:
// deterministic key ordering on encode, lenient-but-bounded decoding so
// forward-compatible trailing fields don't break old readers.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("krx: failed to build CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		MaxArrayElements:  1 << 20,
		MaxMapPairs:       1 << 20,
		MaxNestedLevels:   64,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("krx: failed to build CBOR decoder mode: %v", err))
	}
}

// marshal encodes v deterministically.
func marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// unmarshal decodes data into v, rejecting indefinite-length items and
// oversized collections before they ever reach application code.
func unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
