// Package config defines the keyrx configuration model: the data produced
// by the DSL compiler (pkg/dslc), serialized by the binary codec (pkg/krx),
// and consumed by the lookup-table builder (pkg/lookup) and the engine
// (pkg/engine). It carries no behavior beyond validation.
package config

// MaxModifierID and MaxLockID are the largest assignable custom
// modifier/lock id. 255 (0xFF) is reserved and never valid, so 255 distinct
// ids (0x00 .. 0xFE) are available per vector.
const (
	MaxModifierID uint8 = 0xFE
	MaxLockID     uint8 = 0xFE
)

// ModifierID identifies a custom modifier (MD_00 .. MD_FE). Distinct from
// LockID so the compiler and validator cannot accidentally swap the two.
type ModifierID uint8

// Valid reports whether id is an assignable modifier id.
func (id ModifierID) Valid() bool { return uint8(id) <= MaxModifierID }

// LockID identifies a custom lock (LK_00 .. LK_FE).
type LockID uint8

// Valid reports whether id is an assignable lock id.
func (id LockID) Valid() bool { return uint8(id) <= MaxLockID }

// Version is a ConfigRoot's (major, minor) compatibility pair.
type Version struct {
	Major uint16 `cbor:"1,keyasint"`
	Minor uint16 `cbor:"2,keyasint"`
}

// Compatible reports whether a loader supporting this Version can read data
// written at file. Majors must match exactly; the loader's minor must be at
// least the file's, since minor bumps are additive.
func (v Version) Compatible(file Version) bool {
	return v.Major == file.Major && v.Minor >= file.Minor
}
