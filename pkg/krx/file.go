package krx

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
)

// Magic is the fixed 4-byte header that opens every .krx file: "K R X \n".
var Magic = [4]byte{'K', 'R', 'X', '\n'}

// Version is the only data-section encoding this package currently writes
// or accepts.
const Version uint32 = 1

// headerSize is the fixed length of the header preceding the CBOR data
// section: magic(4) + version(4) + sha256(32) + data length(8).
const headerSize = 48

// minDataLength is the smallest data section this package will accept;
// anything shorter cannot possibly hold a valid ConfigRoot and is rejected
// before the digest is even checked.
const minDataLength = 16

// Save encodes root as a complete .krx file.
func Save(root *config.ConfigRoot) ([]byte, error) {
	var buf bytes.Buffer
	if err := SaveWriter(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveWriter encodes root and writes the .krx file to w.
func SaveWriter(w io.Writer, root *config.ConfigRoot) error {
	if err := root.Validate(); err != nil {
		return fmt.Errorf("krx: refusing to save invalid config: %w", err)
	}

	data, err := marshal(root)
	if err != nil {
		return fmt.Errorf("krx: encoding data section: %w", err)
	}
	digest := sha256.Sum256(data)

	header := make([]byte, headerSize)
	copy(header[0:4], Magic[:])
	binary.LittleEndian.PutUint32(header[4:8], Version)
	copy(header[8:40], digest[:])
	binary.LittleEndian.PutUint64(header[40:48], uint64(len(data)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("krx: writing header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("krx: writing data section: %w", err)
	}
	return nil
}

// Load parses a complete .krx file from raw bytes.
func Load(raw []byte) (*config.ConfigRoot, error) {
	return LoadReader(bytes.NewReader(raw))
}

// LoadReader parses a .krx file from r, enforcing the load contract: magic,
// version, length, digest, and structural validation, in that order. It
// never panics on adversarial input; every step is a bounds-checked slice
// operation or an explicit length comparison.
func LoadReader(r io.Reader) (*config.ConfigRoot, error) {
	header := make([]byte, headerSize)
	n, err := io.ReadFull(r, header)
	if n >= len(Magic) && !bytes.Equal(header[0:4], Magic[:]) {
		return nil, &DeserializeError{Kind: ErrInvalidMagic, Expected: Magic[:], Got: append([]byte(nil), header[0:4]...)}
	}
	if err != nil {
		return nil, &DeserializeError{Kind: ErrIO, Message: fmt.Sprintf("reading header: %v", err)}
	}

	gotVersion := binary.LittleEndian.Uint32(header[4:8])
	if gotVersion != Version {
		return nil, &DeserializeError{Kind: ErrVersionMismatch, Message: fmt.Sprintf("expected version %d, got %d", Version, gotVersion)}
	}

	var storedDigest [32]byte
	copy(storedDigest[:], header[8:40])
	dataLen := binary.LittleEndian.Uint64(header[40:48])

	if dataLen < minDataLength || dataLen > (1<<32) {
		return nil, &DeserializeError{Kind: ErrIO, Message: fmt.Sprintf("implausible data length %d", dataLen)}
	}

	data := make([]byte, dataLen)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, &DeserializeError{Kind: ErrIO, Message: fmt.Sprintf("reading data section: %v", err)}
	}

	if n, err := io.ReadFull(r, make([]byte, 1)); n > 0 || err != io.EOF {
		return nil, &DeserializeError{Kind: ErrIO, Message: "trailing data after data section"}
	}

	gotDigest := sha256.Sum256(data)
	if gotDigest != storedDigest {
		return nil, &DeserializeError{Kind: ErrHashMismatch, Expected: storedDigest[:], Got: gotDigest[:]}
	}

	var root config.ConfigRoot
	if err := unmarshal(data, &root); err != nil {
		return nil, &DeserializeError{Kind: ErrDecode, Message: err.Error()}
	}

	if err := Validate(&root); err != nil {
		return nil, &DeserializeError{Kind: ErrStructural, Message: err.Error()}
	}

	return &root, nil
}
