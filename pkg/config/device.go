package config

// DeviceIdentifier selects which physical devices a DeviceConfig applies
// to. Any matches every device; Pattern matches the glob against the
// device's identity string (name, serial, and bus path joined with NUL).
type DeviceIdentifier struct {
	Any     bool   `cbor:"1,keyasint,omitempty"`
	Pattern string `cbor:"2,keyasint,omitempty"`
}

// AnyDevice matches every device regardless of identity.
func AnyDevice() DeviceIdentifier { return DeviceIdentifier{Any: true} }

// DevicePattern matches devices whose identity string matches the glob
// pattern ('*' matches any run of characters, '?' matches exactly one).
func DevicePattern(pattern string) DeviceIdentifier {
	return DeviceIdentifier{Pattern: pattern}
}

// Matches reports whether identity (the device's "name\x00serial\x00busPath"
// string, see pkg/platform) satisfies this identifier.
func (d DeviceIdentifier) Matches(identity string) bool {
	if d.Any {
		return true
	}
	return globMatch(d.Pattern, identity)
}

// globMatch matches a flat glob ('*' and '?') against s as one opaque
// string. Unlike path.Match, '*' is not stopped by '/': identity strings
// are "name\x00serial\x00physPath" and Linux phys paths routinely contain
// '/' (e.g. "usb-0000:00:14.0-1/input0"), so patterns like "usb-*" or
// "*numpad*" must still match across it.
func globMatch(pattern, s string) bool {
	p := []rune(pattern)
	r := []rune(s)

	pIdx, sIdx := 0, 0
	starIdx, matchIdx := -1, 0

	for sIdx < len(r) {
		switch {
		case pIdx < len(p) && (p[pIdx] == '?' || p[pIdx] == r[sIdx]):
			pIdx++
			sIdx++
		case pIdx < len(p) && p[pIdx] == '*':
			starIdx = pIdx
			matchIdx = sIdx
			pIdx++
		case starIdx != -1:
			pIdx = starIdx + 1
			matchIdx++
			sIdx = matchIdx
		default:
			return false
		}
	}
	for pIdx < len(p) && p[pIdx] == '*' {
		pIdx++
	}
	return pIdx == len(p)
}

// DeviceConfig groups the ordered KeyMapping list that applies to devices
// matching Identifier. Device order in ConfigRoot.Devices is priority
// order: the first DeviceConfig whose Identifier matches a physical device
// wins.
type DeviceConfig struct {
	Identifier DeviceIdentifier `cbor:"1,keyasint"`
	Mappings   []KeyMapping     `cbor:"2,keyasint"`
}
