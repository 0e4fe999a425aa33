// Package keycode defines the universal, platform-independent enumeration
// of physical keys and the scan-code tables that translate to and from it.
package keycode

// KeyCode is a closed enumeration of physical key identities. The domain is
// fixed at compile time; values outside this set are rejected by the
// config validator (pkg/config) rather than accepted as opaque integers.
type KeyCode uint16

const (
	Unknown KeyCode = iota

	// Letters
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	// Digits (top row)
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	// Modifiers (physical)
	LShift
	RShift
	LCtrl
	RCtrl
	LAlt
	RAlt
	LMeta
	RMeta

	// Whitespace / editing
	Space
	Tab
	Enter
	Backspace
	Escape
	CapsLock
	Delete
	Insert

	// Navigation
	Home
	End
	PageUp
	PageDown
	Up
	Down
	Left
	Right

	// Punctuation
	Minus
	Equal
	LeftBracket
	RightBracket
	Backslash
	Semicolon
	Quote
	Grave
	Comma
	Period
	Slash

	// Numpad
	NumLock
	NumpadDivide
	NumpadMultiply
	NumpadSubtract
	NumpadAdd
	NumpadEnter
	NumpadDecimal
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9

	// Media
	MediaPlayPause
	MediaNext
	MediaPrev
	MediaStop
	VolumeUp
	VolumeDown
	VolumeMute

	// Misc locks used as remap targets, distinct from custom LockId state
	ScrollLock

	// PrintScreen / system
	PrintScreen
	Pause
	ContextMenu

	keyCodeCount
)

var keyCodeNames = [keyCodeCount]string{
	Unknown: "VK_UNKNOWN",

	A: "VK_A", B: "VK_B", C: "VK_C", D: "VK_D", E: "VK_E", F: "VK_F", G: "VK_G",
	H: "VK_H", I: "VK_I", J: "VK_J", K: "VK_K", L: "VK_L", M: "VK_M", N: "VK_N",
	O: "VK_O", P: "VK_P", Q: "VK_Q", R: "VK_R", S: "VK_S", T: "VK_T", U: "VK_U",
	V: "VK_V", W: "VK_W", X: "VK_X", Y: "VK_Y", Z: "VK_Z",

	Digit0: "VK_0", Digit1: "VK_1", Digit2: "VK_2", Digit3: "VK_3", Digit4: "VK_4",
	Digit5: "VK_5", Digit6: "VK_6", Digit7: "VK_7", Digit8: "VK_8", Digit9: "VK_9",

	F1: "VK_F1", F2: "VK_F2", F3: "VK_F3", F4: "VK_F4", F5: "VK_F5", F6: "VK_F6",
	F7: "VK_F7", F8: "VK_F8", F9: "VK_F9", F10: "VK_F10", F11: "VK_F11", F12: "VK_F12",
	F13: "VK_F13", F14: "VK_F14", F15: "VK_F15", F16: "VK_F16", F17: "VK_F17",
	F18: "VK_F18", F19: "VK_F19", F20: "VK_F20", F21: "VK_F21", F22: "VK_F22",
	F23: "VK_F23", F24: "VK_F24",

	LShift: "VK_LShift", RShift: "VK_RShift", LCtrl: "VK_LCtrl", RCtrl: "VK_RCtrl",
	LAlt: "VK_LAlt", RAlt: "VK_RAlt", LMeta: "VK_LMeta", RMeta: "VK_RMeta",

	Space: "VK_Space", Tab: "VK_Tab", Enter: "VK_Enter", Backspace: "VK_Backspace",
	Escape: "VK_Escape", CapsLock: "VK_CapsLock", Delete: "VK_Delete", Insert: "VK_Insert",

	Home: "VK_Home", End: "VK_End", PageUp: "VK_PageUp", PageDown: "VK_PageDown",
	Up: "VK_Up", Down: "VK_Down", Left: "VK_Left", Right: "VK_Right",

	Minus: "VK_Minus", Equal: "VK_Equal", LeftBracket: "VK_LeftBracket",
	RightBracket: "VK_RightBracket", Backslash: "VK_Backslash", Semicolon: "VK_Semicolon",
	Quote: "VK_Quote", Grave: "VK_Grave", Comma: "VK_Comma", Period: "VK_Period",
	Slash: "VK_Slash",

	NumLock: "VK_NumLock", NumpadDivide: "VK_NumpadDivide", NumpadMultiply: "VK_NumpadMultiply",
	NumpadSubtract: "VK_NumpadSubtract", NumpadAdd: "VK_NumpadAdd", NumpadEnter: "VK_NumpadEnter",
	NumpadDecimal: "VK_NumpadDecimal", Numpad0: "VK_Numpad0", Numpad1: "VK_Numpad1",
	Numpad2: "VK_Numpad2", Numpad3: "VK_Numpad3", Numpad4: "VK_Numpad4", Numpad5: "VK_Numpad5",
	Numpad6: "VK_Numpad6", Numpad7: "VK_Numpad7", Numpad8: "VK_Numpad8", Numpad9: "VK_Numpad9",

	MediaPlayPause: "VK_MediaPlayPause", MediaNext: "VK_MediaNext", MediaPrev: "VK_MediaPrev",
	MediaStop: "VK_MediaStop", VolumeUp: "VK_VolumeUp", VolumeDown: "VK_VolumeDown",
	VolumeMute: "VK_VolumeMute",

	ScrollLock: "VK_ScrollLock", PrintScreen: "VK_PrintScreen", Pause: "VK_Pause",
	ContextMenu: "VK_ContextMenu",
}

var nameToKeyCode map[string]KeyCode

func init() {
	nameToKeyCode = make(map[string]KeyCode, len(keyCodeNames))
	for kc, name := range keyCodeNames {
		if name == "" {
			continue
		}
		nameToKeyCode[name] = KeyCode(kc)
	}
}

// String returns the VK_ literal for kc, or "VK_UNKNOWN" if out of range.
func (kc KeyCode) String() string {
	if int(kc) < 0 || int(kc) >= len(keyCodeNames) || keyCodeNames[kc] == "" {
		return "VK_UNKNOWN"
	}
	return keyCodeNames[kc]
}

// Valid reports whether kc is a member of the closed domain.
func (kc KeyCode) Valid() bool {
	return kc != Unknown && int(kc) < int(keyCodeCount)
}

// Parse resolves a VK_ literal (e.g. "VK_A") back to its KeyCode.
// Reports ok=false for any string not in the closed domain.
func Parse(literal string) (KeyCode, bool) {
	kc, ok := nameToKeyCode[literal]
	return kc, ok
}
