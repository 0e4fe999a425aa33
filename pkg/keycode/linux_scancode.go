package keycode

// Linux evdev key codes, from the kernel's uapi/linux/input-event-codes.h.
// evdev has a flat code namespace (no extended-key escape prefix); the
// Extended bit is always false here. Values grounded on the KEY_* constant
// table documented in the input-uapi reference example.
const (
	linuxKeyEsc        = 1
	linuxKey1          = 2
	linuxKey2          = 3
	linuxKey3          = 4
	linuxKey4          = 5
	linuxKey5          = 6
	linuxKey6          = 7
	linuxKey7          = 8
	linuxKey8          = 9
	linuxKey9          = 10
	linuxKey0          = 11
	linuxKeyMinus      = 12
	linuxKeyEqual      = 13
	linuxKeyBackspace  = 14
	linuxKeyTab        = 15
	linuxKeyQ          = 16
	linuxKeyW          = 17
	linuxKeyE          = 18
	linuxKeyR          = 19
	linuxKeyT          = 20
	linuxKeyY          = 21
	linuxKeyU          = 22
	linuxKeyI          = 23
	linuxKeyO          = 24
	linuxKeyP          = 25
	linuxKeyLeftBrace  = 26
	linuxKeyRightBrace = 27
	linuxKeyEnter      = 28
	linuxKeyLeftCtrl   = 29
	linuxKeyA          = 30
	linuxKeyS          = 31
	linuxKeyD          = 32
	linuxKeyF          = 33
	linuxKeyG          = 34
	linuxKeyH          = 35
	linuxKeyJ          = 36
	linuxKeyK          = 37
	linuxKeyL          = 38
	linuxKeySemicolon  = 39
	linuxKeyApostrophe = 40
	linuxKeyGrave      = 41
	linuxKeyLeftShift  = 42
	linuxKeyBackslash  = 43
	linuxKeyZ          = 44
	linuxKeyX          = 45
	linuxKeyC          = 46
	linuxKeyV          = 47
	linuxKeyB          = 48
	linuxKeyN          = 49
	linuxKeyM          = 50
	linuxKeyComma      = 51
	linuxKeyDot        = 52
	linuxKeySlash      = 53
	linuxKeyRightShift = 54
	linuxKeyKPAsterisk = 55
	linuxKeyLeftAlt    = 56
	linuxKeySpace      = 57
	linuxKeyCapsLock   = 58
	linuxKeyF1         = 59
	linuxKeyF2         = 60
	linuxKeyF3         = 61
	linuxKeyF4         = 62
	linuxKeyF5         = 63
	linuxKeyF6         = 64
	linuxKeyF7         = 65
	linuxKeyF8         = 66
	linuxKeyF9         = 67
	linuxKeyF10        = 68
	linuxKeyNumLock    = 69
	linuxKeyScrollLock = 70
	linuxKeyKP7        = 71
	linuxKeyKP8        = 72
	linuxKeyKP9        = 73
	linuxKeyKPMinus    = 74
	linuxKeyKP4        = 75
	linuxKeyKP5        = 76
	linuxKeyKP6        = 77
	linuxKeyKPPlus     = 78
	linuxKeyKP1        = 79
	linuxKeyKP2        = 80
	linuxKeyKP3        = 81
	linuxKeyKP0        = 82
	linuxKeyKPDot      = 83
	linuxKeyF11        = 87
	linuxKeyF12        = 88
	linuxKeyKPEnter    = 96
	linuxKeyRightCtrl  = 97
	linuxKeyKPSlash    = 98
	linuxKeyRightAlt   = 100
	linuxKeyHome       = 102
	linuxKeyUp         = 103
	linuxKeyPageUp     = 104
	linuxKeyLeft       = 105
	linuxKeyRight      = 106
	linuxKeyEnd        = 107
	linuxKeyDown       = 108
	linuxKeyPageDown   = 109
	linuxKeyInsert     = 110
	linuxKeyDelete     = 111
	linuxKeyPause      = 119
	linuxKeyLeftMeta   = 125
	linuxKeyRightMeta  = 126
	linuxKeyMenu       = 127
	linuxKeyPlayPause  = 164
	linuxKeyNextSong   = 163
	linuxKeyPrevSong   = 165
	linuxKeyStopCD     = 166
	linuxKeyVolumeDown = 114
	linuxKeyVolumeUp   = 115
	linuxKeyMute       = 113
	linuxKeyPrint      = 99
	linuxKeyF13        = 183
	linuxKeyF14        = 184
	linuxKeyF15        = 185
	linuxKeyF16        = 186
	linuxKeyF17        = 187
	linuxKeyF18        = 188
	linuxKeyF19        = 189
	linuxKeyF20        = 190
	linuxKeyF21        = 191
	linuxKeyF22        = 192
	linuxKeyF23        = 193
	linuxKeyF24        = 194
)

// LinuxTable is the evdev KEY_* <-> KeyCode mapping.
var LinuxTable = newTable(map[KeyCode]ScanCode{
	Escape: {Code: linuxKeyEsc},

	Digit1: {Code: linuxKey1}, Digit2: {Code: linuxKey2}, Digit3: {Code: linuxKey3},
	Digit4: {Code: linuxKey4}, Digit5: {Code: linuxKey5}, Digit6: {Code: linuxKey6},
	Digit7: {Code: linuxKey7}, Digit8: {Code: linuxKey8}, Digit9: {Code: linuxKey9},
	Digit0: {Code: linuxKey0},

	Minus: {Code: linuxKeyMinus}, Equal: {Code: linuxKeyEqual}, Backspace: {Code: linuxKeyBackspace},
	Tab: {Code: linuxKeyTab},

	Q: {Code: linuxKeyQ}, W: {Code: linuxKeyW}, E: {Code: linuxKeyE}, R: {Code: linuxKeyR},
	T: {Code: linuxKeyT}, Y: {Code: linuxKeyY}, U: {Code: linuxKeyU}, I: {Code: linuxKeyI},
	O: {Code: linuxKeyO}, P: {Code: linuxKeyP},

	LeftBracket: {Code: linuxKeyLeftBrace}, RightBracket: {Code: linuxKeyRightBrace},
	Enter: {Code: linuxKeyEnter}, LCtrl: {Code: linuxKeyLeftCtrl},

	A: {Code: linuxKeyA}, S: {Code: linuxKeyS}, D: {Code: linuxKeyD}, F: {Code: linuxKeyF},
	G: {Code: linuxKeyG}, H: {Code: linuxKeyH}, J: {Code: linuxKeyJ}, K: {Code: linuxKeyK},
	L: {Code: linuxKeyL},

	Semicolon: {Code: linuxKeySemicolon}, Quote: {Code: linuxKeyApostrophe}, Grave: {Code: linuxKeyGrave},
	LShift: {Code: linuxKeyLeftShift}, Backslash: {Code: linuxKeyBackslash},

	Z: {Code: linuxKeyZ}, X: {Code: linuxKeyX}, C: {Code: linuxKeyC}, V: {Code: linuxKeyV},
	B: {Code: linuxKeyB}, N: {Code: linuxKeyN}, M: {Code: linuxKeyM},

	Comma: {Code: linuxKeyComma}, Period: {Code: linuxKeyDot}, Slash: {Code: linuxKeySlash},
	RShift: {Code: linuxKeyRightShift}, NumpadMultiply: {Code: linuxKeyKPAsterisk},
	LAlt: {Code: linuxKeyLeftAlt}, Space: {Code: linuxKeySpace}, CapsLock: {Code: linuxKeyCapsLock},

	F1: {Code: linuxKeyF1}, F2: {Code: linuxKeyF2}, F3: {Code: linuxKeyF3}, F4: {Code: linuxKeyF4},
	F5: {Code: linuxKeyF5}, F6: {Code: linuxKeyF6}, F7: {Code: linuxKeyF7}, F8: {Code: linuxKeyF8},
	F9: {Code: linuxKeyF9}, F10: {Code: linuxKeyF10},

	NumLock: {Code: linuxKeyNumLock}, ScrollLock: {Code: linuxKeyScrollLock},

	Numpad7: {Code: linuxKeyKP7}, Numpad8: {Code: linuxKeyKP8}, Numpad9: {Code: linuxKeyKP9},
	NumpadSubtract: {Code: linuxKeyKPMinus}, Numpad4: {Code: linuxKeyKP4}, Numpad5: {Code: linuxKeyKP5},
	Numpad6: {Code: linuxKeyKP6}, NumpadAdd: {Code: linuxKeyKPPlus}, Numpad1: {Code: linuxKeyKP1},
	Numpad2: {Code: linuxKeyKP2}, Numpad3: {Code: linuxKeyKP3}, Numpad0: {Code: linuxKeyKP0},
	NumpadDecimal: {Code: linuxKeyKPDot},

	F11: {Code: linuxKeyF11}, F12: {Code: linuxKeyF12},

	NumpadEnter: {Code: linuxKeyKPEnter}, RCtrl: {Code: linuxKeyRightCtrl},
	NumpadDivide: {Code: linuxKeyKPSlash}, RAlt: {Code: linuxKeyRightAlt},

	Home: {Code: linuxKeyHome}, Up: {Code: linuxKeyUp}, PageUp: {Code: linuxKeyPageUp},
	Left: {Code: linuxKeyLeft}, Right: {Code: linuxKeyRight}, End: {Code: linuxKeyEnd},
	Down: {Code: linuxKeyDown}, PageDown: {Code: linuxKeyPageDown},
	Insert: {Code: linuxKeyInsert}, Delete: {Code: linuxKeyDelete},

	Pause: {Code: linuxKeyPause}, LMeta: {Code: linuxKeyLeftMeta}, RMeta: {Code: linuxKeyRightMeta},
	ContextMenu: {Code: linuxKeyMenu},

	MediaPlayPause: {Code: linuxKeyPlayPause}, MediaNext: {Code: linuxKeyNextSong},
	MediaPrev: {Code: linuxKeyPrevSong}, MediaStop: {Code: linuxKeyStopCD},
	VolumeDown: {Code: linuxKeyVolumeDown}, VolumeUp: {Code: linuxKeyVolumeUp},
	VolumeMute: {Code: linuxKeyMute}, PrintScreen: {Code: linuxKeyPrint},

	F13: {Code: linuxKeyF13}, F14: {Code: linuxKeyF14}, F15: {Code: linuxKeyF15},
	F16: {Code: linuxKeyF16}, F17: {Code: linuxKeyF17}, F18: {Code: linuxKeyF18},
	F19: {Code: linuxKeyF19}, F20: {Code: linuxKeyF20}, F21: {Code: linuxKeyF21},
	F22: {Code: linuxKeyF22}, F23: {Code: linuxKeyF23}, F24: {Code: linuxKeyF24},
})
