package keycode

// PC/AT set-1 make-code scan codes. Extended keys (arrow cluster, right-hand
// Ctrl/Alt, numpad Enter/Divide, media keys) are prefixed with the 0xE0 lead
// byte on the wire; Extended: true tells the Windows output adapter to
// reproduce that prefix when synthesizing the key via SendInput.
const (
	winEsc        = 0x01
	win1          = 0x02
	win2          = 0x03
	win3          = 0x04
	win4          = 0x05
	win5          = 0x06
	win6          = 0x07
	win7          = 0x08
	win8          = 0x09
	win9          = 0x0A
	win0          = 0x0B
	winMinus      = 0x0C
	winEqual      = 0x0D
	winBackspace  = 0x0E
	winTab        = 0x0F
	winQ          = 0x10
	winW          = 0x11
	winE          = 0x12
	winR          = 0x13
	winT          = 0x14
	winY          = 0x15
	winU          = 0x16
	winI          = 0x17
	winO          = 0x18
	winP          = 0x19
	winLeftBrace  = 0x1A
	winRightBrace = 0x1B
	winEnter      = 0x1C
	winLeftCtrl   = 0x1D
	winA          = 0x1E
	winS          = 0x1F
	winD          = 0x20
	winF          = 0x21
	winG          = 0x22
	winH          = 0x23
	winJ          = 0x24
	winK          = 0x25
	winL          = 0x26
	winSemicolon  = 0x27
	winApostrophe = 0x28
	winGrave      = 0x29
	winLeftShift  = 0x2A
	winBackslash  = 0x2B
	winZ          = 0x2C
	winX          = 0x2D
	winC          = 0x2E
	winV          = 0x2F
	winB          = 0x30
	winN          = 0x31
	winM          = 0x32
	winComma      = 0x33
	winDot        = 0x34
	winSlash      = 0x35
	winRightShift = 0x36
	winKPAsterisk = 0x37
	winLeftAlt    = 0x38
	winSpace      = 0x39
	winCapsLock   = 0x3A
	winF1         = 0x3B
	winF2         = 0x3C
	winF3         = 0x3D
	winF4         = 0x3E
	winF5         = 0x3F
	winF6         = 0x40
	winF7         = 0x41
	winF8         = 0x42
	winF9         = 0x43
	winF10        = 0x44
	winNumLock    = 0x45
	winScrollLock = 0x46
	winKP7        = 0x47
	winKP8        = 0x48
	winKP9        = 0x49
	winKPMinus    = 0x4A
	winKP4        = 0x4B
	winKP5        = 0x4C
	winKP6        = 0x4D
	winKPPlus     = 0x4E
	winKP1        = 0x4F
	winKP2        = 0x50
	winKP3        = 0x51
	winKP0        = 0x52
	winKPDot      = 0x53
	winF11        = 0x57
	winF12        = 0x58

	// Extended (0xE0-prefixed) codes.
	winKPEnter    = 0x1C
	winRightCtrl  = 0x1D
	winKPSlash    = 0x35
	winRightAlt   = 0x38
	winHome       = 0x47
	winUp         = 0x48
	winPageUp     = 0x49
	winLeft       = 0x4B
	winRight      = 0x4D
	winEnd        = 0x4F
	winDown       = 0x50
	winPageDown   = 0x51
	winInsert     = 0x52
	winDelete     = 0x53
	winLeftMeta   = 0x5B
	winRightMeta  = 0x5C
	winMenu       = 0x5D
	winPrint      = 0x37
	winPause      = 0x45
	winVolumeMute = 0x20
	winVolumeDown = 0x2E
	winVolumeUp   = 0x30
	winMediaNext  = 0x19
	winMediaPrev  = 0x10
	winMediaStop  = 0x24
	winMediaPlay  = 0x22
)

// WindowsTable is the PC set-1 scan code <-> KeyCode mapping.
var WindowsTable = newTable(map[KeyCode]ScanCode{
	Escape: {Code: winEsc},

	Digit1: {Code: win1}, Digit2: {Code: win2}, Digit3: {Code: win3},
	Digit4: {Code: win4}, Digit5: {Code: win5}, Digit6: {Code: win6},
	Digit7: {Code: win7}, Digit8: {Code: win8}, Digit9: {Code: win9},
	Digit0: {Code: win0},

	Minus: {Code: winMinus}, Equal: {Code: winEqual}, Backspace: {Code: winBackspace},
	Tab: {Code: winTab},

	Q: {Code: winQ}, W: {Code: winW}, E: {Code: winE}, R: {Code: winR},
	T: {Code: winT}, Y: {Code: winY}, U: {Code: winU}, I: {Code: winI},
	O: {Code: winO}, P: {Code: winP},

	LeftBracket: {Code: winLeftBrace}, RightBracket: {Code: winRightBrace},
	Enter: {Code: winEnter}, LCtrl: {Code: winLeftCtrl},

	A: {Code: winA}, S: {Code: winS}, D: {Code: winD}, F: {Code: winF},
	G: {Code: winG}, H: {Code: winH}, J: {Code: winJ}, K: {Code: winK},
	L: {Code: winL},

	Semicolon: {Code: winSemicolon}, Quote: {Code: winApostrophe}, Grave: {Code: winGrave},
	LShift: {Code: winLeftShift}, Backslash: {Code: winBackslash},

	Z: {Code: winZ}, X: {Code: winX}, C: {Code: winC}, V: {Code: winV},
	B: {Code: winB}, N: {Code: winN}, M: {Code: winM},

	Comma: {Code: winComma}, Period: {Code: winDot}, Slash: {Code: winSlash},
	RShift: {Code: winRightShift}, NumpadMultiply: {Code: winKPAsterisk},
	LAlt: {Code: winLeftAlt}, Space: {Code: winSpace}, CapsLock: {Code: winCapsLock},

	F1: {Code: winF1}, F2: {Code: winF2}, F3: {Code: winF3}, F4: {Code: winF4},
	F5: {Code: winF5}, F6: {Code: winF6}, F7: {Code: winF7}, F8: {Code: winF8},
	F9: {Code: winF9}, F10: {Code: winF10},

	NumLock: {Code: winNumLock}, ScrollLock: {Code: winScrollLock},

	Numpad7: {Code: winKP7}, Numpad8: {Code: winKP8}, Numpad9: {Code: winKP9},
	NumpadSubtract: {Code: winKPMinus}, Numpad4: {Code: winKP4}, Numpad5: {Code: winKP5},
	Numpad6: {Code: winKP6}, NumpadAdd: {Code: winKPPlus}, Numpad1: {Code: winKP1},
	Numpad2: {Code: winKP2}, Numpad3: {Code: winKP3}, Numpad0: {Code: winKP0},
	NumpadDecimal: {Code: winKPDot},

	F11: {Code: winF11}, F12: {Code: winF12},

	// Extended keys.
	NumpadEnter: {Code: winKPEnter, Extended: true},
	RCtrl:       {Code: winRightCtrl, Extended: true},
	NumpadDivide: {Code: winKPSlash, Extended: true},
	RAlt:         {Code: winRightAlt, Extended: true},
	Home:         {Code: winHome, Extended: true},
	Up:           {Code: winUp, Extended: true},
	PageUp:       {Code: winPageUp, Extended: true},
	Left:         {Code: winLeft, Extended: true},
	Right:        {Code: winRight, Extended: true},
	End:          {Code: winEnd, Extended: true},
	Down:         {Code: winDown, Extended: true},
	PageDown:     {Code: winPageDown, Extended: true},
	Insert:       {Code: winInsert, Extended: true},
	Delete:       {Code: winDelete, Extended: true},
	LMeta:        {Code: winLeftMeta, Extended: true},
	RMeta:        {Code: winRightMeta, Extended: true},
	ContextMenu:  {Code: winMenu, Extended: true},
	PrintScreen:  {Code: winPrint, Extended: true},
	Pause:        {Code: winPause},
	VolumeMute:   {Code: winVolumeMute, Extended: true},
	VolumeDown:   {Code: winVolumeDown, Extended: true},
	VolumeUp:     {Code: winVolumeUp, Extended: true},
	MediaNext:    {Code: winMediaNext, Extended: true},
	MediaPrev:    {Code: winMediaPrev, Extended: true},
	MediaStop:    {Code: winMediaStop, Extended: true},
	MediaPlayPause: {Code: winMediaPlay, Extended: true},
})
