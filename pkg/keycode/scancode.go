package keycode

// ScanCode is a platform-native scan code. Extended encodes the
// platform-specific escape prefix (e.g. the 0xE0 lead byte on PC set-1 scan
// codes) so an output adapter can reproduce the exact byte sequence the OS
// expects for keys like the right-hand Ctrl/Alt or the arrow cluster.
type ScanCode struct {
	Code     uint16
	Extended bool
}

// Table is a bidirectional scan-code/keycode mapping for one platform.
// Built once at init() time from the platform-specific tables in
// linux_scancode.go / windows_scancode.go.
type Table struct {
	toScan map[KeyCode]ScanCode
	toKey  map[ScanCode]KeyCode
}

func newTable(pairs map[KeyCode]ScanCode) *Table {
	t := &Table{
		toScan: make(map[KeyCode]ScanCode, len(pairs)),
		toKey:  make(map[ScanCode]KeyCode, len(pairs)),
	}
	for kc, sc := range pairs {
		t.toScan[kc] = sc
		t.toKey[sc] = kc
	}
	return t
}

// KeyCodeToScanCode looks up the scan code for kc. A missing entry is
// reported only as ok == false; loading a config does not check its
// keycodes against this table. The orchestrator leaves such keys out of the
// blocked set, and the output adapters return an error from Inject.
func (t *Table) KeyCodeToScanCode(kc KeyCode) (ScanCode, bool) {
	sc, ok := t.toScan[kc]
	return sc, ok
}

// ScanCodeToKeyCode looks up the KeyCode for an incoming scan code. Missing
// entries are NOT an error: the Linux input adapter discards such an
// event, and the Windows hook leaves it to native delivery without
// forwarding it to the engine. Neither logs a warning.
func (t *Table) ScanCodeToKeyCode(sc ScanCode) (KeyCode, bool) {
	kc, ok := t.toKey[sc]
	return kc, ok
}

// AllScanCodes returns every scan code this table knows, in no particular
// order. Used by output adapters to declare the full key-event capability
// set on the synthetic device at startup.
func (t *Table) AllScanCodes() []ScanCode {
	codes := make([]ScanCode, 0, len(t.toKey))
	for sc := range t.toKey {
		codes = append(codes, sc)
	}
	return codes
}
