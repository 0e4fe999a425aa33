package dslc

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"time"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// CompilerVersion is written into every compiled Metadata.
const CompilerVersion = "keyrx-dslc-1"

// condFrame is one entry of the (non-nestable) conditional-block stack:
// the condition plus the BaseKeyMappings accumulated inside it so far.
type condFrame struct {
	condition config.Condition
	mappings  []config.BaseKeyMapping
}

// state is the compiler's running build state for one compile() call,
// including across load()-included files, which share it.
type state struct {
	devices          []config.DeviceConfig
	currentDevice    *config.DeviceConfig
	conditionalStack []condFrame

	fs        FileSystem
	visited   map[string]bool // import cycle guard, by resolved absolute path
	chain     []string        // ordered import stack, for CircularImportError
	callDepth int
}

// CircularImportError is returned when a load() chain revisits a file it
// has already entered.
type CircularImportError struct {
	Chain []string
}

func (e *CircularImportError) Error() string {
	msg := "circular import: "
	for i, p := range e.Chain {
		if i > 0 {
			msg += " -> "
		}
		msg += p
	}
	return msg
}

// Compile compiles DSL source read from rootPath into a config.ConfigRoot.
func Compile(fs FileSystem, rootPath string) (*config.ConfigRoot, error) {
	src, err := fs.ReadFile(rootPath)
	if err != nil {
		return nil, fmt.Errorf("dslc: reading %s: %w", rootPath, err)
	}
	return CompileString(fs, rootPath, string(src))
}

// CompileString compiles DSL source text already read from sourcePath
// (sourcePath anchors relative load() resolution; only the text itself is
// hashed into Metadata, not sourcePath and not the files load() pulls in).
func CompileString(fs FileSystem, sourcePath, src string) (*config.ConfigRoot, error) {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		abs = sourcePath
	}

	st := &state{fs: fs, visited: map[string]bool{abs: true}, chain: []string{abs}}
	if err := st.run(src, abs); err != nil {
		return nil, err
	}

	if st.currentDevice != nil {
		return nil, &config.ParseError{Message: "unclosed device_start() block - missing device_end()"}
	}
	if len(st.conditionalStack) != 0 {
		return nil, &config.ParseError{Message: "unclosed when_start() block - missing when_end()"}
	}

	hash := sha256.Sum256([]byte(src))
	root := &config.ConfigRoot{
		Version: config.Version{Major: 1, Minor: 0},
		Devices: st.devices,
		Metadata: config.Metadata{
			CompilationTimestamp: uint64(time.Now().Unix()),
			CompilerVersion:      CompilerVersion,
			SourceHash:           hash,
		},
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return root, nil
}

func (st *state) run(src, filePath string) error {
	calls, err := parse(src)
	if err != nil {
		return &config.ParseError{Message: err.Error()}
	}
	for _, call := range calls {
		if err := st.exec(call, filePath); err != nil {
			if _, ok := err.(*CircularImportError); ok {
				return err
			}
			frame := config.ImportFrame{Path: filePath, Line: call.Line}
			if pe, ok := err.(*config.ParseError); ok {
				return pe.WithFrame(frame)
			}
			return (&config.ParseError{Message: err.Error()}).WithFrame(frame)
		}
	}
	return nil
}

func (st *state) exec(call Call, filePath string) error {
	switch call.Name {
	case "device_start":
		return st.deviceStart(call)
	case "device_end":
		return st.deviceEnd(call)
	case "map":
		return st.mapSimple(call)
	case "tap_hold":
		return st.tapHold(call)
	case "when_start":
		return st.whenStart(call, false)
	case "when_end", "when_not_end", "when_device_end":
		return st.whenEnd(call)
	case "when_not_start":
		return st.whenStart(call, true)
	case "when_device_start":
		return st.whenDeviceStart(call)
	case "load":
		return st.load(call, filePath)
	default:
		return fmt.Errorf("line %d: unknown operation %q", call.Line, call.Name)
	}
}

func (st *state) deviceStart(call Call) error {
	if st.currentDevice != nil {
		return fmt.Errorf("line %d: device_start() called while another device block is open", call.Line)
	}
	pattern, err := stringArg(call, 0)
	if err != nil {
		return err
	}
	var id config.DeviceIdentifier
	if pattern == "*" {
		id = config.AnyDevice()
	} else {
		id = config.DevicePattern(pattern)
	}
	st.currentDevice = &config.DeviceConfig{Identifier: id}
	return nil
}

func (st *state) deviceEnd(call Call) error {
	if st.currentDevice == nil {
		return fmt.Errorf("line %d: device_end() called without matching device_start()", call.Line)
	}
	if len(st.conditionalStack) != 0 {
		return fmt.Errorf("line %d: device_end() called with an open when_start() block", call.Line)
	}
	st.devices = append(st.devices, *st.currentDevice)
	st.currentDevice = nil
	return nil
}

func (st *state) addBase(m config.BaseKeyMapping) error {
	if n := len(st.conditionalStack); n > 0 {
		top := &st.conditionalStack[n-1]
		top.mappings = append(top.mappings, m)
		return nil
	}
	if st.currentDevice == nil {
		return fmt.Errorf("mapping must appear inside a device_start() block")
	}
	st.currentDevice.Mappings = append(st.currentDevice.Mappings, config.Base(m))
	return nil
}

func (st *state) mapSimple(call Call) error {
	from, err := keyArg(call, 0)
	if err != nil {
		return err
	}
	to, err := keyArg(call, 1)
	if err != nil {
		return err
	}
	return st.addBase(config.Simple(from, to))
}

func (st *state) tapHold(call Call) error {
	from, err := keyArg(call, 0)
	if err != nil {
		return err
	}
	tap, err := keyArg(call, 1)
	if err != nil {
		return err
	}
	if len(call.Args) < 4 {
		return fmt.Errorf("line %d: tap_hold() requires (from, tap, hold, threshold_ms)", call.Line)
	}
	thresholdArg := call.Args[3]
	if thresholdArg.Kind != ArgNumber {
		return fmt.Errorf("line %d: tap_hold() threshold_ms must be a number", call.Line)
	}
	threshold := uint16(thresholdArg.Num)

	holdArg := call.Args[2]
	if holdArg.Kind != ArgString {
		return fmt.Errorf("line %d: tap_hold() hold must be a string", call.Line)
	}
	if mid, err := parseModifierID(holdArg.Str); err == nil {
		return st.addBase(config.TapHoldModifier(from, tap, mid, threshold))
	}
	hold, err := parseKey(holdArg.Str)
	if err != nil {
		return fmt.Errorf("line %d: tap_hold() hold must be an MD_ id or a VK_ key: %w", call.Line, err)
	}
	return st.addBase(config.TapHoldKey(from, tap, hold, threshold))
}

func (st *state) whenStart(call Call, negate bool) error {
	if st.currentDevice == nil {
		return fmt.Errorf("line %d: conditional blocks must be called inside a device_start() block", call.Line)
	}
	if len(st.conditionalStack) != 0 {
		return fmt.Errorf("line %d: nested conditional blocks are not supported", call.Line)
	}
	if len(call.Args) != 1 {
		return fmt.Errorf("line %d: when_start()/when_not_start() takes exactly one argument", call.Line)
	}

	arg := call.Args[0]
	var cond config.Condition
	switch arg.Kind {
	case ArgString:
		item, err := parseConditionItem(arg.Str)
		if err != nil {
			return fmt.Errorf("line %d: %w", call.Line, err)
		}
		if negate {
			cond = config.NotActive(item)
		} else if item.Kind == config.ItemModifierActive {
			cond = config.ModifierActive(config.ModifierID(item.ID))
		} else {
			cond = config.LockActive(config.LockID(item.ID))
		}
	case ArgArray:
		if negate {
			return fmt.Errorf("line %d: when_not_start() takes a single condition, not an array", call.Line)
		}
		items := make([]config.ConditionItem, 0, len(arg.Strs))
		for _, s := range arg.Strs {
			item, err := parseConditionItem(s)
			if err != nil {
				return fmt.Errorf("line %d: %w", call.Line, err)
			}
			items = append(items, item)
		}
		cond = config.AllActive(items...)
	default:
		return fmt.Errorf("line %d: when_start() argument must be a string or array of strings", call.Line)
	}

	st.conditionalStack = append(st.conditionalStack, condFrame{condition: cond})
	return nil
}

func (st *state) whenDeviceStart(call Call) error {
	if st.currentDevice == nil {
		return fmt.Errorf("line %d: conditional blocks must be called inside a device_start() block", call.Line)
	}
	if len(st.conditionalStack) != 0 {
		return fmt.Errorf("line %d: nested conditional blocks are not supported", call.Line)
	}
	pattern, err := stringArg(call, 0)
	if err != nil {
		return err
	}
	if pattern == "" {
		return fmt.Errorf("line %d: when_device_start() pattern cannot be empty", call.Line)
	}
	st.conditionalStack = append(st.conditionalStack, condFrame{condition: config.DeviceMatches(pattern)})
	return nil
}

func (st *state) whenEnd(call Call) error {
	n := len(st.conditionalStack)
	if n == 0 {
		return fmt.Errorf("line %d: when_end() called without matching when_start()", call.Line)
	}
	frame := st.conditionalStack[n-1]
	st.conditionalStack = st.conditionalStack[:n-1]
	st.currentDevice.Mappings = append(st.currentDevice.Mappings, config.Conditional(frame.condition, frame.mappings...))
	return nil
}

func (st *state) load(call Call, filePath string) error {
	st.callDepth++
	defer func() { st.callDepth-- }()
	if st.callDepth > MaxCallLevels {
		return fmt.Errorf("line %d: exceeded maximum import call depth %d", call.Line, MaxCallLevels)
	}

	path, err := stringArg(call, 0)
	if err != nil {
		return err
	}

	resolved, err := resolveImport(st.fs, path, filepath.Dir(filePath))
	if err != nil {
		return fmt.Errorf("line %d: %w", call.Line, err)
	}

	if st.visited[resolved] {
		chain := append(append([]string(nil), st.chain...), resolved)
		return &CircularImportError{Chain: chain}
	}
	st.visited[resolved] = true
	st.chain = append(st.chain, resolved)
	defer func() {
		delete(st.visited, resolved)
		st.chain = st.chain[:len(st.chain)-1]
	}()

	data, err := st.fs.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf("line %d: reading imported file %s: %w", call.Line, resolved, err)
	}

	return st.run(string(data), resolved)
}

func stringArg(call Call, i int) (string, error) {
	if i >= len(call.Args) || call.Args[i].Kind != ArgString {
		return "", fmt.Errorf("line %d: %s() argument %d must be a string", call.Line, call.Name, i+1)
	}
	return call.Args[i].Str, nil
}

func keyArg(call Call, i int) (keycode.KeyCode, error) {
	s, err := stringArg(call, i)
	if err != nil {
		return 0, err
	}
	kc, err := parseKey(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", call.Line, err)
	}
	return kc, nil
}
