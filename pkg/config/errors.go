package config

import "fmt"

// ImportFrame identifies one file in the chain of `load()` includes that
// led to a ParseError, innermost first.
type ImportFrame struct {
	Path string
	Line int
}

// ParseError is returned by Validate and by the DSL compiler (pkg/dslc) for
// any structurally or semantically invalid config. Chain records the
// import stack at the point of failure so the message can point at the
// file that actually caused it, not just the root script.
type ParseError struct {
	Message string
	Chain   []ImportFrame
}

func (e *ParseError) Error() string {
	if len(e.Chain) == 0 {
		return e.Message
	}
	frame := e.Chain[0]
	return fmt.Sprintf("%s:%d: %s", frame.Path, frame.Line, e.Message)
}

// WithFrame returns a copy of e with frame appended to the import chain.
func (e *ParseError) WithFrame(frame ImportFrame) *ParseError {
	chain := make([]ImportFrame, len(e.Chain), len(e.Chain)+1)
	copy(chain, e.Chain)
	chain = append(chain, frame)
	return &ParseError{Message: e.Message, Chain: chain}
}

func newParseError(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}
