package extract

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the reason a file could not be extracted.
type Kind int

const (
	// KindCantParseFile means the file has no extension to pick a syntax from.
	KindCantParseFile Kind = iota + 1

	// KindDoubleStartcode means a startcode directive appeared inside a capture.
	KindDoubleStartcode

	// KindMissingStartcode means an endcode directive appeared outside a capture.
	KindMissingStartcode

	// KindMissingEndcode means the file ended inside a capture.
	KindMissingEndcode

	// KindBadInstruction means the word after `spec:` is not a known directive.
	KindBadInstruction
)

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrCantParseFile    = errors.New("cannot parse file without an extension")
	ErrDoubleStartcode  = errors.New("startcode inside a code block")
	ErrMissingStartcode = errors.New("endcode without a startcode")
	ErrMissingEndcode   = errors.New("startcode without an endcode")
	ErrBadInstruction   = errors.New("unrecognized instruction")
)

func (k Kind) String() string {
	switch k {
	case KindCantParseFile:
		return "CantParseFile"
	case KindDoubleStartcode:
		return "DoubleStartcode"
	case KindMissingStartcode:
		return "MissingStartcode"
	case KindMissingEndcode:
		return "MissingEndcode"
	case KindBadInstruction:
		return "BadInstruction"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindCantParseFile:
		return ErrCantParseFile
	case KindDoubleStartcode:
		return ErrDoubleStartcode
	case KindMissingStartcode:
		return ErrMissingStartcode
	case KindMissingEndcode:
		return ErrMissingEndcode
	case KindBadInstruction:
		return ErrBadInstruction
	default:
		return nil
	}
}

// Span is a byte range within the scanned source.
type Span struct {
	Offset int
	Length int
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Error is returned when a file holds a malformed directive sequence.
// It carries the full source so the failing span can be rendered in context.
type Error struct {
	Kind Kind

	// File is the name of the scanned file.
	File string

	// Source is the full text of the file. Empty for KindCantParseFile.
	Source string

	// Span locates the offending token within Source.
	Span Span

	// Instruction is the unrecognized directive for KindBadInstruction.
	Instruction string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindCantParseFile {
		return fmt.Sprintf("%s: %s", e.File, e.Message())
	}
	line, col := e.Position()
	return fmt.Sprintf("%s:%d:%d: %s", e.File, line, col, e.Message())
}

// Is matches the sentinel error for the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Message returns the short description of the failure.
func (e *Error) Message() string {
	switch e.Kind {
	case KindBadInstruction:
		return fmt.Sprintf("unrecognized instruction %q", e.Instruction)
	case KindCantParseFile:
		return "cannot pick a comment syntax for a file without an extension"
	case KindDoubleStartcode, KindMissingStartcode, KindMissingEndcode:
		return e.Kind.sentinel().Error()
	default:
		return "error parsing file"
	}
}

// Help returns a remediation hint for the failure.
func (e *Error) Help() string {
	switch e.Kind {
	case KindCantParseFile:
		return "rename the file with an extension such as .rs, .py or .ml"
	case KindDoubleStartcode:
		return "already inside a code block; close it with spec:endcode before starting another"
	case KindMissingStartcode:
		return "add a spec:startcode instruction before this spec:endcode"
	case KindMissingEndcode:
		return "add a spec:endcode instruction to close this code block"
	case KindBadInstruction:
		return "use spec:startcode or spec:endcode"
	default:
		return ""
	}
}

// Label returns the text displayed under the highlighted span.
func (e *Error) Label() string {
	switch e.Kind {
	case KindDoubleStartcode:
		return "second startcode here"
	case KindMissingStartcode:
		return "this endcode has no matching startcode"
	case KindMissingEndcode:
		return "code block opened here is never closed"
	case KindBadInstruction:
		return "this instruction is not recognized"
	default:
		return ""
	}
}

// Position converts the span offset into 1-based line and column numbers.
// Columns count bytes.
func (e *Error) Position() (int, int) {
	offset := e.Span.Offset
	if offset > len(e.Source) {
		offset = len(e.Source)
	}
	if offset < 0 {
		offset = 0
	}

	before := e.Source[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return line, offset - lineStart + 1
}

// SourceLine returns the source line containing the span, without its
// line terminator.
func (e *Error) SourceLine() string {
	if e.Source == "" {
		return ""
	}
	offset := e.Span.Offset
	if offset > len(e.Source) {
		offset = len(e.Source)
	}

	start := strings.LastIndexByte(e.Source[:offset], '\n') + 1
	end := strings.IndexByte(e.Source[start:], '\n')
	if end < 0 {
		end = len(e.Source) - start
	}

	return strings.TrimSuffix(e.Source[start:start+end], "\r")
}
