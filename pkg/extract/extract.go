package extract

import "strings"

const (
	// instructionPrefix introduces a directive inside a specification comment.
	instructionPrefix = "spec:"

	instructionStartCode = "startcode"
	instructionEndCode   = "endcode"

	// indentUnit is emitted once per extra marker character.
	indentUnit = "\t"

	fence = "```"
)

// captureState tracks whether source lines are being copied into a code block.
// The zero value is Idle.
type captureState struct {
	active bool

	// start locates the startcode token that opened the capture.
	start Span
}

// continuation tracks a block comment that spans several lines.
// The zero value is None.
type continuation struct {
	open bool

	// indent is the number of leading whitespace characters stripped from
	// each continuation line.
	indent int
}

// extractor holds the per-file scanning state. It is never reused.
type extractor struct {
	name    string
	src     string
	profile Profile

	scan    *lineScanner
	capture captureState
	cont    continuation
	out     strings.Builder
}

// Source extracts the specification text from src using the given comment
// syntax. name is only used in errors.
//
// On error no partial output is returned.
func Source(name string, src []byte, profile Profile) (string, error) {
	x := &extractor{
		name:    name,
		src:     string(src),
		profile: profile,
	}
	x.scan = newLineScanner(x.src)

	for x.scan.Scan() {
		if err := x.step(); err != nil {
			return "", err
		}
	}

	if x.capture.active {
		return "", x.fail(KindMissingEndcode, x.capture.start, "")
	}

	return x.out.String(), nil
}

// step processes the scanner's current line.
func (x *extractor) step() error {
	line := x.scan.line

	if !x.cont.open && !strings.HasPrefix(x.scan.Trimmed(), x.profile.Start) {
		if x.capture.active {
			x.emit(line)
		}
		return nil
	}

	if x.cont.open {
		x.text(stripIndent(line, x.cont.indent), 0)
		return nil
	}

	markerEnd := strings.Index(line, x.profile.Start) + len(x.profile.Start)
	body := line[markerEnd:]

	if strings.HasPrefix(strings.TrimSpace(body), instructionPrefix) {
		return x.directive(body, markerEnd)
	}

	x.text(body, markerEnd)
	return nil
}

// directive handles a `spec:` instruction. from is the position in the line
// right after the comment marker.
func (x *extractor) directive(body string, from int) error {
	rest := strings.TrimSpace(body)
	if x.profile.IsBlock() {
		rest = strings.TrimSpace(strings.TrimSuffix(rest, x.profile.End))
	}

	instruction := strings.TrimPrefix(rest, instructionPrefix)
	if idx := strings.IndexByte(instruction, ' '); idx >= 0 {
		instruction = instruction[:idx]
	}

	prefixAt := x.scan.Index(instructionPrefix, from)
	token := Span{Offset: prefixAt + len(instructionPrefix), Length: len(instruction)}

	switch instruction {
	case instructionStartCode:
		if x.capture.active {
			return x.fail(KindDoubleStartcode, token, "")
		}
		x.emit(fence + x.profile.CodeTag)
		x.capture = captureState{active: true, start: token}

	case instructionEndCode:
		if !x.capture.active {
			return x.fail(KindMissingStartcode, token, "")
		}
		x.emit(fence)
		x.capture = captureState{}

	default:
		return x.fail(KindBadInstruction, Span{Offset: prefixAt, Length: len(instructionPrefix)}, instruction)
	}

	return nil
}

// text emits a line of specification prose and updates the block comment
// state. markerEnd is the column right after the opening marker, or 0 on a
// continuation line.
func (x *extractor) text(body string, markerEnd int) {
	if x.profile.IsBlock() {
		trimmed := strings.TrimRight(body, " \t")
		switch {
		case strings.HasSuffix(trimmed, x.profile.End):
			body = strings.TrimRight(strings.TrimSuffix(trimmed, x.profile.End), " \t")
			x.cont = continuation{}
		case !x.cont.open:
			x.cont = continuation{open: true, indent: markerEnd}
		}
	}

	marker := x.profile.markerChar()
	depth := 0
	for depth < len(body) && body[depth] == marker {
		depth++
	}

	body = strings.TrimPrefix(body[depth:], " ")
	x.emit(strings.Repeat(indentUnit, depth) + body)
}

func (x *extractor) emit(line string) {
	x.out.WriteString(line)
	x.out.WriteByte('\n')
}

func (x *extractor) fail(kind Kind, span Span, instruction string) error {
	return &Error{
		Kind:        kind,
		File:        x.name,
		Source:      x.src,
		Span:        span,
		Instruction: instruction,
	}
}

// stripIndent removes up to n leading spaces or tabs from line.
func stripIndent(line string, n int) string {
	idx := 0
	for idx < n && idx < len(line) && (line[idx] == ' ' || line[idx] == '\t') {
		idx++
	}
	return line[idx:]
}
