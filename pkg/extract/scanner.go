package extract

import "strings"

// lineScanner walks source text line by line while tracking the byte offset
// of the current line within the original content.
type lineScanner struct {
	src  string
	next int // offset of the next unread line

	// line is the current line without its terminator.
	line string

	// offset is the byte offset of the first character of line.
	offset int
}

func newLineScanner(src string) *lineScanner {
	return &lineScanner{src: src}
}

// Scan advances to the next line. A trailing newline at the end of the
// content does not yield an extra empty line.
func (s *lineScanner) Scan() bool {
	if s.next >= len(s.src) {
		return false
	}

	raw := s.src[s.next:]
	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		raw = raw[:idx]
	}

	s.offset = s.next
	s.next += len(raw) + 1
	s.line = strings.TrimSuffix(raw, "\r")

	return true
}

// Trimmed returns the current line with leading whitespace removed.
func (s *lineScanner) Trimmed() string {
	return strings.TrimLeft(s.line, " \t")
}

// Index returns the offset within the source of the first occurrence of sub in
// the current line, searching from byte position from. It returns the start of
// the line if sub is absent.
func (s *lineScanner) Index(sub string, from int) int {
	if from > len(s.line) {
		from = len(s.line)
	}
	idx := strings.Index(s.line[from:], sub)
	if idx < 0 {
		return s.offset
	}
	return s.offset + from + idx
}
