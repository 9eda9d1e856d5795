package pretty

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gospec/pkg/extract"
)

// FormatError renders err for the terminal. Extraction errors anywhere in
// the chain get a source excerpt; anything else is a single line.
func (s *Styles) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var extractErr *extract.Error
	if errors.As(err, &extractErr) {
		return s.FormatExtractError(extractErr)
	}

	return s.Error.Render("error") + ": " + s.Message.Render(err.Error()) + "\n"
}

// FormatExtractError renders an extraction error with the offending line
// and a marker under the failing span:
//
//	error[MissingEndcode]: startcode without an endcode
//	  --> src/a.rs:3:5
//	   |
//	 3 | //~ spec:startcode
//	   |     ^^^^^^^^^ code block opened here is never closed
//	   |
//	   = help: add a spec:endcode instruction to close this code block
func (s *Styles) FormatExtractError(err *extract.Error) string {
	var builder strings.Builder

	builder.WriteString(s.Error.Render("error") +
		s.Kind.Render("["+err.Kind.String()+"]") + ": " +
		s.Message.Render(err.Message()) + "\n")

	if err.Kind == extract.KindCantParseFile || err.Source == "" {
		builder.WriteString("  " + s.Gutter.Render("-->") + " " + s.FilePath.Render(err.File) + "\n")
		writeHelp(&builder, s, err.Help(), "  ")
		return builder.String()
	}

	line, col := err.Position()
	lineNo := strconv.Itoa(line)
	pad := strings.Repeat(" ", len(lineNo))
	bar := s.Gutter.Render("|")

	builder.WriteString(pad + s.Gutter.Render("-->") + " " +
		s.FilePath.Render(err.File) + s.Location.Render(fmt.Sprintf(":%d:%d", line, col)) + "\n")
	builder.WriteString(pad + " " + bar + "\n")

	source := err.SourceLine()
	builder.WriteString(s.Gutter.Render(lineNo) + " " + bar + " " +
		s.SourceLine.Render(strings.ReplaceAll(source, "\t", tabSpaces)) + "\n")

	marker := s.Caret.Render(strings.Repeat("^", underlineWidth(source, col, err.Span.Length)))
	if label := err.Label(); label != "" {
		marker += " " + s.Label.Render(label)
	}
	builder.WriteString(pad + " " + bar + " " + caretPadding(source, col) + marker + "\n")
	builder.WriteString(pad + " " + bar + "\n")

	writeHelp(&builder, s, err.Help(), pad+" ")

	return builder.String()
}

func writeHelp(builder *strings.Builder, s *Styles, help, indent string) {
	if help == "" {
		return
	}
	builder.WriteString(indent + s.Gutter.Render("=") + " " +
		s.Help.Render("help:") + " " + help + "\n")
}

// tabSpaces replaces tabs in source excerpts, matching lipgloss' default
// tab width.
const tabSpaces = "    "

// caretPadding returns the whitespace that lines a marker up under the
// 1-based byte column col of line.
func caretPadding(line string, col int) string {
	end := min(max(col-1, 0), len(line))

	var builder strings.Builder
	for _, r := range line[:end] {
		if r == '\t' {
			builder.WriteString(tabSpaces)
		} else {
			builder.WriteByte(' ')
		}
	}
	return builder.String()
}

// underlineWidth clamps the span length to the rest of the line and to at
// least one character.
func underlineWidth(line string, col, length int) int {
	remaining := len(line) - (col - 1)
	if length > remaining {
		length = remaining
	}
	return max(length, 1)
}
