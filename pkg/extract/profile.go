// Package extract pulls specification comments out of source files.
//
// A specification comment is a comment whose opening delimiter is followed by
// a tilde (`//~`, `#~`, `(*~`). Plain comment bodies become lines of the
// output document, `spec:startcode` / `spec:endcode` directives bracket source
// lines that are copied verbatim into a fenced code block, and extra tildes
// after the marker nest the line by one tab each.
package extract

import (
	"path/filepath"
	"strings"
)

// Profile describes the comment syntax used by one family of source files.
type Profile struct {
	// Start is the marker opening a specification comment.
	Start string

	// End closes a block comment. Empty for line-comment syntaxes.
	End string

	// CodeTag is the info string used for fenced code excerpts.
	CodeTag string
}

// IsBlock reports whether the profile describes a block-comment syntax.
func (p Profile) IsBlock() bool {
	return p.End != ""
}

// markerChar is the character that, when repeated, nests a comment line.
func (p Profile) markerChar() byte {
	if p.Start == "" {
		return '~'
	}
	return p.Start[len(p.Start)-1]
}

// Comment markers for the supported syntaxes.
const (
	MarkerLine       = "//~"
	MarkerHash       = "#~"
	MarkerBlockOpen  = "(*~"
	MarkerBlockClose = "*)"
)

// Profiles for the special-cased extensions.
//
//nolint:gochecknoglobals // Read-only lookup table.
var (
	pythonProfile = Profile{Start: MarkerHash, CodeTag: "python"}
	ocamlProfile  = Profile{Start: MarkerBlockOpen, End: MarkerBlockClose, CodeTag: "ocaml"}
)

// Ext returns the extension of path without the leading dot.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// IsPassthrough reports whether the file is already specification text and
// must be copied as-is instead of scanned.
func IsPassthrough(path string) bool {
	return Ext(path) == "md"
}

// ProfileFor resolves the comment syntax for path from its extension.
// Files without an extension cannot be parsed.
func ProfileFor(path string) (Profile, error) {
	ext := Ext(path)
	switch ext {
	case "":
		return Profile{}, &Error{Kind: KindCantParseFile, File: path}
	case "py":
		return pythonProfile, nil
	case "ml", "mli":
		return ocamlProfile, nil
	default:
		return Profile{Start: MarkerLine, CodeTag: ext}, nil
	}
}
