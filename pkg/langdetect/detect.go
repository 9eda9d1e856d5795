// Package langdetect classifies specification source files using go-enry.
// It guards the extractor against binary input and names the language of a
// file for logs.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined.
const Unknown = "text"

// IsBinary reports whether content looks like binary data rather than text.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}

// Language returns the lowercase name of the language of the file at path,
// using its name first and its content as a fallback.
func Language(path string, content []byte) string {
	name := filepath.Base(path)

	if lang, safe := enry.GetLanguageByExtension(name); safe && lang != "" {
		return normalize(lang)
	}
	if lang := enry.GetLanguage(name, content); lang != "" {
		return normalize(lang)
	}

	return Unknown
}

func normalize(lang string) string {
	return strings.ReplaceAll(strings.ToLower(lang), " ", "-")
}
