// Package scaffold creates the files of a new specification.
package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gospec/pkg/fsutil"
	"github.com/yaklabco/gospec/pkg/manifest"
)

const dirPermissions = 0o755

// Placeholders written into a fresh manifest.
const (
	placeholderDescription = "some description"
	placeholderAuthor      = "your name"
)

var (
	// ErrSpecExists is returned when the directory already holds a manifest
	// or a template and overwriting was not requested.
	ErrSpecExists = errors.New("a specification already exists")

	// ErrBadPath is returned when no name was given and none can be derived
	// from the directory.
	ErrBadPath = errors.New("cannot derive a specification name from the path")
)

// Result lists what Init created.
type Result struct {
	Dir      string
	Name     string
	Manifest string
	Template string
}

// Init writes a default Specification.toml and page template into dir,
// creating dir if needed. An empty name is taken from the directory name.
func Init(ctx context.Context, dir, name string, force bool) (*Result, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	if name == "" {
		name = filepath.Base(absDir)
		if name == string(filepath.Separator) || name == "." || name == "" {
			return nil, fmt.Errorf("%w: %s", ErrBadPath, dir)
		}
	}

	result := &Result{
		Dir:      absDir,
		Name:     name,
		Manifest: filepath.Join(absDir, manifest.DefaultManifest),
		Template: filepath.Join(absDir, manifest.DefaultTemplate),
	}

	if err := os.MkdirAll(absDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("create specification directory: %w", err)
	}

	if !force {
		for _, path := range []string{result.Manifest, result.Template} {
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrSpecExists, path)
			}
		}
	}

	var buf bytes.Buffer
	if err := manifest.Encode(&buf, DefaultManifest(name)); err != nil {
		return nil, err
	}
	if err := fsutil.WriteAtomic(ctx, result.Manifest, buf.Bytes(), 0); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, result.Template, []byte(DefaultTemplate(name)), 0); err != nil {
		return nil, fmt.Errorf("write template: %w", err)
	}

	return result, nil
}

// DefaultManifest returns the manifest written for a new specification.
func DefaultManifest(name string) *manifest.Specification {
	return &manifest.Specification{
		Metadata: manifest.Metadata{
			Name:        name,
			Description: placeholderDescription,
			Authors:     []string{placeholderAuthor},
		},
		Config: manifest.Config{
			Template: manifest.DefaultTemplate,
		},
		Sections: map[string]string{},
	}
}

// DefaultTemplate returns the page template written for a new specification.
func DefaultTemplate(name string) string {
	return "# " + Title(name) + "\n\n" +
		"My specification.\n\n" +
		"{{/* Insert a section listed in Specification.toml with .Sections.<name> */}}\n"
}

// Title upper-cases the first letter of name.
func Title(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(first)) + name[size:]
}
