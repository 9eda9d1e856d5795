// Package manifest reads and writes Specification.toml, the file that lists
// the sources making up each section of a specification.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/yaklabco/gospec/pkg/gitutil"
)

// File names created by scaffolding and looked up by default.
const (
	DefaultManifest = "Specification.toml"
	DefaultTemplate = "specification_template.md"
)

// repoPrefix marks a section path relative to the git repository root.
const repoPrefix = "@/"

var (
	// ErrInvalid is returned when the manifest is not valid TOML, is missing
	// required fields or holds unknown keys.
	ErrInvalid = errors.New("invalid manifest")

	// ErrBadRepoPath is returned for a section path that starts with '@'
	// but not with "@/".
	ErrBadRepoPath = errors.New("repository paths must start with @/")
)

// Specification is the parsed content of a manifest.
type Specification struct {
	Metadata Metadata `toml:"metadata"`
	Config   Config   `toml:"config"`

	// Sections maps a section name, as used in the template, to the file
	// whose specification comments fill it.
	Sections map[string]string `toml:"sections"`
}

// Metadata describes the document.
type Metadata struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description,omitempty"`
	Version     string   `toml:"version,omitempty"`
	Authors     []string `toml:"authors"`
}

// Config holds build settings stored in the manifest.
type Config struct {
	// Template is the page template, relative to the manifest.
	Template string `toml:"template"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Specification, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	spec, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Decode parses and validates a manifest.
func Decode(r io.Reader) (*Specification, error) {
	var spec Specification
	meta, err := toml.NewDecoder(r).Decode(&spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Encode writes spec as TOML.
func Encode(w io.Writer, spec *Specification) error {
	if err := toml.NewEncoder(w).Encode(spec); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// Validate checks the fields a build depends on.
func (s *Specification) Validate() error {
	if strings.TrimSpace(s.Metadata.Name) == "" {
		return fmt.Errorf("%w: metadata.name is required", ErrInvalid)
	}
	if strings.TrimSpace(s.Config.Template) == "" {
		return fmt.Errorf("%w: config.template is required", ErrInvalid)
	}
	for name, path := range s.Sections {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: section %q has no file", ErrInvalid, name)
		}
	}
	return nil
}

// SectionNames returns the section names in sorted order.
func (s *Specification) SectionNames() []string {
	names := make([]string, 0, len(s.Sections))
	for name := range s.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UsesRepoPaths reports whether any section is addressed from the
// repository root.
func (s *Specification) UsesRepoPaths() bool {
	for _, path := range s.Sections {
		if strings.HasPrefix(path, "@") {
			return true
		}
	}
	return false
}

// ResolveSection turns a section value into a file path. "@/x" is resolved
// against repoRoot, anything else against specDir.
func ResolveSection(value, specDir, repoRoot string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		if filepath.IsAbs(value) {
			return filepath.Clean(value), nil
		}
		return filepath.Join(specDir, value), nil
	}

	if !strings.HasPrefix(value, repoPrefix) {
		return "", fmt.Errorf("%w: %q", ErrBadRepoPath, value)
	}
	if repoRoot == "" {
		return "", fmt.Errorf("%w: section %q is relative to the repository root", gitutil.ErrNotGitRepo, value)
	}

	return filepath.Join(repoRoot, filepath.FromSlash(strings.TrimPrefix(value, repoPrefix))), nil
}
