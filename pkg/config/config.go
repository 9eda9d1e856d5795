// Package config defines the configuration types for gospec.
// These types are plain data; loading and merging live in internal/configloader.
package config

import "time"

// OutputFormat selects how the rendered specification is written.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatRespec   OutputFormat = "respec"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatRespec:
		return true
	default:
		return false
	}
}

// DefaultOutput returns the output file name used when none is configured.
func (f OutputFormat) DefaultOutput() string {
	if f == FormatRespec {
		return "specification.html"
	}
	return "specification.md"
}

// ColorMode controls colorized terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is supported.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// DefaultManifest is the manifest file name looked up when none is given.
const DefaultManifest = "Specification.toml"

// DefaultDebounce is how long watch mode waits for file events to settle.
const DefaultDebounce = 500 * time.Millisecond

// Config is the root configuration structure for gospec.
type Config struct {
	// Specification is the path to the TOML manifest.
	Specification string `yaml:"specification,omitempty"`

	// Format is the output format ("markdown" or "respec").
	Format OutputFormat `yaml:"format,omitempty"`

	// Output is the output file path. Empty means Format.DefaultOutput().
	Output string `yaml:"output,omitempty"`

	// Jobs is the number of files extracted in parallel. 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs,omitempty"`

	// Debounce is the quiet period watch mode waits before rebuilding.
	Debounce time.Duration `yaml:"debounce,omitempty"`

	// Color controls colorized diagnostics and help.
	Color ColorMode `yaml:"color,omitempty"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Specification: DefaultManifest,
		Format:        FormatMarkdown,
		Jobs:          0,
		Debounce:      DefaultDebounce,
		Color:         ColorAuto,
	}
}

// OutputPath returns the configured output path or the format default.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return c.Format.DefaultOutput()
}
