// Package build turns a specification manifest into a rendered document.
package build

import (
	"time"

	"github.com/yaklabco/gospec/pkg/config"
)

// Options controls a single build.
type Options struct {
	// Manifest is the path to Specification.toml.
	Manifest string

	// Format selects Markdown or ReSpec HTML output.
	// Empty means config.FormatMarkdown.
	Format config.OutputFormat

	// Output is the file to write. Empty means Format.DefaultOutput()
	// in the current directory.
	Output string

	// Jobs controls the maximum number of files extracted concurrently.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// RepoRoot is the git work tree used to resolve "@/" section paths.
	// Empty means ask git, and only when a section needs it.
	RepoRoot string
}

// OptionsFromConfig builds Options from the resolved configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Manifest: cfg.Specification,
		Format:   cfg.Format,
		Output:   cfg.OutputPath(),
		Jobs:     cfg.Jobs,
	}
}

func (o Options) format() config.OutputFormat {
	if o.Format == "" {
		return config.FormatMarkdown
	}
	return o.Format
}

func (o Options) output() string {
	if o.Output != "" {
		return o.Output
	}
	return o.format().DefaultOutput()
}

// Result describes a finished (or partially finished) build.
type Result struct {
	// OutputPath is the file the document was written to.
	OutputPath string

	// Written is false when the output already held the same content.
	Written bool

	// Watched lists, sorted, the manifest, the template and every section
	// file discovered before the build stopped. It is filled in even when
	// Build returns an error.
	Watched []string

	// Sections maps section names to the files they were extracted from.
	Sections map[string]string

	// Duration is the wall time spent building.
	Duration time.Duration
}
