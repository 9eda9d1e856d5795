package build

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gospec/internal/logging"
	"github.com/yaklabco/gospec/pkg/config"
	"github.com/yaklabco/gospec/pkg/extract"
	"github.com/yaklabco/gospec/pkg/fsutil"
	"github.com/yaklabco/gospec/pkg/gitutil"
	"github.com/yaklabco/gospec/pkg/manifest"
)

// ErrUnknownFormat is returned for an output format the builder cannot emit.
var ErrUnknownFormat = errors.New("unknown output format")

// ExtractFunc returns the specification text of one section file.
type ExtractFunc func(ctx context.Context, path string) (string, error)

// RepoRootFunc returns the git work tree containing dir.
type RepoRootFunc func(ctx context.Context, dir string) (string, error)

// Builder runs the manifest → extract → render → write pipeline.
type Builder struct {
	// Extract reads one section file. Defaults to extract.File.
	Extract ExtractFunc

	// RepoRoot locates the repository for "@/" paths. Defaults to
	// gitutil.RepoRoot.
	RepoRoot RepoRootFunc
}

// New creates a Builder wired to the real extractor and git.
func New() *Builder {
	return &Builder{
		Extract:  extract.File,
		RepoRoot: gitutil.RepoRoot,
	}
}

// section is one manifest entry resolved to a file on disk.
type section struct {
	name string
	path string
}

// Build produces the document described by opts.Manifest.
//
// The builder:
//   - Loads the manifest and reads the page template next to it
//   - Resolves every section path, asking git only for "@/" paths
//   - Extracts section files concurrently, stopping at the first failure
//   - Renders the template and writes the selected format atomically
//
// Extraction failures wrap an *extract.Error that callers can recover with
// errors.As to render the offending source line.
func (b *Builder) Build(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	format := opts.format()
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	manifestPath, err := filepath.Abs(opts.Manifest)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest path: %w", err)
	}

	result := &Result{
		OutputPath: opts.output(),
		Watched:    []string{manifestPath},
	}
	defer func() {
		sort.Strings(result.Watched)
		result.Duration = time.Since(start)
	}()

	spec, err := manifest.Load(manifestPath)
	if err != nil {
		return result, err
	}
	specDir := filepath.Dir(manifestPath)

	logger.Debug("loaded manifest",
		logging.FieldManifest, manifestPath,
		logging.FieldSections, len(spec.Sections),
	)

	templatePath := spec.Config.Template
	if !filepath.IsAbs(templatePath) {
		templatePath = filepath.Join(specDir, templatePath)
	}
	result.Watched = append(result.Watched, templatePath)

	tmpl, _, err := fsutil.ReadFile(ctx, templatePath)
	if err != nil {
		return result, fmt.Errorf("read template: %w", err)
	}

	sections, err := b.resolveSections(ctx, spec, specDir, opts.RepoRoot)
	if err != nil {
		return result, err
	}
	result.Sections = make(map[string]string, len(sections))
	for _, s := range sections {
		result.Sections[s.name] = s.path
		result.Watched = append(result.Watched, s.path)
	}

	texts, err := b.extractAll(ctx, sections, opts.Jobs)
	if err != nil {
		return result, err
	}

	rendered, err := render(templatePath, tmpl, templateData{
		Metadata: spec.Metadata,
		Config:   spec.Config,
		Sections: texts,
	})
	if err != nil {
		return result, err
	}

	content := rendered
	if format == config.FormatRespec {
		content, err = renderRespec(spec.Metadata, rendered)
		if err != nil {
			return result, err
		}
	}

	written, err := fsutil.WriteIfChanged(ctx, result.OutputPath, content, 0)
	if err != nil {
		return result, fmt.Errorf("write %s: %w", result.OutputPath, err)
	}
	result.Written = written

	logger.Debug("built specification",
		logging.FieldOutput, result.OutputPath,
		logging.FieldFormat, format,
		logging.FieldWritten, written,
		logging.FieldDuration, time.Since(start),
	)

	return result, nil
}

// resolveSections maps manifest entries to file paths in sorted name order.
func (b *Builder) resolveSections(
	ctx context.Context,
	spec *manifest.Specification,
	specDir string,
	repoRoot string,
) ([]section, error) {
	if repoRoot == "" && spec.UsesRepoPaths() && b.RepoRoot != nil {
		root, err := b.RepoRoot(ctx, specDir)
		if err != nil {
			logging.FromContext(ctx).Debug("no repository root", logging.FieldError, err)
		} else {
			repoRoot = root
		}
	}

	names := spec.SectionNames()
	sections := make([]section, 0, len(names))
	for _, name := range names {
		path, err := manifest.ResolveSection(spec.Sections[name], specDir, repoRoot)
		if err != nil {
			return sections, fmt.Errorf("section %q: %w", name, err)
		}
		sections = append(sections, section{name: name, path: path})
	}

	return sections, nil
}

// extractAll runs the extractor over every section with at most jobs files
// in flight. Files share no state, so any order of completion is fine.
func (b *Builder) extractAll(ctx context.Context, sections []section, jobs int) (map[string]string, error) {
	extractFn := b.Extract
	if extractFn == nil {
		extractFn = extract.File
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(sections) {
		jobs = max(len(sections), 1)
	}

	logging.FromContext(ctx).Debug("extracting sections",
		logging.FieldSections, len(sections),
		logging.FieldJobs, jobs,
	)

	texts := make([]string, len(sections))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, s := range sections {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			text, err := extractFn(logging.WithFields(groupCtx, logging.FieldSection, s.name), s.path)
			if err != nil {
				return fmt.Errorf("section %q: %w", s.name, err)
			}
			texts[i] = text
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(sections))
	for i, s := range sections {
		out[s.name] = texts[i]
	}
	return out, nil
}
