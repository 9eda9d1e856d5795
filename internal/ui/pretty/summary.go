package pretty

import (
	"fmt"
	"time"

	"github.com/yaklabco/gospec/pkg/build"
)

const (
	wordSection  = "section"
	wordSections = "sections"
)

// FormatBuildSummary formats a finished build as a single line.
// Example: "Wrote specification.md from 3 sections in 12ms".
func (s *Styles) FormatBuildSummary(result *build.Result) string {
	if result == nil {
		return ""
	}

	sectionWord := wordSections
	if len(result.Sections) == 1 {
		sectionWord = wordSection
	}

	details := s.Dim.Render(fmt.Sprintf(" from %d %s in %s",
		len(result.Sections), sectionWord, result.Duration.Round(time.Millisecond)))

	if !result.Written {
		return s.FilePath.Render(result.OutputPath) + " is up to date" + details + "\n"
	}

	return s.Success.Render("Wrote") + " " + s.FilePath.Render(result.OutputPath) + details + "\n"
}

// FormatBuildFailure formats the one-line notice shown after a failed build.
func (s *Styles) FormatBuildFailure(manifest string) string {
	return s.Failure.Render("Build failed") + s.Dim.Render(" ("+manifest+")") + "\n"
}
