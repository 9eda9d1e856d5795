package pretty_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospec/internal/ui/pretty"
	"github.com/yaklabco/gospec/pkg/extract"
)

func extractErr(t *testing.T, src string) *extract.Error {
	t.Helper()

	profile, err := extract.ProfileFor("a.rs")
	require.NoError(t, err)

	_, err = extract.Source("a.rs", []byte(src), profile)

	var extractErr *extract.Error
	require.ErrorAs(t, err, &extractErr)
	return extractErr
}

func TestFormatExtractError_MissingEndcode(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	err := extractErr(t, "//~ spec:startcode\nfn main() {}\n")

	want := strings.Join([]string{
		"error[MissingEndcode]: startcode without an endcode",
		" --> a.rs:1:10",
		"  |",
		"1 | //~ spec:startcode",
		"  |          ^^^^^^^^^ code block opened here is never closed",
		"  |",
		"  = help: add a spec:endcode instruction to close this code block",
		"",
	}, "\n")

	assert.Equal(t, want, styles.FormatExtractError(err))
}

func TestFormatExtractError_BadInstruction(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	src := strings.Repeat("\n", 9) + "\t//~ spec:oops\n"
	err := extractErr(t, src)

	result := styles.FormatExtractError(err)
	lines := strings.Split(result, "\n")

	assert.Equal(t, `error[BadInstruction]: unrecognized instruction "oops"`, lines[0])
	assert.Equal(t, "  --> a.rs:10:6", lines[1])
	assert.Equal(t, "10 |     //~ spec:oops", lines[3])
	// Tab expands to four columns, then "//~ " precedes the prefix.
	assert.Equal(t, "   |         ^^^^^ this instruction is not recognized", lines[4])
	assert.Contains(t, result, "= help: use spec:startcode or spec:endcode")
}

func TestFormatExtractError_CantParseFile(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	_, err := extract.ProfileFor("Makefile")

	var extractErr *extract.Error
	require.ErrorAs(t, err, &extractErr)

	result := styles.FormatExtractError(extractErr)
	assert.Contains(t, result, "error[CantParseFile]")
	assert.Contains(t, result, "--> Makefile")
	assert.Contains(t, result, "help:")
	assert.NotContains(t, result, "^")
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Empty(t, styles.FormatError(nil))
	assert.Equal(t, "error: boom\n", styles.FormatError(errors.New("boom")))

	wrapped := fmt.Errorf("section %q: %w", "intro", extractErr(t, "//~ spec:endcode\n"))
	result := styles.FormatError(wrapped)
	assert.Contains(t, result, "error[MissingStartcode]")
	assert.Contains(t, result, "1 | //~ spec:endcode")
}
