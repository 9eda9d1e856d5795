package extract_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospec/pkg/extract"
)

func TestError_Formatting(t *testing.T) {
	t.Parallel()

	src := "//~ intro\n//~ spec:endcode\n"
	_, err := extract.Source("src/lib.rs", []byte(src), rustProfile)

	extractErr := requireExtractError(t, err, extract.KindMissingStartcode)

	line, col := extractErr.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 10, col)
	assert.Equal(t, "//~ spec:endcode", extractErr.SourceLine())
	assert.Equal(t, "src/lib.rs:2:10: endcode without a startcode", extractErr.Error())
	assert.NotEmpty(t, extractErr.Help())
	assert.NotEmpty(t, extractErr.Label())
}

func TestError_BadInstructionMessage(t *testing.T) {
	t.Parallel()

	_, err := extract.Source("a.rs", []byte("//~ spec:flipcode\n"), rustProfile)

	extractErr := requireExtractError(t, err, extract.KindBadInstruction)
	assert.Contains(t, extractErr.Message(), "flipcode")
	assert.Contains(t, extractErr.Help(), "spec:startcode")
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	sentinels := map[extract.Kind]error{
		extract.KindCantParseFile:    extract.ErrCantParseFile,
		extract.KindDoubleStartcode:  extract.ErrDoubleStartcode,
		extract.KindMissingStartcode: extract.ErrMissingStartcode,
		extract.KindMissingEndcode:   extract.ErrMissingEndcode,
		extract.KindBadInstruction:   extract.ErrBadInstruction,
	}

	for kind, sentinel := range sentinels {
		err := error(&extract.Error{Kind: kind, File: "a.rs"})
		assert.ErrorIs(t, err, sentinel, kind.String())

		for other, otherSentinel := range sentinels {
			if other != kind {
				assert.False(t, errors.Is(err, otherSentinel), "%s must not match %s", kind, other)
			}
		}
	}
}

func TestError_CantParseFile(t *testing.T) {
	t.Parallel()

	_, err := extract.ProfileFor("Makefile")
	require.Error(t, err)

	extractErr := requireExtractError(t, err, extract.KindCantParseFile)
	assert.Empty(t, extractErr.SourceLine())
	assert.Equal(t, "Makefile: cannot pick a comment syntax for a file without an extension", err.Error())
}

func TestError_PositionOutOfRange(t *testing.T) {
	t.Parallel()

	extractErr := &extract.Error{Kind: extract.KindMissingEndcode, Source: "ab\ncd", Span: extract.Span{Offset: 99}}

	line, col := extractErr.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)
	assert.Equal(t, "cd", extractErr.SourceLine())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BadInstruction", extract.KindBadInstruction.String())
	assert.Equal(t, "Unknown", extract.Kind(0).String())
}
