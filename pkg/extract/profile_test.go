package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospec/pkg/extract"
)

func TestProfileFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected extract.Profile
	}{
		{"x.py", extract.Profile{Start: "#~", CodeTag: "python"}},
		{"x.ml", extract.Profile{Start: "(*~", End: "*)", CodeTag: "ocaml"}},
		{"x.mli", extract.Profile{Start: "(*~", End: "*)", CodeTag: "ocaml"}},
		{"src/lib.rs", extract.Profile{Start: "//~", CodeTag: "rs"}},
		{"main.go", extract.Profile{Start: "//~", CodeTag: "go"}},
		{"dir.v2/file.ts", extract.Profile{Start: "//~", CodeTag: "ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := extract.ProfileFor(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProfileFor_NoExtension(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"x", "src/Makefile", "dir.d/README"} {
		_, err := extract.ProfileFor(path)
		require.ErrorIs(t, err, extract.ErrCantParseFile, path)

		var extractErr *extract.Error
		require.ErrorAs(t, err, &extractErr)
		assert.Equal(t, extract.KindCantParseFile, extractErr.Kind)
		assert.Equal(t, path, extractErr.File)
	}
}

func TestIsPassthrough(t *testing.T) {
	t.Parallel()

	assert.True(t, extract.IsPassthrough("x.md"))
	assert.True(t, extract.IsPassthrough("docs/overview.md"))
	assert.False(t, extract.IsPassthrough("x.markdown"))
	assert.False(t, extract.IsPassthrough("x.rs"))
	assert.False(t, extract.IsPassthrough("md"))
}

func TestProfile_IsBlock(t *testing.T) {
	t.Parallel()

	ml, err := extract.ProfileFor("a.ml")
	require.NoError(t, err)
	assert.True(t, ml.IsBlock())

	py, err := extract.ProfileFor("a.py")
	require.NoError(t, err)
	assert.False(t, py.IsBlock())
}
