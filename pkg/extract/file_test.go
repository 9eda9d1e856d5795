package extract_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospec/pkg/extract"
	"github.com/yaklabco/gospec/pkg/fsutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	rs := writeFile(t, dir, "lib.rs", "//~ Rust spec\nfn main() {}\n")
	py := writeFile(t, dir, "proto.py", "#~ Python spec\nx = 1\n")
	ml := writeFile(t, dir, "algo.ml", "(*~ OCaml\n    spec *)\nlet x = 1\n")
	md := writeFile(t, dir, "intro.md", "# Intro\n\n//~ kept verbatim\n")

	tests := []struct {
		path     string
		expected string
	}{
		{rs, "Rust spec\n"},
		{py, "Python spec\n"},
		{ml, "OCaml\nspec\n"},
		{md, "# Intro\n\n//~ kept verbatim\n"},
	}

	for _, tt := range tests {
		got, err := extract.File(ctx, tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.expected, got, tt.path)
	}
}

func TestFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	noExt := writeFile(t, dir, "Makefile", "//~ hi\n")
	_, err := extract.File(ctx, noExt)
	require.ErrorIs(t, err, extract.ErrCantParseFile)

	_, err = extract.File(ctx, filepath.Join(dir, "missing.rs"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.Contains(t, err.Error(), "read section: ")
	assert.Contains(t, err.Error(), "missing.rs")

	bin := writeFile(t, dir, "blob.rs", "\x00\x01\x02\x03//~ hi\x00")
	_, err = extract.File(ctx, bin)
	require.ErrorIs(t, err, extract.ErrBinaryFile)

	bad := writeFile(t, dir, "bad.rs", "//~ spec:flipcode\n")
	_, err = extract.File(ctx, bad)
	require.ErrorIs(t, err, extract.ErrBadInstruction)

	var extractErr *extract.Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, bad, extractErr.File)
}
