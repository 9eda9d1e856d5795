package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospec/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte("//~ hello\n"), 0o644))

	content, snap, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "//~ hello\n", string(content))
	assert.Equal(t, path, snap.Path)
	assert.Equal(t, int64(10), snap.Size)
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(dir, "missing.rs"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.ReadFile(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = fsutil.ReadFile(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}

func TestChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	_, snap, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	changed, err := fsutil.Changed(ctx, snap)
	require.NoError(t, err)
	assert.False(t, changed, "untouched file")

	// Same size and content, new mtime.
	later := snap.ModTime.Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))
	changed, err = fsutil.Changed(ctx, snap)
	require.NoError(t, err)
	assert.False(t, changed, "touched file with identical content")

	require.NoError(t, os.WriteFile(path, []byte("two!"), 0o644))
	changed, err = fsutil.Changed(ctx, snap)
	require.NoError(t, err)
	assert.True(t, changed, "rewritten file")

	require.NoError(t, os.Remove(path))
	changed, err = fsutil.Changed(ctx, snap)
	require.NoError(t, err)
	assert.True(t, changed, "deleted file")

	_, err = fsutil.Changed(ctx, nil)
	require.ErrorIs(t, err, fsutil.ErrNilSnapshot)
}

func TestChanged_SameSizeSameModTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte("//~ aaaa"), 0o644))

	_, snap, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("//~ bbbb"), 0o644))
	require.NoError(t, os.Chtimes(path, snap.ModTime, snap.ModTime))

	changed, err := fsutil.Changed(ctx, snap)
	require.NoError(t, err)
	assert.True(t, changed, "edit within one mtime tick")
}
