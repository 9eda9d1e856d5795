package scaffold_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospec/pkg/build"
	"github.com/yaklabco/gospec/pkg/manifest"
	"github.com/yaklabco/gospec/pkg/scaffold"
)

func TestInit_NewDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "consensus")

	result, err := scaffold.Init(context.Background(), dir, "", false)
	require.NoError(t, err)
	assert.Equal(t, "consensus", result.Name)

	spec, err := manifest.Load(result.Manifest)
	require.NoError(t, err)
	assert.Equal(t, "consensus", spec.Metadata.Name)
	assert.Equal(t, "some description", spec.Metadata.Description)
	assert.Equal(t, []string{"your name"}, spec.Metadata.Authors)
	assert.Equal(t, manifest.DefaultTemplate, spec.Config.Template)
	assert.Empty(t, spec.Sections)

	tmpl, err := os.ReadFile(result.Template)
	require.NoError(t, err)
	assert.Contains(t, string(tmpl), "# Consensus\n")
}

func TestInit_ExplicitName(t *testing.T) {
	t.Parallel()

	result, err := scaffold.Init(context.Background(), t.TempDir(), "kimchi", false)
	require.NoError(t, err)
	assert.Equal(t, "kimchi", result.Name)

	tmpl, err := os.ReadFile(result.Template)
	require.NoError(t, err)
	assert.Contains(t, string(tmpl), "# Kimchi\n")
}

func TestInit_Existing(t *testing.T) {
	t.Parallel()

	for _, existing := range []string{manifest.DefaultManifest, manifest.DefaultTemplate} {
		t.Run(existing, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, existing)
			require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

			_, err := scaffold.Init(context.Background(), dir, "x", false)
			require.ErrorIs(t, err, scaffold.ErrSpecExists)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "keep me", string(content))
		})
	}
}

func TestInit_Force(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, manifest.DefaultManifest)
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := scaffold.Init(context.Background(), dir, "x", true)
	require.NoError(t, err)

	spec, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x", spec.Metadata.Name)
}

func TestInit_Builds(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	result, err := scaffold.Init(context.Background(), dir, "fresh", false)
	require.NoError(t, err)

	out := filepath.Join(dir, "specification.md")
	_, err = build.New().Build(context.Background(), build.Options{
		Manifest: result.Manifest,
		Output:   out,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Fresh\n\nMy specification.\n\n\n", string(content))
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Consensus", scaffold.Title("consensus"))
	assert.Equal(t, "Élan", scaffold.Title("élan"))
	assert.Equal(t, "", scaffold.Title(""))
	assert.Equal(t, "ABC", scaffold.Title("ABC"))
}
