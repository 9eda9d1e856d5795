package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gospec/pkg/config"
)

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)

	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfigUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeConfig(t, filepath.Join(root, ".gospec.yml"), "format: respec\njobs: 2\n")

	nested := filepath.Join(root, "spec", "chapters")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), isolated(nested))
	require.NoError(t, err)

	assert.Equal(t, config.FormatRespec, result.Config.Format)
	assert.Equal(t, 2, result.Config.Jobs)
	assert.Equal(t, config.DefaultManifest, result.Config.Specification)
	assert.Equal(t, []string{filepath.Join(root, ".gospec.yml")}, result.LoadedFrom)
}

func TestLoad_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, filepath.Join(outer, ".gospec.yml"), "format: respec\n")

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	result, err := Load(context.Background(), isolated(repo))
	require.NoError(t, err)
	assert.Equal(t, config.FormatMarkdown, result.Config.Format)
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, filepath.Join(dir, ".gospec.yml"), "format: respec\noutput: project.html\njobs: 2\n")

	explicit := filepath.Join(dir, "ci.yml")
	writeConfig(t, explicit, "output: ci.html\ndebounce: 2s\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit
	opts.CLIConfig = &config.Config{Jobs: 8}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.FormatRespec, result.Config.Format)
	assert.Equal(t, "ci.html", result.Config.Output)
	assert.Equal(t, 2*time.Second, result.Config.Debounce)
	assert.Equal(t, 8, result.Config.Jobs)
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	path := filepath.Join(dir, ".gospec.yml")
	writeConfig(t, path, "format: pdf\n")

	_, err := Load(context.Background(), isolated(dir))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "format", verr.Field)
	assert.Equal(t, path, verr.FilePath)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, filepath.Join(dir, ".gospec.yml"), "format: [unclosed\n")

	_, err := Load(context.Background(), isolated(dir))
	require.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"GOSPEC_FORMAT":   "respec",
		"GOSPEC_JOBS":     "3",
		"GOSPEC_DEBOUNCE": "1s",
		"GOSPEC_OUTPUT":   "out.html",
	}

	cfg := config.NewConfig()
	require.NoError(t, loadFromEnv(cfg, func(key string) string { return env[key] }))

	assert.Equal(t, config.FormatRespec, cfg.Format)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, time.Second, cfg.Debounce)
	assert.Equal(t, "out.html", cfg.Output)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	err := loadFromEnv(cfg, func(key string) string {
		if key == "GOSPEC_JOBS" {
			return "many"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOSPEC_JOBS")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   config.Config
		field string
	}{
		{"bad format", config.Config{Specification: "s", Format: "pdf"}, "format"},
		{"bad color", config.Config{Specification: "s", Color: "rainbow"}, "color"},
		{"negative jobs", config.Config{Specification: "s", Jobs: -1}, "jobs"},
		{"negative debounce", config.Config{Specification: "s", Debounce: -time.Second}, "debounce"},
		{"empty manifest", config.Config{}, "specification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(&tt.cfg)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	require.NoError(t, Validate(config.NewConfig()))
}
