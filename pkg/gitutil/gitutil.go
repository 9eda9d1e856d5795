// Package gitutil answers questions about the git checkout a specification
// lives in.
package gitutil

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/stave/pkg/sh"
)

// ErrNotGitRepo is returned when the directory is not inside a git work tree
// or git is not installed.
var ErrNotGitRepo = errors.New("not a git repository")

// RepoRoot returns the top-level directory of the work tree containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("repo root: %w", err)
	}

	args := []string{"rev-parse", "--show-toplevel"}
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}

	out, err := sh.Output("git", args...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotGitRepo, dir, err)
	}

	root := strings.TrimSpace(out)
	if root == "" {
		return "", fmt.Errorf("%w: %s", ErrNotGitRepo, dir)
	}

	return root, nil
}
