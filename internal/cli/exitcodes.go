package cli

import (
	"errors"
	"os"

	"github.com/yaklabco/gospec/internal/configloader"
	"github.com/yaklabco/gospec/pkg/build"
	"github.com/yaklabco/gospec/pkg/extract"
	"github.com/yaklabco/gospec/pkg/fsutil"
	"github.com/yaklabco/gospec/pkg/gitutil"
	"github.com/yaklabco/gospec/pkg/manifest"
	"github.com/yaklabco/gospec/pkg/scaffold"
)

// Exit codes for gospec.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitExtractError indicates a source file holds malformed spec comments.
	ExitExtractError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration or manifest errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrUsage marks invalid flags or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration loading failures.
	ErrConfig = errors.New("invalid configuration")

	// ErrReported marks errors whose diagnostics were already printed.
	ErrReported = errors.New("error reported")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var extractErr *extract.Error
	var validationErr *configloader.ValidationError

	switch {
	case errors.As(err, &extractErr):
		return ExitExtractError
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig),
		errors.As(err, &validationErr),
		errors.Is(err, manifest.ErrInvalid),
		errors.Is(err, manifest.ErrBadRepoPath),
		errors.Is(err, gitutil.ErrNotGitRepo),
		errors.Is(err, build.ErrUnknownFormat),
		errors.Is(err, scaffold.ErrSpecExists),
		errors.Is(err, scaffold.ErrBadPath):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, extract.ErrBinaryFile),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
