package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gospec/internal/logging"
	"github.com/yaklabco/gospec/pkg/fsutil"
	"github.com/yaklabco/gospec/pkg/langdetect"
)

// ErrBinaryFile is returned when a listed file is not text.
var ErrBinaryFile = errors.New("binary file")

// File reads path and returns its specification text. Markdown files are
// returned unchanged; every other file is scanned with the comment syntax
// picked from its extension.
func File(ctx context.Context, path string) (string, error) {
	profile, err := ProfileFor(path)
	if err != nil {
		return "", err
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("read section: %w", err)
	}

	if langdetect.IsBinary(content) {
		return "", fmt.Errorf("%w: %s", ErrBinaryFile, path)
	}

	logger := logging.FromContext(ctx)

	if IsPassthrough(path) {
		logger.Debug("copying markdown section", logging.FieldPath, path)
		return string(content), nil
	}

	logger.Debug("extracting specification comments",
		logging.FieldPath, path,
		logging.FieldLanguage, langdetect.Language(path, content),
		logging.FieldMarker, profile.Start,
	)

	return Source(path, content, profile)
}
