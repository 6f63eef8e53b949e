package main

import (
	"errors"
	"os"

	blogen "github.com/alnah/go-blogen"
	"github.com/alnah/go-blogen/internal/config"
)

// Exit codes for the blogen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, blogen.ErrReadSource) ||
		errors.Is(err, blogen.ErrReadArticle) ||
		errors.Is(err, ErrWriteArticle) ||
		errors.Is(err, ErrWriteIndex) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, blogen.ErrEmptyText) ||
		errors.Is(err, blogen.ErrEmptyTitle) ||
		errors.Is(err, blogen.ErrUnsupportedFormat) ||
		errors.Is(err, blogen.ErrStyleNotFound) ||
		errors.Is(err, blogen.ErrInvalidDateFormat) ||
		errors.Is(err, ErrMissingTitle) ||
		errors.Is(err, ErrEmptySlug) {
		return ExitUsage
	}

	return ExitGeneral
}
