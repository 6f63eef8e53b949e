package blogen

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyText      = errors.New("source text cannot be empty")
	ErrEmptyTitle     = errors.New("article title cannot be empty")
	ErrBodyConversion = errors.New("body conversion failed")

	// Source document extraction errors.
	ErrReadSource        = errors.New("failed to read source document")
	ErrUnsupportedFormat = errors.New("unsupported source format")

	// Metadata extraction errors.
	ErrReadArticle = errors.New("failed to read article file")

	// Asset loading errors.
	ErrStyleNotFound = errors.New("style not found")
	ErrShellNotFound = errors.New("page shell not found")

	// Date format errors surface from option resolution.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
