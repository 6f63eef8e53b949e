// Package docread extracts raw text from source documents.
//
// Supported formats:
//   - .txt/.text: plain text (passthrough)
//   - .md/.markdown: Markdown (passthrough, rendered downstream)
//   - .docx: Microsoft Word (archive/zip, word/document.xml)
//   - .pdf: PDF text extraction (github.com/ledongthuc/pdf)
package docread

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for document reading.
var (
	ErrUnsupportedFormat = errors.New("unsupported source format")
	ErrReadFailed        = errors.New("failed to read source document")
)

// Format identifies a supported source document format.
type Format string

// Supported source formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatDocx     Format = "docx"
	FormatPDF      Format = "pdf"
)

// Detect returns the document format based on file extension.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".text":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".docx":
		return FormatDocx, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Extract reads the document at path and returns its raw text and format.
// All failures are recoverable errors; nothing here terminates the process.
func Extract(path string) (string, Format, error) {
	format, err := Detect(path)
	if err != nil {
		return "", "", err
	}

	var text string
	switch format {
	case FormatText, FormatMarkdown:
		text, err = readPlain(path)
	case FormatDocx:
		text, err = readDocx(path)
	case FormatPDF:
		text, err = readPDF(path)
	}
	if err != nil {
		return "", format, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
	}

	return text, format, nil
}

// SupportedExtensions returns the recognized source file extensions.
func SupportedExtensions() []string {
	return []string{".txt", ".text", ".md", ".markdown", ".docx", ".pdf"}
}

// readPlain reads a plain-text or Markdown file as-is.
func readPlain(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- source path is user-provided
	if err != nil {
		return "", err
	}
	return string(content), nil
}
