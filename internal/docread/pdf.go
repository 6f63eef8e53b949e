package docread

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// readPDF extracts plain text from a PDF file.
// Extraction quality depends on how the PDF encodes its text streams;
// scanned documents without a text layer come back empty, which surfaces
// downstream as an empty-text conversion error rather than a crash.
func readPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}

	return buf.String(), nil
}
