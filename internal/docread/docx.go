package docread

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// documentXMLPath is where OOXML stores the main document body.
const documentXMLPath = "word/document.xml"

var errNoDocumentXML = errors.New("docx archive has no word/document.xml")

// readDocx extracts paragraph text from a .docx archive.
// A .docx file is a zip containing word/document.xml; paragraph boundaries
// (<w:p>) become blank lines so the downstream splitter sees them, and run
// text (<w:t>) is concatenated in document order. Tabs and explicit breaks
// inside a paragraph map to a space and a newline respectively.
func readDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = archive.Close() }()

	for _, file := range archive.File {
		if file.Name != documentXMLPath {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", err
		}
		defer func() { _ = rc.Close() }()
		return parseDocumentXML(rc)
	}

	return "", errNoDocumentXML
}

// parseDocumentXML walks the OOXML token stream collecting text runs.
func parseDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte(' ')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
