package docread

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "essay.txt", want: FormatText},
		{path: "essay.text", want: FormatText},
		{path: "essay.md", want: FormatMarkdown},
		{path: "essay.markdown", want: FormatMarkdown},
		{path: "essay.docx", want: FormatDocx},
		{path: "essay.pdf", want: FormatPDF},
		{path: "Essay.TXT", want: FormatText},
		{path: "essay.doc", wantErr: true},
		{path: "essay.html", wantErr: true},
		{path: "essay", wantErr: true},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := Detect(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("Detect(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtract_PlainText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "essay.txt")
	content := "PATIENCE\n\nGood things take time.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	text, format, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if format != FormatText {
		t.Errorf("format = %q, want %q", format, FormatText)
	}
	if text != content {
		t.Errorf("text = %q, want %q", text, content)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := Extract(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, ErrReadFailed) {
		t.Fatalf("Extract() error = %v, want ErrReadFailed", err)
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, _, err := Extract("essay.odt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Extract() error = %v, want ErrUnsupportedFormat", err)
	}
}

// writeDocx builds a minimal OOXML archive containing the given document body.
func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip Create() error = %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("zip Write() error = %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip Close() error = %v", err)
	}
}

func TestExtract_Docx(t *testing.T) {
	t.Parallel()

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>THE LONG VIEW</w:t></w:r></w:p>
    <w:p><w:r><w:t>First part</w:t></w:r><w:r><w:t xml:space="preserve"> second part.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Before</w:t><w:tab/><w:t>after tab.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	path := filepath.Join(t.TempDir(), "essay.docx")
	writeDocx(t, path, documentXML)

	text, format, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if format != FormatDocx {
		t.Errorf("format = %q, want %q", format, FormatDocx)
	}

	paragraphs := strings.Split(text, "\n\n")
	want := []string{"THE LONG VIEW", "First part second part.", "Before after tab."}
	if len(paragraphs) != len(want) {
		t.Fatalf("got %d paragraphs %q, want %d", len(paragraphs), paragraphs, len(want))
	}
	for i, p := range paragraphs {
		if p != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, p, want[i])
		}
	}
}

func TestExtract_DocxWithoutDocumentXML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	zw := zip.NewWriter(f)
	if err := zw.Close(); err != nil {
		t.Fatalf("zip Close() error = %v", err)
	}
	_ = f.Close()

	_, _, err = Extract(path)
	if !errors.Is(err, ErrReadFailed) {
		t.Fatalf("Extract() error = %v, want ErrReadFailed", err)
	}
}

func TestExtract_DocxNotAZip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bogus.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, _, err := Extract(path)
	if !errors.Is(err, ErrReadFailed) {
		t.Fatalf("Extract() error = %v, want ErrReadFailed", err)
	}
}

func TestSupportedExtensions(t *testing.T) {
	t.Parallel()

	exts := SupportedExtensions()
	for _, ext := range exts {
		if _, err := Detect("file" + ext); err != nil {
			t.Errorf("Detect(file%s) error = %v, want supported", ext, err)
		}
	}
}
