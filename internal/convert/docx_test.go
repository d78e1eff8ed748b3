// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDocx assembles a minimal DOCX archive holding the given
// word/document.xml body.
func writeDocx(t *testing.T, path, body string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create(documentXML)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr><w:pStyle w:val="Heading1"/></w:pPr>
      <w:r><w:t>Test Document</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t>Hello </w:t></w:r>
      <w:r><w:t>world.</w:t></w:r>
    </w:p>
    <w:p>
      <w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>
      <w:r><w:t>First item</w:t></w:r>
    </w:p>
    <w:p>
      <w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>
      <w:r><w:t>Second item</w:t></w:r>
    </w:p>
    <w:p>
      <w:pPr><w:pStyle w:val="Heading2"/></w:pPr>
      <w:r><w:t>Details</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t>Closing paragraph.</w:t></w:r>
    </w:p>
  </w:body>
</w:document>`

func TestWordConverter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_document.docx")
	writeDocx(t, path, sampleDocumentXML)

	got, err := (&WordConverter{}).Convert(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "# Test Document\n\n" +
		"Hello world.\n\n" +
		"- First item\n" +
		"- Second item\n\n" +
		"## Details\n\n" +
		"Closing paragraph.\n"
	if got != want {
		t.Errorf("markdown mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWordConverterErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, path string)
		want  string
	}{
		{
			name: "not a zip archive",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("plain text, no archive"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			want: "opening archive",
		},
		{
			name: "archive without document body",
			setup: func(t *testing.T, path string) {
				f, err := os.Create(path)
				if err != nil {
					t.Fatal(err)
				}
				zw := zip.NewWriter(f)
				if _, err := zw.Create("word/styles.xml"); err != nil {
					t.Fatal(err)
				}
				if err := zw.Close(); err != nil {
					t.Fatal(err)
				}
				if err := f.Close(); err != nil {
					t.Fatal(err)
				}
			},
			want: documentXML,
		},
		{
			name: "malformed xml",
			setup: func(t *testing.T, path string) {
				writeDocx(t, path, "<w:document><w:body><w:p>")
			},
			want: "parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "broken.docx")
			tt.setup(t, path)

			_, err := (&WordConverter{}).Convert(path)
			if err == nil {
				t.Fatal("conversion should fail")
			}
			var ce *ConversionError
			if !errors.As(err, &ce) {
				t.Fatalf("error should be a *ConversionError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"Heading3", 3},
		{"Heading6", 6},
		{"Heading9", 6}, // clamped
		{"Heading", 1},
	}
	for _, tt := range tests {
		if got := headingLevel(tt.style); got != tt.want {
			t.Errorf("headingLevel(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}
