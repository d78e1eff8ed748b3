// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFConverter converts PDF documents by extracting per-page plain text.
// Pages are joined with horizontal rules; empty pages are dropped.
type PDFConverter struct{}

func (c *PDFConverter) Convert(path string) (md string, err error) {
	// The parser panics on some malformed files; treat that as a
	// conversion failure like any other.
	defer func() {
		if r := recover(); r != nil {
			err = &ConversionError{Path: path, Err: fmt.Errorf("parsing PDF: %v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ConversionError{Path: path, Err: fmt.Errorf("opening PDF: %w", err)}
	}
	defer f.Close()

	total := reader.NumPage()
	if total == 0 {
		return "", &ConversionError{Path: path, Err: errors.New("PDF has no pages")}
	}

	var pages []string
	for n := 1; n <= total; n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ConversionError{Path: path, Err: fmt.Errorf("extracting text from page %d: %w", n, err)}
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}
	if len(pages) == 0 {
		return "", &ConversionError{Path: path, Err: errors.New("no extractable text")}
	}
	return strings.Join(pages, "\n\n---\n\n") + "\n", nil
}
