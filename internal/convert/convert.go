// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements document-to-Markdown conversion with one
// backend per file kind.
// Implements: prd002-conversion; docs/ARCHITECTURE § Conversion.
package convert

import (
	"fmt"

	"github.com/pdiddy/tomarkdown/pkg/types"
)

// Converter transforms one document file into Markdown text. Each
// supported file kind has its own implementation.
type Converter interface {
	// Convert reads the document at path and returns its Markdown content.
	Convert(path string) (string, error)
}

// ConversionError wraps a backend failure with the file it occurred on.
// One file's ConversionError never aborts the run; the pipeline records
// it and moves on.
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// For returns the converter for the given file kind. Discovery filters
// unsupported extensions, so an unknown kind here is a dispatch bug; it
// surfaces as a per-file failure rather than a panic.
func For(kind types.FileKind) (Converter, error) {
	switch kind {
	case types.KindWord:
		return &WordConverter{}, nil
	case types.KindExcel:
		return &ExcelConverter{}, nil
	case types.KindPDF:
		return &PDFConverter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file kind: %q", kind)
	}
}
