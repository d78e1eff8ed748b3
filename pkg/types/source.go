// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FileKind identifies which conversion backend handles a source file.
// Resolved once per file at discovery time and matched exhaustively by
// the converter dispatch.
type FileKind string

const (
	// KindWord is a Microsoft Word document (.docx).
	KindWord FileKind = "docx"

	// KindExcel is a Microsoft Excel workbook (.xlsx).
	KindExcel FileKind = "xlsx"

	// KindPDF is a PDF document (.pdf).
	KindPDF FileKind = "pdf"

	// KindUnknown marks extensions no backend handles. Discovery drops
	// these silently.
	KindUnknown FileKind = ""
)

// KindForExt maps a lowercased extension (with leading dot) to a FileKind.
func KindForExt(ext string) FileKind {
	switch ext {
	case ".docx":
		return KindWord
	case ".xlsx":
		return KindExcel
	case ".pdf":
		return KindPDF
	default:
		return KindUnknown
	}
}

// SourceFile is one discovered input file awaiting conversion. It is
// immutable once created and owned by the worker processing it until the
// result is handed back to the aggregator.
type SourceFile struct {
	// Path is the path to the input file as discovered.
	Path string `json:"path" yaml:"path"`

	// Rel is the path relative to the input root. Output placement
	// mirrors it with the extension replaced by .md.
	Rel string `json:"rel" yaml:"rel"`

	// Kind selects the conversion backend.
	Kind FileKind `json:"kind" yaml:"kind"`
}
