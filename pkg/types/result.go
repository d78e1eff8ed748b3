// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionResult is the outcome of converting one SourceFile. Exactly
// one result exists per discovered file; it is never mutated after the
// worker creates it.
type ConversionResult struct {
	// Source is the file the result belongs to.
	Source SourceFile

	// Output is the path of the written Markdown file. Empty when the
	// conversion failed.
	Output string

	// Err is the conversion or write failure, nil on success.
	Err error
}

// Succeeded reports whether the file converted and was written.
func (r ConversionResult) Succeeded() bool {
	return r.Err == nil
}

// OutputTarget is a resolved output location. The relative path under
// the output root always equals the source's relative path with the
// extension replaced by .md.
type OutputTarget struct {
	// Path is the resolved output file path.
	Path string

	// Prepared reports whether the parent directories have been created.
	Prepared bool
}

// Failure describes one file that could not be converted or written.
type Failure struct {
	// Path is the source file's path relative to the input root.
	Path string `json:"path" yaml:"path"`

	// Reason is the underlying cause, as reported by the backend.
	Reason string `json:"reason" yaml:"reason"`
}
