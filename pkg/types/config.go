// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for one conversion run.
type ConvertConfig struct {
	// InputDir is the directory to scan for convertible files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the output root. Empty means in-place: .md files are
	// written beside their sources.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Workers is the number of parallel conversion workers. Zero or
	// negative means the host CPU count, with a minimum of one.
	Workers int `json:"workers" yaml:"workers"`

	// Frontmatter prepends a YAML header naming the source file to each
	// output. Off by default so plain runs produce bare Markdown.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`
}
