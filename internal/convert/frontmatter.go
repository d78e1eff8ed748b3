// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tomarkdown/pkg/types"
)

// frontmatter is the YAML block prepended to converted output when
// enabled. It deliberately carries no timestamp: repeat runs over the
// same inputs must produce byte-identical files.
type frontmatter struct {
	Source string         `yaml:"source"`
	Kind   types.FileKind `yaml:"kind"`
}

// WithFrontmatter prepends a YAML frontmatter block naming the source
// file to the converted body.
func WithFrontmatter(src types.SourceFile, body string) (string, error) {
	data, err := yaml.Marshal(frontmatter{
		Source: filepath.ToSlash(src.Rel),
		Kind:   src.Kind,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
