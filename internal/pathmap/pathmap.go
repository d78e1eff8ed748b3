// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pathmap resolves output locations that mirror the input tree.
// Implements: prd003-output; docs/ARCHITECTURE § Output Mapping.
package pathmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/tomarkdown/pkg/types"
)

// Mapper computes output paths under OutputRoot for files discovered
// under InputRoot, preserving relative structure.
type Mapper struct {
	InputRoot  string
	OutputRoot string
}

// New returns a Mapper. An empty outputRoot selects in-place output:
// each .md lands beside its source file.
func New(inputRoot, outputRoot string) *Mapper {
	if outputRoot == "" {
		outputRoot = inputRoot
	}
	return &Mapper{InputRoot: inputRoot, OutputRoot: outputRoot}
}

// EnsureRoot creates the output root. This is the only directory
// creation whose failure aborts a run; it happens before any worker
// starts.
func (m *Mapper) EnsureRoot() error {
	if err := os.MkdirAll(m.OutputRoot, 0o755); err != nil {
		return fmt.Errorf("creating output root %s: %w", m.OutputRoot, err)
	}
	return nil
}

// Resolve returns the output target for src: its relative path with the
// extension replaced by .md, joined under the output root.
func (m *Mapper) Resolve(src types.SourceFile) types.OutputTarget {
	rel := strings.TrimSuffix(src.Rel, filepath.Ext(src.Rel)) + ".md"
	return types.OutputTarget{Path: filepath.Join(m.OutputRoot, rel)}
}

// Prepare creates the parent directories of target. MkdirAll treats an
// existing directory as success, so concurrent workers preparing
// sibling outputs cannot race each other into failure.
func (m *Mapper) Prepare(target types.OutputTarget) (types.OutputTarget, error) {
	if err := os.MkdirAll(filepath.Dir(target.Path), 0o755); err != nil {
		return target, fmt.Errorf("creating output directory for %s: %w", target.Path, err)
	}
	target.Prepared = true
	return target, nil
}
