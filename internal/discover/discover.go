// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover enumerates convertible files under an input root.
// Implements: prd001-discovery; docs/ARCHITECTURE § Discovery.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/tomarkdown/pkg/types"
)

// Walk recursively enumerates regular files under root whose extension
// is docx, xlsx, or pdf (case-insensitive), in lexical path order so
// repeat runs see the same sequence. Symlinks are not followed.
//
// An unreadable directory is not fatal: traversal skips it, continues
// into siblings, and records one warning. Only a missing or
// non-directory root is an error.
func Walk(root string) ([]types.SourceFile, []string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("input directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("not a directory: %s", root)
	}

	var files []types.SourceFile
	var warnings []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", path, err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		kind := types.KindForExt(strings.ToLower(filepath.Ext(path)))
		if kind == types.KindUnknown {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", path, err)
		}
		files = append(files, types.SourceFile{Path: path, Rel: rel, Kind: kind})
		return nil
	})
	if err != nil {
		return nil, warnings, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, warnings, nil
}
