// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RunSummary is the aggregate outcome of one conversion run. The pipeline
// aggregator is its only writer while the run is in flight; it is
// immutable once the run returns.
type RunSummary struct {
	// Discovered is the number of convertible files found.
	Discovered int `json:"discovered" yaml:"discovered"`

	// Succeeded is the number of files converted and written.
	Succeeded int `json:"succeeded" yaml:"succeeded"`

	// Failed is the number of files whose conversion or write failed.
	Failed int `json:"failed" yaml:"failed"`

	// Skipped is the number of files never handed to a worker because
	// the run was cancelled.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Failures lists each failed file with its cause, in arrival order.
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`

	// Warnings lists non-fatal discovery problems, one per unreadable
	// directory.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Total returns the number of files accounted for.
func (s RunSummary) Total() int {
	return s.Succeeded + s.Failed + s.Skipped
}

// HasFailures reports whether any file failed.
func (s RunSummary) HasFailures() bool {
	return s.Failed > 0
}

// AllFailed reports whether files were discovered and every attempted
// one failed. This is the only per-file condition that turns into a
// non-zero exit.
func (s RunSummary) AllFailed() bool {
	return s.Discovered > 0 && s.Succeeded == 0 && s.Failed > 0
}
