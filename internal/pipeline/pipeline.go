// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline distributes file conversions across a bounded worker
// pool and aggregates per-file outcomes into a RunSummary.
// Implements: prd004-pipeline; docs/ARCHITECTURE § Pipeline.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/pdiddy/tomarkdown/internal/convert"
	"github.com/pdiddy/tomarkdown/internal/pathmap"
	"github.com/pdiddy/tomarkdown/pkg/types"
)

// Resolver selects the converter for a file kind. Production callers
// pass convert.For; tests substitute fakes.
type Resolver func(types.FileKind) (convert.Converter, error)

// Options configures one pipeline run.
type Options struct {
	// Workers is the number of concurrent conversion workers. Zero or
	// negative means runtime.NumCPU(), with a minimum of one.
	Workers int

	// Frontmatter prepends a YAML header naming the source to each output.
	Frontmatter bool

	// Log receives per-file status lines. Nil means discard.
	Log io.Writer
}

// resolveWorkers clamps the configured worker count.
func resolveWorkers(n int) int {
	if n < 1 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Run converts every file in files, writing output through mapper, and
// returns the aggregated summary. It blocks until each dispatched file
// has produced exactly one result.
//
// Per-file failures (conversion or write) are recorded in the summary
// and never abort the run. The only error Run itself returns is a
// failure to create the output root, which happens before any worker
// starts. Cancelling ctx stops new files from being dispatched;
// in-flight conversions finish and files never attempted count as
// skipped.
func Run(ctx context.Context, files []types.SourceFile, resolve Resolver, mapper *pathmap.Mapper, opts Options) (types.RunSummary, error) {
	summary := types.RunSummary{Discovered: len(files)}
	if opts.Log == nil {
		opts.Log = io.Discard
	}

	if err := mapper.EnsureRoot(); err != nil {
		return summary, err
	}
	if len(files) == 0 {
		return summary, nil
	}

	workers := resolveWorkers(opts.Workers)
	jobs := make(chan types.SourceFile)
	results := make(chan types.ConversionResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for src := range jobs {
				results <- convertOne(src, resolve, mapper, opts)
			}
		}()
	}

	// Feeder. The dispatched count flows back so the aggregator can
	// account for files the cancellation left untouched.
	dispatched := make(chan int, 1)
	go func() {
		n := 0
	feed:
		for _, src := range files {
			select {
			case <-ctx.Done():
				break feed
			default:
			}
			select {
			case jobs <- src:
				n++
			case <-ctx.Done():
				break feed
			}
		}
		close(jobs)
		dispatched <- n
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Aggregation point: the only writer of the summary. Results arrive
	// in completion order, not discovery order.
	for res := range results {
		if res.Err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, types.Failure{
				Path:   res.Source.Rel,
				Reason: res.Err.Error(),
			})
			fmt.Fprintf(opts.Log, "failed:    %s (%v)\n", res.Source.Rel, res.Err)
			continue
		}
		summary.Succeeded++
		fmt.Fprintf(opts.Log, "converted: %s -> %s\n", res.Source.Rel, res.Output)
	}
	summary.Skipped = len(files) - <-dispatched

	return summary, nil
}

// convertOne runs a single file through conversion and output writing.
// Every failure is caught here and returned as a result; nothing
// propagates to the dispatcher as a raised error.
func convertOne(src types.SourceFile, resolve Resolver, mapper *pathmap.Mapper, opts Options) types.ConversionResult {
	res := types.ConversionResult{Source: src}

	conv, err := resolve(src.Kind)
	if err != nil {
		res.Err = err
		return res
	}

	md, err := conv.Convert(src.Path)
	if err != nil {
		res.Err = err
		return res
	}

	if opts.Frontmatter {
		md, err = convert.WithFrontmatter(src, md)
		if err != nil {
			res.Err = err
			return res
		}
	}

	target := mapper.Resolve(src)
	target, err = mapper.Prepare(target)
	if err != nil {
		res.Err = err
		return res
	}
	if err := os.WriteFile(target.Path, []byte(md), 0o644); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", target.Path, err)
		return res
	}

	res.Output = target.Path
	return res
}
