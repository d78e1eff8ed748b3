// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tomarkdown/internal/convert"
	"github.com/pdiddy/tomarkdown/internal/discover"
	"github.com/pdiddy/tomarkdown/internal/pathmap"
	"github.com/pdiddy/tomarkdown/internal/pipeline"
	"github.com/pdiddy/tomarkdown/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <directory>",
	Short: "Convert all documents under a directory to Markdown",
	Long: `Convert recursively scans the directory for DOCX, XLSX, and PDF files,
converts each to Markdown, and writes the output preserving the relative
directory structure. By default the .md files land beside their sources;
--output-to mirrors the tree under a separate root instead.

Per-file failures are listed in the summary and do not stop the run. The
exit code is non-zero only when the run cannot start at all, or when
every discovered file failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("output-to", "", "output root (default: write .md beside each source file)")
	convertCmd.Flags().Int("workers", 0, "number of parallel workers (default: CPU count)")
	convertCmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter naming the source file")
	_ = viper.BindPFlag("output_to", convertCmd.Flags().Lookup("output-to"))
	_ = viper.BindPFlag("workers", convertCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("frontmatter", convertCmd.Flags().Lookup("frontmatter"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := types.ConvertConfig{
		InputDir:    args[0],
		OutputDir:   viper.GetString("output_to"),
		Workers:     viper.GetInt("workers"),
		Frontmatter: viper.GetBool("frontmatter"),
	}

	info, err := os.Stat(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", cfg.InputDir)
	}

	files, warnings, err := discover.Walk(cfg.InputDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Converting files from: %s\n", cfg.InputDir)
	mapper := pathmap.New(cfg.InputDir, cfg.OutputDir)
	fmt.Fprintf(out, "Output directory: %s\n\n", mapper.OutputRoot)

	summary, err := pipeline.Run(cmd.Context(), files, convert.For, mapper, pipeline.Options{
		Workers:     cfg.Workers,
		Frontmatter: cfg.Frontmatter,
		Log:         out,
	})
	if err != nil {
		return err
	}
	summary.Warnings = warnings

	printSummary(out, cmd.ErrOrStderr(), summary)

	if summary.AllFailed() {
		return fmt.Errorf("all %d files failed to convert", summary.Failed)
	}
	return nil
}

// printSummary writes the final counts to out and the per-failure and
// per-warning detail lines to errOut.
func printSummary(out, errOut io.Writer, s types.RunSummary) {
	fmt.Fprintf(out, "\nSummary: %d converted, %d failed, %d skipped (total: %d)\n",
		s.Succeeded, s.Failed, s.Skipped, s.Discovered)
	for _, f := range s.Failures {
		fmt.Fprintf(errOut, "  failed: %s (%s)\n", f.Path, f.Reason)
	}
	for _, w := range s.Warnings {
		fmt.Fprintf(errOut, "  warning: %s\n", w)
	}
}
