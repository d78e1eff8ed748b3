// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tomarkdown CLI.
// Implements: docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tomarkdown CLI.
var rootCmd = &cobra.Command{
	Use:   "tomarkdown",
	Short: "Convert office documents and PDFs to Markdown",
	Long: `tomarkdown walks a directory tree, converts every DOCX, XLSX, and PDF
file it finds to Markdown, and writes the output mirroring the input
directory structure. Conversions run in parallel across a bounded
worker pool; individual file failures are reported in the final summary
without stopping the run.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tomarkdown.yaml or ~/.config/tomarkdown/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tomarkdown")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tomarkdown"))
		}
	}

	viper.SetEnvPrefix("TOMARKDOWN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
