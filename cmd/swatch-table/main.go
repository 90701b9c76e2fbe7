// Package main provides the swatch-table CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmylchreest/swatch/internal/tablecli"
	"github.com/jmylchreest/swatch/internal/version"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "swatch-table",
		Short: "Build and verify swatch lookup tables",
		Long: `Lookup table tooling for swatch.

A lookup table maps each of the 16,777,216 RGB values to its nearest bucket
of the curated palette under CIEDE2000 in OkLab. Building one classifies every
colour by brute force and takes minutes; swatch then loads it with --lut and
classifies pixels with a single index.

Tables are written raw, or compressed when the output name ends in .gz, .xz
or .zst.

Examples:
  # Build a zstd-compressed table using every CPU
  swatch-table build --output curated.lut.zst

  # Check a table against 10,000 random brute-force classifications
  swatch-table verify --samples 10000 curated.lut.zst`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.SetVersionTemplate(version.String("swatch-table") + "\n")

	rootCmd.AddCommand(
		tablecli.BuildCmd(),
		tablecli.VerifyCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
