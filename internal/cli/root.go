// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/logging"
	"github.com/jmylchreest/swatch/internal/version"
	"github.com/spf13/cobra"
)

const (
	// EnvLUT names a prebuilt curated OkLab lookup table, used when --lut is
	// not given and the curated palette is selected in OkLab.
	EnvLUT = "SWATCH_LUT"

	// EnvWorkers sets the worker count used when --workers is not given.
	EnvWorkers = "SWATCH_WORKERS"
)

// NewRootCmd builds the swatch command tree. Each call returns an
// independent tree, so tests can execute commands without shared flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Find the dominant colours of an image",
		Long: `Swatch classifies every pixel of an image into the nearest colour of a
fixed palette and reports which palette colours dominate.

Pixels are compared in RGB with squared Euclidean distance, or in OkLab with
CIEDE2000. The 256-colour curated palette can be served from a prebuilt
lookup table (see swatch-table) for constant-time classification.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().Bool("no-colour", false, "never emit ANSI colour previews")

	rootCmd.SetVersionTemplate(version.String("swatch") + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDominantCmd(),
		newMainCmd(),
		newCountCmd(),
		newAuditCmd(),
		newPaletteCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String("swatch"))
		},
	}
}

// commandLogger builds the logger for a command from the global flags.
func commandLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return logging.New("swatch", cmd.ErrOrStderr(), verbose, quiet)
}

// previewEnabled reports whether ANSI previews should be drawn: the command
// asked for them, --no-colour is unset and stdout is a colour terminal.
func previewEnabled(cmd *cobra.Command, requested bool) bool {
	if !requested {
		return false
	}
	if noColour, _ := cmd.Flags().GetBool("no-colour"); noColour {
		return false
	}
	return colour.SupportsANSIColours()
}

// resolveWorkers picks the worker count: the flag when positive, then
// SWATCH_WORKERS, then the number of CPUs.
func resolveWorkers(flag int) (int, error) {
	if flag < 0 {
		return 0, fmt.Errorf("workers must not be negative, got %d", flag)
	}
	if flag > 0 {
		return flag, nil
	}
	if env := os.Getenv(EnvWorkers); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("invalid %s value %q: must be a positive integer", EnvWorkers, env)
		}
		return n, nil
	}
	return runtime.NumCPU(), nil
}

// resolveLUT returns the lookup table path. An explicit flag always wins;
// SWATCH_LUT only applies when the palette is the built-in curated one in OkLab.
func resolveLUT(flag string, palette *colour.Palette, paletteFile string) string {
	if flag != "" {
		return flag
	}
	if paletteFile != "" || palette.Name != colour.PaletteCurated || palette.Space != colour.ColourspaceOkLab {
		return ""
	}
	return os.Getenv(EnvLUT)
}
