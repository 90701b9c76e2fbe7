package tablecli

import (
	"fmt"

	"github.com/jmylchreest/swatch/internal/artifact"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/spf13/cobra"
)

// VerifyCmd returns the verify command.
func VerifyCmd() *cobra.Command {
	var (
		samples int
		seed    uint64
		pf      paletteFlags
	)

	cmd := &cobra.Command{
		Use:   "verify <table>",
		Short: "Check a lookup table against its palette",
		Long: `Load a lookup table and compare it with brute-force classification.

Checks:
  - Decompressed size is exactly 16,777,216 bytes
  - No entry points past the end of the palette
  - Every palette colour, primary and grey maps to its brute-force bucket
  - A number of pseudo-random colours map to their brute-force bucket

Examples:
  swatch-table verify curated.lut
  swatch-table verify --samples 100000 --seed 7 curated.lut.zst
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 0 {
				return fmt.Errorf("samples must not be negative, got %d", samples)
			}
			path := args[0]
			logger := commandLogger(cmd)

			palette, err := pf.resolve()
			if err != nil {
				return err
			}

			logger.Debug("loading lookup table", "path", path)
			table, err := artifact.LoadTable(path)
			if err != nil {
				return err
			}

			checks := append(colour.ReferenceSamples(palette), colour.RandomSamples(samples, seed)...)
			logger.Debug("verifying lookup table", "palette", palette.Name, "samples", len(checks))
			if err := table.Verify(palette, checks); err != nil {
				return fmt.Errorf("✗ %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s matches palette %s (%s) on %d colours\n",
				path, palette.Name, palette.Space, len(checks))
			return nil
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 1000, "random colours to check in addition to the reference set")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random colours")
	pf.register(cmd)
	return cmd
}
