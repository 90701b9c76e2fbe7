package tablecli

import (
	"fmt"
	"time"

	"github.com/jmylchreest/swatch/internal/artifact"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/spf13/cobra"
)

// BuildCmd returns the build command.
func BuildCmd() *cobra.Command {
	var (
		output  string
		workers int
		pf      paletteFlags
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a lookup table",
		Long: `Classify every RGB value against a palette by brute force and write the
bucket of each as one byte, in RGB order.

The output is compressed when its name ends in .gz, .xz or .zst. The table is
spot-checked against the palette before it is written.

Examples:
  swatch-table build --output curated.lut
  swatch-table build --output curated.lut.xz --workers 8 -v
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if workers < 0 {
				return fmt.Errorf("workers must not be negative, got %d", workers)
			}
			logger := commandLogger(cmd)

			palette, err := pf.resolve()
			if err != nil {
				return err
			}

			logger.Info("building lookup table", "palette", palette.Name,
				"colourspace", palette.Space, "buckets", palette.Len(), "workers", workers)
			start := time.Now()

			table, err := colour.BuildLookupTable(cmd.Context(), palette, colour.BuildOptions{
				Workers: workers,
				Logger:  logger,
			})
			if err != nil {
				return err
			}
			if err := table.Verify(palette, colour.ReferenceSamples(palette)); err != nil {
				return fmt.Errorf("built table failed verification: %w", err)
			}

			if err := artifact.SaveTable(output, table); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote lookup table for %s (%s, %d buckets) to %s in %s\n",
				palette.Name, palette.Space, palette.Len(), output, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (required)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "goroutines classifying colours (default: CPU count)")
	pf.register(cmd)
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
