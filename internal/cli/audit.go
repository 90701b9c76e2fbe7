package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/spf13/cobra"
)

// errIndistinguishable is returned by audit --strict when pairs were found.
var errIndistinguishable = errors.New("palette contains indistinguishable colours")

func newAuditCmd() *cobra.Command {
	var (
		curated     bool
		paletteFile string
		epsilon     float64
		format      string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "audit [hex...]",
		Short: "Find palette colours that cannot be told apart",
		Long: `Compare every pair of palette colours with CIEDE2000 in OkLab and report
the pairs whose difference is below the threshold.

Examples:
  # Audit the curated palette
  swatch audit --curated

  # Audit a handful of colours
  swatch audit '#FF0000' '#FE0000' '#00FF00'

  # Fail (exit 1) when any pair is too close
  swatch audit --strict --palette-file brand.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
			if epsilon <= 0 {
				return fmt.Errorf("epsilon must be positive, got %g", epsilon)
			}

			palette, err := auditPalette(args, curated, paletteFile)
			if err != nil {
				return err
			}
			logger := commandLogger(cmd)
			logger.Debug("auditing palette", "palette", palette.Name, "colours", palette.Len(), "epsilon", epsilon)

			pairs := colour.FindIndistinguishable(palette, epsilon)

			var sb strings.Builder
			if format == "json" {
				if pairs == nil {
					pairs = []colour.SimilarPair{}
				}
				data, err := json.MarshalIndent(struct {
					Palette string               `json:"palette"`
					Colours int                  `json:"colours"`
					Epsilon float64              `json:"epsilon"`
					Pairs   []colour.SimilarPair `json:"pairs"`
				}{palette.Name, palette.Len(), epsilon, pairs}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				sb.Write(data)
				sb.WriteString("\n")
			} else {
				for _, line := range colour.AuditReport(pairs) {
					sb.WriteString(line + "\n")
				}
			}
			if err := writeOutput(cmd.OutOrStdout(), "", sb.String()); err != nil {
				return err
			}

			if strict && len(pairs) > 0 {
				return fmt.Errorf("%w: %d pairs below %g", errIndistinguishable, len(pairs), epsilon)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&curated, "curated", false, "audit the built-in curated palette")
	cmd.Flags().StringVar(&paletteFile, "palette-file", "", "file of hex colours, one per line")
	cmd.Flags().Float64VarP(&epsilon, "epsilon", "e", colour.DefaultEpsilon, "delta E below which colours are indistinguishable")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when indistinguishable pairs are found")
	return cmd
}

// auditPalette picks exactly one palette source: arguments, --curated or --palette-file.
func auditPalette(args []string, curated bool, paletteFile string) (*colour.Palette, error) {
	sources := 0
	if len(args) > 0 {
		sources++
	}
	if curated {
		sources++
	}
	if paletteFile != "" {
		sources++
	}
	if sources != 1 {
		return nil, fmt.Errorf("specify exactly one of: hex arguments, --curated, --palette-file")
	}

	switch {
	case curated:
		return colour.CuratedPalette(colour.ColourspaceOkLab)
	case paletteFile != "":
		return resolvePalette("", paletteFile, string(colour.ColourspaceOkLab))
	default:
		return colour.PaletteFromHex("arguments", args, colour.ColourspaceOkLab)
	}
}
