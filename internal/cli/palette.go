package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/spf13/cobra"
)

func newPaletteCmd() *cobra.Command {
	var (
		name        string
		paletteFile string
		space       string
		format      string
		preview     bool
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the colours of a palette",
		Long: `List the buckets of a built-in or custom palette in bucket order.

Examples:
  swatch palette
  swatch palette --palette simple --preview
  swatch palette --format json > curated.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			palette, err := resolvePalette(name, paletteFile, space)
			if err != nil {
				return fmt.Errorf("failed to resolve palette: %w", err)
			}

			var output string
			switch format {
			case "json":
				data, err := palette.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				output = string(data) + "\n"
			case "hex":
				for _, hex := range palette.All() {
					output += hex + "\n"
				}
			case "text":
				output = formatPaletteTable(palette, previewEnabled(cmd, preview))
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, hex, json)", format)
			}
			return writeOutput(cmd.OutOrStdout(), "", output)
		},
	}

	cmd.Flags().StringVarP(&name, "palette", "p", colour.PaletteCurated, "built-in palette (simple, curated)")
	cmd.Flags().StringVar(&paletteFile, "palette-file", "", "file of hex colours, one per line (overrides --palette)")
	cmd.Flags().StringVarP(&space, "colourspace", "s", string(colour.ColourspaceOkLab), "colourspace (rgb, oklab)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, hex, json)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")
	return cmd
}

// formatPaletteTable renders each bucket with its OkLab coordinates.
func formatPaletteTable(p *colour.Palette, showPreview bool) string {
	headers := []string{"Bucket", "Colour", "L", "a", "b"}
	if showPreview {
		headers = append(headers, "Preview")
	}
	table := NewTable(headers)
	for i := range 5 {
		if i != 1 {
			table.SetColumnAlignRight(i)
		}
	}

	for i, hex := range p.All() {
		lab := p.OkLabAt(i)
		row := []string{
			strconv.Itoa(i),
			hex,
			fmt.Sprintf("%.4f", lab.L),
			fmt.Sprintf("%.4f", lab.A),
			fmt.Sprintf("%.4f", lab.B),
		}
		if showPreview {
			row = append(row, colour.ColourPreviewWithText(colour.RGBFromPacked(colour.OkLabToRGB(lab)), strconv.Itoa(i), 6))
		}
		table.AddRow(row)
	}
	return fmt.Sprintf("Palette %s (%s), %d colours\n", p.Name, p.Space, p.Len()) + table.Render()
}
