// Package tablecli provides the swatch-table commands for building and
// checking lookup tables.
package tablecli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/swatch/internal/artifact"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/logging"
	"github.com/spf13/cobra"
)

// paletteFlags selects the palette a table is built for or checked against.
type paletteFlags struct {
	name  string
	file  string
	space string
}

func (f *paletteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "palette", "p", colour.PaletteCurated, "built-in palette (simple, curated)")
	cmd.Flags().StringVar(&f.file, "palette-file", "", "file of hex colours, one per line (overrides --palette)")
	cmd.Flags().StringVarP(&f.space, "colourspace", "s", string(colour.ColourspaceOkLab), "comparison colourspace (rgb, oklab)")
}

func (f *paletteFlags) resolve() (*colour.Palette, error) {
	cs, err := colour.ParseColourspace(f.space)
	if err != nil {
		return nil, err
	}
	if f.file != "" {
		hexes, err := artifact.ReadPalette(f.file)
		if err != nil {
			return nil, err
		}
		return colour.PaletteFromHex(f.file, hexes, cs)
	}
	p, err := colour.LookupPalette(f.name, cs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve palette: %w", err)
	}
	return p, nil
}

func commandLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return logging.New("swatch-table", cmd.ErrOrStderr(), verbose, quiet)
}
