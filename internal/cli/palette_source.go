package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jmylchreest/swatch/internal/artifact"
	"github.com/jmylchreest/swatch/internal/colour"
)

// resolvePalette builds the palette named by the --palette, --palette-file
// and --colourspace flags. A palette file takes precedence over a name.
func resolvePalette(name, file, space string) (*colour.Palette, error) {
	cs, err := colour.ParseColourspace(space)
	if err != nil {
		return nil, err
	}
	if file != "" {
		hexes, err := artifact.ReadPalette(file)
		if err != nil {
			return nil, err
		}
		return colour.PaletteFromHex(file, hexes, cs)
	}
	return colour.LookupPalette(name, cs)
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path, content string) error {
	if path == "" {
		_, err := fmt.Fprint(stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 - Output is a user-facing report
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
