// Package artifact reads and writes the files swatch works with besides
// images: lookup tables and palette lists. Both may be compressed; the codec
// is chosen from the file extension.
package artifact

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/compression"
)

// maxPaletteFile bounds palette files; 256 hex lines fit comfortably.
const maxPaletteFile = 1 << 20

// LoadTable reads a lookup table artifact. The decompressed content must be
// exactly colour.TableSize bytes.
func LoadTable(path string) (colour.LookupTable, error) {
	// One byte over the table size lets an oversized artifact surface as
	// ErrTableLength instead of being silently cut off.
	rc, err := compression.Open(path, colour.TableSize+1)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	table, err := colour.LoadLookupTable(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to load lookup table %s: %w", path, err)
	}
	return table, nil
}

// SaveTable writes table to path, compressing by extension.
func SaveTable(path string, table colour.LookupTable) error {
	wc, err := compression.Create(path)
	if err != nil {
		return err
	}
	if _, err := table.WriteTo(wc); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write lookup table %s: %w", path, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to write lookup table %s: %w", path, err)
	}
	return nil
}

// ReadPalette reads hex colours, one per line. Blank lines and lines
// starting with "//" are skipped.
func ReadPalette(path string) ([]string, error) {
	rc, err := compression.Open(path, maxPaletteFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file: %w", err)
	}
	defer rc.Close()

	var hexes []string
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		hexes = append(hexes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read palette file %s: %w", path, err)
	}
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette file %s contains no colours", path)
	}
	return hexes, nil
}
