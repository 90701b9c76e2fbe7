package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Colourspace selects how palette entries are represented and compared.
type Colourspace string

const (
	// ColourspaceRGB stores buckets as packed RGB and compares with EuclideanRGB.
	ColourspaceRGB Colourspace = "rgb"

	// ColourspaceOkLab stores buckets as OkLab and compares with CIEDE2000.
	ColourspaceOkLab Colourspace = "oklab"
)

// ValidColourspaces returns the supported colourspaces.
func ValidColourspaces() []Colourspace {
	return []Colourspace{ColourspaceRGB, ColourspaceOkLab}
}

// ParseColourspace parses a colourspace name, case-insensitively.
func ParseColourspace(s string) (Colourspace, error) {
	switch Colourspace(strings.ToLower(s)) {
	case ColourspaceRGB:
		return ColourspaceRGB, nil
	case ColourspaceOkLab, "lab":
		return ColourspaceOkLab, nil
	default:
		return "", fmt.Errorf("unknown colourspace: %s (valid colourspaces: %v)", s, ValidColourspaces())
	}
}

// ErrPaletteTooLarge is returned when a palette cannot be indexed by one byte.
var ErrPaletteTooLarge = errors.New("palette has more than 256 entries")

// Palette is an ordered, fixed set of buckets. The index of an entry is its
// bucket identity and never changes for the lifetime of a palette.
// RGB is always populated and holds the hex the palette was defined with.
// Lab is populated for OkLab palettes and is what classification compares.
type Palette struct {
	Name  string
	Space Colourspace
	RGB   []uint32
	Lab   []OkLab
}

// NewRGBPalette creates an RGB palette from packed colours. Alpha is stripped.
func NewRGBPalette(name string, colours []uint32) *Palette {
	rgb := make([]uint32, len(colours))
	for i, c := range colours {
		rgb[i] = c & RGBMask
	}
	return &Palette{Name: name, Space: ColourspaceRGB, RGB: rgb}
}

// NewOkLabPalette creates an OkLab palette.
func NewOkLabPalette(name string, colours []OkLab) *Palette {
	lab := make([]OkLab, len(colours))
	rgb := make([]uint32, len(colours))
	for i, c := range colours {
		lab[i] = c
		rgb[i] = OkLabToRGB(c)
	}
	return &Palette{Name: name, Space: ColourspaceOkLab, RGB: rgb, Lab: lab}
}

// PaletteFromHex converts an ordered list of "#RRGGBB" strings into a palette
// in the requested colourspace, preserving order. The first malformed entry
// aborts the conversion and is named in the error.
func PaletteFromHex(name string, hexes []string, space Colourspace) (*Palette, error) {
	rgb := make([]uint32, len(hexes))
	for i, h := range hexes {
		v, err := HexToRGB(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("palette %s entry %d: %w", name, i, err)
		}
		rgb[i] = v
	}

	switch space {
	case ColourspaceRGB:
		return &Palette{Name: name, Space: space, RGB: rgb}, nil
	case ColourspaceOkLab:
		lab := make([]OkLab, len(rgb))
		for i, v := range rgb {
			lab[i] = RGBToOkLab(v)
		}
		return &Palette{Name: name, Space: space, RGB: rgb, Lab: lab}, nil
	default:
		return nil, fmt.Errorf("unknown colourspace: %s", space)
	}
}

// Len returns the number of buckets in the palette.
func (p *Palette) Len() int {
	if p.Space == ColourspaceOkLab {
		return len(p.Lab)
	}
	return len(p.RGB)
}

// Hex returns bucket i formatted as "#RRGGBB".
func (p *Palette) Hex(i int) string {
	if i < len(p.RGB) {
		return RGBToHex(p.RGB[i])
	}
	return OkLabToHex(p.Lab[i])
}

// Clone returns a deep copy of the palette.
func (p *Palette) Clone() *Palette {
	out := &Palette{Name: p.Name, Space: p.Space}
	if p.RGB != nil {
		out.RGB = append([]uint32(nil), p.RGB...)
	}
	if p.Lab != nil {
		out.Lab = append([]OkLab(nil), p.Lab...)
	}
	return out
}

// ToHex returns every bucket as a hex string, in bucket order.
func (p *Palette) ToHex() []string {
	out := make([]string, p.Len())
	for i := range out {
		out[i] = p.Hex(i)
	}
	return out
}

// OkLabAt returns bucket i in OkLab regardless of the palette's colourspace.
func (p *Palette) OkLabAt(i int) OkLab {
	if p.Space == ColourspaceOkLab {
		return p.Lab[i]
	}
	return RGBToOkLab(p.RGB[i])
}

// Metric returns the distance metric matching the palette's colourspace.
func (p *Palette) Metric() Metric {
	if p.Space == ColourspaceOkLab {
		return labMetric{buckets: p.Lab}
	}
	return rgbMetric{buckets: p.RGB}
}

// All returns an iterator over bucket indices and their hex values.
func (p *Palette) All() func(func(int, string) bool) {
	return func(yield func(int, string) bool) {
		for i := range p.Len() {
			if !yield(i, p.Hex(i)) {
				return
			}
		}
	}
}

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBFromPacked unpacks a pixel into an RGB struct.
func RGBFromPacked(rgb uint32) RGB {
	r, g, b := Channels(rgb)
	return RGB{R: r, G: g, B: b}
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// BucketJSON represents one palette entry in JSON output.
type BucketJSON struct {
	Index int    `json:"index"`
	Hex   string `json:"hex"`
	RGB   RGB    `json:"rgb"`
	OkLab OkLab  `json:"oklab"`
}

// PaletteJSON represents a palette in JSON format.
type PaletteJSON struct {
	Name        string       `json:"name"`
	Colourspace Colourspace  `json:"colourspace"`
	Count       int          `json:"count"`
	Buckets     []BucketJSON `json:"buckets"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	buckets := make([]BucketJSON, p.Len())
	for i := range buckets {
		hex := p.Hex(i)
		rgb, err := HexToRGB(hex)
		if err != nil {
			return nil, err
		}
		buckets[i] = BucketJSON{
			Index: i,
			Hex:   hex,
			RGB:   RGBFromPacked(rgb),
			OkLab: p.OkLabAt(i),
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Name:        p.Name,
		Colourspace: p.Space,
		Count:       len(buckets),
		Buckets:     buckets,
	}, "", "  ")
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	if p.Len() == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette %s (%s) with %d colours:\n", p.Name, p.Space, p.Len())
	for i, hex := range p.All() {
		fmt.Fprintf(&sb, "  %3d: %s\n", i, hex)
	}
	return sb.String()
}
