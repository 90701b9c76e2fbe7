// Package colour provides dominant colour classification against fixed palettes.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBMask strips the alpha channel from a packed ARGB pixel.
// Every classification, table lookup and table write goes through it.
const RGBMask uint32 = 0x00FFFFFF

// ErrInvalidColourFormat is returned for hex strings that are not "#RRGGBB".
var ErrInvalidColourFormat = errors.New("invalid colour format")

// OkLab is a colour in the OkLab perceptual space.
// L is in [0,1]; A and B are centred on zero.
type OkLab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Channels splits a packed pixel into its red, green and blue channels.
func Channels(rgb uint32) (r, g, b uint8) {
	return uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb)
}

// Pack combines 8-bit channels into a packed RGB value with no alpha.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RGBToOkLab converts a packed RGB pixel to OkLab. Alpha is ignored.
func RGBToOkLab(rgb uint32) OkLab {
	r, g, b := Channels(rgb)
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	l, a, bb := c.OkLab()
	return OkLab{L: l, A: a, B: bb}
}

// OkLabToRGB converts an OkLab colour back to packed RGB.
// The float conversion can drift by almost one 8-bit step, so each channel
// is searched one step either side of its rounded value and the candidate
// closest in OkLab wins. Any colour produced by RGBToOkLab therefore converts
// back to exactly the same pixel. Out-of-gamut colours are clamped.
func OkLabToRGB(lab OkLab) uint32 {
	c := colorful.OkLab(lab.L, lab.A, lab.B)
	rs, gs, bs := snapCandidates(c.R), snapCandidates(c.G), snapCandidates(c.B)

	best, bestDist := uint32(0), math.Inf(1)
	for _, r := range rs {
		for _, g := range gs {
			for _, b := range bs {
				rgb := Pack(r, g, b)
				if d := okLabDistanceSq(lab, RGBToOkLab(rgb)); d < bestDist {
					best, bestDist = rgb, d
				}
			}
		}
	}
	return best
}

// snapCandidates returns the distinct clamped 8-bit values within one step
// of v*255 rounded.
func snapCandidates(v float64) []uint8 {
	x := math.Round(v * 255.0)
	out := make([]uint8, 0, 3)
	for _, c := range []uint8{clampChannel(x - 1), clampChannel(x), clampChannel(x + 1)} {
		if len(out) == 0 || out[len(out)-1] != c {
			out = append(out, c)
		}
	}
	return out
}

func clampChannel(x float64) uint8 {
	switch {
	case x <= 0 || math.IsNaN(x):
		return 0
	case x >= 255:
		return 255
	default:
		return uint8(x)
	}
}

func okLabDistanceSq(x, y OkLab) float64 {
	dl, da, db := x.L-y.L, x.A-y.A, x.B-y.B
	return dl*dl + da*da + db*db
}

// OkLabToHex formats an OkLab colour as an uppercase "#RRGGBB" string.
func OkLabToHex(lab OkLab) string {
	return RGBToHex(OkLabToRGB(lab))
}

// RGBToHex formats the low 24 bits of a packed pixel as "#RRGGBB".
func RGBToHex(rgb uint32) string {
	return fmt.Sprintf("#%06X", rgb&RGBMask)
}

// HexToRGB parses a "#RRGGBB" string into a packed RGB value.
// Both upper and lower case digits are accepted.
func HexToRGB(hex string) (uint32, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, fmt.Errorf("%w: %q (expected #RRGGBB)", ErrInvalidColourFormat, hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColourFormat, hex)
	}
	return uint32(v), nil
}

// HexToOkLab parses a "#RRGGBB" string straight into OkLab.
func HexToOkLab(hex string) (OkLab, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return OkLab{}, err
	}
	return RGBToOkLab(rgb), nil
}
