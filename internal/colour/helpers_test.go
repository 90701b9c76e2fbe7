package colour

// sliceGrid is a PixelGrid backed by a row-major slice.
type sliceGrid struct {
	w, h   int
	pixels []uint32
}

func (g *sliceGrid) Width() int              { return g.w }
func (g *sliceGrid) Height() int             { return g.h }
func (g *sliceGrid) PixelAt(x, y int) uint32 { return g.pixels[y*g.w+x] }

// solidGrid returns a w×h grid filled with one opaque colour.
func solidGrid(w, h int, rgb uint32) *sliceGrid {
	g := &sliceGrid{w: w, h: h, pixels: make([]uint32, w*h)}
	for i := range g.pixels {
		g.pixels[i] = 0xFF000000 | rgb
	}
	return g
}

// randomGrid returns a w×h grid of pseudo-random opaque colours.
func randomGrid(w, h int, seed uint64) *sliceGrid {
	g := &sliceGrid{w: w, h: h, pixels: RandomSamples(w*h, seed)}
	for i := range g.pixels {
		g.pixels[i] |= 0xFF000000
	}
	return g
}

func mustPalette(t interface{ Fatalf(string, ...any) }, name string, hexes []string, space Colourspace) *Palette {
	p, err := PaletteFromHex(name, hexes, space)
	if err != nil {
		t.Fatalf("PaletteFromHex(%s) error = %v", name, err)
	}
	return p
}
