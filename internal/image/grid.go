package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Grid exposes a decoded image as packed 0xAARRGGBB pixels with
// non-premultiplied 8-bit channels.
type Grid struct {
	img *image.NRGBA
}

// NewGrid converts img into a Grid. NRGBA images are used as-is; anything
// else is drawn into a new NRGBA buffer once so pixel access is cheap.
func NewGrid(img image.Image) *Grid {
	if n, ok := img.(*image.NRGBA); ok {
		return &Grid{img: n}
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Grid{img: dst}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.img.Bounds().Dx() }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.img.Bounds().Dy() }

// PixelAt returns the pixel at column x, row y counted from the top-left corner.
func (g *Grid) PixelAt(x, y int) uint32 {
	b := g.img.Bounds()
	i := g.img.PixOffset(b.Min.X+x, b.Min.Y+y)
	p := g.img.Pix[i : i+4 : i+4]
	return uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}
