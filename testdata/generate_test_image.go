// Test image generator for creating sample images for dominant colour tests
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	// Horizontal bands with distinct heights so the ranking is unambiguous.
	width := 100
	bands := []struct {
		c    color.NRGBA
		rows int
	}{
		{color.NRGBA{R: 255, A: 255}, 40},                  // Red
		{color.NRGBA{B: 255, A: 255}, 25},                  // Blue
		{color.NRGBA{G: 255, A: 255}, 15},                  // Green
		{color.NRGBA{R: 255, G: 255, A: 255}, 10},          // Yellow
		{color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 6},   // White
		{color.NRGBA{A: 255}, 4},                           // Black
	}

	height := 0
	for _, b := range bands {
		height += b.rows
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	y := 0
	for _, b := range bands {
		for range b.rows {
			for x := range width {
				img.SetNRGBA(x, y, b.c)
			}
			y++
		}
	}

	file, err := os.Create("testdata/sample.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Test image created: testdata/sample.png")
}
