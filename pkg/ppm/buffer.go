// Package ppm holds the rendered pixel buffer and serializes it to the
// plain (ASCII) PPM P3 image format.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Buffer is a fixed-size grid of 8-bit RGB pixels, filled in strict
// row-major scan order by the renderer.
type Buffer struct {
	Width  int
	Height int
	pixels []uint8
}

// NewBuffer creates an empty pixel buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		pixels: make([]uint8, 0, width*height*3),
	}
}

// WritePixel appends a single pixel in scan order
func (b *Buffer) WritePixel(r, g, bl uint8) {
	b.pixels = append(b.pixels, r, g, bl)
}

// At returns the pixel at the given coordinates
func (b *Buffer) At(x, y int) (r, g, bl uint8) {
	i := (y*b.Width + x) * 3
	return b.pixels[i], b.pixels[i+1], b.pixels[i+2]
}

// Encode writes the buffer as PPM P3: a three-line header followed by
// one "R G B" line per pixel in the order the pixels were written.
// Write errors propagate to the caller.
func (b *Buffer) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Width, b.Height); err != nil {
		return err
	}
	for i := 0; i+2 < len(b.pixels); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", b.pixels[i], b.pixels[i+1], b.pixels[i+2]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RGBA returns an image view of the buffer for PNG encoding
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := b.At(x, y)
			img.Set(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return img
}
