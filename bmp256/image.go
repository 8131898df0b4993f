// Package bmp256 holds an 8-bit palette indexed raster and encodes it as
// a Windows bitmap with a 256 color table.
package bmp256

import (
	"image"
	"image/color"

	"mandelbmp/palette"
)

// Image is a row-major raster of palette indices. Rows are padded to a
// multiple of four bytes so they can be written out unchanged.
type Image struct {
	// Pix holds the image's pixels, as palette indices. The pixel at
	// (x, y) is Pix[y*Stride + x].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
	// Palette is the image's palette.
	Palette color.Palette
}

var _ image.PalettedImage = (*Image)(nil)

// New allocates a width x height image using the Mandelbrot gradient.
func New(width, height int) *Image {
	stride := RowSize(width)
	return &Image{
		Pix:     make([]uint8, stride*height),
		Stride:  stride,
		Rect:    image.Rect(0, 0, width, height),
		Palette: palette.Gradient(),
	}
}

// RowSize returns the padded length in bytes of a row of width pixels.
func RowSize(width int) int {
	return ((width + 3) / 4) * 4
}

func (p *Image) Width() int  { return p.Rect.Dx() }
func (p *Image) Height() int { return p.Rect.Dy() }

// Row returns row y including its padding bytes.
func (p *Image) Row(y int) []uint8 {
	return p.Pix[y*p.Stride : (y+1)*p.Stride]
}

func (p *Image) ColorModel() color.Model { return p.Palette }

func (p *Image) Bounds() image.Rectangle { return p.Rect }

func (p *Image) At(x, y int) color.Color {
	if len(p.Palette) == 0 {
		return nil
	}
	if !(image.Point{x, y}.In(p.Rect)) {
		return p.Palette[0]
	}
	return p.Palette[p.Pix[y*p.Stride+x]]
}

func (p *Image) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(p.Rect)) {
		return 0
	}
	return p.Pix[y*p.Stride+x]
}

func (p *Image) SetColorIndex(x, y int, index uint8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[y*p.Stride+x] = index
}
