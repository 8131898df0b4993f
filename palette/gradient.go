package palette

import "image/color"

// Size is the number of entries in an 8-bit indexed palette.
const Size = 256

const bandWidth = Size / 4

// Gradient returns the fixed Mandelbrot palette: four 64 entry bands
// of linear ramps (yellow to red, red to violet, violet to blue, blue
// to dark blue). Index 0 is forced to black.
func Gradient() color.Palette {
	pal := make(color.Palette, Size)
	for i := range bandWidth {
		pal[i] = rgb(255, 255-i*4, 0)
		pal[i+bandWidth] = rgb(255-i*2, 0, i*2)
		pal[i+2*bandWidth] = rgb(127-i*2, 0, 128+i*2)
		pal[i+3*bandWidth] = rgb(0, 0, 255-i*3)
	}
	pal[0] = rgb(0, 0, 0)

	return pal
}

func rgb(r, g, b int) color.RGBA {
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xFF}
}
