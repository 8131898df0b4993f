package mandel

// Window is a rectangle of the complex plane.
type Window struct {
	RMin, RMax float64 // real axis
	IMin, IMax float64 // imaginary axis
}

// Classic is the full view of the set.
var Classic = Window{
	RMin: -2,
	RMax: 1,
	IMin: -1,
	IMax: 1,
}

// Width is the default raster width in pixels.
const Width = 12 * 1024

// Plane maps a pixel grid onto a Window with square pixels: the
// resolution is derived from the width and the real span, and the
// height follows from the imaginary span at that same resolution.
type Plane struct {
	Window
	Width      int
	Height     int
	Resolution float64 // pixels per unit
}

func NewPlane(w Window, width int) Plane {
	res := float64(width) / (w.RMax - w.RMin)
	return Plane{
		Window:     w,
		Width:      width,
		Height:     int((w.IMax - w.IMin) * res),
		Resolution: res,
	}
}

// Point returns the complex coordinate of pixel (x, y).
func (p Plane) Point(x, y int) complex128 {
	return complex(p.RMin+float64(x)/p.Resolution, p.IMin+float64(y)/p.Resolution)
}
