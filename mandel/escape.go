// Package mandel evaluates the Mandelbrot escape time over a rectangular
// window of the complex plane and renders it into rows of palette
// indices.
package mandel

const (
	// Iterations is the iteration budget per point.
	Iterations = 256
	// IterationMultiplier stretches the budget while keeping results in
	// [0, Iterations).
	IterationMultiplier = 1
	// EscapeRadius2 is the squared magnitude past which a point escapes.
	EscapeRadius2 = 4
)

// Escape iterates z = z*z + c from z = 0 and returns the number of
// iterations that were still left when |z|² first exceeded
// EscapeRadius2, scaled down by IterationMultiplier. Points escaping on
// the first step map to 255; points that never escape map to 0.
func Escape(c complex128) uint8 {
	var z complex128
	for k := Iterations*IterationMultiplier - 1; k >= 0; k-- {
		z = z*z + c
		if re, im := real(z), imag(z); re*re+im*im > EscapeRadius2 {
			return uint8(k / IterationMultiplier)
		}
	}

	return 0
}
