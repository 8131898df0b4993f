package mandel

import (
	"log/slog"

	"mandelbmp/parallel"
)

// Rows gives write access to one raster row at a time. The returned
// slice must hold at least Plane.Width bytes and rows must not overlap.
type Rows interface {
	Row(y int) []uint8
}

// Render evaluates Escape for every pixel of p and stores the result in
// dst. Rows are handed out to the pool's workers on demand.
func Render(dst Rows, p Plane, pool *parallel.Pool) {
	logger := slog.Default().With("width", p.Width, "height", p.Height)
	logger.Debug("rendering rows", "workers", pool.Workers())

	pool.Range(p.Height, func(y int) {
		row := dst.Row(y)[:p.Width]
		ci := p.IMin + float64(y)/p.Resolution
		for x := range row {
			row[x] = Escape(complex(p.RMin+float64(x)/p.Resolution, ci))
		}
	})

	logger.Debug("rows rendered")
}
