package sinewalk

import (
	"math"

	"github.com/jbeda/geom"
)

// Viewport is the current drawable size in pixels.
type Viewport struct {
	Width, Height float64
}

// CurveEval maps a horizontal screen coordinate to the point on the sine
// path. amplitude scales the curve in Y; cycles is the number of half-waves
// of π across the viewport width. x is not limited to [0, Width]: the curve
// simply continues outside it. vp.Width must be non-zero.
func CurveEval(x, amplitude, cycles float64, vp Viewport) Vec2 {
	u := cycles * x * math.Pi / vp.Width
	return Vec2{X: x, Y: -amplitude*math.Sin(u) + vp.Height/2}
}

// SamplePath returns points on the curve every step pixels across [0, Width).
func SamplePath(amplitude, cycles float64, vp Viewport, step float64) []Vec2 {
	if step <= 0 || vp.Width <= 0 {
		return nil
	}
	n := int(math.Ceil(vp.Width / step))
	pts := make([]Vec2, 0, n)
	for x := 0.0; x < vp.Width; x += step {
		pts = append(pts, CurveEval(x, amplitude, cycles, vp))
	}
	return pts
}

// PathBounds returns the bounding rectangle of the sampled path.
func PathBounds(amplitude, cycles float64, vp Viewport) geom.Rect {
	pts := SamplePath(amplitude, cycles, vp, 1)
	if len(pts) == 0 {
		return geom.Rect{}
	}
	first := geom.Coord{X: pts[0].X, Y: pts[0].Y}
	bounds := geom.Rect{Min: first, Max: first}
	for _, p := range pts[1:] {
		bounds.ExpandToContainCoord(geom.Coord{X: p.X, Y: p.Y})
	}
	return bounds
}
