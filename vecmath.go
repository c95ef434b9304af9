package sinewalk

import "math"

// RotatePoints rotates each point about the origin by angle radians and
// returns the result in a new slice of the same length and order.
func RotatePoints(points []Vec2, angle float64) []Vec2 {
	sin, cos := math.Sincos(angle)
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = Vec2{
			X: p.X*cos - p.Y*sin,
			Y: p.X*sin + p.Y*cos,
		}
	}
	return out
}

// OrientedAngle returns the signed angle in radians that rotates from onto
// to, using +Z as the reference axis. The result is in (-π, π] and is
// positive when Cross(from, to) > 0. Zero vectors yield 0.
func OrientedAngle(from, to Vec2) float64 {
	if from == (Vec2{}) || to == (Vec2{}) {
		return 0
	}
	return math.Atan2(from.Cross(to), from.Dot(to))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
