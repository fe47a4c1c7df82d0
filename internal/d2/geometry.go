package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rotate rotates point counterclockwise by theta radians around origin.
func Rotate(origin, point r2.Vec, theta float64) r2.Vec {
	sin, cos := math.Sincos(theta)
	d := r2.Sub(point, origin)
	return r2.Vec{
		X: origin.X + cos*d.X - sin*d.Y,
		Y: origin.Y + sin*d.X + cos*d.Y,
	}
}

// Extend returns the point c on the ray from a through b with |ac| = l.
func Extend(a, b r2.Vec, l float64) r2.Vec {
	u := r2.Unit(r2.Sub(b, a))
	return r2.Add(a, r2.Scale(l, u))
}

// LineCoefficients returns the m and c coefficients of y=mx+c through two
// points. Vertical lines return m=+Inf.
func LineCoefficients(a, b r2.Vec) (m, c float64) {
	if a.X == b.X {
		return math.Inf(1), a.X
	}
	m = (b.Y - a.Y) / (b.X - a.X)
	return m, a.Y - m*a.X
}

// CircleFrom3Points returns the center and radius of the circle through
// three points. Collinear input returns a zero center and an infinite
// radius rather than an error: callers treat the sentinel as "no arc".
func CircleFrom3Points(a, b, c r2.Vec) (center r2.Vec, radius float64) {
	t := b.X*b.X + b.Y*b.Y
	bc := (a.X*a.X + a.Y*a.Y - t) / 2
	cd := (t - c.X*c.X - c.Y*c.Y) / 2
	det := (a.X-b.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-b.Y)
	if math.Abs(det) < 1e-6 {
		return r2.Vec{}, math.Inf(1)
	}
	center = r2.Vec{
		X: (bc*(b.Y-c.Y) - cd*(a.Y-b.Y)) / det,
		Y: ((a.X-b.X)*cd - (b.X-c.X)*bc) / det,
	}
	return center, r2.Norm(r2.Sub(center, a))
}

// OffsetNormal displaces every point of a polyline by thickness along the
// local outward normal estimated from finite differences of consecutive
// points. Used for constant thickness coil and magnet casings.
func OffsetNormal(pts []r2.Vec, thickness float64) []r2.Vec {
	out := make([]r2.Vec, len(pts))
	for i := range pts {
		var tangent r2.Vec
		switch {
		case i == 0:
			tangent = r2.Sub(pts[1], pts[0])
		case i == len(pts)-1:
			tangent = r2.Sub(pts[i], pts[i-1])
		default:
			tangent = r2.Sub(pts[i+1], pts[i-1])
		}
		tangent = r2.Unit(tangent)
		normal := r2.Vec{X: tangent.Y, Y: -tangent.X}
		out[i] = r2.Add(pts[i], r2.Scale(thickness, normal))
	}
	return out
}
