package geom

import "math"

// Point is a projected coordinate (x, y) in meters paired with an epoch
// millisecond timestamp t.
type Point struct {
	X, Y, T float64
}

// Dist returns the Euclidean (planar) distance between p and q, ignoring t.
func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return math.Hypot(dx, dy)
}

// almostEqual reports whether a and b differ by no more than tol.
func almostEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= tol
}

// CoordTolerance is the absolute tolerance used when comparing projected
// coordinates for equality (e.g. convex-hull spike detection).
const CoordTolerance = 1e-8

// SamePoint reports whether p and q are equal within CoordTolerance on x,y.
func SamePoint(p, q Point) bool {
	return almostEqual(p.X, q.X, CoordTolerance) && almostEqual(p.Y, q.Y, CoordTolerance)
}

// Interpolate returns the point on the segment p→q at time t, assuming
// p.T <= t <= q.T. If t equals p.T or q.T exactly, the corresponding
// endpoint is returned unchanged (preserving floating-point equality).
func Interpolate(t float64, p, q Point) Point {
	if t == p.T {
		return p
	}
	if t == q.T {
		return q
	}
	span := q.T - p.T
	if span == 0 {
		return p
	}
	frac := (t - p.T) / span

	return Point{
		X: p.X + frac*(q.X-p.X),
		Y: p.Y + frac*(q.Y-p.Y),
		T: t,
	}
}
