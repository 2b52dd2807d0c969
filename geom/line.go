package geom

// Line is a 2D segment from Start to End (x,y only; t is ignored).
//
// Grounded on original_source/src/utility/line.rs.
type Line struct {
	Start, End Point
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return Dist(l.Start, l.End)
}

// Intersection returns the intersection point of l and other, and true, iff
// the segments cross within their own bounds (parameters t,u both in
// [0,1]), using the standard denominator form. Returns (Point{}, false) for
// parallel or non-crossing segments.
func (l Line) Intersection(other Line) (Point, bool) {
	x1, y1 := l.Start.X, l.Start.Y
	x2, y2 := l.End.X, l.End.Y
	x3, y3 := other.Start.X, other.Start.Y
	x4, y4 := other.End.X, other.End.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point{}, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	t := tNum / denom
	if t < 0 || t > 1 {
		return Point{}, false
	}

	uNum := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)
	u := uNum / denom
	if u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}
