package geom

import (
	"fmt"
	"math"
)

// Bbox is an axis-aligned spatio-temporal bounding box: a closed interval on
// each of x, y and t. It is the vertex payload of a DetourGraph and the
// summary shape of a Stop.
//
// Grounded on original_source/src/utility/bounding_box.rs.
type Bbox struct {
	X1, X2 float64
	Y1, Y2 float64
	T1, T2 float64
}

// NewBbox returns the minimal Bbox enclosing pts. Panics if pts is empty;
// callers must guard (a Stop/Route always has at least one point).
func NewBbox(pts []Point) Bbox {
	if len(pts) == 0 {
		panic("geom: NewBbox requires at least one point")
	}
	b := Bbox{
		X1: pts[0].X, X2: pts[0].X,
		Y1: pts[0].Y, Y2: pts[0].Y,
		T1: pts[0].T, T2: pts[0].T,
	}
	for _, p := range pts[1:] {
		b = b.InsertPoint(p)
	}

	return b
}

// InsertPoint returns the bbox minimally expanded to also contain p.
func (b Bbox) InsertPoint(p Point) Bbox {
	if p.X < b.X1 {
		b.X1 = p.X
	}
	if p.X > b.X2 {
		b.X2 = p.X
	}
	if p.Y < b.Y1 {
		b.Y1 = p.Y
	}
	if p.Y > b.Y2 {
		b.Y2 = p.Y
	}
	if p.T < b.T1 {
		b.T1 = p.T
	}
	if p.T > b.T2 {
		b.T2 = p.T
	}

	return b
}

// OverlapsSpatially reports whether the x- and y-intervals of b and other
// both intersect.
func (b Bbox) OverlapsSpatially(other Bbox) bool {
	return b.X1 <= other.X2 && other.X1 <= b.X2 && b.Y1 <= other.Y2 && other.Y1 <= b.Y2
}

// Overlaps reports whether b and other intersect on all three axes.
func (b Bbox) Overlaps(other Bbox) bool {
	return b.OverlapsSpatially(other) && b.T1 <= other.T2 && other.T1 <= b.T2
}

// IsBefore reports whether b ends (temporally) strictly before other begins.
func (b Bbox) IsBefore(other Bbox) bool {
	return b.T2 < other.T1
}

// ContainsPoint reports whether p lies within b on all three axes.
func (b Bbox) ContainsPoint(p Point) bool {
	return b.IsInSpatial(p) && b.IsInTemporal(p)
}

// IsInSpatial reports whether p's (x,y) lies within b's spatial extent.
func (b Bbox) IsInSpatial(p Point) bool {
	return p.X >= b.X1 && p.X <= b.X2 && p.Y >= b.Y1 && p.Y <= b.Y2
}

// IsInTemporal reports whether p.T lies within b's temporal extent.
func (b Bbox) IsInTemporal(p Point) bool {
	return p.T >= b.T1 && p.T <= b.T2
}

// Expand grows every axis symmetrically: meters on x/y, minutes on t.
func (b Bbox) Expand(meters, minutes float64) Bbox {
	ms := minutes * 60000.0

	return Bbox{
		X1: b.X1 - meters, X2: b.X2 + meters,
		Y1: b.Y1 - meters, Y2: b.Y2 + meters,
		T1: b.T1 - ms, T2: b.T2 + ms,
	}
}

// Union returns the componentwise min/max of b and other.
func (b Bbox) Union(other Bbox) Bbox {
	return Bbox{
		X1: math.Min(b.X1, other.X1), X2: math.Max(b.X2, other.X2),
		Y1: math.Min(b.Y1, other.Y1), Y2: math.Max(b.Y2, other.Y2),
		T1: math.Min(b.T1, other.T1), T2: math.Max(b.T2, other.T2),
	}
}

// TemporalSplit partitions b on the t-axis at t, returning (before, after)
// boxes with before.T2 == t and after.T1 == t+1 (1ms split granularity).
// t is not range-checked: when t < b.T1 or t+1 > b.T2, one of the
// returned boxes has T1 > T2.
func (b Bbox) TemporalSplit(t float64) (before, after Bbox) {
	before = b
	before.T2 = t
	after = b
	after.T1 = t + 1

	return before, after
}

// SpatialSpan returns the diagonal length of b's spatial extent.
func (b Bbox) SpatialSpan() float64 {
	dx := b.X2 - b.X1
	dy := b.Y2 - b.Y1

	return math.Hypot(dx, dy)
}

// TimeSpan returns b's temporal width in milliseconds.
func (b Bbox) TimeSpan() float64 {
	return b.T2 - b.T1
}

func (b Bbox) String() string {
	return fmt.Sprintf("Bbox[x:%.2f..%.2f y:%.2f..%.2f t:%.0f..%.0f]", b.X1, b.X2, b.Y1, b.Y2, b.T1, b.T2)
}
