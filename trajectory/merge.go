package trajectory

import "github.com/katalvlaran/detourgraph/geom"

// AlignStartTime shifts a and b by half of their start-time difference so
// both begin at the midpoint of their original start times.
func AlignStartTime(a, b Trajectory) (Trajectory, Trajectory) {
	delta := b.T0() - a.T0()

	return shiftTime(a, delta/2), shiftTime(b, -delta/2)
}

func shiftTime(t Trajectory, by float64) Trajectory {
	out := make(Trajectory, len(t))
	for i, p := range t {
		out[i] = geom.Point{X: p.X, Y: p.Y, T: p.T + by}
	}

	return out
}

// MorphToFit linearly rescales t's time axis (keeping t's first point fixed)
// so its last point lands exactly on target.
func MorphToFit(t Trajectory, target float64) Trajectory {
	if len(t) == 0 {
		return t
	}
	start := t.T0()
	origEnd := t.TN()
	if origEnd == start {
		return t.Clone()
	}
	scale := (target - start) / (origEnd - start)
	out := make(Trajectory, len(t))
	for i, p := range t {
		out[i] = geom.Point{X: p.X, Y: p.Y, T: start + (p.T-start)*scale}
	}
	// Floating point cleanup: pin the exact shared endpoints.
	out[0].T = start
	out[len(out)-1].T = target

	return out
}

// Average builds the sorted-monotone union of a's and b's timestamps, and
// at each timestamp emits the componentwise mean of a point interpolated
// from a and a point interpolated from b. a and b must already share the
// same [start,end] time range (as produced by AlignStartTime+MorphToFit).
func Average(a, b Trajectory) Trajectory {
	seen := make(map[float64]bool, len(a)+len(b))
	var times []float64
	for _, p := range a {
		if !seen[p.T] {
			seen[p.T] = true
			times = append(times, p.T)
		}
	}
	for _, p := range b {
		if !seen[p.T] {
			seen[p.T] = true
			times = append(times, p.T)
		}
	}
	sortFloats(times)

	out := make(Trajectory, 0, len(times))
	ai, bi := newCursor(a), newCursor(b)
	for _, t := range times {
		pa, ok1 := ai.at(t)
		pb, ok2 := bi.at(t)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, meanPoint(pa, pb, t))
	}

	return out
}

// Merge runs the full pipeline: align start times, morph both to a common
// end, average, and simplify via Visvalingam. Result is monotone by
// construction of Average's strictly-increasing timestamp union.
func Merge(a, b Trajectory, visvalingamThreshold float64) Trajectory {
	a2, b2 := AlignStartTime(a, b)
	target := (a2.TN() + b2.TN()) / 2
	a3 := MorphToFit(a2, target)
	b3 := MorphToFit(b2, target)
	avg := Average(a3, b3)
	if !avg.IsMonotone() {
		avg = avg.MakeMonotone()
	}

	return Visvalingam(avg, visvalingamThreshold)
}

func meanPoint(p, q geom.Point, t float64) geom.Point {
	return geom.Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, T: t}
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// cursor is a forward-scanning interpolation helper: successive at(t) calls
// with non-decreasing t advance through the trajectory without rescanning
// from the start.
type cursor struct {
	trj Trajectory
	idx int
}

func newCursor(t Trajectory) *cursor { return &cursor{trj: t} }

func (c *cursor) at(t float64) (geom.Point, bool) {
	if len(c.trj) == 0 || t < c.trj.T0() || t > c.trj.TN() {
		return geom.Point{}, false
	}
	for c.idx < len(c.trj)-1 && c.trj[c.idx+1].T < t {
		c.idx++
	}
	if c.idx >= len(c.trj)-1 {
		return c.trj[len(c.trj)-1], true
	}

	return geom.Interpolate(t, c.trj[c.idx], c.trj[c.idx+1]), true
}
