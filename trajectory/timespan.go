package trajectory

import (
	"fmt"
	"math"

	"github.com/katalvlaran/detourgraph/geom"
)

// CommonTimespan returns the overlap of a's and b's [t0,tN] ranges. ok is
// false if the trajectories do not overlap in time; callers must not trim
// in that case.
func CommonTimespan(a, b Trajectory) (start, end float64, ok bool) {
	start = math.Max(a.T0(), b.T0())
	end = math.Min(a.TN(), b.TN())

	return start, end, start <= end
}

// TrimToTimespan keeps points of t whose timestamp lies in [start,end],
// then replaces the first/last kept point with a linear interpolation at
// the boundary if t did not already start/end exactly there.
func TrimToTimespan(t Trajectory, start, end float64) (Trajectory, error) {
	if start > end {
		return nil, fmt.Errorf("%w: start %v > end %v", ErrDisjointTimespans, start, end)
	}

	var kept Trajectory
	for _, p := range t {
		if p.T >= start && p.T <= end {
			kept = append(kept, p)
		}
	}

	// Boundary interpolation requires a bracketing pair from the original t.
	if len(kept) == 0 || kept[0].T != start {
		if p, ok := interpAt(t, start); ok {
			kept = append(Trajectory{p}, kept...)
		}
	}
	if len(kept) == 0 || kept[len(kept)-1].T != end {
		if p, ok := interpAt(t, end); ok {
			kept = append(kept, p)
		}
	}

	return kept, nil
}

// interpAt finds the bracketing pair in t around target and linearly
// interpolates; ok is false if target is outside [t.T0(), t.TN()].
func interpAt(t Trajectory, target float64) (geom.Point, bool) {
	if len(t) == 0 || target < t.T0() || target > t.TN() {
		return geom.Point{}, false
	}
	for i := 1; i < len(t); i++ {
		if t[i].T >= target {
			return geom.Interpolate(target, t[i-1], t[i]), true
		}
	}

	return t[len(t)-1], true
}
