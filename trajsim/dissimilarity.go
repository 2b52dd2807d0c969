package trajsim

import (
	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/trajectory"
)

// Dissimilarity measures how different two trajectories are over their
// common timespan: both are trimmed to CommonTimespan, then the mean
// pointwise Euclidean distance is computed across the sorted union of their
// (trimmed) timestamps, each trajectory sampled there by linear
// interpolation. Zero for identical trajectories, symmetric, non-negative —
// satisfying the interface-level contract spec.md §9 leaves open.
//
// Grounded on original_source/src/graph/median_trajectory.rs
// (get_mediod_trj), which uses an external "dissim::similarity" measure
// over the same common-timespan-trimmed pair.
func Dissimilarity(a, b trajectory.Trajectory) (float64, error) {
	start, end, ok := trajectory.CommonTimespan(a, b)
	if !ok {
		return 0, trajectory.ErrDisjointTimespans
	}
	ta, err := trajectory.TrimToTimespan(a, start, end)
	if err != nil {
		return 0, err
	}
	tb, err := trajectory.TrimToTimespan(b, start, end)
	if err != nil {
		return 0, err
	}

	merged := trajectory.Average(ta, tb) // reuses the same sampling grid
	if len(merged) == 0 {
		return 0, nil
	}

	// Average() already interpolated each side; recompute the raw distance
	// at each sample instead of the midpoint, by re-sampling independently.
	var sum float64
	var n int
	cursorA, cursorB := sampler(ta), sampler(tb)
	for _, m := range merged {
		pa, okA := cursorA(m.T)
		pb, okB := cursorB(m.T)
		if !okA || !okB {
			continue
		}
		sum += geom.Dist(pa, pb)
		n++
	}
	if n == 0 {
		return 0, nil
	}

	return sum / float64(n), nil
}

// sampler returns a closure that linearly interpolates t at time T.
func sampler(t trajectory.Trajectory) func(float64) (geom.Point, bool) {
	return func(target float64) (geom.Point, bool) {
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
}
