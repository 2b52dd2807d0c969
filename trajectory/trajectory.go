package trajectory

import (
	"errors"

	"github.com/katalvlaran/detourgraph/geom"
)

// ErrDisjointTimespans is returned when an operation requires a non-empty
// common timespan between two trajectories but their [t0,tN] ranges do not
// overlap (spec.md §7's EmptyInterpolationRange).
var ErrDisjointTimespans = errors.New("trajectory: disjoint timespans")

// Trajectory is a non-empty ordered point sequence; after MakeMonotone its
// timestamps are strictly increasing.
type Trajectory []geom.Point

// T0 returns the first point's timestamp.
func (t Trajectory) T0() float64 { return t[0].T }

// TN returns the last point's timestamp.
func (t Trajectory) TN() float64 { return t[len(t)-1].T }

// IsMonotone reports whether timestamps strictly increase.
func (t Trajectory) IsMonotone() bool {
	for i := 1; i < len(t); i++ {
		if t[i].T <= t[i-1].T {
			return false
		}
	}

	return true
}

// MakeMonotone returns t with any point whose timestamp does not strictly
// exceed the previous kept timestamp removed.
func (t Trajectory) MakeMonotone() Trajectory {
	if len(t) == 0 {
		return t
	}
	out := make(Trajectory, 0, len(t))
	out = append(out, t[0])
	last := t[0].T
	for _, p := range t[1:] {
		if p.T > last {
			out = append(out, p)
			last = p.T
		}
	}

	return out
}

// Clone returns a shallow copy safe for independent mutation of the slice
// header (not the Points, which are value types anyway).
func (t Trajectory) Clone() Trajectory {
	out := make(Trajectory, len(t))
	copy(out, t)

	return out
}
