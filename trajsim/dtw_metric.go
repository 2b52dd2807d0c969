package trajsim

import (
	"fmt"

	"github.com/katalvlaran/detourgraph/dtw"
	"github.com/katalvlaran/detourgraph/geom"
)

// DTWDistance offers dtw.DTW as an alternate similarity capability (spec.md
// §9's "polymorphism over distance metrics"): each trajectory's x- and
// y-coordinate sequences are warped independently under the given options,
// and the resulting distances are summed. Unlike Hausdorff, this measure is
// sensitive to the order of points, which can be preferable for detecting
// recurring routes that share a shape but drift spatially.
func DTWDistance(a, b []geom.Point, opts *dtw.Options) (float64, error) {
	if opts == nil {
		o := dtw.DefaultOptions()
		opts = &o
	}
	ax, ay := split(a)
	bx, by := split(b)

	dx, _, err := dtw.DTW(ax, bx, opts)
	if err != nil {
		return 0, fmt.Errorf("trajsim: x-axis DTW: %w", err)
	}
	dy, _, err := dtw.DTW(ay, by, opts)
	if err != nil {
		return 0, fmt.Errorf("trajsim: y-axis DTW: %w", err)
	}

	return dx + dy, nil
}

func split(pts []geom.Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return xs, ys
}
