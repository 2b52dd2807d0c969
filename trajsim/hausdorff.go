package trajsim

import (
	"math"

	"github.com/katalvlaran/detourgraph/geom"
)

// Hausdorff returns the symmetric Hausdorff distance (max of directed
// minimum distances, in both directions) between two point sets' (x,y)
// coordinates. It is the default measure used for edge-cluster grouping
// (spec.md §4.10).
func Hausdorff(a, b []geom.Point) float64 {
	return math.Max(directedHausdorff(a, b), directedHausdorff(b, a))
}

func directedHausdorff(a, b []geom.Point) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	maxMin := 0.0
	for _, p := range a {
		minDist := math.Inf(1)
		for _, q := range b {
			if d := geom.Dist(p, q); d < minDist {
				minDist = d
			}
		}
		if minDist > maxMin {
			maxMin = minDist
		}
	}

	return maxMin
}
