package trajsim

import "github.com/katalvlaran/detourgraph/trajectory"

// Medoid returns the index within trjs minimizing the sum of pairwise
// Dissimilarity to every other member; ties are broken by the lowest
// index. Pairs with a disjoint common timespan contribute zero (treated as
// "no evidence of difference" rather than aborting the whole selection).
func Medoid(trjs []trajectory.Trajectory) int {
	best := 0
	bestSum := -1.0
	for i := range trjs {
		sum := 0.0
		for j := range trjs {
			if i == j {
				continue
			}
			d, err := Dissimilarity(trjs[i], trjs[j])
			if err != nil {
				continue
			}
			sum += d
		}
		if bestSum < 0 || sum < bestSum {
			bestSum = sum
			best = i
		}
	}

	return best
}
