package trajectory

import "github.com/katalvlaran/detourgraph/geom"

// Visvalingam simplifies t using the Visvalingam-Whyatt algorithm: points
// are removed in increasing order of the (x,y) triangle area formed with
// their current neighbors, stopping once every remaining interior point's
// area is at or above threshold. Endpoints are always retained; order is
// preserved.
//
// Grounded on original_source/src/utility/visvalingam.rs (a thin wrapper
// over geo::simplifyvw_idx in the original; reimplemented directly here
// since no pack example carries an equivalent geometry-simplification
// library).
func Visvalingam(t Trajectory, threshold float64) Trajectory {
	n := len(t)
	if n <= 2 {
		return t.Clone()
	}

	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	for {
		minArea := -1.0
		minIdx := -1
		for i := 1; i < n-1; i++ {
			if !alive[i] {
				continue
			}
			prev := prevAlive(alive, i)
			next := nextAlive(alive, i, n)
			area := triangleArea(t[prev], t[i], t[next])
			if minIdx == -1 || area < minArea {
				minArea = area
				minIdx = i
			}
		}
		if minIdx == -1 || minArea >= threshold {
			break
		}
		alive[minIdx] = false
		if countAlive(alive) <= 2 {
			break
		}
	}

	out := make(Trajectory, 0, n)
	for i, keep := range alive {
		if keep {
			out = append(out, t[i])
		}
	}

	return out
}

func prevAlive(alive []bool, from int) int {
	for j := from - 1; j >= 0; j-- {
		if alive[j] {
			return j
		}
	}

	return 0
}

func nextAlive(alive []bool, from, n int) int {
	for j := from + 1; j < n; j++ {
		if alive[j] {
			return j
		}
	}

	return n - 1
}

func countAlive(alive []bool) int {
	n := 0
	for _, a := range alive {
		if a {
			n++
		}
	}

	return n
}

// triangleArea returns the (unsigned) area of the triangle formed by three
// points' (x,y) coordinates.
func triangleArea(a, b, c geom.Point) float64 {
	area := (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)) / 2
	if area < 0 {
		area = -area
	}

	return area
}
