package classify

import "github.com/katalvlaran/detourgraph/geom"

// CleanStream drops any point whose timestamp is not strictly greater than
// the previously retained point's timestamp; the first point is always
// kept. Grounded on the "clean_stream" entry point of spec.md §6.
func CleanStream(points []geom.Point) []geom.Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]geom.Point, 0, len(points))
	out = append(out, points[0])
	last := points[0].T
	for _, p := range points[1:] {
		if p.T > last {
			out = append(out, p)
			last = p.T
		}
	}

	return out
}

// SplitOnTimeout partitions points into substreams wherever the gap between
// consecutive timestamps exceeds connectionTimeoutMs. timeouts reports how
// many cuts were made (a pipeline statistic).
//
// Grounded on original_source/src/graph/path_builder.rs
// (split_stream_on_timeout); worked example: timestamps
// [1,2,3,4,9,10,11,12,13,14] with connectionTimeoutMs=3 yields two
// substreams of length 4 and 6.
func SplitOnTimeout(points []geom.Point, connectionTimeoutMs float64) (substreams [][]geom.Point, timeouts int) {
	if len(points) == 0 {
		return nil, 0
	}

	current := []geom.Point{points[0]}
	lastT := points[0].T
	for _, p := range points[1:] {
		if p.T-lastT > connectionTimeoutMs {
			substreams = append(substreams, current)
			current = nil
			timeouts++
		}
		current = append(current, p)
		lastT = p.T
	}
	substreams = append(substreams, current)

	return substreams, timeouts
}
