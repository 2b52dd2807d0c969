package classify

import "github.com/katalvlaran/detourgraph/geom"

// StopDetector reports whether the object has been stationary over a
// bounded trailing time window.
//
// Grounded on original_source/src/utility/stop_detector.rs.
type StopDetector struct {
	timespanMs  float64
	maxDiagonal float64
	points      []geom.Point
}

// NewStopDetector returns a StopDetector with the given trailing timespan
// (ms) and maximal allowed spatial diagonal (meters).
func NewStopDetector(timespanMs, maxDiagonalMeters float64) *StopDetector {
	return &StopDetector{timespanMs: timespanMs, maxDiagonal: maxDiagonalMeters}
}

// IsStopped pushes p into the trailing window, drops leading points that
// fall outside the configured timespan, and reports whether the window's
// enclosing bbox diagonal is smaller than the configured threshold.
func (s *StopDetector) IsStopped(p geom.Point) bool {
	s.points = append(s.points, p)
	s.fitToTimespan()
	bbox := geom.NewBbox(s.points)

	return bbox.SpatialSpan() < s.maxDiagonal
}

// Reset clears the window, retaining only keep (used when a Yes/Yes
// combined classification resets the detector per spec.md §4.3).
func (s *StopDetector) Reset(keep geom.Point) {
	s.points = []geom.Point{keep}
}

func (s *StopDetector) fitToTimespan() {
	for len(s.points) > 1 && s.points[len(s.points)-1].T-s.points[0].T > s.timespanMs {
		s.points = s.points[1:]
	}
}
