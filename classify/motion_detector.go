package classify

import "github.com/katalvlaran/detourgraph/geom"

// MotionDetector classifies motion based on average velocity over a
// trailing time window, debouncing Yes/No transitions through an
// intermediate Maybe state to avoid classifier jitter.
//
// Grounded on original_source/src/utility/motion_detector.rs.
type MotionDetector struct {
	timespanMs  float64
	minVelocity float64
	eps         float64

	tmpIvls []float64 // trailing time deltas, ms
	sptIvls []float64 // trailing spatial deltas, meters
	refPt   *geom.Point
	was     IsStopped
}

// NewMotionDetector returns a MotionDetector with the given averaging
// window (ms), minimum moving velocity (km/h), and hysteresis band (km/h).
func NewMotionDetector(timespanMs, minVelocityKmH, epsilonKmH float64) *MotionDetector {
	return &MotionDetector{timespanMs: timespanMs, minVelocity: minVelocityKmH, eps: epsilonKmH, was: Maybe}
}

// AvgVelocityKmH returns the current window's average velocity in km/h.
func (m *MotionDetector) AvgVelocityKmH() float64 {
	var sumDist, sumTime float64
	for _, d := range m.sptIvls {
		sumDist += d
	}
	for _, t := range m.tmpIvls {
		sumTime += t
	}
	if sumTime == 0 {
		return 0
	}

	return (sumDist / 1000.0) / (sumTime / 3600000.0)
}

// IsStopped folds p into the trailing window and returns the updated
// ternary classification.
func (m *MotionDetector) IsStopped(p geom.Point) IsStopped {
	if m.refPt != nil {
		m.tmpIvls = append(m.tmpIvls, p.T-m.refPt.T)
		m.sptIvls = append(m.sptIvls, geom.Dist(*m.refPt, p))
	}
	ref := p
	m.refPt = &ref

	if len(m.tmpIvls) == 0 {
		m.was = Maybe

		return Maybe
	}

	var total float64
	for _, t := range m.tmpIvls {
		total += t
	}
	for total > m.timespanMs && len(m.tmpIvls) > 1 {
		total -= m.tmpIvls[0]
		m.tmpIvls = m.tmpIvls[1:]
		m.sptIvls = m.sptIvls[1:]
	}

	if total < m.timespanMs {
		// Window not yet full: insufficient history to commit.
		m.was = Maybe

		return Maybe
	}

	stoppedNow := m.AvgVelocityKmH() < m.minVelocity+m.eps
	m.was = transition(m.was, stoppedNow)

	return m.was
}

// transition applies the hysteresis rule: agreement with the previous
// state confirms it; disagreement moves through Maybe rather than jumping
// directly between Yes and No.
func transition(was IsStopped, stoppedNow bool) IsStopped {
	switch {
	case stoppedNow && was == Maybe:
		return Yes
	case stoppedNow && was == Yes:
		return Yes
	case !stoppedNow && was == No:
		return No
	case stoppedNow && was == No:
		return Maybe
	case !stoppedNow && was == Yes:
		return Maybe
	default: // !stoppedNow && was == Maybe
		return No
	}
}
