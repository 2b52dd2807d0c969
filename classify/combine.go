package classify

import "github.com/katalvlaran/detourgraph/geom"

// Classifier combines a StopDetector and a MotionDetector into the single
// per-point ternary classification consumed by PathBuilder.
//
// Grounded on original_source/src/graph/path_builder.rs (get_paths/build_path).
type Classifier struct {
	Stop   *StopDetector
	Motion *MotionDetector
}

// NewClassifier wires a StopDetector and MotionDetector built from cfg-like
// parameters (callers typically construct these from config.Config).
func NewClassifier(stopTimespanMs, stopDiagonalMeters, motionTimespanMs, minVelocityKmH, epsilonKmH float64) *Classifier {
	return &Classifier{
		Stop:   NewStopDetector(stopTimespanMs, stopDiagonalMeters),
		Motion: NewMotionDetector(motionTimespanMs, minVelocityKmH, epsilonKmH),
	}
}

// Classify folds p into both sub-detectors and returns the combined
// classification per spec.md §4.3's truth table:
//
//	Stop=Yes, Motion=Yes -> Yes (StopDetector window reset to p)
//	Stop=No,  Motion=No  -> No
//	otherwise             -> Maybe
func (c *Classifier) Classify(p geom.Point) IsStopped {
	stopYes := c.Stop.IsStopped(p)
	motion := c.Motion.IsStopped(p)

	switch {
	case stopYes && motion == Yes:
		c.Stop.Reset(p)

		return Yes
	case !stopYes && motion == No:
		return No
	default:
		return Maybe
	}
}
