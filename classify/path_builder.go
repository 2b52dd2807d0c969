package classify

import "github.com/katalvlaran/detourgraph/geom"

// PathBuilder consumes (point, IsStopped) pairs in order and assembles a
// Path, buffering points classified Maybe until a confident Yes/No arrives.
//
// Grounded on original_source/src/graph/path_builder.rs (PathBuilder,
// PointsForElement).
type PathBuilder struct {
	path   Path
	buffer []geom.Point
}

// NewPathBuilder returns an empty PathBuilder.
func NewPathBuilder() *PathBuilder { return &PathBuilder{} }

// Add folds one classified point into the path under construction.
func (b *PathBuilder) Add(p geom.Point, cls IsStopped) {
	if b.path.IsEmpty() {
		b.path.Push(NewStop(geom.NewBbox([]geom.Point{p})))

		return
	}

	switch cls {
	case Yes:
		b.addToStop(p)
	case No:
		b.addToRoute(p)
	default:
		b.buffer = append(b.buffer, p)
	}
}

func (b *PathBuilder) flushedPoints(p geom.Point) []geom.Point {
	pts := make([]geom.Point, 0, len(b.buffer)+1)
	pts = append(pts, b.buffer...)
	pts = append(pts, p)
	b.buffer = nil

	return pts
}

func (b *PathBuilder) addToStop(p geom.Point) {
	pts := b.flushedPoints(p)
	last, _ := b.path.Last()
	if last.IsStop() {
		bbox := last.Bbox
		for _, q := range pts {
			bbox = bbox.InsertPoint(q)
		}
		b.path.ReplaceLast(NewStop(bbox))

		return
	}
	// Close the open Route, open a new Stop from the buffered run.
	b.path.Push(NewStop(geom.NewBbox(pts)))
}

func (b *PathBuilder) addToRoute(p geom.Point) {
	pts := b.flushedPoints(p)
	last, _ := b.path.Last()
	if !last.IsStop() {
		route := append(append([]geom.Point{}, last.Route...), pts...)
		b.path.ReplaceLast(NewRoute(route))

		return
	}
	b.path.Push(NewRoute(pts))
}

// Finalize closes the path: if it ends on an open Route, a degenerate Stop
// containing the route's last point is appended so the path always ends on
// a Stop.
func (b *PathBuilder) Finalize() Path {
	last, ok := b.path.Last()
	if ok && !last.IsStop() {
		tail := last.Route[len(last.Route)-1]
		b.path.Push(NewStop(geom.NewBbox([]geom.Point{tail})))
	}

	return b.path
}

// BuildPath runs a full substream through a fresh Classifier and
// PathBuilder, applying the standard post-processing passes in the order
// the original implementation used them: ExpandStops, MergeNodes,
// CutShortRoutes, CollapseSingletonStops, MonotonizeRoutes.
func BuildPath(points []geom.Point, c *Classifier) Path {
	pb := NewPathBuilder()
	for _, p := range points {
		pb.Add(p, c.Classify(p))
	}
	path := pb.Finalize()
	path.ExpandStops()
	path.MergeNodes()
	path.CutShortRoutes()
	path.CollapseSingletonStops()
	path.MonotonizeRoutes()

	return path
}
