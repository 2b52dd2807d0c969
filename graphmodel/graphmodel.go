package graphmodel

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/detourgraph/classify"
	"github.com/katalvlaran/detourgraph/core"
	"github.com/katalvlaran/detourgraph/geom"
)

// Sentinel errors.
var (
	// ErrInvariantViolation marks a root-reachability or temporal-monotonicity
	// failure: per spec.md §7 this indicates a bug, not recoverable data.
	ErrInvariantViolation = errors.New("graphmodel: invariant violation")

	// ErrVertexNotFound is returned when a vertex payload accessor is
	// called with an unknown vertex ID.
	ErrVertexNotFound = errors.New("graphmodel: vertex not found")

	// ErrEmptyPath is returned by AddPath when given a path with fewer
	// than two elements (a lone Stop contributes nothing to the graph).
	ErrEmptyPath = errors.New("graphmodel: path has fewer than two elements")
)

const (
	metaBbox   = "bbox"
	metaWeight = "weight"
	metaTrj    = "trajectory"
)

// DetourGraph is the directed multigraph of Stops (vertices) and Routes
// (edges) described in spec.md §3.
type DetourGraph struct {
	g          *core.Graph
	roots      map[string]bool
	nextVertex uint64
}

// New returns an empty DetourGraph. Self-loops are permitted because
// temporal splitting (§4.9) can temporarily reassign an edge's source and
// target to the same successor vertex before monotonicity is restored.
func New() *DetourGraph {
	return &DetourGraph{
		g:     core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()),
		roots: make(map[string]bool),
	}
}

// Core exposes the underlying core.Graph for algorithms that only need the
// generic traversal API (e.g. algorithms.DFS/BFS).
func (d *DetourGraph) Core() *core.Graph { return d.g }

// Roots returns the current roots set as a sorted-by-ID slice.
func (d *DetourGraph) Roots() []string {
	out := make([]string, 0, len(d.roots))
	for id := range d.roots {
		out = append(out, id)
	}

	return sortStrings(out)
}

func sortStrings(xs []string) []string {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}

	return xs
}

// newVertexID returns a fresh, monotonic, stable textual vertex ID ("v1",
// "v2", ...), mirroring core's own "e1","e2",... edge ID scheme so indices
// stay stable across deletions (spec.md §9).
func (d *DetourGraph) newVertexID() string {
	n := atomic.AddUint64(&d.nextVertex, 1)

	return "v" + strconv.FormatUint(n, 10)
}

// Vertices returns all vertex IDs, in stable ascending order.
func (d *DetourGraph) Vertices() []string { return d.g.Vertices() }

// Edges returns every edge currently in the graph.
func (d *DetourGraph) Edges() []*core.Edge { return d.g.Edges() }

// AddVertex creates a standalone vertex with the given bbox and weight,
// returning its new ID. Exported for use by node/edge clustering and
// temporal splitting, which construct replacement vertices directly.
func (d *DetourGraph) AddVertex(bbox geom.Bbox, weight int64) (string, error) {
	id, err := d.addVertex(bbox, weight)
	if err != nil {
		return "", err
	}
	d.refreshRootStatus(id)

	return id, nil
}

// AddEdge creates a directed edge from→to carrying trj and weight, updating
// the roots set. Exported for use by node/edge clustering and temporal
// splitting.
func (d *DetourGraph) AddEdge(from, to string, trj []geom.Point, weight int64) (string, error) {
	return d.addEdge(from, to, trj, weight)
}

// RemoveVertex deletes vertex id and all of its incident edges, then
// refreshes root status for every vertex that lost an incoming edge as a
// result (their sources, if still present, are unaffected; their remaining
// neighbors may have become orphans).
func (d *DetourGraph) RemoveVertex(id string) error {
	neighbors := map[string]bool{}
	for _, e := range d.g.Edges() {
		if e.From == id {
			neighbors[e.To] = true
		}
	}
	delete(d.roots, id)
	if err := d.g.RemoveVertex(id); err != nil {
		return fmt.Errorf("graphmodel: removing vertex: %w", err)
	}
	for nb := range neighbors {
		d.refreshRootStatus(nb)
	}

	return nil
}

// RemoveEdge deletes edge eid and refreshes the root status of its target,
// which may become an orphan (and hence a root) as a result.
func (d *DetourGraph) RemoveEdge(eid string) error {
	e, err := d.g.GetEdge(eid)
	if err != nil {
		return err
	}
	to := e.To
	if err := d.g.RemoveEdge(eid); err != nil {
		return fmt.Errorf("graphmodel: removing edge: %w", err)
	}
	d.refreshRootStatus(to)

	return nil
}

// addVertex creates a vertex with the given bbox and weight, returning its
// new ID.
func (d *DetourGraph) addVertex(bbox geom.Bbox, weight int64) (string, error) {
	id := d.newVertexID()
	if err := d.g.AddVertex(id); err != nil {
		return "", fmt.Errorf("graphmodel: adding vertex: %w", err)
	}
	v := d.g.VerticesMap()[id]
	v.Metadata[metaBbox] = bbox
	v.Metadata[metaWeight] = weight

	return id, nil
}

// VertexBbox returns the bbox stored on vertex id.
func (d *DetourGraph) VertexBbox(id string) (geom.Bbox, error) {
	v, ok := d.g.VerticesMap()[id]
	if !ok {
		return geom.Bbox{}, ErrVertexNotFound
	}
	b, _ := v.Metadata[metaBbox].(geom.Bbox)

	return b, nil
}

// SetVertexBbox overwrites the bbox stored on vertex id.
func (d *DetourGraph) SetVertexBbox(id string, b geom.Bbox) error {
	v, ok := d.g.VerticesMap()[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[metaBbox] = b

	return nil
}

// VertexWeight returns the observation-count weight stored on vertex id.
func (d *DetourGraph) VertexWeight(id string) (int64, error) {
	v, ok := d.g.VerticesMap()[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	w, _ := v.Metadata[metaWeight].(int64)

	return w, nil
}

// SetVertexWeight overwrites the weight stored on vertex id.
func (d *DetourGraph) SetVertexWeight(id string, w int64) error {
	v, ok := d.g.VerticesMap()[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[metaWeight] = w

	return nil
}

// EdgeTrajectory returns the route points carried by edge eid.
func (d *DetourGraph) EdgeTrajectory(eid string) ([]geom.Point, error) {
	e, err := d.g.GetEdge(eid)
	if err != nil {
		return nil, err
	}
	trj, _ := e.Metadata[metaTrj].([]geom.Point)

	return trj, nil
}

// SetEdgeTrajectory overwrites the route points carried by edge eid.
func (d *DetourGraph) SetEdgeTrajectory(eid string, trj []geom.Point) error {
	e, err := d.g.GetEdge(eid)
	if err != nil {
		return err
	}
	e.Metadata[metaTrj] = trj

	return nil
}

// SetEdgeWeight overwrites edge eid's weight (the number of source routes
// it collapses, after edge clustering).
func (d *DetourGraph) SetEdgeWeight(eid string, w int64) error {
	e, err := d.g.GetEdge(eid)
	if err != nil {
		return err
	}
	e.Weight = w

	return nil
}

// addEdge creates a directed edge from→to carrying trj and weight.
func (d *DetourGraph) addEdge(from, to string, trj []geom.Point, weight int64) (string, error) {
	eid, err := d.g.AddEdge(from, to, weight)
	if err != nil {
		return "", fmt.Errorf("graphmodel: adding edge: %w", err)
	}
	e, _ := d.g.GetEdge(eid)
	e.Metadata[metaTrj] = trj
	d.refreshRootStatus(to)

	return eid, nil
}

// refreshRootStatus enforces the "orphan = root" invariant for id: it is in
// the roots set iff it currently has zero incoming edges.
func (d *DetourGraph) refreshRootStatus(id string) {
	if d.hasIncoming(id) {
		delete(d.roots, id)
	} else {
		d.roots[id] = true
	}
}

func (d *DetourGraph) hasIncoming(id string) bool {
	for _, e := range d.g.Edges() {
		if e.To == id {
			return true
		}
	}

	return false
}

// AddPath appends path to the graph: a new root vertex for the first Stop,
// then for each (Route, Stop) pair a new vertex and a weight-1 edge from
// the previous vertex. Paths with fewer than two elements contribute
// nothing and return ErrEmptyPath.
func (d *DetourGraph) AddPath(path classify.Path) error {
	if path.Len() < 2 {
		return ErrEmptyPath
	}

	firstBbox := path.Elements[0].Bbox
	prevID, err := d.addVertex(firstBbox, 1)
	if err != nil {
		return err
	}
	d.roots[prevID] = true

	for i := 1; i+1 < path.Len(); i += 2 {
		route := path.Elements[i]
		stop := path.Elements[i+1]
		vid, err := d.addVertex(stop.Bbox, 1)
		if err != nil {
			return err
		}
		if _, err := d.addEdge(prevID, vid, route.Route, 1); err != nil {
			return err
		}
		prevID = vid
	}

	return d.VerifyConstraints()
}
