package temporalsplit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/graphmodel"
)

// ErrNoMatchingNode is returned when a self-loop edge cannot be reassigned
// to any of a split vertex's successors because none of their bboxes
// temporally contain the relevant endpoint; this indicates the split
// boundaries were computed incorrectly.
var ErrNoMatchingNode = errors.New("temporalsplit: no matching successor node for self-loop edge")

// Split restores temporal monotonicity across d: every vertex for which
// computeSplits yields split points (any vertex with a non-empty incident
// trajectory) is replaced by a sequence of time-bounded successor vertices,
// and incident edges are rerouted to the successor whose time window
// contains the relevant endpoint. Successors left without edges are removed.
//
// Grounded on original_source/src/graph/temporal_splitting.rs
// (make_temporally_monotone).
func Split(d *graphmodel.DetourGraph) error {
	type job struct {
		id     string
		splits []float64
	}

	var jobs []job
	for _, id := range d.Vertices() {
		trjs := incidentTrajectories(d, id)
		splits := computeSplits(trjs)
		if len(splits) == 0 {
			continue
		}
		jobs = append(jobs, job{id: id, splits: splits})
	}

	for _, j := range jobs {
		bbox, err := d.VertexBbox(j.id)
		if err != nil {
			return err
		}
		weight, err := d.VertexWeight(j.id)
		if err != nil {
			return err
		}

		boxes := splitBbox(bbox, j.splits)
		newIDs := make([]string, len(boxes))
		for i, b := range boxes {
			newIDs[i], err = d.AddVertex(b, weight)
			if err != nil {
				return fmt.Errorf("temporalsplit: adding successor vertex: %w", err)
			}
		}

		if err := reassignOutgoing(d, j.id, newIDs); err != nil {
			return err
		}
		if err := reassignIncoming(d, j.id, newIDs); err != nil {
			return err
		}

		for _, n := range newIDs {
			if degree(d, n) == 0 {
				if err := d.RemoveVertex(n); err != nil {
					return err
				}
			}
		}
		if err := d.RemoveVertex(j.id); err != nil {
			return fmt.Errorf("temporalsplit: removing split vertex %s: %w", j.id, err)
		}
	}

	return nil
}

func degree(d *graphmodel.DetourGraph, id string) int {
	n := 0
	for _, e := range d.Edges() {
		if e.From == id || e.To == id {
			n++
		}
	}

	return n
}

// incidentTrajectories collects the trajectory of every edge touching id,
// once per direction it matches (a self-loop is counted twice), mirroring
// the original's separate incoming/outgoing passes.
func incidentTrajectories(d *graphmodel.DetourGraph, id string) [][]geom.Point {
	var out [][]geom.Point
	for _, e := range d.Edges() {
		trj, err := d.EdgeTrajectory(e.ID)
		if err != nil || len(trj) == 0 {
			continue
		}
		if e.To == id {
			out = append(out, trj)
		}
		if e.From == id {
			out = append(out, trj)
		}
	}

	return out
}

// computeSplits sweeps the (start, end) timestamps of trjs in ascending
// order, tracking which trajectories are currently "open". A timestamp that
// reopens an already-open trajectory marks a revisit: the window since the
// last event and the millisecond before this one become split boundaries.
func computeSplits(trjs [][]geom.Point) []float64 {
	type event struct {
		idx int
		t   float64
	}
	events := make([]event, 0, 2*len(trjs))
	for idx, trj := range trjs {
		events = append(events, event{idx, trj[0].T}, event{idx, trj[len(trj)-1].T})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].t < events[j].t })

	var splits []float64
	visited := make(map[int]bool)
	var lastVisited float64
	for _, e := range events {
		if visited[e.idx] {
			splits = append(splits, lastVisited, e.t-1.0)
			visited = make(map[int]bool)
		} else {
			visited[e.idx] = true
		}
		lastVisited = e.t + 1.0
	}

	return splits
}

// splitBbox partitions bbox on the t-axis at each value in splits, in
// order, producing len(splits)+1 contiguous boxes.
func splitBbox(bbox geom.Bbox, splits []float64) []geom.Bbox {
	boxes := make([]geom.Bbox, 0, len(splits)+1)
	cur := bbox
	for _, t := range splits {
		before, after := cur.TemporalSplit(t)
		boxes = append(boxes, before)
		cur = after
	}
	boxes = append(boxes, cur)

	return boxes
}

type rewiredEdge struct {
	from, to string
	trj      []geom.Point
	weight   int64
}

// reassignOutgoing reroutes every edge leaving splitID to the successor
// (among newIDs) whose window contains the edge's start point, targeting
// the edge's original destination unless that destination was splitID
// itself (a self-loop), in which case the destination is also resolved
// among newIDs by end-point containment.
func reassignOutgoing(d *graphmodel.DetourGraph, splitID string, newIDs []string) error {
	var add []rewiredEdge
	var remove []string
	for _, e := range d.Edges() {
		if e.From != splitID {
			continue
		}
		remove = append(remove, e.ID)
		trj, err := d.EdgeTrajectory(e.ID)
		if err != nil {
			return err
		}
		startPoint, endPoint := trj[0], trj[len(trj)-1]

		target := e.To
		if e.To == splitID {
			found := false
			for _, n := range newIDs {
				b, berr := d.VertexBbox(n)
				if berr == nil && b.IsInTemporal(endPoint) {
					target = n
					found = true
				}
			}
			if !found {
				return fmt.Errorf("%w: vertex %s", ErrNoMatchingNode, splitID)
			}
		}

		source := ""
		for _, n := range newIDs {
			b, berr := d.VertexBbox(n)
			if berr == nil && b.IsInTemporal(startPoint) {
				source = n
				break
			}
		}
		if source == "" {
			return fmt.Errorf("%w: vertex %s", ErrNoMatchingNode, splitID)
		}

		add = append(add, rewiredEdge{from: source, to: target, trj: trj, weight: e.Weight})
	}

	return applyRewire(d, add, remove)
}

// reassignIncoming reroutes every edge entering splitID to the successor
// whose window contains the edge's end point, symmetric to
// reassignOutgoing.
func reassignIncoming(d *graphmodel.DetourGraph, splitID string, newIDs []string) error {
	var add []rewiredEdge
	var remove []string
	for _, e := range d.Edges() {
		if e.To != splitID {
			continue
		}
		remove = append(remove, e.ID)
		trj, err := d.EdgeTrajectory(e.ID)
		if err != nil {
			return err
		}
		startPoint, endPoint := trj[0], trj[len(trj)-1]

		source := e.From
		if e.From == splitID {
			found := false
			for _, n := range newIDs {
				b, berr := d.VertexBbox(n)
				if berr == nil && b.IsInTemporal(startPoint) {
					source = n
					found = true
				}
			}
			if !found {
				return fmt.Errorf("%w: vertex %s", ErrNoMatchingNode, splitID)
			}
		}

		target := ""
		for _, n := range newIDs {
			b, berr := d.VertexBbox(n)
			if berr == nil && b.IsInTemporal(endPoint) {
				target = n
				break
			}
		}
		if target == "" {
			return fmt.Errorf("%w: vertex %s", ErrNoMatchingNode, splitID)
		}

		add = append(add, rewiredEdge{from: source, to: target, trj: trj, weight: e.Weight})
	}

	return applyRewire(d, add, remove)
}

func applyRewire(d *graphmodel.DetourGraph, add []rewiredEdge, remove []string) error {
	for _, a := range add {
		if _, err := d.AddEdge(a.from, a.to, a.trj, a.weight); err != nil {
			return fmt.Errorf("temporalsplit: adding rewired edge: %w", err)
		}
	}
	for _, id := range remove {
		if err := d.RemoveEdge(id); err != nil {
			return fmt.Errorf("temporalsplit: removing original edge %s: %w", id, err)
		}
	}

	return nil
}
