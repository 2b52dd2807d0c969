package graphmodel

import (
	"fmt"

	"github.com/katalvlaran/detourgraph/algorithms"
	"github.com/katalvlaran/detourgraph/core"
)

// VerifyConstraints checks the three-way (isRoot, isOrphan, rootReachable)
// truth table from original_source/src/graph/graph.rs's
// verify_constraints: only (root, orphan, reachable) and
// (non-root, non-orphan, reachable) are valid combinations.
func (d *DetourGraph) VerifyConstraints() error {
	for _, id := range d.g.Vertices() {
		isRoot := d.roots[id]
		isOrphan := !d.hasIncoming(id)
		reachable := d.rootReachable(id)

		switch {
		case isRoot && isOrphan && reachable:
			// valid
		case !isRoot && !isOrphan && reachable:
			// valid
		default:
			return fmt.Errorf("%w: vertex %s root=%v orphan=%v reachable=%v",
				ErrInvariantViolation, id, isRoot, isOrphan, reachable)
		}
	}

	return nil
}

// RootReachable reports whether target is reachable from some root.
func (d *DetourGraph) RootReachable(target string) bool { return d.rootReachable(target) }

func (d *DetourGraph) rootReachable(target string) bool {
	for _, root := range d.Roots() {
		res, err := algorithms.DFS(d.g, root, nil)
		if err != nil {
			continue
		}
		if res.Visited[target] {
			return true
		}
	}

	return len(d.Roots()) == 0 && len(d.g.Vertices()) == 0
}

// VerifyTemporalMonotonicity walks the graph from every root and fails if
// any outgoing edge a->b starts before a's start time (a.t1) or at or after
// b's start time (b.t1), per
// spec.md §3's strengthened monotonicity invariant.
func (d *DetourGraph) VerifyTemporalMonotonicity() error {
	var failure error
	for _, root := range d.Roots() {
		_, err := algorithms.DFS(d.g, root, &algorithms.DFSOptions{
			OnVisit: func(v *core.Vertex, _ int) error {
				edges, nerr := d.g.Neighbors(v.ID)
				if nerr != nil {
					return nerr
				}
				bbox, _ := d.VertexBbox(v.ID)
				for _, e := range edges {
					if e.From != v.ID {
						continue
					}
					toBbox, berr := d.VertexBbox(e.To)
					if berr != nil {
						continue
					}
					trj, _ := d.EdgeTrajectory(e.ID)
					if len(trj) == 0 {
						continue
					}
					start := trj[0].T
					if start < bbox.T1 || start >= toBbox.T1 {
						failure = fmt.Errorf("%w: edge %s (%s->%s) breaks temporal monotonicity",
							ErrInvariantViolation, e.ID, e.From, e.To)

						return failure
					}
				}

				return nil
			},
		})
		if err != nil && failure == nil {
			failure = err
		}
	}

	return failure
}
