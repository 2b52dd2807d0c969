package nodecluster

import (
	"fmt"

	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/graphmodel"
)

// dayStart and dayEnd bound a merged cluster's bbox on the time axis before
// temporalsplit narrows it back down: a freshly merged Stop accepts traffic
// at any time of day until revisit detection proves otherwise.
const (
	dayStart = 0.0
	dayEnd   = 24 * 60 * 60 * 1000.0
)

// Merge collapses every set of spatially-overlapping Stop vertices in d into
// a single representative vertex, rewiring incident Routes to the new
// vertex and discarding the originals.
//
// Grounded on original_source/src/graph/node_clustering.rs
// (spatially_cluster_nodes, get_minimal_bbox) and the node-merge portion of
// original_source/src/graph/graph_builder.rs (merge_nodes).
func Merge(d *graphmodel.DetourGraph) error {
	clusters, err := spatialClustering(d)
	if err != nil {
		return err
	}

	for _, cluster := range clusters {
		if len(cluster) < 2 {
			continue
		}
		if err := mergeCluster(d, cluster); err != nil {
			return err
		}
	}

	return nil
}

// spatialClustering groups vertex IDs whose bboxes pairwise overlap
// spatially, repeatedly unioning overlapping pairs until no more merges are
// possible (single-link clustering under the "overlaps" predicate).
func spatialClustering(d *graphmodel.DetourGraph) ([][]string, error) {
	type group struct {
		ids  []string
		bbox geom.Bbox
	}

	groups := make([]group, 0, len(d.Vertices()))
	for _, id := range d.Vertices() {
		b, err := d.VertexBbox(id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group{ids: []string{id}, bbox: b})
	}

	for {
		mergedA, mergedB := -1, -1
	outer:
		for a := range groups {
			for b := a + 1; b < len(groups); b++ {
				if groups[a].bbox.OverlapsSpatially(groups[b].bbox) {
					mergedA, mergedB = a, b
					break outer
				}
			}
		}
		if mergedA < 0 {
			break
		}
		merged := group{
			ids:  append(append([]string{}, groups[mergedA].ids...), groups[mergedB].ids...),
			bbox: groups[mergedA].bbox.Union(groups[mergedB].bbox),
		}
		next := make([]group, 0, len(groups)-1)
		for i, g := range groups {
			if i != mergedA && i != mergedB {
				next = append(next, g)
			}
		}
		next = append(next, merged)
		groups = next
	}

	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = g.ids
	}

	return out, nil
}

// mergeCluster computes the minimal bbox enclosing cluster's vertices and
// the endpoints of their incident edges, creates one representative vertex
// spanning the full day, rewires every incident edge to it, and removes the
// original vertices.
func mergeCluster(d *graphmodel.DetourGraph, cluster []string) error {
	bbox, err := minimalBbox(d, cluster)
	if err != nil {
		return err
	}
	bbox.T1, bbox.T2 = dayStart, dayEnd

	members := make(map[string]bool, len(cluster))
	for _, id := range cluster {
		members[id] = true
	}

	repID, err := d.AddVertex(bbox, int64(len(cluster)))
	if err != nil {
		return fmt.Errorf("nodecluster: adding representative vertex: %w", err)
	}

	for _, e := range d.Edges() {
		fromIn, toIn := members[e.From], members[e.To]
		if !fromIn && !toIn {
			continue
		}
		trj, terr := d.EdgeTrajectory(e.ID)
		if terr != nil {
			return terr
		}
		from, to := e.From, e.To
		if fromIn {
			from = repID
		}
		if toIn {
			to = repID
		}
		if _, aerr := d.AddEdge(from, to, trj, e.Weight); aerr != nil {
			return fmt.Errorf("nodecluster: rewiring edge %s: %w", e.ID, aerr)
		}
		if rerr := d.RemoveEdge(e.ID); rerr != nil {
			return fmt.Errorf("nodecluster: removing original edge %s: %w", e.ID, rerr)
		}
	}

	for _, id := range cluster {
		if err := d.RemoveVertex(id); err != nil {
			return fmt.Errorf("nodecluster: removing merged vertex %s: %w", id, err)
		}
	}

	return nil
}

// minimalBbox returns the union of the cluster's vertex bboxes, expanded to
// also cover the first point of every outgoing trajectory and the last point
// of every incoming trajectory touching any vertex in cluster.
func minimalBbox(d *graphmodel.DetourGraph, cluster []string) (geom.Bbox, error) {
	members := make(map[string]bool, len(cluster))
	for _, id := range cluster {
		members[id] = true
	}

	bbox, err := d.VertexBbox(cluster[0])
	if err != nil {
		return geom.Bbox{}, err
	}
	for _, id := range cluster[1:] {
		b, berr := d.VertexBbox(id)
		if berr != nil {
			return geom.Bbox{}, berr
		}
		bbox = bbox.Union(b)
	}

	for _, e := range d.Edges() {
		trj, terr := d.EdgeTrajectory(e.ID)
		if terr != nil || len(trj) == 0 {
			continue
		}
		if members[e.To] {
			bbox = bbox.InsertPoint(trj[len(trj)-1])
		}
		if members[e.From] {
			bbox = bbox.InsertPoint(trj[0])
		}
	}

	return bbox, nil
}
