package edgecluster

import (
	"fmt"

	"github.com/katalvlaran/detourgraph/cluster"
	"github.com/katalvlaran/detourgraph/config"
	"github.com/katalvlaran/detourgraph/core"
	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/graphmodel"
	"github.com/katalvlaran/detourgraph/trajectory"
	"github.com/katalvlaran/detourgraph/trajsim"
)

// Strategy selects how a cluster of parallel edges is collapsed to one
// representative edge (spec.md §9's "polymorphism over distance metrics"
// extended to representative-selection strategies).
type Strategy int

const (
	// MedoidStrategy replaces a cluster with the member trajectory closest
	// to all others, weighted by cluster size. This is the default.
	MedoidStrategy Strategy = iota
	// CentroidStrategy replaces a cluster by iteratively averaging every
	// member trajectory together (trajectory.Merge), weighted by the sum
	// of the merged edges' weights.
	CentroidStrategy
)

type edgeKey struct{ from, to string }

// Cluster groups every set of parallel edges (same source and target) in d
// by Hausdorff similarity under cfg.MaxHausdorffMeters, and replaces each
// multi-member group with one representative edge chosen per strategy,
// simplified with trajectory.Visvalingam at cfg.VisvalingamThreshold.
//
// Grounded on original_source/src/graph/edge_clustering.rs.
func Cluster(d *graphmodel.DetourGraph, cfg config.Config, strategy Strategy) error {
	groups := make(map[edgeKey][]*core.Edge)
	for _, e := range d.Edges() {
		k := edgeKey{e.From, e.To}
		groups[k] = append(groups[k], e)
	}

	for k, edges := range groups {
		if len(edges) < 2 {
			continue
		}
		clusters, err := clusterByHausdorff(d, edges, cfg.MaxHausdorffMeters)
		if err != nil {
			return err
		}
		for _, idxs := range clusters {
			if len(idxs) < 2 {
				continue
			}
			members := make([]*core.Edge, len(idxs))
			for i, idx := range idxs {
				members[i] = edges[idx]
			}
			if err := replaceGroup(d, k, members, cfg, strategy); err != nil {
				return err
			}
		}
	}

	return nil
}

func clusterByHausdorff(d *graphmodel.DetourGraph, edges []*core.Edge, threshold float64) ([][]int, error) {
	n := len(edges)
	trjs := make([][]geom.Point, n)
	for i, e := range edges {
		trj, err := d.EdgeTrajectory(e.ID)
		if err != nil {
			return nil, err
		}
		trjs[i] = trj
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := trajsim.Hausdorff(trjs[i], trjs[j])
			data[i*n+j] = dist
			data[j*n+i] = dist
		}
	}

	return cluster.NewDistanceMatrix(n, data).Partition(threshold), nil
}

func replaceGroup(d *graphmodel.DetourGraph, k edgeKey, members []*core.Edge, cfg config.Config, strategy Strategy) error {
	var trj []geom.Point
	var weight int64

	switch strategy {
	case CentroidStrategy:
		t, w, err := centroidTrajectory(d, members, cfg.VisvalingamThreshold)
		if err != nil {
			return err
		}
		trj, weight = t, w
	default:
		t, err := medoidTrajectory(d, members)
		if err != nil {
			return err
		}
		trj, weight = t, int64(len(members))
	}

	simplified := trajectory.Visvalingam(trajectory.Trajectory(trj), cfg.VisvalingamThreshold)

	for _, e := range members {
		if err := d.RemoveEdge(e.ID); err != nil {
			return fmt.Errorf("edgecluster: removing clustered edge %s: %w", e.ID, err)
		}
	}
	if _, err := d.AddEdge(k.from, k.to, []geom.Point(simplified), weight); err != nil {
		return fmt.Errorf("edgecluster: adding representative edge: %w", err)
	}

	return nil
}

func medoidTrajectory(d *graphmodel.DetourGraph, members []*core.Edge) ([]geom.Point, error) {
	trjs := make([]trajectory.Trajectory, len(members))
	for i, e := range members {
		trj, err := d.EdgeTrajectory(e.ID)
		if err != nil {
			return nil, err
		}
		trjs[i] = trajectory.Trajectory(trj)
	}
	idx := trajsim.Medoid(trjs)

	return []geom.Point(trjs[idx]), nil
}

func centroidTrajectory(d *graphmodel.DetourGraph, members []*core.Edge, visvalingamThreshold float64) ([]geom.Point, int64, error) {
	first, err := d.EdgeTrajectory(members[0].ID)
	if err != nil {
		return nil, 0, err
	}
	acc := trajectory.Trajectory(first)
	weight := members[0].Weight
	for _, e := range members[1:] {
		trj, terr := d.EdgeTrajectory(e.ID)
		if terr != nil {
			return nil, 0, terr
		}
		acc = trajectory.Merge(acc, trajectory.Trajectory(trj), visvalingamThreshold)
		weight += e.Weight
	}

	return []geom.Point(acc), weight, nil
}
