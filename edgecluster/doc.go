// Package edgecluster groups parallel edges (same source and target) that
// represent recurring visits to the same route, and collapses each group to
// a single representative edge.
//
// Grounded on original_source/src/graph/edge_clustering.rs
// (set_edges_mediod_trjs, set_edges_centroid_trjs) and
// original_source/src/graph/median_trajectory.rs (get_mediod_trj).
package edgecluster
