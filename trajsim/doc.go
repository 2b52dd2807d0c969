// Package trajsim provides trajectory similarity/dissimilarity measures
// used by edge clustering (Hausdorff distance) and medoid selection
// (common-timespan dissimilarity), plus a DTW-backed alternative distance.
//
// Grounded on original_source/src/graph/{edge_clustering.rs,median_trajectory.rs},
// which delegate to an external "trajectory_similarity" crate for both
// measures; here they are implemented directly against geom.Point and
// trajectory.Trajectory, and dtw.DTW is wired in as a selectable alternate
// metric (spec.md §9: "specify them as capabilities similarity(trj,trj) -> f64").
package trajsim
