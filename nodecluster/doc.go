// Package nodecluster merges spatially-overlapping Stop vertices of a
// graphmodel.DetourGraph into single vertices, per spec.md §4.8.
//
// Grounded on original_source/src/graph/node_clustering.rs.
package nodecluster
