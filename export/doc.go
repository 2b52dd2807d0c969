// Package export writes a graphmodel.DetourGraph to disk in the formats the
// original tool supported: Graphviz DOT, a single JSON document, a
// nodes.csv bounding-box table, and one CSV file per edge trajectory.
//
// Grounded on original_source/src/graph/graph.rs (the Writable trait and
// DetourGraph::to_csv).
package export
