// Package graphmodel wraps core.Graph with the detour-graph domain: vertices
// carry a (weight, Bbox) payload, edges carry a (weight, trajectory)
// payload via core.Vertex.Metadata / core.Edge.Metadata and core.Edge.Weight,
// and a roots set tracks the "orphan = root" invariant explicitly.
//
// Grounded on original_source/src/graph/graph.rs.
package graphmodel
