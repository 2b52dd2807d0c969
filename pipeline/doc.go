// Package pipeline orchestrates the full detour-graph construction: per
// stream, spike-filter and split into paths concurrently; then fold every
// path into one graph and run node clustering, temporal splitting and edge
// clustering in sequence.
//
// The single-orchestrator-with-functional-options shape is grounded on
// builder/api.go's BuildGraph (options resolved once, steps applied in a
// fixed order, every error wrapped with its stage's context); the stage
// sequence itself is grounded on
// original_source/src/graph/graph_builder.rs's get_graph.
package pipeline
