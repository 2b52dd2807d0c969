// Package temporalsplit restores the temporal-monotonicity invariant of a
// graphmodel.DetourGraph after node clustering, by splitting vertices into
// several time-bounded successors. A vertex's split points come from a
// time-ordered sweep over the start and end timestamps of its incident
// edges, so every vertex with a non-empty incident trajectory is split.
//
// Grounded on original_source/src/graph/temporal_splitting.rs.
package temporalsplit
