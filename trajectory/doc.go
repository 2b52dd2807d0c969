// Package trajectory implements the trajectory algebra used throughout the
// pipeline: monotonization, common-timespan trimming, linear interpolation,
// Visvalingam-Whyatt simplification, and merge-by-averaging.
//
// Grounded on original_source/src/utility/trajectory.rs and visvalingam.rs.
package trajectory
