// Package geom provides the spatio-temporal primitives shared by every
// stage of the detour-graph pipeline: points, axis-aligned spatio-temporal
// bounding boxes, line-segment intersection, and Euclidean distance.
//
// All computations operate on already-projected metric coordinates (meters)
// and epoch-millisecond timestamps; geographic (lon/lat) conversion is the
// concern of an external collaborator, not this package.
package geom
