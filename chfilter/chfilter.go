// Package chfilter implements the convex-hull spike filter: a windowed
// noise-removal pass over a GPS point stream.
//
// Grounded on original_source/src/utility/ch_filter.rs.
package chfilter

import "github.com/katalvlaran/detourgraph/geom"

// Filter is a pull-based iterator that removes convex-hull spikes from an
// input point sequence using a sliding window of configurable size.
//
// Algorithm (per call to Next):
//  1. Refill the window from the input until it holds WindowSize points or
//     the input is exhausted.
//  2. Compute the window's 2D convex hull; any window point that is both on
//     the hull and a "spike" relative to its window-order neighbors is
//     dropped from the window. The first and last window points are never
//     dropped.
//  3. Emit (and remove) the first remaining window point.
//
// Once the input is exhausted (including the call whose refill takes the
// last input point), Filter drains remaining window points in order without
// further hull computation.
type Filter struct {
	windowSize int
	input      []geom.Point
	pos        int
	window     []geom.Point
}

// New returns a Filter reading from points with the given window size.
// windowSize must be >= 1; values < 1 are clamped to 1 (degenerates to a
// no-op filter).
func New(windowSize int, points []geom.Point) *Filter {
	if windowSize < 1 {
		windowSize = 1
	}

	return &Filter{windowSize: windowSize, input: points}
}

// Next returns the next filtered point, or (Point{}, false) once both the
// input and the window are exhausted.
func (f *Filter) Next() (geom.Point, bool) {
	f.refill()
	if len(f.window) == 0 {
		return geom.Point{}, false
	}

	if f.pos < len(f.input) {
		f.removeSpikes()
	}
	if len(f.window) == 0 {
		// All window points were judged spikes against each other; refill and retry.
		return f.Next()
	}

	p := f.window[0]
	f.window = f.window[1:]

	return p, true
}

// All drains the Filter into a slice; a convenience for callers that do not
// need to stream.
func All(windowSize int, points []geom.Point) []geom.Point {
	f := New(windowSize, points)
	out := make([]geom.Point, 0, len(points))
	for {
		p, ok := f.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func (f *Filter) refill() {
	for len(f.window) < f.windowSize && f.pos < len(f.input) {
		f.window = append(f.window, f.input[f.pos])
		f.pos++
	}
}

// removeSpikes computes the convex hull of the window and drops every
// window point classified as a spike relative to its window-order
// neighbors (prev, next), per geom.IsSpike.
func (f *Filter) removeSpikes() {
	if len(f.window) < 3 {
		return
	}
	hull := geom.ConvexHull(f.window)
	onHull := make(map[int]bool, len(hull))
	for i, p := range f.window {
		for _, h := range hull {
			if geom.SamePoint(p, h) {
				onHull[i] = true

				break
			}
		}
	}

	kept := make([]geom.Point, 0, len(f.window))
	for i, p := range f.window {
		if !onHull[i] {
			kept = append(kept, p)

			continue
		}
		prev := f.window[max(i-1, 0)]
		next := f.window[min(i+1, len(f.window)-1)]
		if i == 0 || i == len(f.window)-1 || !geom.IsSpike(prev, p, next) {
			kept = append(kept, p)
		}
	}
	f.window = kept
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
