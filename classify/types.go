package classify

import (
	"errors"

	"github.com/katalvlaran/detourgraph/geom"
)

// ErrMalformedInput is returned when a stream is empty or not strictly
// temporally increasing after cleaning; the core specification's §7 marks
// this fatal for the offending stream (the caller should skip it).
var ErrMalformedInput = errors.New("classify: malformed input stream")

// ErrInvalidPath is returned by Path.Verify when the Stop/Route alternation
// or its neighboring invariants are violated.
var ErrInvalidPath = errors.New("classify: path invariant violated")

// IsStopped is the ternary classification produced by the motion detector
// (and the combined classifier): the object is confidently stopped, is
// confidently moving, or the recent history is ambiguous.
type IsStopped int

const (
	// Maybe indicates the classifier cannot yet commit either way.
	Maybe IsStopped = iota
	// Yes indicates the object is classified as stationary.
	Yes
	// No indicates the object is classified as moving.
	No
)

func (s IsStopped) String() string {
	switch s {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Maybe"
	}
}

// ElementKind discriminates a PathElement.
type ElementKind int

const (
	// StopKind marks a PathElement as a stationary Stop (Bbox payload).
	StopKind ElementKind = iota
	// RouteKind marks a PathElement as a moving Route (Trajectory payload).
	RouteKind
)

// PathElement is a tagged Stop(Bbox) | Route(Trajectory) variant.
//
// Grounded on original_source/src/graph/path_element.rs.
type PathElement struct {
	Kind  ElementKind
	Bbox  geom.Bbox
	Route []geom.Point
}

// NewStop wraps b as a Stop PathElement.
func NewStop(b geom.Bbox) PathElement { return PathElement{Kind: StopKind, Bbox: b} }

// NewRoute wraps trj as a Route PathElement.
func NewRoute(trj []geom.Point) PathElement { return PathElement{Kind: RouteKind, Route: trj} }

// IsStop reports whether e is a Stop.
func (e PathElement) IsStop() bool { return e.Kind == StopKind }

// Path is an ordered sequence of alternating Stop/Route PathElements,
// beginning and ending with a Stop (see spec.md §3).
type Path struct {
	Elements []PathElement
}

// Len returns the number of elements in the path.
func (p *Path) Len() int { return len(p.Elements) }

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool { return len(p.Elements) == 0 }

// Last returns the last element and true, or the zero value and false.
func (p *Path) Last() (PathElement, bool) {
	if p.IsEmpty() {
		return PathElement{}, false
	}

	return p.Elements[len(p.Elements)-1], true
}

// Push appends e to the path.
func (p *Path) Push(e PathElement) { p.Elements = append(p.Elements, e) }

// ReplaceLast overwrites the last element with e.
func (p *Path) ReplaceLast(e PathElement) {
	if len(p.Elements) > 0 {
		p.Elements[len(p.Elements)-1] = e
	}
}
