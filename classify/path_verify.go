package classify

import "fmt"

// Verify checks the Path invariants from spec.md §3:
//   - alternates Stop, Route, Stop, ...; begins and ends with a Stop;
//   - each Route's first/last point lies inside its neighboring Stops' bboxes;
//   - for consecutive Stops S_i, S_{i+2}: S_i.t2 < S_{i+2}.t1.
func (p *Path) Verify() error {
	if p.IsEmpty() {
		return nil
	}
	if !p.Elements[0].IsStop() || !p.Elements[len(p.Elements)-1].IsStop() {
		return fmt.Errorf("%w: path must begin and end with a Stop", ErrInvalidPath)
	}
	for i, e := range p.Elements {
		wantStop := i%2 == 0
		if e.IsStop() != wantStop {
			return fmt.Errorf("%w: element %d breaks Stop/Route alternation", ErrInvalidPath, i)
		}
		if !e.IsStop() {
			if len(e.Route) == 0 {
				return fmt.Errorf("%w: route at %d is empty", ErrInvalidPath, i)
			}
			prevStop := p.Elements[i-1]
			nextStop := p.Elements[i+1]
			if !prevStop.Bbox.ContainsPoint(e.Route[0]) {
				return fmt.Errorf("%w: route %d does not start inside preceding stop", ErrInvalidPath, i)
			}
			if !nextStop.Bbox.ContainsPoint(e.Route[len(e.Route)-1]) {
				return fmt.Errorf("%w: route %d does not end inside following stop", ErrInvalidPath, i)
			}
		} else if i+2 < len(p.Elements) {
			next := p.Elements[i+2]
			if e.Bbox.T2 >= next.Bbox.T1 {
				return fmt.Errorf("%w: stop %d does not end before stop %d begins", ErrInvalidPath, i, i+2)
			}
		}
	}

	return nil
}
