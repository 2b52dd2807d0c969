package classify

import "github.com/katalvlaran/detourgraph/geom"

// ExpandStops grows every Stop's bbox to also contain the adjacent Route
// endpoints that touch it (the first/last Stop only grows on its single
// adjacent side). Supplements spec.md §4.4 with
// original_source/src/graph/path.rs's expand_stops.
func (p *Path) ExpandStops() {
	for i, e := range p.Elements {
		if !e.IsStop() {
			continue
		}
		bbox := e.Bbox
		if i > 0 {
			prevRoute := p.Elements[i-1]
			if !prevRoute.IsStop() && len(prevRoute.Route) > 0 {
				bbox = bbox.InsertPoint(prevRoute.Route[len(prevRoute.Route)-1])
			}
		}
		if i < len(p.Elements)-1 {
			nextRoute := p.Elements[i+1]
			if !nextRoute.IsStop() && len(nextRoute.Route) > 0 {
				bbox = bbox.InsertPoint(nextRoute.Route[0])
			}
		}
		p.Elements[i] = NewStop(bbox)
	}
}

// canContain reports whether bbox already spatio-temporally contains every
// point of trj.
func canContain(bbox geom.Bbox, trj []geom.Point) bool {
	for _, p := range trj {
		if !bbox.ContainsPoint(p) {
			return false
		}
	}

	return true
}

// MergeNodes absorbs a Route into its preceding Stop (via bbox union with
// the following Stop, dropping both) whenever the preceding Stop's bbox can
// already contain the entire Route trajectory. Grounded on
// original_source/src/graph/path.rs's merge_nodes.
func (p *Path) MergeNodes() {
	out := make([]PathElement, 0, len(p.Elements))
	i := 0
	for i < len(p.Elements) {
		e := p.Elements[i]
		if e.IsStop() && i+2 < len(p.Elements) {
			route := p.Elements[i+1]
			next := p.Elements[i+2]
			if !route.IsStop() && next.IsStop() && canContain(e.Bbox, route.Route) {
				merged := NewStop(e.Bbox.Union(next.Bbox))
				out = append(out, merged)
				i += 3

				continue
			}
		}
		out = append(out, e)
		i++
	}
	p.Elements = out
}

// CutShortRoutes removes any Route with fewer than 4 points, merging its
// two neighboring Stops via bbox union.
func (p *Path) CutShortRoutes() {
	out := make([]PathElement, 0, len(p.Elements))
	i := 0
	for i < len(p.Elements) {
		e := p.Elements[i]
		if !e.IsStop() && len(e.Route) < 4 && i > 0 && i+1 < len(p.Elements) {
			prevStop := out[len(out)-1]
			nextStop := p.Elements[i+1]
			out[len(out)-1] = NewStop(prevStop.Bbox.Union(nextStop.Bbox))
			i += 2

			continue
		}
		out = append(out, e)
		i++
	}
	p.Elements = out
}

// CollapseSingletonStops merges runs of consecutive Stop elements (which
// can arise after CutShortRoutes/MergeNodes removed the Route between them)
// into a single Stop via bbox union. Grounded on
// original_source/src/graph/path.rs's rm_single_points.
func (p *Path) CollapseSingletonStops() {
	out := make([]PathElement, 0, len(p.Elements))
	for _, e := range p.Elements {
		if e.IsStop() && len(out) > 0 && out[len(out)-1].IsStop() {
			out[len(out)-1] = NewStop(out[len(out)-1].Bbox.Union(e.Bbox))

			continue
		}
		out = append(out, e)
	}
	p.Elements = out
}

// MonotonizeRoutes keeps, for each Route, only points whose timestamp
// strictly exceeds the previously kept timestamp.
func (p *Path) MonotonizeRoutes() {
	for i, e := range p.Elements {
		if e.IsStop() || len(e.Route) == 0 {
			continue
		}
		kept := make([]geom.Point, 0, len(e.Route))
		kept = append(kept, e.Route[0])
		last := e.Route[0].T
		for _, q := range e.Route[1:] {
			if q.T > last {
				kept = append(kept, q)
				last = q.T
			}
		}
		p.Elements[i] = NewRoute(kept)
	}
}
