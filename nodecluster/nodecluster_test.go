package nodecluster_test

import (
	"testing"

	"github.com/katalvlaran/detourgraph/classify"
	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/graphmodel"
	"github.com/katalvlaran/detourgraph/nodecluster"
	"github.com/stretchr/testify/require"
)

func stopAt(x, y, t0, t1 float64) classify.PathElement {
	return classify.PathElement{
		Kind: classify.StopKind,
		Bbox: geom.Bbox{X1: x - 1, X2: x + 1, Y1: y - 1, Y2: y + 1, T1: t0, T2: t1},
	}
}

func routeBetween(pts []geom.Point) classify.PathElement {
	return classify.PathElement{Kind: classify.RouteKind, Bbox: geom.NewBbox(pts), Route: pts}
}

func TestMergeCollapsesOverlappingStops(t *testing.T) {
	d := graphmodel.New()

	p1 := classify.Path{Elements: []classify.PathElement{
		stopAt(0, 0, 0, 10),
		routeBetween([]geom.Point{{X: 0, Y: 0, T: 10}, {X: 100, Y: 0, T: 20}}),
		stopAt(100, 0, 20, 30),
	}}
	p2 := classify.Path{Elements: []classify.PathElement{
		stopAt(0.5, 0.5, 100, 110),
		routeBetween([]geom.Point{{X: 0.5, Y: 0.5, T: 110}, {X: 200, Y: 0, T: 120}}),
		stopAt(200, 0, 120, 130),
	}}
	require.NoError(t, d.AddPath(p1))
	require.NoError(t, d.AddPath(p2))
	require.Equal(t, 4, len(d.Vertices()))

	require.NoError(t, nodecluster.Merge(d))

	// The two overlapping stops near the origin collapse into one vertex.
	require.Equal(t, 3, len(d.Vertices()))
	require.NoError(t, d.VerifyConstraints())
}
