package chfilter_test

import (
	"testing"

	"github.com/katalvlaran/detourgraph/chfilter"
	"github.com/katalvlaran/detourgraph/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPreservesOrderAndCount_NoSpikes(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}, {X: 2, Y: 0, T: 2},
		{X: 3, Y: 0, T: 3}, {X: 4, Y: 0, T: 4},
	}
	out := chfilter.All(5, pts)
	require.Len(t, out, len(pts))
	for i, p := range pts {
		assert.True(t, geom.SamePoint(p, out[i]))
	}
}

func TestAllWindowLargerThanInput(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0, T: 0}, {X: 1, Y: 1, T: 1}}
	out := chfilter.All(50, pts)
	assert.Len(t, out, 2)
}

func TestAllRemovesObviousSpike(t *testing.T) {
	// A sharp jump-and-return spike far off the straight line.
	pts := []geom.Point{
		{X: 0, Y: 0, T: 0}, {X: 1, Y: 0, T: 1}, {X: 1, Y: 1000, T: 2},
		{X: 2, Y: 0, T: 3}, {X: 3, Y: 0, T: 4},
	}
	out := chfilter.All(4, pts)
	for _, p := range out {
		assert.NotEqual(t, 1000.0, p.Y)
	}
}

func TestAllEmptyInput(t *testing.T) {
	out := chfilter.All(5, nil)
	assert.Empty(t, out)
}
