package trajectory_test

import (
	"testing"

	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeMonotoneIdempotent(t *testing.T) {
	trj := trajectory.Trajectory{{T: 1}, {T: 1}, {T: 3}, {T: 2}, {T: 5}}
	once := trj.MakeMonotone()
	twice := once.MakeMonotone()
	assert.Equal(t, once, twice)
	assert.True(t, once.IsMonotone())
}

func TestCommonTimespan(t *testing.T) {
	a := trajectory.Trajectory{{T: 0}, {T: 10}}
	b := trajectory.Trajectory{{T: 5}, {T: 20}}
	s, e, ok := trajectory.CommonTimespan(a, b)
	require.True(t, ok)
	assert.Equal(t, 5.0, s)
	assert.Equal(t, 10.0, e)
}

func TestCommonTimespanDisjoint(t *testing.T) {
	a := trajectory.Trajectory{{T: 0}, {T: 1}}
	b := trajectory.Trajectory{{T: 5}, {T: 6}}
	_, _, ok := trajectory.CommonTimespan(a, b)
	assert.False(t, ok)
}

func TestTrimToTimespanIdempotent(t *testing.T) {
	trj := trajectory.Trajectory{{X: 0, T: 0}, {X: 10, T: 10}, {X: 20, T: 20}}
	once, err := trajectory.TrimToTimespan(trj, 5, 15)
	require.NoError(t, err)
	twice, err := trajectory.TrimToTimespan(once, 5, 15)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Equal(t, 5.0, once[0].T)
	assert.Equal(t, 15.0, once[len(once)-1].T)
}

func TestVisvalingamKeepsEndpoints(t *testing.T) {
	trj := trajectory.Trajectory{
		{X: 0, Y: 0, T: 0}, {X: 1, Y: 0.01, T: 1}, {X: 2, Y: -0.01, T: 2},
		{X: 3, Y: 0.01, T: 3}, {X: 4, Y: 0, T: 4},
	}
	simplified := trajectory.Visvalingam(trj, 100)
	require.True(t, len(simplified) >= 2)
	assert.Equal(t, trj[0], simplified[0])
	assert.Equal(t, trj[len(trj)-1], simplified[len(simplified)-1])
}

func TestMergeSymmetricWithinTolerance(t *testing.T) {
	a := trajectory.Trajectory{{X: 0, Y: 0, T: 0}, {X: 10, Y: 0, T: 10}}
	b := trajectory.Trajectory{{X: 0, Y: 10, T: 2}, {X: 10, Y: 10, T: 12}}
	ab := trajectory.Merge(a, b, 0)
	ba := trajectory.Merge(b, a, 0)
	require.Len(t, ba, len(ab))
	for i := range ab {
		assert.InDelta(t, ab[i].X, ba[i].X, 1e-6)
		assert.InDelta(t, ab[i].Y, ba[i].Y, 1e-6)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	p := geom.Point{X: 0, Y: 0, T: 0}
	q := geom.Point{X: 10, Y: 10, T: 10}
	assert.Equal(t, p, geom.Interpolate(0, p, q))
	assert.Equal(t, q, geom.Interpolate(10, p, q))
	mid := geom.Interpolate(5, p, q)
	assert.Equal(t, 5.0, mid.X)
}
