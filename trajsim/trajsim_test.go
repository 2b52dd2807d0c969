package trajsim_test

import (
	"testing"

	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/trajectory"
	"github.com/katalvlaran/detourgraph/trajsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHausdorffZeroForIdentical(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	assert.Equal(t, 0.0, trajsim.Hausdorff(a, a))
}

func TestHausdorffSymmetric(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	b := []geom.Point{{X: 0, Y: 3}, {X: 5, Y: 3}}
	assert.Equal(t, trajsim.Hausdorff(a, b), trajsim.Hausdorff(b, a))
}

func TestDissimilarityZeroForIdentical(t *testing.T) {
	trj := trajectory.Trajectory{{X: 0, Y: 0, T: 0}, {X: 10, Y: 0, T: 10}}
	d, err := trajsim.Dissimilarity(trj, trj)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestMedoidPicksCentralTrajectory(t *testing.T) {
	center := trajectory.Trajectory{{X: 0, Y: 0, T: 0}, {X: 10, Y: 0, T: 10}}
	far := trajectory.Trajectory{{X: 0, Y: 100, T: 0}, {X: 10, Y: 100, T: 10}}
	opposite := trajectory.Trajectory{{X: 0, Y: -100, T: 0}, {X: 10, Y: -100, T: 10}}
	idx := trajsim.Medoid([]trajectory.Trajectory{far, center, opposite})
	assert.Equal(t, 1, idx)
}
