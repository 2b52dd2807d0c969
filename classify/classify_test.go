package classify_test

import (
	"testing"

	"github.com/katalvlaran/detourgraph/classify"
	"github.com/katalvlaran/detourgraph/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointsFromTimestamps(ts []float64) []geom.Point {
	pts := make([]geom.Point, len(ts))
	for i, t := range ts {
		pts[i] = geom.Point{X: float64(i), Y: 0, T: t}
	}

	return pts
}

func TestSplitOnTimeoutWorkedExample(t *testing.T) {
	ts := []float64{1, 2, 3, 4, 9, 10, 11, 12, 13, 14}
	pts := pointsFromTimestamps(ts)
	subs, timeouts := classify.SplitOnTimeout(pts, 3)
	require.Len(t, subs, 2)
	assert.Len(t, subs[0], 4)
	assert.Len(t, subs[1], 6)
	assert.Equal(t, 1, timeouts)
}

func TestCleanStreamDropsNonIncreasing(t *testing.T) {
	pts := []geom.Point{{T: 1}, {T: 1}, {T: 0}, {T: 5}, {T: 4}}
	out := classify.CleanStream(pts)
	require.Len(t, out, 2)
	assert.Equal(t, 1.0, out[0].T)
	assert.Equal(t, 5.0, out[1].T)
}

func TestStopDetectorDetectsStationaryCluster(t *testing.T) {
	sd := classify.NewStopDetector(60000, 10)
	for i := 0; i < 5; i++ {
		stopped := sd.IsStopped(geom.Point{X: 0, Y: 0, T: float64(i * 1000)})
		assert.True(t, stopped)
	}
}

func TestStopDetectorRejectsWideSpread(t *testing.T) {
	sd := classify.NewStopDetector(60000, 10)
	sd.IsStopped(geom.Point{X: 0, Y: 0, T: 0})
	stopped := sd.IsStopped(geom.Point{X: 1000, Y: 0, T: 1000})
	assert.False(t, stopped)
}

func TestBuildPathAlternatesAndVerifies(t *testing.T) {
	c := classify.NewClassifier(900000, 20, 60000, 30, 5)
	var pts []geom.Point
	// Stationary cluster.
	for i := 0; i < 6; i++ {
		pts = append(pts, geom.Point{X: 0, Y: 0, T: float64(i * 1000)})
	}
	// Fast travel away.
	for i := 1; i <= 10; i++ {
		pts = append(pts, geom.Point{X: float64(i * 500), Y: 0, T: float64(6000 + i*1000)})
	}
	// Stationary cluster again.
	for i := 0; i < 6; i++ {
		pts = append(pts, geom.Point{X: 5000, Y: 0, T: float64(20000 + i*1000)})
	}
	path := classify.BuildPath(pts, c)
	require.NoError(t, path.Verify())
	require.True(t, path.Len() >= 1)
	first, _ := path.Last()
	_ = first
	assert.True(t, path.Elements[0].IsStop())
	assert.True(t, path.Elements[path.Len()-1].IsStop())
}
