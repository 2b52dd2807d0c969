package cluster_test

import (
	"testing"

	"github.com/katalvlaran/detourgraph/cluster"
	"github.com/stretchr/testify/assert"
)

func TestPartitionMergesOnlyClosePair(t *testing.T) {
	// Distances: 0-1 = 0.4, 0-2 = 0.9, 1-2 = 0.6; threshold 0.5 merges only (0,1).
	d := cluster.NewDistanceMatrix(3, []float64{
		0, 0.4, 0.9,
		0.4, 0, 0.6,
		0.9, 0.6, 0,
	})
	parts := d.Partition(0.5)
	assert.Len(t, parts, 2)
}

func TestPartitionAllMergeAboveThreshold(t *testing.T) {
	d := cluster.NewDistanceMatrix(3, []float64{
		0, 0.4, 0.9,
		0.4, 0, 0.6,
		0.9, 0.6, 0,
	})
	parts := d.Partition(1.1)
	assert.Len(t, parts, 1)
	assert.Len(t, parts[0], 3)
}

func TestPartitionEmpty(t *testing.T) {
	d := cluster.NewDistanceMatrix(0, nil)
	parts := d.Partition(1.0)
	assert.Empty(t, parts)
}
