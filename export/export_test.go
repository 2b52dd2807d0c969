package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/detourgraph/export"
	"github.com/katalvlaran/detourgraph/geom"
	"github.com/katalvlaran/detourgraph/graphmodel"
	"github.com/stretchr/testify/require"
)

func TestWriteAllProducesExpectedFiles(t *testing.T) {
	d := graphmodel.New()
	a, err := d.AddVertex(geom.Bbox{X1: 0, X2: 1, Y1: 0, Y2: 1}, 1)
	require.NoError(t, err)
	b, err := d.AddVertex(geom.Bbox{X1: 10, X2: 11, Y1: 0, Y2: 1}, 1)
	require.NoError(t, err)
	_, err = d.AddEdge(a, b, []geom.Point{{X: 0, Y: 0, T: 0}, {X: 10, Y: 0, T: 10}}, 1)
	require.NoError(t, err)

	dir := t.TempDir()
	ex := export.Exporter{Graph: d}
	require.NoError(t, ex.WriteAll(dir, export.Options{DOT: true, JSON: true, NodesCSV: true, EdgesCSV: true}))

	for _, name := range []string{"graph.dot", "graph.json", "nodes.csv", "edge_0_1.csv"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, statErr, name)
	}
}
