package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/detourgraph/graphmodel"
)

// Options selects which output formats WriteAll produces, mirroring the
// original tool's graph_dot/graph_json/nodes_csv/edges_csv output flags.
type Options struct {
	DOT      bool
	JSON     bool
	NodesCSV bool
	EdgesCSV bool
}

// Writable is implemented by anything that can serialize itself into dir
// under the given Options.
type Writable interface {
	WriteAll(dir string, opts Options) error
}

// Exporter adapts a graphmodel.DetourGraph to Writable.
type Exporter struct {
	Graph *graphmodel.DetourGraph
}

// WriteAll writes every format enabled in opts into dir, creating dir if
// necessary.
func (e Exporter) WriteAll(dir string, opts Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: creating output dir %s: %w", dir, err)
	}

	if opts.DOT {
		if err := e.writeDOT(filepath.Join(dir, "graph.dot")); err != nil {
			return err
		}
	}
	if opts.JSON {
		if err := e.writeJSON(filepath.Join(dir, "graph.json")); err != nil {
			return err
		}
	}
	if opts.NodesCSV {
		if err := e.writeNodesCSV(filepath.Join(dir, "nodes.csv")); err != nil {
			return err
		}
	}
	if opts.EdgesCSV {
		if err := e.writeEdgeCSVs(dir); err != nil {
			return err
		}
	}

	return nil
}

func (e Exporter) writeDOT(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "digraph {")
	for _, id := range e.Graph.Vertices() {
		weight, _ := e.Graph.VertexWeight(id)
		fmt.Fprintf(w, "    %q [label=%q];\n", id, fmt.Sprintf("%s (w=%d)", id, weight))
	}
	for _, edge := range e.Graph.Edges() {
		fmt.Fprintf(w, "    %q -> %q [label=%q];\n", edge.From, edge.To, fmt.Sprintf("%s (w=%d)", edge.ID, edge.Weight))
	}
	fmt.Fprintln(w, "}")

	return w.Flush()
}

// jsonDoc is the serialized shape of a DetourGraph: a flat vertex list and a
// flat edge list, each carrying its own payload.
type jsonDoc struct {
	Vertices []jsonVertex `json:"vertices"`
	Edges    []jsonEdge   `json:"edges"`
}

type jsonVertex struct {
	ID     string  `json:"id"`
	Weight int64   `json:"weight"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	T1     float64 `json:"t1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	T2     float64 `json:"t2"`
}

type jsonEdge struct {
	ID         string       `json:"id"`
	From       string       `json:"from"`
	To         string       `json:"to"`
	Weight     int64        `json:"weight"`
	Trajectory [][3]float64 `json:"trajectory"`
}

func (e Exporter) writeJSON(path string) error {
	doc := jsonDoc{}
	for _, id := range e.Graph.Vertices() {
		bbox, err := e.Graph.VertexBbox(id)
		if err != nil {
			return err
		}
		weight, err := e.Graph.VertexWeight(id)
		if err != nil {
			return err
		}
		doc.Vertices = append(doc.Vertices, jsonVertex{
			ID: id, Weight: weight,
			X1: bbox.X1, Y1: bbox.Y1, T1: bbox.T1,
			X2: bbox.X2, Y2: bbox.Y2, T2: bbox.T2,
		})
	}
	for _, edge := range e.Graph.Edges() {
		trj, err := e.Graph.EdgeTrajectory(edge.ID)
		if err != nil {
			return err
		}
		points := make([][3]float64, len(trj))
		for i, p := range trj {
			points[i] = [3]float64{p.X, p.Y, p.T}
		}
		doc.Edges = append(doc.Edges, jsonEdge{
			ID: edge.ID, From: edge.From, To: edge.To, Weight: edge.Weight, Trajectory: points,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

func (e Exporter) writeNodesCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "label,weight,x1,y1,t1,x2,y2,t2")
	for _, id := range e.Graph.Vertices() {
		bbox, err := e.Graph.VertexBbox(id)
		if err != nil {
			return err
		}
		weight, err := e.Graph.VertexWeight(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s,%d,%g,%g,%g,%g,%g,%g\n", id, weight, bbox.X1, bbox.Y1, bbox.T1, bbox.X2, bbox.Y2, bbox.T2)
	}

	return w.Flush()
}

func (e Exporter) writeEdgeCSVs(dir string) error {
	for i, edge := range e.Graph.Edges() {
		trj, err := e.Graph.EdgeTrajectory(edge.ID)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("edge_%d_%d.csv", i, edge.Weight))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("export: creating %s: %w", path, err)
		}
		w := bufio.NewWriter(f)
		fmt.Fprintln(w, "x,y,t")
		for _, p := range trj {
			fmt.Fprintf(w, "%g,%g,%g\n", p.X, p.Y, p.T)
		}
		if err := w.Flush(); err != nil {
			f.Close()

			return err
		}
		f.Close()
	}

	return nil
}
