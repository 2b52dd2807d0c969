package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/detourgraph/geom"
)

// loadStreams reads one GPS point stream per path. Each file is a headerless
// CSV of "x,y,t" rows (x,y in projected meters, t in epoch milliseconds).
func loadStreams(paths []string) ([][]geom.Point, error) {
	streams := make([][]geom.Point, 0, len(paths))
	for _, path := range paths {
		stream, err := loadStream(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		streams = append(streams, stream)
	}

	return streams, nil
}

func loadStream(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	points := make([]geom.Point, 0, len(rows))
	for i, row := range rows {
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid x: %w", i, err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid y: %w", i, err)
		}
		t, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid t: %w", i, err)
		}
		points = append(points, geom.Point{X: x, Y: y, T: t})
	}

	return points, nil
}
