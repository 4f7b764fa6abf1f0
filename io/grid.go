package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/gridslice/grid"
)

// ReadAxis reads a single-column text file of axis values.
func ReadAxis(fname string) ([]float64, error) {
	cols, err := table.ReadTable(fname, []int{0}, nil)
	if err != nil { return nil, err }
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("Axis file '%s' is empty.", fname)
	}
	return cols[0], nil
}

// ReadValues reads a text file with nx columns and rows rows into a flat,
// row-major array.
func ReadValues(fname string, nx, rows int) ([]float64, error) {
	colIdxs := make([]int, nx)
	for i := range colIdxs { colIdxs[i] = i }

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil { return nil, err }

	if n := len(cols[0]); n != rows {
		return nil, fmt.Errorf(
			"%w: data file '%s' has %d rows, but %d were expected.",
			grid.ErrInvalidShape, fname, n, rows,
		)
	}

	vals := make([]float64, nx*rows)
	for i := range cols {
		if len(cols[i]) != rows {
			return nil, fmt.Errorf(
				"%w: column %d of data file '%s' has %d rows, not %d.",
				grid.ErrInvalidShape, i, fname, len(cols[i]), rows,
			)
		}
		for j, v := range cols[i] { vals[j*nx + i] = v }
	}

	return vals, nil
}

// ReadGrid reads the grid described by con.
func ReadGrid(con *SliceConfig) (*grid.Grid, error) {
	xs, err := ReadAxis(con.XFile)
	if err != nil { return nil, err }
	ys, err := ReadAxis(con.YFile)
	if err != nil { return nil, err }

	var zs []float64
	layers := 1
	if con.Is3D() {
		zs, err = ReadAxis(con.ZFile)
		if err != nil { return nil, err }
		layers = len(zs)
	}

	vals, err := ReadValues(con.DataFile, len(xs), len(ys)*layers)
	if err != nil { return nil, err }

	if con.Is3D() { return grid.New3D(xs, ys, zs, vals) }
	return grid.New(xs, ys, vals)
}
