package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gridslice/grid"
	"github.com/phil-mansfield/gridslice/profile"
)

var nan = math.NaN()

func TestNaNSplit(t *testing.T) {
	table := []struct {
		ys []float64
		lens []int
	}{
		{[]float64{}, nil},
		{[]float64{1, 2, 3}, []int{3}},
		{[]float64{nan, nan}, nil},
		{[]float64{nan, 1, 2, nan, 3}, []int{2, 1}},
		{[]float64{1, nan, nan, 2, 3, 4}, []int{1, 3}},
	}

	for i, test := range table {
		xs := make([]float64, len(test.ys))
		for j := range xs { xs[j] = float64(j) }

		xSets, ySets := nanSplit(xs, test.ys)
		if len(xSets) != len(test.lens) || len(ySets) != len(test.lens) {
			t.Errorf("%d) got %d runs, but expected %d.",
				i+1, len(xSets), len(test.lens))
			continue
		}
		for j := range xSets {
			if len(xSets[j]) != test.lens[j] || len(ySets[j]) != test.lens[j] {
				t.Errorf("%d) run %d has length %d, but expected %d.",
					i+1, j, len(xSets[j]), test.lens[j])
			}
			for _, y := range ySets[j] {
				if math.IsNaN(y) { t.Errorf("%d) run %d contains NaN.", i+1, j) }
			}
		}
	}
}

func exampleSection() *profile.Profile {
	return &profile.Profile{
		Rs: []float64{0, 1, 2},
		Xs: []float64{0, 1, 2},
		Ys: []float64{0, 0, 0},
		Zs: []float64{30, 20, 10},
		Vals: []float64{
			1, 2, 3,
			4, 5, 6,
			7, 8, nan,
		},
	}
}

func TestSectionXYZ(t *testing.T) {
	xyz, err := newSectionXYZ(exampleSection())
	require.NoError(t, err)

	c, r := xyz.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 3, r)

	// Depth is decreasing, so the rows run backwards through the layers.
	assert.Equal(t, 10.0, xyz.Y(0))
	assert.Equal(t, 30.0, xyz.Y(2))
	assert.Equal(t, 2.0, xyz.X(2))
	assert.Equal(t, 7.0, xyz.Z(0, 0))
	assert.Equal(t, 3.0, xyz.Z(2, 2))
	assert.True(t, math.IsNaN(xyz.Z(2, 0)))
}

func TestSectionXYZErrors(t *testing.T) {
	flat := exampleSection()
	flat.Zs = nil
	_, err := newSectionXYZ(flat)
	assert.Error(t, err)

	thin := &profile.Profile{
		Rs: []float64{0}, Xs: []float64{1}, Ys: []float64{1},
		Zs: []float64{1, 2}, Vals: []float64{1, 2},
	}
	_, err = newSectionXYZ(thin)
	assert.Error(t, err)
}

func TestLayerXYZ(t *testing.T) {
	g, err := grid.New3D(
		[]float64{2, 1, 0}, []float64{0, 1}, []float64{5, 6},
		[]float64{
			0, 1, 2,
			3, 4, 5,

			6, 7, 8,
			9, 10, 11,
		},
	)
	require.NoError(t, err)

	xyz, err := newLayerXYZ(g, 1)
	require.NoError(t, err)

	c, r := xyz.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0.0, xyz.X(0))
	assert.Equal(t, 2.0, xyz.X(2))
	assert.Equal(t, 1.0, xyz.Y(1))
	// x = 0 is stored last in each row.
	assert.Equal(t, 8.0, xyz.Z(0, 0))
	assert.Equal(t, 9.0, xyz.Z(2, 1))

	_, err = newLayerXYZ(g, 2)
	assert.ErrorIs(t, err, grid.ErrLayerRange)
}

func TestHeatMap(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "section.png")
	require.NoError(t, HeatMap(exampleSection(), fname, DefaultLabels()))

	info, err := os.Stat(fname)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestGridMap(t *testing.T) {
	g, err := grid.New(
		[]float64{0, 1, 2}, []float64{0, 1, 2},
		[]float64{0, 1, 2, 1, 2, 3, 2, 3, 4},
	)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "map.png")
	l := profile.Line{ X0: 0, Y0: 0, X1: 2, Y1: 1.5 }
	require.NoError(t, GridMap(g, 0, l, fname, DefaultLabels()))

	info, err := os.Stat(fname)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestPlotErrors(t *testing.T) {
	p := exampleSection()
	assert.Error(t, ProfilePlot(p, 3, "unused.png", DefaultLabels()))
	assert.Error(t, ProfilePlot(p, -1, "unused.png", DefaultLabels()))

	dp := &profile.DepthProfile{ OnGrid: true, Vals: []float64{1} }
	assert.Error(t, DepthPlot(dp, "unused.png", DefaultLabels()))
}
