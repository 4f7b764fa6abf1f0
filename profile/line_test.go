package profile

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gridslice/grid"
)

func TestSamples(t *testing.T) {
	xs, ys := []float64{1, 2, 3, 4}, []float64{10, 20, 30}

	table := []struct {
		l Line
		n int
	}{
		{Line{1, 10, 3, 10}, 3},
		{Line{1, 10, 1, 30}, 3},
		{Line{1, 10, 4, 30}, 4},
		{Line{4, 30, 1, 10}, 4},
		{Line{1, 10, 1.5, 10}, 2},
		{Line{2, 20, 2, 20}, 1},
		{Line{0, 0, 10, 0}, 11},
	}

	for i, test := range table {
		if n := Samples(xs, ys, test.l); n != test.n {
			t.Errorf("%d) Samples(%v) = %d, not %d.", i+1, test.l, n, test.n)
		}
	}

	// Single-point axes never add samples.
	assert.Equal(t, 3, Samples([]float64{5}, ys, Line{0, 10, 100, 30}))
}

func TestCoords(t *testing.T) {
	xs, ys := []float64{1, 2, 3}, []float64{10, 20}

	px, py, rs := Coords(xs, ys, Line{1, 10, 3, 10})
	assert.Equal(t, []float64{1, 2, 3}, px)
	assert.Equal(t, []float64{10, 10, 10}, py)
	assert.Equal(t, []float64{0, 1, 2}, rs)

	px, py, rs = Coords(xs, ys, Line{2, 15, 2, 15})
	assert.Equal(t, []float64{2}, px)
	assert.Equal(t, []float64{15}, py)
	assert.Equal(t, []float64{0}, rs)
}

func TestCoordsDistance(t *testing.T) {
	xs := []float64{0, 0.5, 1, 1.5, 2}
	ys := []float64{-1, -0.75, -0.5, -0.25, 0}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		l := Line{
			4*rng.Float64() - 2, 4*rng.Float64() - 2,
			4*rng.Float64() - 2, 4*rng.Float64() - 2,
		}
		_, _, rs := Coords(xs, ys, l)

		if rs[0] != 0 {
			t.Fatalf("%d) Distances for %v start at %g.", i+1, l, rs[0])
		}
		for j := 1; j < len(rs); j++ {
			if rs[j] < rs[j-1] {
				t.Fatalf("%d) Distances for %v decrease at %d: %v",
					i+1, l, j, rs)
			}
		}
		if math.Abs(rs[len(rs) - 1] - l.Len()) > 1e-12 {
			t.Errorf("%d) Distances for %v end at %g, not %g.",
				i+1, l, rs[len(rs) - 1], l.Len())
		}
	}
}

func TestDefaultLine(t *testing.T) {
	g := &grid.Grid{
		Xs: []float64{1, 2, 3}, Ys: []float64{4, 3, 2, 1, 0},
		Vals: make([]float64, 15),
	}
	assert.Equal(t, Line{1, 2, 3, 2}, DefaultLine(g))
}

func TestLineCheck(t *testing.T) {
	assert.NoError(t, Line{0, 0, 1, 1}.Check())
	assert.Error(t, Line{math.NaN(), 0, 1, 1}.Check())
	assert.Error(t, Line{0, 0, math.Inf(1), 1}.Check())
}

func TestSelector(t *testing.T) {
	s := NewSelector(Line{0, 0, 1, 1})
	assert.False(t, s.Selecting())

	l, done := s.Click(5, 6)
	assert.False(t, done)
	assert.True(t, s.Selecting())
	assert.Equal(t, Line{5, 6, 1, 1}, l)

	l, done = s.Click(7, 8)
	assert.True(t, done)
	assert.False(t, s.Selecting())
	assert.Equal(t, Line{5, 6, 7, 8}, l)
	assert.Equal(t, l, s.Line())

	_, done = s.Click(1, 2)
	assert.False(t, done)
	_, done = s.Click(1, 2)
	assert.True(t, done)
	assert.Equal(t, Line{1, 2, 1, 2}, s.Line())
}
