package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	table := []struct {
		g *Grid
		err error
	}{
		{&Grid{Xs: []float64{0, 1}, Ys: []float64{0}, Vals: []float64{1, 2}}, nil},
		{&Grid{Xs: []float64{1, 0}, Ys: []float64{0, 1},
			Zs: []float64{3, 1, 2}, Vals: make([]float64, 12)}, nil},
		{&Grid{Xs: []float64{}, Ys: []float64{0}, Vals: []float64{}},
			ErrInvalidShape},
		{&Grid{Xs: []float64{0}, Ys: nil, Vals: []float64{}},
			ErrInvalidShape},
		{&Grid{Xs: []float64{0}, Ys: []float64{0}, Zs: []float64{},
			Vals: []float64{}}, ErrInvalidShape},
		{&Grid{Xs: []float64{0, 1}, Ys: []float64{0, 1},
			Vals: []float64{1, 2, 3}}, ErrInvalidShape},
		{&Grid{Xs: []float64{0, 1}, Ys: []float64{0, 1}, Zs: []float64{0, 1},
			Vals: []float64{1, 2, 3, 4}}, ErrInvalidShape},
		{&Grid{Xs: []float64{0, 1, 1}, Ys: []float64{0},
			Vals: []float64{1, 2, 3}}, ErrNotMonotonic},
		{&Grid{Xs: []float64{0, 1, 2}, Ys: []float64{0, 2, 1},
			Vals: make([]float64, 9)}, ErrNotMonotonic},
	}

	for i, test := range table {
		err := test.g.Check()
		if test.err == nil && err != nil {
			t.Errorf("%d) Unexpected error: %s", i+1, err.Error())
		} else if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("%d) Expected %v, got %v.", i+1, test.err, err)
		}
	}
}

func TestNew(t *testing.T) {
	g, err := New([]float64{1, 2, 3}, []float64{10, 20},
		[]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.False(t, g.Is3D())
	assert.Equal(t, 1, g.Layers())
	assert.Equal(t, 6.0, g.At(2, 1, 0))

	_, err = New([]float64{1, 2, 3}, []float64{10, 20}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidShape)

	g, err = New3D([]float64{1, 2}, []float64{10}, []float64{0.5, 0.8, 3.1},
		[]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.True(t, g.Is3D())
	assert.Equal(t, 3, g.Layers())
	assert.Equal(t, 5.0, g.At(0, 0, 2))

	_, err = New3D([]float64{1, 2}, []float64{10}, nil, []float64{})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestLayer(t *testing.T) {
	g, err := New3D([]float64{1, 2}, []float64{10}, []float64{0, 1, 2},
		[]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	layer, err := g.Layer(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, layer)

	_, err = g.Layer(3)
	assert.ErrorIs(t, err, ErrLayerRange)
	_, err = g.Layer(-1)
	assert.ErrorIs(t, err, ErrLayerRange)
}

func TestCopy(t *testing.T) {
	g := &Grid{Xs: []float64{0, 1}, Ys: []float64{0}, Vals: []float64{1, 2}}
	c := g.Copy()
	c.Xs[0], c.Vals[0] = -1, -1

	assert.Equal(t, 0.0, g.Xs[0])
	assert.Equal(t, 1.0, g.Vals[0])
	assert.Nil(t, c.Zs)
}

func TestIsUniform(t *testing.T) {
	table := []struct {
		xs []float64
		tol float64
		res bool
	}{
		{[]float64{0, 1, 2, 3}, 0, true},
		{[]float64{3, 2, 1, 0}, 0, true},
		{[]float64{0}, 0, true},
		{[]float64{}, 0, true},
		{[]float64{0, 1, 3}, 0, false},
		{[]float64{0, 1, 3}, 1e6, true},
		{[]float64{0, 1, 2.05}, 5, true},
		{[]float64{0, 1, 2.05}, 4, false},
	}

	for i, test := range table {
		if res := IsUniform(test.xs, test.tol); res != test.res {
			t.Errorf("%d) IsUniform(%v, %g) = %v, not %v.",
				i+1, test.xs, test.tol, res, test.res)
		}
	}
}

func TestMinSpacing(t *testing.T) {
	assert.Equal(t, 1.0, MinSpacing([]float64{0, 1, 3}))
	assert.Equal(t, 1.0, MinSpacing([]float64{3, 2, 0}))
	assert.Equal(t, 0.0, MinSpacing([]float64{7}))
}

func TestRange(t *testing.T) {
	lo, hi := Range([]float64{3, math.NaN(), -1, 2}, 0.01)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 3.0, hi)

	lo, hi = Range([]float64{2, 2, math.NaN()}, 1)
	assert.Equal(t, 1.5, lo)
	assert.Equal(t, 2.5, hi)

	lo, hi = Range([]float64{math.NaN()}, 1)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}
