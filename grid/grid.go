/*
Package grid contains the gridded data type shared by the uniformizer and the
line-slice resampler, along with the checks that every other package relies on
before touching a grid's values.
*/
package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidShape = errors.New("grid: data shape does not match axes")
	ErrNotMonotonic = errors.New("grid: axis is not strictly monotonic")
	ErrLayerRange = errors.New("grid: layer index out of range")
)

// Grid is a block of values sampled at the points of an x-y grid. If Zs is
// non-nil, the grid has one x-y layer for every element of Zs.
//
// Vals is stored in [z, y, x] order, so the value at (Xs[i], Ys[j], Zs[k]) is
// Vals[k*len(Ys)*len(Xs) + j*len(Xs) + i].
type Grid struct {
	Xs, Ys, Zs []float64
	Vals []float64
}

// New creates a 2D grid and checks that its shape is consistent.
func New(xs, ys, vals []float64) (*Grid, error) {
	g := &Grid{Xs: xs, Ys: ys, Vals: vals}
	if err := g.Check(); err != nil { return nil, err }
	return g, nil
}

// New3D creates a grid with a depth axis, zs, and checks that its shape is
// consistent.
func New3D(xs, ys, zs, vals []float64) (*Grid, error) {
	if zs == nil { zs = []float64{} }
	g := &Grid{Xs: xs, Ys: ys, Zs: zs, Vals: vals}
	if err := g.Check(); err != nil { return nil, err }
	return g, nil
}

func (g *Grid) Nx() int { return len(g.Xs) }
func (g *Grid) Ny() int { return len(g.Ys) }
func (g *Grid) Is3D() bool { return g.Zs != nil }

// Layers returns the number of x-y layers in the grid. 2D grids have exactly
// one layer.
func (g *Grid) Layers() int {
	if g.Zs == nil { return 1 }
	return len(g.Zs)
}

// Check returns an error if the grid's axes and values are inconsistent with
// one another. Nothing is ever truncated or padded to make them fit.
func (g *Grid) Check() error {
	if len(g.Xs) == 0 {
		return fmt.Errorf("%w: x axis is empty", ErrInvalidShape)
	} else if len(g.Ys) == 0 {
		return fmt.Errorf("%w: y axis is empty", ErrInvalidShape)
	} else if g.Zs != nil && len(g.Zs) == 0 {
		return fmt.Errorf("%w: z axis is empty", ErrInvalidShape)
	}

	n := len(g.Xs) * len(g.Ys) * g.Layers()
	if len(g.Vals) != n {
		if g.Is3D() {
			return fmt.Errorf(
				"%w: len(vals) = %d, but len(xs) = %d, len(ys) = %d, " +
					"and len(zs) = %d", ErrInvalidShape,
				len(g.Vals), len(g.Xs), len(g.Ys), len(g.Zs),
			)
		}
		return fmt.Errorf(
			"%w: len(vals) = %d, but len(xs) = %d and len(ys) = %d",
			ErrInvalidShape, len(g.Vals), len(g.Xs), len(g.Ys),
		)
	}

	if !strictlyMonotonic(g.Xs) {
		return fmt.Errorf("%w: x", ErrNotMonotonic)
	} else if !strictlyMonotonic(g.Ys) {
		return fmt.Errorf("%w: y", ErrNotMonotonic)
	}

	return nil
}

// At returns the value at (Xs[i], Ys[j], Zs[k]). k must be zero for 2D grids.
func (g *Grid) At(i, j, k int) float64 {
	return g.Vals[k*len(g.Ys)*len(g.Xs) + j*len(g.Xs) + i]
}

// Layer returns the x-y layer at index k. The returned slice aliases Vals.
func (g *Grid) Layer(k int) ([]float64, error) {
	if k < 0 || k >= g.Layers() {
		return nil, fmt.Errorf(
			"%w: %d not in [0, %d)", ErrLayerRange, k, g.Layers(),
		)
	}
	n := len(g.Xs) * len(g.Ys)
	return g.Vals[k*n: (k+1)*n], nil
}

// Copy returns a deep copy of g.
func (g *Grid) Copy() *Grid {
	out := &Grid{
		Xs: append([]float64{}, g.Xs...),
		Ys: append([]float64{}, g.Ys...),
		Vals: append([]float64{}, g.Vals...),
	}
	if g.Zs != nil { out.Zs = append([]float64{}, g.Zs...) }
	return out
}

func strictlyMonotonic(xs []float64) bool {
	if len(xs) < 2 { return true }
	incr := xs[1] > xs[0]
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] || (xs[i] > xs[i-1]) != incr { return false }
	}
	return true
}

// MinSpacing returns the smallest absolute difference between consecutive
// elements of xs. Axes with fewer than two elements have a spacing of zero.
func MinSpacing(xs []float64) float64 {
	if len(xs) < 2 { return 0 }
	ds := spacings(xs)
	return floats.Min(ds)
}

// IsUniform returns true if the spread of the spacings of xs, as a percentage
// of the mean spacing, is no larger than tol. Axes with fewer than two elements
// are always uniform.
func IsUniform(xs []float64, tol float64) bool {
	if len(xs) < 2 { return true }
	ds := spacings(xs)
	mean := floats.Sum(ds) / float64(len(ds))
	return 100 * (floats.Max(ds) - floats.Min(ds)) / mean <= tol
}

func spacings(xs []float64) []float64 {
	ds := make([]float64, len(xs) - 1)
	for i := range ds { ds[i] = math.Abs(xs[i+1] - xs[i]) }
	return ds
}

// Range returns the smallest and largest non-NaN elements of vals. If they are
// equal, the range is widened to a width of minDelta around them. If every
// element is NaN, the range is [0, minDelta].
func Range(vals []float64, minDelta float64) (lo, hi float64) {
	lo, hi = math.Inf(+1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) { continue }
		if v < lo { lo = v }
		if v > hi { hi = v }
	}

	if math.IsInf(lo, +1) { return 0, minDelta }
	if lo == hi {
		lo, hi = lo - minDelta/2, hi + minDelta/2
	}
	return lo, hi
}
