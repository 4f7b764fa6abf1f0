package profile

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/gridslice/grid"
	"github.com/phil-mansfield/gridslice/math/interpolate"
)

// Profile is a grid resampled along a line.
type Profile struct {
	// Rs is the distance of each sample from the start of the line.
	Rs []float64
	// Xs and Ys are the positions of each sample.
	Xs, Ys []float64
	// Zs is the depth axis of a 3D grid and is nil for 2D grids.
	Zs []float64
	// Vals is stored in [z, sample] order.
	Vals []float64
}

// Samples returns the number of points along the line.
func (p *Profile) Samples() int { return len(p.Rs) }

// Layers returns the number of depth layers in the profile.
func (p *Profile) Layers() int {
	if p.Zs == nil { return 1 }
	return len(p.Zs)
}

// Layer returns the profile values of the layer at index k. The returned slice
// aliases Vals.
func (p *Profile) Layer(k int) []float64 {
	n := p.Samples()
	return p.Vals[k*n: (k+1)*n]
}

// Slice resamples g along l. Each layer of a 3D grid is resampled
// independently, giving a 2D distance-depth section. Values are found by
// bilinear interpolation between the four grid points surrounding each sample,
// and samples outside the grid are clamped onto its edge.
//
// If revZ is true, the depth axis and the order of the layers are reversed
// before returning. This has no effect on 2D grids.
func Slice(g *grid.Grid, l Line, revZ bool) (*Profile, error) {
	if err := g.Check(); err != nil {
		return nil, err
	} else if err := l.Check(); err != nil {
		return nil, err
	}

	px, py, rs := Coords(g.Xs, g.Ys, l)
	n, layers := len(rs), g.Layers()

	p := &Profile{ Rs: rs, Xs: px, Ys: py, Vals: make([]float64, n*layers) }
	for k := 0; k < layers; k++ {
		layer, err := g.Layer(k)
		if err != nil { return nil, err }
		var bi interpolate.BiInterpolator
		bi = interpolate.NewBiLinear(g.Xs, g.Ys, layer)
		bi.EvalAll(px, py, p.Layer(k))
	}

	if g.Is3D() {
		p.Zs = append([]float64{}, g.Zs...)
		if revZ { reverseLayers(p.Zs, p.Vals, n) }
	}

	return p, nil
}

// reverseLayers reverses zs and the order of the length-n layers of vals.
func reverseLayers(zs, vals []float64, n int) {
	for a, b := 0, len(zs) - 1; a < b; a, b = a + 1, b - 1 {
		zs[a], zs[b] = zs[b], zs[a]
		for i := 0; i < n; i++ {
			vals[a*n + i], vals[b*n + i] = vals[b*n + i], vals[a*n + i]
		}
	}
}

// DepthProfile holds the values along the depth axis at a single grid point.
type DepthProfile struct {
	// I and J are the indices of the grid point, which is at (X, Y).
	I, J int
	X, Y float64
	// OnGrid is false if the requested point was outside the grid, in which
	// case every element of Vals is NaN.
	OnGrid bool
	// Zs is nil for 2D grids.
	Zs, Vals []float64
}

// Depth returns the values along the depth axis at the grid point closest to
// (x, y). Points more than half a cell outside the grid give NaN values. If
// revZ is true, Zs and Vals are reversed.
func Depth(g *grid.Grid, x, y float64, revZ bool) (*DepthProfile, error) {
	if err := g.Check(); err != nil { return nil, err }

	dp := &DepthProfile{ Vals: make([]float64, g.Layers()) }
	if g.Is3D() { dp.Zs = append([]float64{}, g.Zs...) }

	i, iok := interpolate.Nearest(g.Xs, x)
	j, jok := interpolate.Nearest(g.Ys, y)
	dp.OnGrid = iok && jok

	if !dp.OnGrid {
		dp.X, dp.Y = x, y
		for k := range dp.Vals { dp.Vals[k] = math.NaN() }
	} else {
		dp.I, dp.J = i, j
		dp.X, dp.Y = g.Xs[i], g.Ys[j]
		for k := range dp.Vals { dp.Vals[k] = g.At(i, j, k) }
	}

	if revZ && g.Is3D() { reverseLayers(dp.Zs, dp.Vals, 1) }

	return dp, nil
}

// String returns a short description of where the profile was taken.
func (dp *DepthProfile) String() string {
	if !dp.OnGrid {
		return fmt.Sprintf("(%g, %g) off grid", dp.X, dp.Y)
	}
	return fmt.Sprintf("(%g, %g) [%d, %d]", dp.X, dp.Y, dp.I, dp.J)
}
