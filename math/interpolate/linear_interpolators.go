package interpolate

import (
	"fmt"
)

/////////////////////////////
// BiLinear Implementation //
/////////////////////////////

// BiLinear is a bi-linear interpolator.
//
// Points outside the grid are clamped onto its nearest edge, so Eval never
// fails for finite inputs. A grid point is reproduced exactly, even if
// neighbouring values are NaN.
type BiLinear struct {
	xs, ys searcher
	vals []float64
	nx int
}

// NewBiLinear creates a bi-linear interpolator for the strictly monotonic axes
// xs and ys. The value at (xs[i], ys[j]) is vals[j*len(xs) + i].
//
// Either axis may have a single element, in which case the interpolator is
// constant along that direction. vals must not be modified throughout the
// lifetime of the BiLinear.
func NewBiLinear(xs, ys, vals []float64) *BiLinear {
	if len(xs) * len(ys) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d and len(ys) = %d",
			len(vals), len(xs), len(ys),
		))
	}

	bi := &BiLinear{}
	bi.xs.init(xs)
	bi.ys.init(ys)
	bi.nx = len(xs)
	bi.vals = vals

	return bi
}

// Eval returns the interpolated value at (x, y).
func (bi *BiLinear) Eval(x, y float64) float64 {
	ix1, tx := bi.xs.weight(x)
	iy1, ty := bi.ys.weight(y)
	ix2, iy2 := ix1 + 1, iy1 + 1
	if bi.xs.n == 1 { ix2 = ix1 }
	if bi.ys.n == 1 { iy2 = iy1 }

	v11 := bi.vals[iy1*bi.nx + ix1]
	v21 := bi.vals[iy1*bi.nx + ix2]
	v12 := bi.vals[iy2*bi.nx + ix1]
	v22 := bi.vals[iy2*bi.nx + ix2]

	return lerp(lerp(v11, v21, tx), lerp(v12, v22, tx), ty)
}

func lerp(v1, v2, t float64) float64 {
	switch t {
	case 0:
		return v1
	case 1:
		return v2
	}
	return v1 + t*(v2 - v1)
}

// EvalAll evaluates the interpolator at all the given (x, y) pairs. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (bi *BiLinear) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		))
	}
	if len(out) == 0 { out = [][]float64{ make([]float64, len(xs)) } }
	for i := range xs { out[0][i] = bi.Eval(xs[i], ys[i]) }
	return out[0]
}

func (bi *BiLinear) EvalAllX(x float64, ys []float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(ys)) } }
	for i, y := range ys { out[0][i] = bi.Eval(x, y) }
	return out[0]
}

func (bi *BiLinear) EvalAllY(xs []float64, y float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(xs)) } }
	for i, x := range xs { out[0][i] = bi.Eval(x, y) }
	return out[0]
}
