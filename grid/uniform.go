package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

var ErrAmbiguousNonUniformity = errors.New(
	"grid: more than one plot axis non-uniform",
)

// Status describes what Uniformize did to a grid.
type Status int

const (
	NoInterpolation Status = iota
	Corrected
	Rejected
)

func (s Status) String() string {
	switch s {
	case NoInterpolation:
		return "No interpolation required within tolerance"
	case Corrected:
		return "Interpolated onto a uniform axis"
	case Rejected:
		return "More than one plot axis non-uniform, please choose a " +
			"different plot option"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Axis identifies one of the two plane axes of a Grid.
type Axis int

const (
	NoAxis Axis = iota
	XAxis
	YAxis
)

func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	}
	return "none"
}

// Uniformized is the result of a call to Uniformize.
type Uniformized struct {
	// Grid is nil if Status is Rejected.
	Grid *Grid
	// Axis is the axis which was resampled, if any.
	Axis Axis
	// Interval is the spacing of the resampled axis. If nothing was
	// resampled, it is the interval passed to Uniformize.
	Interval float64
	Status Status
}

// Uniformize checks whether the x and y axes of g are uniform to within a
// tolerance of tol percent (see IsUniform). If exactly one of them isn't, that
// axis is replaced by a uniform axis spanning the same range and every line of
// values along it is linearly interpolated onto the new axis.
//
// If interval is zero, the new axis spacing is chosen to be the smallest
// spacing on the old axis. Otherwise the spacing will be as close to interval
// as is possible while still hitting both end points.
//
// If both axes are non-uniform, the returned Status is Rejected and the error
// wraps ErrAmbiguousNonUniformity. g is never modified.
func Uniformize(g *Grid, tol, interval float64) (*Uniformized, error) {
	if err := g.Check(); err != nil {
		return nil, err
	} else if tol < 0 || math.IsNaN(tol) {
		return nil, fmt.Errorf("Non-uniformity tolerance %g is negative.", tol)
	} else if interval < 0 || math.IsNaN(interval) {
		return nil, fmt.Errorf("Interpolation interval %g is negative.", interval)
	}

	interpX, interpY := !IsUniform(g.Xs, tol), !IsUniform(g.Ys, tol)

	if !interpX && !interpY {
		return &Uniformized{
			Grid: g, Axis: NoAxis, Interval: interval, Status: NoInterpolation,
		}, nil
	} else if interpX && interpY {
		return &Uniformized{
			Axis: NoAxis, Interval: interval, Status: Rejected,
		}, fmt.Errorf(
			"%w: x and y both exceed a tolerance of %g%%",
			ErrAmbiguousNonUniformity, tol,
		)
	}

	out := g.Copy()

	// The corrected axis is treated as the middle index of a
	// [outer, axis, inner] array.
	var (
		ax []float64
		axis Axis
		outer, inner int
	)
	if interpX {
		ax, axis = out.Xs, XAxis
		outer, inner = out.Layers() * out.Ny(), 1
	} else {
		ax, axis = out.Ys, YAxis
		outer, inner = out.Layers(), out.Nx()
	}

	// Interpolation needs increasing values.
	flipped := ax[1] < ax[0]
	if flipped {
		floats.Reverse(ax)
		reverseAxis(out.Vals, outer, len(ax), inner)
	}

	if interval == 0 { interval = MinSpacing(ax) }
	span := ax[len(ax) - 1] - ax[0]
	n := int(math.RoundToEven(span / interval)) + 1
	if n < 2 { n = 2 }

	newAx := floats.Span(make([]float64, n), ax[0], ax[len(ax) - 1])
	newAx[n - 1] = ax[len(ax) - 1]
	interval = newAx[1] - newAx[0]

	vals, err := resampleAxis(out.Vals, outer, ax, inner, newAx)
	if err != nil { return nil, err }

	if flipped {
		floats.Reverse(newAx)
		reverseAxis(vals, outer, n, inner)
	}

	if axis == XAxis {
		out.Xs = newAx
	} else {
		out.Ys = newAx
	}
	out.Vals = vals

	return &Uniformized{
		Grid: out, Axis: axis, Interval: interval, Status: Corrected,
	}, nil
}

// resampleAxis interpolates every line of vals, viewed as an
// [outer, len(ax), inner] array, from the points ax to the points newAx. ax
// must be strictly increasing. Values past the ends of ax are clamped.
func resampleAxis(
	vals []float64, outer int, ax []float64, inner int, newAx []float64,
) ([]float64, error) {
	n, m := len(ax), len(newAx)
	out := make([]float64, outer * m * inner)
	line := make([]float64, n)
	pl := interp.PiecewiseLinear{}

	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			for a := 0; a < n; a++ {
				line[a] = vals[(o*n + a)*inner + in]
			}

			if err := pl.Fit(ax, line); err != nil {
				return nil, fmt.Errorf("Could not fit line %d: %w", o*inner + in, err)
			}

			for b, x := range newAx {
				out[(o*m + b)*inner + in] = pl.Predict(x)
			}
		}
	}

	return out, nil
}

// reverseAxis reverses vals in place along the middle index of an
// [outer, n, inner] array.
func reverseAxis(vals []float64, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			for a, b := 0, n - 1; a < b; a, b = a + 1, b - 1 {
				ia, ib := (o*n + a)*inner + in, (o*n + b)*inner + in
				vals[ia], vals[ib] = vals[ib], vals[ia]
			}
		}
	}
}
