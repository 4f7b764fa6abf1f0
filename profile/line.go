/*
Package profile resamples gridded data along line segments in the x-y plane.

Every function here is a pure function of its arguments: the current line and
any selection state belong to the caller, which passes them in fresh each time
it wants a new profile.
*/
package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/gridslice/grid"
)

// Line is a segment running from (X0, Y0) to (X1, Y1). The two end points may
// coincide.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// DefaultLine returns the line which cuts horizontally across the middle of g,
// from its first x value to its last.
func DefaultLine(g *grid.Grid) Line {
	ymid := (g.Ys[0] + g.Ys[len(g.Ys) - 1]) / 2
	return Line{g.Xs[0], ymid, g.Xs[len(g.Xs) - 1], ymid}
}

// Check returns an error if either end point is not finite.
func (l Line) Check() error {
	for _, v := range []float64{l.X0, l.Y0, l.X1, l.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf(
				"Line (%g, %g) -> (%g, %g) has a non-finite end point.",
				l.X0, l.Y0, l.X1, l.Y1,
			)
		}
	}
	return nil
}

// Len returns the length of the line.
func (l Line) Len() float64 { return math.Hypot(l.X1 - l.X0, l.Y1 - l.Y0) }

// Samples returns the number of points needed to sample l at least as finely
// as the finer of the two axes, xs and ys. Lines with distinct end points
// always get both of them.
func Samples(xs, ys []float64, l Line) int {
	nx := steps(l.X1 - l.X0, grid.MinSpacing(xs))
	ny := steps(l.Y1 - l.Y0, grid.MinSpacing(ys))

	n := ny
	if nx > ny { n = nx }
	if n == 1 && (l.X0 != l.X1 || l.Y0 != l.Y1) { n = 2 }
	return n
}

func steps(d, dx float64) int {
	if dx == 0 { return 1 }
	return int(math.Floor(math.Abs(d) / dx)) + 1
}

// Coords returns the evenly spaced points (px[i], py[i]) which l is sampled at
// and the distance of each point from the start of the line, rs[i]. The
// number of points is given by Samples.
func Coords(xs, ys []float64, l Line) (px, py, rs []float64) {
	n := Samples(xs, ys, l)
	px, py = linspace(l.X0, l.X1, n), linspace(l.Y0, l.Y1, n)

	rs = make([]float64, n)
	for i := range rs {
		rs[i] = math.Hypot(px[i] - l.X0, py[i] - l.Y0)
	}

	return px, py, rs
}

// linspace returns n evenly spaced points from lo to hi inclusive. If n is 1,
// only lo is returned.
func linspace(lo, hi float64, n int) []float64 {
	if n == 1 { return []float64{lo} }
	out := floats.Span(make([]float64, n), lo, hi)
	out[n - 1] = hi
	return out
}

// Selector turns pairs of clicks into lines. The first click of a pair starts
// a new line and the second finishes it.
type Selector struct {
	line Line
	selecting bool
}

// NewSelector creates a Selector whose current line is initial.
func NewSelector(initial Line) *Selector {
	return &Selector{line: initial}
}

// Click registers a click at (x, y). If the click completes a line, that line
// is returned along with true.
func (s *Selector) Click(x, y float64) (Line, bool) {
	if s.selecting {
		s.selecting = false
		s.line.X1, s.line.Y1 = x, y
		return s.line, true
	}

	s.selecting = true
	s.line.X0, s.line.Y0 = x, y
	return s.line, false
}

// Selecting returns true if a line has been started but not finished.
func (s *Selector) Selecting() bool { return s.selecting }

// Line returns the current line. While a selection is in progress, only its
// start point has been updated.
func (s *Selector) Line() Line { return s.line }
