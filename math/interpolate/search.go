package interpolate

import (
	"fmt"
	"math"
)

// searcher finds the cell containing a point on a strictly increasing or
// strictly decreasing axis.
type searcher struct {
	xs []float64
	x0, dx, lim float64
	lo, hi float64
	n int
	incr bool
}

func (s *searcher) init(xs []float64) {
	if len(xs) == 0 { panic("Axis given to searcher has length 0.") }

	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs) - 1]
	s.n = len(xs)
	if s.n > 1 {
		s.dx = (s.lim - s.x0) / float64(len(xs) - 1)
	} else {
		s.dx = 0
	}
	s.incr = s.dx >= 0
	s.lo, s.hi = math.Min(s.x0, s.lim), math.Max(s.x0, s.lim)
}

// clamp moves x onto the closest point of the axis range.
func (s *searcher) clamp(x float64) float64 {
	if x < s.lo { return s.lo }
	if x > s.hi { return s.hi }
	return x
}

// search returns the index i of the cell [xs[i], xs[i+1]] which contains x.
// The x must already be clamped. Axes of length 1 always return 0.
func (s *searcher) search(x float64) int {
	if x < s.lo || x > s.hi {
		panic(fmt.Sprintf(
			"Value %g out of range bounds [%g, %g]", x, s.lo, s.hi,
		))
	}
	if s.n == 1 { return 0 }

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess == s.n - 1 { guess-- }
	if guess >= 0 && guess < s.n - 1 && s.contains(guess, x) {
		return guess
	}

	// Binary search.
	lo, hi := 0, s.n - 1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.incr == (x >= s.xs[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

func (s *searcher) contains(i int, x float64) bool {
	if s.incr { return s.xs[i] <= x && x <= s.xs[i+1] }
	return s.xs[i] >= x && x >= s.xs[i+1]
}

// weight returns the cell index of x and the fractional distance of x from the
// cell's lower-index edge. Out of range values are clamped.
func (s *searcher) weight(x float64) (i int, t float64) {
	x = s.clamp(x)
	i = s.search(x)
	if s.n == 1 { return 0, 0 }
	x1, x2 := s.xs[i], s.xs[i+1]
	return i, (x - x1) / (x2 - x1)
}

// Nearest returns the index of the element of xs closest to x. ok is false if
// x lies more than half a cell outside the range of xs. Single-element axes
// accept every x. xs must be strictly monotonic.
func Nearest(xs []float64, x float64) (idx int, ok bool) {
	s := &searcher{}
	s.init(xs)
	if s.n == 1 { return 0, true }

	half := math.Abs(s.dx) / 2
	if x < s.lo - half || x > s.hi + half { return 0, false }

	i, t := s.weight(x)
	if t > 0.5 { return i + 1, true }
	return i, true
}
