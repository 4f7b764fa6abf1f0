package interpolate

// BiInterpolator interpolates values sampled on a 2D grid.
type BiInterpolator interface {
	Eval(x, y float64) float64
	EvalAll(xs, ys []float64, out ...[]float64) []float64

	EvalAllX(x float64, ys []float64, out ...[]float64) []float64
	EvalAllY(xs []float64, y float64, out ...[]float64) []float64
}

var (
	_ BiInterpolator = &BiLinear{}
)
