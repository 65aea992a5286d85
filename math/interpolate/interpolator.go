package interpolate

// Interpolator is a 1D interpolator over a fixed table of points.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
	// Range returns the interval of x values the interpolator covers.
	// Eval outside that interval is an error.
	Range() (lo, hi float64)
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Monotone{}
)
