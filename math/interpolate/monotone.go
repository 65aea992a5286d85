package interpolate

import (
	"log"
	"math"
)

// Monotone is a shape-preserving piecewise cubic Hermite interpolator
// using the Fritsch-Carlson tangent limiter. Unlike Spline it introduces
// no overshoot between points: data that is monotone stays monotone and
// data that is non-negative stays non-negative. This is the interpolator
// used to put independently binned histograms onto a common grid.
type Monotone struct {
	xs, ys, ms []float64

	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
}

// NewMonotone creates a monotone cubic interpolator from a table of x and
// y values. The x values must be sorted in strictly increasing order.
func NewMonotone(xs, ys []float64) *Monotone {
	if len(xs) != len(ys) {
		log.Fatalf(
			"Table given to NewMonotone() has len(xs) = %d but len(ys) = %d.",
			len(xs), len(ys),
		)
	} else if len(xs) <= 1 {
		log.Fatalf("Table given to NewMonotone() has length of %d.", len(xs))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			log.Fatal("Table given to NewMonotone() not strictly increasing.")
		}
	}

	m := new(Monotone)
	m.xs = make([]float64, len(xs))
	m.ys = make([]float64, len(ys))
	copy(m.xs, xs)
	copy(m.ys, ys)
	m.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)

	m.calcTangents()
	return m
}

// Eval computes the value of the interpolant at the given point.
//
// x must be within the range of x values given to NewMonotone().
func (m *Monotone) Eval(x float64) float64 {
	if x < m.xs[0] || x > m.xs[len(m.xs)-1] {
		log.Fatalf("Point %g given to Monotone.Eval() out of bounds [%g, %g].",
			x, m.xs[0], m.xs[len(m.xs)-1])
	}

	i := m.bsearch(x)
	h := m.xs[i+1] - m.xs[i]
	t := (x - m.xs[i]) / h

	// Cubic Hermite basis.
	t2, t3 := t*t, t*t*t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*m.ys[i] + h10*h*m.ms[i] + h01*m.ys[i+1] + h11*h*m.ms[i+1]
}

// EvalAll evaluates the interpolant at all the given points. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (m *Monotone) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = m.Eval(x)
	}
	return out[0]
}

// Range returns the interval of x values covered by the interpolant.
func (m *Monotone) Range() (lo, hi float64) {
	return m.xs[0], m.xs[len(m.xs)-1]
}

// bsearch returns the index of the largest element in xs which is smaller
// than x.
func (m *Monotone) bsearch(x float64) int {
	guess := int((x - m.xs[0]) / m.dx)
	if guess >= 0 && guess < len(m.xs)-1 &&
		m.xs[guess] <= x && m.xs[guess+1] >= x {

		return guess
	}

	lo, hi := 0, len(m.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= m.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	if lo == len(m.xs)-1 {
		lo = len(m.xs) - 2
	}
	return lo
}

// calcTangents computes the Fritsch-Carlson limited tangent at every
// table point.
func (m *Monotone) calcTangents() {
	n := len(m.xs)
	m.ms = make([]float64, n)

	// Secant slopes between neighboring points.
	ds := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		ds[i] = (m.ys[i+1] - m.ys[i]) / (m.xs[i+1] - m.xs[i])
	}

	m.ms[0], m.ms[n-1] = ds[0], ds[n-2]
	for i := 1; i < n-1; i++ {
		if ds[i-1]*ds[i] <= 0 {
			// Local extremum: flat tangent preserves the shape.
			m.ms[i] = 0
		} else {
			m.ms[i] = (ds[i-1] + ds[i]) / 2
		}
	}

	// Limit the tangents so no interval overshoots its secant.
	for i := 0; i < n-1; i++ {
		if ds[i] == 0 {
			m.ms[i], m.ms[i+1] = 0, 0
			continue
		}
		alpha := m.ms[i] / ds[i]
		beta := m.ms[i+1] / ds[i]
		if s := alpha*alpha + beta*beta; s > 9 {
			tau := 3 / math.Sqrt(s)
			m.ms[i] = tau * alpha * ds[i]
			m.ms[i+1] = tau * beta * ds[i]
		}
	}
}
