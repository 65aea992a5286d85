/*
package rdf derives the radial distribution function g(r) from a
sampled pair-distance histogram and an uncorrelated reference histogram
generated under the same box geometry.

The reference isolates the purely geometric pair correlation (boundary
truncation, minimum-image folding), so the ratio of the two densities
leaves only the physical structure. For a correct, long enough run of a
homogeneous interior g(r) tends to one at large r.
*/
package rdf

import (
	"math"

	"github.com/lgraham-phys/mcrdf/geom"
	"github.com/lgraham-phys/mcrdf/hist"
	"github.com/lgraham-phys/mcrdf/math/interpolate"
	"github.com/lgraham-phys/mcrdf/potential"
	"github.com/lgraham-phys/mcrdf/rand"
)

// Ideal builds the ideal-gas reference histogram: samples configurations
// of m particles placed uniformly at random in the box of g, with the
// pairwise distances binned exactly as the observed histogram bins them,
// under the same boundary distance rule. No interactions are involved.
func Ideal(gen *rand.Generator, g geom.Geometry, m, samples, bins int) *hist.Hist {
	h := hist.New(0, g.MaxDistance(), bins)
	L := g.Width()

	xs := make([]geom.Vec, m)
	for s := 0; s < samples; s++ {
		for i := range xs {
			xs[i] = geom.Vec{
				gen.UniformAt(-L/2, L/2), gen.UniformAt(-L/2, L/2),
			}
		}
		h.Accumulate(g, xs)
	}
	return h
}

// Curve is an ordered sequence of (R, G) samples of g(r) on a common
// distance grid.
type Curve struct {
	R, G []float64
}

// Compute divides the observed pair-distance density by the ideal one.
// Both histograms are finalized and evaluated on a shared uniform grid of
// gridN points over [0, rMax] with monotone interpolation, since the two
// were binned independently and need not share bin edges. Grid points
// outside a histogram's sampled range extrapolate to zero, and 0/0 at the
// tails yields g = 0 rather than NaN.
func Compute(obs, ideal *hist.Hist, gridN int, rMax float64) Curve {
	obsC, obsD := obs.Finalize()
	idealC, idealD := ideal.Finalize()
	return divide(obsC, obsD, idealC, idealD, gridN, rMax)
}

func divide(obsC, obsD, idealC, idealD []float64, gridN int, rMax float64) Curve {
	obsIn := interpolate.NewMonotone(obsC, obsD)
	idealIn := interpolate.NewMonotone(idealC, idealD)

	c := Curve{
		R: make([]float64, gridN),
		G: make([]float64, gridN),
	}
	for i := 0; i < gridN; i++ {
		r := rMax * float64(i) / float64(gridN-1)
		c.R[i] = r

		num := evalOrZero(obsIn, r)
		den := evalOrZero(idealIn, r)

		g := num / den
		if math.IsNaN(g) || math.IsInf(g, 0) {
			g = 0
		}
		c.G[i] = g
	}
	return c
}

// evalOrZero evaluates in at r, extrapolating to zero outside the range
// covered by the source histogram's bin centers. Interpolation can dip
// microscopically below zero at density edges; densities are never
// negative, so such values clamp to zero.
func evalOrZero(in interpolate.Interpolator, r float64) float64 {
	lo, hi := in.Range()
	if r < lo || r > hi {
		return 0
	}
	v := in.Eval(r)
	if v < 0 {
		return 0
	}
	return v
}

// MeanEnergy estimates the mean pair interaction energy per particle,
//
//	rho/2 * Int 2 pi r u(r) g(r) dr,
//
// by trapezoid quadrature over the curve's grid, with the integrand
// refined through a cubic spline over r where g is smooth. rho is the
// particle number density. This is a downstream convenience, not part of
// the core pipeline's guarantees.
func MeanEnergy(c Curve, pair potential.Pair, rho float64) float64 {
	if len(c.R) < 2 {
		return 0
	}

	// Spline g(r) so the quadrature can use a finer grid than the curve.
	sp := interpolate.NewSpline(c.R, c.G)
	lo, hi := sp.Range()

	const quadN = 4096
	sum := 0.0
	prev := 0.0
	prevR := lo
	for i := 0; i < quadN; i++ {
		r := lo + (hi-lo)*float64(i)/float64(quadN-1)
		g := sp.Eval(r)
		f := 0.0
		// u diverges as r -> 0; where g vanishes the integrand carries
		// no weight, so skip it before u(r) turns the product into NaN.
		if g > 0 && r > 0 {
			f = 2 * math.Pi * r * pair.Energy(r) * g
		}
		if i > 0 {
			sum += (f + prev) / 2 * (r - prevR)
		}
		prev, prevR = f, r
	}
	return rho / 2 * sum
}
