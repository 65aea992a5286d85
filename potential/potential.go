/*
package potential contains the pair and one-body potentials driving the
Monte Carlo propagator. The propagator is generic over the Pair capability,
so trivial potentials can be substituted without touching the engine.
*/
package potential

import (
	"math"

	"github.com/lgraham-phys/mcrdf/geom"
)

// Pair is a stateless pair potential: the energy of two particles at
// separation r. Implementations may diverge as r -> 0; the Metropolis
// rule handles the resulting huge energies by rejection, so no
// implementation should special-case small r.
type Pair interface {
	Energy(r float64) float64
}

// RepulsionR3 is a dipolar 1/r^3 repulsion with a short-range
// (sigma/r)^12 core,
//
//	u(r) = C/r^3 + epsilon*(sigma/r)^12.
//
// Both terms are positive and monotonically decreasing for r > 0.
type RepulsionR3 struct {
	// Prefactor is the dipole term constant C.
	Prefactor float64
	// Epsilon scales the short-range repulsion.
	Epsilon float64
	// Sigma is the particle diameter.
	Sigma float64
}

func (p RepulsionR3) Energy(r float64) float64 {
	sr := p.Sigma / r
	sr3 := sr * sr * sr
	sr12 := sr3 * sr3 * sr3 * sr3
	return p.Prefactor/(r*r*r) + p.Epsilon*sr12
}

// Zero is the non-interacting pair potential.
type Zero struct{}

func (Zero) Energy(r float64) float64 { return 0 }

// Confinement is the one-body wall potential used by the confined
// geometry. Each axis contributes zero while the coordinate lies inside
// [-L/2+inset, L/2-inset] and a harmonic penalty beyond it.
type Confinement struct {
	// Width is the box side length, L.
	Width float64
	// Stiffness is the harmonic wall constant, k.
	Stiffness float64
	// Inset is the margin between wall and box edge, equal to the
	// particle radius scale sigma.
	Inset float64
}

// Energy returns the wall energy of a particle at p. The two axes are
// evaluated independently.
func (c Confinement) Energy(p geom.Vec) float64 {
	bound := c.Width/2 - c.Inset
	sum := 0.0
	for k := 0; k < 2; k++ {
		if over := math.Abs(p[k]) - bound; over > 0 {
			sum += c.Stiffness * over * over
		}
	}
	return sum
}

// Bound returns the largest coordinate magnitude with zero wall energy.
func (c Confinement) Bound() float64 { return c.Width/2 - c.Inset }
