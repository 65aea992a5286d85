/*
package geom contains the box geometries used by the simulation.

A Geometry fixes what "distance" means inside a square box. The same
Geometry value must back pair-energy evaluation, histogram accumulation,
and the ideal-gas reference: mixing distance conventions between them is
a correctness bug.
*/
package geom

import (
	"math"
)

// Vec is a two dimensional position vector.
type Vec [2]float64

// Geometry is a square box of side L together with a boundary policy.
type Geometry interface {
	// Distance returns the separation between p and q under the
	// geometry's boundary rule.
	Distance(p, q Vec) float64
	// MaxDistance returns the largest value Distance can return for
	// points inside the box.
	MaxDistance() float64
	// Width returns the box side length, L.
	Width() float64
	// Contains reports whether p lies within [-L/2, L/2) on both axes.
	Contains(p Vec) bool
	// Wrap maps p onto the box. Under periodic boundaries each
	// coordinate is wrapped into [-L/2, L/2); otherwise p is returned
	// unchanged.
	Wrap(p Vec) Vec
}

// Periodic is a box with periodic boundaries. Distances follow the
// minimum-image convention: each axis delta is wrapped to the shortest
// equivalent separation, so no distance exceeds L/sqrt(2).
type Periodic struct {
	L float64
}

func (g Periodic) Distance(p, q Vec) float64 {
	sum := 0.0
	for k := 0; k < 2; k++ {
		delta := p[k] - q[k]
		if delta > g.L/2 {
			delta -= g.L
		} else if delta < -g.L/2 {
			delta += g.L
		}
		sum += delta * delta
	}
	return math.Sqrt(sum)
}

func (g Periodic) MaxDistance() float64 { return g.L / math.Sqrt2 }
func (g Periodic) Width() float64       { return g.L }

func (g Periodic) Contains(p Vec) bool { return contains(g.L, p) }

func (g Periodic) Wrap(p Vec) Vec {
	for k := 0; k < 2; k++ {
		for p[k] >= g.L/2 {
			p[k] -= g.L
		}
		for p[k] < -g.L/2 {
			p[k] += g.L
		}
	}
	return p
}

// Confined is a box with hard walls. Distances are plain Euclidean norms
// and no wrapping occurs: boundary enforcement is delegated to a one-body
// confinement potential acting per particle.
type Confined struct {
	L float64
}

func (g Confined) Distance(p, q Vec) float64 {
	dx, dy := p[0]-q[0], p[1]-q[1]
	return math.Sqrt(dx*dx + dy*dy)
}

func (g Confined) MaxDistance() float64 { return g.L * math.Sqrt2 }
func (g Confined) Width() float64       { return g.L }

func (g Confined) Contains(p Vec) bool { return contains(g.L, p) }

func (g Confined) Wrap(p Vec) Vec { return p }

func contains(L float64, p Vec) bool {
	for k := 0; k < 2; k++ {
		if p[k] < -L/2 || p[k] >= L/2 {
			return false
		}
	}
	return true
}
