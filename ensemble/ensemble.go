// package ensemble holds the mutable particle configuration of a run.
package ensemble

import (
	"github.com/lgraham-phys/mcrdf/geom"
	"github.com/lgraham-phys/mcrdf/rand"
)

// Ensemble is an ordered set of particle positions. Its size is fixed for
// the lifetime of a simulation; the propagator mutates positions in place.
// It owns no physics.
type Ensemble struct {
	xs []geom.Vec
}

// New wraps an existing position slice, e.g. one loaded from a state file.
// The slice is owned by the Ensemble afterwards.
func New(xs []geom.Vec) *Ensemble {
	return &Ensemble{xs}
}

// NewUniform places n particles uniformly at random inside the box of g.
func NewUniform(gen *rand.Generator, n int, g geom.Geometry) *Ensemble {
	L := g.Width()
	xs := make([]geom.Vec, n)
	for i := range xs {
		xs[i] = geom.Vec{gen.UniformAt(-L/2, L/2), gen.UniformAt(-L/2, L/2)}
	}
	return &Ensemble{xs}
}

// Len returns the particle count, N.
func (e *Ensemble) Len() int { return len(e.xs) }

// Positions returns the live position slice. Callers other than the
// propagator must treat it as read only.
func (e *Ensemble) Positions() []geom.Vec { return e.xs }

// At returns the position of particle i.
func (e *Ensemble) At(i int) geom.Vec { return e.xs[i] }

// Set moves particle i to p.
func (e *Ensemble) Set(i int, p geom.Vec) { e.xs[i] = p }

// Copy returns a snapshot of the current positions.
func (e *Ensemble) Copy() []geom.Vec {
	out := make([]geom.Vec, len(e.xs))
	copy(out, e.xs)
	return out
}
