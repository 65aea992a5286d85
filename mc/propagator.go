/*
package mc implements the Metropolis Monte Carlo propagator.

One trial move displaces a random particle by a random direction scaled by
the configured maximum step. The move is accepted when the energy change
is non-positive, and otherwise with probability exp(-dE/kT). Rejected
moves leave the ensemble bit-identical; they are normal outcomes, not
errors. Diverging energies from near-overlaps are handled by the same
rule: exp of a huge negative argument is zero and the move is rejected.
*/
package mc

import (
	"math"

	"github.com/lgraham-phys/mcrdf/ensemble"
	"github.com/lgraham-phys/mcrdf/geom"
	"github.com/lgraham-phys/mcrdf/potential"
	"github.com/lgraham-phys/mcrdf/rand"
)

// Pair sums with at least this many particles are fanned out across
// worker goroutines.
const parallelMin = 512

// MoveStats counts attempted and accepted trial moves. Both counters
// increase monotonically over a run.
type MoveStats struct {
	Attempted, Accepted int64
}

// AcceptanceRate returns the fraction of attempted moves accepted so far.
func (s MoveStats) AcceptanceRate() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Attempted)
}

// EnergySample is one row of the per-sample energy series: the total,
// pairwise, and confinement energy of the configuration at a given sweep.
type EnergySample struct {
	Sweep                int
	Total, Pair, Confine float64
}

// Propagator advances an Ensemble through Metropolis trial moves. All
// state a run needs, including its random generator and statistics, lives
// here explicitly so independent runs never share anything.
type Propagator struct {
	Geom    geom.Geometry
	Pair    potential.Pair
	Confine *potential.Confinement // nil under periodic boundaries
	Ens     *ensemble.Ensemble
	Gen     *rand.Generator

	// Dp is the maximum trial displacement magnitude.
	Dp float64
	// KT is the thermal energy scale.
	KT float64

	Stats MoveStats

	workers int
}

// NewPropagator creates a Propagator over the given ensemble. confine may
// be nil when the geometry imposes no walls.
func NewPropagator(
	g geom.Geometry, pair potential.Pair, confine *potential.Confinement,
	ens *ensemble.Ensemble, gen *rand.Generator, dp, kT float64,
) *Propagator {
	return &Propagator{
		Geom: g, Pair: pair, Confine: confine,
		Ens: ens, Gen: gen, Dp: dp, KT: kT,
		workers: 1,
	}
}

// SetWorkers sets the number of goroutines used for the pair-energy sum
// of a single trial move. The sum only fans out for large ensembles; the
// propagation itself stays sequential.
func (prop *Propagator) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	prop.workers = n
}

// particleEnergy returns the energy contribution of particle i sitting at
// p: its pair energy against every other particle plus its wall term.
func (prop *Propagator) particleEnergy(i int, p geom.Vec) float64 {
	xs := prop.Ens.Positions()

	var sum float64
	if prop.workers > 1 && len(xs) >= parallelMin {
		sum = prop.parallelPairSum(i, p, xs)
	} else {
		for j := range xs {
			if j == i {
				continue
			}
			sum += prop.Pair.Energy(prop.Geom.Distance(p, xs[j]))
		}
	}

	if prop.Confine != nil {
		sum += prop.Confine.Energy(p)
	}
	return sum
}

// parallelPairSum splits the pair sum across workers. Only read access to
// the position slice happens here; the reduction order is unspecified up
// to floating point associativity.
func (prop *Propagator) parallelPairSum(i int, p geom.Vec, xs []geom.Vec) float64 {
	out := make(chan float64, prop.workers)
	step := (len(xs) + prop.workers - 1) / prop.workers

	for w := 0; w < prop.workers; w++ {
		lo := w * step
		hi := lo + step
		if hi > len(xs) {
			hi = len(xs)
		}
		go func(lo, hi int) {
			part := 0.0
			for j := lo; j < hi; j++ {
				if j == i {
					continue
				}
				part += prop.Pair.Energy(prop.Geom.Distance(p, xs[j]))
			}
			out <- part
		}(lo, hi)
	}

	sum := 0.0
	for w := 0; w < prop.workers; w++ {
		sum += <-out
	}
	return sum
}

// Step performs one trial move and reports whether it was accepted.
func (prop *Propagator) Step() bool {
	n := prop.Ens.Len()
	i := prop.Gen.Index(n)
	old := prop.Ens.At(i)

	ux, uy := prop.Gen.UnitVec()
	cand := prop.Geom.Wrap(geom.Vec{old[0] + prop.Dp*ux, old[1] + prop.Dp*uy})

	eOld := prop.particleEnergy(i, old)
	eNew := prop.particleEnergy(i, cand)
	dE := eNew - eOld

	accept := dE <= 0 || prop.Gen.Uniform() < math.Exp(-dE/prop.KT)

	prop.Stats.Attempted++
	if accept {
		prop.Ens.Set(i, cand)
		prop.Stats.Accepted++
	}
	return accept
}

// Sweep performs N trial moves, one per particle on average.
func (prop *Propagator) Sweep() {
	for k := 0; k < prop.Ens.Len(); k++ {
		prop.Step()
	}
}

// Run performs the given number of sweeps, invoking sample with the
// current sweep index every sampleEvery sweeps. The hook is where
// histogram accumulation, energy sampling, and trajectory persistence
// hang off the run.
func (prop *Propagator) Run(sweeps, sampleEvery int, sample func(sweep int)) {
	for s := 1; s <= sweeps; s++ {
		prop.Sweep()
		if sample != nil && sampleEvery > 0 && s%sampleEvery == 0 {
			sample(s)
		}
	}
}

// Energies returns the total, pairwise, and confinement energy of the
// current configuration. The pairwise term sums over unordered pairs.
func (prop *Propagator) Energies() (total, pair, confine float64) {
	xs := prop.Ens.Positions()
	for i := 0; i < len(xs)-1; i++ {
		for j := i + 1; j < len(xs); j++ {
			pair += prop.Pair.Energy(prop.Geom.Distance(xs[i], xs[j]))
		}
	}
	if prop.Confine != nil {
		for i := range xs {
			confine += prop.Confine.Energy(xs[i])
		}
	}
	return pair + confine, pair, confine
}
