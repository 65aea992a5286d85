package mc

import (
	"math"
	"testing"

	"github.com/lgraham-phys/mcrdf/ensemble"
	"github.com/lgraham-phys/mcrdf/geom"
	"github.com/lgraham-phys/mcrdf/potential"
	"github.com/lgraham-phys/mcrdf/rand"
)

// separation is a pair potential equal to the separation itself. Under a
// vanishing temperature it turns the Metropolis rule deterministic: a
// move is accepted iff it does not increase any pair distance sum.
type separation struct{}

func (separation) Energy(r float64) float64 { return r }

func TestZeroPotentialAlwaysAccepts(t *testing.T) {
	g := geom.Periodic{L: 10}
	gen := rand.New(rand.Xorshift, 11)
	ens := ensemble.NewUniform(gen, 20, g)
	prop := NewPropagator(g, potential.Zero{}, nil, ens, gen, 0.5, 1)

	sweeps := 50
	prop.Run(sweeps, 0, nil)

	if prop.Stats.Attempted != int64(sweeps*20) {
		t.Errorf("Attempted = %d, expected %d.",
			prop.Stats.Attempted, sweeps*20)
	}
	// dE = 0 for every move, and dE <= 0 must always accept.
	if prop.Stats.Accepted != prop.Stats.Attempted {
		t.Errorf("Zero potential rejected %d moves.",
			prop.Stats.Attempted-prop.Stats.Accepted)
	}
}

func TestRejectedMoveLeavesEnsembleUntouched(t *testing.T) {
	g := geom.Confined{L: 10}
	gen := rand.New(rand.Xorshift, 7)
	ens := ensemble.NewUniform(gen, 8, g)
	// kT ~ 0: every energy increase is rejected.
	prop := NewPropagator(g, separation{}, nil, ens, gen, 0.5, 1e-300)

	rejected := 0
	for k := 0; k < 2000; k++ {
		before := ens.Copy()
		if !prop.Step() {
			rejected++
			after := ens.Positions()
			for i := range after {
				if after[i] != before[i] {
					t.Fatalf("Rejected move mutated particle %d: %v -> %v.",
						i, before[i], after[i])
				}
			}
		}
	}
	if rejected == 0 {
		t.Fatal("Expected some rejections under kT ~ 0.")
	}
}

func TestColdAcceptanceIsDownhill(t *testing.T) {
	g := geom.Confined{L: 10}
	gen := rand.New(rand.Xorshift, 13)
	ens := ensemble.NewUniform(gen, 6, g)
	prop := NewPropagator(g, separation{}, nil, ens, gen, 0.3, 1e-300)

	energy := func() float64 {
		total, _, _ := prop.Energies()
		return total
	}

	prev := energy()
	for k := 0; k < 2000; k++ {
		accepted := prop.Step()
		cur := energy()
		if accepted && cur > prev+1e-9 {
			t.Fatalf("Accepted uphill move at kT ~ 0: %g -> %g.", prev, cur)
		}
		if !accepted && cur != prev {
			t.Fatalf("Rejected move changed energy: %g -> %g.", prev, cur)
		}
		prev = cur
	}
}

func TestAttemptedCountsSweeps(t *testing.T) {
	g := geom.Periodic{L: 5}
	gen := rand.New(rand.Xorshift, 3)
	ens := ensemble.NewUniform(gen, 13, g)
	prop := NewPropagator(g, potential.Zero{}, nil, ens, gen, 0.1, 1)

	samples := 0
	prop.Run(40, 10, func(sweep int) {
		samples++
		if sweep%10 != 0 {
			t.Errorf("Sample hook fired at sweep %d.", sweep)
		}
	})

	if prop.Stats.Attempted != 40*13 {
		t.Errorf("Attempted = %d, expected %d.", prop.Stats.Attempted, 40*13)
	}
	if prop.Stats.Accepted > prop.Stats.Attempted {
		t.Errorf("Accepted exceeds attempted.")
	}
	if samples != 4 {
		t.Errorf("Expected 4 samples, got %d.", samples)
	}
}

func TestConfinementHoldsParticles(t *testing.T) {
	// Strongly repulsive particles in a confined box stay inside the
	// inset walls up to thermal noise.
	L, sigma := 600.0, 53.0
	g := geom.Confined{L: L}
	pair := potential.RepulsionR3{Prefactor: 1e6, Epsilon: 10, Sigma: sigma}
	confine := &potential.Confinement{Width: L, Stiffness: 100, Inset: sigma}

	gen := rand.New(rand.Xorshift, 29)
	bound := confine.Bound()
	xs := make([]geom.Vec, 55)
	for i := range xs {
		xs[i] = geom.Vec{
			gen.UniformAt(-bound, bound), gen.UniformAt(-bound, bound),
		}
	}
	ens := ensemble.New(xs)
	prop := NewPropagator(g, pair, confine, ens, gen, 10, 1)

	prop.Run(3000, 0, nil)

	// At kT = 1 and k = 100 an excursion of 2 units costs 400 kT, so no
	// particle should sit meaningfully past the wall.
	slack := 2.0
	for i, p := range ens.Positions() {
		for k := 0; k < 2; k++ {
			if math.Abs(p[k]) > bound+slack {
				t.Errorf("Particle %d at %v escaped the walls.", i, p)
			}
		}
	}
}

func TestParallelPairSumMatchesSerial(t *testing.T) {
	g := geom.Periodic{L: 50}
	gen := rand.New(rand.Xorshift, 17)
	ens := ensemble.NewUniform(gen, 600, g)
	pair := potential.RepulsionR3{Prefactor: 1, Epsilon: 1, Sigma: 0.5}

	prop := NewPropagator(g, pair, nil, ens, gen, 0.1, 1)

	p := ens.At(0)
	serial := prop.particleEnergy(0, p)
	prop.SetWorkers(4)
	parallel := prop.particleEnergy(0, p)

	if math.Abs(serial-parallel) > math.Abs(serial)*1e-9 {
		t.Errorf("Parallel sum %g differs from serial %g.", parallel, serial)
	}
}

func TestEnergiesSplit(t *testing.T) {
	g := geom.Confined{L: 10}
	confine := &potential.Confinement{Width: 10, Stiffness: 2, Inset: 1}
	// Two particles: one inside, one a unit past the wall on one axis.
	ens := ensemble.New([]geom.Vec{{0, 0}, {5, 0}})
	gen := rand.New(rand.Xorshift, 1)
	prop := NewPropagator(g, separation{}, confine, ens, gen, 0.1, 1)

	total, pair, conf := prop.Energies()
	if pair != 5 {
		t.Errorf("Pair energy = %g, expected 5.", pair)
	}
	if conf != 2 {
		t.Errorf("Confinement energy = %g, expected 2.", conf)
	}
	if total != pair+conf {
		t.Errorf("Total %g != pair %g + confinement %g.", total, pair, conf)
	}
}
