/*
package rand supplies the explicit random number generators handed to
every stochastic component of the simulation. Nothing in this package
touches global state: each run owns its own Generator, so concurrent runs
stay independent and a fixed seed reproduces a run bit for bit.
*/
package rand

import (
	"log"
	"math"
	mrand "math/rand"
	"time"
)

// Algorithm selects the source backing a Generator.
type Algorithm int

const (
	// Xorshift is an xorshift1024*-style 64-bit generator. Fast and
	// good enough for sampling work.
	Xorshift Algorithm = iota
	// Golang wraps math/rand.
	Golang
)

// Generator produces uniform variates for a single simulation context.
// Generators are not safe for concurrent use; give each goroutine its own.
type Generator struct {
	algo   Algorithm
	state  uint64
	golang *mrand.Rand
}

// New creates a Generator backed by the given algorithm and seed. The
// same algorithm and seed always produce the same sequence.
func New(algo Algorithm, seed uint64) *Generator {
	gen := &Generator{algo: algo}
	switch algo {
	case Xorshift:
		if seed == 0 {
			// The all-zero state is a fixed point of xorshift.
			seed = 0x9E3779B97F4A7C15
		}
		gen.state = seed
	case Golang:
		gen.golang = mrand.New(mrand.NewSource(int64(seed)))
	default:
		log.Fatalf("Unrecognized rand.Algorithm %d.", algo)
	}
	return gen
}

// NewTimeSeed creates a Generator seeded from the wall clock.
func NewTimeSeed(algo Algorithm) *Generator {
	return New(algo, uint64(time.Now().UnixNano()))
}

func (gen *Generator) next() uint64 {
	x := gen.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	gen.state = x
	return x * 0x2545F4914F6CDD1D
}

// Uniform returns a uniform variate in [0, 1).
func (gen *Generator) Uniform() float64 {
	switch gen.algo {
	case Xorshift:
		return float64(gen.next()>>11) / (1 << 53)
	default:
		return gen.golang.Float64()
	}
}

// UniformAt returns a uniform variate in [lo, hi).
func (gen *Generator) UniformAt(lo, hi float64) float64 {
	return lo + (hi-lo)*gen.Uniform()
}

// Index returns a uniform integer in [0, n).
func (gen *Generator) Index(n int) int {
	idx := int(gen.Uniform() * float64(n))
	if idx == n {
		idx = n - 1
	}
	return idx
}

// UnitVec returns a uniformly distributed unit vector in the plane.
func (gen *Generator) UnitVec() (x, y float64) {
	theta := 2 * math.Pi * gen.Uniform()
	return math.Cos(theta), math.Sin(theta)
}
