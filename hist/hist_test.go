package hist

import (
	"math"
	"testing"

	"github.com/lgraham-phys/mcrdf/geom"
)

func TestAddBinning(t *testing.T) {
	h := New(0, 10, 10)

	table := []struct {
		x   float64
		bin int
	}{
		{0, 0}, {0.5, 0}, {0.999, 0}, {1, 1}, {5.5, 5}, {9.999, 9},
	}
	for _, test := range table {
		h.Add(test.x)
		if h.Counts()[test.bin] == 0 {
			t.Errorf("Add(%g) did not land in bin %d.", test.x, test.bin)
		}
	}

	// Out of range values are dropped.
	before := h.Total()
	h.Add(-0.1)
	h.Add(10)
	h.Add(11)
	if h.Total() != before {
		t.Errorf("Out-of-range values were counted.")
	}
}

func TestAccumulatePairCount(t *testing.T) {
	g := geom.Confined{L: 10}
	xs := []geom.Vec{{0, 0}, {1, 0}, {0, 2}, {3, 3}}

	h := New(0, g.MaxDistance(), 20)
	h.Accumulate(g, xs)

	// C(4, 2) unordered pairs, no self pairs, no double counting.
	if h.Total() != 6 {
		t.Errorf("Expected 6 pair counts, got %d.", h.Total())
	}
}

func TestAccumulateUsesGeometryDistance(t *testing.T) {
	// Two particles at (0,0) and (6,0) in a periodic box of width 10 are
	// 4 apart, not 6.
	g := geom.Periodic{L: 10}
	xs := []geom.Vec{{0, 0}, {6, 0}}

	h := New(0, g.MaxDistance(), 7)
	h.Accumulate(g, xs)

	dx := g.MaxDistance() / 7
	wrappedBin := int(4.0 / dx)
	if h.Counts()[wrappedBin] != 1 {
		t.Errorf("Wrapped distance 4 not binned; counts = %v.", h.Counts())
	}
}

func TestFinalizeDensity(t *testing.T) {
	h := New(0, 5, 25)
	for x := 0.1; x < 5; x += 0.013 {
		h.Add(x)
	}

	centers, density := h.Finalize()
	if len(centers) != 25 || len(density) != 25 {
		t.Fatalf("Finalize returned %d centers, %d densities.",
			len(centers), len(density))
	}

	dx := 5.0 / 25
	sum := 0.0
	for _, d := range density {
		sum += d * dx
	}
	if math.Abs(sum-1) > 1e-10 {
		t.Errorf("Density integrates to %g, expected 1.", sum)
	}

	for i, c := range centers {
		want := dx * (float64(i) + 0.5)
		if math.Abs(c-want) > 1e-10 {
			t.Errorf("Bin %d center = %g, expected %g.", i, c, want)
		}
	}
}

func TestFinalizeEmpty(t *testing.T) {
	h := New(0, 1, 4)
	_, density := h.Finalize()
	for i, d := range density {
		if d != 0 {
			t.Errorf("Empty histogram has density %g in bin %d.", d, i)
		}
	}
}
