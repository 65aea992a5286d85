/*
package hist accumulates histograms of pairwise particle separations.

Two independent Hists exist per run, one fed from the Monte Carlo
trajectory and one from uncorrelated random placement. They are only ever
combined by the rdf package after both are finalized.
*/
package hist

import (
	"log"

	"github.com/lgraham-phys/mcrdf/geom"
)

// Hist is a linear-binned histogram over [Min, Max). Counts increase
// monotonically under accumulation; Finalize converts them to a
// probability density without mutating the counts.
type Hist struct {
	Min, Max float64
	Bins     int

	counts []int64
	total  int64
}

// New creates an empty histogram with the given bin range and count.
// Max must be at least the largest distance the geometry can produce,
// or tail counts will silently fall off the end.
func New(min, max float64, bins int) *Hist {
	if bins <= 0 {
		log.Fatalf("Histogram given non-positive bin count %d.", bins)
	}
	if max <= min {
		log.Fatalf("Histogram given invalid range [%g, %g).", min, max)
	}
	return &Hist{Min: min, Max: max, Bins: bins, counts: make([]int64, bins)}
}

// Add puts a single value into its bin. Values outside [Min, Max) are
// dropped.
func (h *Hist) Add(x float64) {
	dx := (h.Max - h.Min) / float64(h.Bins)
	idx := (x - h.Min) / dx
	if idx < 0 || idx >= float64(h.Bins) {
		return
	}
	h.counts[int(idx)]++
	h.total++
}

// Accumulate bins the distance of every unordered particle pair in xs
// under the geometry g. Self pairs are excluded and (i, j) is never
// counted twice.
func (h *Hist) Accumulate(g geom.Geometry, xs []geom.Vec) {
	for i := 0; i < len(xs)-1; i++ {
		for j := i + 1; j < len(xs); j++ {
			h.Add(g.Distance(xs[i], xs[j]))
		}
	}
}

// Counts returns the raw bin counts.
func (h *Hist) Counts() []int64 { return h.counts }

// Total returns the number of values binned so far.
func (h *Hist) Total() int64 { return h.total }

// Centers returns the center of every bin.
func (h *Hist) Centers() []float64 {
	dx := (h.Max - h.Min) / float64(h.Bins)
	centers := make([]float64, h.Bins)
	for i := range centers {
		centers[i] = h.Min + dx*(float64(i)+0.5)
	}
	return centers
}

// Finalize converts the accumulated counts into a probability density:
// each count is divided by the total count and the bin width, so the
// density integrates to one. The returned slices are ordered by distance.
func (h *Hist) Finalize() (centers, density []float64) {
	centers = h.Centers()
	density = make([]float64, h.Bins)
	if h.total == 0 {
		return centers, density
	}

	dx := (h.Max - h.Min) / float64(h.Bins)
	norm := 1 / (float64(h.total) * dx)
	for i, c := range h.counts {
		density[i] = float64(c) * norm
	}
	return centers, density
}
