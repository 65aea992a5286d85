/*
package io loads simulation configurations and persists run output:
ensemble states, finalized histograms, g(r) curves, move statistics, and
energy series. Everything is plain whitespace-delimited text so external
plotting tools can consume it directly.
*/
package io

import (
	"fmt"
	"os"

	"github.com/lgraham-phys/mcrdf/geom"
	"github.com/lgraham-phys/mcrdf/mc"
	"github.com/lgraham-phys/mcrdf/rdf"

	"github.com/phil-mansfield/table"
)

// SaveEnsemble writes one "x y" row per particle.
func SaveEnsemble(fname string, xs []geom.Vec) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# x y\n")
	for _, p := range xs {
		fmt.Fprintf(f, "%.17g %.17g\n", p[0], p[1])
	}
	return nil
}

// LoadEnsemble reads positions written by SaveEnsemble.
func LoadEnsemble(fname string) ([]geom.Vec, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}

	xs := make([]geom.Vec, len(cols[0]))
	for i := range xs {
		xs[i] = geom.Vec{cols[0][i], cols[1][i]}
	}
	return xs, nil
}

// SaveHistogram writes "r density" rows for a finalized histogram.
func SaveHistogram(fname string, centers, density []float64) error {
	if len(centers) != len(density) {
		return fmt.Errorf(
			"Histogram has %d centers but %d densities.",
			len(centers), len(density),
		)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# r density\n")
	for i := range centers {
		fmt.Fprintf(f, "%.17g %.17g\n", centers[i], density[i])
	}
	return nil
}

// LoadHistogram reads rows written by SaveHistogram.
func LoadHistogram(fname string) (centers, density []float64, err error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

// SaveCurve writes "r g(r)" rows for an RDF curve.
func SaveCurve(fname string, c rdf.Curve) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# r g\n")
	for i := range c.R {
		fmt.Fprintf(f, "%.17g %.17g\n", c.R[i], c.G[i])
	}
	return nil
}

// SaveMoveStats writes the cumulative move counters and acceptance rate.
func SaveMoveStats(fname string, s mc.MoveStats) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# attempted accepted rate\n")
	fmt.Fprintf(f, "%d %d %g\n", s.Attempted, s.Accepted, s.AcceptanceRate())
	return nil
}

// SaveEnergySeries writes one "sweep total pair confinement" row per
// sample, ordered by sweep.
func SaveEnergySeries(fname string, series []mc.EnergySample) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# sweep total pair confinement\n")
	for _, s := range series {
		fmt.Fprintf(f, "%d %.17g %.17g %.17g\n",
			s.Sweep, s.Total, s.Pair, s.Confine)
	}
	return nil
}
