package io

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/lgraham-phys/mcrdf/geom"
	"github.com/lgraham-phys/mcrdf/mc"
	"github.com/lgraham-phys/mcrdf/rand"

	"github.com/stretchr/testify/assert"

	"gopkg.in/gcfg.v1"
)

func TestEnsembleRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "mcrdf_io_test")
	if err != nil {
		t.Fatal(err.Error())
	}
	defer os.RemoveAll(dir)

	gen := rand.New(rand.Xorshift, 4)
	xs := make([]geom.Vec, 100)
	for i := range xs {
		xs[i] = geom.Vec{gen.UniformAt(-300, 300), gen.UniformAt(-300, 300)}
	}

	fname := path.Join(dir, "state.dat")
	if err := SaveEnsemble(fname, xs); err != nil {
		t.Fatal(err.Error())
	}

	loaded, err := LoadEnsemble(fname)
	if err != nil {
		t.Fatal(err.Error())
	}

	if len(loaded) != len(xs) {
		t.Fatalf("Loaded %d particles, saved %d.", len(loaded), len(xs))
	}
	for i := range xs {
		assert.InDelta(t, xs[i][0], loaded[i][0], 1e-12, "particle %d x", i)
		assert.InDelta(t, xs[i][1], loaded[i][1], 1e-12, "particle %d y", i)
	}
}

func TestHistogramRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "mcrdf_io_test")
	if err != nil {
		t.Fatal(err.Error())
	}
	defer os.RemoveAll(dir)

	centers := []float64{0.5, 1.5, 2.5}
	density := []float64{0.125, 0.5, 0.375}

	fname := path.Join(dir, "hist.dat")
	if err := SaveHistogram(fname, centers, density); err != nil {
		t.Fatal(err.Error())
	}

	c, d, err := LoadHistogram(fname)
	if err != nil {
		t.Fatal(err.Error())
	}
	for i := range centers {
		assert.InDelta(t, centers[i], c[i], 1e-12)
		assert.InDelta(t, density[i], d[i], 1e-12)
	}
}

func TestSaveMoveStats(t *testing.T) {
	dir, err := ioutil.TempDir("", "mcrdf_io_test")
	if err != nil {
		t.Fatal(err.Error())
	}
	defer os.RemoveAll(dir)

	s := mc.MoveStats{Attempted: 1000, Accepted: 437}
	if err := SaveMoveStats(path.Join(dir, "stats.dat"), s); err != nil {
		t.Fatal(err.Error())
	}
}

func TestExampleConfigIsValid(t *testing.T) {
	wrap := DefaultSimulationWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleSimulationFile)
	if err != nil {
		t.Fatal(err.Error())
	}
	con := &wrap.Simulation

	if !con.ValidN() || !con.ValidBoxWidth() || !con.ValidBoundary() ||
		!con.ValidPrefactor() || !con.ValidEpsilon() || !con.ValidSigma() ||
		!con.ValidDp() || !con.ValidKT() ||
		!con.ValidMacroSweeps() || !con.ValidMicroSweeps() ||
		!con.ValidOutput() || !con.ValidSampleEvery() ||
		!con.ValidStiffness() || !con.ValidHistBins() ||
		!con.ValidIdealPoints() || !con.ValidIdealSamples() ||
		!con.ValidGridPoints() {

		t.Fatalf("Example config does not validate: %+v", con)
	}

	if con.Periodic() {
		t.Errorf("Example config should be confined.")
	}
	if con.Confinement() == nil {
		t.Errorf("Confined config has no confinement potential.")
	}
	if con.Geometry().Width() != 600 {
		t.Errorf("Geometry width = %g.", con.Geometry().Width())
	}
}

func TestConfigValidation(t *testing.T) {
	con := &DefaultSimulationWrapper().Simulation

	if con.ValidN() {
		t.Errorf("Zero N validated.")
	}
	con.N = 55

	con.Boundary = "Hyperbolic"
	if con.ValidBoundary() {
		t.Errorf("Unsupported boundary mode validated.")
	}
	con.Boundary = "periodic"
	if !con.ValidBoundary() || !con.Periodic() {
		t.Errorf("Lowercase boundary mode rejected.")
	}
	if con.Confinement() != nil {
		t.Errorf("Periodic config produced a confinement potential.")
	}

	con.Dp = -1
	if con.ValidDp() {
		t.Errorf("Negative Dp validated.")
	}
	con.Sigma = 0
	if con.ValidSigma() {
		t.Errorf("Zero Sigma validated.")
	}
}
