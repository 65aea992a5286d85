package io

import (
	"strings"

	"github.com/lgraham-phys/mcrdf/geom"
	"github.com/lgraham-phys/mcrdf/potential"
)

const (
	ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Number of particles.
N = 55

# Side length of the square simulation box.
BoxWidth = 600

# Boundary mode. Must be one of [ Periodic | Confined ]. Periodic boxes
# use minimum-image distances; confined boxes use plain distances plus a
# harmonic wall potential.
Boundary = Confined

# Pair potential u(r) = Prefactor/r^3 + Epsilon*(Sigma/r)^12.
Prefactor = 1e6
Epsilon = 10
Sigma = 53

# Maximum trial displacement magnitude.
Dp = 10

# Thermal energy scale, k_B*T.
KT = 1

# The run performs MacroSweeps * MicroSweeps sweeps of N trial moves each.
MacroSweeps = 100
MicroSweeps = 100

# Directory which output files will be written to.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Sweeps between analysis samples (histogram accumulation and, if
# enabled, energy sampling). Default is 10.
# SampleEvery = 10

# Harmonic wall constant for confined mode. Default is 100.
# Stiffness = 100

# Number of bins in the pair-distance histograms. Default is 200.
# HistBins = 200

# Size of the ideal-gas reference: IdealSamples configurations of
# IdealPoints uniform points each. Defaults are 1 and 4000.
# IdealPoints = 4000
# IdealSamples = 1

# Number of points of the common g(r) grid. Default is 500.
# GridPoints = 500

# Random seed. 0 (the default) seeds from the wall clock.
# Seed = 0

# A state file written by a previous run. When set, it overrides random
# initial placement.
# InitialState = path/to/state.dat

# Write the per-sample energy series (total/pair/confinement).
# EnergySeries = true

# Output files which are useful for profiling and debugging. Generally,
# there isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SimulationConfig struct {
	// Required
	N                         int
	BoxWidth                  float64
	Boundary                  string
	Prefactor, Epsilon, Sigma float64
	Dp, KT                    float64
	MacroSweeps, MicroSweeps  int
	Output                    string

	// Optional
	SampleEvery               int
	Stiffness                 float64
	HistBins                  int
	IdealPoints, IdealSamples int
	GridPoints                int
	Seed                      int64
	InitialState              string
	EnergySeries              bool
	LogFile, ProfileFile      string
}

type SimulationWrapper struct {
	Simulation SimulationConfig
}

func DefaultSimulationWrapper() *SimulationWrapper {
	con := SimulationConfig{}
	con.SampleEvery = 10
	con.Stiffness = 100
	con.HistBins = 200
	con.IdealPoints = 4000
	con.IdealSamples = 1
	con.GridPoints = 500
	return &SimulationWrapper{con}
}

func (con *SimulationConfig) ValidN() bool {
	return con.N > 0
}
func (con *SimulationConfig) ValidBoxWidth() bool {
	return con.BoxWidth > 0
}
func (con *SimulationConfig) ValidBoundary() bool {
	switch strings.ToLower(con.Boundary) {
	case "periodic", "confined":
		return true
	}
	return false
}
func (con *SimulationConfig) Periodic() bool {
	return strings.ToLower(con.Boundary) == "periodic"
}
func (con *SimulationConfig) ValidPrefactor() bool {
	return con.Prefactor > 0
}
func (con *SimulationConfig) ValidEpsilon() bool {
	return con.Epsilon > 0
}
func (con *SimulationConfig) ValidSigma() bool {
	return con.Sigma > 0
}
func (con *SimulationConfig) ValidDp() bool {
	return con.Dp > 0
}
func (con *SimulationConfig) ValidKT() bool {
	return con.KT > 0
}
func (con *SimulationConfig) ValidMacroSweeps() bool {
	return con.MacroSweeps > 0
}
func (con *SimulationConfig) ValidMicroSweeps() bool {
	return con.MicroSweeps > 0
}
func (con *SimulationConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SimulationConfig) ValidSampleEvery() bool {
	return con.SampleEvery > 0
}
func (con *SimulationConfig) ValidStiffness() bool {
	return con.Periodic() || con.Stiffness > 0
}
func (con *SimulationConfig) ValidHistBins() bool {
	return con.HistBins > 0
}
func (con *SimulationConfig) ValidIdealPoints() bool {
	return con.IdealPoints > 1
}
func (con *SimulationConfig) ValidIdealSamples() bool {
	return con.IdealSamples > 0
}
func (con *SimulationConfig) ValidGridPoints() bool {
	return con.GridPoints > 1
}

// Geometry returns the box geometry the config describes.
func (con *SimulationConfig) Geometry() geom.Geometry {
	if con.Periodic() {
		return geom.Periodic{L: con.BoxWidth}
	}
	return geom.Confined{L: con.BoxWidth}
}

// Potential returns the configured pair potential.
func (con *SimulationConfig) Potential() potential.RepulsionR3 {
	return potential.RepulsionR3{
		Prefactor: con.Prefactor,
		Epsilon:   con.Epsilon,
		Sigma:     con.Sigma,
	}
}

// Confinement returns the wall potential for confined mode and nil for
// periodic mode.
func (con *SimulationConfig) Confinement() *potential.Confinement {
	if con.Periodic() {
		return nil
	}
	return &potential.Confinement{
		Width:     con.BoxWidth,
		Stiffness: con.Stiffness,
		Inset:     con.Sigma,
	}
}
