package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"runtime/pprof"

	"gopkg.in/gcfg.v1"

	"github.com/lgraham-phys/mcrdf/ensemble"
	"github.com/lgraham-phys/mcrdf/hist"
	"github.com/lgraham-phys/mcrdf/io"
	"github.com/lgraham-phys/mcrdf/mc"
	"github.com/lgraham-phys/mcrdf/rand"
	"github.com/lgraham-phys/mcrdf/rdf"

	plt "github.com/phil-mansfield/pyplot"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		config        string
		exampleConfig bool
		threads       int
		plot          bool
	)

	flag.StringVar(
		&config, "Config", "",
		"Configuration file for a [Simulation] run.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	flag.IntVar(
		&threads, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.BoolVar(
		&plot, "Plot", false,
		"Also writes a g(r) figure next to the text output.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleSimulationFile)
		return
	}
	if config == "" {
		log.Fatal("No mode flag set. Run with either -Config or " +
			"-ExampleConfig.")
	}

	runtime.GOMAXPROCS(threads)

	wrap := io.DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, config); err != nil {
		log.Fatal(err.Error())
	}
	con := &wrap.Simulation
	checkConfig(con)

	fg := setupFileGroup(con)
	defer fg.Close()

	simulationMain(con, threads, plot)
}

// checkConfig fails with a descriptive error on the first invalid
// configuration value. It runs before any simulation work starts.
func checkConfig(con *io.SimulationConfig) {
	switch {
	case !con.ValidN():
		log.Fatal("Invalid/non-existent 'N' value.")
	case !con.ValidBoxWidth():
		log.Fatal("Invalid/non-existent 'BoxWidth' value.")
	case !con.ValidBoundary():
		log.Fatal("'Boundary' must be one of [ Periodic | Confined ].")
	case !con.ValidPrefactor():
		log.Fatal("Invalid/non-existent 'Prefactor' value.")
	case !con.ValidEpsilon():
		log.Fatal("Invalid/non-existent 'Epsilon' value.")
	case !con.ValidSigma():
		log.Fatal("Invalid/non-existent 'Sigma' value.")
	case !con.ValidDp():
		log.Fatal("Invalid/non-existent 'Dp' value.")
	case !con.ValidKT():
		log.Fatal("Invalid/non-existent 'KT' value.")
	case !con.ValidMacroSweeps():
		log.Fatal("Invalid/non-existent 'MacroSweeps' value.")
	case !con.ValidMicroSweeps():
		log.Fatal("Invalid/non-existent 'MicroSweeps' value.")
	case !con.ValidOutput():
		log.Fatal("Invalid/non-existent 'Output' value.")
	case !con.ValidSampleEvery():
		log.Fatal("Invalid 'SampleEvery' value.")
	case !con.ValidStiffness():
		log.Fatal("Invalid 'Stiffness' value.")
	case !con.ValidHistBins():
		log.Fatal("Invalid 'HistBins' value.")
	case !con.ValidIdealPoints():
		log.Fatal("Invalid 'IdealPoints' value.")
	case !con.ValidIdealSamples():
		log.Fatal("Invalid 'IdealSamples' value.")
	case !con.ValidGridPoints():
		log.Fatal("Invalid 'GridPoints' value.")
	}
}

func setupFileGroup(con *io.SimulationConfig) *FileGroup {
	fg := &FileGroup{}
	var err error

	if con.LogFile != "" {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}
	if con.ProfileFile != "" {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}
	return fg
}

func simulationMain(con *io.SimulationConfig, threads int, plot bool) {
	g := con.Geometry()
	pair := con.Potential()
	confine := con.Confinement()

	seed := uint64(con.Seed)
	var gen *rand.Generator
	if con.Seed == 0 {
		gen = rand.NewTimeSeed(rand.Xorshift)
	} else {
		gen = rand.New(rand.Xorshift, seed)
	}

	// Initial state: load a persisted ensemble if one is given, place
	// particles uniformly otherwise.
	var ens *ensemble.Ensemble
	if con.InitialState != "" {
		xs, err := io.LoadEnsemble(con.InitialState)
		if err != nil {
			log.Fatal(err.Error())
		}
		if len(xs) != con.N {
			log.Fatalf("State file has %d particles, config says %d.",
				len(xs), con.N)
		}
		ens = ensemble.New(xs)
		log.Printf("Loaded initial state from %s.", con.InitialState)
	} else {
		ens = ensemble.NewUniform(gen, con.N, g)
	}

	prop := mc.NewPropagator(g, pair, confine, ens, gen, con.Dp, con.KT)
	prop.SetWorkers(threads)

	// The ideal-gas reference is independent of the trajectory, so it
	// runs concurrently with the propagation. It gets its own generator.
	idealCh := make(chan *hist.Hist, 1)
	go func() {
		idealGen := rand.New(rand.Xorshift, seed+1)
		if con.Seed == 0 {
			idealGen = rand.NewTimeSeed(rand.Xorshift)
		}
		idealCh <- rdf.Ideal(
			idealGen, g, con.IdealPoints, con.IdealSamples, con.HistBins,
		)
	}()

	obs := hist.New(0, g.MaxDistance(), con.HistBins)
	series := []mc.EnergySample{}

	sweeps := con.MacroSweeps * con.MicroSweeps
	logEvery := sweeps / 20
	if logEvery == 0 {
		logEvery = 1
	}

	prop.Run(sweeps, con.SampleEvery, func(sweep int) {
		obs.Accumulate(g, ens.Positions())
		if con.EnergySeries {
			total, pairE, confE := prop.Energies()
			series = append(series, mc.EnergySample{
				Sweep: sweep, Total: total, Pair: pairE, Confine: confE,
			})
		}
		if sweep%logEvery == 0 {
			log.Printf("Sweep %d/%d, acceptance %.3f",
				sweep, sweeps, prop.Stats.AcceptanceRate())
		}
	})

	ideal := <-idealCh
	curve := rdf.Compute(obs, ideal, con.GridPoints, g.Width())

	writeOutput(con, ens, obs, ideal, curve, prop, series)
	if plot {
		plotCurve(curve, path.Join(con.Output, "gr.png"))
	}

	log.Printf("Done. Attempted %d moves, accepted %d (%.3f).",
		prop.Stats.Attempted, prop.Stats.Accepted,
		prop.Stats.AcceptanceRate())
}

func writeOutput(
	con *io.SimulationConfig, ens *ensemble.Ensemble,
	obs, ideal *hist.Hist, curve rdf.Curve,
	prop *mc.Propagator, series []mc.EnergySample,
) {
	if err := os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}
	join := func(name string) string { return path.Join(con.Output, name) }

	if err := io.SaveEnsemble(join("state.dat"), ens.Positions()); err != nil {
		log.Fatal(err.Error())
	}

	centers, density := obs.Finalize()
	if err := io.SaveHistogram(join("hist.dat"), centers, density); err != nil {
		log.Fatal(err.Error())
	}
	centers, density = ideal.Finalize()
	err := io.SaveHistogram(join("hist_ideal.dat"), centers, density)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := io.SaveCurve(join("gr.dat"), curve); err != nil {
		log.Fatal(err.Error())
	}
	if err := io.SaveMoveStats(join("stats.dat"), prop.Stats); err != nil {
		log.Fatal(err.Error())
	}
	if len(series) > 0 {
		err := io.SaveEnergySeries(join("energy.dat"), series)
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

// plotCurve renders the g(r) curve with pyplot.
func plotCurve(c rdf.Curve, fname string) {
	plt.Reset()
	plt.Figure()
	plt.Plot(c.R, c.G, "r", plt.LW(2))
	plt.XLabel(`$r$`, plt.FontSize(16))
	plt.YLabel(`$g(r)$`, plt.FontSize(16))
	plt.SaveFig(fname)
	plt.Execute()
}
