package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/pyrochlore"
	"github.com/phil-mansfield/pyrochlore/io"
	"github.com/phil-mansfield/pyrochlore/render"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		monopoles, lattice, exampleConfig string
		seed int64
		distortion float64
	)
	vars := map[string]*string{
		"Monopoles": &monopoles,
		"Lattice": &lattice,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&monopoles, "Monopoles", "",
		"Configuration file for [Monopoles] mode.",
	)
	flag.StringVar(
		&lattice, "Lattice", "",
		"Prints an ideal lattice with the given number of unit cells on " +
			"each side to stdout, in the format read by [Monopoles] mode.",
	)
	flag.Int64Var(
		&seed, "Seed", 0,
		"Used with -Lattice. If non-zero, spins are randomized with this " +
			"seed instead of all being +1.",
	)
	flag.Float64Var(
		&distortion, "Distortion", 0,
		"Used with -Lattice. Maximum random displacement of each site " +
			"along each axis.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Monopoles' " +
			"and 'Cell'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Monopoles":
		wrap, err := io.ReadMonopolesConfig(monopoles)
		if err != nil { log.Fatal(err.Error()) }
		monopolesMain(wrap)

	case "Lattice":
		cells, err := strconv.Atoi(lattice)
		if err != nil || cells <= 0 {
			log.Fatalf("-Lattice must be a positive integer, not '%s'.", lattice)
		}
		latticeMain(cells, seed, distortion)

	case "ExampleConfig":
		switch exampleConfig {
		case "Monopoles":
			fmt.Println(io.ExampleMonopolesFile)
		case "Cell":
			fmt.Println(io.ExampleCellFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Monopoles' and 'Cell'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but pyrochlore " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func monopolesMain(wrap *io.MonopolesWrapper) {
	con := &wrap.Monopoles
	fg := setupIO(con)
	defer fg.Close()

	xs, spins, err := io.ReadConfiguration(con.Input)
	if err != nil { log.Fatal(err.Error()) }

	lat, err := pyrochlore.NewLattice(len(spins))
	if err != nil { log.Fatal(err.Error()) }
	lat.Threshold = con.Threshold
	log.Printf("Read %d spins from %s. L = %d.", len(spins), con.Input, lat.Cells)

	targets, err := wrap.Cells(lat.Cells)
	if err != nil { log.Fatal(err.Error()) }

	man, err := pyrochlore.NewManager(lat, xs, spins, con.Workers)
	if err != nil { log.Fatal(err.Error()) }
	man.Log(true)

	var cells []*pyrochlore.UnitCell
	if len(targets) == 0 {
		cells, err = man.BuildCells()
		if err != nil { log.Fatal(err.Error()) }
	} else {
		for _, target := range targets {
			c, err := man.BuildCell(target.I, target.J, target.K)
			if err != nil { log.Fatal(err.Error()) }
			log.Printf(
				"Cell '%s' (%d %d %d) has charge %d.",
				target.Name, c.I, c.J, c.K, c.Charge(),
			)
			cells = append(cells, c)
		}
	}

	log.Printf(
		"Total charge: %d. Monopole density: %.4f.",
		pyrochlore.TotalCharge(cells), pyrochlore.MonopoleDensity(cells),
	)

	out := os.Stdout
	if con.ValidOutput() {
		out, err = os.Create(con.Output)
		if err != nil { log.Fatal(err.Error()) }
		defer out.Close()
		log.Printf("Writing to %s", con.Output)
	}
	if err = io.WriteCharges(out, cells); err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidPlotFile() {
		dim, _ := con.Axis()
		render.PlotCharges(cells, dim, lat.Width, con.PlotFile)
		plt.Execute()
	}
}

func latticeMain(cells int, seed int64, distortion float64) {
	lat := pyrochlore.NewLatticeFromCells(cells)
	xs := pyrochlore.IdealPositions(cells)

	var spins []int
	if seed == 0 {
		spins = pyrochlore.UniformSpins(len(xs), +1)
	} else {
		spins = pyrochlore.RandomSpins(len(xs), rand.New(rand.NewSource(seed)))
	}

	if distortion > 0 {
		gen := rand.New(rand.NewSource(seed + 1))
		pyrochlore.Distort(xs, distortion, lat.Width, gen)
	}

	if err := io.WriteConfiguration(os.Stdout, xs, spins); err != nil {
		log.Fatal(err.Error())
	}
}

// setupIO redirects logging and starts profiling if con asks for it. The
// returned FileGroup must be closed once the run is done.
func setupIO(con *io.MonopolesConfig) *FileGroup {
	fg := new(FileGroup)
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { log.Fatal(err.Error()) }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { log.Fatal(err.Error()) }
	}

	return fg
}
