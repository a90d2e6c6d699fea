package io

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/pyrochlore"
)

const (
	ExampleMonopolesFile = `[Monopoles]

#######################
# Required Parameters #
#######################

# Whitespace-separated table of spins. Each line is one site and has the
# columns x y z s, where s is +1 or -1. Sites must be ordered so that unit
# cell (i, j, k) owns the 16 lines starting at (i + j*L + k*L^2)*16, four per
# up tetrahedron, with the apex site of each up tetrahedron first. The number
# of lines must be 16*L^3. 'pyrochlore -Lattice L' prints a file in this
# format.
Input = path/to/spins.txt

#######################
# Optional Parameters #
#######################

# File the per-tetrahedron charge table is written to. Default is stdout.
# Output = path/to/charges.txt

# Writes a pyplot figure of the monopoles projected along ProjectionAxis,
# which must be one of [X | Y | Z] and defaults to Z.
# PlotFile = monopoles.png
# ProjectionAxis = Z

# Down tetrahedra are found by looking for the neighbors of each up
# tetrahedron's apex whose displacement has every component >= Threshold.
# On an ideal lattice those components are 0 or +sqrt(2)/2 and the other
# neighbors have 0 or -sqrt(2)/2, so the default of -sqrt(2)/4 tolerates
# fairly large distortions. Lower it if your sites are displaced further.
# Threshold = -0.3535533905932738

# Number of goroutines used. Default is the number of logical cores.
# Workers = 4

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleCellFile = `[Cell "corner"]
# Restricts the output to a single unit cell. Any number of Cell sections can
# be added to a Monopoles file. If there are none, every cell is written.
# Coordinates must be in the range [0, L).
I = 0
J = 0
K = 0`
)

type MonopolesConfig struct {
	// Required
	Input string

	// Optional
	Output, PlotFile, ProjectionAxis string
	Threshold float64
	Workers int
	LogFile, ProfileFile string
}

// CellConfig selects a single unit cell.
type CellConfig struct {
	// Required
	I, J, K int

	// Optional
	Name string
}

type MonopolesWrapper struct {
	Monopoles MonopolesConfig
	Cell      map[string]*CellConfig
}

// DefaultMonopolesWrapper returns a wrapper with every optional value set
// to its default. Values are overwritten by whatever a config file sets.
func DefaultMonopolesWrapper() *MonopolesWrapper {
	con := MonopolesConfig{}
	con.ProjectionAxis = "Z"
	con.Threshold = pyrochlore.DefaultThreshold
	con.Workers = runtime.NumCPU()
	return &MonopolesWrapper{Monopoles: con}
}

// ReadMonopolesConfig reads a Monopoles config file and checks that its
// required values are set.
func ReadMonopolesConfig(fname string) (*MonopolesWrapper, error) {
	wrap := DefaultMonopolesWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return wrap, wrap.Monopoles.Check()
}

// ReadMonopolesString is identical to ReadMonopolesConfig, but reads the
// config from a string.
func ReadMonopolesString(str string) (*MonopolesWrapper, error) {
	wrap := DefaultMonopolesWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	return wrap, wrap.Monopoles.Check()
}

// Check returns an error describing the first invalid value in con.
func (con *MonopolesConfig) Check() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidWorkers() {
		return fmt.Errorf(
			"'Workers' must be positive, but is %d.", con.Workers,
		)
	} else if !con.ValidProjectionAxis() {
		return fmt.Errorf(
			"ProjectionAxis must be one of [X | Y | Z]. '%s' is not "+
				"recognized.", con.ProjectionAxis,
		)
	} else if !con.ValidThreshold() {
		return fmt.Errorf(
			"'Threshold' must be in the range (-sqrt(2)/2, 0], but is %g.",
			con.Threshold,
		)
	}
	return nil
}

func (con *MonopolesConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *MonopolesConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *MonopolesConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *MonopolesConfig) ValidWorkers() bool {
	return con.Workers > 0
}
func (con *MonopolesConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *MonopolesConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// ValidThreshold returns true if the threshold can separate the up-side
// neighbors of an ideal lattice (components down to -sqrt(2)/2) from the
// down-side ones (components no lower than 0).
func (con *MonopolesConfig) ValidThreshold() bool {
	return con.Threshold > -math.Sqrt2/2 && con.Threshold <= 0
}

func (con *MonopolesConfig) ValidProjectionAxis() bool {
	_, ok := con.Axis()
	return ok
}

// Axis returns the dimension corresponding to ProjectionAxis.
func (con *MonopolesConfig) Axis() (dim int, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(con.ProjectionAxis)) {
	case "X":
		return 0, true
	case "Y":
		return 1, true
	case "Z":
		return 2, true
	}
	return -1, false
}

// CheckInit checks that cell lies inside a lattice with the given number of
// cells on each side and records its name.
func (cell *CellConfig) CheckInit(name string, cells int) error {
	if cell.I < 0 || cell.I >= cells {
		return fmt.Errorf(
			"I of Cell '%s' must be in range [0, %d), but is %d",
			name, cells, cell.I,
		)
	} else if cell.J < 0 || cell.J >= cells {
		return fmt.Errorf(
			"J of Cell '%s' must be in range [0, %d), but is %d",
			name, cells, cell.J,
		)
	} else if cell.K < 0 || cell.K >= cells {
		return fmt.Errorf(
			"K of Cell '%s' must be in range [0, %d), but is %d",
			name, cells, cell.K,
		)
	}

	cell.Name = name
	return nil
}

// Cells returns the cells named in the wrapper, checked against a lattice
// with the given number of cells on each side and sorted by name.
func (wrap *MonopolesWrapper) Cells(cells int) ([]CellConfig, error) {
	names := make([]string, 0, len(wrap.Cell))
	for name := range wrap.Cell {
		names = append(names, name)
	}
	sort.Strings(names)

	out := []CellConfig{}
	for _, name := range names {
		cell := wrap.Cell[name]
		if err := cell.CheckInit(name, cells); err != nil {
			return nil, err
		}
		out = append(out, *cell)
	}
	return out, nil
}
