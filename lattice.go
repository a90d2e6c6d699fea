/*package pyrochlore decomposes pyrochlore spin configurations into up and
down tetrahedra and computes the emergent monopole charge on each of them.

Spins are stored in flat arrays. Unit cell (i, j, k) of an L x L x L lattice
owns the 16 spins starting at (i + j*L + k*L^2) * 16, four per up
tetrahedron. The down tetrahedra are found geometrically, by looking for the
neighbors of each up tetrahedron's first (apex) site.
*/
package pyrochlore

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/pyrochlore/geom"
)

const (
	// SpinsPerCell is the number of sites in a cubic unit cell.
	SpinsPerCell = 16
	// TetraPerCell is the number of up (and of down) tetrahedra in a cell.
	TetraPerCell = 4
	// NeighborShell is the coordination number of a pyrochlore site.
	NeighborShell = 6
)

var (
	// CellWidth is the side of a cubic unit cell in units of the
	// nearest-neighbor distance.
	CellWidth = math.Sqrt(8)
	// TetraEdge is the side of the cube an up tetrahedron is inscribed in.
	TetraEdge = math.Sqrt(0.5)
	// DefaultThreshold is the lowest displacement component a down-side
	// neighbor may have. Ideal down-side neighbors have components
	// {0, +sqrt(2)/2} and up-side neighbors {0, -sqrt(2)/2}.
	DefaultThreshold = -math.Sqrt2 / 4

	upScale    = 4 / math.Sqrt2
	downOffset = geom.Vec{1, 1, 1}.Scale(1 / math.Sqrt2)
)

// Lattice describes the geometry of an L x L x L pyrochlore super-lattice.
type Lattice struct {
	// Cells is the number of unit cells on each side, L.
	Cells int
	// Width is the side length of the periodic box.
	Width float64
	// Threshold is the distortion tolerance used when resolving down
	// tetrahedra.
	Threshold float64

	grid geom.Grid
}

// InferCells returns the L for which a lattice has spinCount = 16*L^3
// spins, or a ConfigurationError if there is no such L.
func InferCells(spinCount int) (int, error) {
	if spinCount <= 0 {
		return 0, &ConfigurationError{
			SpinCount: spinCount, Index: -1,
			Reason: "at least one unit cell is required",
		}
	} else if spinCount%SpinsPerCell != 0 {
		return 0, &ConfigurationError{
			SpinCount: spinCount, Index: -1,
			Reason: "the spin count is not a multiple of 16",
		}
	}

	cells := int(math.Round(math.Cbrt(float64(spinCount / SpinsPerCell))))
	if cells*cells*cells*SpinsPerCell != spinCount {
		return 0, &ConfigurationError{
			SpinCount: spinCount, Cells: cells, Index: -1,
			Reason: "spin count / 16 is not a perfect cube",
		}
	}

	return cells, nil
}

// NewLattice returns the Lattice which contains spinCount spins. L is
// computed once here and never re-derived.
func NewLattice(spinCount int) (*Lattice, error) {
	cells, err := InferCells(spinCount)
	if err != nil {
		return nil, err
	}
	return NewLatticeFromCells(cells), nil
}

// NewLatticeFromCells returns a Lattice with cells unit cells on each side.
// It panics if cells is not positive.
func NewLatticeFromCells(cells int) *Lattice {
	lat := &Lattice{}
	lat.Init(cells)
	return lat
}

// Init initializes a Lattice with the default threshold. It panics if cells
// is not positive.
func (lat *Lattice) Init(cells int) {
	if cells <= 0 {
		panic(fmt.Sprintf("A lattice needs at least one cell, not %d.", cells))
	}
	lat.Cells = cells
	lat.Width = float64(cells) * CellWidth
	lat.Threshold = DefaultThreshold
	lat.grid.Init(cells)
}

// SpinCount returns the number of spins in the lattice.
func (lat *Lattice) SpinCount() int { return lat.grid.Volume * SpinsPerCell }

// CellCount returns the number of unit cells in the lattice.
func (lat *Lattice) CellCount() int { return lat.grid.Volume }

// CellIndex returns the index of cell (i, j, k) or an IndexError if it is
// not inside the lattice.
func (lat *Lattice) CellIndex(i, j, k int) (int, error) {
	idx, ok := lat.grid.IdxCheck(i, j, k)
	if !ok {
		return -1, &IndexError{I: i, J: j, K: k, Cells: lat.Cells}
	}
	return idx, nil
}

// CellCoords returns the coordinates of the cell with the given index.
func (lat *Lattice) CellCoords(idx int) (i, j, k int) {
	return lat.grid.Coords(idx)
}

// Wrap maps arbitrary cell coordinates into [0, L) periodically. lat must
// have been initialized.
func (lat *Lattice) Wrap(i, j, k int) (int, int, int) {
	return lat.grid.Wrap(i, j, k)
}

// SpinStart returns the index of the first spin owned by cell (i, j, k).
func (lat *Lattice) SpinStart(i, j, k int) (int, error) {
	idx, err := lat.CellIndex(i, j, k)
	if err != nil {
		return -1, err
	}
	return idx * SpinsPerCell, nil
}

// UpCenter returns the center of up tetrahedron m of cell (i, j, k). The
// coordinates need not be inside the lattice.
func UpCenter(i, j, k, m int) geom.Vec {
	ijk := geom.Vec{float64(i), float64(j), float64(k)}
	return geom.FCCBasis[m].Add(ijk).Scale(upScale)
}

// DownCenter returns the center of the down tetrahedron which shares its
// apex with up tetrahedron m of cell (i, j, k).
func DownCenter(i, j, k, m int) geom.Vec {
	return UpCenter(i, j, k, m).Add(downOffset)
}

// CheckConfiguration returns a ConfigurationError if xs and spins are not
// the same length or if any spin is not +1 or -1.
func CheckConfiguration(xs []geom.Vec, spins []int) error {
	if len(xs) != len(spins) {
		return &ConfigurationError{
			SpinCount: len(spins), Index: -1,
			Reason: "there are a different number of positions and spins",
		}
	}

	for i, s := range spins {
		if s != 1 && s != -1 {
			return &ConfigurationError{
				SpinCount: len(spins), Index: i,
				Reason: "is not +1 or -1",
			}
		}
	}
	return nil
}
