package pyrochlore

import (
	"math"

	"github.com/phil-mansfield/pyrochlore/geom"
)

// Orientation distinguishes up tetrahedra from down tetrahedra.
type Orientation int

const (
	Up Orientation = iota
	Down
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "Up"
	case Down:
		return "Down"
	}
	return "Orientation(?)"
}

// Tetrahedron is one tetrahedron of the lattice together with its monopole
// charge.
type Tetrahedron struct {
	Orientation Orientation
	Center      geom.Vec
	Sites       [4]int
	// Charge is -(sum of spins) for up tetrahedra and +(sum of spins) for
	// down tetrahedra, so it is always one of -4, -2, 0, 2, 4.
	Charge int
}

// SpinGroup holds the spins of one up tetrahedron in the form a renderer
// wants them.
type SpinGroup struct {
	Xs     [4]geom.Vec
	Values [4]int
	// Vectors are unit vectors along each site's local <111> axis, pointing
	// out of the up tetrahedron for +1 spins and into it for -1 spins.
	Vectors [4]geom.Vec
}

// UnitCell is everything that can be said about a single cubic unit cell:
// the positions of its tetrahedra, which spins make them up, and their
// charges.
type UnitCell struct {
	I, J, K   int
	SpinStart int

	// Origin is the lowermost corner of the cell and Cube its eight corners.
	Origin geom.Vec
	Cube   [8]geom.Vec

	Up, Down [TetraPerCell]Tetrahedron
	Pairs    [TetraPerCell]geom.TetraPair
	Spins    [TetraPerCell]SpinGroup
}

// BuildCell assembles unit cell (i, j, k). xs and spins are the positions
// and values of every spin in the lattice and must have lat.SpinCount()
// elements. A new Resolver is allocated for the call; use BuildCellWith to
// reuse one.
func (lat *Lattice) BuildCell(
	i, j, k int, xs []geom.Vec, spins []int,
) (*UnitCell, error) {
	if _, err := lat.CellIndex(i, j, k); err != nil {
		return nil, err
	}
	if err := lat.checkConfiguration(xs, spins); err != nil {
		return nil, err
	}
	r := NewResolver(xs, lat.Width, lat.Threshold)
	return lat.buildCell(i, j, k, xs, spins, r.DownTetra)
}

// BuildCellWith is identical to BuildCell, but resolves down tetrahedra with
// a caller-supplied Resolver.
func (lat *Lattice) BuildCellWith(
	i, j, k int, xs []geom.Vec, spins []int, r *Resolver,
) (*UnitCell, error) {
	if _, err := lat.CellIndex(i, j, k); err != nil {
		return nil, err
	}
	if err := lat.checkConfiguration(xs, spins); err != nil {
		return nil, err
	}
	return lat.buildCell(i, j, k, xs, spins, r.DownTetra)
}

// BuildCellImage builds the periodic image of a unit cell: (i, j, k) may be
// any integers. Spins are taken from the wrapped cell, but the centers and
// vertices stay at the requested, unwrapped position. So BuildCellImage(i+L,
// j, k) is BuildCell(i, j, k) translated by the box width.
func (lat *Lattice) BuildCellImage(
	i, j, k int, xs []geom.Vec, spins []int,
) (*UnitCell, error) {
	if err := lat.checkConfiguration(xs, spins); err != nil {
		return nil, err
	}
	r := NewResolver(xs, lat.Width, lat.Threshold)
	return lat.buildCell(i, j, k, xs, spins, r.DownTetra)
}

// checkConfiguration returns a ConfigurationError if lat has no cells, if xs
// and spins don't fit lat, or if any spin is not +1 or -1.
func (lat *Lattice) checkConfiguration(xs []geom.Vec, spins []int) error {
	if lat.Cells <= 0 {
		return &ConfigurationError{
			SpinCount: len(spins), Cells: lat.Cells, Index: -1,
			Reason: "the lattice has no unit cells",
		}
	} else if len(spins) != lat.SpinCount() || len(xs) != len(spins) {
		return &ConfigurationError{
			SpinCount: len(spins), Cells: lat.Cells, Index: -1,
			Reason: "the positions and spins do not match the lattice size",
		}
	}
	return CheckConfiguration(xs, spins)
}

// buildCell does the work for the BuildCell variants. down is the source of
// down tetrahedron memberships, keyed by apex site.
func (lat *Lattice) buildCell(
	i, j, k int, xs []geom.Vec, spins []int, down func(int) ([4]int, error),
) (*UnitCell, error) {
	wi, wj, wk := lat.Wrap(i, j, k)
	start := lat.grid.Idx(wi, wj, wk) * SpinsPerCell

	c := &UnitCell{I: i, J: j, K: k, SpinStart: start}
	c.Origin = geom.Vec{float64(i), float64(j), float64(k)}.Scale(CellWidth)
	c.Cube = geom.CubeVertices(CellWidth, c.Origin)

	for m := 0; m < TetraPerCell; m++ {
		apex := start + 4*m

		up := &c.Up[m]
		up.Orientation = Up
		up.Center = UpCenter(i, j, k, m)
		for n := 0; n < 4; n++ {
			up.Sites[n] = apex + n
		}
		up.Charge = -sumSpins(spins, up.Sites)

		c.Pairs[m].Init(up.Center, TetraEdge)
		c.Spins[m] = spinGroup(xs, spins, up.Sites)

		sites, err := down(apex)
		if err != nil {
			return nil, err
		}
		dn := &c.Down[m]
		dn.Orientation = Down
		dn.Center = DownCenter(i, j, k, m)
		dn.Sites = sites
		dn.Charge = sumSpins(spins, dn.Sites)
	}

	return c, nil
}

func sumSpins(spins []int, sites [4]int) int {
	sum := 0
	for _, s := range sites {
		sum += spins[s]
	}
	return sum
}

func spinGroup(xs []geom.Vec, spins []int, sites [4]int) SpinGroup {
	g := SpinGroup{}
	for n, s := range sites {
		g.Xs[n] = xs[s]
		g.Values[n] = spins[s]
		g.Vectors[n] = geom.TetraDirs[n].Scale(float64(spins[s]) / math.Sqrt(3))
	}
	return g
}

// Tetrahedra returns the cell's eight tetrahedra, up tetrahedra first.
func (c *UnitCell) Tetrahedra() []Tetrahedron {
	out := make([]Tetrahedron, 0, 2*TetraPerCell)
	out = append(out, c.Up[:]...)
	return append(out, c.Down[:]...)
}

// Charge returns the total charge of the cell's eight tetrahedra.
func (c *UnitCell) Charge() int {
	q := 0
	for m := 0; m < TetraPerCell; m++ {
		q += c.Up[m].Charge + c.Down[m].Charge
	}
	return q
}
