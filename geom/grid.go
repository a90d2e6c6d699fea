package geom

// Grid provides an interface for reasoning over a 1D slice as if it were a
// periodic 3D cubic grid. Index x varies fastest and z slowest.
type Grid struct {
	Width                int
	Length, Area, Volume int
}

// NewGrid returns a new Grid instance with the given number of cells on
// each side.
func NewGrid(width int) *Grid {
	g := &Grid{}
	g.Init(width)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(width int) {
	g.Width = width

	g.Length = width
	g.Area = width * width
	g.Volume = width * width * width
}

// Idx returns the grid index corresponding to a set of coordinates.
func (g *Grid) Idx(x, y, z int) int {
	return x + y*g.Length + z*g.Area
}

// IdxCheck returns an index and true if the given coordinate are valid and
// false otherwise.
func (g *Grid) IdxCheck(x, y, z int) (idx int, ok bool) {
	if !g.BoundsCheck(x, y, z) {
		return -1, false
	}

	return g.Idx(x, y, z), true
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(x, y, z int) bool {
	return (0 <= x && 0 <= y && 0 <= z) &&
		(x < g.Width && y < g.Width && z < g.Width)
}

// Coords returns the x, y, z coordinates of a point from its grid index.
func (g *Grid) Coords(idx int) (x, y, z int) {
	x = idx % g.Length
	y = (idx % g.Area) / g.Length
	z = idx / g.Area
	return x, y, z
}

// Wrap maps arbitrary integer coordinates onto the grid using periodic
// boundary conditions.
func (g *Grid) Wrap(x, y, z int) (int, int, int) {
	return pMod(x, g.Width), pMod(y, g.Width), pMod(z, g.Width)
}

// pMod computes the positive modulo x % y.
func pMod(x, y int) int {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}
