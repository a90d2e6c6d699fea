package geom

import (
	"math"
)

// Tetra is a tetrahedron given by its four corners.
type Tetra [4]Vec

// TetraPair is an "up" tetrahedron together with its "down" partner. The two
// share the first corner of Up: Down is the point reflection of Up through
// that corner.
type TetraPair struct {
	Up, Down Tetra
}

var (
	// TetraDirs are the directions from the center of an up tetrahedron to
	// its corners. The first direction is the apex shared with the down
	// partner.
	TetraDirs = [4]Vec{
		{+1, +1, +1},
		{+1, -1, -1},
		{-1, -1, +1},
		{-1, +1, -1},
	}

	// FCCBasis is the basis of an FCC lattice with unit lattice constant.
	FCCBasis = [4]Vec{
		{0, 0, 0},
		{0.5, 0.5, 0},
		{0, 0.5, 0.5},
		{0.5, 0, 0.5},
	}
)

// NewTetraPair returns the up tetrahedron centered on center and inscribed
// in a cube with the given edge, along with its down partner.
func NewTetraPair(center Vec, edge float64) *TetraPair {
	p := &TetraPair{}
	p.Init(center, edge)
	return p
}

// Init initializes a TetraPair using the same rules as NewTetraPair.
func (p *TetraPair) Init(center Vec, edge float64) {
	for i := range p.Up {
		p.Up[i] = center.Add(TetraDirs[i].Scale(edge / 2))
	}

	apex2 := p.Up[0].Scale(2)
	for i := range p.Down {
		p.Down[i] = apex2.Sub(p.Up[i])
	}
}

// Barycenter computes the barycenter of a tetrahedron.
func (t *Tetra) Barycenter() Vec {
	sum := Vec{}
	for i := range t {
		sum = sum.Add(t[i])
	}
	return sum.Scale(0.25)
}

// Volume computes the volume of a tetrahedron.
func (t *Tetra) Volume() float64 {
	return math.Abs(t.signedVolume())
}

func (t *Tetra) signedVolume() float64 {
	d1 := t[1].Sub(t[0])
	d2 := t[2].Sub(t[0])
	d3 := t[3].Sub(t[0])
	return d1.Dot(d2.Cross(d3)) / 6.0
}
