package pyrochlore

import (
	"math/rand"

	"github.com/phil-mansfield/pyrochlore/geom"
)

// IdealPositions returns the site positions of an undistorted lattice with
// cells unit cells on each side, ordered the way BuildCell expects: spin
// SpinStart(i, j, k) + 4*m + n sits at UpCenter(i, j, k, m) offset along
// geom.TetraDirs[n]. Positions are wrapped into [0, Width).
func IdealPositions(cells int) []geom.Vec {
	lat := NewLatticeFromCells(cells)
	xs := make([]geom.Vec, lat.SpinCount())

	for idx := 0; idx < lat.CellCount(); idx++ {
		i, j, k := lat.CellCoords(idx)
		for m := 0; m < TetraPerCell; m++ {
			p := geom.NewTetraPair(UpCenter(i, j, k, m), TetraEdge)
			for n := 0; n < 4; n++ {
				xs[idx*SpinsPerCell+4*m+n] = p.Up[n].Mod(lat.Width)
			}
		}
	}

	return xs
}

// Distort moves every position by a random offset in [-amp, +amp) along each
// axis and wraps the result back into a box of the given width.
func Distort(xs []geom.Vec, amp, width float64, gen *rand.Rand) {
	for i := range xs {
		for d := 0; d < 3; d++ {
			xs[i][d] += amp * (2*gen.Float64() - 1)
		}
		xs[i] = xs[i].Mod(width)
	}
}

// RandomSpins returns n spins which are +1 or -1 with equal probability.
func RandomSpins(n int, gen *rand.Rand) []int {
	spins := make([]int, n)
	for i := range spins {
		if gen.Intn(2) == 0 {
			spins[i] = -1
		} else {
			spins[i] = +1
		}
	}
	return spins
}

// UniformSpins returns n spins which are all equal to s.
func UniformSpins(n, s int) []int {
	spins := make([]int, n)
	for i := range spins {
		spins[i] = s
	}
	return spins
}
