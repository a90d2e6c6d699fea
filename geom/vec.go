/*package geom contains the coordinate math used to lay out pyrochlore
lattices: vectors in a periodic box, cubes, tetrahedra and the index grid
that maps unit cells onto flat arrays.
*/
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Add returns v + u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v - u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns s * v.
func (v Vec) Scale(s float64) Vec {
	return Vec{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the inner product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross returns the cross product v x u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return floats.Norm(v[:], 2)
}

// Fold applies the minimum image convention to a displacement vector inside
// a cubic periodic box of the given width. Each component ends up in
// [-width/2, +width/2].
//
// Rounding is half-to-even, so Fold(Fold(v)) == Fold(v) even for components
// that sit exactly on the edge of the box.
func (v Vec) Fold(width float64) Vec {
	for i := 0; i < 3; i++ {
		v[i] -= math.RoundToEven(v[i]/width) * width
	}
	return v
}

// PeriodicSub returns the displacement from u to v in a periodic box of the
// given width, i.e. (v - u) folded with Fold.
func (v Vec) PeriodicSub(u Vec, width float64) Vec {
	return v.Sub(u).Fold(width)
}

// Mod wraps v into the fundamental domain [0, width) of a periodic box.
func (v Vec) Mod(width float64) Vec {
	for i := 0; i < 3; i++ {
		v[i] = math.Mod(v[i], width)
		if v[i] < 0 {
			v[i] += width
		}
		// A tiny negative component can wrap to exactly width.
		if v[i] >= width {
			v[i] -= width
		}
	}
	return v
}

// AllAtLeast returns true if every component of v is >= min.
func (v Vec) AllAtLeast(min float64) bool {
	return v[0] >= min && v[1] >= min && v[2] >= min
}

// EpsEq returns true if every component of v and u differs by at most eps.
func (v Vec) EpsEq(u Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(v[i]-u[i]) > eps {
			return false
		}
	}
	return true
}
