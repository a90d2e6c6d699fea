package pyrochlore

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/pyrochlore/geom"
)

// Resolver finds the down tetrahedron attached to an apex site. It holds
// internal buffers, so a single Resolver must not be used from more than one
// goroutine at a time.
type Resolver struct {
	xs        []geom.Vec
	width     float64
	threshold float64

	drs    []geom.Vec
	dists  []float64
	idxBuf []int
}

// NewResolver creates a Resolver over the site positions xs, which live in a
// periodic box of the given width.
func NewResolver(xs []geom.Vec, width, threshold float64) *Resolver {
	return &Resolver{
		xs:        xs,
		width:     width,
		threshold: threshold,
		drs:       make([]geom.Vec, len(xs)),
		dists:     make([]float64, len(xs)),
		idxBuf:    make([]int, len(xs)),
	}
}

// ResolveDownTetra is a convenience wrapper around Resolver.DownTetra for
// one-off queries.
func ResolveDownTetra(
	apex int, xs []geom.Vec, width, threshold float64,
) ([4]int, error) {
	return NewResolver(xs, width, threshold).DownTetra(apex)
}

// DownTetra returns the four sites of the down tetrahedron which contains
// apex. The first element is always apex and the remaining three are ordered
// by distance from it.
//
// The six nearest neighbors of apex (under the minimum image convention)
// are split into the three whose displacement has every component >= the
// threshold and the three which belong to the up tetrahedron. If the split
// doesn't produce exactly three, a GeometryError is returned.
func (r *Resolver) DownTetra(apex int) ([4]int, error) {
	out := [4]int{apex, -1, -1, -1}
	if apex < 0 || apex >= len(r.xs) {
		return out, fmt.Errorf(
			"Apex site %d is not in the range [0, %d).", apex, len(r.xs),
		)
	} else if len(r.xs) <= NeighborShell {
		return out, fmt.Errorf(
			"A lattice of %d sites is too small to have a full neighbor "+
				"shell.", len(r.xs),
		)
	}

	x0 := r.xs[apex]
	for i := range r.xs {
		r.drs[i] = r.xs[i].PeriodicSub(x0, r.width)
		r.dists[i] = r.drs[i].Norm()
	}

	// Sorts dists in place; idxBuf[n] is the site at the n-th distance.
	floats.Argsort(r.dists, r.idxBuf)

	found, shell := 0, 0
	for _, idx := range r.idxBuf {
		if shell == NeighborShell {
			break
		} else if idx == apex {
			continue
		}
		shell++

		if r.drs[idx].AllAtLeast(r.threshold) {
			found++
			if found < len(out) {
				out[found] = idx
			}
		}
	}

	if found != 3 {
		return out, &GeometryError{
			Apex: apex, Candidates: found, Threshold: r.threshold,
		}
	}
	return out, nil
}
