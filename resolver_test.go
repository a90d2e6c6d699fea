package pyrochlore

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownTetraIdeal(t *testing.T) {
	for cells := 1; cells <= 3; cells++ {
		lat := NewLatticeFromCells(cells)
		xs := IdealPositions(cells)
		r := NewResolver(xs, lat.Width, lat.Threshold)

		for apex := 0; apex < len(xs); apex += 4 {
			sites, err := r.DownTetra(apex)
			if err != nil {
				t.Errorf("L = %d) DownTetra(%d) failed: %s", cells, apex, err)
				continue
			}
			if sites[0] != apex {
				t.Errorf("L = %d) DownTetra(%d)[0] = %d", cells, apex, sites[0])
			}

			for n := 1; n < 4; n++ {
				dr := xs[sites[n]].PeriodicSub(xs[apex], lat.Width)
				if math.Abs(dr.Norm()-1) > 1e-9 {
					t.Errorf(
						"L = %d) Site %d is %g from apex %d.",
						cells, sites[n], dr.Norm(), apex,
					)
				}
				if !dr.AllAtLeast(-1e-9) {
					t.Errorf(
						"L = %d) Site %d is on the up side of apex %d: %v",
						cells, sites[n], apex, dr,
					)
				}
			}
		}
	}
}

func TestDownTetraMembers(t *testing.T) {
	table := []struct {
		cells, apex int
		sites       []int
	}{
		{1, 0, []int{0, 6, 9, 15}},
		{2, 0, []int{0, 6, 9, 15}},
		{2, 4, []int{4, 27, 45, 50}},
	}

	for i, test := range table {
		lat := NewLatticeFromCells(test.cells)
		sites, err := ResolveDownTetra(
			test.apex, IdealPositions(test.cells), lat.Width, lat.Threshold,
		)
		require.NoError(t, err)
		assert.Equal(t, test.apex, sites[0], "%d) apex comes first", i+1)
		assert.ElementsMatch(t, test.sites, sites[:], "%d)", i+1)
	}
}

func TestDownTetraNotApex(t *testing.T) {
	lat := NewLatticeFromCells(2)
	xs := IdealPositions(2)

	// The second corner of an up tetrahedron has only one neighbor with
	// every displacement component above the threshold.
	_, err := ResolveDownTetra(1, xs, lat.Width, lat.Threshold)

	gerr := &GeometryError{}
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, 1, gerr.Apex)
	assert.Equal(t, 1, gerr.Candidates)
}

func TestDownTetraDistorted(t *testing.T) {
	cells := 2
	lat := NewLatticeFromCells(cells)
	xs := IdealPositions(cells)
	Distort(xs, 0.05, lat.Width, rand.New(rand.NewSource(7)))

	r := NewResolver(xs, lat.Width, lat.Threshold)
	for apex := 0; apex < len(xs); apex += 4 {
		_, err := r.DownTetra(apex)
		if err != nil {
			t.Errorf("DownTetra(%d) failed on a distorted lattice: %s", apex, err)
		}
	}

	// A zero threshold can't handle the displacements that are ideally zero.
	strict := NewResolver(xs, lat.Width, 0)
	failures := 0
	for apex := 0; apex < len(xs); apex += 4 {
		if _, err := strict.DownTetra(apex); err != nil {
			gerr := &GeometryError{}
			require.True(t, errors.As(err, &gerr))
			assert.Less(t, gerr.Candidates, 3)
			failures++
		}
	}
	assert.NotZero(t, failures)
}

func TestDownTetraBadApex(t *testing.T) {
	lat := NewLatticeFromCells(1)
	xs := IdealPositions(1)

	_, err := ResolveDownTetra(-1, xs, lat.Width, lat.Threshold)
	assert.Error(t, err)
	_, err = ResolveDownTetra(len(xs), xs, lat.Width, lat.Threshold)
	assert.Error(t, err)
	_, err = ResolveDownTetra(0, xs[:5], lat.Width, lat.Threshold)
	assert.Error(t, err)
}

func BenchmarkDownTetra(b *testing.B) {
	lat := NewLatticeFromCells(6)
	xs := IdealPositions(6)
	r := NewResolver(xs, lat.Width, lat.Threshold)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.DownTetra((4 * i) % len(xs))
	}
}
