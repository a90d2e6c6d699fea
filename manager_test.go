package pyrochlore

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerMatchesBuildCell(t *testing.T) {
	cells := 3
	lat := NewLatticeFromCells(cells)
	xs := IdealPositions(cells)
	spins := RandomSpins(lat.SpinCount(), rand.New(rand.NewSource(3)))

	for _, workers := range []int{1, 2, 5} {
		man, err := NewManager(lat, xs, spins, workers)
		require.NoError(t, err)
		assert.Equal(t, workers, man.Workers())

		cs, err := man.BuildCells()
		require.NoError(t, err)
		require.Len(t, cs, lat.CellCount())

		for idx, c := range cs {
			i, j, k := lat.CellCoords(idx)
			ref, err := lat.BuildCell(i, j, k, xs, spins)
			require.NoError(t, err)

			if c.I != i || c.J != j || c.K != k {
				t.Errorf("%d workers) Cell %d is (%d %d %d), not (%d %d %d).",
					workers, idx, c.I, c.J, c.K, i, j, k)
			}
			for m := 0; m < TetraPerCell; m++ {
				assert.Equal(t, ref.Up[m], c.Up[m])
				assert.Equal(t, ref.Down[m].Charge, c.Down[m].Charge)
				assert.ElementsMatch(t, ref.Down[m].Sites[:], c.Down[m].Sites[:])
			}
		}

		assert.Equal(t, 0, TotalCharge(cs))
	}
}

func TestManagerBuildCell(t *testing.T) {
	lat := NewLatticeFromCells(2)
	xs, spins := IdealPositions(2), UniformSpins(128, -1)

	man, err := NewManager(lat, xs, spins, 0)
	require.NoError(t, err)
	assert.True(t, man.Workers() > 0)

	c, err := man.BuildCell(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5*SpinsPerCell, c.SpinStart)
	for m := 0; m < TetraPerCell; m++ {
		assert.Equal(t, +4, c.Up[m].Charge)
		assert.Equal(t, -4, c.Down[m].Charge)
	}

	_, err = man.BuildCell(0, 2, 0)
	ierr := &IndexError{}
	assert.True(t, errors.As(err, &ierr))

	down, err := man.DownTable()
	require.NoError(t, err)
	assert.Len(t, down, lat.CellCount()*TetraPerCell)
	for tet, sites := range down {
		assert.Equal(t, 4*tet, sites[0])
	}
}

func TestManagerConcurrentBuildCell(t *testing.T) {
	cells := 3
	lat := NewLatticeFromCells(cells)
	xs := IdealPositions(cells)
	spins := RandomSpins(lat.SpinCount(), rand.New(rand.NewSource(11)))

	for trial := 0; trial < 10; trial++ {
		man, err := NewManager(lat, xs, spins, 4)
		require.NoError(t, err)

		callers := 12
		out := make([]*UnitCell, callers)
		errs := make([]error, callers)
		wg := sync.WaitGroup{}
		for id := 0; id < callers; id++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				i, j, k := lat.CellCoords(id % lat.CellCount())
				out[id], errs[id] = man.BuildCell(i, j, k)
			}(id)
		}
		wg.Wait()

		for id := 0; id < callers; id++ {
			require.NoError(t, errs[id], "trial %d, caller %d", trial, id)
			c := out[id]
			ref, err := lat.BuildCell(c.I, c.J, c.K, xs, spins)
			require.NoError(t, err)
			for m := 0; m < TetraPerCell; m++ {
				assert.Equal(t, ref.Down[m].Charge, c.Down[m].Charge)
				assert.ElementsMatch(t, ref.Down[m].Sites[:], c.Down[m].Sites[:])
			}
		}
	}
}

func TestManagerInvalid(t *testing.T) {
	lat := NewLatticeFromCells(1)
	xs, spins := IdealPositions(1), UniformSpins(16, 1)

	_, err := NewManager(lat, xs, spins[:8], 1)
	cerr := &ConfigurationError{}
	assert.True(t, errors.As(err, &cerr))

	spins[3] = 2
	_, err = NewManager(lat, xs, spins, 1)
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 3, cerr.Index)

	big := NewLatticeFromCells(2)
	_, err = NewManager(big, xs, UniformSpins(16, 1), 1)
	assert.True(t, errors.As(err, &cerr))
}

func TestManagerGeometryError(t *testing.T) {
	cells := 2
	lat := NewLatticeFromCells(cells)
	lat.Threshold = 0
	xs := IdealPositions(cells)
	Distort(xs, 0.05, lat.Width, rand.New(rand.NewSource(7)))

	man, err := NewManager(lat, xs, UniformSpins(lat.SpinCount(), 1), 3)
	require.NoError(t, err)

	_, err = man.BuildCells()
	gerr := &GeometryError{}
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, 0, gerr.Apex%4)
	assert.Equal(t, 0.0, gerr.Threshold)
}

func TestFirstError(t *testing.T) {
	errs := []error{
		nil,
		&GeometryError{Apex: 40},
		&GeometryError{Apex: 8},
		nil,
	}
	err := firstError(errs)
	gerr := &GeometryError{}
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, 8, gerr.Apex)

	assert.NoError(t, firstError([]error{nil, nil}))
}

func TestChargeStatistics(t *testing.T) {
	cells := 2
	lat := NewLatticeFromCells(cells)
	xs := IdealPositions(cells)

	man, err := NewManager(lat, xs, UniformSpins(lat.SpinCount(), 1), 2)
	require.NoError(t, err)
	cs, err := man.BuildCells()
	require.NoError(t, err)

	n := lat.CellCount() * TetraPerCell
	assert.Equal(t, map[int]int{-4: n, 4: n}, ChargeCounts(cs))
	assert.Equal(t, 1.0, MonopoleDensity(cs))
	assert.Equal(t, 0.0, MonopoleDensity(nil))

	// Two-in, two-out everywhere: alternate spins within each tetrahedron
	// so every up tetrahedron is neutral. The down tetrahedra need not be.
	spins := make([]int, lat.SpinCount())
	for i := range spins {
		if i%2 == 0 {
			spins[i] = 1
		} else {
			spins[i] = -1
		}
	}
	man, err = NewManager(lat, xs, spins, 2)
	require.NoError(t, err)
	cs, err = man.BuildCells()
	require.NoError(t, err)

	for _, c := range cs {
		for m := 0; m < TetraPerCell; m++ {
			assert.Equal(t, 0, c.Up[m].Charge)
		}
	}
	assert.Equal(t, 0, TotalCharge(cs))
	total := 0
	for q, count := range ChargeCounts(cs) {
		assert.Contains(t, []int{-4, -2, 0, 2, 4}, q)
		total += count
	}
	assert.Equal(t, 2*n, total)
}

func BenchmarkBuildCells(b *testing.B) {
	cells := 4
	lat := NewLatticeFromCells(cells)
	xs := IdealPositions(cells)
	spins := RandomSpins(lat.SpinCount(), rand.New(rand.NewSource(0)))

	for i := 0; i < b.N; i++ {
		man, _ := NewManager(lat, xs, spins, 0)
		man.BuildCells()
	}
}
