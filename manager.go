package pyrochlore

import (
	"log"
	"runtime"
	"sync"

	"github.com/phil-mansfield/pyrochlore/geom"
)

// Manager builds every unit cell of a spin configuration in parallel.
//
// The down tetrahedron memberships depend only on the positions, so the
// Manager resolves them once for the whole configuration (see DownTable) and
// shares the result between cells instead of searching once per cell. Its
// methods may be called from multiple goroutines.
type Manager struct {
	lat     *Lattice
	xs      []geom.Vec
	spins   []int
	workers int
	log     bool

	downOnce  sync.Once
	down      [][4]int
	downErr   error
	resolvers []*Resolver
}

// NewManager validates a configuration and returns a Manager for it. If
// workers is not positive, runtime.NumCPU() workers are used.
func NewManager(
	lat *Lattice, xs []geom.Vec, spins []int, workers int,
) (*Manager, error) {
	if err := lat.checkConfiguration(xs, spins); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	man := &Manager{
		lat: lat, xs: xs, spins: spins, workers: workers,
	}
	man.resolvers = make([]*Resolver, workers)
	for id := range man.resolvers {
		man.resolvers[id] = NewResolver(xs, lat.Width, lat.Threshold)
	}

	return man, nil
}

// Log turns progress logging on or off. It must be called before any cells
// are built.
func (man *Manager) Log(flag bool) { man.log = flag }

// Workers returns the number of goroutines used by the Manager.
func (man *Manager) Workers() int { return man.workers }

// DownTable returns the down tetrahedron of every up tetrahedron apex,
// indexed by apex / 4. The table is computed on the first call and cached,
// and concurrent callers wait for that first computation.
func (man *Manager) DownTable() ([][4]int, error) {
	man.downOnce.Do(func() { man.down, man.downErr = man.resolveAll() })
	return man.down, man.downErr
}

// resolveAll computes the down table with man.workers goroutines. Each
// worker owns one of man.resolvers.
func (man *Manager) resolveAll() ([][4]int, error) {
	n := man.lat.CellCount() * TetraPerCell
	down := make([][4]int, n)
	errs := make([]error, man.workers)
	out := make(chan int, man.workers)

	for id := 0; id < man.workers-1; id++ {
		go man.chanResolve(id, down, errs, out)
	}
	man.chanResolve(man.workers-1, down, errs, out)

	for i := 0; i < man.workers; i++ {
		<-out
	}

	if err := firstError(errs); err != nil {
		return nil, err
	}

	if man.log {
		log.Printf(
			"Resolved %d down tetrahedra with %d workers.", n, man.workers,
		)
	}

	return down, nil
}

func (man *Manager) chanResolve(
	id int, down [][4]int, errs []error, out chan<- int,
) {
	r := man.resolvers[id]
	for t := id; t < len(down); t += man.workers {
		sites, err := r.DownTetra(4 * t)
		if err != nil {
			errs[id] = err
			break
		}
		down[t] = sites
	}
	out <- id
}

// firstError returns the error for the lowest apex in errs, or nil. Each
// worker stops at its first failure, so lower apexes can only be found in
// other workers' errors.
func firstError(errs []error) error {
	var first error
	minApex := -1
	for _, err := range errs {
		if err == nil {
			continue
		}
		apex := -1
		if gerr, ok := err.(*GeometryError); ok {
			apex = gerr.Apex
		}
		if first == nil || (apex >= 0 && apex < minApex) {
			first, minApex = err, apex
		}
	}
	return first
}

// BuildCell builds cell (i, j, k) using the cached down table.
func (man *Manager) BuildCell(i, j, k int) (*UnitCell, error) {
	if _, err := man.lat.CellIndex(i, j, k); err != nil {
		return nil, err
	}
	down, err := man.DownTable()
	if err != nil {
		return nil, err
	}
	return man.lat.buildCell(i, j, k, man.xs, man.spins, tableLookup(down))
}

func tableLookup(down [][4]int) func(int) ([4]int, error) {
	return func(apex int) ([4]int, error) { return down[apex/4], nil }
}

// BuildCells builds every unit cell in the lattice. The returned cells are
// ordered by cell index.
func (man *Manager) BuildCells() ([]*UnitCell, error) {
	down, err := man.DownTable()
	if err != nil {
		return nil, err
	}

	cells := make([]*UnitCell, man.lat.CellCount())
	errs := make([]error, man.workers)
	out := make(chan int, man.workers)

	for id := 0; id < man.workers-1; id++ {
		go man.chanBuild(id, down, cells, errs, out)
	}
	man.chanBuild(man.workers-1, down, cells, errs, out)

	for i := 0; i < man.workers; i++ {
		<-out
	}

	if err := firstError(errs); err != nil {
		return nil, err
	}

	if man.log {
		ms := runtime.MemStats{}
		runtime.ReadMemStats(&ms)
		log.Printf(
			"Built %d cells. Alloc: %5d MB, Sys: %5d MB",
			len(cells), ms.Alloc>>20, ms.Sys>>20,
		)
	}

	return cells, nil
}

func (man *Manager) chanBuild(
	id int, down [][4]int, cells []*UnitCell, errs []error, out chan<- int,
) {
	lookup := tableLookup(down)
	for idx := id; idx < len(cells); idx += man.workers {
		i, j, k := man.lat.CellCoords(idx)
		c, err := man.lat.buildCell(i, j, k, man.xs, man.spins, lookup)
		if err != nil {
			errs[id] = err
			break
		}
		cells[idx] = c
	}
	out <- id
}
