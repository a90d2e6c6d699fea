package pyrochlore

import (
	"fmt"
)

// ConfigurationError is returned when a spin configuration cannot describe a
// pyrochlore lattice: the spin count is not 16*L^3, the position and spin
// arrays disagree in length, or a spin is not +1 or -1.
type ConfigurationError struct {
	// SpinCount is the number of spins that was supplied.
	SpinCount int
	// Cells is the cube root of SpinCount/16, rounded. It is zero if it
	// could not be computed.
	Cells int
	// Index is the offending spin for per-spin errors and -1 otherwise.
	Index int
	Reason string
}

func (err *ConfigurationError) Error() string {
	if err.Index >= 0 {
		return fmt.Sprintf(
			"Invalid spin configuration of %d spins: spin %d %s.",
			err.SpinCount, err.Index, err.Reason,
		)
	}
	return fmt.Sprintf(
		"Invalid spin configuration of %d spins (L = %d): %s.",
		err.SpinCount, err.Cells, err.Reason,
	)
}

// GeometryError is returned when the neighbor filter does not find exactly
// three down-tetrahedron partners for an apex site. This means the lattice
// is too distorted for the current threshold (or the apex is not the first
// site of an up tetrahedron).
type GeometryError struct {
	Apex       int
	Candidates int
	Threshold  float64
}

func (err *GeometryError) Error() string {
	return fmt.Sprintf(
		"Site %d has %d down-tetrahedron neighbors with every displacement "+
			"component >= %g, but exactly 3 are required.",
		err.Apex, err.Candidates, err.Threshold,
	)
}

// IndexError is returned when a unit cell coordinate lies outside [0, L).
type IndexError struct {
	I, J, K int
	Cells   int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf(
		"Cell (%d, %d, %d) is outside the lattice. Each coordinate must be "+
			"in the range [0, %d).", err.I, err.J, err.K, err.Cells,
	)
}
