/*package io reads and writes the files used by the pyrochlore command line
tool: Monopoles config files, whitespace-separated spin tables and charge
tables.
*/
package io

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/pyrochlore"
	"github.com/phil-mansfield/pyrochlore/geom"
)

var spinColumns = []int{0, 1, 2, 3}

// ReadConfiguration reads the positions and spins from a table with the
// columns x y z s. Spins must be +1 or -1.
func ReadConfiguration(file string) (xs []geom.Vec, spins []int, err error) {
	cols, err := table.ReadTable(file, spinColumns, nil)
	if err != nil {
		return nil, nil, err
	}

	x, y, z, s := cols[0], cols[1], cols[2], cols[3]
	xs = make([]geom.Vec, len(s))
	spins = make([]int, len(s))
	for i := range s {
		xs[i] = geom.Vec{x[i], y[i], z[i]}
		if s[i] != 1 && s[i] != -1 {
			return nil, nil, fmt.Errorf(
				"Line %d of %s has spin %g, but spins must be +1 or -1.",
				i+1, file, s[i],
			)
		}
		spins[i] = int(math.Round(s[i]))
	}

	return xs, spins, nil
}

// WriteConfiguration writes positions and spins in the format read by
// ReadConfiguration.
func WriteConfiguration(w io.Writer, xs []geom.Vec, spins []int) error {
	if len(xs) != len(spins) {
		return fmt.Errorf(
			"len(xs) = %d, but len(spins) = %d", len(xs), len(spins),
		)
	}

	bw := bufio.NewWriter(w)
	for i := range xs {
		_, err := fmt.Fprintf(
			bw, "%.10f %.10f %.10f %d\n", xs[i][0], xs[i][1], xs[i][2], spins[i],
		)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCharges writes one line per tetrahedron in cells with the columns
// i j k m orientation x y z charge, where (x, y, z) is the tetrahedron's
// center and m its index within the cell.
func WriteCharges(w io.Writer, cells []*pyrochlore.UnitCell) error {
	bw := bufio.NewWriter(w)
	_, err := fmt.Fprintln(bw, "# i j k m orientation x y z charge")
	if err != nil {
		return err
	}

	for _, c := range cells {
		for _, tets := range []*[pyrochlore.TetraPerCell]pyrochlore.Tetrahedron{
			&c.Up, &c.Down,
		} {
			for m, tet := range tets {
				_, err := fmt.Fprintf(
					bw, "%d %d %d %d %4s %9.5f %9.5f %9.5f %+d\n",
					c.I, c.J, c.K, m, tet.Orientation,
					tet.Center[0], tet.Center[1], tet.Center[2], tet.Charge,
				)
				if err != nil {
					return err
				}
			}
		}
	}

	return bw.Flush()
}
