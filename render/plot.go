/*package render draws monopole configurations with pyplot. It only consumes
the centers, orientations and charges computed by package pyrochlore and is
not needed for anything else.
*/
package render

import (
	"fmt"
	"sort"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/pyrochlore"
)

var (
	chargeColors = map[int]string{
		-4: "DarkBlue",
		-2: "DodgerBlue",
		0:  "LightGray",
		+2: "Tomato",
		+4: "DarkRed",
	}
	axisNames = [3]string{"X", "Y", "Z"}
)

// ChargeColor returns the color used for tetrahedra with charge q.
func ChargeColor(q int) string {
	if c, ok := chargeColors[q]; ok {
		return c
	}
	return "Black"
}

// Projection is the set of tetrahedron centers with a single charge,
// projected onto the plane perpendicular to some axis.
type Projection struct {
	Charge int
	Xs, Ys []float64
}

// Project projects the centers of every tetrahedron in cells along the axis
// dim and groups them by charge. The result is sorted by charge.
func Project(cells []*pyrochlore.UnitCell, dim int) []Projection {
	d1, d2 := (dim+1)%3, (dim+2)%3
	if d1 > d2 {
		d1, d2 = d2, d1
	}

	groups := map[int]*Projection{}
	for _, c := range cells {
		for _, tet := range c.Tetrahedra() {
			p, ok := groups[tet.Charge]
			if !ok {
				p = &Projection{Charge: tet.Charge}
				groups[tet.Charge] = p
			}
			p.Xs = append(p.Xs, tet.Center[d1])
			p.Ys = append(p.Ys, tet.Center[d2])
		}
	}

	out := make([]Projection, 0, len(groups))
	for _, p := range groups {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Charge < out[j].Charge })
	return out
}

// PlotCharges queues a figure of every tetrahedron center in cells, projected
// along dim and colored by charge, which will be saved to fname. The figure
// is only drawn once the caller runs plt.Execute().
func PlotCharges(
	cells []*pyrochlore.UnitCell, dim int, width float64, fname string,
) {
	d1, d2 := (dim+1)%3, (dim+2)%3
	if d1 > d2 {
		d1, d2 = d2, d1
	}

	plt.Figure(plt.FigSize(8, 8))
	for _, p := range Project(cells, dim) {
		plt.Plot(p.Xs, p.Ys, "o", plt.C(ChargeColor(p.Charge)))
	}

	plt.Title(fmt.Sprintf(
		"%d monopoles, density = %.3f",
		len(cells)*2*pyrochlore.TetraPerCell-pyrochlore.ChargeCounts(cells)[0],
		pyrochlore.MonopoleDensity(cells),
	))
	plt.XLabel(fmt.Sprintf("$%s$", axisNames[d1]), plt.FontSize(16))
	plt.YLabel(fmt.Sprintf("$%s$", axisNames[d2]), plt.FontSize(16))
	plt.XLim(0, width)
	plt.YLim(0, width)
	plt.SaveFig(fname)
}
