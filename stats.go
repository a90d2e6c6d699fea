package pyrochlore

// TotalCharge returns the summed charge of every tetrahedron in cells. For
// a complete lattice this is always zero.
func TotalCharge(cells []*UnitCell) int {
	q := 0
	for _, c := range cells {
		q += c.Charge()
	}
	return q
}

// ChargeCounts returns the number of tetrahedra with each charge.
func ChargeCounts(cells []*UnitCell) map[int]int {
	counts := map[int]int{}
	for _, c := range cells {
		for m := 0; m < TetraPerCell; m++ {
			counts[c.Up[m].Charge]++
			counts[c.Down[m].Charge]++
		}
	}
	return counts
}

// MonopoleDensity returns the fraction of tetrahedra which carry a non-zero
// charge, i.e. which violate the two-in, two-out ice rule.
func MonopoleDensity(cells []*UnitCell) float64 {
	if len(cells) == 0 {
		return 0
	}

	n := 0
	for q, count := range ChargeCounts(cells) {
		if q != 0 {
			n += count
		}
	}
	return float64(n) / float64(2*TetraPerCell*len(cells))
}
