package analysis

// Apsides returns the sample indices of strict local minima (periapsis
// passes) and maxima (apoapsis passes) of a radius series.
func Apsides(radii []float64) (peri, apo []int) {
	for i := 1; i+1 < len(radii); i++ {
		prev, cur, next := radii[i-1], radii[i], radii[i+1]
		switch {
		case cur < prev && cur < next:
			peri = append(peri, i)
		case cur > prev && cur > next:
			apo = append(apo, i)
		}
	}
	return peri, apo
}

// ApsisPeriod averages the spacing of consecutive periapsis passes and of
// consecutive apoapsis passes. It reports false with fewer than two passes
// of either kind.
func ApsisPeriod(radii []float64, dt float64) (float64, bool) {
	peri, apo := Apsides(radii)

	total, count := 0, 0
	for _, idx := range [][]int{peri, apo} {
		for i := 1; i < len(idx); i++ {
			total += idx[i] - idx[i-1]
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(total) / float64(count) * dt, true
}
