// Package analysis derives orbital characteristics from a finished run.
//
//   - [DominantPeriod]: period of a sampled series from its power spectrum
//   - [Apsides]: periapsis and apoapsis passes in a radius series
//   - [Summarize]: radius range, drift metrics and period estimates
//
// # Period Estimates
//
// Three estimates are reported side by side: the Kepler period of the
// initial state, the mean spacing of apsis passes and the spectral peak of
// the x series. The spectral estimate needs several revolutions to resolve:
//
//	s := analysis.Summarize(p, out)
//	fmt.Printf("%.1f s (kepler) vs %.1f s (apsides)\n", s.KeplerPeriod, s.ApsisPeriod)
package analysis
