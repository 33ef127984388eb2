package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns |X(k)|² for the mean-removed series, zero padded to
// the next power of two. Only the non-negative frequencies are returned.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	n := 1
	for n < len(data) {
		n *= 2
	}

	mean := stat.Mean(data, nil)

	padded := make([]float64, n)
	for i, v := range data {
		padded[i] = v - mean
	}

	spectrum := fft.FFTReal(padded)
	power := make([]float64, n/2)
	for k := range power {
		a := cmplx.Abs(spectrum[k])
		power[k] = a * a
	}
	return power
}

// DominantPeriod returns the period of the strongest non-zero frequency of a
// series sampled every dt. It reports false for short, flat or non-finite input.
func DominantPeriod(data []float64, dt float64) (float64, bool) {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
	}

	power := PowerSpectrum(data)
	if len(power) < 2 {
		return 0, false
	}

	best, bestIdx := 0.0, 0
	for k := 1; k < len(power); k++ {
		if power[k] > best {
			best, bestIdx = power[k], k
		}
	}
	if bestIdx == 0 {
		return 0, false
	}

	n := 2 * len(power)
	return float64(n) * dt / float64(bestIdx), true
}
