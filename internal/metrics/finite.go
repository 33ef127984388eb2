package metrics

import "github.com/san-kum/orbitsim/internal/sim"

// Finite is the fraction of observed states without NaN or Inf.
type Finite struct {
	invalid int
	samples int
}

func NewFinite() *Finite {
	return &Finite{}
}

func (f *Finite) Name() string { return "finite_fraction" }

func (f *Finite) Observe(x sim.State, t float64) {
	f.samples++
	if !x.IsValid() {
		f.invalid++
	}
}

func (f *Finite) Value() float64 {
	if f.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(f.invalid)/float64(f.samples)
}

func (f *Finite) Reset() {
	f.invalid = 0
	f.samples = 0
}

// Default returns the metrics reported for every run of dyn.
func Default(dyn sim.Dynamics) []sim.Metric {
	return []sim.Metric{
		NewEnergyDrift(dyn),
		NewMomentumDrift(dyn),
		NewRadiusMin(),
		NewRadiusMax(),
		NewRadiusMean(),
		NewDistanceFromStart(),
		NewFinite(),
	}
}
