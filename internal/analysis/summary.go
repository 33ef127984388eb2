package analysis

import (
	"math"

	"github.com/san-kum/orbitsim/internal/orbit"
	"gonum.org/v1/gonum/floats"
)

// Summary describes a finished run.
type Summary struct {
	Steps          int
	Duration       float64
	Finite         bool
	FirstNonFinite int

	RadiusMin         float64
	RadiusMax         float64
	DistanceFromStart float64

	Eccentricity   float64
	KeplerPeriod   float64
	ApsisPeriod    float64
	SpectralPeriod float64

	Metrics map[string]float64
}

// Summarize inspects the outcome of orbit.Run for p. Periods that cannot be
// estimated are NaN.
func Summarize(p orbit.Params, out *orbit.Outcome) Summary {
	tr := out.Trajectory
	body := p.Body()
	x0 := p.InitialState()

	s := Summary{
		Steps:          tr.Len(),
		Duration:       p.Duration(),
		FirstNonFinite: -1,
		RadiusMin:      math.NaN(),
		RadiusMax:      math.NaN(),
		Eccentricity:   body.Eccentricity(x0),
		KeplerPeriod:   body.Period(x0),
		ApsisPeriod:    math.NaN(),
		SpectralPeriod: math.NaN(),
		Metrics:        map[string]float64{},
	}
	if out.Result != nil {
		for k, v := range out.Result.Metrics {
			s.Metrics[k] = v
		}
	}

	idx, bad := tr.FirstNonFinite()
	s.Finite = !bad
	if bad {
		s.FirstNonFinite = idx
	}

	radii := tr.Radii()
	if bad {
		radii = radii[:idx]
	}
	if len(radii) > 0 {
		s.RadiusMin = floats.Min(radii)
		s.RadiusMax = floats.Max(radii)
	}

	if last, ok := tr.Last(); ok {
		s.DistanceFromStart = math.Hypot(last.X-p.X0, last.Y-p.Y0)
	}

	if v, ok := ApsisPeriod(radii, p.Dt); ok {
		s.ApsisPeriod = v
	}
	if v, ok := DominantPeriod(tr.XS(), p.Dt); ok {
		s.SpectralPeriod = v
	}

	return s
}
