package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/sim"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Radius collects the distance from the origin of every finite state and
// reduces it with an aggregate (min, max or mean).
type Radius struct {
	name  string
	agg   func([]float64) float64
	radii []float64
}

func NewRadiusMin() *Radius {
	return &Radius{name: "radius_min", agg: floats.Min}
}

func NewRadiusMax() *Radius {
	return &Radius{name: "radius_max", agg: floats.Max}
}

func NewRadiusMean() *Radius {
	return &Radius{name: "radius_mean", agg: func(v []float64) float64 { return stat.Mean(v, nil) }}
}

func (r *Radius) Name() string { return r.name }

func (r *Radius) Observe(x sim.State, t float64) {
	if len(x) < 2 {
		return
	}
	d := math.Hypot(x[0], x[1])
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return
	}
	r.radii = append(r.radii, d)
}

// Value is NaN when no finite state was observed.
func (r *Radius) Value() float64 {
	if len(r.radii) == 0 {
		return math.NaN()
	}
	return r.agg(r.radii)
}

func (r *Radius) Reset() {
	r.radii = r.radii[:0]
}

// DistanceFromStart is the distance between the first and the latest
// observed positions.
type DistanceFromStart struct {
	startX, startY float64
	lastX, lastY   float64
	samples        int
}

func NewDistanceFromStart() *DistanceFromStart {
	return &DistanceFromStart{}
}

func (d *DistanceFromStart) Name() string { return "distance_from_start" }

func (d *DistanceFromStart) Observe(x sim.State, t float64) {
	if len(x) < 2 {
		return
	}
	if d.samples == 0 {
		d.startX, d.startY = x[0], x[1]
	}
	d.lastX, d.lastY = x[0], x[1]
	d.samples++
}

func (d *DistanceFromStart) Value() float64 {
	return math.Hypot(d.lastX-d.startX, d.lastY-d.startY)
}

func (d *DistanceFromStart) Reset() {
	*d = DistanceFromStart{}
}
