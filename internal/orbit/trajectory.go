package orbit

import (
	"math"

	"github.com/san-kum/orbitsim/internal/sim"
)

// Point is a position in the orbital plane.
type Point struct {
	X, Y float64
}

// Trajectory is the ordered list of positions produced by a run, one per
// step. It is read-only once returned: accessors hand out copies.
type Trajectory struct {
	xs []float64
	ys []float64
}

func newTrajectory(capacity int) *Trajectory {
	return &Trajectory{
		xs: make([]float64, 0, capacity),
		ys: make([]float64, 0, capacity),
	}
}

func (tr *Trajectory) append(x, y float64) {
	tr.xs = append(tr.xs, x)
	tr.ys = append(tr.ys, y)
}

// FromResult extracts the positions of a central-body run.
func FromResult(r *sim.Result) *Trajectory {
	tr := newTrajectory(len(r.States))
	for _, s := range r.States {
		tr.append(s[0], s[1])
	}
	return tr
}

func (tr *Trajectory) Len() int { return len(tr.xs) }

// At returns the position after step i (0-based).
func (tr *Trajectory) At(i int) Point {
	return Point{X: tr.xs[i], Y: tr.ys[i]}
}

// Last returns the final position, or false for an empty trajectory.
func (tr *Trajectory) Last() (Point, bool) {
	if len(tr.xs) == 0 {
		return Point{}, false
	}
	return tr.At(len(tr.xs) - 1), true
}

// XS returns a copy of the x coordinates.
func (tr *Trajectory) XS() []float64 {
	out := make([]float64, len(tr.xs))
	copy(out, tr.xs)
	return out
}

// YS returns a copy of the y coordinates.
func (tr *Trajectory) YS() []float64 {
	out := make([]float64, len(tr.ys))
	copy(out, tr.ys)
	return out
}

func (tr *Trajectory) Points() []Point {
	out := make([]Point, len(tr.xs))
	for i := range tr.xs {
		out[i] = Point{X: tr.xs[i], Y: tr.ys[i]}
	}
	return out
}

// Radii returns the distance from the origin for every sample.
func (tr *Trajectory) Radii() []float64 {
	out := make([]float64, len(tr.xs))
	for i := range tr.xs {
		out[i] = math.Hypot(tr.xs[i], tr.ys[i])
	}
	return out
}

// FirstNonFinite returns the index of the first sample holding NaN or Inf.
func (tr *Trajectory) FirstNonFinite() (int, bool) {
	for i := range tr.xs {
		if !finite(tr.xs[i]) || !finite(tr.ys[i]) {
			return i, true
		}
	}
	return 0, false
}

// Finite reports whether every sample is a finite number.
func (tr *Trajectory) Finite() bool {
	_, bad := tr.FirstNonFinite()
	return !bad
}

// Validate returns a *sim.SimulationError wrapping sim.ErrInvalidState for
// the first non-finite sample. dt is used to report the simulated time.
func (tr *Trajectory) Validate(dt float64) error {
	i, bad := tr.FirstNonFinite()
	if !bad {
		return nil
	}
	return &sim.SimulationError{
		Step:    i,
		Time:    float64(i+1) * dt,
		State:   sim.State{tr.xs[i], tr.ys[i]},
		Wrapped: sim.ErrInvalidState,
	}
}

// Equal reports bit-for-bit equality, treating NaNs with the same bits as equal.
func (tr *Trajectory) Equal(other *Trajectory) bool {
	if tr.Len() != other.Len() {
		return false
	}
	for i := range tr.xs {
		if math.Float64bits(tr.xs[i]) != math.Float64bits(other.xs[i]) ||
			math.Float64bits(tr.ys[i]) != math.Float64bits(other.ys[i]) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
