package sim

import "math"

// State is a flat state vector. Second-order systems store positions in the
// first half and the matching velocities in the second half.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Dynamics describes dX/dt = f(X, t).
type Dynamics interface {
	Derivative(x State, t float64) State
	StateDim() int
}

// Hamiltonian is implemented by dynamics with a conserved energy.
type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn Dynamics, x State, t float64, dt float64) State
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

// Observer is notified with the initial state (step 0) and after every
// completed step. The state passed in must not be retained or modified.
type Observer interface {
	OnStep(step int, x State, t float64)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(step int, x State, t float64)

func (f ObserverFunc) OnStep(step int, x State, t float64) { f(step, x, t) }

type Config struct {
	Dt    float64
	Steps int
}

// Result holds one state per completed step. Initial is the state the run
// started from and is not part of States.
type Result struct {
	Initial    State
	States     []State
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}
