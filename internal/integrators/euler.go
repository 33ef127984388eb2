package integrators

import "github.com/san-kum/orbitsim/internal/sim"

// Euler is the semi-implicit Euler step: velocities are advanced with the
// acceleration at the start of the step, then positions are advanced with
// the updated velocities. The state layout is positions followed by
// velocities. This ordering is relied on for bit-exact golden values.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn sim.Dynamics, x sim.State, t float64, dt float64) sim.State {
	n := len(x)
	half := n / 2
	dx := dyn.Derivative(x, t)

	result := make(sim.State, n)
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dx[half+i]*dt
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + result[half+i]*dt
	}
	return result
}

// ForwardEuler is the textbook explicit Euler step: every component moves
// along the derivative evaluated at the start of the step, so positions use
// the old velocities.
type ForwardEuler struct{}

func NewForwardEuler() *ForwardEuler {
	return &ForwardEuler{}
}

func (e *ForwardEuler) Step(dyn sim.Dynamics, x sim.State, t float64, dt float64) sim.State {
	dx := dyn.Derivative(x, t)
	result := make(sim.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
