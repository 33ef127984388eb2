package integrators

import "github.com/san-kum/orbitsim/internal/sim"

// RK4 is the classical fourth-order Runge-Kutta method. Stage buffers are
// reused between steps, so one RK4 value must not be shared across goroutines.
type RK4 struct {
	k       [4]sim.State
	scratch sim.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) grow(n int) {
	if len(r.scratch) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(sim.State, n)
	}
	r.scratch = make(sim.State, n)
}

// offset writes x + h*k into r.scratch.
func (r *RK4) offset(x, k sim.State, h float64) sim.State {
	for i := range x {
		r.scratch[i] = x[i] + h*k[i]
	}
	return r.scratch
}

func (r *RK4) Step(dyn sim.Dynamics, x sim.State, t, dt float64) sim.State {
	r.grow(len(x))
	half := dt * 0.5

	copy(r.k[0], dyn.Derivative(x, t))
	copy(r.k[1], dyn.Derivative(r.offset(x, r.k[0], half), t+half))
	copy(r.k[2], dyn.Derivative(r.offset(x, r.k[1], half), t+half))
	copy(r.k[3], dyn.Derivative(r.offset(x, r.k[2], dt), t+dt))

	result := make(sim.State, len(x))
	dt6 := dt / 6.0
	for i := range x {
		result[i] = x[i] + dt6*(r.k[0][i]+2*r.k[1][i]+2*r.k[2][i]+r.k[3][i])
	}
	return result
}
