package integrators

import "github.com/san-kum/orbitsim/internal/sim"

// Verlet is velocity Verlet for second-order systems laid out as
// positions followed by velocities.
type Verlet struct {
	scratch sim.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(dyn sim.Dynamics, x sim.State, t, dt float64) sim.State {
	n := len(x)
	half := n / 2
	if len(v.scratch) != n {
		v.scratch = make(sim.State, n)
	}

	a0 := dyn.Derivative(x, t)
	result := make(sim.State, n)

	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*a0[half+i]*dt*dt
		v.scratch[i] = result[i]
		v.scratch[half+i] = x[half+i]
	}

	a1 := dyn.Derivative(v.scratch, t+dt)
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + 0.5*(a0[half+i]+a1[half+i])*dt
	}
	return result
}

// Leapfrog is the kick-drift-kick form: half a velocity kick, a full drift,
// then the second half kick with the acceleration at the new position.
type Leapfrog struct {
	scratch sim.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(dyn sim.Dynamics, x sim.State, t, dt float64) sim.State {
	n := len(x)
	half := n / 2
	if len(l.scratch) != n {
		l.scratch = make(sim.State, n)
	}

	a0 := dyn.Derivative(x, t)
	result := make(sim.State, n)

	for i := 0; i < half; i++ {
		vHalf := x[half+i] + 0.5*a0[half+i]*dt
		result[i] = x[i] + vHalf*dt
		result[half+i] = vHalf
		l.scratch[i] = result[i]
		l.scratch[half+i] = vHalf
	}

	a1 := dyn.Derivative(l.scratch, t+dt)
	for i := 0; i < half; i++ {
		result[half+i] += 0.5 * a1[half+i] * dt
	}
	return result
}
