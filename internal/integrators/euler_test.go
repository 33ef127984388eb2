package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/sim"
)

func TestEulerUpdateOrdering(t *testing.T) {
	tests := []struct {
		name  string
		integ sim.Integrator
		want  sim.State
	}{
		// v1 = 0 - 1*0.1, x1 = 1 + v1*0.1
		{"semi-implicit", NewEuler(), sim.State{0.99, -0.1}},
		// x1 = 1 + 0*0.1, v1 = 0 - 1*0.1
		{"forward", NewForwardEuler(), sim.State{1.0, -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.integ.Step(&oscillator{}, sim.State{1.0, 0.0}, 0, 0.1)
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-15 {
					t.Errorf("component %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEnergyBehaviour(t *testing.T) {
	tests := []struct {
		name     string
		integ    sim.Integrator
		maxDrift float64
	}{
		{"euler", NewEuler(), 0.06},
		{"leapfrog", NewLeapfrog(), 1e-3},
		{"verlet", NewVerlet(), 1e-3},
		{"rk4", NewRK4(), 5e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := sim.State{1.0, 0.0}
			e0 := energy(x)
			dt := 0.05
			for i := 0; i < 2000; i++ {
				x = tt.integ.Step(&oscillator{}, x, float64(i)*dt, dt)
			}
			drift := math.Abs(energy(x)-e0) / e0
			if drift > tt.maxDrift {
				t.Errorf("energy drift %.3e exceeds %.3e", drift, tt.maxDrift)
			}
		})
	}
}

func TestForwardEulerGainsEnergy(t *testing.T) {
	integ := NewForwardEuler()
	x := sim.State{1.0, 0.0}
	e0 := energy(x)
	for i := 0; i < 100; i++ {
		x = integ.Step(&oscillator{}, x, 0, 0.05)
	}
	if energy(x) <= e0 {
		t.Errorf("expected forward Euler to gain energy, got %.6f <= %.6f", energy(x), e0)
	}
}
