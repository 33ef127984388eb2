package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/sim"
)

// oscillator is x'' = -x with state {x, v}.
type oscillator struct{}

func (o *oscillator) Derivative(x sim.State, t float64) sim.State {
	return sim.State{x[1], -x[0]}
}

func (o *oscillator) StateDim() int { return 2 }

func energy(x sim.State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestRK4Accuracy(t *testing.T) {
	dyn := &oscillator{}
	integ := NewRK4()

	x := sim.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4DoesNotAliasInput(t *testing.T) {
	integ := NewRK4()
	x := sim.State{1.0, 0.0}
	next := integ.Step(&oscillator{}, x, 0, 0.1)
	if x[0] != 1.0 || x[1] != 0.0 {
		t.Errorf("input state modified: %v", x)
	}
	next[0] = 42
	again := integ.Step(&oscillator{}, x, 0, 0.1)
	if again[0] == 42 {
		t.Error("result shares memory with a previous result")
	}
}
