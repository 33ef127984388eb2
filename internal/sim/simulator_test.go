package sim

import (
	"errors"
	"math"
	"testing"
)

type testDynamics struct{}

func (d *testDynamics) Derivative(x State, t float64) State {
	return State{-x[0]}
}

func (d *testDynamics) StateDim() int { return 1 }

type testIntegrator struct{}

func (i *testIntegrator) Step(dyn Dynamics, x State, t float64, dt float64) State {
	dx := dyn.Derivative(x, t)
	return State{x[0] + dt*dx[0]}
}

// blowup divides by the state, so a zero state turns into Inf then NaN.
type blowup struct{}

func (b *blowup) Derivative(x State, t float64) State { return State{1 / x[0]} }
func (b *blowup) StateDim() int                       { return 1 }

func TestSimulatorRun(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	result, err := sim.Run(State{1.0}, Config{Dt: 0.1, Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 10 {
		t.Errorf("expected 10 states, got %d", len(result.States))
	}
	if len(result.Times) != 10 {
		t.Errorf("expected 10 times, got %d", len(result.Times))
	}
	if result.StepsTaken != 10 {
		t.Errorf("expected 10 steps taken, got %d", result.StepsTaken)
	}
	if result.Initial[0] != 1.0 {
		t.Errorf("initial state should be kept, got %v", result.Initial)
	}

	final := result.States[len(result.States)-1][0]
	expected := math.Exp(-1.0)
	if math.Abs(final-expected) > 0.2 {
		t.Errorf("expected final state ~%.4f, got %.4f", expected, final)
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	tests := []struct {
		name string
		x0   State
		cfg  Config
		want error
	}{
		{"negative steps", State{1.0}, Config{Dt: 0.1, Steps: -1}, ErrInvalidConfig},
		{"wrong dimension", State{1.0, 2.0}, Config{Dt: 0.1, Steps: 1}, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(tt.x0, tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSimulatorZeroSteps(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	result, err := sim.Run(State{1.0}, Config{Dt: 0.1, Steps: 0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.States) != 0 {
		t.Errorf("expected no states, got %d", len(result.States))
	}
	if result.Initial[0] != 1.0 {
		t.Errorf("empty run should keep the initial state, got %v", result.Initial)
	}
}

func TestSimulatorKeepsNonFiniteStates(t *testing.T) {
	sim := New(&blowup{}, &testIntegrator{})

	result, err := sim.Run(State{0}, Config{Dt: 1, Steps: 5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.States) != 5 {
		t.Fatalf("expected 5 states despite divergence, got %d", len(result.States))
	}

	if result.States[0].IsValid() {
		t.Errorf("expected first state to be non-finite, got %v", result.States[0])
	}
}

type testMetric struct {
	count int
	sum   float64
}

func (m *testMetric) Name() string { return "test" }
func (m *testMetric) Observe(x State, t float64) {
	m.count++
	m.sum += x[0]
}
func (m *testMetric) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}
func (m *testMetric) Reset() {
	m.count = 0
	m.sum = 0
}

func TestSimulatorMetricsAndObservers(t *testing.T) {
	sim := New(&testDynamics{}, &testIntegrator{})

	metric := &testMetric{}
	sim.AddMetric(metric)

	var steps []int
	sim.AddObserver(ObserverFunc(func(step int, x State, t float64) {
		steps = append(steps, step)
	}))

	result, err := sim.Run(State{1.0}, Config{Dt: 0.1, Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["test"]; !ok {
		t.Error("metric not found in result")
	}
	// initial state plus one observation per step
	if metric.count != 11 {
		t.Errorf("expected 11 observations, got %d", metric.count)
	}
	if len(steps) != 11 || steps[0] != 0 || steps[10] != 10 {
		t.Errorf("unexpected observer steps: %v", steps)
	}
}
