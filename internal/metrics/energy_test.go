package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/models"
	"github.com/san-kum/orbitsim/internal/sim"
)

func TestEnergyDrift(t *testing.T) {
	body := models.NewCentralBody(1, 1)
	m := NewEnergyDrift(body)

	m.Observe(sim.State{1, 0, 0, 1}, 0)   // E = 0.5 - 1 = -0.5
	m.Observe(sim.State{1, 0, 0, 1.1}, 1) // E = 0.605 - 1 = -0.395
	m.Observe(sim.State{1, 0, 0, 1}, 2)

	want := 0.105 / 0.5
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected max drift %.6f, got %.6f", want, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestEnergyDriftIgnoresNaN(t *testing.T) {
	m := NewEnergyDrift(models.NewCentralBody(1, 1))
	m.Observe(sim.State{1, 0, 0, 1}, 0)
	m.Observe(sim.State{math.NaN(), 0, 0, 1}, 1)
	if m.Value() != 0 {
		t.Errorf("NaN energy should not count as drift, got %v", m.Value())
	}
}

type noEnergy struct{}

func (n *noEnergy) Derivative(x sim.State, t float64) sim.State { return x }
func (n *noEnergy) StateDim() int                               { return 4 }

func TestEnergyDriftWithoutHamiltonian(t *testing.T) {
	m := NewEnergyDrift(&noEnergy{})
	m.Observe(sim.State{1, 0, 0, 1}, 0)
	m.Observe(sim.State{5, 0, 0, 9}, 1)
	if m.Value() != 0 {
		t.Errorf("expected 0 for dynamics without energy, got %v", m.Value())
	}
}

func TestMomentumDrift(t *testing.T) {
	m := NewMomentumDrift(models.NewCentralBody(1, 1))
	m.Observe(sim.State{1, 0, 0, 1}, 0) // h = 1
	m.Observe(sim.State{1, 0, 0, 2}, 1) // h = 2
	if math.Abs(m.Value()-1) > 1e-12 {
		t.Errorf("expected drift 1, got %v", m.Value())
	}
}
