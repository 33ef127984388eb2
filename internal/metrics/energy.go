package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/sim"
)

// EnergyDrift tracks the largest relative change of the dynamics' energy
// against the first observed state. Dynamics without an energy report 0.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
	dyn           sim.Dynamics
}

func NewEnergyDrift(dyn sim.Dynamics) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		dyn:  dyn,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x sim.State, t float64) {
	h, ok := e.dyn.(sim.Hamiltonian)
	if !ok {
		return
	}

	energy := h.Energy(x)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		if !math.IsNaN(drift) {
			e.maxDrift = math.Max(e.maxDrift, drift)
		}
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

type angularMomentum interface {
	AngularMomentum(x sim.State) float64
}

// MomentumDrift is EnergyDrift for the specific angular momentum.
type MomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
	dyn      sim.Dynamics
}

func NewMomentumDrift(dyn sim.Dynamics) *MomentumDrift {
	return &MomentumDrift{dyn: dyn}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(x sim.State, t float64) {
	am, ok := m.dyn.(angularMomentum)
	if !ok {
		return
	}

	h := am.AngularMomentum(x)
	if m.samples == 0 {
		m.initial = h
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(h-m.initial) / math.Abs(m.initial)
		if !math.IsNaN(drift) {
			m.maxDrift = math.Max(m.maxDrift, drift)
		}
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
