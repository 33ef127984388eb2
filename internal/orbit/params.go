package orbit

import (
	"github.com/san-kum/orbitsim/internal/models"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Reference scenario: a body launched horizontally at 5 km/s from the
// Earth's surface.
const (
	DefaultG     = 6.672e-11
	DefaultMass  = 5.97e24
	DefaultX0    = 0.0
	DefaultY0    = 6.371e6
	DefaultVX0   = 5000.0
	DefaultVY0   = 0.0
	DefaultDt    = 1.0
	DefaultSteps = 5000
)

// Params is an immutable description of one run.
type Params struct {
	G     float64
	M     float64
	X0    float64
	Y0    float64
	VX0   float64
	VY0   float64
	Dt    float64
	Steps int
}

func DefaultParams() Params {
	return Params{
		G:     DefaultG,
		M:     DefaultMass,
		X0:    DefaultX0,
		Y0:    DefaultY0,
		VX0:   DefaultVX0,
		VY0:   DefaultVY0,
		Dt:    DefaultDt,
		Steps: DefaultSteps,
	}
}

// InitialState returns {x0, y0, vx0, vy0}.
func (p Params) InitialState() sim.State {
	return sim.State{p.X0, p.Y0, p.VX0, p.VY0}
}

// Body returns the dynamics for the central body described by p.
func (p Params) Body() *models.CentralBody {
	return models.NewCentralBody(p.G, p.M)
}

// Duration is the simulated time covered by the run.
func (p Params) Duration() float64 {
	if p.Steps <= 0 {
		return 0
	}
	return float64(p.Steps) * p.Dt
}
