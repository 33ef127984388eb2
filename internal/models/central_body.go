package models

import (
	"math"

	"github.com/san-kum/orbitsim/internal/sim"
)

// CentralBody is a point mass orbiting a fixed body of mass M at the origin.
// State layout: {x, y, vx, vy}.
//
// The force is not softened. A body at the origin gives r = 0, an infinite
// acceleration and NaN components; those values are returned as is.
type CentralBody struct {
	G float64
	M float64
}

func NewCentralBody(g, m float64) *CentralBody {
	return &CentralBody{G: g, M: m}
}

func (c *CentralBody) StateDim() int {
	return 4
}

// Mu is the standard gravitational parameter G·M.
func (c *CentralBody) Mu() float64 {
	return c.G * c.M
}

// Acceleration returns the gravitational acceleration at (x, y).
func (c *CentralBody) Acceleration(x, y float64) (ax, ay float64) {
	r := math.Sqrt(x*x + y*y)
	a := c.G * c.M / r / r
	return -a * x / r, -a * y / r
}

func (c *CentralBody) Derivative(x sim.State, t float64) sim.State {
	ax, ay := c.Acceleration(x[0], x[1])
	return sim.State{x[2], x[3], ax, ay}
}

// Energy is the specific orbital energy v²/2 - GM/r.
func (c *CentralBody) Energy(x sim.State) float64 {
	r := math.Hypot(x[0], x[1])
	v2 := x[2]*x[2] + x[3]*x[3]
	return 0.5*v2 - c.Mu()/r
}

// AngularMomentum is the specific angular momentum x·vy - y·vx.
func (c *CentralBody) AngularMomentum(x sim.State) float64 {
	return x[0]*x[3] - x[1]*x[2]
}

// CircularSpeed is the speed of a circular orbit of radius r.
func (c *CentralBody) CircularSpeed(r float64) float64 {
	return math.Sqrt(c.Mu() / r)
}

// EscapeSpeed is the speed needed to escape from radius r.
func (c *CentralBody) EscapeSpeed(r float64) float64 {
	return math.Sqrt(2 * c.Mu() / r)
}

// SemiMajorAxis follows from the vis-viva equation. It is negative for
// hyperbolic states and infinite for parabolic ones.
func (c *CentralBody) SemiMajorAxis(x sim.State) float64 {
	return -c.Mu() / (2 * c.Energy(x))
}

// Period is the Kepler period of a bound state, or +Inf when unbound.
func (c *CentralBody) Period(x sim.State) float64 {
	a := c.SemiMajorAxis(x)
	if a <= 0 || math.IsInf(a, 0) || math.IsNaN(a) {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(a*a*a/c.Mu())
}

// Eccentricity of the osculating orbit.
func (c *CentralBody) Eccentricity(x sim.State) float64 {
	h := c.AngularMomentum(x)
	e := 1 + 2*c.Energy(x)*h*h/(c.Mu()*c.Mu())
	if e < 0 {
		return 0
	}
	return math.Sqrt(e)
}
