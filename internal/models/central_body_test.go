package models

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	earthG      = 6.672e-11
	earthMass   = 5.97e24
	earthRadius = 6.371e6
)

func TestCentralBodyDimensions(t *testing.T) {
	c := NewCentralBody(earthG, earthMass)
	if c.StateDim() != 4 {
		t.Errorf("expected state dim 4, got %d", c.StateDim())
	}
}

func TestCentralBodySurfaceGravity(t *testing.T) {
	c := NewCentralBody(earthG, earthMass)
	dx := c.Derivative(sim.State{0, earthRadius, 5000, 0}, 0)

	if dx[0] != 5000 || dx[1] != 0 {
		t.Errorf("position derivative should equal velocity, got %v", dx[:2])
	}
	if dx[2] != 0 {
		t.Errorf("expected zero x acceleration, got %v", dx[2])
	}
	if math.Abs(dx[3]+9.81330187177561) > 1e-12 {
		t.Errorf("expected ay ~ -9.8133, got %.15f", dx[3])
	}
}

func TestCentralBodyPointsToOrigin(t *testing.T) {
	c := NewCentralBody(1, 1)
	tests := []struct{ x, y float64 }{
		{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {3, 4}, {-2, 5},
	}
	for _, tt := range tests {
		ax, ay := c.Acceleration(tt.x, tt.y)
		// anti-parallel: cross product zero, dot product negative
		if math.Abs(ax*tt.y-ay*tt.x) > 1e-12 || ax*tt.x+ay*tt.y >= 0 {
			t.Errorf("acceleration at (%v, %v) = (%v, %v) does not point to origin", tt.x, tt.y, ax, ay)
		}
		r := math.Hypot(tt.x, tt.y)
		if got := math.Hypot(ax, ay); math.Abs(got-1/(r*r)) > 1e-12 {
			t.Errorf("magnitude at r=%v: got %v, want %v", r, got, 1/(r*r))
		}
	}
}

func TestCentralBodyAtOrigin(t *testing.T) {
	c := NewCentralBody(earthG, earthMass)
	ax, ay := c.Acceleration(0, 0)
	if !math.IsNaN(ax) || !math.IsNaN(ay) {
		t.Errorf("expected NaN acceleration at origin, got (%v, %v)", ax, ay)
	}
}

func TestCentralBodyOrbitalElements(t *testing.T) {
	c := NewCentralBody(earthG, earthMass)
	v := c.CircularSpeed(earthRadius)
	x := sim.State{0, earthRadius, v, 0}

	if e := c.Eccentricity(x); e > 1e-6 {
		t.Errorf("circular orbit eccentricity should be ~0, got %v", e)
	}
	if a := c.SemiMajorAxis(x); math.Abs(a-earthRadius)/earthRadius > 1e-9 {
		t.Errorf("semi-major axis should equal radius, got %v", a)
	}

	want := 2 * math.Pi * earthRadius / v
	if p := c.Period(x); math.Abs(p-want)/want > 1e-9 {
		t.Errorf("period = %v, want %v", p, want)
	}

	escape := sim.State{0, earthRadius, c.EscapeSpeed(earthRadius) * 1.01, 0}
	if !math.IsInf(c.Period(escape), 1) {
		t.Error("unbound orbit should have infinite period")
	}
	if c.Energy(escape) <= 0 {
		t.Error("unbound orbit should have positive energy")
	}
}
