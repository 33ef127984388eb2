// Package orbit integrates a point mass around a fixed central body and
// returns its path as a [Trajectory].
//
// [Simulate] is a pure function of its [Params]: no package state, no
// randomness, no clock. Two calls with equal params return bit-identical
// trajectories.
//
// # Update rule
//
// Each step computes the acceleration at the current position, advances the
// velocity with it and then advances the position with the new velocity:
//
//	r  = sqrt(x² + y²)
//	a  = G·M / r²
//	vx += -a·x/r · dt;  vy += -a·y/r · dt
//	x  += vx · dt;      y  += vy · dt
//
// The method is first order and drifts over long runs.
//
// # Degenerate input
//
// A body placed on the central body (r = 0) produces NaN from the first
// step onward. The trajectory still has the requested length; use
// [Trajectory.Finite] or [Trajectory.Validate] to detect it.
package orbit
