package orbit

import (
	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Simulate runs p with the semi-implicit Euler step and returns exactly
// max(p.Steps, 0) positions.
func Simulate(p Params) *Trajectory {
	// Run only fails on negative steps or a state of the wrong size. It
	// clamps the former and InitialState always matches the body.
	out, _ := Run(p, Options{})
	return out.Trajectory
}

// Options tune a Run beyond the physical parameters.
type Options struct {
	// Integrator defaults to integrators.Euler.
	Integrator sim.Integrator
	Metrics    []sim.Metric
	Observers  []sim.Observer
	Logger     hclog.Logger
}

// Outcome bundles the trajectory with the full simulator result.
type Outcome struct {
	Trajectory *Trajectory
	Result     *sim.Result
}

// Run is Simulate with a choice of integrator, metrics and observers.
// Numeric degeneracy is never reported as an error; an error means the
// simulator rejected its configuration.
func Run(p Params, opts Options) (*Outcome, error) {
	integ := opts.Integrator
	if integ == nil {
		integ = integrators.NewEuler()
	}

	steps := p.Steps
	if steps < 0 {
		steps = 0
	}

	s := sim.New(p.Body(), integ)
	s.SetLogger(opts.Logger)
	for _, m := range opts.Metrics {
		s.AddMetric(m)
	}
	for _, o := range opts.Observers {
		s.AddObserver(o)
	}

	result, err := s.Run(p.InitialState(), sim.Config{Dt: p.Dt, Steps: steps})
	if err != nil {
		return &Outcome{Trajectory: newTrajectory(0)}, err
	}

	return &Outcome{Trajectory: FromResult(result), Result: result}, nil
}
