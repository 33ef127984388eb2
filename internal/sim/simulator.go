package sim

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Simulator advances a Dynamics with an Integrator for a fixed number of
// steps. It never stops early: non-finite states are carried to the end of
// the run so that the result always holds exactly cfg.Steps states.
type Simulator struct {
	dyn        Dynamics
	integrator Integrator
	metrics    []Metric
	observers  []Observer
	logger     hclog.Logger
}

func New(dyn Dynamics, integrator Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
		logger:     hclog.NewNullLogger(),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// SetLogger replaces the default null logger.
func (s *Simulator) SetLogger(l hclog.Logger) {
	if l != nil {
		s.logger = l
	}
}

func (s *Simulator) Run(x0 State, cfg Config) (*Result, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Initial: x0.Clone(),
		States:  make([]State, 0, cfg.Steps),
		Times:   make([]float64, 0, cfg.Steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt
	invalidAt := -1

	s.notify(0, x, t)

	for i := 0; i < cfg.Steps; i++ {
		x = s.integrator.Step(s.dyn, x, t, dt)
		t += dt
		result.StepsTaken++

		if invalidAt < 0 && !x.IsValid() {
			invalidAt = i
			s.logger.Warn("state became non-finite", "step", i, "t", t)
		}

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)

		s.notify(i+1, x, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Debug("run complete", "steps", result.StepsTaken, "t", t)

	return result, nil
}

func (s *Simulator) notify(step int, x State, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(step, x, t)
	}
}

func (s *Simulator) validate(x0 State, cfg Config) error {
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: steps must not be negative, got %d", ErrInvalidConfig, cfg.Steps)
	}
	if dim := s.dyn.StateDim(); len(x0) != dim {
		return fmt.Errorf("%w: got %d values, want %d", ErrDimensionMismatch, len(x0), dim)
	}
	return nil
}
