package experiment

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
)

type Config struct {
	Params     orbit.Params
	Integrator string
	// Echo logs every position at debug level through EchoLogger, or the
	// experiment's own logger when EchoLogger is nil.
	Echo       bool
	EchoLogger hclog.Logger
}

// Experiment is one orbit run with a named integrator and the default
// metrics attached.
type Experiment struct {
	cfg       Config
	registry  *Registry
	logger    hclog.Logger
	observers []sim.Observer
}

func New(cfg Config, registry *Registry, logger hclog.Logger) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if cfg.Integrator == "" {
		cfg.Integrator = "euler"
	}
	return &Experiment{cfg: cfg, registry: registry, logger: logger}
}

func (e *Experiment) AddObserver(o sim.Observer) {
	e.observers = append(e.observers, o)
}

func (e *Experiment) Run() (*orbit.Outcome, error) {
	integ, err := e.registry.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return nil, err
	}

	observers := append([]sim.Observer(nil), e.observers...)
	if e.cfg.Echo {
		echo := e.cfg.EchoLogger
		if echo == nil {
			echo = e.logger.Named("echo")
		}
		observers = append(observers, orbit.NewEcho(echo))
	}

	e.logger.Debug("starting run",
		"integrator", e.cfg.Integrator,
		"dt", e.cfg.Params.Dt,
		"steps", e.cfg.Params.Steps)

	return orbit.Run(e.cfg.Params, orbit.Options{
		Integrator: integ,
		Metrics:    e.registry.DefaultMetrics(e.cfg.Params),
		Observers:  observers,
		Logger:     e.logger.Named("sim"),
	})
}

// Comparison is the outcome of one integrator on a shared scenario.
type Comparison struct {
	Integrator string
	Summary    analysis.Summary
	Elapsed    time.Duration
}

// Compare runs p once per integrator name, in order.
func Compare(registry *Registry, p orbit.Params, names []string, logger hclog.Logger) ([]Comparison, error) {
	out := make([]Comparison, 0, len(names))
	for _, name := range names {
		exp := New(Config{Params: p, Integrator: name}, registry, logger)
		start := time.Now()
		res, err := exp.Run()
		if err != nil {
			return nil, fmt.Errorf("compare %s: %w", name, err)
		}
		out = append(out, Comparison{
			Integrator: name,
			Summary:    analysis.Summarize(p, res),
			Elapsed:    time.Since(start),
		})
	}
	return out, nil
}

type BenchResult struct {
	Integrator     string
	Steps          int
	Elapsed        time.Duration
	StepsPerSecond float64
}

// Bench times repeats runs of p without metrics for each integrator.
func Bench(registry *Registry, p orbit.Params, names []string, repeats int) ([]BenchResult, error) {
	if repeats < 1 {
		repeats = 1
	}
	out := make([]BenchResult, 0, len(names))
	for _, name := range names {
		integ, err := registry.GetIntegrator(name)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		for i := 0; i < repeats; i++ {
			if _, err := orbit.Run(p, orbit.Options{Integrator: integ}); err != nil {
				return nil, fmt.Errorf("bench %s: %w", name, err)
			}
		}
		elapsed := time.Since(start)
		steps := p.Steps * repeats
		r := BenchResult{Integrator: name, Steps: steps, Elapsed: elapsed}
		if elapsed > 0 {
			r.StepsPerSecond = float64(steps) / elapsed.Seconds()
		}
		out = append(out, r)
	}
	return out, nil
}
