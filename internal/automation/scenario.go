package automation

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/chart"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/export"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted batch of runs.
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Runs        []RunEntry `yaml:"runs"`
}

// RunEntry describes one run: a preset (or the defaults) with body
// parameters overridden by name.
type RunEntry struct {
	Name       string             `yaml:"name"`
	Preset     string             `yaml:"preset"`
	Integrator string             `yaml:"integrator"`
	Body       map[string]float64 `yaml:"body"`
	SVG        string             `yaml:"svg"`
}

// Report is the outcome of one run of a scenario.
type Report struct {
	Name       string
	Integrator string
	Summary    analysis.Summary
	SVG        string
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %s: no runs", path)
	}

	return &scenario, nil
}

// Config builds the validated configuration of a run.
func (r RunEntry) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if r.Preset != "" {
		cfg = config.GetPreset(r.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", r.Preset)
		}
	}
	if r.Integrator != "" {
		cfg.Integrator = r.Integrator
	}

	names := make([]string, 0, len(r.Body))
	for k := range r.Body {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if err := SetBodyParam(&cfg.Body, k, r.Body[k]); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario executes every run in order and stops at the first error.
// Degenerate runs are not errors; their summaries report it.
func RunScenario(s *Scenario, registry *experiment.Registry, logger hclog.Logger) ([]Report, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	reports := make([]Report, 0, len(s.Runs))

	for i, run := range s.Runs {
		name := run.Name
		if name == "" {
			name = fmt.Sprintf("run-%d", i+1)
		}
		logger.Info("running", "scenario", s.Name, "run", name, "index", i+1, "of", len(s.Runs))

		cfg, err := run.Config()
		if err != nil {
			return reports, fmt.Errorf("run %s: %w", name, err)
		}

		p := cfg.Params()
		exp := experiment.New(experiment.Config{Params: p, Integrator: cfg.Integrator}, registry, logger.Named(name))
		out, err := exp.Run()
		if err != nil {
			return reports, fmt.Errorf("run %s: %w", name, err)
		}

		rep := Report{
			Name:       name,
			Integrator: cfg.Integrator,
			Summary:    analysis.Summarize(p, out),
		}
		if !rep.Summary.Finite {
			logger.Warn("run degenerated", "run", name, "first_step", rep.Summary.FirstNonFinite)
		}

		if run.SVG != "" {
			opts := cfg.ChartOptions()
			opts.Title = name
			if err := export.NewSVG(run.SVG).Show(chart.FromTrajectory(out.Trajectory, opts)); err != nil {
				return reports, fmt.Errorf("run %s: %w", name, err)
			}
			rep.SVG = run.SVG
		}

		reports = append(reports, rep)
	}

	return reports, nil
}

// SetBodyParam sets a body field by its yaml name.
func SetBodyParam(b *config.BodyConfig, name string, v float64) error {
	switch name {
	case "g":
		b.G = v
	case "mass":
		b.Mass = v
	case "x0":
		b.X0 = v
	case "y0":
		b.Y0 = v
	case "vx0":
		b.VX0 = v
	case "vy0":
		b.VY0 = v
	case "dt":
		b.Dt = v
	case "steps":
		if v != math.Trunc(v) {
			return fmt.Errorf("steps must be a whole number, got %v", v)
		}
		b.Steps = int(v)
	default:
		return fmt.Errorf("unknown body parameter: %s", name)
	}
	return nil
}
