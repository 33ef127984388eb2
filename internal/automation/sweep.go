package automation

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
)

// ParameterSweep runs one scenario across evenly spaced values of a single
// body parameter.
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue float64
	Summary    analysis.Summary
}

// Values returns the parameter values the sweep visits.
func (s *ParameterSweep) Values() []float64 {
	if s.NumSteps <= 1 {
		return []float64{s.ParamMin}
	}
	step := (s.ParamMax - s.ParamMin) / float64(s.NumSteps-1)
	vals := make([]float64, s.NumSteps)
	for i := range vals {
		vals[i] = s.ParamMin + float64(i)*step
	}
	vals[len(vals)-1] = s.ParamMax
	return vals
}

func RunSweep(sweep *ParameterSweep, registry *experiment.Registry, logger hclog.Logger) ([]SweepResult, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	base := sweep.Base
	if base == nil {
		base = config.DefaultConfig()
	}

	vals := sweep.Values()
	results := make([]SweepResult, 0, len(vals))
	for _, v := range vals {
		cfg := base.Clone()
		if err := SetBodyParam(&cfg.Body, sweep.ParamName, v); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s=%v: %w", sweep.ParamName, v, err)
		}

		p := cfg.Params()
		out, err := experiment.New(experiment.Config{Params: p, Integrator: cfg.Integrator}, registry, logger).Run()
		if err != nil {
			return nil, fmt.Errorf("%s=%v: %w", sweep.ParamName, v, err)
		}
		logger.Debug("sweep point", sweep.ParamName, v)
		results = append(results, SweepResult{ParamValue: v, Summary: analysis.Summarize(p, out)})
	}
	return results, nil
}

// Best returns the result with the smallest finite value of the named
// metric. It reports false when no result has one.
func Best(results []SweepResult, metric string) (SweepResult, bool) {
	best, found := SweepResult{}, false
	bestVal := math.Inf(1)
	for _, r := range results {
		v, ok := r.Summary.Metrics[metric]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < bestVal {
			best, bestVal, found = r, v, true
		}
	}
	return best, found
}
