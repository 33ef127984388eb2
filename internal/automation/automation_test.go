package automation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/sim"
)

const scenarioYAML = `name: launches
description: surface launches at two speeds
runs:
  - name: slow
    body:
      vx0: 4000
      steps: 300
  - preset: degenerate
  - name: fast
    integrator: rk4
    body:
      vx0: 9000
      steps: 300
    svg: %s
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScenario(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "fast.svg")
	path := writeScenario(t, strings.Replace(scenarioYAML, "%s", svg, 1))

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "launches" || len(s.Runs) != 3 {
		t.Fatalf("unexpected scenario %+v", s)
	}

	reports, err := RunScenario(s, experiment.NewRegistry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}

	if reports[0].Name != "slow" || reports[0].Summary.Steps != 300 || !reports[0].Summary.Finite {
		t.Errorf("unexpected first report %+v", reports[0])
	}
	if reports[1].Name != "run-2" || reports[1].Summary.Finite {
		t.Errorf("degenerate run should be named run-2 and report NaN: %+v", reports[1])
	}
	if reports[2].Integrator != "rk4" || reports[2].SVG != svg {
		t.Errorf("unexpected last report %+v", reports[2])
	}
	if _, err := os.Stat(svg); err != nil {
		t.Errorf("svg not written: %v", err)
	}
}

func TestRunScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		run  RunEntry
		want error
	}{
		{"unknown integrator", RunEntry{Integrator: "midpoint"}, sim.ErrUnknownIntegrator},
		{"invalid dt", RunEntry{Body: map[string]float64{"dt": 0}}, sim.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scenario{Runs: []RunEntry{tt.run}}
			_, err := RunScenario(s, experiment.NewRegistry(), nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadScenarioEmpty(t *testing.T) {
	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); err == nil {
		t.Error("expected error for a scenario without runs")
	}
}

func TestSetBodyParam(t *testing.T) {
	var b config.BodyConfig
	for _, name := range []string{"g", "mass", "x0", "y0", "vx0", "vy0", "dt", "steps"} {
		if err := SetBodyParam(&b, name, 2); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if b.Steps != 2 || b.VY0 != 2 {
		t.Errorf("values not applied: %+v", b)
	}
	if err := SetBodyParam(&b, "steps", 2.5); err == nil {
		t.Error("fractional steps should be rejected")
	}
	if err := SetBodyParam(&b, "spin", 1); err == nil {
		t.Error("unknown parameter should be rejected")
	}
}

func TestSweep(t *testing.T) {
	base := config.DefaultConfig()
	base.Body.Steps = 500

	sweep := &ParameterSweep{Base: base, ParamName: "vx0", ParamMin: 4000, ParamMax: 8000, NumSteps: 5}
	vals := sweep.Values()
	want := []float64{4000, 5000, 6000, 7000, 8000}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, vals[i], want[i])
		}
	}

	results, err := RunSweep(sweep, experiment.NewRegistry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	if base.Body.VX0 != 5000 {
		t.Error("sweep modified its base config")
	}

	// The launch is at apoapsis below circular speed, so eccentricity falls
	// as vx0 approaches 7907 m/s.
	if !(results[0].Summary.Eccentricity > results[3].Summary.Eccentricity) {
		t.Errorf("eccentricity should fall toward circular speed: %v vs %v",
			results[0].Summary.Eccentricity, results[3].Summary.Eccentricity)
	}

	best, ok := Best(results, "energy_drift")
	if !ok {
		t.Fatal("expected a best result")
	}
	for _, r := range results {
		if r.Summary.Metrics["energy_drift"] < best.Summary.Metrics["energy_drift"] {
			t.Errorf("%v beats the reported best %v", r.ParamValue, best.ParamValue)
		}
	}

	if _, err := RunSweep(&ParameterSweep{ParamName: "spin", NumSteps: 2}, experiment.NewRegistry(), nil); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestBestSkipsNaN(t *testing.T) {
	if _, ok := Best(nil, "energy_drift"); ok {
		t.Error("empty results have no best")
	}
}
