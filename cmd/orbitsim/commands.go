package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/chart"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/gui"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
	"github.com/spf13/cobra"
)

var registry = experiment.NewRegistry()

// simulate runs the resolved scenario and warns about non-finite output.
func simulate(cfg *config.Config, logger hclog.Logger) (*orbit.Outcome, error) {
	p := cfg.Params()
	exp := experiment.New(experiment.Config{
		Params:     p,
		Integrator: cfg.Integrator,
		Echo:       cfg.Echo || logger.IsDebug(),
		EchoLogger: echoLogger(logger),
	}, registry, logger)

	start := time.Now()
	out, err := exp.Run()
	if err != nil {
		return nil, err
	}
	logger.Info("simulation complete",
		"integrator", cfg.Integrator,
		"steps", out.Trajectory.Len(),
		"elapsed", time.Since(start))

	if err := out.Trajectory.Validate(p.Dt); err != nil {
		var se *sim.SimulationError
		if errors.As(err, &se) {
			logger.Warn("trajectory degenerated, the chart will omit non-finite points",
				"first_step", se.Step, "t", se.Time, "error", se.Wrapped)
		}
	}
	return out, nil
}

func newDisplay(cfg *config.Config, logger hclog.Logger) (chart.Display, error) {
	switch cfg.Display.Kind {
	case "window":
		return gui.NewWindow(logger.Named("gui")), nil
	case "terminal":
		t := viz.NewTerminal(os.Stdout)
		t.Theme = viz.ThemeByName(cfg.Display.Theme)
		return t, nil
	case "viewer":
		return viz.NewViewer(viz.ThemeByName(cfg.Display.Theme)), nil
	case "svg":
		return export.NewSVG(cfg.Display.Out), nil
	}
	return nil, fmt.Errorf("unknown display: %s", cfg.Display.Kind)
}

func show(cfg *config.Config, logger hclog.Logger, d chart.Display, tr *orbit.Trajectory) error {
	c := chart.FromTrajectory(tr, cfg.ChartOptions())
	logger.Debug("showing chart", "display", cfg.Display.Kind, "points", c.Points())
	return d.Show(c)
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	out, err := simulate(cfg, logger)
	if err != nil {
		return err
	}
	d, err := newDisplay(cfg, logger)
	if err != nil {
		return err
	}
	if err := show(cfg, logger, d, out.Trajectory); err != nil {
		return err
	}
	if cfg.Display.Kind == "svg" {
		fmt.Printf("wrote %s\n", cfg.Display.Out)
	}
	return nil
}

func plotScenario(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	out, err := simulate(cfg, logger)
	if err != nil {
		return err
	}
	t := viz.NewTerminal(os.Stdout)
	t.Theme = viz.ThemeByName(cfg.Display.Theme)
	t.Series = true
	cfg.Display.Kind = "terminal"
	return show(cfg, logger, t, out.Trajectory)
}

func svgScenario(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	out, err := simulate(cfg, logger)
	if err != nil {
		return err
	}
	cfg.Display.Kind = "svg"
	if err := show(cfg, logger, export.NewSVG(cfg.Display.Out), out.Trajectory); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", cfg.Display.Out)
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = registry.ListIntegrators()
	}

	results, err := experiment.Compare(registry, cfg.Params(), names, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tENERGY DRIFT\tR MIN\tR MAX\tFROM START\tFINITE\tTIME")
	for _, r := range results {
		s := r.Summary
		fmt.Fprintf(w, "%s\t%.3e\t%.4g\t%.4g\t%.4g\t%v\t%v\n",
			r.Integrator,
			s.Metrics["energy_drift"],
			s.RadiusMin, s.RadiusMax, s.DistanceFromStart,
			s.Finite,
			r.Elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}

func analyzeScenario(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	out, err := simulate(cfg, logger)
	if err != nil {
		return err
	}
	p := cfg.Params()
	s := analysis.Summarize(p, out)

	fmt.Printf("steps:          %d (%.0f s)\n", s.Steps, s.Duration)
	fmt.Printf("integrator:     %s\n", cfg.Integrator)
	if !s.Finite {
		fmt.Printf("degenerate:     first non-finite sample at step %d\n", s.FirstNonFinite)
	}
	fmt.Printf("radius:         %s .. %s m\n", num(s.RadiusMin), num(s.RadiusMax))
	fmt.Printf("from start:     %s m\n", num(s.DistanceFromStart))
	fmt.Printf("eccentricity:   %s\n", num(s.Eccentricity))
	fmt.Printf("kepler period:  %s s\n", num(s.KeplerPeriod))
	fmt.Printf("apsis period:   %s s\n", num(s.ApsisPeriod))
	fmt.Printf("fft period:     %s s\n", num(s.SpectralPeriod))

	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(s.Metrics) {
		fmt.Printf("  %s: %.6g\n", name, s.Metrics[name])
	}

	radii := out.Trajectory.Radii()
	if idx, bad := out.Trajectory.FirstNonFinite(); bad {
		radii = radii[:idx]
	}
	if len(radii) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(radii,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption("distance from origin vs step")))
	}
	return nil
}

func benchIntegrators(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = registry.ListIntegrators()
	}

	results, err := experiment.Bench(registry, cfg.Params(), names, repeats)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tSTEPS\tTIME\tSTEPS/S")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n", r.Integrator, r.Steps, r.Elapsed.Round(time.Microsecond), r.StepsPerSecond)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path := "orbitsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	if math.IsInf(v, 0) {
		return "unbounded"
	}
	return fmt.Sprintf("%.6g", v)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
