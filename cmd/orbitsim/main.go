package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/spf13/cobra"
)

var (
	configFile string
	presetName string
	logLevel   string
	echo       bool

	g     float64
	mass  float64
	x0    float64
	y0    float64
	vx0   float64
	vy0   float64
	dt    float64
	steps int

	integrator string
	display    string
	theme      string
	outPath    string
	width      int
	height     int

	repeats int
	force   bool

	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepPoints int
	sweepMetric string
)

// main wires the orbitsim commands. With no subcommand it simulates the
// configured scenario and shows it in a desktop window.
func main() {
	rootCmd := &cobra.Command{
		Use:           "orbitsim",
		Short:         "two-body orbit simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScenario,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&presetName, "preset", "", "start from a named preset")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	pf.BoolVar(&echo, "echo", false, "log every position as x=<x> y=<y>")
	pf.Float64Var(&g, "g", orbit.DefaultG, "gravitational constant")
	pf.Float64Var(&mass, "mass", orbit.DefaultMass, "central mass (kg)")
	pf.Float64Var(&x0, "x0", orbit.DefaultX0, "initial x position (m)")
	pf.Float64Var(&y0, "y0", orbit.DefaultY0, "initial y position (m)")
	pf.Float64Var(&vx0, "vx0", orbit.DefaultVX0, "initial x velocity (m/s)")
	pf.Float64Var(&vy0, "vy0", orbit.DefaultVY0, "initial y velocity (m/s)")
	pf.Float64Var(&dt, "dt", orbit.DefaultDt, "timestep (s)")
	pf.IntVar(&steps, "steps", orbit.DefaultSteps, "number of steps")
	pf.StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")
	pf.IntVar(&width, "width", 600, "chart width (px)")
	pf.IntVar(&height, "height", 400, "chart height (px)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate and show the trajectory",
		Args:  cobra.NoArgs,
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&display, "display", config.DefaultDisplay,
		"display ("+strings.Join(config.Displays, ", ")+")")
	runCmd.Flags().StringVar(&outPath, "out", config.DefaultSVGPath, "svg output path")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the trajectory in the terminal",
		Args:  cobra.NoArgs,
		RunE:  plotScenario,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write the orbit chart as svg",
		Args:  cobra.NoArgs,
		RunE:  svgScenario,
	}
	svgCmd.Flags().StringVar(&outPath, "out", config.DefaultSVGPath, "output path")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare integrators on the same scenario",
		RunE:  compareIntegrators,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "orbital summary of a run",
		Args:  cobra.NoArgs,
		RunE:  analyzeScenario,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [integrator...]",
		Short: "benchmark integrators",
		RunE:  benchIntegrators,
	}
	benchCmd.Flags().IntVar(&repeats, "repeats", 20, "runs per integrator")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run every scenario in a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one body parameter",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "vx0", "body parameter to vary")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 4000, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 9000, "last value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 6, "number of values")
	sweepCmd.Flags().StringVar(&sweepMetric, "best", "energy_drift", "metric to minimise")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Printf("  %-12s %s\n", name, config.Presets[name].Description)
			}
			return nil
		},
	}

	integratorsCmd := &cobra.Command{
		Use:   "integrators",
		Short: "list available integrators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.ListIntegrators() {
				fmt.Printf("  %-14s %s\n", name, registry.Describe(name))
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, plotCmd, svgCmd, compareCmd, analyzeCmd, benchCmd, batchCmd, sweepCmd, presetsCmd, integratorsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Overlay(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("g") {
		cfg.Body.G = g
	}
	if f.Changed("mass") {
		cfg.Body.Mass = mass
	}
	if f.Changed("x0") {
		cfg.Body.X0 = x0
	}
	if f.Changed("y0") {
		cfg.Body.Y0 = y0
	}
	if f.Changed("vx0") {
		cfg.Body.VX0 = vx0
	}
	if f.Changed("vy0") {
		cfg.Body.VY0 = vy0
	}
	if f.Changed("dt") {
		cfg.Body.Dt = dt
	}
	if f.Changed("steps") {
		cfg.Body.Steps = steps
	}
	if f.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if f.Changed("display") {
		cfg.Display.Kind = display
	}
	if f.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if f.Changed("out") {
		cfg.Display.Out = outPath
	}
	if f.Changed("width") {
		cfg.Display.Width = width
	}
	if f.Changed("height") {
		cfg.Display.Height = height
	}
	if f.Changed("echo") {
		cfg.Echo = echo
	}
	if f.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (hclog.Logger, error) {
	level := hclog.LevelFromString(cfg.LogLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("unknown log level: %s", cfg.LogLevel)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "orbitsim",
		Level:  level,
		Output: os.Stderr,
	}), nil
}

// echoLogger returns a debug-level logger for the position echo, even when
// the root logger is quieter.
func echoLogger(logger hclog.Logger) hclog.Logger {
	named := logger.Named("echo")
	if named.IsDebug() {
		return named
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "orbitsim.echo",
		Level:  hclog.Debug,
		Output: os.Stderr,
	})
}

func setup(cmd *cobra.Command) (*config.Config, hclog.Logger, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("resolved config",
		"preset", presetName,
		"config", configFile,
		"integrator", cfg.Integrator,
		"display", cfg.Display.Kind)
	return cfg, logger, nil
}
