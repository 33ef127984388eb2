package config

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/san-kum/orbitsim/internal/chart"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultIntegrator = "euler"
	DefaultDisplay    = "window"
	DefaultTheme      = "default"
	DefaultLogLevel   = "info"
	DefaultSVGPath    = "orbit.svg"
)

// Displays lists the accepted display kinds.
var Displays = []string{"window", "terminal", "viewer", "svg"}

type Config struct {
	Body       BodyConfig    `yaml:"body"`
	Integrator string        `yaml:"integrator"`
	Display    DisplayConfig `yaml:"display"`
	Echo       bool          `yaml:"echo"`
	LogLevel   string        `yaml:"log_level"`
}

// BodyConfig holds the physical constants and the initial state of the
// orbiting body, in SI units.
type BodyConfig struct {
	G     float64 `yaml:"g"`
	Mass  float64 `yaml:"mass"`
	X0    float64 `yaml:"x0"`
	Y0    float64 `yaml:"y0"`
	VX0   float64 `yaml:"vx0"`
	VY0   float64 `yaml:"vy0"`
	Dt    float64 `yaml:"dt"`
	Steps int     `yaml:"steps"`
}

type DisplayConfig struct {
	Kind        string `yaml:"kind"`
	Theme       string `yaml:"theme"`
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Style       string `yaml:"style"`
	Legend      string `yaml:"legend"`
	BodyName    string `yaml:"body_name"`
	CentralName string `yaml:"central_name"`
	Out         string `yaml:"out"`
}

func DefaultConfig() *Config {
	opts := chart.DefaultOptions()
	return &Config{
		Body: BodyConfig{
			G:     orbit.DefaultG,
			Mass:  orbit.DefaultMass,
			X0:    orbit.DefaultX0,
			Y0:    orbit.DefaultY0,
			VX0:   orbit.DefaultVX0,
			VY0:   orbit.DefaultVY0,
			Dt:    orbit.DefaultDt,
			Steps: orbit.DefaultSteps,
		},
		Integrator: DefaultIntegrator,
		Display: DisplayConfig{
			Kind:        DefaultDisplay,
			Theme:       DefaultTheme,
			Title:       opts.Title,
			Width:       opts.Width,
			Height:      opts.Height,
			Style:       "scatter",
			Legend:      "ne",
			BodyName:    opts.BodyName,
			CentralName: opts.CentralName,
			Out:         DefaultSVGPath,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	return Overlay(path, DefaultConfig())
}

// Overlay reads a YAML file over base. Keys missing from the file keep the
// value in base.
func Overlay(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate rejects settings that cannot produce a run. Degenerate initial
// states such as a body at the origin are allowed.
func (c *Config) Validate() error {
	b := c.Body
	var problems []string
	for name, v := range map[string]float64{
		"g": b.G, "mass": b.Mass, "x0": b.X0, "y0": b.Y0, "vx0": b.VX0, "vy0": b.VY0, "dt": b.Dt,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			problems = append(problems, name+" must be finite")
		}
	}
	if b.G <= 0 {
		problems = append(problems, "g must be positive")
	}
	if b.Mass <= 0 {
		problems = append(problems, "mass must be positive")
	}
	if b.Dt <= 0 {
		problems = append(problems, "dt must be positive")
	}
	if b.Steps < 0 {
		problems = append(problems, "steps must not be negative")
	}
	if !contains(Displays, c.Display.Kind) {
		problems = append(problems, fmt.Sprintf("unknown display %q", c.Display.Kind))
	}
	if _, err := parseStyle(c.Display.Style); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := parseLegend(c.Display.Legend); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", sim.ErrInvalidConfig, strings.Join(problems, "; "))
}

func (c *Config) Params() orbit.Params {
	b := c.Body
	return orbit.Params{
		G: b.G, M: b.Mass,
		X0: b.X0, Y0: b.Y0,
		VX0: b.VX0, VY0: b.VY0,
		Dt: b.Dt, Steps: b.Steps,
	}
}

// ChartOptions converts the display settings. Unparseable style or legend
// values fall back to the defaults; Validate reports them.
func (c *Config) ChartOptions() chart.Options {
	d := c.Display
	style, _ := parseStyle(d.Style)
	legend, _ := parseLegend(d.Legend)
	return chart.Options{
		Title:       d.Title,
		XLabel:      "X",
		YLabel:      "Y",
		Width:       d.Width,
		Height:      d.Height,
		Style:       style,
		Legend:      legend,
		BodyName:    d.BodyName,
		CentralName: d.CentralName,
	}
}

func parseStyle(s string) (chart.RenderStyle, error) {
	switch s {
	case "", "scatter":
		return chart.Scatter, nil
	case "line":
		return chart.Line, nil
	}
	return chart.Scatter, fmt.Errorf("unknown style %q", s)
}

func parseLegend(s string) (chart.LegendPosition, error) {
	switch s {
	case "", "ne":
		return chart.LegendInsideNE, nil
	case "nw":
		return chart.LegendInsideNW, nil
	case "outside":
		return chart.LegendOutsideE, nil
	case "hidden":
		return chart.LegendHidden, nil
	}
	return chart.LegendInsideNE, fmt.Errorf("unknown legend position %q", s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
