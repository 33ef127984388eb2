package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orbitsim/internal/chart"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Params() != orbit.DefaultParams() {
		t.Errorf("default params %+v differ from %+v", cfg.Params(), orbit.DefaultParams())
	}
	if cfg.Integrator != "euler" {
		t.Errorf("expected integrator euler, got %s", cfg.Integrator)
	}
	if cfg.Display.Kind != "window" {
		t.Errorf("expected window display, got %s", cfg.Display.Kind)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero dt", func(c *Config) { c.Body.Dt = 0 }, "dt must be positive"},
		{"negative mass", func(c *Config) { c.Body.Mass = -1 }, "mass must be positive"},
		{"zero g", func(c *Config) { c.Body.G = 0 }, "g must be positive"},
		{"negative steps", func(c *Config) { c.Body.Steps = -1 }, "steps must not be negative"},
		{"nan position", func(c *Config) { c.Body.X0 = math.NaN() }, "x0 must be finite"},
		{"unknown display", func(c *Config) { c.Display.Kind = "hologram" }, "unknown display"},
		{"unknown legend", func(c *Config) { c.Display.Legend = "south" }, "unknown legend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, sim.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateAllowsOrigin(t *testing.T) {
	if err := GetPreset("degenerate").Validate(); err != nil {
		t.Errorf("degenerate preset should validate: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	data := "body:\n  steps: 42\n  vx0: 7000\nintegrator: rk4\ndisplay:\n  kind: svg\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Body.Steps != 42 || cfg.Body.VX0 != 7000 {
		t.Errorf("file values not applied: %+v", cfg.Body)
	}
	if cfg.Body.G != orbit.DefaultG || cfg.Body.Y0 != orbit.DefaultY0 {
		t.Errorf("missing keys should keep defaults: %+v", cfg.Body)
	}
	if cfg.Integrator != "rk4" || cfg.Display.Kind != "svg" || cfg.Display.Width != 600 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestOverlayKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := os.WriteFile(path, []byte("echo: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	base := GetPreset("earth-sun")
	cfg, err := Overlay(path, base)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Echo || cfg.Body.Mass != base.Body.Mass {
		t.Errorf("overlay lost preset values: %+v", cfg)
	}
	if base.Echo {
		t.Error("overlay modified its base")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("body: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	cfg := GetPreset("elliptic")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip changed config:\n%+v\n%+v", loaded, cfg)
	}
}

func TestChartOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.Style = "line"
	cfg.Display.Legend = "hidden"
	cfg.Display.BodyName = "Probe"

	opts := cfg.ChartOptions()
	if opts.Style != chart.Line || opts.Legend != chart.LegendHidden || opts.BodyName != "Probe" {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.Title != "Orbit Chart" || opts.Width != 600 || opts.Height != 400 {
		t.Errorf("unexpected defaults %+v", opts)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("surface")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params() != orbit.DefaultParams() {
		t.Error("surface preset should equal the defaults")
	}

	circ := GetPreset("circular")
	b := circ.Body
	if v := math.Sqrt(b.G * b.Mass / b.Y0); b.VX0 != v {
		t.Errorf("circular speed %v, want %v", b.VX0, v)
	}

	sun := GetPreset("earth-sun")
	if sun.Body.Dt != 3600 || sun.Body.Mass != 1.989e30 {
		t.Errorf("unexpected earth-sun preset %+v", sun.Body)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	want := []string{"circular", "degenerate", "earth-sun", "elliptic", "surface"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("presets[%d] = %s, want %s", i, presets[i], want[i])
		}
	}
}
