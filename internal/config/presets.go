package config

import (
	"math"
	"sort"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// Preset is a named starting scenario.
type Preset struct {
	Description string
	Body        BodyConfig
	Integrator  string
}

const (
	sunMass  = 1.989e30
	au       = 1.495978707e11
	earthVel = 29780.0
)

var earthBody = BodyConfig{
	G: orbit.DefaultG, Mass: orbit.DefaultMass,
	X0: orbit.DefaultX0, Y0: orbit.DefaultY0,
	VX0: orbit.DefaultVX0, VY0: orbit.DefaultVY0,
	Dt: orbit.DefaultDt, Steps: orbit.DefaultSteps,
}

func withBody(b BodyConfig, edit func(*BodyConfig)) BodyConfig {
	edit(&b)
	return b
}

var Presets = map[string]Preset{
	"surface": {
		Description: "5 km/s horizontal launch from the Earth's surface",
		Body:        earthBody,
	},
	"circular": {
		Description: "circular low orbit at the Earth's radius, one period",
		Body: withBody(earthBody, func(b *BodyConfig) {
			b.VX0 = math.Sqrt(b.G * b.Mass / b.Y0)
			b.Steps = 5100
		}),
	},
	"elliptic": {
		Description: "9 km/s launch, eccentricity near 0.3",
		Body: withBody(earthBody, func(b *BodyConfig) {
			b.VX0 = 9000
			b.Steps = 9000
		}),
	},
	"earth-sun": {
		Description: "the Earth around the Sun for one year in hourly steps",
		Body: withBody(earthBody, func(b *BodyConfig) {
			b.Mass = sunMass
			b.Y0 = au
			b.VX0 = earthVel
			b.Dt = 3600
			b.Steps = 8766
		}),
		Integrator: "euler",
	},
	"degenerate": {
		Description: "body released at the origin; every sample is NaN",
		Body: withBody(earthBody, func(b *BodyConfig) {
			b.Y0 = 0
			b.VX0 = 0
			b.Steps = 10
		}),
	},
}

// GetPreset returns a config built from the defaults and the named preset,
// or nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Body = p.Body
	if p.Integrator != "" {
		cfg.Integrator = p.Integrator
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
