package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
)

type integratorEntry struct {
	description string
	build       func() sim.Integrator
}

type Registry struct {
	integrators map[string]integratorEntry
}

func NewRegistry() *Registry {
	r := &Registry{integrators: make(map[string]integratorEntry)}

	r.Register("euler", "semi-implicit Euler: velocity first, then position",
		func() sim.Integrator { return integrators.NewEuler() })
	r.Register("forward-euler", "explicit Euler: position from the old velocity",
		func() sim.Integrator { return integrators.NewForwardEuler() })
	r.Register("leapfrog", "kick-drift-kick leapfrog",
		func() sim.Integrator { return integrators.NewLeapfrog() })
	r.Register("verlet", "velocity Verlet",
		func() sim.Integrator { return integrators.NewVerlet() })
	r.Register("rk4", "classic fourth order Runge-Kutta",
		func() sim.Integrator { return integrators.NewRK4() })

	return r
}

// Register adds or replaces an integrator constructor.
func (r *Registry) Register(name, description string, build func() sim.Integrator) {
	r.integrators[name] = integratorEntry{description: description, build: build}
}

// GetIntegrator returns a fresh integrator; integrators keep scratch
// buffers and must not be shared between runs.
func (r *Registry) GetIntegrator(name string) (sim.Integrator, error) {
	e, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sim.ErrUnknownIntegrator, name)
	}
	return e.build(), nil
}

func (r *Registry) Describe(name string) string {
	return r.integrators[name].description
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(p orbit.Params) []sim.Metric {
	return metrics.Default(p.Body())
}
