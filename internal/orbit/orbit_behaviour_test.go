package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
)

func circular() orbit.Params {
	p := orbit.DefaultParams()
	p.VX0 = p.Body().CircularSpeed(p.Y0)
	p.Steps = 6000
	return p
}

var _ = Describe("Simulate", func() {
	Context("with the reference scenario", func() {
		var tr *orbit.Trajectory

		BeforeEach(func() {
			tr = orbit.Simulate(orbit.DefaultParams())
		})

		It("returns one sample per step", func() {
			Expect(tr.Len()).To(Equal(orbit.DefaultSteps))
		})

		It("stays finite", func() {
			Expect(tr.Finite()).To(BeTrue())
		})

		It("starts moving along +x and falls toward the centre", func() {
			first := tr.At(0)
			Expect(first.X).To(Equal(5000.0))
			Expect(first.Y).To(BeNumerically("<", orbit.DefaultY0))
		})
	})

	Context("with a circular launch speed", func() {
		It("keeps the radius within 0.2% over a full period", func() {
			p := circular()
			for _, r := range orbit.Simulate(p).Radii() {
				Expect(r).To(BeNumerically("~", p.Y0, p.Y0*0.002))
			}
		})

		It("drifts outward with forward Euler", func() {
			p := circular()
			out, err := orbit.Run(p, orbit.Options{Integrator: integrators.NewForwardEuler()})
			Expect(err).NotTo(HaveOccurred())

			last, ok := out.Trajectory.Last()
			Expect(ok).To(BeTrue())
			Expect(math.Hypot(last.X, last.Y)).To(BeNumerically(">", p.Y0*1.01))
		})

		It("reports a small energy drift", func() {
			p := circular()
			drift := metrics.NewEnergyDrift(p.Body())
			out, err := orbit.Run(p, orbit.Options{Metrics: []sim.Metric{drift}})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Result.Metrics).To(HaveKey("energy_drift"))
			Expect(out.Result.Metrics["energy_drift"]).To(BeNumerically("<", 0.01))
		})
	})

	Context("with the body at the origin", func() {
		It("propagates NaN without shortening the trajectory", func() {
			p := orbit.DefaultParams()
			p.X0, p.Y0 = 0, 0
			p.Steps = 10

			tr := orbit.Simulate(p)
			Expect(tr.Len()).To(Equal(10))
			for _, x := range tr.XS() {
				Expect(math.IsNaN(x)).To(BeTrue())
			}
			Expect(tr.Validate(p.Dt)).To(MatchError(sim.ErrInvalidState))
		})
	})
})
