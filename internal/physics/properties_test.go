package physics_test

import (
	"math/rand"

	"github.com/golang/geo/r2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fabiodan/bouncy-colors/internal/physics"
	"github.com/fabiodan/bouncy-colors/internal/sim"
)

var _ = Describe("Collision engine", func() {
	var (
		params physics.Params
		rng    *rand.Rand
	)

	BeforeEach(func() {
		params = physics.DefaultParams()
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	Describe("placement", func() {
		It("never overlaps two bodies", func() {
			bodies, err := physics.Place(rng, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(bodies).To(HaveLen(params.Count))
			Expect(physics.Overlapping(bodies)).To(BeEmpty())
		})

		It("fails as a whole when the arena is too crowded", func() {
			params.Count = 800
			params.MaxAttempts = 100

			bodies, err := physics.Place(rng, params)
			Expect(err).To(MatchError(physics.ErrPlacementExhausted))
			Expect(bodies).To(BeNil())
		})
	})

	Describe("a long run", func() {
		It("keeps every body inside the arena", func() {
			params.Count = 20
			s, err := sim.New(params, rng)
			Expect(err).NotTo(HaveOccurred())

			for tick := 0; tick < 2000; tick++ {
				s.Tick()
				for _, b := range s.Bodies() {
					Expect(params.Arena.Contains(b.Position, b.Radius())).To(BeTrue(),
						"tick %d: body at %v escaped", tick, b.Position)
				}
			}
		})

		It("never changes radius or mass", func() {
			s, err := sim.New(params, rng)
			Expect(err).NotTo(HaveOccurred())

			for tick := 0; tick < 300; tick++ {
				s.Tick()
			}
			for _, b := range s.Bodies() {
				Expect(b.Radius()).To(Equal(params.Radius))
				Expect(b.Mass()).To(Equal(2 * params.Radius))
			}
		})
	})

	DescribeTable("pairwise momentum is conserved",
		func(ri, rj float64, vi, vj r2.Point) {
			a, err := physics.NewBody(r2.Point{X: 100, Y: 100}, vi, ri)
			Expect(err).NotTo(HaveOccurred())
			b, err := physics.NewBody(r2.Point{X: 100 + ri + rj - 1, Y: 103}, vj, rj)
			Expect(err).NotTo(HaveOccurred())

			before := a.Momentum().Add(b.Momentum())
			vi2, vj2 := physics.ResolvePair(a.Mass(), b.Mass(), a.Position.Sub(b.Position), a.Velocity, b.Velocity)
			after := vi2.Mul(a.Mass()).Add(vj2.Mul(b.Mass()))

			Expect(after.X).To(BeNumerically("~", before.X, 1e-9))
			Expect(after.Y).To(BeNumerically("~", before.Y, 1e-9))
		},
		Entry("equal bodies", 10.0, 10.0, r2.Point{X: 5, Y: 0}, r2.Point{X: -5, Y: 0}),
		Entry("small hits large", 4.0, 20.0, r2.Point{X: 3, Y: 4}, r2.Point{X: 0, Y: 0}),
		Entry("glancing", 8.0, 12.0, r2.Point{X: 1, Y: 5}, r2.Point{X: -2, Y: -1}),
	)

	It("reflects a body off the right wall", func() {
		m := physics.Motion{Position: r2.Point{X: 497, Y: 250}, Velocity: r2.Point{X: 7, Y: 0}}

		wall := physics.ReflectWall(&m, 10, physics.Arena{Width: 500, Height: 500})

		Expect(wall).To(Equal(physics.RightWall))
		Expect(m.Velocity).To(Equal(r2.Point{X: -7, Y: 0}))
		Expect(m.Position.X).To(Equal(490.0))
	})
})
