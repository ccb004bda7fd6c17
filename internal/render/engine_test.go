package render_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelterm/internal/bits"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/scaler"
)

var _ = Describe("Engine", func() {
	var (
		engine *render.Engine
		grid   *bits.Grid
		sx, sy scaler.Scaler
	)

	BeforeEach(func() {
		engine = render.New(4)
		grid = bits.New(64, 48)
		sx = scaler.MustNew(0, 48, -2, 0.47)
		sy = scaler.MustNew(0, 48, -1.12, 1.12)
	})

	It("defaults the worker count to GOMAXPROCS", func() {
		Expect(render.New(0).Workers()).To(BeNumerically(">=", 1))
		Expect(render.New(3).Workers()).To(Equal(3))
	})

	It("writes the negated membership of every pixel", func() {
		grid.Fill()
		stats := engine.Render(grid, sx, sy, 100, nil)

		Expect(stats.Rows).To(Equal(48))
		Expect(stats.Pixels).To(Equal(64 * 48))
		Expect(stats.Cached).To(BeFalse())
		Expect(stats.CacheHits).To(BeZero())

		for py := 0; py < grid.Height(); py++ {
			for px := 0; px < grid.Width(); px++ {
				v, ok := grid.Get(px, py)
				Expect(ok).To(BeTrue())
				inside := mandel.InSet(sx.Scale(float64(px)), sy.Scale(float64(py)), 100)
				Expect(v).To(Equal(!inside), "pixel (%d, %d)", px, py)
			}
		}
	})

	It("is deterministic across worker counts", func() {
		engine.Render(grid, sx, sy, 200, nil)
		want := grid.String()

		for _, workers := range []int{1, 2, 16} {
			g := bits.New(64, 48)
			render.New(workers).Render(g, sx, sy, 200, nil)
			Expect(g.String()).To(Equal(want), "workers=%d", workers)
		}
	})

	It("handles an empty grid", func() {
		empty := bits.New(0, 0)
		stats := engine.Render(empty, sx, sy, 10, mandel.NewShardedCache(0))
		Expect(stats.Pixels).To(BeZero())
		Expect(stats.HitRate()).To(BeZero())
	})

	Context("with a cache", func() {
		var cache mandel.Cache

		BeforeEach(func() {
			cache = mandel.NewShardedCache(0)
		})

		It("produces the same frame as the direct path", func() {
			engine.Render(grid, sx, sy, 150, nil)
			direct := grid.String()

			grid.Clear()
			stats := engine.Render(grid, sx, sy, 150, cache)
			Expect(grid.String()).To(Equal(direct))
			Expect(stats.Cached).To(BeTrue())
			Expect(stats.CacheHits).To(BeZero())
			Expect(cache.Len()).To(Equal(64 * 48))
		})

		It("serves a repeated frame entirely from the cache", func() {
			engine.Render(grid, sx, sy, 150, cache)
			stats := engine.Render(grid, sx, sy, 150, cache)
			Expect(stats.CacheHits).To(BeEquivalentTo(64 * 48))
			Expect(stats.HitRate()).To(BeNumerically("==", 1))
		})

		It("reuses most of the frame after a one-pixel pan", func() {
			// Dyadic steps keep every coordinate exact, so a pan lands
			// on previously sampled keys bit for bit.
			sx = scaler.MustNew(0, 64, -2, 2)
			sy = scaler.MustNew(0, 48, -1.5, 1.5)
			engine.Render(grid, sx, sy, 150, cache)

			panned := sx.Offset(sx.Scalar())
			stats := engine.Render(grid, panned, sy, 150, cache)

			// Only the newly exposed column can miss.
			Expect(stats.CacheHits).To(BeNumerically(">=", 63*48))

			check := bits.New(64, 48)
			engine.Render(check, panned, sy, 150, nil)
			Expect(grid.String()).To(Equal(check.String()))
		})

		It("works with a bounded cache", func() {
			lru, err := mandel.NewLRUCache(100)
			Expect(err).NotTo(HaveOccurred())

			engine.Render(grid, sx, sy, 80, nil)
			direct := grid.String()

			engine.Render(grid, sx, sy, 80, lru)
			Expect(grid.String()).To(Equal(direct))
			Expect(lru.Len()).To(Equal(100))
		})
	})

	Describe("a 2x2 cell frame at threshold 1", func() {
		It("marks far points as escaped and the origin as inside", func() {
			g := bits.New(4, 6)
			engine.Render(g,
				scaler.MustNew(0, 4, -2, 2),
				scaler.MustNew(0, 6, -2, 2),
				1, nil)

			Expect(g.String()).To(Equal(
				"##.#\n" +
					"#...\n" +
					"#...\n" +
					"....\n" +
					"#...\n" +
					"#...\n"))

			origin, ok := g.Get(2, 3)
			Expect(ok).To(BeTrue())
			Expect(origin).To(BeFalse())

			for _, corner := range [][2]int{{0, 0}, {1, 0}, {3, 0}, {0, 5}} {
				v, _ := g.Get(corner[0], corner[1])
				Expect(v).To(BeTrue(), "corner %v", corner)
			}
		})
	})
})
