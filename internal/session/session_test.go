package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelterm/internal/bits"
	"github.com/san-kum/mandelterm/internal/config"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/session"
)

var _ = Describe("Session", func() {
	var (
		s     *session.Session
		grid  *bits.Grid
		cache *mandel.ShardedCache
	)

	BeforeEach(func() {
		cache = mandel.NewShardedCache(0)
		s = session.New(session.Options{
			Threshold: 100,
			View:      config.FullView,
			Workers:   2,
			Cache:     cache,
		})
		grid = bits.New(48, 30)
	})

	Describe("before the first frame", func() {
		It("ignores input", func() {
			Expect(s.Ready()).To(BeFalse())
			Expect(s.Pan(1, 0, 1)).To(BeFalse())
			Expect(s.ZoomIn(1)).To(BeFalse())
			Expect(s.ZoomOut(1)).To(BeFalse())
			Expect(s.RaiseThreshold(5)).To(BeFalse())
			Expect(s.LowerThreshold(5)).To(BeFalse())
			Expect(s.Threshold()).To(Equal(100))
		})

		It("reports the view center", func() {
			x, y := s.Center()
			Expect(x).To(BeNumerically("~", -0.765, 1e-12))
			Expect(y).To(BeNumerically("~", 0, 1e-12))
		})

		It("skips an empty grid", func() {
			stats := s.Frame(bits.New(0, 0))
			Expect(stats.Pixels).To(BeZero())
			Expect(s.Ready()).To(BeFalse())
		})
	})

	Describe("the first frame", func() {
		var stats render.Stats

		BeforeEach(func() {
			stats = s.Frame(grid)
		})

		It("fits the default view to the shorter side", func() {
			Expect(s.Ready()).To(BeTrue())
			sx, sy := s.Scalers()

			Expect(sx.Scale(0)).To(BeNumerically("~", -2.0, 1e-12))
			Expect(sx.Scale(30)).To(BeNumerically("~", 0.47, 1e-12))
			Expect(sy.Scale(0)).To(BeNumerically("~", -1.12, 1e-12))
			Expect(sy.Scale(30)).To(BeNumerically("~", 1.12, 1e-12))
		})

		It("is computed without the cache", func() {
			Expect(stats.Cached).To(BeFalse())
			Expect(cache.Len()).To(BeZero())
			Expect(s.Frames()).To(Equal(1))
		})

		It("draws the set interior as background", func() {
			// Pixel nearest -0.2+0i lies in the main cardioid.
			sx, sy := s.Scalers()
			px := int((-0.2 - sx.Scale(0)) / sx.Scalar())
			py := int((0 - sy.Scale(0)) / sy.Scalar())
			v, ok := grid.Get(px, py)
			Expect(ok).To(BeTrue())
			Expect(v).To(BeFalse())

			corner, _ := grid.Get(47, 29)
			Expect(corner).To(BeTrue())
		})
	})

	Describe("panning", func() {
		BeforeEach(func() {
			s.Frame(grid)
		})

		It("shifts by whole pixel steps", func() {
			sx, sy := s.Scalers()
			Expect(s.Pan(3, -2, 1)).To(BeTrue())
			nx, ny := s.Scalers()

			Expect(nx.Scale(0)).To(BeNumerically("~", sx.Scale(3), 1e-12))
			Expect(ny.Scale(0)).To(BeNumerically("~", sy.Scale(-2), 1e-12))
			Expect(nx.Scalar()).To(BeNumerically("~", sx.Scalar(), 1e-15))
		})

		It("applies the modifier multiplier", func() {
			sx, _ := s.Scalers()
			s.Pan(1, 0, 100)
			nx, _ := s.Scalers()
			Expect(nx.Scale(0)).To(BeNumerically("~", sx.Scale(100), 1e-12))
		})

		It("goes through the cache and matches a direct render", func() {
			s.Pan(1, 0, 1)
			first := s.Frame(grid)
			Expect(first.Cached).To(BeTrue())
			Expect(cache.Len()).To(Equal(grid.Area()))

			s.Pan(-1, 0, 1)
			back := s.Frame(grid)
			Expect(back.Cached).To(BeTrue())

			direct := bits.New(48, 30)
			sx, sy := s.Scalers()
			render.New(1).Render(direct, sx, sy, s.Threshold(), nil)
			Expect(grid.String()).To(Equal(direct.String()))
		})

		It("returns to the start after a pan and its inverse", func() {
			sx, sy := s.Scalers()
			s.Pan(7, 4, 1)
			s.Pan(-7, -4, 1)
			nx, ny := s.Scalers()

			xmin, xmax := nx.Target()
			wxmin, wxmax := sx.Target()
			Expect(xmin).To(BeNumerically("~", wxmin, 1e-12))
			Expect(xmax).To(BeNumerically("~", wxmax, 1e-12))
			ymin, _ := ny.Target()
			wymin, _ := sy.Target()
			Expect(ymin).To(BeNumerically("~", wymin, 1e-12))
		})
	})

	Describe("zooming", func() {
		BeforeEach(func() {
			s.Frame(grid)
		})

		It("keeps the center and shrinks the step", func() {
			sx, sy := s.Scalers()
			s.ZoomIn(10)
			nx, ny := s.Scalers()

			Expect(nx.Scalar()).To(BeNumerically("<", sx.Scalar()))
			Expect(ny.Scalar()).To(BeNumerically("<", sy.Scalar()))
			Expect(nx.Center()).To(BeNumerically("~", sx.Center(), 1e-12))
		})

		It("renders without the cache", func() {
			s.Pan(1, 0, 1)
			s.Frame(grid)
			s.ZoomOut(1)
			Expect(s.Frame(grid).Cached).To(BeFalse())
		})
	})

	Describe("the threshold", func() {
		BeforeEach(func() {
			s.Frame(grid)
		})

		It("saturates at zero", func() {
			Expect(s.LowerThreshold(50)).To(BeTrue())
			Expect(s.Threshold()).To(Equal(50))
			s.LowerThreshold(500)
			Expect(s.Threshold()).To(BeZero())
			s.RaiseThreshold(3)
			Expect(s.Threshold()).To(Equal(3))
		})

		It("purges the cache when it changes", func() {
			s.Pan(1, 0, 1)
			s.Frame(grid)
			Expect(cache.Len()).NotTo(BeZero())

			s.RaiseThreshold(1)
			Expect(cache.Len()).To(BeZero())
			Expect(s.LastAction()).To(Equal(session.ActionThreshold))
			Expect(s.Frame(grid).Cached).To(BeFalse())
		})
	})

	Describe("resizing", func() {
		BeforeEach(func() {
			s.Frame(grid)
			s.Pan(1, 0, 1)
		})

		It("forces an uncached full frame", func() {
			s.Resize(grid, 20, 12)
			Expect(grid.Area()).To(Equal(240))
			Expect(s.LastAction()).To(Equal(session.ActionResize))

			stats := s.Frame(grid)
			Expect(stats.Cached).To(BeFalse())
			Expect(stats.Pixels).To(Equal(240))

			direct := bits.New(20, 12)
			sx, sy := s.Scalers()
			render.New(1).Render(direct, sx, sy, s.Threshold(), nil)
			Expect(grid.String()).To(Equal(direct.String()))
		})
	})

	Describe("jumping to a preset", func() {
		It("re-fits the view on the next frame", func() {
			s.Frame(grid)
			seahorse, ok := config.GetPreset("seahorse")
			Expect(ok).To(BeTrue())

			s.Jump(seahorse)
			Expect(s.Ready()).To(BeFalse())
			s.Frame(grid)

			sx, _ := s.Scalers()
			Expect(sx.Scale(0)).To(BeNumerically("~", -0.8, 1e-12))
		})

		It("resets to the same view", func() {
			s.Frame(grid)
			before, _ := s.Scalers()
			s.ZoomIn(5)
			s.Reset()
			s.Frame(grid)
			after, _ := s.Scalers()
			Expect(after.Scalar()).To(BeNumerically("~", before.Scalar(), 1e-15))
		})
	})
})
