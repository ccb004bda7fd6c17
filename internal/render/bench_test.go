package render

import (
	"testing"

	"github.com/san-kum/mandelterm/internal/bits"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/scaler"
)

func benchFrame(b *testing.B, cache func() mandel.Cache) {
	g := bits.New(320, 144)
	sx := scaler.MustNew(0, 144, -2, 0.47)
	sy := scaler.MustNew(0, 144, -1.12, 1.12)
	e := New(0)
	c := cache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Render(g, sx, sy, 200, c)
	}
}

func BenchmarkRenderDirect(b *testing.B) {
	benchFrame(b, func() mandel.Cache { return nil })
}

func BenchmarkRenderCachedWarm(b *testing.B) {
	benchFrame(b, func() mandel.Cache { return mandel.NewShardedCache(0) })
}

func TestRowPoolResizes(t *testing.T) {
	p := newRowPool()
	row := p.Get(4)
	if len(*row) != 4 {
		t.Fatalf("len = %d, want 4", len(*row))
	}
	p.Put(row)

	row = p.Get(100)
	if len(*row) != 100 {
		t.Errorf("len = %d, want 100", len(*row))
	}
}
