package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/mandelterm/internal/bits"
)

// GridToSVG draws every set bit of g as a square of side scale.
// Horizontal runs of set bits are merged into one rect.
func GridToSVG(g *bits.Grid, scale float64) string {
	if g == nil || g.Area() == 0 || scale <= 0 {
		return ""
	}

	width := float64(g.Width()) * scale
	height := float64(g.Height()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ccff" shape-rendering="crispEdges">
`, width, height, width, height)

	for y := 0; y < g.Height(); y++ {
		x := 0
		for x < g.Width() {
			if v, _ := g.Get(x, y); !v {
				x++
				continue
			}
			start := x
			for x < g.Width() {
				if v, _ := g.Get(x, y); !v {
					break
				}
				x++
			}
			fmt.Fprintf(&sb, `<rect x="%g" y="%g" width="%g" height="%g"/>
`, float64(start)*scale, float64(y)*scale, float64(x-start)*scale, scale)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
