package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/golsim/internal/life"
)

// GridToSVG draws one square per live cell on a dead background.
func GridToSVG(g *life.Grid, scale float64) string {
	if g == nil {
		return ""
	}

	size := float64(g.L) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffd9"/>
<g fill="#081d58">
`, size, size, size, size))

	for i := 0; i < g.L; i++ {
		for j := 0; j < g.L; j++ {
			if g.At(i, j) != life.Alive {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(j)*scale, float64(i)*scale, scale, scale))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG draws the population curve as a polyline.
func PopulationToSVG(pops []int, width, height int, strokeColor string) string {
	if len(pops) < 2 {
		return ""
	}

	maxPop := 1
	for _, p := range pops {
		maxPop = max(maxPop, p)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range pops {
		x := float64(i) / float64(len(pops)-1) * float64(width)
		y := float64(height) - float64(p)/float64(maxPop)*float64(height)*0.9

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
