package svg

import (
	"bytes"
	"fmt"
	"math"

	"github.com/chronoline/chronoline/pkg/timeline"
	"github.com/chronoline/chronoline/pkg/timeline/radial"
)

const (
	arcStrokeWidth = 6.0
	markerRadius   = 4.0
	radialMargin   = 60.0
)

// RenderRadial renders the contemporaries clock for a focal person: one
// concentric arc per retained contemporary, birth/death endpoint markers,
// and the focal name at the center.
//
// Angle 0 (the focal birth year) points straight up; angles grow clockwise,
// one full turn per focal lifespan.
func RenderRadial(focal timeline.Person, arcs []radial.Arc, opts ...Option) []byte {
	r := newRenderer(opts...)

	maxR := 0.0
	for _, a := range arcs {
		maxR = math.Max(maxR, a.Radius)
	}
	size := 2 * (maxR + radialMargin)
	cx, cy := size/2, size/2

	var buf bytes.Buffer
	openSVG(&buf, size, size)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", backgroundHex)

	// Twelve o'clock reference line: the focal birth year.
	fmt.Fprintf(&buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1" stroke-dasharray="2 4"/>`+"\n",
		cx, cy, cx, cy-maxR-markerRadius*2, axisColor)

	for _, a := range arcs {
		color := timeline.PaletteColor(a.Color, r.palette)
		buf.WriteString(arcPath(cx, cy, a, color))

		if a.BornDuringFocalLife {
			x, y := pointOnCircle(cx, cy, a.Radius, a.StartAngle)
			fmt.Fprintf(&buf, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="#ffffff" stroke-width="1.5"/>`+"\n",
				x, y, markerRadius, color)
		}
		if a.DiedDuringFocalLife {
			x, y := pointOnCircle(cx, cy, a.Radius, a.EndAngle)
			fmt.Fprintf(&buf, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="#333333" stroke-width="1.5"/>`+"\n",
				x, y, markerRadius, color)
		}
	}

	if len(arcs) == 0 {
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="%s" text-anchor="middle">no contemporaries</text>`+"\n",
			cx, cy-10, fontFamily, labelFontSize, labelColor)
	}

	fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="%s" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
		cx, cy+5, fontFamily, labelColor, escape(focal.Name))

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// arcPath builds the SVG path element for one contemporary's arc.
func arcPath(cx, cy float64, a radial.Arc, color string) string {
	x1, y1 := pointOnCircle(cx, cy, a.Radius, a.StartAngle)
	x2, y2 := pointOnCircle(cx, cy, a.Radius, a.EndAngle)

	largeArc := 0
	if a.EndAngle-a.StartAngle > 180 {
		largeArc = 1
	}

	return fmt.Sprintf(`<path d="M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round"><title>%s</title></path>`+"\n",
		x1, y1, a.Radius, a.Radius, largeArc, x2, y2, color, arcStrokeWidth, escape(a.Person.Name))
}

// pointOnCircle maps an angle in focal-lifespan degrees (0 at twelve
// o'clock, clockwise) onto circle coordinates.
func pointOnCircle(cx, cy, radius, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return cx + radius*math.Sin(rad), cy - radius*math.Cos(rad)
}
