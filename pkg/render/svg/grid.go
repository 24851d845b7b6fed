package svg

import (
	"bytes"
	"fmt"

	"github.com/chronoline/chronoline/pkg/timeline"
	"github.com/chronoline/chronoline/pkg/timeline/grid"
)

const gridPadding = 20.0

// RenderEventsGrid renders the life-events year grid for one person: one
// square per year of the lifespan, row-major, each carrying its calendar
// year as a tooltip. The caller supplies the planned cells from [grid.Plan].
func RenderEventsGrid(p timeline.Person, cells []grid.Cell, opts ...Option) []byte {
	r := newRenderer(opts...)

	var maxX, maxY float64
	for _, c := range cells {
		maxX = max(maxX, c.X+c.Size)
		maxY = max(maxY, c.Y+c.Size)
	}

	var buf bytes.Buffer
	openSVG(&buf, maxX+2*gridPadding, maxY+2*gridPadding)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", backgroundHex)

	fill := timeline.PaletteColor(0, r.palette)
	for _, c := range cells {
		year := p.BirthYear + c.Index
		fmt.Fprintf(&buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s" fill-opacity="0.85"><title>%d</title></rect>`+"\n",
			gridPadding+c.X, gridPadding+c.Y, c.Size, c.Size, fill, year)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
