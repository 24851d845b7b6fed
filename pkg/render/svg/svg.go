// Package svg renders assembled chart data to SVG bytes.
//
// The sink draws only what the layout structs describe: all geometry comes
// from [chart.Build], [radial.Build], and [grid.Plan]. No layout math
// happens here beyond trigonometry for arc path endpoints.
package svg

import (
	"bytes"
	"fmt"

	"github.com/chronoline/chronoline/pkg/chart"
	"github.com/chronoline/chronoline/pkg/timeline"
)

const (
	fontFamily    = "Helvetica, Arial, sans-serif"
	axisColor     = "#b0b0b0"
	labelColor    = "#444444"
	backgroundHex = "#fdfdf8"

	tickFontSize  = 11.0
	labelFontSize = 12.0
	barRadius     = 4.0
)

// Option configures the SVG renderers.
type Option func(*renderer)

type renderer struct {
	palette    []string
	showLegend bool
	title      string
}

// WithPalette overrides the default category color palette.
func WithPalette(p []string) Option { return func(r *renderer) { r.palette = p } }

// WithLegend enables the category legend block.
func WithLegend() Option { return func(r *renderer) { r.showLegend = true } }

// WithTitle adds a chart title.
func WithTitle(t string) Option { return func(r *renderer) { r.title = t } }

func newRenderer(opts ...Option) renderer {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderChart renders the main lifespan chart to SVG bytes.
func RenderChart(l chart.Layout, opts ...Option) []byte {
	r := newRenderer(opts...)

	height := l.FrameHeight
	if r.showLegend && len(l.Categories) > 0 {
		height += legendHeight(l.Categories)
	}

	var buf bytes.Buffer
	openSVG(&buf, l.FrameWidth, height)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", backgroundHex)

	if r.title != "" {
		fmt.Fprintf(&buf, `<text x="%.1f" y="20" font-family="%s" font-size="16" font-weight="bold" fill="%s">%s</text>`+"\n",
			l.FrameWidth/2-float64(len(r.title))*4, fontFamily, labelColor, escape(r.title))
	}

	// Tick gridlines and labels.
	for _, tick := range l.Ticks {
		fmt.Fprintf(&buf, `<line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			tick.X, tick.X, l.FrameHeight-20, axisColor)
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="%s" text-anchor="middle">%s</text>`+"\n",
			tick.X, l.FrameHeight-6, fontFamily, tickFontSize, labelColor, escape(tick.Label))
	}

	// Lifespan bars with name labels.
	for _, b := range l.Bars {
		dash := ""
		if b.Approximate {
			dash = ` stroke-dasharray="4 3" stroke="#888" stroke-width="1"`
		}
		fmt.Fprintf(&buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"%s/>`+"\n",
			b.X, b.Y, b.Width, b.Height, barRadius, timeline.PaletteColor(b.Color, r.palette), dash)
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="%s">%s</text>`+"\n",
			b.X+6, b.Y+b.Height/2+4, fontFamily, labelFontSize, "#ffffff", escape(b.Name))
	}

	if r.showLegend && len(l.Categories) > 0 {
		renderLegend(&buf, l, r.palette)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func legendHeight(categories []chart.CategoryColor) float64 {
	return 16 + 18*float64(len(categories))
}

func renderLegend(buf *bytes.Buffer, l chart.Layout, palette []string) {
	y := l.FrameHeight + 10
	for _, c := range l.Categories {
		fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="12" height="12" rx="2" fill="%s"/>`+"\n",
			l.FrameWidth/12, y, timeline.PaletteColor(c.Color, palette))
		label := c.Category
		if label == "" {
			label = "uncategorized"
		}
		fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="%s">%s</text>`+"\n",
			l.FrameWidth/12+18, y+10, fontFamily, tickFontSize, labelColor, escape(label))
		y += 18
	}
}

func openSVG(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
}

// escape replaces the XML-special characters in text content.
func escape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
