// Package chart assembles the core layout components into a complete,
// serializable chart: axis ticks with pixel positions, per-person lifespan
// bars, and the category legend.
//
// The package produces plain value structures with no references back into
// UI objects; the JSON form is the canonical interchange format consumed by
// the SVG sink, the CLI, and the HTTP API.
package chart

import (
	"fmt"

	"github.com/chronoline/chronoline/pkg/timeline"
)

// Tick is one labeled gridline on the time axis.
type Tick struct {
	Year  int     `json:"year"`
	X     float64 `json:"x"`
	Label string  `json:"label"`
}

// Bar is one person's positioned lifespan bar.
type Bar struct {
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Color       int     `json:"color"`
	BirthYear   int     `json:"birth_year"`
	DeathYear   *int    `json:"death_year,omitempty"`
	Approximate bool    `json:"approximate,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

// CategoryColor is one legend entry, in first-seen roster order.
type CategoryColor struct {
	Category string `json:"category"`
	Color    int    `json:"color"`
}

// Layout is the assembled chart: everything a renderer needs, in pixels.
type Layout struct {
	FrameWidth  float64 `json:"frame_width"`
	FrameHeight float64 `json:"frame_height"`
	CurrentYear int     `json:"current_year"`

	Range    timeline.Range `json:"range"`
	Interval int            `json:"interval"`

	Ticks      []Tick          `json:"ticks"`
	Bars       []Bar           `json:"bars"`
	Categories []CategoryColor `json:"categories"`
	Palette    []string        `json:"palette,omitempty"`
}

// Build assembles the full chart layout for a roster.
//
// plotWidth is the inner plot width in pixels; the frame adds cfg.LeftPad and
// cfg.RightPad around it. Bars come out in birth-year order (the row order),
// which also makes the serialized output deterministic for identical input.
//
// Returns EMPTY_ROSTER for an empty people list.
func Build(people []timeline.Person, plotWidth float64, cfg timeline.Config) (Layout, error) {
	r, err := timeline.ComputeRange(people, cfg)
	if err != nil {
		return Layout{}, err
	}

	interval := timeline.TickInterval(r.Span(), cfg.Ladder)
	colors := timeline.AssignColors(people, cfg.PaletteSize)
	rows := timeline.LayoutRows(people, colors, cfg.TopPad, cfg)
	scale := timeline.Scale{Range: r, LeftPad: cfg.LeftPad, Width: plotWidth}

	l := Layout{
		FrameWidth:  cfg.LeftPad + plotWidth + cfg.RightPad,
		FrameHeight: cfg.TopPad + timeline.ContentHeight(len(people), cfg),
		CurrentYear: cfg.CurrentYear,
		Range:       r,
		Interval:    interval,
	}

	for _, year := range timeline.Ticks(r, interval) {
		l.Ticks = append(l.Ticks, Tick{Year: year, X: scale.X(year), Label: FormatYear(year)})
	}

	l.Bars = make([]Bar, len(rows))
	for i, row := range rows {
		p := row.Person
		l.Bars[i] = Bar{
			Name:        p.Name,
			Category:    p.Category,
			Color:       row.Color,
			BirthYear:   p.BirthYear,
			DeathYear:   p.DeathYear,
			Approximate: p.Approximate,
			X:           scale.X(p.BirthYear),
			Y:           row.Y,
			Width:       scale.BarWidth(p.BirthYear, p.End(cfg.CurrentYear), cfg.MinBarWidth),
			Height:      cfg.RowHeight,
		}
	}

	seen := make(map[string]bool)
	for _, p := range people {
		if !seen[p.Category] {
			seen[p.Category] = true
			l.Categories = append(l.Categories, CategoryColor{Category: p.Category, Color: colors[p.Category]})
		}
	}

	return l, nil
}

// FormatYear renders a year for axis labels. Negative years use the BCE
// suffix: -500 formats as "500 BCE", 1500 as "1500".
func FormatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("%d BCE", -year)
	}
	return fmt.Sprintf("%d", year)
}
