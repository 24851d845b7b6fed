// Package config loads the chronoline.toml configuration file and maps it
// onto the layout engine's option structs.
//
// Every knob has a compiled default; a config file only needs the values it
// wants to change:
//
//	current_year = 2026
//
//	[chart]
//	plot_width = 1000
//	row_height = 28
//
//	[radial]
//	max_contemporaries = 10
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/chronoline/chronoline/pkg/errors"
	"github.com/chronoline/chronoline/pkg/timeline"
	"github.com/chronoline/chronoline/pkg/timeline/grid"
	"github.com/chronoline/chronoline/pkg/timeline/radial"
)

// DefaultPlotWidth is the default inner plot width in pixels.
const DefaultPlotWidth = 1000.0

// Config is the full configuration surface: every layout constant the
// engine exposes, in file form.
type Config struct {
	// CurrentYear is the effective end year for living people. Zero means
	// "use the wall-clock year at run time".
	CurrentYear int `toml:"current_year"`

	Chart  Chart  `toml:"chart"`
	Grid   Grid   `toml:"grid"`
	Radial Radial `toml:"radial"`
}

// Chart configures the main lifespan chart.
type Chart struct {
	PlotWidth   float64  `toml:"plot_width"`
	RowHeight   float64  `toml:"row_height"`
	RowGap      float64  `toml:"row_gap"`
	MinBarWidth float64  `toml:"min_bar_width"`
	LeftPad     float64  `toml:"left_pad"`
	RightPad    float64  `toml:"right_pad"`
	TopPad      float64  `toml:"top_pad"`
	BottomPad   float64  `toml:"bottom_pad"`
	PaletteSize int      `toml:"palette_size"`
	Palette     []string `toml:"palette"`

	// TickLadder overrides the span-to-interval ladder. Rungs must be
	// ordered by descending span threshold, matching the built-in ladder.
	TickLadder []TickRung `toml:"tick_ladder"`
}

// TickRung is one configurable ladder rung: spans above the threshold get
// the rung's tick interval.
type TickRung struct {
	Above    int `toml:"above"`
	Interval int `toml:"interval"`
}

// Grid configures the life-events square grid.
type Grid struct {
	Gap     float64 `toml:"gap"`
	MinSize float64 `toml:"min_size"`
	MaxSize float64 `toml:"max_size"`
}

// Radial configures the contemporaries clock.
type Radial struct {
	MaxContemporaries int     `toml:"max_contemporaries"`
	MinRadius         float64 `toml:"min_radius"`
	MaxRadius         float64 `toml:"max_radius"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	t := timeline.DefaultConfig()
	g := grid.DefaultOptions()
	r := radial.DefaultOptions()
	return Config{
		Chart: Chart{
			PlotWidth:   DefaultPlotWidth,
			RowHeight:   t.RowHeight,
			RowGap:      t.RowGap,
			MinBarWidth: t.MinBarWidth,
			LeftPad:     t.LeftPad,
			RightPad:    t.RightPad,
			TopPad:      t.TopPad,
			BottomPad:   t.BottomPad,
			PaletteSize: t.PaletteSize,
			Palette:     timeline.DefaultPalette,
		},
		Grid: Grid{
			Gap:     g.Gap,
			MinSize: g.MinSize,
			MaxSize: g.MaxSize,
		},
		Radial: Radial{
			MaxContemporaries: r.MaxContemporaries,
			MinRadius:         r.MinRadius,
			MaxRadius:         r.MaxRadius,
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is an
// error; use [Default] directly when no file is configured.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// EffectiveCurrentYear resolves the configured current year, falling back
// to the wall clock.
func (c Config) EffectiveCurrentYear() int {
	if c.CurrentYear != 0 {
		return c.CurrentYear
	}
	return time.Now().Year()
}

// Timeline maps the config onto the layout engine's option struct, with the
// current year resolved.
func (c Config) Timeline() timeline.Config {
	t := timeline.DefaultConfig()
	t.CurrentYear = c.EffectiveCurrentYear()
	t.RowHeight = c.Chart.RowHeight
	t.RowGap = c.Chart.RowGap
	t.MinBarWidth = c.Chart.MinBarWidth
	t.LeftPad = c.Chart.LeftPad
	t.RightPad = c.Chart.RightPad
	t.TopPad = c.Chart.TopPad
	t.BottomPad = c.Chart.BottomPad
	t.PaletteSize = c.Chart.PaletteSize
	if len(c.Chart.TickLadder) > 0 {
		ladder := make([]timeline.TickStep, len(c.Chart.TickLadder))
		for i, rung := range c.Chart.TickLadder {
			ladder[i] = timeline.TickStep{Above: rung.Above, Interval: rung.Interval}
		}
		t.Ladder = ladder
	}
	return t
}

// GridOptions maps the config onto the events-grid option struct.
func (c Config) GridOptions() grid.Options {
	return grid.Options{Gap: c.Grid.Gap, MinSize: c.Grid.MinSize, MaxSize: c.Grid.MaxSize}
}

// RadialOptions maps the config onto the radial option struct, with the
// current year resolved.
func (c Config) RadialOptions() radial.Options {
	return radial.Options{
		CurrentYear:       c.EffectiveCurrentYear(),
		MaxContemporaries: c.Radial.MaxContemporaries,
		MinRadius:         c.Radial.MinRadius,
		MaxRadius:         c.Radial.MaxRadius,
	}
}
