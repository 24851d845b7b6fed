// Package grid sizes and positions the square year-cell grid used by the
// life-events view: one cell per year of a lifespan, packed into a fixed
// rectangular area at the largest cell size that fits.
package grid

import "math"

// Default sizing constants for the events grid.
const (
	DefaultGap     = 3.0
	DefaultMinSize = 8.0
	DefaultMaxSize = 42.0

	// minColumns is the smallest column count considered by the scan.
	// Fewer than three columns degenerates into a stripe, not a grid.
	minColumns = 3
)

// Options holds the tunable grid constants.
type Options struct {
	Gap     float64 // spacing between adjacent cells, horizontal and vertical
	MinSize float64 // legibility floor for the cell size
	MaxSize float64 // cap so short lifespans don't produce billboard cells
}

// DefaultOptions returns the reference grid configuration.
func DefaultOptions() Options {
	return Options{Gap: DefaultGap, MinSize: DefaultMinSize, MaxSize: DefaultMaxSize}
}

// Fit is the chosen grid geometry: an integer column count and the square
// cell size in pixels.
type Fit struct {
	Columns int     `json:"columns"`
	Rows    int     `json:"rows"`
	Size    float64 `json:"size"`
}

// Best finds the column count and cell size that maximize cell area while
// packing n cells into a w x h area.
//
// Every column count from 3 through n is scanned. An early exit once a
// candidate reaches most of the best size seen would skip the optimum in
// rare geometries, so the scan always runs to completion; n is a lifespan
// in years, small enough that the full scan costs nothing. For each
// candidate the limiting dimension decides the cell size:
//
//	widthSize  = (w - (c-1)*gap) / c
//	heightSize = (h - (rows-1)*gap) / rows    with rows = ceil(n/c)
//	size       = floor(min(widthSize, heightSize))
//
// The best size found is clamped to [MinSize, MaxSize]. The MinSize clamp is
// a legibility floor and takes precedence over the fit inequalities; with
// realistic areas it never engages.
//
// n < 1 returns the zero Fit.
func Best(n int, w, h float64, opts Options) Fit {
	if n < 1 {
		return Fit{}
	}

	best := Fit{}
	maxCols := max(n, minColumns)
	for c := minColumns; c <= maxCols; c++ {
		rows := (n + c - 1) / c
		widthSize := (w - float64(c-1)*opts.Gap) / float64(c)
		heightSize := (h - float64(rows-1)*opts.Gap) / float64(rows)
		size := math.Floor(math.Min(widthSize, heightSize))
		if size > best.Size {
			best = Fit{Columns: c, Rows: rows, Size: size}
		}
	}

	if best.Columns == 0 {
		// Nothing fit at any column count; fall back to the widest scan
		// point so the clamp below still yields usable geometry.
		best = Fit{Columns: maxCols, Rows: (n + maxCols - 1) / maxCols}
	}

	if best.Size < opts.MinSize {
		best.Size = opts.MinSize
	}
	if best.Size > opts.MaxSize {
		best.Size = opts.MaxSize
	}
	return best
}

// Cell is one positioned square in the planned grid. Index counts cells in
// row-major order; for the events view, index i is year birth+i.
type Cell struct {
	Index int     `json:"index"`
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
}

// Plan computes the full cell geometry for n cells in a w x h area: the best
// fit from [Best] expanded into per-cell rectangles in row-major order,
// anchored at the origin.
func Plan(n int, w, h float64, opts Options) []Cell {
	fit := Best(n, w, h, opts)
	if fit.Columns == 0 {
		return nil
	}

	cells := make([]Cell, n)
	for i := range cells {
		row := i / fit.Columns
		col := i % fit.Columns
		cells[i] = Cell{
			Index: i,
			Row:   row,
			Col:   col,
			X:     float64(col) * (fit.Size + opts.Gap),
			Y:     float64(row) * (fit.Size + opts.Gap),
			Size:  fit.Size,
		}
	}
	return cells
}
