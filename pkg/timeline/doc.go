// Package timeline implements the chart geometry engine for biographical
// timelines: the deterministic mapping from a list of person records to the
// axis, row, and color data a renderer needs.
//
// # Overview
//
// The package is a set of pure, synchronous functions with no shared mutable
// state. Every call recomputes its full result from its inputs, so callers
// may invoke them on every input change without staleness or ordering
// hazards.
//
// The components, leaf to root:
//
//   - [ComputeRange] - padded [min, max] year window for the time domain
//   - [TickInterval] and [Ticks] - round tick interval selection and
//     enumeration along the axis
//   - [AssignColors] - stable first-seen-order category coloring
//   - [LayoutRows] - birth-year-sorted vertical row positions
//   - [Scale] - pure affine year → pixel transform
//   - [Compare] - two-person age-gap comparison rows
//
// The radial contemporaries layout and the events-grid sizer live in the
// [radial] and [grid] subpackages.
//
// # Configuration
//
// All layout constants (current year, row metrics, padding fractions, tick
// ladder, palette size) are carried in an explicit [Config] value threaded
// into each call. There is no package-level mutable state, which keeps the
// engine trivially unit-testable.
//
// # Usage
//
//	cfg := timeline.DefaultConfig()
//	r, err := timeline.ComputeRange(people, cfg)
//	if err != nil {
//	    return err
//	}
//	interval := timeline.TickInterval(r.Span(), cfg.Ladder)
//	ticks := timeline.Ticks(r, interval)
//	colors := timeline.AssignColors(people, cfg.PaletteSize)
//	rows := timeline.LayoutRows(people, colors, cfg.TopPad, cfg)
//	scale := timeline.Scale{Range: r, LeftPad: cfg.LeftPad, Width: chartWidth}
//
// [radial]: https://pkg.go.dev/github.com/chronoline/chronoline/pkg/timeline/radial
// [grid]: https://pkg.go.dev/github.com/chronoline/chronoline/pkg/timeline/grid
package timeline
