// Package radial computes the contemporaries clock: for one focal person, a
// radial-arc dataset showing which other people were alive at the same time
// and for which stretch of the focal lifespan.
//
// The layout maps the focal lifespan onto a full circle - angle 0 at birth,
// 360 at the effective end - and gives each retained contemporary a
// concentric arc spanning the overlapping interval.
//
// # Radius policy
//
// Radii encode rank order of age gap, not age-gap magnitude: the retained
// arcs are spaced evenly between MinRadius and MaxRadius regardless of how
// the actual gaps cluster. This is a deliberate legibility choice - real age
// gaps bunch together, and proportional radii would collide rings. Do not
// read radial distance as data.
package radial

import (
	"slices"

	"github.com/chronoline/chronoline/pkg/timeline"
)

// Default radial layout constants.
const (
	// DefaultMaxContemporaries bounds how many arcs are kept. Radial arc
	// charts become unreadable beyond roughly ten concurrent rings; this
	// is a legibility bound, not a data-correctness one. Callers that
	// need every overlap must use a different view.
	DefaultMaxContemporaries = 10

	DefaultMinRadius = 42.0
	DefaultMaxRadius = 120.0

	// maxSweep caps an arc's angular extent just short of a full turn.
	// An overlap that nearly equals the focal lifespan would otherwise
	// produce a degenerate full-circle arc that SVG path arcs cannot
	// express unambiguously.
	maxSweep = 359.9
)

// Options holds the tunable radial layout constants.
type Options struct {
	CurrentYear       int
	MaxContemporaries int
	MinRadius         float64
	MaxRadius         float64
}

// DefaultOptions returns the reference radial configuration. CurrentYear is
// left zero for the caller to resolve.
func DefaultOptions() Options {
	return Options{
		MaxContemporaries: DefaultMaxContemporaries,
		MinRadius:         DefaultMinRadius,
		MaxRadius:         DefaultMaxRadius,
	}
}

// Arc is one contemporary's ring: a radius, an angular span in degrees of
// focal-lifespan angle, and the derived endpoint flags. Arcs are value
// objects rebuilt per focal-person selection, never mutated in place.
type Arc struct {
	Person timeline.Person `json:"person"`
	Color  int             `json:"color"`
	Radius float64         `json:"radius"`

	// StartAngle and EndAngle are degrees of focal lifespan:
	// angle(year) = (year - focal.BirthYear) / focalLifespan * 360.
	// EndAngle is clamped to StartAngle + 359.9 at most.
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`

	// BornDuringFocalLife marks a contemporary born after the focal
	// person's birth; the arc's start point gets a birth marker.
	BornDuringFocalLife bool `json:"born_during_focal_life"`

	// DiedDuringFocalLife marks a contemporary who died before the focal
	// person's effective end; the arc's end point gets a death marker.
	DiedDuringFocalLife bool `json:"died_during_focal_life"`

	// AgeGapYears is focal.BirthYear - contemporary.BirthYear: positive
	// for people born before the focal person, negative for after.
	AgeGapYears int `json:"age_gap_years"`

	// OverlapYears is the length of the shared interval.
	OverlapYears int `json:"overlap_years"`
}

// Build computes the radial-arc dataset for focal against others.
//
// People who never overlapped the focal lifespan are silently excluded. The
// overlapping rest are ranked by shared years descending and truncated to
// opts.MaxContemporaries, then re-sorted by age gap ascending (most negative
// first: born longest after the focal person) to assign radii from MinRadius
// outward. With a single retained contemporary the radius is the midpoint of
// the radius band.
//
// colors is the roster-wide category mapping from [timeline.AssignColors];
// nil leaves every arc at color index 0. Zero contemporaries produce an
// empty (nil) slice - a valid "no contemporaries" state, not an error.
func Build(focal timeline.Person, others []timeline.Person, colors map[string]int, opts Options) []Arc {
	if opts.MaxContemporaries <= 0 {
		opts.MaxContemporaries = DefaultMaxContemporaries
	}

	// Step 1: overlap filter.
	var arcs []Arc
	for _, o := range others {
		if o.Name == focal.Name {
			continue
		}
		if !timeline.Overlaps(focal, o, opts.CurrentYear) {
			continue
		}
		arcs = append(arcs, Arc{
			Person:       o,
			Color:        colors[o.Category],
			AgeGapYears:  focal.BirthYear - o.BirthYear,
			OverlapYears: timeline.OverlapYears(focal, o, opts.CurrentYear),
		})
	}
	if len(arcs) == 0 {
		return nil
	}

	// Step 2: rank by shared years, keep the most relevant.
	slices.SortStableFunc(arcs, func(a, b Arc) int {
		return b.OverlapYears - a.OverlapYears
	})
	if len(arcs) > opts.MaxContemporaries {
		arcs = arcs[:opts.MaxContemporaries]
	}

	// Step 3: radial ordering by age gap, independent of relevance rank.
	slices.SortStableFunc(arcs, func(a, b Arc) int {
		return a.AgeGapYears - b.AgeGapYears
	})

	focalEnd := focal.End(opts.CurrentYear)
	lifespan := focal.Lifespan(opts.CurrentYear)

	for i := range arcs {
		// Step 4: evenly spaced radii by rank.
		if len(arcs) == 1 {
			arcs[i].Radius = (opts.MinRadius + opts.MaxRadius) / 2
		} else {
			t := float64(i) / float64(len(arcs)-1)
			arcs[i].Radius = opts.MinRadius + t*(opts.MaxRadius-opts.MinRadius)
		}

		// Step 5: angular mapping of the shared interval.
		o := arcs[i].Person
		start := angle(max(o.BirthYear, focal.BirthYear), focal.BirthYear, lifespan)
		end := angle(min(o.End(opts.CurrentYear), focalEnd), focal.BirthYear, lifespan)
		if end > start+maxSweep {
			end = start + maxSweep
		}
		arcs[i].StartAngle = start
		arcs[i].EndAngle = end

		// Step 6: endpoint flags.
		arcs[i].BornDuringFocalLife = o.BirthYear > focal.BirthYear
		arcs[i].DiedDuringFocalLife = o.DeathYear != nil && *o.DeathYear < focalEnd
	}

	return arcs
}

// angle maps a year onto degrees of focal lifespan.
func angle(year, focalBirth, lifespan int) float64 {
	return float64(year-focalBirth) / float64(lifespan) * 360
}
