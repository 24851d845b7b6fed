package timeline

import (
	"math"

	"github.com/chronoline/chronoline/pkg/errors"
)

// Range is the chart's time domain in calendar years. Min < Max always holds
// for ranges produced by [ComputeRange].
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Span returns the width of the range in years.
func (r Range) Span() int { return r.Max - r.Min }

// Contains reports whether year lies within the range, inclusive.
func (r Range) Contains(year int) bool { return year >= r.Min && year <= r.Max }

// ComputeRange computes the padded year window covering every birth and
// effective-end year in the roster.
//
// The raw window is the pooled min/max over each person's birth year and
// effective end year (death year, or cfg.CurrentYear when still living).
// When every year coincides the raw span is substituted with cfg.FlatSpan so
// a single-point roster still produces a usable domain. Padding on each side
// is max(cfg.MinPad, round(rawSpan * cfg.PadFraction)).
//
// An empty roster is a caller error and returns EMPTY_ROSTER; layout must
// never run on an empty list, and failing fast here keeps NaN out of the
// downstream pixel math.
func ComputeRange(people []Person, cfg Config) (Range, error) {
	if len(people) == 0 {
		return Range{}, errors.New(errors.ErrCodeEmptyRoster, "cannot compute year range for empty roster")
	}

	rawMin := people[0].BirthYear
	rawMax := people[0].End(cfg.CurrentYear)
	for _, p := range people {
		rawMin = min(rawMin, p.BirthYear, p.End(cfg.CurrentYear))
		rawMax = max(rawMax, p.BirthYear, p.End(cfg.CurrentYear))
	}

	rawSpan := rawMax - rawMin
	if rawSpan == 0 {
		rawSpan = cfg.FlatSpan
	}

	pad := int(math.Round(float64(rawSpan) * cfg.PadFraction))
	if pad < cfg.MinPad {
		pad = cfg.MinPad
	}

	return Range{Min: rawMin - pad, Max: rawMax + pad}, nil
}
