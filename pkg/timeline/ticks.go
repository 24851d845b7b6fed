package timeline

// TickStep is one rung of the tick interval ladder: spans strictly greater
// than Above use Interval.
type TickStep struct {
	Above    int
	Interval int
}

// DefaultLadder is the tick interval ladder used when Config.Ladder is nil.
//
// The ladder is deliberately non-linear and human-legible (not log-scale):
// the rungs are chosen so axis labels never crowd whether the chart spans a
// decade or ten millennia.
var DefaultLadder = []TickStep{
	{Above: 4000, Interval: 1000},
	{Above: 2000, Interval: 500},
	{Above: 800, Interval: 200},
	{Above: 300, Interval: 100},
	{Above: 120, Interval: 50},
	{Above: 50, Interval: 25},
}

// fallbackInterval is used when the span clears no ladder rung.
const fallbackInterval = 10

// TickInterval picks the tick interval for a year span by scanning the
// ladder from the largest rung down and taking the first one the span
// exceeds. A nil ladder means [DefaultLadder].
func TickInterval(span int, ladder []TickStep) int {
	if ladder == nil {
		ladder = DefaultLadder
	}
	for _, step := range ladder {
		if span > step.Above {
			return step.Interval
		}
	}
	return fallbackInterval
}

// Ticks enumerates the tick years within r: every multiple of interval from
// ceil(r.Min/interval)*interval up to r.Max, ascending.
//
// A narrow range can contain no multiple of interval at all, in which case
// the result is empty. That is a valid axis (no labeled gridlines), not an
// error.
func Ticks(r Range, interval int) []int {
	if interval <= 0 {
		return nil
	}
	var ticks []int
	for year := ceilMultiple(r.Min, interval); year <= r.Max; year += interval {
		ticks = append(ticks, year)
	}
	return ticks
}

// ceilMultiple returns the smallest multiple of step that is >= year.
// Correct for negative years: ceilMultiple(-1895, 50) == -1850.
func ceilMultiple(year, step int) int {
	q := year / step
	if year%step != 0 && year > 0 {
		q++
	}
	return q * step
}
