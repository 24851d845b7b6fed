package timeline

// Default layout constants. They are tunable through [Config], not
// fundamental invariants.
const (
	// DefaultPadFraction is the fraction of the raw year span added as
	// padding on each side of the computed range.
	DefaultPadFraction = 0.04

	// DefaultMinPad is the minimum padding in years on each side.
	DefaultMinPad = 5

	// DefaultFlatSpan is the span substituted when every supplied year
	// coincides, so a single-point roster still yields a usable window.
	DefaultFlatSpan = 100

	// DefaultPaletteSize is the number of distinct category colors before
	// assignment wraps around.
	DefaultPaletteSize = 8

	// DefaultRowHeight and DefaultRowGap control vertical bar placement.
	DefaultRowHeight = 28.0
	DefaultRowGap    = 10.0

	// DefaultMinBarWidth is the minimum rendered bar width in pixels.
	// Bars never shrink below it even for single-year or inverted spans.
	DefaultMinBarWidth = 2.0
)

// Default frame paddings in pixels.
const (
	DefaultLeftPad   = 70.0
	DefaultRightPad  = 40.0
	DefaultTopPad    = 30.0
	DefaultBottomPad = 46.0
)

// Config holds every tunable layout constant. The zero value is not useful;
// start from [DefaultConfig] and override fields as needed.
type Config struct {
	// CurrentYear is the effective end year for people without a death
	// year. Zero means "unset" and is resolved by callers (typically to
	// the wall-clock year).
	CurrentYear int

	PadFraction float64
	MinPad      int
	FlatSpan    int

	RowHeight   float64
	RowGap      float64
	MinBarWidth float64

	LeftPad   float64
	RightPad  float64
	TopPad    float64
	BottomPad float64

	PaletteSize int

	// Ladder overrides the tick interval ladder. Nil means [DefaultLadder].
	Ladder []TickStep
}

// DefaultConfig returns the reference layout configuration.
func DefaultConfig() Config {
	return Config{
		PadFraction: DefaultPadFraction,
		MinPad:      DefaultMinPad,
		FlatSpan:    DefaultFlatSpan,
		RowHeight:   DefaultRowHeight,
		RowGap:      DefaultRowGap,
		MinBarWidth: DefaultMinBarWidth,
		LeftPad:     DefaultLeftPad,
		RightPad:    DefaultRightPad,
		TopPad:      DefaultTopPad,
		BottomPad:   DefaultBottomPad,
		PaletteSize: DefaultPaletteSize,
	}
}
