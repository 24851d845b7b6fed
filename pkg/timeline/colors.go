package timeline

// DefaultPalette is the reference 8-color category palette. The layout engine
// only deals in indices; these hex values are what the SVG sink resolves an
// index to when the caller supplies no palette of its own.
var DefaultPalette = []string{
	"#e4572e", // burnt orange
	"#29335c", // dark blue
	"#f3a712", // amber
	"#669bbc", // steel blue
	"#8d5a97", // plum
	"#2e933c", // green
	"#c1666b", // dusty rose
	"#4c5760", // slate
}

// AssignColors maps each distinct category to a palette index in
// first-appearance order, wrapping via modulo once paletteSize categories
// have been seen. A paletteSize <= 0 means [DefaultPaletteSize].
//
// Determinism contract: identical input ordering always yields the identical
// mapping. Reordering the roster may change which category gets which index;
// callers that need consistent coloring across renders must pass people in a
// stable order, typically insertion order.
func AssignColors(people []Person, paletteSize int) map[string]int {
	if paletteSize <= 0 {
		paletteSize = DefaultPaletteSize
	}
	colors := make(map[string]int)
	next := 0
	for _, p := range people {
		if _, seen := colors[p.Category]; !seen {
			colors[p.Category] = next % paletteSize
			next++
		}
	}
	return colors
}

// PaletteColor resolves a color index against palette, falling back to
// [DefaultPalette] when palette is empty. Indices wrap modulo the palette
// length, so any index produced by [AssignColors] is valid.
func PaletteColor(index int, palette []string) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if index < 0 {
		index = 0
	}
	return palette[index%len(palette)]
}
