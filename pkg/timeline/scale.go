package timeline

// Scale is a pure affine transform from calendar year to horizontal pixel
// coordinate. It is parameterized by the computed year range, the left
// padding, and the available chart width.
//
// The caller guarantees Range.Span() > 0; ranges produced by [ComputeRange]
// always satisfy this.
type Scale struct {
	Range   Range
	LeftPad float64
	Width   float64
}

// X maps a year to its pixel coordinate:
// leftPad + (year-min)/(max-min) * width.
func (s Scale) X(year int) float64 {
	return s.LeftPad + float64(year-s.Range.Min)/float64(s.Range.Span())*s.Width
}

// BarWidth returns the pixel width of a lifespan bar from birth to end,
// clamped to minWidth. Inverted spans (death before birth) therefore render
// as a minimum-width sliver instead of negative geometry.
func (s Scale) BarWidth(birth, end int, minWidth float64) float64 {
	w := s.X(end) - s.X(birth)
	if w < minWidth {
		return minWidth
	}
	return w
}
