package timeline

import "slices"

// Row is one person's vertical slot in the chart. Rows are value objects
// scoped to a single layout pass and recomputed wholesale whenever the
// roster changes.
type Row struct {
	Person Person
	Y      float64 // top edge of the row in pixels
	Color  int     // palette index for the person's category
}

// LayoutRows converts a roster into a flat sequence of row positions sorted
// ascending by birth year (stable: ties keep input order). Row i sits at
// origin + i*(cfg.RowHeight + cfg.RowGap).
//
// colors is the category → palette index mapping from [AssignColors]; a nil
// map leaves every row at color index 0.
func LayoutRows(people []Person, colors map[string]int, origin float64, cfg Config) []Row {
	sorted := slices.Clone(people)
	slices.SortStableFunc(sorted, func(a, b Person) int {
		return a.BirthYear - b.BirthYear
	})

	rows := make([]Row, len(sorted))
	for i, p := range sorted {
		rows[i] = Row{
			Person: p,
			Y:      origin + float64(i)*(cfg.RowHeight+cfg.RowGap),
			Color:  colors[p.Category],
		}
	}
	return rows
}

// ContentHeight returns the total vertical extent of n rows laid out by
// [LayoutRows], plus the bottom padding: n*(rowHeight+gap) - gap + bottomPad.
// Callers use it to size the canvas before mapping years to pixels.
func ContentHeight(n int, cfg Config) float64 {
	if n <= 0 {
		return cfg.BottomPad
	}
	return float64(n)*(cfg.RowHeight+cfg.RowGap) - cfg.RowGap + cfg.BottomPad
}
