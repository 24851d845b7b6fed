package timeline

// Comparison is the two-person age-gap view: the pair laid out as chart rows
// plus the derived gap and overlap summary.
type Comparison struct {
	Rows []Row

	// AgeGapYears is the birth-year difference between the two people,
	// always >= 0 (the rows themselves carry who was born first).
	AgeGapYears int

	// OverlapYears is the number of years both were alive, 0 when their
	// lifespans never intersect.
	OverlapYears int
}

// Compare lays out two people as comparison rows and computes their age gap
// and shared years. It reuses [LayoutRows], so the earlier-born person is
// always the first row.
func Compare(a, b Person, colors map[string]int, origin float64, cfg Config) Comparison {
	gap := a.BirthYear - b.BirthYear
	if gap < 0 {
		gap = -gap
	}
	return Comparison{
		Rows:         LayoutRows([]Person{a, b}, colors, origin, cfg),
		AgeGapYears:  gap,
		OverlapYears: OverlapYears(a, b, cfg.CurrentYear),
	}
}
