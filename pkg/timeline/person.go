package timeline

// Person is a single biographical record: the immutable input to every layout
// component. Negative years mean BCE. A nil DeathYear means the person is
// treated as alive through the configured current year.
//
// Name uniqueness within one chart is a caller invariant, not enforced here.
type Person struct {
	Name        string `json:"name" yaml:"name"`
	BirthYear   int    `json:"birth_year" yaml:"birth_year"`
	DeathYear   *int   `json:"death_year,omitempty" yaml:"death_year,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Approximate bool   `json:"approximate,omitempty" yaml:"approximate,omitempty"`
}

// Alive reports whether the person has no recorded death year.
func (p Person) Alive() bool { return p.DeathYear == nil }

// End returns the person's effective end year: the death year when recorded,
// otherwise currentYear.
func (p Person) End(currentYear int) int {
	if p.DeathYear != nil {
		return *p.DeathYear
	}
	return currentYear
}

// Lifespan returns the person's lifespan in years, never less than 1.
// Records with a death year before the birth year can reach the layout
// (data quality belongs to the upstream resolver) and must not produce
// negative geometry downstream.
func (p Person) Lifespan(currentYear int) int {
	span := p.End(currentYear) - p.BirthYear
	if span < 1 {
		return 1
	}
	return span
}

// OverlapYears returns the number of years a and b were alive simultaneously,
// or 0 when their lifespans never intersect. The relation is symmetric.
func OverlapYears(a, b Person, currentYear int) int {
	shared := min(a.End(currentYear), b.End(currentYear)) - max(a.BirthYear, b.BirthYear)
	if shared < 0 {
		return 0
	}
	return shared
}

// Overlaps reports whether a and b were ever alive at the same time.
// The interval comparison is strict: two lifespans that only touch at a
// single year boundary do not overlap.
func Overlaps(a, b Person, currentYear int) bool {
	return min(a.End(currentYear), b.End(currentYear)) > max(a.BirthYear, b.BirthYear)
}
