package timeline

import "testing"

func TestPersonEnd(t *testing.T) {
	deceased := Person{Name: "a", BirthYear: 1900, DeathYear: yearPtr(1980)}
	living := Person{Name: "b", BirthYear: 1990}

	if got := deceased.End(2026); got != 1980 {
		t.Errorf("deceased End() = %d, want 1980", got)
	}
	if got := living.End(2026); got != 2026 {
		t.Errorf("living End() = %d, want 2026", got)
	}
	if deceased.Alive() {
		t.Error("deceased Alive() = true")
	}
	if !living.Alive() {
		t.Error("living Alive() = false")
	}
}

func TestPersonLifespan(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   int
	}{
		{
			name:   "deceased",
			person: Person{BirthYear: 1900, DeathYear: yearPtr(1980)},
			want:   80,
		},
		{
			name:   "living",
			person: Person{BirthYear: 2000},
			want:   26,
		},
		{
			name:   "single-year life clamps to 1",
			person: Person{BirthYear: 1900, DeathYear: yearPtr(1900)},
			want:   1,
		},
		{
			name:   "inverted span clamps to 1",
			person: Person{BirthYear: 1950, DeathYear: yearPtr(1940)},
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.person.Lifespan(2026); got != tt.want {
				t.Errorf("Lifespan() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Person
		want bool
	}{
		{
			name: "clear overlap",
			a:    Person{BirthYear: 1900, DeathYear: yearPtr(1980)},
			b:    Person{BirthYear: 1850, DeathYear: yearPtr(1920)},
			want: true,
		},
		{
			name: "disjoint",
			a:    Person{BirthYear: 1900, DeathYear: yearPtr(1950)},
			b:    Person{BirthYear: 1960, DeathYear: yearPtr(2000)},
			want: false,
		},
		{
			name: "touching boundary is not overlap",
			a:    Person{BirthYear: 1900, DeathYear: yearPtr(1950)},
			b:    Person{BirthYear: 1950, DeathYear: yearPtr(2000)},
			want: false,
		},
		{
			name: "living pair",
			a:    Person{BirthYear: 1980},
			b:    Person{BirthYear: 1990},
			want: true,
		},
		{
			name: "nested lifespans",
			a:    Person{BirthYear: 1900, DeathYear: yearPtr(2000)},
			b:    Person{BirthYear: 1940, DeathYear: yearPtr(1960)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b, 2026); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			// The relation must be symmetric.
			if got := Overlaps(tt.b, tt.a, 2026); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapYears(t *testing.T) {
	a := Person{BirthYear: 1900, DeathYear: yearPtr(1980)}
	b := Person{BirthYear: 1850, DeathYear: yearPtr(1920)}

	if got := OverlapYears(a, b, 2026); got != 20 {
		t.Errorf("OverlapYears = %d, want 20", got)
	}
	if got := OverlapYears(b, a, 2026); got != 20 {
		t.Errorf("OverlapYears not symmetric: %d", got)
	}

	c := Person{BirthYear: 2000, DeathYear: yearPtr(2010)}
	if got := OverlapYears(a, c, 2026); got != 0 {
		t.Errorf("disjoint OverlapYears = %d, want 0", got)
	}
}

func TestCompare(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CurrentYear = 2026

	a := Person{Name: "younger", BirthYear: 1950, DeathYear: yearPtr(2010)}
	b := Person{Name: "older", BirthYear: 1900, DeathYear: yearPtr(1980)}

	c := Compare(a, b, nil, 0, cfg)

	if len(c.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(c.Rows))
	}
	if c.Rows[0].Person.Name != "older" {
		t.Errorf("first row = %s, want older", c.Rows[0].Person.Name)
	}
	if c.AgeGapYears != 50 {
		t.Errorf("AgeGapYears = %d, want 50", c.AgeGapYears)
	}
	if c.OverlapYears != 30 {
		t.Errorf("OverlapYears = %d, want 30", c.OverlapYears)
	}
}
