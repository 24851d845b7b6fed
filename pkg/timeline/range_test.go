package timeline

import (
	"testing"

	"github.com/chronoline/chronoline/pkg/errors"
)

func yearPtr(y int) *int { return &y }

func TestComputeRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CurrentYear = 2026

	tests := []struct {
		name   string
		people []Person
		want   Range
	}{
		{
			name: "deceased and living pair",
			people: []Person{
				{Name: "a", BirthYear: 1900, DeathYear: yearPtr(1955)},
				{Name: "b", BirthYear: 1920},
			},
			// raw 1900..2026, span 126, pad max(5, round(126*0.04)=5) = 5
			want: Range{Min: 1895, Max: 2031},
		},
		{
			name: "single person",
			people: []Person{
				{Name: "a", BirthYear: 1850, DeathYear: yearPtr(1920)},
			},
			// raw span 70, pad max(5, round(2.8)=3) = 5
			want: Range{Min: 1845, Max: 1925},
		},
		{
			name: "single-year life",
			people: []Person{
				{Name: "a", BirthYear: 1900, DeathYear: yearPtr(1900)},
			},
			// raw span 0 -> substitute 100, pad max(5, round(4)=4) = 5
			want: Range{Min: 1895, Max: 1905},
		},
		{
			name: "bce years",
			people: []Person{
				{Name: "a", BirthYear: -470, DeathYear: yearPtr(-399)},
				{Name: "b", BirthYear: -427, DeathYear: yearPtr(-347)},
			},
			// raw -470..-347, span 123, pad max(5, round(4.92)=5) = 5
			want: Range{Min: -475, Max: -342},
		},
		{
			name: "large span uses fractional padding",
			people: []Person{
				{Name: "a", BirthYear: -3000, DeathYear: yearPtr(-2900)},
				{Name: "b", BirthYear: 1900, DeathYear: yearPtr(2000)},
			},
			// raw span 5000, pad round(200) = 200
			want: Range{Min: -3200, Max: 2200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRange(tt.people, cfg)
			if err != nil {
				t.Fatalf("ComputeRange() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeRange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeRangeEmpty(t *testing.T) {
	_, err := ComputeRange(nil, DefaultConfig())
	if err == nil {
		t.Fatal("ComputeRange(nil) error = nil, want EMPTY_ROSTER")
	}
	if !errors.Is(err, errors.ErrCodeEmptyRoster) {
		t.Errorf("error code = %v, want EMPTY_ROSTER", errors.GetCode(err))
	}
}

// Every person's birth and effective-end year must land inside the computed
// window, and the window must always have positive span.
func TestComputeRangeMonotonicity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CurrentYear = 2026

	rosters := [][]Person{
		{{Name: "a", BirthYear: 1900}},
		{{Name: "a", BirthYear: 1900, DeathYear: yearPtr(1900)}},
		{
			{Name: "a", BirthYear: -3000, DeathYear: yearPtr(-2900)},
			{Name: "b", BirthYear: 1500, DeathYear: yearPtr(1570)},
			{Name: "c", BirthYear: 1990},
		},
		{
			{Name: "a", BirthYear: 2000, DeathYear: yearPtr(1990)}, // inverted span
		},
	}

	for _, people := range rosters {
		r, err := ComputeRange(people, cfg)
		if err != nil {
			t.Fatalf("ComputeRange() error = %v", err)
		}
		if r.Min >= r.Max {
			t.Errorf("range %+v has non-positive span", r)
		}
		for _, p := range people {
			if !r.Contains(p.BirthYear) {
				t.Errorf("birth %d outside range %+v", p.BirthYear, r)
			}
			if !r.Contains(p.End(cfg.CurrentYear)) {
				t.Errorf("end %d outside range %+v", p.End(cfg.CurrentYear), r)
			}
		}
	}
}
