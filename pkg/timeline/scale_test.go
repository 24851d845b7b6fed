package timeline

import (
	"math"
	"testing"
)

func TestScaleX(t *testing.T) {
	s := Scale{Range: Range{Min: 1900, Max: 2000}, LeftPad: 50, Width: 1000}

	tests := []struct {
		year int
		want float64
	}{
		{year: 1900, want: 50},
		{year: 2000, want: 1050},
		{year: 1950, want: 550},
		{year: 1925, want: 300},
	}

	for _, tt := range tests {
		if got := s.X(tt.year); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("X(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestScaleXBCERange(t *testing.T) {
	s := Scale{Range: Range{Min: -500, Max: -300}, LeftPad: 0, Width: 400}
	if got := s.X(-400); math.Abs(got-200) > 1e-9 {
		t.Errorf("X(-400) = %v, want 200", got)
	}
}

func TestScaleBarWidth(t *testing.T) {
	s := Scale{Range: Range{Min: 1900, Max: 2000}, LeftPad: 0, Width: 1000}

	tests := []struct {
		name       string
		birth, end int
		minWidth   float64
		want       float64
	}{
		{name: "normal span", birth: 1900, end: 1950, minWidth: 2, want: 500},
		{name: "single year clamps", birth: 1950, end: 1950, minWidth: 2, want: 2},
		{name: "inverted span clamps", birth: 1950, end: 1940, minWidth: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.BarWidth(tt.birth, tt.end, tt.minWidth); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BarWidth(%d, %d) = %v, want %v", tt.birth, tt.end, got, tt.want)
			}
		})
	}
}
