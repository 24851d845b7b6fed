package timeline

import "testing"

func TestLayoutRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RowHeight = 20
	cfg.RowGap = 5

	people := []Person{
		{Name: "late", BirthYear: 1950, Category: "a"},
		{Name: "early", BirthYear: 1800, Category: "b"},
		{Name: "middle", BirthYear: 1900, Category: "a"},
	}
	colors := AssignColors(people, cfg.PaletteSize)

	rows := LayoutRows(people, colors, 100, cfg)

	if len(rows) != len(people) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(people))
	}

	wantOrder := []string{"early", "middle", "late"}
	for i, name := range wantOrder {
		if rows[i].Person.Name != name {
			t.Errorf("rows[%d] = %s, want %s", i, rows[i].Person.Name, name)
		}
	}

	for i, row := range rows {
		want := 100 + float64(i)*25
		if row.Y != want {
			t.Errorf("rows[%d].Y = %v, want %v", i, row.Y, want)
		}
	}

	if rows[0].Color != colors["b"] || rows[1].Color != colors["a"] {
		t.Errorf("row colors = %d,%d, want %d,%d", rows[0].Color, rows[1].Color, colors["b"], colors["a"])
	}
}

// Birth-year ties must preserve input order.
func TestLayoutRowsStableTies(t *testing.T) {
	people := []Person{
		{Name: "first", BirthYear: 1900},
		{Name: "second", BirthYear: 1900},
		{Name: "third", BirthYear: 1900},
	}

	rows := LayoutRows(people, nil, 0, DefaultConfig())
	for i, want := range []string{"first", "second", "third"} {
		if rows[i].Person.Name != want {
			t.Errorf("rows[%d] = %s, want %s", i, rows[i].Person.Name, want)
		}
	}
}

func TestLayoutRowsDoesNotMutateInput(t *testing.T) {
	people := []Person{
		{Name: "b", BirthYear: 1950},
		{Name: "a", BirthYear: 1900},
	}

	LayoutRows(people, nil, 0, DefaultConfig())
	if people[0].Name != "b" {
		t.Error("LayoutRows reordered the caller's slice")
	}
}

func TestContentHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RowHeight = 20
	cfg.RowGap = 5
	cfg.BottomPad = 40

	tests := []struct {
		n    int
		want float64
	}{
		{n: 0, want: 40},
		{n: 1, want: 60},  // 1*25 - 5 + 40
		{n: 4, want: 135}, // 4*25 - 5 + 40
	}

	for _, tt := range tests {
		if got := ContentHeight(tt.n, cfg); got != tt.want {
			t.Errorf("ContentHeight(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
