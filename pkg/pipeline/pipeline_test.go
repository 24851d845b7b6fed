package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chronoline/chronoline/pkg/cache"
	"github.com/chronoline/chronoline/pkg/config"
	"github.com/chronoline/chronoline/pkg/errors"
	"github.com/chronoline/chronoline/pkg/timeline"
)

func yearPtr(y int) *int { return &y }

func testPeople() []timeline.Person {
	return []timeline.Person{
		{Name: "Marie Curie", BirthYear: 1867, DeathYear: yearPtr(1934), Category: "science"},
		{Name: "Albert Einstein", BirthYear: 1879, DeathYear: yearPtr(1955), Category: "science"},
		{Name: "Pablo Picasso", BirthYear: 1881, DeathYear: yearPtr(1973), Category: "art"},
	}
}

func testRunner() *Runner {
	cfg := config.Default()
	cfg.CurrentYear = 2026
	return NewRunner(nil, cfg, nil)
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name: "minimal chart options",
			opts: Options{People: testPeople()},
		},
		{
			name:    "no roster source",
			opts:    Options{VizType: VizTypeChart},
			wantErr: true,
		},
		{
			name:    "unknown viz type",
			opts:    Options{People: testPeople(), VizType: "sankey"},
			wantErr: true,
		},
		{
			name:    "radial without focal",
			opts:    Options{People: testPeople(), VizType: VizTypeRadial},
			wantErr: true,
		},
		{
			name: "radial with focal",
			opts: Options{People: testPeople(), VizType: VizTypeRadial, Focal: "Marie Curie"},
		},
		{
			name:    "unknown format",
			opts:    Options{People: testPeople(), Formats: []string{"png"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{People: testPeople()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.VizType != VizTypeChart {
		t.Errorf("VizType = %q, want %q", opts.VizType, VizTypeChart)
	}
	if opts.PlotWidth != DefaultPlotWidth {
		t.Errorf("PlotWidth = %v, want %v", opts.PlotWidth, DefaultPlotWidth)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
}

func TestExecuteChart(t *testing.T) {
	r := testRunner()
	result, err := r.Execute(context.Background(), Options{
		People:  testPeople(),
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Layout == nil {
		t.Fatal("Execute() returned nil layout")
	}
	if got := len(result.Layout.Bars); got != 3 {
		t.Errorf("bar count = %d, want 3", got)
	}
	if result.RosterHash == "" {
		t.Error("missing roster hash")
	}
	if result.Stats.PeopleCount != 3 {
		t.Errorf("PeopleCount = %d, want 3", result.Stats.PeopleCount)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !strings.Contains(string(svg), "<svg") {
		t.Error("missing svg artifact")
	}
	jsonData, ok := result.Artifacts[FormatJSON]
	if !ok || !strings.Contains(string(jsonData), "Marie Curie") {
		t.Error("missing json artifact")
	}
}

func TestExecuteChartFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.yaml")
	roster := `people:
  - name: Marie Curie
    birth_year: 1867
    death_year: 1934
  - name: Albert Einstein
    birth_year: 1879
    death_year: 1955
`
	if err := os.WriteFile(path, []byte(roster), 0o644); err != nil {
		t.Fatal(err)
	}

	r := testRunner()
	result, err := r.Execute(context.Background(), Options{RosterPath: path})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := len(result.People); got != 2 {
		t.Errorf("people count = %d, want 2", got)
	}
}

func TestExecuteRadial(t *testing.T) {
	r := testRunner()
	result, err := r.Execute(context.Background(), Options{
		People:  testPeople(),
		VizType: VizTypeRadial,
		Focal:   "Marie Curie",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// Einstein and Picasso both overlap Curie's 1867-1934 span.
	if got := len(result.Arcs); got != 2 {
		t.Errorf("arc count = %d, want 2", got)
	}
	if _, ok := result.Artifacts[FormatSVG]; !ok {
		t.Error("missing svg artifact")
	}
}

func TestExecuteRadialUnknownFocal(t *testing.T) {
	r := testRunner()
	_, err := r.Execute(context.Background(), Options{
		People:  testPeople(),
		VizType: VizTypeRadial,
		Focal:   "Nobody",
	})
	if !errors.Is(err, errors.ErrCodePersonNotFound) {
		t.Errorf("Execute() error = %v, want PERSON_NOT_FOUND", err)
	}
}

func TestExecuteGrid(t *testing.T) {
	r := testRunner()
	result, err := r.Execute(context.Background(), Options{
		People:  testPeople(),
		VizType: VizTypeGrid,
		Focal:   "Pablo Picasso",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// One cell per year of the 1881-1973 lifespan.
	if got := len(result.Cells); got != 92 {
		t.Errorf("cell count = %d, want 92", got)
	}
}

func TestExecuteLayoutCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.CurrentYear = 2026
	r := NewRunner(fc, cfg, nil)
	defer r.Close()

	opts := Options{People: testPeople()}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}

	second, err := r.Execute(context.Background(), Options{People: testPeople()})
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses both caches.
	third, err := r.Execute(context.Background(), Options{People: testPeople(), Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute() error = %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestExecuteRosterHashCanonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.yaml")
	roster := `people:
  - name: Marie Curie
    birth_year: 1867
    death_year: 1934
    category: science
  - name: Albert Einstein
    birth_year: 1879
    death_year: 1955
    category: science
  - name: Pablo Picasso
    birth_year: 1881
    death_year: 1973
    category: art
`
	if err := os.WriteFile(path, []byte(roster), 0o644); err != nil {
		t.Fatal(err)
	}

	r := testRunner()
	inline, err := r.Execute(context.Background(), Options{People: testPeople()})
	if err != nil {
		t.Fatalf("inline Execute() error = %v", err)
	}
	fromFile, err := r.Execute(context.Background(), Options{RosterPath: path})
	if err != nil {
		t.Fatalf("file Execute() error = %v", err)
	}

	// The hash covers the canonical serialization, so the same people give
	// the same hash no matter how the roster arrived.
	if inline.RosterHash != fromFile.RosterHash {
		t.Errorf("roster hash differs by source: inline %s, file %s", inline.RosterHash, fromFile.RosterHash)
	}
}

func TestExecuteMissingRosterFile(t *testing.T) {
	r := testRunner()
	_, err := r.Execute(context.Background(), Options{RosterPath: "nope.yaml", People: nil})
	if err == nil {
		t.Fatal("Execute() with missing roster file should fail")
	}
}
