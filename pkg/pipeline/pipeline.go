// Package pipeline provides the core chart pipeline for Chronoline.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate the roster of people from YAML or JSON
//  2. Layout: Compute the chart geometry (range, ticks, rows, bars)
//  3. Render: Generate output in various formats (SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, cfg, logger)
//	opts := pipeline.Options{
//	    RosterPath: "people.yaml",
//	    VizType:    pipeline.VizTypeChart,
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"

	"github.com/chronoline/chronoline/pkg/chart"
	"github.com/chronoline/chronoline/pkg/errors"
	"github.com/chronoline/chronoline/pkg/timeline"
	"github.com/chronoline/chronoline/pkg/timeline/grid"
	"github.com/chronoline/chronoline/pkg/timeline/radial"
)

// Visualization types supported by the pipeline.
const (
	// VizTypeChart is the main lifespan chart: one horizontal bar per person.
	VizTypeChart = "chart"

	// VizTypeRadial is the contemporaries clock for a single focal person.
	VizTypeRadial = "radial"

	// VizTypeGrid is the year grid for a single person's lifespan.
	VizTypeGrid = "grid"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultPlotWidth is the default plot area width in pixels.
const DefaultPlotWidth = 1000.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeChart:  true,
	VizTypeRadial: true,
	VizTypeGrid:   true,
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of RosterPath or People must be set:
	// the CLI loads from disk, the API posts the roster inline.
	RosterPath string            `json:"roster_path,omitempty"`
	People     []timeline.Person `json:"people,omitempty"`

	// Layout options
	VizType     string  `json:"viz_type,omitempty"`
	Focal       string  `json:"focal,omitempty"` // radial/grid subject, by name
	PlotWidth   float64 `json:"plot_width,omitempty"`
	CurrentYear int     `json:"current_year,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Legend  bool     `json:"legend,omitempty"`
	Title   string   `json:"title,omitempty"`

	// Refresh bypasses the layout cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// People is the validated roster.
	People []timeline.Person

	// RosterHash is the content hash of the roster.
	RosterHash string

	// Layout is the assembled chart geometry (VizTypeChart only).
	Layout *chart.Layout

	// Arcs are the contemporary arcs (VizTypeRadial only).
	Arcs []radial.Arc

	// Cells are the planned year cells (VizTypeGrid only).
	Cells []grid.Cell

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PeopleCount int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid viz_type: %q (must be one of: chart, radial, grid)", vizType)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if (o.VizType == VizTypeRadial || o.VizType == VizTypeGrid) && o.Focal == "" {
		return errors.New(errors.ErrCodeInvalidInput,
			"focal person is required for %s visualizations", o.VizType)
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading the roster.
func (o *Options) ValidateForLoad() error {
	if o.RosterPath == "" && len(o.People) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "roster_path or people is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = VizTypeChart
	}
	if o.PlotWidth == 0 {
		o.PlotWidth = DefaultPlotWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
}

// keyMaterial serializes the option fields that affect layout output.
// Runtime-only fields are excluded so equivalent runs share cache entries.
func (o *Options) keyMaterial() []byte {
	material := struct {
		VizType     string  `json:"viz_type"`
		Focal       string  `json:"focal"`
		PlotWidth   float64 `json:"plot_width"`
		CurrentYear int     `json:"current_year"`
	}{o.VizType, o.Focal, o.PlotWidth, o.CurrentYear}
	data, _ := json.Marshal(material)
	return data
}

// renderKeyMaterial serializes the option fields that affect rendered
// artifacts but not the layout itself.
func (o *Options) renderKeyMaterial() []byte {
	material := struct {
		Legend bool   `json:"legend"`
		Title  string `json:"title"`
	}{o.Legend, o.Title}
	data, _ := json.Marshal(material)
	return data
}
