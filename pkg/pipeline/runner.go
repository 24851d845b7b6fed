package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"

	"github.com/chronoline/chronoline/pkg/cache"
	"github.com/chronoline/chronoline/pkg/chart"
	"github.com/chronoline/chronoline/pkg/config"
	"github.com/chronoline/chronoline/pkg/errors"
	"github.com/chronoline/chronoline/pkg/observability"
	"github.com/chronoline/chronoline/pkg/render/svg"
	"github.com/chronoline/chronoline/pkg/roster"
	"github.com/chronoline/chronoline/pkg/timeline"
	"github.com/chronoline/chronoline/pkg/timeline/grid"
	"github.com/chronoline/chronoline/pkg/timeline/radial"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, config, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Config config.Config
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and config.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, cfg config.Config, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Config: cfg,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	people, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.People = people
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PeopleCount = len(people)
	result.RosterHash = rosterHash(people)

	r.Logger.Info("loaded roster",
		"people", len(people),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(people))
	err = r.computeLayout(ctx, people, opts, result)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, len(people), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("computed layout",
		"viz_type", opts.VizType,
		"cache_hit", result.CacheInfo.LayoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.renderArtifacts(ctx, opts, result)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cache_hit", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the roster: from opts.People when supplied
// inline, otherwise from opts.RosterPath.
func (r *Runner) Load(ctx context.Context, opts Options) ([]timeline.Person, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	people := opts.People
	if len(people) == 0 {
		loaded, err := roster.Load(opts.RosterPath)
		if err != nil {
			return nil, err
		}
		people = loaded
	}
	if err := roster.Validate(people); err != nil {
		return nil, err
	}
	return people, nil
}

// computeLayout fills the viz-type-specific layout field on result. Chart
// layouts go through the cache; radial arcs and grid cells are cheap enough
// to recompute every run.
func (r *Runner) computeLayout(ctx context.Context, people []timeline.Person, opts Options, result *Result) error {
	switch opts.VizType {
	case VizTypeChart:
		l, hit, err := r.ChartLayoutWithCacheInfo(ctx, people, opts)
		if err != nil {
			return err
		}
		result.Layout = &l
		result.CacheInfo.LayoutHit = hit
		return nil

	case VizTypeRadial:
		focal, err := roster.Find(people, opts.Focal)
		if err != nil {
			return err
		}
		tcfg := r.timelineConfig(opts)
		ropts := r.Config.RadialOptions()
		ropts.CurrentYear = tcfg.CurrentYear
		colors := timeline.AssignColors(people, tcfg.PaletteSize)
		result.Arcs = radial.Build(focal, people, colors, ropts)
		return nil

	case VizTypeGrid:
		focal, err := roster.Find(people, opts.Focal)
		if err != nil {
			return err
		}
		tcfg := r.timelineConfig(opts)
		years := focal.Lifespan(tcfg.CurrentYear)
		result.Cells = grid.Plan(years, opts.PlotWidth, opts.PlotWidth, r.Config.GridOptions())
		return nil

	default:
		return ValidateVizType(opts.VizType)
	}
}

// ChartLayoutWithCacheInfo assembles the chart layout with caching and
// returns cache hit info.
func (r *Runner) ChartLayoutWithCacheInfo(ctx context.Context, people []timeline.Person, opts Options) (chart.Layout, bool, error) {
	opts.SetLayoutDefaults()

	key := cache.LayoutKey(rosterHash(people), cache.Hash(opts.keyMaterial()))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if cached, err := chart.UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// Fall through and recompute on deserialization failure.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l, err := chart.Build(people, opts.PlotWidth, r.timelineConfig(opts))
	if err != nil {
		return chart.Layout{}, false, err
	}
	l.Palette = r.palette()

	if data, err := chart.MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil
}

// ChartLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ChartLayout(ctx context.Context, people []timeline.Person, opts Options) (chart.Layout, error) {
	l, _, err := r.ChartLayoutWithCacheInfo(ctx, people, opts)
	return l, err
}

// renderArtifacts renders every requested format, consulting the artifact
// cache first. The cache key hashes the serialized layout, so a layout cache
// hit usually cascades into artifact hits too.
func (r *Runner) renderArtifacts(ctx context.Context, opts Options, result *Result) (map[string][]byte, bool, error) {
	layoutData, err := r.marshalLayout(opts, result)
	if err != nil {
		return nil, false, err
	}
	layoutHash := cache.Hash(append(layoutData, opts.renderKeyMaterial()...))

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := !opts.Refresh
	if allCached {
		for _, format := range opts.Formats {
			key := cache.ArtifactKey(layoutHash, format)
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				allCached = false
				break
			}
			artifacts[format] = data
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}

	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatJSON:
			data = layoutData
		case FormatSVG:
			data, err = r.renderSVG(opts, result)
			if err != nil {
				return nil, false, err
			}
		}
		artifacts[format] = data

		key := cache.ArtifactKey(layoutHash, format)
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return artifacts, false, nil
}

// marshalLayout serializes whichever layout the viz type produced.
func (r *Runner) marshalLayout(opts Options, result *Result) ([]byte, error) {
	switch opts.VizType {
	case VizTypeChart:
		return chart.MarshalLayout(*result.Layout)
	case VizTypeRadial:
		data, err := json.Marshal(result.Arcs)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize arcs")
		}
		return data, nil
	case VizTypeGrid:
		data, err := json.Marshal(result.Cells)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize cells")
		}
		return data, nil
	}
	return nil, ValidateVizType(opts.VizType)
}

func (r *Runner) renderSVG(opts Options, result *Result) ([]byte, error) {
	svgOpts := []svg.Option{svg.WithPalette(r.palette())}
	if opts.Legend {
		svgOpts = append(svgOpts, svg.WithLegend())
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, svg.WithTitle(opts.Title))
	}

	switch opts.VizType {
	case VizTypeChart:
		return svg.RenderChart(*result.Layout, svgOpts...), nil
	case VizTypeRadial:
		focal, err := roster.Find(result.People, opts.Focal)
		if err != nil {
			return nil, err
		}
		return svg.RenderRadial(focal, result.Arcs, svgOpts...), nil
	case VizTypeGrid:
		focal, err := roster.Find(result.People, opts.Focal)
		if err != nil {
			return nil, err
		}
		return svg.RenderEventsGrid(focal, result.Cells, svgOpts...), nil
	}
	return nil, ValidateVizType(opts.VizType)
}

// timelineConfig maps the runner config onto the layout options, applying
// the per-run current-year override.
func (r *Runner) timelineConfig(opts Options) timeline.Config {
	tcfg := r.Config.Timeline()
	if opts.CurrentYear != 0 {
		tcfg.CurrentYear = opts.CurrentYear
	}
	return tcfg
}

func (r *Runner) palette() []string {
	if len(r.Config.Chart.Palette) > 0 {
		return r.Config.Chart.Palette
	}
	return timeline.DefaultPalette
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// rosterHash content-hashes the canonical roster serialization for cache
// keys and API responses. Hashing the [roster.Marshal] form means inline and
// file-loaded rosters with the same people hash identically.
func rosterHash(people []timeline.Person) string {
	data, _ := roster.Marshal(people, roster.FormatJSON)
	return cache.Hash(data)
}
