package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoline/chronoline/pkg/errors"
	"github.com/chronoline/chronoline/pkg/timeline"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultPlotWidth, cfg.Chart.PlotWidth)
	assert.Equal(t, timeline.DefaultRowHeight, cfg.Chart.RowHeight)
	assert.Equal(t, timeline.DefaultPaletteSize, cfg.Chart.PaletteSize)
	assert.Equal(t, 10, cfg.Radial.MaxContemporaries)
	assert.Zero(t, cfg.CurrentYear, "current year defaults to wall clock")
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chronoline.toml")
	content := `
current_year = 2026

[chart]
plot_width = 640
row_height = 20

[radial]
max_contemporaries = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2026, cfg.CurrentYear)
	assert.Equal(t, 640.0, cfg.Chart.PlotWidth)
	assert.Equal(t, 20.0, cfg.Chart.RowHeight)
	assert.Equal(t, 5, cfg.Radial.MaxContemporaries)

	// Untouched keys keep their defaults.
	assert.Equal(t, timeline.DefaultRowGap, cfg.Chart.RowGap)
	assert.Equal(t, Default().Grid, cfg.Grid)
}

func TestLoadTickLadder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chronoline.toml")
	content := `
[chart]
tick_ladder = [
  { above = 100, interval = 20 },
  { above = 10, interval = 5 },
]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	tc := cfg.Timeline()
	require.Len(t, tc.Ladder, 2)
	assert.Equal(t, timeline.TickStep{Above: 100, Interval: 20}, tc.Ladder[0])
	assert.Equal(t, 5, timeline.TickInterval(50, tc.Ladder))

	// No ladder in the file leaves the built-in default (nil) in place.
	assert.Nil(t, Default().Timeline().Ladder)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("chart = \"not a table\"\n[chart]\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestEffectiveCurrentYear(t *testing.T) {
	cfg := Default()
	cfg.CurrentYear = 1999
	assert.Equal(t, 1999, cfg.EffectiveCurrentYear())

	cfg.CurrentYear = 0
	assert.GreaterOrEqual(t, cfg.EffectiveCurrentYear(), 2026)
}

func TestMappings(t *testing.T) {
	cfg := Default()
	cfg.CurrentYear = 2026
	cfg.Chart.RowHeight = 33
	cfg.Grid.Gap = 7
	cfg.Radial.MinRadius = 11

	tc := cfg.Timeline()
	assert.Equal(t, 2026, tc.CurrentYear)
	assert.Equal(t, 33.0, tc.RowHeight)

	assert.Equal(t, 7.0, cfg.GridOptions().Gap)

	ro := cfg.RadialOptions()
	assert.Equal(t, 2026, ro.CurrentYear)
	assert.Equal(t, 11.0, ro.MinRadius)
}
