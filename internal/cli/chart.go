package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronoline/chronoline/pkg/errors"
	"github.com/chronoline/chronoline/pkg/pipeline"
)

// chartOpts holds the command-line flags for the chart command.
type chartOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "json"
	width   float64  // plot area width in pixels
	year    int      // current-year override for living people
	legend  bool     // include category legend in SVG output
	title   string   // chart title
	noCache bool     // disable the layout cache
	refresh bool     // bypass cached layouts and recompute
}

// chartCommand creates the chart command for rendering the lifespan chart.
func (c *CLI) chartCommand() *cobra.Command {
	var formatsStr string
	var opts chartOpts

	cmd := &cobra.Command{
		Use:   "chart [roster]",
		Short: "Render the lifespan chart for a roster",
		Long: `Chart reads a roster of people from a YAML or JSON file and renders the
lifespan chart: one horizontal bar per person, ordered by birth year, with
tick gridlines at round-year intervals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runChart(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "plot area width in pixels")
	cmd.Flags().IntVar(&opts.year, "year", 0, "treat living people as alive through this year")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "include a category legend")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached layout exists")

	return cmd
}

func (c *CLI) runChart(ctx context.Context, roster string, opts *chartOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		RosterPath:  roster,
		VizType:     pipeline.VizTypeChart,
		PlotWidth:   opts.width,
		CurrentYear: opts.year,
		Formats:     opts.formats,
		Legend:      opts.legend,
		Title:       opts.title,
		Refresh:     opts.refresh,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Assembled chart for %d people", result.Stats.PeopleCount))

	if err := writeArtifacts(result.Artifacts, opts.output, roster, opts.formats); err != nil {
		return err
	}
	printStats(result.Stats.PeopleCount, result.CacheInfo.LayoutHit)
	return nil
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "json": true}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each rendered format to disk. A single format goes to
// the exact output path when one is given; multiple formats share a base path.
// Filenames derived from the roster path are validated before writing;
// explicit --output paths are taken as given.
func writeArtifacts(artifacts map[string][]byte, output, input string, formats []string) error {
	derived := output == ""

	if len(formats) == 1 {
		path := output
		if path == "" {
			path = basePath("", input) + "." + formats[0]
		}
		if err := writeArtifact(path, artifacts[formats[0]], derived); err != nil {
			return err
		}
		return nil
	}

	base := basePath(output, input)
	for _, format := range formats {
		if err := writeArtifact(base+"."+format, artifacts[format], derived); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(path string, data []byte, derived bool) error {
	if derived {
		if err := errors.ValidateFilename(filepath.Base(path)); err != nil {
			return err
		}
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	printFile(path)
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
