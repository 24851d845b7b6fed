package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoline/chronoline/pkg/pipeline"
)

// gridOpts holds the command-line flags for the grid command.
type gridOpts struct {
	focal   string
	output  string
	formats []string
	width   float64 // available square region side in pixels
	year    int
	noCache bool
	refresh bool
}

// gridCommand creates the grid command for the life-events year grid.
func (c *CLI) gridCommand() *cobra.Command {
	var formatsStr string
	var opts gridOpts

	cmd := &cobra.Command{
		Use:   "grid [roster]",
		Short: "Render the year grid for one person",
		Long: `Grid draws one square per year of a person's life, packed row-major into
the largest near-square arrangement that fits the available region.

Without --focal, an interactive picker lists the roster.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runGrid(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.focal, "focal", "", "person name (interactive picker when omitted)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "available region side in pixels")
	cmd.Flags().IntVar(&opts.year, "year", 0, "treat living people as alive through this year")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached layout exists")

	return cmd
}

func (c *CLI) runGrid(ctx context.Context, rosterPath string, opts *gridOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	focal, err := c.resolveFocal(rosterPath, opts.focal, opts.year)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		RosterPath:  rosterPath,
		VizType:     pipeline.VizTypeGrid,
		Focal:       focal,
		PlotWidth:   opts.width,
		CurrentYear: opts.year,
		Formats:     opts.formats,
		Refresh:     opts.refresh,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Planned %d year cells for %s", len(result.Cells), focal))

	return writeArtifacts(result.Artifacts, opts.output, rosterPath, opts.formats)
}
