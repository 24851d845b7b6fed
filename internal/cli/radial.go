package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoline/chronoline/pkg/pipeline"
	"github.com/chronoline/chronoline/pkg/roster"
)

// radialOpts holds the command-line flags for the radial command.
type radialOpts struct {
	focal   string   // focal person name; empty starts the interactive picker
	output  string   // output file path
	formats []string // output formats: "svg", "json"
	year    int      // current-year override
	noCache bool
	refresh bool
}

// radialCommand creates the radial command for the contemporaries clock.
func (c *CLI) radialCommand() *cobra.Command {
	var formatsStr string
	var opts radialOpts

	cmd := &cobra.Command{
		Use:   "radial [roster]",
		Short: "Render the contemporaries clock for one person",
		Long: `Radial picks one focal person and draws everyone from the roster whose
lifespan overlapped theirs as concentric arcs: one full turn of the circle
spans the focal person's life, so an arc's angular extent shows when during
that life the contemporary was alive.

Without --focal, an interactive picker lists the roster.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRadial(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.focal, "focal", "", "focal person name (interactive picker when omitted)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json")
	cmd.Flags().IntVar(&opts.year, "year", 0, "treat living people as alive through this year")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached layout exists")

	return cmd
}

func (c *CLI) runRadial(ctx context.Context, rosterPath string, opts *radialOpts) error {
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
		VizType:     pipeline.VizTypeRadial,
		Focal:       focal,
		CurrentYear: opts.year,
		Formats:     opts.formats,
		Refresh:     opts.refresh,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d contemporaries of %s", len(result.Arcs), focal))

	if len(result.Arcs) == 0 {
		printWarning("No one in the roster overlapped %s's lifespan", focal)
	}

	return writeArtifacts(result.Artifacts, opts.output, rosterPath, opts.formats)
}

// resolveFocal returns the focal person name, running the interactive
// picker when none was given on the command line.
func (c *CLI) resolveFocal(rosterPath, focal string, year int) (string, error) {
	if focal != "" {
		return focal, nil
	}

	people, err := roster.Load(rosterPath)
	if err != nil {
		return "", err
	}

	currentYear := year
	if currentYear == 0 {
		cfg, err := c.loadConfig()
		if err != nil {
			return "", err
		}
		currentYear = cfg.EffectiveCurrentYear()
	}

	p, err := pickPerson(people, currentYear)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}
