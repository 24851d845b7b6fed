package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronoline/chronoline/pkg/chart"
	"github.com/chronoline/chronoline/pkg/roster"
	"github.com/chronoline/chronoline/pkg/timeline"
)

// compareCommand creates the compare command for two-person comparisons.
func (c *CLI) compareCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "compare [roster] [person] [person]",
		Short: "Print the age gap and overlap between two people",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(args[0], args[1], args[2], year)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "treat living people as alive through this year")
	return cmd
}

func (c *CLI) runCompare(rosterPath, nameA, nameB string, year int) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	tcfg := cfg.Timeline()
	if year != 0 {
		tcfg.CurrentYear = year
	}

	people, err := roster.Load(rosterPath)
	if err != nil {
		return err
	}
	a, err := roster.Find(people, nameA)
	if err != nil {
		return err
	}
	b, err := roster.Find(people, nameB)
	if err != nil {
		return err
	}

	colors := timeline.AssignColors(people, tcfg.PaletteSize)
	cmp := timeline.Compare(a, b, colors, tcfg.TopPad, tcfg)

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s vs %s", a.Name, b.Name)))
	printKeyValue("Age gap", fmt.Sprintf("%d years", cmp.AgeGapYears))
	printKeyValue("Overlap", fmt.Sprintf("%d years", cmp.OverlapYears))
	printKeyValue(a.Name, spanString(a, tcfg.CurrentYear))
	printKeyValue(b.Name, spanString(b, tcfg.CurrentYear))

	if cmp.OverlapYears == 0 {
		printWarning("Their lifetimes never overlapped")
	}
	return nil
}

// spanString formats a person's lifespan as "1815 – 1852 (37 yrs)".
func spanString(p timeline.Person, currentYear int) string {
	end := "living"
	if p.DeathYear != nil {
		end = chart.FormatYear(*p.DeathYear)
	}
	return fmt.Sprintf("%s – %s (%d yrs)", chart.FormatYear(p.BirthYear), end, p.Lifespan(currentYear))
}
