package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/export"
	"github.com/etnz/finengine/projection"
	"github.com/etnz/finengine/renderer"
	"github.com/etnz/finengine/scenario"
	"github.com/google/subcommands"
)

type projectCmd struct {
	output
	in        string
	scenarios string
	start     string
	horizon   int
	xlsx      string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "multi-year net worth projection" }
func (*projectCmd) Usage() string {
	return `fincalc project -in <household.json> [-scenario <scenario.json>] [-s <date>] [-horizon <years>] [-format <format>] [-xlsx <file>]

  Projects assets, liabilities and cash flows year by year. A scenario file
  overrides entity fields without touching the household file; when the household
  file embeds a scenario too, the scenario file is merged over it.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.in, "in", "", "Household file (JSON or Hjson)")
	f.StringVar(&c.scenarios, "scenario", "", "Scenario file (JSON or Hjson)")
	f.StringVar(&c.start, "s", "", "Start date of the projection, overrides the file")
	f.IntVar(&c.horizon, "horizon", 0, fmt.Sprintf("Years to project (%d to %d), overrides the file", projection.MinHorizon, projection.MaxHorizon))
	f.StringVar(&c.xlsx, "xlsx", "", "Also write the projection to this XLSX workbook")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage(err)
	}
	var in projection.Input
	if err := decodeInput(c.in, &in); err != nil {
		return fail(err)
	}
	if c.start != "" {
		d, err := date.Parse(c.start)
		if err != nil {
			return usage(fmt.Errorf("parsing start date: %w", err))
		}
		in.StartDate = d
	}
	if in.StartDate.IsZero() {
		in.StartDate = today()
		log.WithField("start", in.StartDate).Debug("no start date, projecting from today")
	}
	if c.horizon != 0 {
		in.HorizonYears = c.horizon
	}
	if c.scenarios != "" {
		var s scenario.Scenario
		if err := decodeInput(c.scenarios, &s); err != nil {
			return fail(err)
		}
		if in.Scenario != nil {
			s = scenario.MergeScenarios(*in.Scenario, s)
		}
		in.Scenario = &s
	}

	res, err := projection.RunProjection(in)
	if err != nil {
		return fail(fmt.Errorf("projecting %s: %w", c.in, err))
	}
	if c.xlsx != "" {
		if err := writeWorkbook(c.xlsx, func(w *os.File) error { return export.Projection(w, res) }); err != nil {
			return fail(err)
		}
	}
	if err := c.print(renderer.ProjectionMarkdown(res, c.options()), res); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
