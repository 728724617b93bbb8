package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/insights"
	"github.com/etnz/finengine/renderer"
	"github.com/google/subcommands"
)

type insightsCmd struct {
	output
	in    string
	rules string
	date  string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "rule based financial health insights" }
func (*insightsCmd) Usage() string {
	return `fincalc insights -in <household.json> [-rules <rules.yaml>] [-d <date>] [-format <format>]

  Computes monthly metrics (housing ratio, debt-to-income, emergency fund) and
  evaluates the insight rules on them. Rule thresholds can be overridden from a
  YAML file, see 'fincalc topic insights'.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.in, "in", "", "Household file (JSON or Hjson)")
	f.StringVar(&c.rules, "rules", "", "Rule configuration file (YAML), defaults to $"+EnvRules)
	f.StringVar(&c.date, "d", "", "Reference date, overrides the file (default today)")
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage(err)
	}
	var in insights.Input
	if err := decodeInput(c.in, &in); err != nil {
		return fail(err)
	}
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			return usage(fmt.Errorf("parsing reference date: %w", err))
		}
		in.ReferenceDate = d
	}
	if in.ReferenceDate.IsZero() {
		in.ReferenceDate = today()
		log.WithField("date", in.ReferenceDate).Debug("no reference date, using today")
	}

	cfg, err := c.configuration()
	if err != nil {
		return fail(err)
	}
	report, err := insights.Generate(in, cfg)
	if err != nil {
		return fail(fmt.Errorf("analyzing %s: %w", c.in, err))
	}
	log.WithField("insights", len(report.Insights)).Debug("insights generated")
	if err := c.print(renderer.InsightsMarkdown(report, c.options()), report); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// configuration loads the rule file, if any, over the defaults.
func (c *insightsCmd) configuration() (insights.Configuration, error) {
	path := c.rules
	if path == "" {
		path = os.Getenv(EnvRules)
	}
	if path == "" {
		return insights.DefaultConfiguration(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return insights.Configuration{}, err
	}
	defer f.Close()
	cfg, err := insights.LoadConfiguration(f)
	if err != nil {
		return insights.Configuration{}, fmt.Errorf("loading rules %s: %w", path, err)
	}
	return cfg, nil
}
