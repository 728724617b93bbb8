package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/investment"
	"github.com/etnz/finengine/renderer"
	"github.com/google/subcommands"
)

// portfolioFile is the input of the portfolio command.
type portfolioFile struct {
	Holdings     []investment.Holding       `json:"holdings"`
	Transactions []investment.Transaction   `json:"transactions"`
	Snapshots    []investment.ValueSnapshot `json:"snapshots,omitempty"`
}

// portfolioReport is the json output of the portfolio command.
type portfolioReport struct {
	Summary    investment.PortfolioSummary  `json:"summary"`
	Periods    []investment.PeriodTotals    `json:"periods"`
	Dividends  []investment.PeriodAmount    `json:"dividends"`
	TimeSeries []investment.TimeSeriesPoint `json:"timeSeries,omitempty"`
}

type portfolioCmd struct {
	output
	in     string
	period string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "investment portfolio summary" }
func (*portfolioCmd) Usage() string {
	return `fincalc portfolio -in <portfolio.json> [-period <period>] [-format <format>]

  Summarizes holdings and their gains, then aggregates transactions per period
  (month, quarter, year). Value snapshots, when present, are shown as a time series.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.in, "in", "", "Portfolio file (JSON or Hjson)")
	f.StringVar(&c.period, "period", date.Monthly.String(), "Aggregation period (month, quarter, year)")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage(err)
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return usage(fmt.Errorf("parsing period: %w", err))
	}
	var in portfolioFile
	if err := decodeInput(c.in, &in); err != nil {
		return fail(err)
	}

	var r portfolioReport
	if r.Summary, err = investment.AggregatePortfolio(in.Holdings, in.Transactions); err != nil {
		return fail(err)
	}
	if r.Periods, err = investment.AggregateByPeriod(in.Transactions, period); err != nil {
		return fail(err)
	}
	if r.Dividends, err = investment.DividendsByPeriod(in.Transactions, period); err != nil {
		return fail(err)
	}
	if r.TimeSeries, err = investment.BuildPortfolioTimeSeries(in.Snapshots); err != nil {
		return fail(err)
	}

	md := renderer.PortfolioMarkdown(r.Summary, r.Periods, c.options()) + renderer.TimeSeriesMarkdown(r.TimeSeries, c.options())
	if err := c.print(md, r); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
