package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finengine/export"
	"github.com/etnz/finengine/renderer"
	"github.com/etnz/finengine/rentvsbuy"
	"github.com/google/subcommands"
)

type rentVsBuyCmd struct {
	output
	in    string
	years int
	xlsx  string
}

func (*rentVsBuyCmd) Name() string     { return "rentvsbuy" }
func (*rentVsBuyCmd) Synopsis() string { return "compare renting and buying a home" }
func (*rentVsBuyCmd) Usage() string {
	return `fincalc rentvsbuy -in <home.json> [-years <n>] [-format <format>] [-xlsx <file>]

  Compares the net worth of buying a home against renting and investing the
  upfront cost, year by year. Unset assumptions use their defaults.
`
}

func (c *rentVsBuyCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.in, "in", "", "Home purchase file (JSON or Hjson)")
	f.IntVar(&c.years, "years", 0, "Years to compare, overrides the file")
	f.StringVar(&c.xlsx, "xlsx", "", "Also write the comparison to this XLSX workbook")
}

func (c *rentVsBuyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage(err)
	}
	var in rentvsbuy.Input
	if err := decodeInput(c.in, &in); err != nil {
		return fail(err)
	}
	if c.years != 0 {
		in.ProjectionYears = c.years
	}
	res, err := rentvsbuy.CalculateRentVsBuy(in)
	if err != nil {
		return fail(fmt.Errorf("comparing %s: %w", c.in, err))
	}
	if c.xlsx != "" {
		if err := writeWorkbook(c.xlsx, func(w *os.File) error { return export.RentVsBuy(w, res) }); err != nil {
			return fail(err)
		}
	}
	if err := c.print(renderer.RentVsBuyMarkdown(res, c.options()), res); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
