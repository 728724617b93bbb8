package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/amortization"
	"github.com/etnz/finengine/export"
	"github.com/etnz/finengine/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// loanFile is the input of the amortize and payoff commands.
type loanFile struct {
	amortization.Input
	ExtraPayments []amortization.ExtraPayment `json:"extraPayments,omitempty"`
}

// amortizeCmd holds the flags for the 'amortize' subcommand.
type amortizeCmd struct {
	output
	in     string
	yearly bool
	xlsx   string
}

func (*amortizeCmd) Name() string     { return "amortize" }
func (*amortizeCmd) Synopsis() string { return "loan amortization schedule" }
func (*amortizeCmd) Usage() string {
	return `fincalc amortize -in <loan.json> [-yearly] [-format <format>] [-xlsx <file>]

  Computes the payment by payment schedule of a fixed rate loan, extra payments
  included. See 'fincalc topic amortization' for the input file.
`
}

func (c *amortizeCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.in, "in", "", "Loan file (JSON or Hjson)")
	f.BoolVar(&c.yearly, "yearly", false, "Summarize the payments per year")
	f.StringVar(&c.xlsx, "xlsx", "", "Also write the schedule to this XLSX workbook")
}

func (c *amortizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage(err)
	}
	var loan loanFile
	if err := decodeInput(c.in, &loan); err != nil {
		return fail(err)
	}
	s, err := amortization.GenerateScheduleWithExtras(loan.Input, loan.ExtraPayments)
	if err != nil {
		return fail(fmt.Errorf("amortizing %s: %w", c.in, err))
	}
	if c.xlsx != "" {
		if err := writeWorkbook(c.xlsx, func(w *os.File) error { return export.Schedule(w, s) }); err != nil {
			return fail(err)
		}
	}
	md := renderer.ScheduleMarkdown(s, renderer.ScheduleOptions{Options: c.options(), Yearly: c.yearly})
	if err := c.print(md, s); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// payoffCmd holds the flags for the 'payoff' subcommand.
type payoffCmd struct {
	output
	in       string
	extra    string
	rounding string
}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "early payoff analysis of a loan" }
func (*payoffCmd) Usage() string {
	return `fincalc payoff -in <loan.json> [-extra <amount>] [-rounding <mode>] [-format <format>]

  Compares a loan with and without its extra payments: interest and months saved.
  -extra adds a monthly extra payment, in currency units, from the first payment on.
`
}

func (c *payoffCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.in, "in", "", "Loan file (JSON or Hjson) with extraPayments")
	f.StringVar(&c.extra, "extra", "", "Monthly extra payment in currency units, e.g. 250.50")
	f.StringVar(&c.rounding, "rounding", finengine.RoundHalfUp.String(), "Rounding of -extra to cents: half-up, half-even, up, down, ...")
}

// monthlyExtra parses the -extra flag into a monthly extra payment.
func (c *payoffCmd) monthlyExtra() (amortization.ExtraPayment, error) {
	mode, err := finengine.ParseRoundingMode(c.rounding)
	if err != nil {
		return amortization.ExtraPayment{}, err
	}
	major, err := decimal.NewFromString(c.extra)
	if err != nil {
		return amortization.ExtraPayment{}, fmt.Errorf("parsing extra payment %q: %w", c.extra, err)
	}
	amount, err := finengine.FromMajor(major, mode)
	if err != nil {
		return amortization.ExtraPayment{}, err
	}
	return amortization.ExtraPayment{PaymentNumber: 1, Amount: amount, Frequency: amortization.ExtraMonthly}, nil
}

func (c *payoffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage(err)
	}
	var loan loanFile
	if err := decodeInput(c.in, &loan); err != nil {
		return fail(err)
	}
	if c.extra != "" {
		e, err := c.monthlyExtra()
		if err != nil {
			return usage(err)
		}
		loan.ExtraPayments = append(loan.ExtraPayments, e)
	}
	if len(loan.ExtraPayments) == 0 {
		return fail(errors.New("the loan has no extraPayments to analyze, use -extra"))
	}
	p, err := amortization.AnalyzeEarlyPayoff(loan.Input, loan.ExtraPayments)
	if err != nil {
		return fail(fmt.Errorf("analyzing %s: %w", c.in, err))
	}
	if err := c.print(renderer.EarlyPayoffMarkdown(p, c.options()), p); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// writeWorkbook creates path and lets write fill it.
func writeWorkbook(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("exporting %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.WithField("file", path).Info("workbook written")
	return nil
}
