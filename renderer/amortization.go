package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/amortization"
)

// ScheduleOptions configure ScheduleMarkdown.
type ScheduleOptions struct {
	Options
	Yearly bool // one row per year of payments instead of one per payment
}

// ScheduleMarkdown renders a loan schedule.
func ScheduleMarkdown(s amortization.Schedule, opts ScheduleOptions) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Amortization Schedule\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Monthly Payment | %s |\n", opts.money(s.MonthlyPayment))
	fmt.Fprintf(&b, "| Number of Payments | %d |\n", s.NumberOfPayments())
	fmt.Fprintf(&b, "| Total Principal | %s |\n", opts.money(s.TotalPrincipal))
	fmt.Fprintf(&b, "| Total Interest | %s |\n", opts.money(s.TotalInterest))
	if s.TotalExtra.IsPositive() {
		fmt.Fprintf(&b, "| Total Extra Payments | %s |\n", opts.money(s.TotalExtra))
	}
	fmt.Fprintf(&b, "| Total Paid | %s |\n", opts.money(s.TotalPayments))
	fmt.Fprintf(&b, "| Payoff Date | %s |\n\n", s.PayoffDate)

	if opts.Yearly {
		renderYearlySchedule(&b, s, opts.Options)
	} else {
		renderMonthlySchedule(&b, s, opts.Options)
	}
	return b.String()
}

func renderMonthlySchedule(w io.Writer, s amortization.Schedule, opts Options) {
	fmt.Fprint(w, "## Payments\n\n")
	fmt.Fprintln(w, "| # | Due | Payment | Principal | Interest | Extra | Balance |")
	fmt.Fprintln(w, "|---:|:---|---:|---:|---:|---:|---:|")
	for _, e := range s.Entries {
		fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s | %s |\n",
			e.PaymentNumber,
			e.DueDate,
			opts.money(e.ScheduledPayment),
			opts.money(e.Principal),
			opts.money(e.Interest),
			opts.money(e.ExtraPayment),
			opts.money(e.EndingBalance),
		)
	}
}

func renderYearlySchedule(w io.Writer, s amortization.Schedule, opts Options) {
	fmt.Fprint(w, "## Payments per Year\n\n")
	fmt.Fprintln(w, "| Year | Payments | Principal | Interest | Extra | Balance |")
	fmt.Fprintln(w, "|---:|---:|---:|---:|---:|---:|")
	for i := 0; i < len(s.Entries); i += 12 {
		var c finengine.Calc
		var payments, principal, interest, extra finengine.Cents
		year := s.Entries[i:min(i+12, len(s.Entries))]
		for _, e := range year {
			payments = c.Sum(payments, e.ScheduledPayment, e.ExtraPayment)
			principal = c.Add(principal, e.Principal)
			interest = c.Add(interest, e.Interest)
			extra = c.Add(extra, e.ExtraPayment)
		}
		if err := c.Err(); err != nil {
			fmt.Fprintf(w, "\n**Cannot total year %d:** %v\n", i/12+1, err)
			return
		}
		fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s |\n",
			i/12+1,
			opts.money(payments),
			opts.money(principal),
			opts.money(interest),
			opts.money(extra),
			opts.money(year[len(year)-1].EndingBalance),
		)
	}
}

// EarlyPayoffMarkdown renders the comparison of a loan with and without extra payments.
func EarlyPayoffMarkdown(p amortization.EarlyPayoff, opts Options) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Early Payoff Analysis\n\n")
	fmt.Fprintln(&b, "| Metric | As Scheduled | With Extras |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Payments | %d | %d |\n", p.OriginalPayments, p.NewPayments)
	fmt.Fprintf(&b, "| Total Interest | %s | %s |\n", opts.money(p.OriginalInterest), opts.money(p.NewInterest))
	fmt.Fprintf(&b, "| Payoff Date | %s | %s |\n\n", p.OriginalPayoffDate, p.NewPayoffDate)

	if !p.IsPaidOffEarly {
		fmt.Fprintln(&b, "The extra payments do not shorten the loan.")
		return b.String()
	}
	fmt.Fprintf(&b, "Paying %s extra saves **%s** of interest and **%d** months.\n",
		opts.money(p.TotalExtra), opts.money(p.InterestSaved), p.MonthsSaved)
	return b.String()
}
