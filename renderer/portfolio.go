package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finengine/investment"
)

// PortfolioMarkdown renders a portfolio summary, followed by period totals when any.
func PortfolioMarkdown(s investment.PortfolioSummary, periods []investment.PeriodTotals, opts Options) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Portfolio\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Value | %s |\n", opts.money(s.TotalValue))
	fmt.Fprintf(&b, "| Cost Basis | %s |\n", opts.money(s.TotalCostBasis))
	fmt.Fprintf(&b, "| Unrealized Gain | %s (%s) |\n", opts.signed(s.UnrealizedGain), percent(s.UnrealizedGainPercent))
	fmt.Fprintf(&b, "| Dividends | %s |\n", opts.money(s.Totals.Dividends))
	fmt.Fprintf(&b, "| Net Contributions | %s |\n", opts.money(s.Totals.NetContributions))
	fmt.Fprintf(&b, "| Total Return | %s (%s) |\n\n", opts.signed(s.TotalReturn), percent(s.TotalReturnPercent))

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "## Holdings\n\n")
		fmt.Fprintln(w, "| Symbol | Shares | Price | Value | Cost Basis | Gain | Allocation |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|---:|---:|---:|")
		for _, h := range s.Holdings {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s (%s) | %s |\n",
				h.Symbol,
				h.Shares,
				opts.money(h.CurrentPrice),
				opts.money(h.Value),
				opts.money(h.CostBasis),
				opts.signed(h.UnrealizedGain),
				percent(h.GainPercent),
				percent(h.AllocationPercent),
			)
		}
		fmt.Fprintln(w)
		return len(s.Holdings) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "## Activity\n\n")
		fmt.Fprintln(w, "| Period | Contributions | Withdrawals | Dividends | Reinvested |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|---:|")
		for _, p := range periods {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				p.Period,
				opts.money(p.Totals.Contributions),
				opts.money(p.Totals.Withdrawals),
				opts.money(p.Totals.Dividends),
				opts.money(p.Totals.Reinvestments),
			)
		}
		return len(periods) > 0
	})
	return b.String()
}

// TimeSeriesMarkdown renders the value history of a portfolio, nothing when empty.
func TimeSeriesMarkdown(points []investment.TimeSeriesPoint, opts Options) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Value History\n\n")
		fmt.Fprintln(w, "| Date | Value | Change |")
		fmt.Fprintln(w, "|:---|---:|---:|")
		for i, p := range points {
			change := "-"
			if i > 0 {
				change = fmt.Sprintf("%s (%s)", opts.signed(p.Change), percent(p.ChangePercent))
			}
			fmt.Fprintf(w, "| %s | %s | %s |\n", p.Date, opts.money(p.Value), change)
		}
		return len(points) > 0
	})
	return b.String()
}
