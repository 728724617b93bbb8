package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finengine/projection"
)

// ProjectionMarkdown renders a net worth projection.
func ProjectionMarkdown(res projection.Result, opts Options) string {
	var b strings.Builder
	title := "Net Worth Projection"
	if res.ScenarioID != "" {
		title += " (" + res.ScenarioID + ")"
	}
	fmt.Fprintf(&b, "# %s from %s over %d years\n\n", title, res.StartDate, res.HorizonYears)

	s := res.Summary
	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Starting Net Worth | %s |\n", opts.money(s.StartingNetWorth))
	fmt.Fprintf(&b, "| Ending Net Worth | %s |\n", opts.money(s.EndingNetWorth))
	fmt.Fprintf(&b, "| Change | %s (%s) |\n", opts.signed(s.NetWorthChange), percent(s.NetWorthChangePercent))
	fmt.Fprintf(&b, "| Total Income | %s |\n", opts.money(s.TotalIncome))
	fmt.Fprintf(&b, "| Total Expenses | %s |\n", opts.money(s.TotalExpenses))
	fmt.Fprintf(&b, "| Total Debt Paid | %s |\n", opts.money(s.TotalDebtPaid))
	fmt.Fprintf(&b, "| Total Interest Paid | %s |\n\n", opts.money(s.TotalInterestPaid))

	fmt.Fprint(&b, "## Years\n\n")
	fmt.Fprintln(&b, "| Year | Date | Assets | Liabilities | Net Worth | Income | Expenses | Debt Payments | Net Cash Flow |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, y := range res.Snapshots {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			y.Year,
			y.Date,
			opts.money(y.TotalAssets),
			opts.money(y.TotalLiabilities),
			opts.money(y.NetWorth),
			opts.money(y.Income),
			opts.money(y.Expenses),
			opts.money(y.DebtPayments),
			opts.signed(y.NetCashFlow),
		)
	}
	fmt.Fprintln(&b)

	last := res.Snapshots[len(res.Snapshots)-1]
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "## Assets in %s\n\n", last.Date)
		fmt.Fprintln(w, "| Asset | Start | End |")
		fmt.Fprintln(w, "|:---|---:|---:|")
		for i, a := range last.Assets {
			fmt.Fprintf(w, "| %s | %s | %s |\n", label(a.Name, a.ID), opts.money(res.Snapshots[0].Assets[i].Value), opts.money(a.Value))
		}
		fmt.Fprintln(w)
		return len(last.Assets) > 0
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "## Liabilities in %s\n\n", last.Date)
		fmt.Fprintln(w, "| Liability | Start | End |")
		fmt.Fprintln(w, "|:---|---:|---:|")
		for i, l := range last.Liabilities {
			fmt.Fprintf(w, "| %s | %s | %s |\n", label(l.Name, l.ID), opts.money(res.Snapshots[0].Liabilities[i].Balance), opts.money(l.Balance))
		}
		fmt.Fprintln(w)
		return len(last.Liabilities) > 0
	})
	return b.String()
}

func label(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
