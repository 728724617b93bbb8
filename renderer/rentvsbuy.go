package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finengine/rentvsbuy"
)

// RentVsBuyMarkdown renders a rent-versus-buy comparison.
func RentVsBuyMarkdown(res rentvsbuy.Result, opts Options) string {
	var b strings.Builder
	s := res.Summary
	fmt.Fprint(&b, "# Rent vs Buy\n\n")
	switch s.Recommendation {
	case rentvsbuy.RecommendBuy:
		fmt.Fprintf(&b, "Buying ends **%s** ahead.", opts.money(s.NetWorthDifference))
	case rentvsbuy.RecommendRent:
		fmt.Fprintf(&b, "Renting ends **%s** ahead.", opts.money(s.NetWorthDifference.Abs()))
	default:
		fmt.Fprint(&b, "Buying and renting end **about even**.")
	}
	if s.BreakEvenYear != nil {
		fmt.Fprintf(&b, " Buying pulls ahead for good in year %d.", *s.BreakEvenYear)
	}
	fmt.Fprint(&b, "\n\n")

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Down Payment | %s |\n", opts.money(s.DownPayment))
	fmt.Fprintf(&b, "| Loan Amount | %s |\n", opts.money(s.LoanAmount))
	fmt.Fprintf(&b, "| Monthly Mortgage Payment | %s |\n", opts.money(s.MonthlyMortgagePayment))
	fmt.Fprintf(&b, "| Total Cost of Buying | %s |\n", opts.money(s.TotalBuyCost))
	fmt.Fprintf(&b, "| Total Cost of Renting | %s |\n", opts.money(s.TotalRentCost))
	fmt.Fprintf(&b, "| Mortgage Interest | %s |\n", opts.money(s.TotalInterestPaid))
	fmt.Fprintf(&b, "| Tax Savings | %s |\n", opts.money(s.TotalTaxSavings))
	fmt.Fprintf(&b, "| Investment Gains | %s |\n", opts.money(s.TotalInvestmentGain))
	fmt.Fprintf(&b, "| Final Net Worth (Buy) | %s |\n", opts.money(s.FinalBuyNetWorth))
	fmt.Fprintf(&b, "| Final Net Worth (Rent) | %s |\n\n", opts.money(s.FinalRentNetWorth))

	fmt.Fprint(&b, "## Years\n\n")
	fmt.Fprintln(&b, "| Year | Home Value | Mortgage | Buy Cost | Buy Net Worth | If Sold | Rent Cost | Rent Net Worth | Difference |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, y := range res.Years {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			y.Year,
			opts.money(y.Buy.HomeValue),
			opts.money(y.Buy.MortgageBalance),
			opts.money(y.Buy.TotalCost),
			opts.money(y.Buy.NetWorth),
			opts.money(y.Buy.NetProceedsIfSold),
			opts.money(y.Rent.TotalCost),
			opts.money(y.Rent.NetWorth),
			opts.signed(y.NetWorthDifference),
		)
	}
	return b.String()
}
