package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finengine/insights"
)

var severityIcon = map[insights.Severity]string{
	insights.Alert:   "🔴",
	insights.Warning: "🟠",
	insights.Info:    "🔵",
}

// InsightsMarkdown renders the metrics and insights of a report.
func InsightsMarkdown(r insights.Report, opts Options) string {
	var b strings.Builder
	m := r.Metrics
	fmt.Fprintf(&b, "# Financial Insights on %s\n\n", r.ReferenceDate)
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Monthly Income | %s |\n", opts.money(m.MonthlyIncome))
	fmt.Fprintf(&b, "| Monthly Expenses | %s |\n", opts.money(m.MonthlyExpenses))
	fmt.Fprintf(&b, "| Monthly Debt Payments | %s |\n", opts.money(m.MonthlyDebtPayments))
	fmt.Fprintf(&b, "| Housing Ratio | %s |\n", percent(m.HousingRatio))
	fmt.Fprintf(&b, "| Debt-to-Income | %s |\n", percent(m.DebtToIncomeRatio))
	fmt.Fprintf(&b, "| Emergency Fund | %s months |\n", m.EmergencyFundMonths.StringFixed(1))
	fmt.Fprintf(&b, "| Net Worth | %s |\n\n", opts.money(m.NetWorth))

	if len(r.Insights) == 0 {
		fmt.Fprintln(&b, "No findings.")
		return b.String()
	}
	for _, ins := range r.Insights {
		fmt.Fprintf(&b, "## %s %s\n\n", severityIcon[ins.Severity], ins.Title)
		fmt.Fprintf(&b, "%s\n\n", ins.Message)
		fmt.Fprintf(&b, "_%s · %s · %s_\n\n", ins.Severity, ins.Category, ins.ID)
	}
	return b.String()
}
