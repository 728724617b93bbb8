package export

import (
	"io"

	"github.com/etnz/finengine/projection"
)

// Projection writes a projection as "Summary", "Years", "Assets" and "Liabilities" sheets.
// Entity sheets have one column per entity, labelled with its id.
func Projection(w io.Writer, res projection.Result) error {
	wb := newWorkbook()
	s := res.Summary
	wb.startSheet("Summary", "Metric", "Value")
	wb.metric("Scenario", res.ScenarioID)
	wb.metric("Start Date", res.StartDate)
	wb.metric("Horizon (years)", res.HorizonYears)
	wb.metric("Starting Net Worth", s.StartingNetWorth)
	wb.metric("Ending Net Worth", s.EndingNetWorth)
	wb.metric("Net Worth Change", s.NetWorthChange)
	wb.metric("Net Worth Change (%)", s.NetWorthChangePercent)
	wb.metric("Total Income", s.TotalIncome)
	wb.metric("Total Expenses", s.TotalExpenses)
	wb.metric("Total Debt Paid", s.TotalDebtPaid)
	wb.metric("Total Interest Paid", s.TotalInterestPaid)

	wb.startSheet("Years", "Year", "Date", "Assets", "Liabilities", "Net Worth", "Income", "Expenses", "Debt Payments", "Principal", "Interest", "Net Cash Flow")
	for _, y := range res.Snapshots {
		wb.write(y.Year, y.Date, y.TotalAssets, y.TotalLiabilities, y.NetWorth, y.Income, y.Expenses, y.DebtPayments, y.PrincipalPaid, y.InterestPaid, y.NetCashFlow)
	}

	first := res.Snapshots[0]
	if len(first.Assets) > 0 {
		headers := []string{"Year"}
		for _, a := range first.Assets {
			headers = append(headers, a.ID)
		}
		wb.startSheet("Assets", headers...)
		for _, y := range res.Snapshots {
			row := []any{y.Year}
			for _, a := range y.Assets {
				row = append(row, a.Value)
			}
			wb.write(row...)
		}
	}
	if len(first.Liabilities) > 0 {
		headers := []string{"Year"}
		for _, l := range first.Liabilities {
			headers = append(headers, l.ID)
		}
		wb.startSheet("Liabilities", headers...)
		for _, y := range res.Snapshots {
			row := []any{y.Year}
			for _, l := range y.Liabilities {
				row = append(row, l.Balance)
			}
			wb.write(row...)
		}
	}
	return wb.flush(w)
}
