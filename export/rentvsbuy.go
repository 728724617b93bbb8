package export

import (
	"io"

	"github.com/etnz/finengine/rentvsbuy"
)

// RentVsBuy writes a comparison as a "Summary" and a "Years" sheet.
func RentVsBuy(w io.Writer, res rentvsbuy.Result) error {
	wb := newWorkbook()
	s := res.Summary
	wb.startSheet("Summary", "Metric", "Value")
	wb.metric("Recommendation", string(s.Recommendation))
	if s.BreakEvenYear != nil {
		wb.metric("Break-even Year", *s.BreakEvenYear)
	} else {
		wb.metric("Break-even Year", "never")
	}
	wb.metric("Down Payment", s.DownPayment)
	wb.metric("Loan Amount", s.LoanAmount)
	wb.metric("Monthly Mortgage Payment", s.MonthlyMortgagePayment)
	wb.metric("Upfront Cost", s.UpfrontCost)
	wb.metric("Total Cost of Buying", s.TotalBuyCost)
	wb.metric("Total Cost of Renting", s.TotalRentCost)
	wb.metric("Mortgage Interest", s.TotalInterestPaid)
	wb.metric("Tax Savings", s.TotalTaxSavings)
	wb.metric("Investment Gains", s.TotalInvestmentGain)
	wb.metric("Final Net Worth (Buy)", s.FinalBuyNetWorth)
	wb.metric("Final Net Worth (Rent)", s.FinalRentNetWorth)
	wb.metric("Net Worth Difference", s.NetWorthDifference)

	wb.startSheet("Years", "Year",
		"Home Value", "Mortgage Balance", "Mortgage Payments", "Principal", "Interest", "Property Tax", "Home Insurance", "Maintenance", "HOA", "Tax Savings", "Buy Cost", "Equity", "Proceeds If Sold", "Buy Net Worth",
		"Rent", "Renters Insurance", "Rent Cost", "Investment Balance", "Investment Gain", "Rent Net Worth",
		"Difference")
	for _, y := range res.Years {
		b, r := y.Buy, y.Rent
		wb.write(y.Year,
			b.HomeValue, b.MortgageBalance, b.MortgagePayments, b.PrincipalPaid, b.InterestPaid, b.PropertyTax, b.Insurance, b.Maintenance, b.HOA, b.TaxSavings, b.TotalCost, b.Equity, b.NetProceedsIfSold, b.NetWorth,
			r.Rent, r.Insurance, r.TotalCost, r.InvestmentBalance, r.InvestmentGain, r.NetWorth,
			y.NetWorthDifference)
	}
	return wb.flush(w)
}
