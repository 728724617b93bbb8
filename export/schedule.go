package export

import (
	"io"

	"github.com/etnz/finengine/amortization"
)

// Schedule writes a loan schedule as a "Summary" and a "Payments" sheet.
func Schedule(w io.Writer, s amortization.Schedule) error {
	wb := newWorkbook()
	wb.startSheet("Summary", "Metric", "Value")
	wb.metric("Monthly Payment", s.MonthlyPayment)
	wb.metric("Number of Payments", s.NumberOfPayments())
	wb.metric("Total Principal", s.TotalPrincipal)
	wb.metric("Total Interest", s.TotalInterest)
	wb.metric("Total Extra Payments", s.TotalExtra)
	wb.metric("Total Paid", s.TotalPayments)
	wb.metric("Payoff Date", s.PayoffDate)

	wb.startSheet("Payments", "#", "Due", "Beginning Balance", "Payment", "Principal", "Interest", "Extra", "Ending Balance", "Cumulative Principal", "Cumulative Interest")
	for _, e := range s.Entries {
		wb.write(e.PaymentNumber, e.DueDate, e.BeginningBalance, e.ScheduledPayment, e.Principal, e.Interest, e.ExtraPayment, e.EndingBalance, e.CumulativePrincipal, e.CumulativeInterest)
	}
	return wb.flush(w)
}
