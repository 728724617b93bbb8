package amortization

import (
	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/shopspring/decimal"
)

// AnalyzeEarlyPayoff compares the schedule of in with the schedule of in paid with extras.
func AnalyzeEarlyPayoff(in Input, extras []ExtraPayment) (EarlyPayoff, error) {
	original, err := GenerateSchedule(in)
	if err != nil {
		return EarlyPayoff{}, err
	}
	accelerated, err := GenerateScheduleWithExtras(in, extras)
	if err != nil {
		return EarlyPayoff{}, err
	}
	saved, err := original.TotalInterest.Sub(accelerated.TotalInterest)
	if err != nil {
		return EarlyPayoff{}, err
	}
	months := original.NumberOfPayments() - accelerated.NumberOfPayments()
	return EarlyPayoff{
		OriginalPayments:   original.NumberOfPayments(),
		NewPayments:        accelerated.NumberOfPayments(),
		MonthsSaved:        months,
		OriginalInterest:   original.TotalInterest,
		NewInterest:        accelerated.TotalInterest,
		InterestSaved:      saved,
		TotalExtra:         accelerated.TotalExtra,
		IsPaidOffEarly:     months > 0,
		OriginalPayoffDate: original.PayoffDate,
		NewPayoffDate:      accelerated.PayoffDate,
	}, nil
}

// BalanceAtPayment returns the state of the loan right after payment n.
func BalanceAtPayment(s Schedule, n int) (BalanceSummary, error) {
	if n <= 0 || n > len(s.Entries) {
		return BalanceSummary{}, finengine.Invalidf("payment number %d is outside [1, %d]", n, len(s.Entries))
	}
	e := s.Entries[n-1]
	var c finengine.Calc
	var remaining finengine.Cents
	for _, later := range s.Entries[n:] {
		remaining = c.Add(remaining, later.Interest)
	}
	if err := c.Err(); err != nil {
		return BalanceSummary{}, err
	}
	return BalanceSummary{
		PaymentNumber:     n,
		Balance:           e.EndingBalance,
		PrincipalPaid:     e.CumulativePrincipal,
		InterestPaid:      e.CumulativeInterest,
		RemainingPayments: len(s.Entries) - n,
		RemainingInterest: remaining,
	}, nil
}

// epoch dates the internal schedules of InterestSaved. Dates do not change amounts.
var epoch = date.New(2000, 1, 1)

// InterestSaved returns the interest saved by paying extra every month, starting with the
// first payment, on a loan of balance repaid over remainingMonths.
//
// The extra is capped at balance. A non-positive extra or balance saves nothing.
func InterestSaved(balance finengine.Cents, annualRate decimal.Decimal, remainingMonths int, extra finengine.Cents) (finengine.Cents, error) {
	if !extra.IsPositive() || !balance.IsPositive() {
		return finengine.Cents{}, nil
	}
	extra = finengine.Min(extra, balance)
	in := Input{Principal: balance, AnnualInterestRate: annualRate, TermMonths: remainingMonths, StartDate: epoch}
	p, err := AnalyzeEarlyPayoff(in, []ExtraPayment{{PaymentNumber: 1, Amount: extra, Frequency: ExtraMonthly}})
	if err != nil {
		return finengine.Cents{}, err
	}
	return p.InterestSaved, nil
}
