package amortization

import (
	"fmt"

	"github.com/etnz/finengine"
)

// GenerateSchedule returns the full schedule of a loan repaid with its monthly payment.
//
// It fails with finengine.ErrNegativeAmortization when a payment before the last one does
// not cover the interest of its period.
func GenerateSchedule(in Input) (Schedule, error) {
	return GenerateScheduleWithExtras(in, nil)
}

// GenerateScheduleWithExtras is GenerateSchedule with extra principal payments.
//
// The extras paid with a period are capped at the balance left after its regular
// principal, and the schedule stops as soon as the balance reaches zero, so it may be
// shorter than the loan term.
func GenerateScheduleWithExtras(in Input, extras []ExtraPayment) (Schedule, error) {
	if err := in.Validate(); err != nil {
		return Schedule{}, err
	}
	for _, e := range extras {
		if err := e.Validate(); err != nil {
			return Schedule{}, err
		}
	}

	payment, err := monthlyPayment(in)
	if err != nil {
		return Schedule{}, err
	}

	var (
		c        finengine.Calc
		balance  = in.Principal
		cumPrin  finengine.Cents
		cumInt   finengine.Cents
		totalPay finengine.Cents
		totalExt finengine.Cents
	)
	entries := make([]Entry, 0, in.TermMonths)
	for n := 1; n <= in.TermMonths && balance.IsPositive(); n++ {
		interest := c.MulDiv(balance, in.AnnualInterestRate, twelveHundred, finengine.RoundHalfUp)

		scheduled := payment
		var principal finengine.Cents
		switch {
		case n == in.TermMonths:
			principal = balance
			scheduled = c.Add(principal, interest)
		case interest.GreaterThan(payment):
			return Schedule{}, fmt.Errorf("%w: payment %d of %v does not cover %v of interest on %v",
				finengine.ErrNegativeAmortization, n, payment, interest, balance)
		default:
			principal = c.Sub(payment, interest)
			if principal.GreaterThan(balance) {
				principal = balance
				scheduled = c.Add(principal, interest)
			}
		}

		extra := extraFor(&c, extras, n)
		left := c.Sub(balance, principal)
		if extra.GreaterThan(left) {
			extra = left
		}
		ending := c.Sub(left, extra)

		cumPrin = c.Sum(cumPrin, principal, extra)
		cumInt = c.Add(cumInt, interest)
		totalPay = c.Sum(totalPay, scheduled, extra)
		totalExt = c.Add(totalExt, extra)
		if err := c.Err(); err != nil {
			return Schedule{}, err
		}

		entries = append(entries, Entry{
			PaymentNumber:       n,
			DueDate:             in.StartDate.AddMonths(n),
			BeginningBalance:    balance,
			ScheduledPayment:    scheduled,
			Principal:           principal,
			Interest:            interest,
			ExtraPayment:        extra,
			EndingBalance:       ending,
			CumulativePrincipal: cumPrin,
			CumulativeInterest:  cumInt,
		})
		balance = ending
	}

	s := Schedule{
		Entries:        entries,
		MonthlyPayment: payment,
		TotalPayments:  totalPay,
		TotalPrincipal: cumPrin,
		TotalInterest:  cumInt,
		TotalExtra:     totalExt,
	}
	if len(entries) > 0 {
		s.PayoffDate = entries[len(entries)-1].DueDate
	}
	return s, nil
}

func monthlyPayment(in Input) (finengine.Cents, error) {
	if in.MonthlyPayment != nil {
		return *in.MonthlyPayment, nil
	}
	return CalculateMonthlyPayment(in.Principal, in.AnnualInterestRate, in.TermMonths)
}

// extraFor returns the sum of the extras paid with payment n.
func extraFor(c *finengine.Calc, extras []ExtraPayment, n int) finengine.Cents {
	var total finengine.Cents
	for _, e := range extras {
		if e.appliesTo(n) {
			total = c.Add(total, e.Amount)
		}
	}
	return total
}
