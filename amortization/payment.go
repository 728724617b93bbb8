package amortization

import (
	"github.com/etnz/finengine"
	"github.com/shopspring/decimal"
)

var (
	twelveHundred = decimal.NewFromInt(1200)
	one           = decimal.NewFromInt(1)
)

// CalculateMonthlyPayment returns the fixed payment P·r·(1+r)^n / ((1+r)^n − 1) that
// repays principal over termMonths at the monthly rate r, rounded half-up.
//
// A zero rate falls back to principal / termMonths.
func CalculateMonthlyPayment(principal finengine.Cents, annualRate decimal.Decimal, termMonths int) (finengine.Cents, error) {
	if !principal.IsPositive() {
		return finengine.Cents{}, finengine.Invalidf("principal must be positive, got %v", principal)
	}
	if termMonths <= 0 || termMonths > MaxTermMonths {
		return finengine.Cents{}, finengine.Invalidf("term must be within [1, %d] months, got %d", MaxTermMonths, termMonths)
	}
	if annualRate.IsNegative() || annualRate.GreaterThan(decimal.NewFromInt(MaxRate)) {
		return finengine.Cents{}, finengine.Invalidf("rate must be within [0, %d]%%, got %s", MaxRate, annualRate)
	}
	if annualRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termMonths)), finengine.RoundHalfUp)
	}
	r := finengine.MonthlyRate(annualRate)
	f := finengine.PowInt(one.Add(r), termMonths)
	return principal.MulDiv(r.Mul(f), f.Sub(one), finengine.RoundHalfUp)
}

// CalculateMonthlyInterest returns one month of interest on balance: balance × rate / 1200,
// rounded half-up.
func CalculateMonthlyInterest(balance finengine.Cents, annualRate decimal.Decimal) (finengine.Cents, error) {
	if annualRate.IsNegative() {
		return finengine.Cents{}, finengine.Invalidf("negative rate %s", annualRate)
	}
	if annualRate.IsZero() {
		return finengine.Cents{}, nil
	}
	return balance.MulDiv(annualRate, twelveHundred, finengine.RoundHalfUp)
}
