package finengine

import "github.com/shopspring/decimal"

// powPrecision is the number of decimal places kept by every step of PowInt.
const powPrecision = 24

var one = decimal.NewFromInt(1)

// PowInt returns base^n computed by squaring, each step rounded to a fixed precision.
//
// The fixed precision keeps long compounding (30 years, 360 months) fast and makes the
// result independent of the library default division precision.
func PowInt(base decimal.Decimal, n int) decimal.Decimal {
	if n < 0 {
		return one.DivRound(PowInt(base, -n), powPrecision)
	}
	result := one
	for b := base; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(b).Round(powPrecision)
		}
		b = b.Mul(b).Round(powPrecision)
	}
	return result
}

// GrowthFactor returns (1 + ratePercent/100)^periods.
func GrowthFactor(ratePercent decimal.Decimal, periods int) decimal.Decimal {
	return PowInt(one.Add(ratePercent.Div(hundred)), periods)
}

// MonthlyRate converts an annual percentage rate into a monthly fraction (5 -> 0.0041666...).
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.DivRound(decimal.NewFromInt(1200), powPrecision)
}
