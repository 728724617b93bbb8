package finengine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a fractional amount of cents is brought back to an integer.
type RoundingMode int

const (
	RoundHalfUp   RoundingMode = iota // half away from zero
	RoundUp                           // away from zero
	RoundDown                         // toward zero
	RoundCeiling                      // toward +infinity
	RoundFloor                        // toward -infinity
	RoundHalfDown                     // half toward zero
	RoundHalfEven                     // half to the even neighbour
)

func (m RoundingMode) String() string {
	switch m {
	case RoundHalfUp:
		return "half-up"
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	case RoundHalfDown:
		return "half-down"
	case RoundHalfEven:
		return "half-even"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// ParseRoundingMode parses the names returned by RoundingMode.String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half-up", "halfup":
		return RoundHalfUp, nil
	case "up":
		return RoundUp, nil
	case "down":
		return RoundDown, nil
	case "ceiling", "ceil":
		return RoundCeiling, nil
	case "floor":
		return RoundFloor, nil
	case "half-down", "halfdown":
		return RoundHalfDown, nil
	case "half-even", "halfeven", "bankers":
		return RoundHalfEven, nil
	default:
		return RoundHalfUp, Invalidf("unknown rounding mode %q", s)
	}
}

func (m RoundingMode) valid() bool { return m >= RoundHalfUp && m <= RoundHalfEven }

var two = decimal.NewFromInt(2)

// roundQuotient returns num/den rounded to an integer with the given mode.
//
// The decision is taken on the exact remainder, so ties are detected without any
// precision loss whatever the size of the operands.
func roundQuotient(num, den decimal.Decimal, mode RoundingMode) decimal.Decimal {
	q, r := num.QuoRem(den, 0) // q truncated toward zero, r has the sign of num
	if r.IsZero() {
		return q
	}
	sign := int64(num.Sign() * den.Sign())
	cmp := r.Abs().Mul(two).Cmp(den.Abs()) // compare the fraction with one half

	var away bool
	switch mode {
	case RoundUp:
		away = true
	case RoundDown:
		away = false
	case RoundCeiling:
		away = sign > 0
	case RoundFloor:
		away = sign < 0
	case RoundHalfUp:
		away = cmp >= 0
	case RoundHalfDown:
		away = cmp > 0
	case RoundHalfEven:
		away = cmp > 0 || (cmp == 0 && q.BigInt().Bit(0) == 1)
	}
	if away {
		q = q.Add(decimal.NewFromInt(sign))
	}
	return q
}

// Round rounds d to an integer with the given mode.
func Round(d decimal.Decimal, mode RoundingMode) decimal.Decimal {
	return roundQuotient(d, decimal.NewFromInt(1), mode)
}
