package finengine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MaxCents is the largest magnitude a Cents value can hold: 2^53-1, the largest
// integer every consumer of the engine results can represent exactly.
const MaxCents int64 = 1<<53 - 1

var (
	maxCentsDecimal = decimal.NewFromInt(MaxCents)
	hundred         = decimal.NewFromInt(100)
)

// Cents is an integer amount of cents.
//
// Its zero value is zero cents. Values can only be built through constructors that
// validate the input, and every arithmetic method is checked so that a result never
// leaves the [-MaxCents, MaxCents] range silently.
type Cents struct {
	value int64
}

// NewCents returns the Cents holding v.
//
// It fails with ErrInvalidCents if v is not an integer, not finite, not numeric (for
// strings) or outside the safe-integer range.
func NewCents[T int | int32 | int64 | float64 | decimal.Decimal | string](v T) (Cents, error) {
	switch x := any(v).(type) {
	case int:
		return fromInt64(int64(x))
	case int32:
		return fromInt64(int64(x))
	case int64:
		return fromInt64(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Cents{}, fmt.Errorf("%w: %v is not finite", ErrInvalidCents, x)
		}
		if x != math.Trunc(x) {
			return Cents{}, fmt.Errorf("%w: %v is not an integer", ErrInvalidCents, x)
		}
		if math.Abs(x) > float64(MaxCents) {
			return Cents{}, fmt.Errorf("%w: %v is out of range", ErrInvalidCents, x)
		}
		return Cents{value: int64(x)}, nil
	case decimal.Decimal:
		return fromDecimalExact(x)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return Cents{}, fmt.Errorf("%w: %q is not a number", ErrInvalidCents, x)
		}
		return fromDecimalExact(d)
	default:
		return Cents{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidCents, v)
	}
}

// C is like NewCents but panics on invalid input. It is meant for constants.
func C[T int | int32 | int64 | float64 | decimal.Decimal | string](v T) Cents {
	c, err := NewCents(v)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// FromMajor converts an amount expressed in currency units (dollars) into Cents.
func FromMajor(amount decimal.Decimal, mode RoundingMode) (Cents, error) {
	return FromDecimal(amount.Mul(hundred), mode)
}

// FromDecimal rounds a fractional amount of cents to Cents.
func FromDecimal(d decimal.Decimal, mode RoundingMode) (Cents, error) {
	if !mode.valid() {
		return Cents{}, Invalidf("unknown rounding mode %d", int(mode))
	}
	r := Round(d, mode)
	if r.Abs().GreaterThan(maxCentsDecimal) {
		return Cents{}, fmt.Errorf("%w: %s cents", ErrOverflow, r)
	}
	return Cents{value: r.IntPart()}, nil
}

func fromInt64(v int64) (Cents, error) {
	if v > MaxCents || v < -MaxCents {
		return Cents{}, fmt.Errorf("%w: %d is out of range", ErrInvalidCents, v)
	}
	return Cents{value: v}, nil
}

func fromDecimalExact(d decimal.Decimal) (Cents, error) {
	if !d.IsInteger() {
		return Cents{}, fmt.Errorf("%w: %s is not an integer", ErrInvalidCents, d)
	}
	if d.Abs().GreaterThan(maxCentsDecimal) {
		return Cents{}, fmt.Errorf("%w: %s is out of range", ErrInvalidCents, d)
	}
	return Cents{value: d.IntPart()}, nil
}

// checked returns v as Cents or ErrOverflow.
func checked(v int64) (Cents, error) {
	if v > MaxCents || v < -MaxCents {
		return Cents{}, fmt.Errorf("%w: %d cents", ErrOverflow, v)
	}
	return Cents{value: v}, nil
}

// Int64 returns the amount of cents.
func (c Cents) Int64() int64 { return c.value }

// Decimal returns the amount of cents as a decimal.
func (c Cents) Decimal() decimal.Decimal { return decimal.NewFromInt(c.value) }

// Major returns the amount in currency units (dollars).
func (c Cents) Major() decimal.Decimal { return decimal.New(c.value, -2) }

func (c Cents) IsZero() bool                    { return c.value == 0 }
func (c Cents) IsPositive() bool                { return c.value > 0 }
func (c Cents) IsNegative() bool                { return c.value < 0 }
func (c Cents) Equal(d Cents) bool              { return c.value == d.value }
func (c Cents) LessThan(d Cents) bool           { return c.value < d.value }
func (c Cents) LessThanOrEqual(d Cents) bool    { return c.value <= d.value }
func (c Cents) GreaterThan(d Cents) bool        { return c.value > d.value }
func (c Cents) GreaterThanOrEqual(d Cents) bool { return c.value >= d.value }

// Neg and Abs cannot overflow: the range is symmetric.
func (c Cents) Neg() Cents { return Cents{value: -c.value} }
func (c Cents) Abs() Cents {
	if c.value < 0 {
		return c.Neg()
	}
	return c
}

// Compare returns -1, 0 or +1 depending on whether c is less than, equal to or greater than d.
func (c Cents) Compare(d Cents) int {
	switch {
	case c.value < d.value:
		return -1
	case c.value > d.value:
		return 1
	default:
		return 0
	}
}

// Min returns the smallest of the values, or zero when there is none.
func Min(values ...Cents) Cents {
	if len(values) == 0 {
		return Cents{}
	}
	m := values[0]
	for _, v := range values[1:] {
		if v.value < m.value {
			m = v
		}
	}
	return m
}

// Max returns the largest of the values, or zero when there is none.
func Max(values ...Cents) Cents {
	if len(values) == 0 {
		return Cents{}
	}
	m := values[0]
	for _, v := range values[1:] {
		if v.value > m.value {
			m = v
		}
	}
	return m
}

// binary operators. Operands are within ±2^53 so int64 arithmetic is exact before the range check.

func (c Cents) Add(d Cents) (Cents, error) { return checked(c.value + d.value) }
func (c Cents) Sub(d Cents) (Cents, error) { return checked(c.value - d.value) }

// Sum adds all values.
func Sum(values ...Cents) (Cents, error) {
	var total Cents
	for _, v := range values {
		var err error
		if total, err = total.Add(v); err != nil {
			return Cents{}, err
		}
	}
	return total, nil
}

// Mul multiplies c by factor and rounds the result with mode.
func (c Cents) Mul(factor decimal.Decimal, mode RoundingMode) (Cents, error) {
	return FromDecimal(c.Decimal().Mul(factor), mode)
}

// Div divides c by divisor and rounds the result with mode.
func (c Cents) Div(divisor decimal.Decimal, mode RoundingMode) (Cents, error) {
	if divisor.IsZero() {
		return Cents{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, c)
	}
	return fromQuotient(c.Decimal(), divisor, mode)
}

// Percentage returns pct percent of c (pct=5 means 5%).
func (c Cents) Percentage(pct decimal.Decimal, mode RoundingMode) (Cents, error) {
	return fromQuotient(c.Decimal().Mul(pct), hundred, mode)
}

// MulDiv returns c*num/den rounded once with mode.
func (c Cents) MulDiv(num, den decimal.Decimal, mode RoundingMode) (Cents, error) {
	if den.IsZero() {
		return Cents{}, fmt.Errorf("%w: %s * %s / 0", ErrDivisionByZero, c, num)
	}
	return fromQuotient(c.Decimal().Mul(num), den, mode)
}

// fromQuotient rounds num/den once, on the exact quotient.
func fromQuotient(num, den decimal.Decimal, mode RoundingMode) (Cents, error) {
	if !mode.valid() {
		return Cents{}, Invalidf("unknown rounding mode %d", int(mode))
	}
	q := roundQuotient(num, den, mode)
	if q.Abs().GreaterThan(maxCentsDecimal) {
		return Cents{}, fmt.Errorf("%w: %s cents", ErrOverflow, q)
	}
	return Cents{value: q.IntPart()}, nil
}

// AddPercentage returns c increased by pct percent.
func (c Cents) AddPercentage(pct decimal.Decimal, mode RoundingMode) (Cents, error) {
	p, err := c.Percentage(pct, mode)
	if err != nil {
		return Cents{}, err
	}
	return c.Add(p)
}

// SubtractPercentage returns c decreased by pct percent.
func (c Cents) SubtractPercentage(pct decimal.Decimal, mode RoundingMode) (Cents, error) {
	p, err := c.Percentage(pct, mode)
	if err != nil {
		return Cents{}, err
	}
	return c.Sub(p)
}

// Share returns part as a percentage of whole, rounded half-up to two decimals.
// It is zero when whole is zero.
func Share(part, whole Cents) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Decimal().Mul(hundred).DivRound(whole.Decimal(), 2)
}

// Format returns the amount formatted in the given ISO 4217 currency, e.g. "$1,234.56".
// Unknown currency codes fall back to USD.
func (c Cents) Format(currency string) string {
	if money.GetCurrency(currency) == nil {
		currency = money.USD
	}
	return money.New(c.value, currency).Display()
}

// String returns the amount formatted in USD.
func (c Cents) String() string { return c.Format(money.USD) }

// SignedString returns the amount with an explicit sign, "-" for zero.
func (c Cents) SignedString() string {
	if c.IsZero() {
		return "-"
	}
	if c.IsPositive() {
		return "+" + c.String()
	}
	return c.String()
}

// MarshalJSON encodes Cents as a JSON integer.
func (c Cents) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, c.value, 10), nil
}

// UnmarshalJSON decodes a JSON number (or numeric string) and validates it.
// A JSON null leaves c unchanged.
func (c *Cents) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidCents, b)
		}
	}
	v, err := NewCents(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalYAML decodes a YAML number and validates it.
func (c *Cents) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := NewCents(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var _ json.Marshaler = Cents{}
var _ json.Unmarshaler = (*Cents)(nil)
