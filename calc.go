package finengine

import "github.com/shopspring/decimal"

// Calc chains Cents arithmetic and keeps the first error.
//
// Once an operation failed, every following operation is a no-op returning zero, and Err
// reports the original failure. Its zero value is ready to use.
type Calc struct {
	err error
}

// Err returns the first error met, if any.
func (c *Calc) Err() error { return c.err }

// Fail records err unless an error was already recorded.
func (c *Calc) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Calc) keep(v Cents, err error) Cents {
	if c.err != nil {
		return Cents{}
	}
	if err != nil {
		c.err = err
		return Cents{}
	}
	return v
}

func (c *Calc) Add(a, b Cents) Cents { return c.keep(a.Add(b)) }
func (c *Calc) Sub(a, b Cents) Cents { return c.keep(a.Sub(b)) }

// Sum adds all values.
func (c *Calc) Sum(values ...Cents) Cents { return c.keep(Sum(values...)) }

func (c *Calc) Mul(a Cents, factor decimal.Decimal, mode RoundingMode) Cents {
	return c.keep(a.Mul(factor, mode))
}

func (c *Calc) Div(a Cents, divisor decimal.Decimal, mode RoundingMode) Cents {
	return c.keep(a.Div(divisor, mode))
}

func (c *Calc) Percentage(a Cents, pct decimal.Decimal, mode RoundingMode) Cents {
	return c.keep(a.Percentage(pct, mode))
}

// Decimal rounds a fractional amount of cents.
func (c *Calc) Decimal(d decimal.Decimal, mode RoundingMode) Cents {
	return c.keep(FromDecimal(d, mode))
}

func (c *Calc) MulDiv(a Cents, num, den decimal.Decimal, mode RoundingMode) Cents {
	return c.keep(a.MulDiv(num, den, mode))
}
