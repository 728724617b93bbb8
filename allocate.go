package finengine

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Allocate splits c into n parts that sum exactly to c.
//
// Leftover cents go one by one to the earliest parts, so Allocate(100, 3) is [34 33 33].
func (c Cents) Allocate(n int) ([]Cents, error) {
	if n <= 0 {
		return nil, Invalidf("cannot allocate into %d parts", n)
	}
	parts, err := money.New(c.value, money.USD).Split(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	res := make([]Cents, len(parts))
	for i, p := range parts {
		res[i] = Cents{value: p.Amount()}
	}
	return res, nil
}

// AllocateByRatios splits c proportionally to ratios. The parts sum exactly to c.
//
// Each part is first truncated toward zero, then the leftover cents are handed out one
// by one to the earliest parts with a non-zero ratio. Ratios must be non negative and
// must not all be zero.
func (c Cents) AllocateByRatios(ratios ...decimal.Decimal) ([]Cents, error) {
	if len(ratios) == 0 {
		return nil, Invalidf("no ratio to allocate by")
	}
	total := decimal.Zero
	for i, r := range ratios {
		if r.IsNegative() {
			return nil, Invalidf("ratio #%d is negative: %s", i, r)
		}
		total = total.Add(r)
	}
	if total.IsZero() {
		return nil, Invalidf("ratios sum to zero")
	}

	res := make([]Cents, len(ratios))
	var allocated int64
	for i, r := range ratios {
		part := roundQuotient(c.Decimal().Mul(r), total, RoundDown)
		res[i] = Cents{value: part.IntPart()}
		allocated += res[i].value
	}

	remainder := c.value - allocated
	step := int64(1)
	if remainder < 0 {
		step = -1
	}
	for i := 0; remainder != 0; i = (i + 1) % len(ratios) {
		if ratios[i].IsZero() {
			continue
		}
		res[i].value += step
		remainder -= step
	}
	return res, nil
}
