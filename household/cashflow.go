package household

import (
	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/shopspring/decimal"
)

// CashFlowItem is a recurring (or one-time) income or expense.
//
// StartDate and EndDate optionally bound the window during which the item occurs,
// both days included.
type CashFlowItem struct {
	ID               string          `json:"id" validate:"required"`
	Name             string          `json:"name"`
	Type             CashFlowType    `json:"type"`
	Category         string          `json:"category,omitempty"`
	Amount           finengine.Cents `json:"amountCents" validate:"gte=0"`
	Frequency        Frequency       `json:"frequency"`
	StartDate        *date.Date      `json:"startDate,omitempty"`
	EndDate          *date.Date      `json:"endDate,omitempty"`
	AnnualGrowthRate decimal.Decimal `json:"annualGrowthRate"` // percent
	Tags             []string        `json:"tags,omitempty"`
}

// CashFlowItemFields lists, sorted, the fields a scenario may override on a CashFlowItem.
var CashFlowItemFields = []string{"amountCents", "annualGrowthRate", "category", "endDate", "frequency", "name", "startDate", "type"}

func (c CashFlowItem) EntityID() string { return c.ID }
func (CashFlowItem) Target() Target     { return TargetCashFlowItem }

// Clone returns a deep copy of c.
func (c CashFlowItem) Clone() CashFlowItem {
	c.StartDate = cloneDate(c.StartDate)
	c.EndDate = cloneDate(c.EndDate)
	c.Tags = cloneStrings(c.Tags)
	return c
}

// Set assigns one whitelisted field.
func (c *CashFlowItem) Set(field string, value any) (err error) {
	switch field {
	case "amountCents":
		c.Amount, err = toCents(field, value)
	case "annualGrowthRate":
		c.AnnualGrowthRate, err = toDecimal(field, value)
	case "category":
		c.Category, err = toString(field, value)
	case "endDate":
		c.EndDate, err = toDate(field, value)
	case "frequency":
		var s string
		if s, err = toString(field, value); err == nil {
			if !Frequency(s).valid() {
				return finengine.Invalidf("field %s: unknown frequency %q", field, s)
			}
			c.Frequency = Frequency(s)
		}
	case "name":
		c.Name, err = toString(field, value)
	case "startDate":
		c.StartDate, err = toDate(field, value)
	case "type":
		var s string
		if s, err = toString(field, value); err == nil {
			if err = oneOf(CashFlowType(s), []CashFlowType{Income, Expense}); err == nil {
				c.Type = CashFlowType(s)
			}
		}
	default:
		return finengine.Invalidf("cash flow item has no overridable field %q", field)
	}
	return err
}

// Validate checks c for use in a calculation.
func (c CashFlowItem) Validate() error {
	if err := finengine.ValidateStruct(c); err != nil {
		return err
	}
	if err := oneOf(c.Type, []CashFlowType{Income, Expense}); err != nil {
		return err
	}
	if !c.Frequency.valid() {
		return finengine.Invalidf("cash flow item %s: unknown frequency %q", c.ID, c.Frequency)
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return finengine.Invalidf("cash flow item %s: ends on %s before it starts on %s", c.ID, c.EndDate, c.StartDate)
	}
	return nil
}

// ActiveOn reports whether day falls within the item window.
func (c CashFlowItem) ActiveOn(day date.Date) bool {
	if c.StartDate != nil && day.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && day.After(*c.EndDate) {
		return false
	}
	return true
}

// ActiveDuring reports whether the item window shares at least one day with r.
func (c CashFlowItem) ActiveDuring(r date.Range) bool {
	// an open bound is clamped to r
	window := r
	if c.StartDate != nil {
		window.From = *c.StartDate
	}
	if c.EndDate != nil {
		window.To = *c.EndDate
	}
	return window.Overlaps(r)
}

// AnnualAmount returns the amount of one full year of occurrences, ignoring the window
// and growth. A one-time item counts once.
func (c CashFlowItem) AnnualAmount() (finengine.Cents, error) {
	return c.Amount.Mul(decimal.NewFromInt(c.Frequency.PerYear()), finengine.RoundHalfUp)
}

// MonthlyAmount returns the annual amount spread over twelve months. One-time items
// have no monthly amount.
func (c CashFlowItem) MonthlyAmount() (finengine.Cents, error) {
	if c.Frequency == OneTime {
		return finengine.Cents{}, nil
	}
	annual, err := c.AnnualAmount()
	if err != nil {
		return finengine.Cents{}, err
	}
	return annual.Div(decimal.NewFromInt(12), finengine.RoundHalfUp)
}
