package household

import (
	"github.com/etnz/finengine"
	"github.com/shopspring/decimal"
)

// Liability is an amortizing debt.
//
// MonthlyPayment is the contractual payment; when zero, engines derive it from the
// balance, rate and remaining term with the standard payment formula.
type Liability struct {
	ID                  string          `json:"id" validate:"required"`
	Name                string          `json:"name"`
	Type                LiabilityType   `json:"type"`
	Balance             finengine.Cents `json:"balanceCents" validate:"gte=0"`
	AnnualInterestRate  decimal.Decimal `json:"interestRate"` // percent
	MonthlyPayment      finengine.Cents `json:"monthlyPaymentCents" validate:"gte=0"`
	RemainingTermMonths int             `json:"remainingTermMonths" validate:"gte=0,lte=600"`
	Tags                []string        `json:"tags,omitempty"`
}

// LiabilityFields lists, sorted, the fields a scenario may override on a Liability.
var LiabilityFields = []string{"balanceCents", "interestRate", "monthlyPaymentCents", "name", "remainingTermMonths", "type"}

func (l Liability) EntityID() string { return l.ID }
func (Liability) Target() Target     { return TargetLiability }

// Clone returns a deep copy of l.
func (l Liability) Clone() Liability {
	l.Tags = cloneStrings(l.Tags)
	return l
}

// Set assigns one whitelisted field.
func (l *Liability) Set(field string, value any) (err error) {
	switch field {
	case "balanceCents":
		l.Balance, err = toCents(field, value)
	case "interestRate":
		l.AnnualInterestRate, err = toDecimal(field, value)
	case "monthlyPaymentCents":
		l.MonthlyPayment, err = toCents(field, value)
	case "name":
		l.Name, err = toString(field, value)
	case "remainingTermMonths":
		l.RemainingTermMonths, err = toInt(field, value)
	case "type":
		var s string
		if s, err = toString(field, value); err == nil {
			if err = oneOf(LiabilityType(s), liabilityTypes); err == nil {
				l.Type = LiabilityType(s)
			}
		}
	default:
		return finengine.Invalidf("liability has no overridable field %q", field)
	}
	return err
}

// Validate checks l for use in a calculation.
func (l Liability) Validate() error {
	if err := finengine.ValidateStruct(l); err != nil {
		return err
	}
	if l.AnnualInterestRate.IsNegative() {
		return finengine.Invalidf("liability %s: negative interest rate %s", l.ID, l.AnnualInterestRate)
	}
	if l.Type != "" {
		if err := oneOf(l.Type, liabilityTypes); err != nil {
			return err
		}
	}
	if l.Balance.IsPositive() && l.RemainingTermMonths == 0 {
		return finengine.Invalidf("liability %s: a remaining term is required", l.ID)
	}
	return nil
}
