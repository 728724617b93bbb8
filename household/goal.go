package household

import (
	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
)

// Goal is a savings target to reach by a date.
type Goal struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name"`
	TargetAmount  finengine.Cents `json:"targetAmountCents" validate:"gt=0"`
	CurrentAmount finengine.Cents `json:"currentAmountCents" validate:"gte=0"`
	StartDate     date.Date       `json:"startDate"`
	TargetDate    date.Date       `json:"targetDate"`
}

// Validate checks g for use in a calculation.
func (g Goal) Validate() error {
	if err := finengine.ValidateStruct(g); err != nil {
		return err
	}
	if g.StartDate.IsZero() || g.TargetDate.IsZero() {
		return finengine.Invalidf("goal %s: start and target dates are required", g.ID)
	}
	if !g.TargetDate.After(g.StartDate) {
		return finengine.Invalidf("goal %s: target date %s must be after start date %s", g.ID, g.TargetDate, g.StartDate)
	}
	return nil
}
