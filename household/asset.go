package household

import (
	"github.com/etnz/finengine"
	"github.com/shopspring/decimal"
)

// Asset is something the household owns, valued today and growing at a constant
// annual rate.
type Asset struct {
	ID               string          `json:"id" validate:"required"`
	Name             string          `json:"name"`
	Type             AssetType       `json:"type"`
	CurrentValue     finengine.Cents `json:"currentValueCents"`
	AnnualGrowthRate decimal.Decimal `json:"annualGrowthRate"` // percent, may be negative (depreciation)
	Tags             []string        `json:"tags,omitempty"`
}

// AssetFields lists, sorted, the fields a scenario may override on an Asset.
var AssetFields = []string{"annualGrowthRate", "currentValueCents", "name", "type"}

func (a Asset) EntityID() string { return a.ID }
func (Asset) Target() Target     { return TargetAsset }

// Clone returns a deep copy of a.
func (a Asset) Clone() Asset {
	a.Tags = cloneStrings(a.Tags)
	return a
}

// Set assigns one whitelisted field.
func (a *Asset) Set(field string, value any) (err error) {
	switch field {
	case "annualGrowthRate":
		a.AnnualGrowthRate, err = toDecimal(field, value)
	case "currentValueCents":
		a.CurrentValue, err = toCents(field, value)
	case "name":
		a.Name, err = toString(field, value)
	case "type":
		var s string
		if s, err = toString(field, value); err == nil {
			if err = oneOf(AssetType(s), assetTypes); err == nil {
				a.Type = AssetType(s)
			}
		}
	default:
		return finengine.Invalidf("asset has no overridable field %q", field)
	}
	return err
}

// Validate checks a for use in a calculation.
func (a Asset) Validate() error {
	if err := finengine.ValidateStruct(a); err != nil {
		return err
	}
	if a.Type != "" {
		if err := oneOf(a.Type, assetTypes); err != nil {
			return err
		}
	}
	return nil
}
