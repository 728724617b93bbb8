package household

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/finengine"
)

// Target names the kind of entity a scenario override applies to.
type Target string

const (
	TargetAsset        Target = "asset"
	TargetLiability    Target = "liability"
	TargetCashFlowItem Target = "cashFlowItem"
)

// Valid reports whether t is a known target type.
func (t Target) Valid() bool {
	switch t {
	case TargetAsset, TargetLiability, TargetCashFlowItem:
		return true
	}
	return false
}

// AssetType classifies assets. Liquid types count toward emergency funds.
type AssetType string

const (
	AssetCash       AssetType = "cash"
	AssetChecking   AssetType = "checking"
	AssetSavings    AssetType = "savings"
	AssetInvestment AssetType = "investment"
	AssetRetirement AssetType = "retirement"
	AssetRealEstate AssetType = "real_estate"
	AssetVehicle    AssetType = "vehicle"
	AssetOther      AssetType = "other"
)

var assetTypes = []AssetType{AssetCash, AssetChecking, AssetSavings, AssetInvestment, AssetRetirement, AssetRealEstate, AssetVehicle, AssetOther}

// Liquid reports whether the asset can be spent right away.
func (t AssetType) Liquid() bool {
	return t == AssetCash || t == AssetChecking || t == AssetSavings
}

// LiabilityType classifies liabilities.
type LiabilityType string

const (
	LiabilityMortgage     LiabilityType = "mortgage"
	LiabilityAutoLoan     LiabilityType = "auto_loan"
	LiabilityStudentLoan  LiabilityType = "student_loan"
	LiabilityCreditCard   LiabilityType = "credit_card"
	LiabilityPersonalLoan LiabilityType = "personal_loan"
	LiabilityOther        LiabilityType = "other"
)

var liabilityTypes = []LiabilityType{LiabilityMortgage, LiabilityAutoLoan, LiabilityStudentLoan, LiabilityCreditCard, LiabilityPersonalLoan, LiabilityOther}

// CashFlowType tells whether a cash flow item is money coming in or going out.
type CashFlowType string

const (
	Income  CashFlowType = "income"
	Expense CashFlowType = "expense"
)

// Frequency is how often a cash flow item occurs.
type Frequency string

const (
	OneTime   Frequency = "one_time"
	Weekly    Frequency = "weekly"
	Biweekly  Frequency = "biweekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annually  Frequency = "annually"
)

// PerYear returns how many times per year the item occurs. A one-time item counts once.
func (f Frequency) PerYear() int64 {
	switch f {
	case OneTime, Annually:
		return 1
	case Weekly:
		return 52
	case Biweekly:
		return 26
	case Monthly:
		return 12
	case Quarterly:
		return 4
	default:
		return 0
	}
}

func (f Frequency) valid() bool { return f.PerYear() > 0 }

// CategoryHousing is the cash flow category of rent and other housing costs.
const CategoryHousing = "housing"

func oneOf[T ~string](v T, values []T) error {
	for _, x := range values {
		if v == x {
			return nil
		}
	}
	names := make([]string, len(values))
	for i, x := range values {
		names[i] = string(x)
	}
	return finengine.Invalidf("unknown value %q, want one of %s", v, strings.Join(names, ", "))
}

func (t *AssetType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, t, assetTypes)
}

func (t *LiabilityType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, t, liabilityTypes)
}

func (t *CashFlowType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, t, []CashFlowType{Income, Expense})
}

func (f *Frequency) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, f, []Frequency{OneTime, Weekly, Biweekly, Monthly, Quarterly, Annually})
}

func unmarshalEnum[T ~string](b []byte, dst *T, values []T) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %v", finengine.ErrInvalidInput, err)
	}
	if err := oneOf(T(s), values); err != nil {
		return err
	}
	*dst = T(s)
	return nil
}

func invalidDuplicate(id string) error {
	return finengine.Invalidf("duplicate entity id %q", id)
}
