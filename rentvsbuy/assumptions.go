package rentvsbuy

import (
	"github.com/etnz/finengine"
	"github.com/shopspring/decimal"
)

// Assumptions are the economic rates of a comparison, in percent per year.
type Assumptions struct {
	HomeAppreciationRate  decimal.Decimal `json:"homeAppreciationRate"`
	MaintenanceRate       decimal.Decimal `json:"maintenanceRate"` // of the home value
	PropertyTaxRate       decimal.Decimal `json:"propertyTaxRate"` // of the home value
	MarginalTaxRate       decimal.Decimal `json:"marginalTaxRate"`
	InvestmentReturnRate  decimal.Decimal `json:"investmentReturnRate"`
	RentIncreaseRate      decimal.Decimal `json:"rentIncreaseRate"`
	InflationRate         decimal.Decimal `json:"inflationRate"`
	SellingCostRate       decimal.Decimal `json:"sellingCostRate"` // of the sale price
	CapitalGainsTaxRate   decimal.Decimal `json:"capitalGainsTaxRate"`
	CapitalGainsExclusion finengine.Cents `json:"capitalGainsExclusionCents"`
}

// DefaultAssumptions returns the rates used when a comparison does not override them.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		HomeAppreciationRate:  decimal.NewFromInt(3),
		MaintenanceRate:       decimal.NewFromInt(1),
		PropertyTaxRate:       decimal.RequireFromString("1.2"),
		MarginalTaxRate:       decimal.NewFromInt(25),
		InvestmentReturnRate:  decimal.NewFromInt(7),
		RentIncreaseRate:      decimal.NewFromInt(3),
		InflationRate:         decimal.RequireFromString("2.5"),
		SellingCostRate:       decimal.NewFromInt(6),
		CapitalGainsTaxRate:   decimal.NewFromInt(15),
		CapitalGainsExclusion: finengine.C(25000000),
	}
}

// AssumptionOverrides replace the assumptions that are set.
type AssumptionOverrides struct {
	HomeAppreciationRate  *decimal.Decimal `json:"homeAppreciationRate,omitempty"`
	MaintenanceRate       *decimal.Decimal `json:"maintenanceRate,omitempty"`
	PropertyTaxRate       *decimal.Decimal `json:"propertyTaxRate,omitempty"`
	MarginalTaxRate       *decimal.Decimal `json:"marginalTaxRate,omitempty"`
	InvestmentReturnRate  *decimal.Decimal `json:"investmentReturnRate,omitempty"`
	RentIncreaseRate      *decimal.Decimal `json:"rentIncreaseRate,omitempty"`
	InflationRate         *decimal.Decimal `json:"inflationRate,omitempty"`
	SellingCostRate       *decimal.Decimal `json:"sellingCostRate,omitempty"`
	CapitalGainsTaxRate   *decimal.Decimal `json:"capitalGainsTaxRate,omitempty"`
	CapitalGainsExclusion *finengine.Cents `json:"capitalGainsExclusionCents,omitempty"`
}

// Merge returns a copy of a with the overrides that are set.
func (a Assumptions) Merge(o *AssumptionOverrides) Assumptions {
	if o == nil {
		return a
	}
	set := func(dst *decimal.Decimal, v *decimal.Decimal) {
		if v != nil {
			*dst = *v
		}
	}
	set(&a.HomeAppreciationRate, o.HomeAppreciationRate)
	set(&a.MaintenanceRate, o.MaintenanceRate)
	set(&a.PropertyTaxRate, o.PropertyTaxRate)
	set(&a.MarginalTaxRate, o.MarginalTaxRate)
	set(&a.InvestmentReturnRate, o.InvestmentReturnRate)
	set(&a.RentIncreaseRate, o.RentIncreaseRate)
	set(&a.InflationRate, o.InflationRate)
	set(&a.SellingCostRate, o.SellingCostRate)
	set(&a.CapitalGainsTaxRate, o.CapitalGainsTaxRate)
	if o.CapitalGainsExclusion != nil {
		a.CapitalGainsExclusion = *o.CapitalGainsExclusion
	}
	return a
}

// Validate rejects negative rates. Percentages of a value cannot exceed 100.
func (a Assumptions) Validate() error {
	for _, r := range []struct {
		name string
		v    decimal.Decimal
		max  bool
	}{
		{"home appreciation", a.HomeAppreciationRate, false},
		{"maintenance", a.MaintenanceRate, true},
		{"property tax", a.PropertyTaxRate, true},
		{"marginal tax", a.MarginalTaxRate, true},
		{"investment return", a.InvestmentReturnRate, false},
		{"rent increase", a.RentIncreaseRate, false},
		{"inflation", a.InflationRate, false},
		{"selling cost", a.SellingCostRate, true},
		{"capital gains tax", a.CapitalGainsTaxRate, true},
	} {
		if r.v.IsNegative() {
			return finengine.Invalidf("negative %s rate %s", r.name, r.v)
		}
		if r.max && r.v.GreaterThan(decimal.NewFromInt(100)) {
			return finengine.Invalidf("%s rate %s exceeds 100%%", r.name, r.v)
		}
	}
	if a.CapitalGainsExclusion.IsNegative() {
		return finengine.Invalidf("negative capital gains exclusion %v", a.CapitalGainsExclusion)
	}
	return nil
}
