// Package rentvsbuy compares, year after year, buying a home with a mortgage against
// renting and investing the cash the purchase would have required.
package rentvsbuy

import (
	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/shopspring/decimal"
)

// Input describes the home, the rental alternative and the comparison horizon.
type Input struct {
	HomePrice               finengine.Cents      `json:"homePriceCents" validate:"gt=0"`
	DownPaymentPercent      decimal.Decimal      `json:"downPaymentPercent" validate:"gte=0,lte=100"`
	MortgageRate            decimal.Decimal      `json:"mortgageRate" validate:"gte=0,lte=100"`
	MortgageTermYears       int                  `json:"mortgageTermYears" validate:"gte=1,lte=50"`
	ClosingCosts            finengine.Cents      `json:"closingCostsCents" validate:"gte=0"`
	HomeInsuranceAnnual     finengine.Cents      `json:"homeInsuranceAnnualCents" validate:"gte=0"`
	HOAMonthly              finengine.Cents      `json:"hoaMonthlyCents" validate:"gte=0"`
	MonthlyRent             finengine.Cents      `json:"monthlyRentCents" validate:"gt=0"`
	RentersInsuranceMonthly finengine.Cents      `json:"rentersInsuranceMonthlyCents" validate:"gte=0"`
	ProjectionYears         int                  `json:"projectionYears" validate:"gte=1,lte=30"`
	StartDate               date.Date            `json:"startDate,omitempty"` // dates the mortgage payments, optional
	Assumptions             *AssumptionOverrides `json:"assumptions,omitempty"`
}

// BuyYear is the buying side of one year.
type BuyYear struct {
	HomeValue         finengine.Cents `json:"homeValueCents"`
	MortgageBalance   finengine.Cents `json:"mortgageBalanceCents"`
	MortgagePayments  finengine.Cents `json:"mortgagePaymentsCents"`
	PrincipalPaid     finengine.Cents `json:"principalPaidCents"`
	InterestPaid      finengine.Cents `json:"interestPaidCents"`
	PropertyTax       finengine.Cents `json:"propertyTaxCents"`
	Insurance         finengine.Cents `json:"insuranceCents"`
	Maintenance       finengine.Cents `json:"maintenanceCents"`
	HOA               finengine.Cents `json:"hoaCents"`
	TaxSavings        finengine.Cents `json:"taxSavingsCents"`
	TotalCost         finengine.Cents `json:"totalCostCents"` // out of pocket, net of tax savings
	Equity            finengine.Cents `json:"equityCents"`
	NetProceedsIfSold finengine.Cents `json:"netProceedsIfSoldCents"`
	NetWorth          finengine.Cents `json:"netWorthCents"`
}

// RentYear is the renting side of one year.
type RentYear struct {
	Rent              finengine.Cents `json:"rentCents"`
	Insurance         finengine.Cents `json:"insuranceCents"`
	TotalCost         finengine.Cents `json:"totalCostCents"`
	InvestmentBalance finengine.Cents `json:"investmentBalanceCents"`
	InvestmentGain    finengine.Cents `json:"investmentGainCents"` // gained during the year
	NetWorth          finengine.Cents `json:"netWorthCents"`
}

// Year compares both sides at the end of a year.
type Year struct {
	Year               int             `json:"year"`
	Buy                BuyYear         `json:"buy"`
	Rent               RentYear        `json:"rent"`
	NetWorthDifference finengine.Cents `json:"netWorthDifferenceCents"` // buy - rent
}

// Recommendation is the side with the better final net worth.
type Recommendation string

const (
	RecommendBuy     Recommendation = "buy"
	RecommendRent    Recommendation = "rent"
	RecommendNeutral Recommendation = "neutral"
)

// Summary sums up a comparison.
type Summary struct {
	DownPayment            finengine.Cents `json:"downPaymentCents"`
	LoanAmount             finengine.Cents `json:"loanAmountCents"`
	MonthlyMortgagePayment finengine.Cents `json:"monthlyMortgagePaymentCents"`
	UpfrontCost            finengine.Cents `json:"upfrontCostCents"` // down payment + closing costs
	BreakEvenYear          *int            `json:"breakEvenYear"`
	Recommendation         Recommendation  `json:"recommendation"`
	FinalBuyNetWorth       finengine.Cents `json:"finalBuyNetWorthCents"`
	FinalRentNetWorth      finengine.Cents `json:"finalRentNetWorthCents"`
	NetWorthDifference     finengine.Cents `json:"netWorthDifferenceCents"`
	TotalBuyCost           finengine.Cents `json:"totalBuyCostCents"` // upfront cost included
	TotalRentCost          finengine.Cents `json:"totalRentCostCents"`
	TotalInterestPaid      finengine.Cents `json:"totalInterestPaidCents"`
	TotalTaxSavings        finengine.Cents `json:"totalTaxSavingsCents"`
	TotalInvestmentGain    finengine.Cents `json:"totalInvestmentGainCents"`
}

// Result is a complete comparison.
type Result struct {
	Assumptions Assumptions `json:"assumptions"`
	Years       []Year      `json:"years"`
	Summary     Summary     `json:"summary"`
}
