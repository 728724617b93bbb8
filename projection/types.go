// Package projection simulates the net worth of a household year after year.
//
// Year 0 is the starting position. Year y reports balances on StartDate plus y years and
// the flows of the twelve months ending on that date.
package projection

import (
	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/household"
	"github.com/etnz/finengine/scenario"
	"github.com/shopspring/decimal"
)

// Horizon bounds, in years.
const (
	MinHorizon = 5
	MaxHorizon = 30
)

// Input is everything a projection runs on.
type Input struct {
	StartDate    date.Date                `json:"startDate"`
	HorizonYears int                      `json:"horizonYears"`
	Assets       []household.Asset        `json:"assets"`
	Liabilities  []household.Liability    `json:"liabilities"`
	CashFlows    []household.CashFlowItem `json:"cashFlowItems"`
	Scenario     *scenario.Scenario       `json:"scenario,omitempty"`
}

// AssetValue is the value of one asset at the end of a year.
type AssetValue struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Value finengine.Cents `json:"valueCents"`
}

// LiabilityBalance is the balance of one liability at the end of a year and what was paid
// on it during that year.
type LiabilityBalance struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   finengine.Cents `json:"balanceCents"`
	Payments  finengine.Cents `json:"paymentsCents"`
	Principal finengine.Cents `json:"principalCents"`
	Interest  finengine.Cents `json:"interestCents"`
}

// CashFlowAmount is what one cash flow item brought in or cost during a year.
type CashFlowAmount struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	Type   household.CashFlowType `json:"type"`
	Amount finengine.Cents        `json:"amountCents"`
}

// YearSnapshot is the household position at the end of a projection year.
type YearSnapshot struct {
	Year             int                `json:"year"`
	Date             date.Date          `json:"date"`
	TotalAssets      finengine.Cents    `json:"totalAssetsCents"`
	TotalLiabilities finengine.Cents    `json:"totalLiabilitiesCents"`
	NetWorth         finengine.Cents    `json:"netWorthCents"`
	Income           finengine.Cents    `json:"incomeCents"`
	Expenses         finengine.Cents    `json:"expensesCents"`
	DebtPayments     finengine.Cents    `json:"debtPaymentsCents"`
	PrincipalPaid    finengine.Cents    `json:"principalPaidCents"`
	InterestPaid     finengine.Cents    `json:"interestPaidCents"`
	NetCashFlow      finengine.Cents    `json:"netCashFlowCents"` // income - expenses - debt payments
	Assets           []AssetValue       `json:"assets"`
	Liabilities      []LiabilityBalance `json:"liabilities"`
	CashFlows        []CashFlowAmount   `json:"cashFlows"`
}

// Summary sums up a projection.
type Summary struct {
	StartingNetWorth      finengine.Cents `json:"startingNetWorthCents"`
	EndingNetWorth        finengine.Cents `json:"endingNetWorthCents"`
	NetWorthChange        finengine.Cents `json:"netWorthChangeCents"`
	NetWorthChangePercent decimal.Decimal `json:"netWorthChangePercent"` // zero when starting net worth is zero
	TotalIncome           finengine.Cents `json:"totalIncomeCents"`
	TotalExpenses         finengine.Cents `json:"totalExpensesCents"`
	TotalDebtPaid         finengine.Cents `json:"totalDebtPaidCents"`
	TotalInterestPaid     finengine.Cents `json:"totalInterestPaidCents"`
}

// Result is a complete projection.
type Result struct {
	ScenarioID   string         `json:"scenarioId,omitempty"`
	StartDate    date.Date      `json:"startDate"`
	HorizonYears int            `json:"horizonYears"`
	Snapshots    []YearSnapshot `json:"snapshots"` // HorizonYears+1 snapshots, year 0 first
	Summary      Summary        `json:"summary"`
}
