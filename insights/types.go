// Package insights evaluates household metrics against configurable rules and reports
// prioritized findings.
package insights

import (
	"encoding/json"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/household"
	"github.com/shopspring/decimal"
)

// Severity ranks insights. Alerts come first.
type Severity int

const (
	Info Severity = iota
	Warning
	Alert
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Alert:
		return "alert"
	default:
		return "info"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// Category groups insights by topic.
type Category string

const (
	CategoryHousing  Category = "housing"
	CategoryDebt     Category = "debt"
	CategorySavings  Category = "savings"
	CategoryGoals    Category = "goals"
	CategoryInterest Category = "interest"
)

// RuleID identifies one of the rules.
type RuleID string

const (
	HousingCostRatio         RuleID = "housing-cost-ratio"
	DebtToIncome             RuleID = "debt-to-income"
	EmergencyFund            RuleID = "emergency-fund"
	GoalProgress             RuleID = "goal-progress"
	InterestSavingsPotential RuleID = "interest-savings"
)

// Rules lists every rule, in evaluation order.
var Rules = []RuleID{HousingCostRatio, DebtToIncome, EmergencyFund, GoalProgress, InterestSavingsPotential}

// Insight is one finding.
type Insight struct {
	ID       string                     `json:"id"`
	Rule     RuleID                     `json:"ruleId"`
	Severity Severity                   `json:"severity"`
	Category Category                   `json:"category"`
	Title    string                     `json:"title"`
	Message  string                     `json:"message"`
	Values   map[string]decimal.Decimal `json:"values"`
	Priority int                        `json:"priority"`
}

// Input is the household data insights are computed from.
type Input struct {
	ReferenceDate date.Date                `json:"referenceDate"`
	Assets        []household.Asset        `json:"assets"`
	Liabilities   []household.Liability    `json:"liabilities"`
	CashFlows     []household.CashFlowItem `json:"cashFlowItems"`
	Goals         []household.Goal         `json:"goals"`
}

// Validate checks in and its entities.
func (in Input) Validate() error {
	if in.ReferenceDate.IsZero() {
		return finengine.Invalidf("reference date is required")
	}
	snap := household.Snapshot{Assets: in.Assets, Liabilities: in.Liabilities, CashFlows: in.CashFlows}
	if err := snap.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(in.Goals))
	for _, g := range in.Goals {
		if err := g.Validate(); err != nil {
			return err
		}
		if seen[g.ID] {
			return finengine.Invalidf("duplicate goal id %q", g.ID)
		}
		seen[g.ID] = true
	}
	return nil
}

// Metrics are the monthly figures the rules evaluate.
type Metrics struct {
	MonthlyIncome       finengine.Cents `json:"monthlyIncomeCents"`
	MonthlyExpenses     finengine.Cents `json:"monthlyExpensesCents"`
	MonthlyHousingCost  finengine.Cents `json:"monthlyHousingCostCents"`
	MonthlyDebtPayments finengine.Cents `json:"monthlyDebtPaymentsCents"`
	MonthlyOutflow      finengine.Cents `json:"monthlyOutflowCents"` // expenses + debt payments
	LiquidAssets        finengine.Cents `json:"liquidAssetsCents"`
	TotalAssets         finengine.Cents `json:"totalAssetsCents"`
	TotalLiabilities    finengine.Cents `json:"totalLiabilitiesCents"`
	NetWorth            finengine.Cents `json:"netWorthCents"`

	// Ratios are percentages of monthly income, zero without income.
	HousingRatio      decimal.Decimal `json:"housingRatio"`
	DebtToIncomeRatio decimal.Decimal `json:"debtToIncomeRatio"`

	// EmergencyFundMonths is liquid assets over monthly outflow, zero without outflow.
	EmergencyFundMonths decimal.Decimal `json:"emergencyFundMonths"`
}

// Report is the result of Generate.
type Report struct {
	ReferenceDate date.Date `json:"referenceDate"`
	Metrics       Metrics   `json:"metrics"`
	Insights      []Insight `json:"insights"`
}
