package insights

import (
	"fmt"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/amortization"
	"github.com/etnz/finengine/household"
)

// ComputeMetrics derives the monthly figures of in on its reference date.
//
// Income and expenses are the monthly amounts of the recurring cash flow items active on
// the reference date. Debt payments are the contractual payment of each outstanding
// liability, or its amortized payment when it has none. Housing cost is mortgage
// payments plus housing expenses. The debt-to-income ratio counts housing expenses too.
func ComputeMetrics(in Input) (Metrics, error) {
	if err := in.Validate(); err != nil {
		return Metrics{}, err
	}
	var c finengine.Calc
	var m Metrics
	var housingExpenses finengine.Cents

	for _, item := range in.CashFlows {
		if !item.ActiveOn(in.ReferenceDate) {
			continue
		}
		monthly, err := item.MonthlyAmount()
		if err != nil {
			return Metrics{}, fmt.Errorf("cash flow item %s: %w", item.ID, err)
		}
		if item.Type == household.Income {
			m.MonthlyIncome = c.Add(m.MonthlyIncome, monthly)
			continue
		}
		m.MonthlyExpenses = c.Add(m.MonthlyExpenses, monthly)
		if item.Category == household.CategoryHousing {
			housingExpenses = c.Add(housingExpenses, monthly)
		}
	}

	var mortgagePayments finengine.Cents
	for _, l := range in.Liabilities {
		m.TotalLiabilities = c.Add(m.TotalLiabilities, l.Balance)
		payment, err := monthlyPayment(l)
		if err != nil {
			return Metrics{}, fmt.Errorf("liability %s: %w", l.ID, err)
		}
		m.MonthlyDebtPayments = c.Add(m.MonthlyDebtPayments, payment)
		if l.Type == household.LiabilityMortgage {
			mortgagePayments = c.Add(mortgagePayments, payment)
		}
	}

	for _, a := range in.Assets {
		m.TotalAssets = c.Add(m.TotalAssets, a.CurrentValue)
		if a.Type.Liquid() {
			m.LiquidAssets = c.Add(m.LiquidAssets, a.CurrentValue)
		}
	}

	m.NetWorth = c.Sub(m.TotalAssets, m.TotalLiabilities)
	m.MonthlyHousingCost = c.Add(mortgagePayments, housingExpenses)
	m.MonthlyOutflow = c.Add(m.MonthlyExpenses, m.MonthlyDebtPayments)
	debtAndHousing := c.Add(m.MonthlyDebtPayments, housingExpenses)
	if err := c.Err(); err != nil {
		return Metrics{}, err
	}

	m.HousingRatio = finengine.Share(m.MonthlyHousingCost, m.MonthlyIncome)
	m.DebtToIncomeRatio = finengine.Share(debtAndHousing, m.MonthlyIncome)
	if m.MonthlyOutflow.IsPositive() {
		m.EmergencyFundMonths = m.LiquidAssets.Decimal().DivRound(m.MonthlyOutflow.Decimal(), 2)
	}
	return m, nil
}

// monthlyPayment returns what l costs every month. Paid off liabilities cost nothing.
func monthlyPayment(l household.Liability) (finengine.Cents, error) {
	if !l.Balance.IsPositive() {
		return finengine.Cents{}, nil
	}
	if l.MonthlyPayment.IsPositive() {
		return l.MonthlyPayment, nil
	}
	return amortization.CalculateMonthlyPayment(l.Balance, l.AnnualInterestRate, l.RemainingTermMonths)
}
