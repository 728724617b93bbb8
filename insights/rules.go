package insights

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/amortization"
	"github.com/etnz/finengine/household"
	"github.com/shopspring/decimal"
)

// evaluation is what every rule reads.
type evaluation struct {
	in      Input
	metrics Metrics
}

type ruleFunc func(e evaluation, cfg RuleConfig) ([]Insight, error)

var ruleFuncs = map[RuleID]ruleFunc{
	HousingCostRatio:         housingCostRatio,
	DebtToIncome:             debtToIncome,
	EmergencyFund:            emergencyFund,
	GoalProgress:             goalProgress,
	InterestSavingsPotential: interestSavings,
}

var hundred = decimal.NewFromInt(100)

// ratioSeverity returns the severity of a ratio above the info, warning or alert
// threshold. ok is false when the ratio is below all of them.
func ratioSeverity(ratio decimal.Decimal, cfg RuleConfig) (s Severity, ok bool) {
	switch {
	case ratio.GreaterThan(cfg.threshold(ThresholdAlert)):
		return Alert, true
	case ratio.GreaterThan(cfg.threshold(ThresholdWarning)):
		return Warning, true
	case ratio.GreaterThan(cfg.threshold(ThresholdInfo)):
		return Info, true
	}
	return Info, false
}

func housingCostRatio(e evaluation, cfg RuleConfig) ([]Insight, error) {
	m := e.metrics
	if !m.MonthlyIncome.IsPositive() || !m.MonthlyHousingCost.IsPositive() {
		return nil, nil
	}
	sev, ok := ratioSeverity(m.HousingRatio, cfg)
	if !ok {
		return nil, nil
	}
	return []Insight{{
		ID:       string(HousingCostRatio),
		Severity: sev,
		Category: CategoryHousing,
		Title:    "Housing costs are high",
		Message: fmt.Sprintf("Housing costs of %s take %s%% of a monthly income of %s, above the %s%% guideline.",
			m.MonthlyHousingCost, m.HousingRatio, m.MonthlyIncome, cfg.threshold(ThresholdInfo)),
		Values: map[string]decimal.Decimal{
			"ratio":                   m.HousingRatio,
			"monthlyHousingCostCents": m.MonthlyHousingCost.Decimal(),
			"monthlyIncomeCents":      m.MonthlyIncome.Decimal(),
		},
	}}, nil
}

func debtToIncome(e evaluation, cfg RuleConfig) ([]Insight, error) {
	m := e.metrics
	if !m.MonthlyIncome.IsPositive() || m.DebtToIncomeRatio.IsZero() {
		return nil, nil
	}
	sev, ok := ratioSeverity(m.DebtToIncomeRatio, cfg)
	if !ok {
		return nil, nil
	}
	return []Insight{{
		ID:       string(DebtToIncome),
		Severity: sev,
		Category: CategoryDebt,
		Title:    "Debt payments are high",
		Message: fmt.Sprintf("Debt and housing payments take %s%% of a monthly income of %s, above the %s%% guideline.",
			m.DebtToIncomeRatio, m.MonthlyIncome, cfg.threshold(ThresholdInfo)),
		Values: map[string]decimal.Decimal{
			"ratio":                    m.DebtToIncomeRatio,
			"monthlyDebtPaymentsCents": m.MonthlyDebtPayments.Decimal(),
			"monthlyIncomeCents":       m.MonthlyIncome.Decimal(),
		},
	}}, nil
}

func emergencyFund(e evaluation, cfg RuleConfig) ([]Insight, error) {
	m := e.metrics
	if !m.MonthlyOutflow.IsPositive() {
		return nil, nil
	}
	months := m.EmergencyFundMonths
	var sev Severity
	switch {
	case months.LessThan(cfg.threshold(ThresholdAlertMonths)):
		sev = Alert
	case months.LessThan(cfg.threshold(ThresholdWarningMonths)):
		sev = Warning
	default:
		return nil, nil
	}
	target := cfg.threshold(ThresholdWarningMonths)
	goal, err := m.MonthlyOutflow.Mul(target, finengine.RoundHalfUp)
	if err != nil {
		return nil, err
	}
	shortfall, err := goal.Sub(m.LiquidAssets)
	if err != nil {
		return nil, err
	}
	return []Insight{{
		ID:       string(EmergencyFund),
		Severity: sev,
		Category: CategorySavings,
		Title:    "Emergency fund is low",
		Message: fmt.Sprintf("Liquid savings of %s cover %s months of spending. Saving %s more would cover %s months.",
			m.LiquidAssets, months, shortfall, target),
		Values: map[string]decimal.Decimal{
			"months":              months,
			"liquidAssetsCents":   m.LiquidAssets.Decimal(),
			"monthlyOutflowCents": m.MonthlyOutflow.Decimal(),
			"shortfallCents":      shortfall.Decimal(),
		},
	}}, nil
}

// goalProgress flags goals whose progress is under lagPercent of the progress expected
// from the time elapsed. A lagging goal past its target date is an alert.
func goalProgress(e evaluation, cfg RuleConfig) ([]Insight, error) {
	ref := e.in.ReferenceDate
	lag := cfg.threshold(ThresholdLagPercent)
	goals := slices.SortedFunc(slices.Values(e.in.Goals), func(a, b household.Goal) int { return cmp.Compare(a.ID, b.ID) })

	var res []Insight
	for _, g := range goals {
		if ref.Before(g.StartDate) || !g.CurrentAmount.LessThan(g.TargetAmount) {
			continue
		}
		total := g.StartDate.DaysUntil(g.TargetDate)
		elapsed := min(g.StartDate.DaysUntil(ref), total)
		expected := decimal.NewFromInt(int64(elapsed)).Mul(hundred).DivRound(decimal.NewFromInt(int64(total)), 2)
		actual := finengine.Share(g.CurrentAmount, g.TargetAmount)
		if !actual.LessThan(expected.Mul(lag).Div(hundred)) {
			continue
		}
		sev := Warning
		if !ref.Before(g.TargetDate) {
			sev = Alert
		}
		// what is left is due at once when less than a month remains
		remaining, err := g.TargetAmount.Sub(g.CurrentAmount)
		if err != nil {
			return nil, fmt.Errorf("goal %s: %w", g.ID, err)
		}
		months := max(ref.MonthsUntil(g.TargetDate), 0)
		required := remaining
		if months > 1 {
			if required, err = remaining.Div(decimal.NewFromInt(int64(months)), finengine.RoundUp); err != nil {
				return nil, fmt.Errorf("goal %s: %w", g.ID, err)
			}
		}
		res = append(res, Insight{
			ID:       string(GoalProgress) + ":" + g.ID,
			Severity: sev,
			Category: CategoryGoals,
			Title:    fmt.Sprintf("%s is behind schedule", goalName(g)),
			Message: fmt.Sprintf("%s is %s%% funded (%s of %s) while %s%% of the time until %s has elapsed.",
				goalName(g), actual, g.CurrentAmount, g.TargetAmount, expected, g.TargetDate),
			Values: map[string]decimal.Decimal{
				"actualPercent":        actual,
				"expectedPercent":      expected,
				"currentAmountCents":   g.CurrentAmount.Decimal(),
				"targetAmountCents":    g.TargetAmount.Decimal(),
				"monthsRemaining":      decimal.NewFromInt(int64(months)),
				"requiredMonthlyCents": required.Decimal(),
			},
		})
	}
	return res, nil
}

func goalName(g household.Goal) string {
	if g.Name != "" {
		return g.Name
	}
	return "Goal " + g.ID
}

// highestInterestDebt returns the outstanding liability with the highest rate, the
// lowest id first among equal rates.
func highestInterestDebt(liabilities []household.Liability) (household.Liability, bool) {
	var best household.Liability
	found := false
	for _, l := range liabilities {
		if !l.Balance.IsPositive() || !l.AnnualInterestRate.IsPositive() || l.RemainingTermMonths <= 0 {
			continue
		}
		if !found {
			best, found = l, true
			continue
		}
		switch l.AnnualInterestRate.Cmp(best.AnnualInterestRate) {
		case 1:
			best = l
		case 0:
			if l.ID < best.ID {
				best = l
			}
		}
	}
	return best, found
}

// interestSavings reports the interest saved by paying each configured extra every
// month on the highest interest debt, when the best saving reaches the minimum.
func interestSavings(e evaluation, cfg RuleConfig) ([]Insight, error) {
	debt, ok := highestInterestDebt(e.in.Liabilities)
	if !ok || len(cfg.ExtraPayments) == 0 {
		return nil, nil
	}
	values := map[string]decimal.Decimal{
		"balanceCents": debt.Balance.Decimal(),
		"interestRate": debt.AnnualInterestRate,
	}
	var best, bestExtra finengine.Cents
	for _, extra := range cfg.ExtraPayments {
		saved, err := amortization.InterestSaved(debt.Balance, debt.AnnualInterestRate, debt.RemainingTermMonths, extra)
		if err != nil {
			return nil, fmt.Errorf("liability %s: %w", debt.ID, err)
		}
		values[fmt.Sprintf("savedWithExtra%dCents", extra.Int64())] = saved.Decimal()
		if saved.GreaterThan(best) {
			best, bestExtra = saved, extra
		}
	}
	if best.IsZero() || best.Decimal().LessThan(cfg.threshold(ThresholdMinimumSaving)) {
		return nil, nil
	}
	values["bestSavingsCents"] = best.Decimal()
	values["bestExtraCents"] = bestExtra.Decimal()
	name := debt.Name
	if name == "" {
		name = debt.ID
	}
	return []Insight{{
		ID:       string(InterestSavingsPotential),
		Severity: Info,
		Category: CategoryInterest,
		Title:    fmt.Sprintf("Pay down %s faster", name),
		Message: fmt.Sprintf("Paying %s more every month on %s at %s%% would save %s of interest.",
			bestExtra, name, debt.AnnualInterestRate, best),
		Values: values,
	}}, nil
}
