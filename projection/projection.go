package projection

import (
	"fmt"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/amortization"
	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/household"
	"github.com/etnz/finengine/scenario"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Validate checks the projection bounds. Entities are validated once the scenario is
// applied.
func (in Input) Validate() error {
	if in.HorizonYears < MinHorizon || in.HorizonYears > MaxHorizon {
		return finengine.Invalidf("horizon must be within [%d, %d] years, got %d", MinHorizon, MaxHorizon, in.HorizonYears)
	}
	if in.StartDate.IsZero() {
		return finengine.Invalidf("projection start date is required")
	}
	return nil
}

// RunProjection projects the household described by in over its horizon.
//
// When in carries a scenario, it is applied to the entities first. Assets compound at
// their own annual rate. Liabilities follow their amortization schedule month by month.
// Recurring cash flows count for the months of the year their window overlaps, grown
// yearly at their own rate. A one-time item counts in the year containing its start
// date, or in year 1 when it has none.
func RunProjection(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	snap := household.Snapshot{Assets: in.Assets, Liabilities: in.Liabilities, CashFlows: in.CashFlows}
	res := Result{StartDate: in.StartDate, HorizonYears: in.HorizonYears}
	if in.Scenario != nil {
		var err error
		if snap, err = scenario.ApplyToSnapshot(*in.Scenario, snap); err != nil {
			return Result{}, err
		}
		res.ScenarioID = in.Scenario.ID
	}
	if err := snap.Validate(); err != nil {
		return Result{}, err
	}

	schedules := make([]amortization.Schedule, len(snap.Liabilities))
	for i, l := range snap.Liabilities {
		s, err := liabilitySchedule(l, in.StartDate)
		if err != nil {
			return Result{}, fmt.Errorf("liability %s: %w", l.ID, err)
		}
		schedules[i] = s
	}

	p := projector{start: in.StartDate, snap: snap, schedules: schedules}
	res.Snapshots = make([]YearSnapshot, 0, in.HorizonYears+1)
	for y := 0; y <= in.HorizonYears; y++ {
		ys := p.year(y)
		if err := p.c.Err(); err != nil {
			return Result{}, fmt.Errorf("year %d: %w", y, err)
		}
		res.Snapshots = append(res.Snapshots, ys)
	}
	res.Summary = p.summary(res.Snapshots)
	if err := p.c.Err(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// liabilitySchedule amortizes l from start. A paid off liability has an empty schedule.
func liabilitySchedule(l household.Liability, start date.Date) (amortization.Schedule, error) {
	if !l.Balance.IsPositive() {
		return amortization.Schedule{}, nil
	}
	in := amortization.Input{
		Principal:          l.Balance,
		AnnualInterestRate: l.AnnualInterestRate,
		TermMonths:         l.RemainingTermMonths,
		StartDate:          start,
	}
	if l.MonthlyPayment.IsPositive() {
		payment := l.MonthlyPayment
		in.MonthlyPayment = &payment
	}
	return amortization.GenerateSchedule(in)
}

type projector struct {
	c         finengine.Calc
	start     date.Date
	snap      household.Snapshot
	schedules []amortization.Schedule
}

// window returns the days of projection year y (y >= 1).
func (p *projector) window(y int) date.Range {
	return date.Range{From: p.start.AddYears(y - 1), To: p.start.AddYears(y).Add(-1)}
}

func (p *projector) year(y int) YearSnapshot {
	ys := YearSnapshot{Year: y, Date: p.start.AddYears(y)}

	ys.Assets = make([]AssetValue, len(p.snap.Assets))
	for i, a := range p.snap.Assets {
		v := a.CurrentValue
		if y > 0 && !a.AnnualGrowthRate.IsZero() {
			v = p.c.Mul(a.CurrentValue, finengine.GrowthFactor(a.AnnualGrowthRate, y), finengine.RoundHalfUp)
		}
		ys.Assets[i] = AssetValue{ID: a.ID, Name: a.Name, Value: v}
		ys.TotalAssets = p.c.Add(ys.TotalAssets, v)
	}

	ys.Liabilities = make([]LiabilityBalance, len(p.snap.Liabilities))
	for i, l := range p.snap.Liabilities {
		lb := p.liability(l, p.schedules[i], y)
		ys.Liabilities[i] = lb
		ys.TotalLiabilities = p.c.Add(ys.TotalLiabilities, lb.Balance)
		ys.DebtPayments = p.c.Add(ys.DebtPayments, lb.Payments)
		ys.PrincipalPaid = p.c.Add(ys.PrincipalPaid, lb.Principal)
		ys.InterestPaid = p.c.Add(ys.InterestPaid, lb.Interest)
	}

	ys.CashFlows = make([]CashFlowAmount, len(p.snap.CashFlows))
	for i, item := range p.snap.CashFlows {
		amount := p.cashFlow(item, y)
		ys.CashFlows[i] = CashFlowAmount{ID: item.ID, Name: item.Name, Type: item.Type, Amount: amount}
		if item.Type == household.Income {
			ys.Income = p.c.Add(ys.Income, amount)
		} else {
			ys.Expenses = p.c.Add(ys.Expenses, amount)
		}
	}

	ys.NetWorth = p.c.Sub(ys.TotalAssets, ys.TotalLiabilities)
	ys.NetCashFlow = p.c.Sub(p.c.Sub(ys.Income, ys.Expenses), ys.DebtPayments)
	return ys
}

// liability returns the state of l at the end of year y from its schedule: payments
// 12(y-1)+1 to 12y belong to year y.
func (p *projector) liability(l household.Liability, s amortization.Schedule, y int) LiabilityBalance {
	lb := LiabilityBalance{ID: l.ID, Name: l.Name, Balance: l.Balance}
	if y == 0 || len(s.Entries) == 0 {
		return lb
	}
	from, to := 12*(y-1), min(12*y, len(s.Entries))
	if from >= len(s.Entries) {
		lb.Balance = finengine.Cents{}
		return lb
	}
	for _, e := range s.Entries[from:to] {
		lb.Payments = p.c.Sum(lb.Payments, e.ScheduledPayment, e.ExtraPayment)
		lb.Principal = p.c.Sum(lb.Principal, e.Principal, e.ExtraPayment)
		lb.Interest = p.c.Add(lb.Interest, e.Interest)
	}
	lb.Balance = s.Entries[to-1].EndingBalance
	return lb
}

// cashFlow returns the amount of item in year y.
func (p *projector) cashFlow(item household.CashFlowItem, y int) finengine.Cents {
	if y == 0 {
		return finengine.Cents{}
	}
	w := p.window(y)
	if item.Frequency == household.OneTime {
		if item.StartDate == nil {
			if y == 1 {
				return item.Amount
			}
			return finengine.Cents{}
		}
		if w.Contains(*item.StartDate) {
			return item.Amount
		}
		return finengine.Cents{}
	}

	months := 0
	for m := 0; m < 12; m++ {
		from := w.From.AddMonths(m)
		if item.ActiveDuring(date.Range{From: from, To: w.From.AddMonths(m + 1).Add(-1)}) {
			months++
		}
	}
	if months == 0 {
		return finengine.Cents{}
	}
	annual := p.c.Mul(item.Amount, decimal.NewFromInt(item.Frequency.PerYear()), finengine.RoundHalfUp)
	factor := decimal.NewFromInt(int64(months))
	if !item.AnnualGrowthRate.IsZero() {
		factor = factor.Mul(finengine.GrowthFactor(item.AnnualGrowthRate, y-1))
	}
	return p.c.MulDiv(annual, factor, twelve, finengine.RoundHalfUp)
}

func (p *projector) summary(snaps []YearSnapshot) Summary {
	first, last := snaps[0], snaps[len(snaps)-1]
	s := Summary{StartingNetWorth: first.NetWorth, EndingNetWorth: last.NetWorth}
	s.NetWorthChange = p.c.Sub(last.NetWorth, first.NetWorth)
	s.NetWorthChangePercent = finengine.Share(s.NetWorthChange, first.NetWorth.Abs())
	for _, ys := range snaps[1:] {
		s.TotalIncome = p.c.Add(s.TotalIncome, ys.Income)
		s.TotalExpenses = p.c.Add(s.TotalExpenses, ys.Expenses)
		s.TotalDebtPaid = p.c.Add(s.TotalDebtPaid, ys.DebtPayments)
		s.TotalInterestPaid = p.c.Add(s.TotalInterestPaid, ys.InterestPaid)
	}
	return s
}
