package rentvsbuy

import (
	"github.com/etnz/finengine"
	"github.com/etnz/finengine/amortization"
	"github.com/etnz/finengine/date"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// undated dates the mortgage schedule when the input has no start date.
var undated = date.New(2000, 1, 1)

// neutralBand is the share of the home price, in percent, under which the final net
// worth difference is a tie.
var neutralBand = decimal.NewFromInt(1)

// Validate checks the input without its assumptions.
func (in Input) Validate() error {
	return finengine.ValidateStruct(in)
}

// CalculateRentVsBuy compares buying and renting over in.ProjectionYears years.
//
// Buying: the home appreciates, the mortgage follows its amortization schedule, property
// tax and maintenance are charged on the home value at the start of each year, insurance
// and HOA grow with inflation, and mortgage interest is deducted at the marginal tax
// rate. Its net worth is the home equity.
//
// Renting: rent grows at its own rate, renters insurance with inflation, and the cash the
// purchase required upfront is invested at the investment return rate. Its net worth is
// the investment balance.
func CalculateRentVsBuy(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	a := DefaultAssumptions().Merge(in.Assumptions)
	if err := a.Validate(); err != nil {
		return Result{}, err
	}

	var c finengine.Calc
	down := c.Percentage(in.HomePrice, in.DownPaymentPercent, finengine.RoundHalfUp)
	loan := c.Sub(in.HomePrice, down)
	upfront := c.Add(down, in.ClosingCosts)
	if err := c.Err(); err != nil {
		return Result{}, err
	}

	var mortgage amortization.Schedule
	if loan.IsPositive() {
		start := in.StartDate
		if start.IsZero() {
			start = undated
		}
		var err error
		mortgage, err = amortization.GenerateSchedule(amortization.Input{
			Principal:          loan,
			AnnualInterestRate: in.MortgageRate,
			TermMonths:         12 * in.MortgageTermYears,
			StartDate:          start,
		})
		if err != nil {
			return Result{}, err
		}
	}

	cmp := comparison{in: in, a: a, mortgage: mortgage, loan: loan, upfront: upfront}
	res := Result{Assumptions: a, Years: make([]Year, 0, in.ProjectionYears)}
	for y := 1; y <= in.ProjectionYears; y++ {
		res.Years = append(res.Years, cmp.year(y))
	}
	if err := cmp.c.Err(); err != nil {
		return Result{}, err
	}

	res.Summary = cmp.summary(res.Years)
	res.Summary.DownPayment = down
	res.Summary.LoanAmount = loan
	res.Summary.MonthlyMortgagePayment = mortgage.MonthlyPayment
	res.Summary.UpfrontCost = upfront
	if err := cmp.c.Err(); err != nil {
		return Result{}, err
	}
	return res, nil
}

type comparison struct {
	c        finengine.Calc
	in       Input
	a        Assumptions
	mortgage amortization.Schedule
	loan     finengine.Cents
	upfront  finengine.Cents
}

func (p *comparison) year(y int) Year {
	b, r := p.buy(y), p.rent(y)
	return Year{Year: y, Buy: b, Rent: r, NetWorthDifference: p.c.Sub(b.NetWorth, r.NetWorth)}
}

// grown returns v compounded at rate for periods years, rounded half-up.
func (p *comparison) grown(v finengine.Cents, rate decimal.Decimal, periods int) finengine.Cents {
	if rate.IsZero() || periods == 0 {
		return v
	}
	return p.c.Mul(v, finengine.GrowthFactor(rate, periods), finengine.RoundHalfUp)
}

func (p *comparison) buy(y int) BuyYear {
	c, a := &p.c, p.a
	var b BuyYear
	b.HomeValue = p.grown(p.in.HomePrice, a.HomeAppreciationRate, y)
	valueAtStart := p.grown(p.in.HomePrice, a.HomeAppreciationRate, y-1)

	b.MortgageBalance = p.loan
	entries := p.mortgage.Entries
	if from := 12 * (y - 1); from < len(entries) {
		to := min(12*y, len(entries))
		for _, e := range entries[from:to] {
			b.MortgagePayments = c.Add(b.MortgagePayments, e.ScheduledPayment)
			b.PrincipalPaid = c.Add(b.PrincipalPaid, e.Principal)
			b.InterestPaid = c.Add(b.InterestPaid, e.Interest)
		}
		b.MortgageBalance = entries[to-1].EndingBalance
	} else if len(entries) > 0 {
		b.MortgageBalance = finengine.Cents{}
	}

	b.PropertyTax = c.Percentage(valueAtStart, a.PropertyTaxRate, finengine.RoundHalfUp)
	b.Maintenance = c.Percentage(valueAtStart, a.MaintenanceRate, finengine.RoundHalfUp)
	b.Insurance = p.grown(p.in.HomeInsuranceAnnual, a.InflationRate, y-1)
	b.HOA = p.grown(c.Mul(p.in.HOAMonthly, twelve, finengine.RoundHalfUp), a.InflationRate, y-1)
	b.TaxSavings = c.Percentage(b.InterestPaid, a.MarginalTaxRate, finengine.RoundHalfUp)
	b.TotalCost = c.Sub(c.Sum(b.MortgagePayments, b.PropertyTax, b.Insurance, b.Maintenance, b.HOA), b.TaxSavings)

	b.Equity = c.Sub(b.HomeValue, b.MortgageBalance)
	b.NetWorth = b.Equity

	sellingCost := c.Percentage(b.HomeValue, a.SellingCostRate, finengine.RoundHalfUp)
	gain := c.Sub(c.Sub(b.HomeValue, sellingCost), p.in.HomePrice)
	var capitalGainsTax finengine.Cents
	if taxable := c.Sub(gain, a.CapitalGainsExclusion); taxable.IsPositive() {
		capitalGainsTax = c.Percentage(taxable, a.CapitalGainsTaxRate, finengine.RoundHalfUp)
	}
	b.NetProceedsIfSold = c.Sub(c.Sub(b.Equity, sellingCost), capitalGainsTax)
	return b
}

func (p *comparison) rent(y int) RentYear {
	c, a := &p.c, p.a
	var r RentYear
	r.Rent = p.grown(c.Mul(p.in.MonthlyRent, twelve, finengine.RoundHalfUp), a.RentIncreaseRate, y-1)
	r.Insurance = p.grown(c.Mul(p.in.RentersInsuranceMonthly, twelve, finengine.RoundHalfUp), a.InflationRate, y-1)
	r.TotalCost = c.Add(r.Rent, r.Insurance)

	r.InvestmentBalance = p.grown(p.upfront, a.InvestmentReturnRate, y)
	r.InvestmentGain = c.Sub(r.InvestmentBalance, p.grown(p.upfront, a.InvestmentReturnRate, y-1))
	r.NetWorth = r.InvestmentBalance
	return r
}

func (p *comparison) summary(years []Year) Summary {
	c := &p.c
	s := Summary{TotalBuyCost: p.upfront}
	for _, y := range years {
		s.TotalBuyCost = c.Add(s.TotalBuyCost, y.Buy.TotalCost)
		s.TotalRentCost = c.Add(s.TotalRentCost, y.Rent.TotalCost)
		s.TotalInterestPaid = c.Add(s.TotalInterestPaid, y.Buy.InterestPaid)
		s.TotalTaxSavings = c.Add(s.TotalTaxSavings, y.Buy.TaxSavings)
		s.TotalInvestmentGain = c.Add(s.TotalInvestmentGain, y.Rent.InvestmentGain)
	}
	last := years[len(years)-1]
	s.FinalBuyNetWorth = last.Buy.NetWorth
	s.FinalRentNetWorth = last.Rent.NetWorth
	s.NetWorthDifference = last.NetWorthDifference
	s.BreakEvenYear = BreakEvenYear(years)

	band := c.Percentage(p.in.HomePrice, neutralBand, finengine.RoundHalfUp)
	switch {
	case !s.NetWorthDifference.Abs().GreaterThan(band):
		s.Recommendation = RecommendNeutral
	case s.NetWorthDifference.IsPositive():
		s.Recommendation = RecommendBuy
	default:
		s.Recommendation = RecommendRent
	}
	return s
}

// BreakEvenYear returns the first year from which buying stays strictly ahead of renting
// until the last year, or nil if buying is not ahead in the last year.
func BreakEvenYear(years []Year) *int {
	var found *int
	for i := len(years) - 1; i >= 0; i-- {
		if !years[i].Buy.NetWorth.GreaterThan(years[i].Rent.NetWorth) {
			break
		}
		y := years[i].Year
		found = &y
	}
	return found
}
