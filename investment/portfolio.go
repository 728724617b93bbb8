package investment

import (
	"fmt"

	"github.com/etnz/finengine"
	"github.com/shopspring/decimal"
)

// HoldingValue returns shares × price, rounded half-up.
func HoldingValue(h Holding) (finengine.Cents, error) {
	if err := h.Validate(); err != nil {
		return finengine.Cents{}, err
	}
	return h.CurrentPrice.Mul(h.Shares, finengine.RoundHalfUp)
}

// UnrealizedGain returns the holding value minus its cost basis.
func UnrealizedGain(h Holding) (finengine.Cents, error) {
	v, err := HoldingValue(h)
	if err != nil {
		return finengine.Cents{}, err
	}
	return v.Sub(h.CostBasis)
}

// GainPercent returns the unrealized gain in percent of the cost basis, zero when the
// cost basis is zero.
func GainPercent(h Holding) (decimal.Decimal, error) {
	g, err := UnrealizedGain(h)
	if err != nil {
		return decimal.Zero, err
	}
	return finengine.Share(g, h.CostBasis), nil
}

// PortfolioValue sums the value of the holdings.
func PortfolioValue(holdings []Holding) (finengine.Cents, error) {
	var c finengine.Calc
	var total finengine.Cents
	for _, h := range holdings {
		v, err := HoldingValue(h)
		if err != nil {
			return finengine.Cents{}, fmt.Errorf("holding %s: %w", h.Symbol, err)
		}
		total = c.Add(total, v)
	}
	return total, c.Err()
}

// PortfolioCostBasis sums the cost basis of the holdings.
func PortfolioCostBasis(holdings []Holding) (finengine.Cents, error) {
	var c finengine.Calc
	var total finengine.Cents
	for _, h := range holdings {
		total = c.Add(total, h.CostBasis)
	}
	return total, c.Err()
}

// TransactionTotals sums transactions by type.
func TransactionTotals(txs []Transaction) (Totals, error) {
	var c finengine.Calc
	var t Totals
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return Totals{}, err
		}
		t.add(&c, tx)
	}
	t.NetContributions = c.Sub(t.Contributions, t.Withdrawals)
	return t, c.Err()
}

func (t *Totals) add(c *finengine.Calc, tx Transaction) {
	switch tx.Type {
	case Contribution:
		t.Contributions = c.Add(t.Contributions, tx.Amount)
	case Withdrawal:
		t.Withdrawals = c.Add(t.Withdrawals, tx.Amount)
	case Dividend:
		t.Dividends = c.Add(t.Dividends, tx.Amount)
	case Reinvestment:
		t.Reinvestments = c.Add(t.Reinvestments, tx.Amount)
	}
}

// AggregatePortfolio summarizes holdings, in input order, and transactions.
//
// Allocation is the share of each holding in the portfolio value. Total return is the
// unrealized gain plus dividends, in percent of net contributions; both percentages are
// zero when their base is not positive.
func AggregatePortfolio(holdings []Holding, txs []Transaction) (PortfolioSummary, error) {
	var c finengine.Calc
	s := PortfolioSummary{Holdings: make([]HoldingSummary, len(holdings))}
	for i, h := range holdings {
		v, err := HoldingValue(h)
		if err != nil {
			return PortfolioSummary{}, fmt.Errorf("holding %s: %w", h.Symbol, err)
		}
		gain := c.Sub(v, h.CostBasis)
		s.Holdings[i] = HoldingSummary{
			Symbol:         h.Symbol,
			Shares:         h.Shares,
			CurrentPrice:   h.CurrentPrice,
			Value:          v,
			CostBasis:      h.CostBasis,
			UnrealizedGain: gain,
			GainPercent:    finengine.Share(gain, h.CostBasis),
		}
	}
	var err error
	if s.TotalValue, err = PortfolioValue(holdings); err != nil {
		return PortfolioSummary{}, err
	}
	if s.TotalCostBasis, err = PortfolioCostBasis(holdings); err != nil {
		return PortfolioSummary{}, err
	}
	for i := range s.Holdings {
		s.Holdings[i].AllocationPercent = finengine.Share(s.Holdings[i].Value, s.TotalValue)
	}
	s.UnrealizedGain = c.Sub(s.TotalValue, s.TotalCostBasis)
	s.UnrealizedGainPercent = finengine.Share(s.UnrealizedGain, s.TotalCostBasis)

	totals, err := TransactionTotals(txs)
	if err != nil {
		return PortfolioSummary{}, err
	}
	s.Totals = totals
	s.TotalReturn = c.Add(s.UnrealizedGain, totals.Dividends)
	if totals.NetContributions.IsPositive() {
		s.TotalReturnPercent = finengine.Share(s.TotalReturn, totals.NetContributions)
	}
	return s, c.Err()
}
