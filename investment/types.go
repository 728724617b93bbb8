// Package investment aggregates holdings and transactions into portfolio summaries,
// period totals and value time series.
package investment

import (
	"encoding/json"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/shopspring/decimal"
)

// Holding is a position in one security.
type Holding struct {
	Symbol       string          `json:"symbol" validate:"required"`
	Shares       decimal.Decimal `json:"shares" validate:"gte=0"` // fractional shares allowed
	CostBasis    finengine.Cents `json:"costBasisCents" validate:"gte=0"`
	CurrentPrice finengine.Cents `json:"currentPriceCents" validate:"gte=0"` // per share
}

// Validate checks h.
func (h Holding) Validate() error { return finengine.ValidateStruct(h) }

// TransactionType is the kind of cash movement of a transaction.
type TransactionType string

const (
	Contribution TransactionType = "contribution"
	Withdrawal   TransactionType = "withdrawal"
	Dividend     TransactionType = "dividend"
	Reinvestment TransactionType = "reinvestment"
)

func (t TransactionType) valid() bool {
	switch t {
	case Contribution, Withdrawal, Dividend, Reinvestment:
		return true
	}
	return false
}

func (t *TransactionType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return finengine.Invalidf("transaction type: %v", err)
	}
	if !TransactionType(s).valid() {
		return finengine.Invalidf("unknown transaction type %q", s)
	}
	*t = TransactionType(s)
	return nil
}

// Transaction is a dated cash movement of an investment account.
type Transaction struct {
	ID     string          `json:"id,omitempty"`
	Type   TransactionType `json:"type"`
	Date   date.Date       `json:"date"`
	Amount finengine.Cents `json:"amountCents" validate:"gte=0"`
	Symbol string          `json:"symbol,omitempty"`
}

// Validate checks t.
func (t Transaction) Validate() error {
	if err := finengine.ValidateStruct(t); err != nil {
		return err
	}
	if !t.Type.valid() {
		return finengine.Invalidf("transaction %s: unknown type %q", t.ID, t.Type)
	}
	if t.Date.IsZero() {
		return finengine.Invalidf("transaction %s: date is required", t.ID)
	}
	return nil
}

// Totals are transaction amounts summed by type.
type Totals struct {
	Contributions    finengine.Cents `json:"contributionsCents"`
	Withdrawals      finengine.Cents `json:"withdrawalsCents"`
	Dividends        finengine.Cents `json:"dividendsCents"`
	Reinvestments    finengine.Cents `json:"reinvestmentsCents"`
	NetContributions finengine.Cents `json:"netContributionsCents"` // contributions - withdrawals
}

// HoldingSummary is one holding of a portfolio summary.
type HoldingSummary struct {
	Symbol            string          `json:"symbol"`
	Shares            decimal.Decimal `json:"shares"`
	CurrentPrice      finengine.Cents `json:"currentPriceCents"`
	Value             finengine.Cents `json:"valueCents"`
	CostBasis         finengine.Cents `json:"costBasisCents"`
	UnrealizedGain    finengine.Cents `json:"unrealizedGainCents"`
	GainPercent       decimal.Decimal `json:"gainPercent"`
	AllocationPercent decimal.Decimal `json:"allocationPercent"`
}

// PortfolioSummary aggregates holdings and transactions.
type PortfolioSummary struct {
	TotalValue            finengine.Cents  `json:"totalValueCents"`
	TotalCostBasis        finengine.Cents  `json:"totalCostBasisCents"`
	UnrealizedGain        finengine.Cents  `json:"unrealizedGainCents"`
	UnrealizedGainPercent decimal.Decimal  `json:"unrealizedGainPercent"`
	Totals                Totals           `json:"totals"`
	TotalReturn           finengine.Cents  `json:"totalReturnCents"` // unrealized gain + dividends
	TotalReturnPercent    decimal.Decimal  `json:"totalReturnPercent"`
	Holdings              []HoldingSummary `json:"holdings"`
}

// PeriodTotals are the totals of the transactions of one period.
type PeriodTotals struct {
	Period string     `json:"period"` // "2024-01", "2024-Q1" or "2024"
	Range  date.Range `json:"-"`
	Totals Totals     `json:"totals"`
}

// PeriodAmount is an amount of one period.
type PeriodAmount struct {
	Period string          `json:"period"`
	Amount finengine.Cents `json:"amountCents"`
}

// ValueSnapshot is the value of a portfolio on a day.
type ValueSnapshot struct {
	Date  date.Date       `json:"date"`
	Value finengine.Cents `json:"valueCents"`
}

// TimeSeriesPoint is a snapshot with its change since the previous one.
type TimeSeriesPoint struct {
	Date          date.Date       `json:"date"`
	Value         finengine.Cents `json:"valueCents"`
	Change        finengine.Cents `json:"changeCents"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}
