package investment

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestHoldingValue(t *testing.T) {
	tests := []struct {
		name      string
		h         Holding
		value     int64
		gain      int64
		gainPct   string
		wantError bool
	}{
		{"whole shares", Holding{Symbol: "VTI", Shares: dec("10"), CostBasis: finengine.C(200000), CurrentPrice: finengine.C(25000)}, 250000, 50000, "25", false},
		{"fractional shares", Holding{Symbol: "AAPL", Shares: dec("2.5"), CostBasis: finengine.C(50000), CurrentPrice: finengine.C(18999)}, 47498, -2502, "-5", false},
		{"zero shares", Holding{Symbol: "X", Shares: decimal.Zero, CurrentPrice: finengine.C(100)}, 0, 0, "0", false},
		{"zero cost basis", Holding{Symbol: "GIFT", Shares: dec("1"), CurrentPrice: finengine.C(1000)}, 1000, 1000, "0", false},
		{"negative shares", Holding{Symbol: "X", Shares: dec("-1"), CurrentPrice: finengine.C(100)}, 0, 0, "0", true},
		{"no symbol", Holding{Shares: dec("1"), CurrentPrice: finengine.C(100)}, 0, 0, "0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := HoldingValue(tt.h)
			if tt.wantError {
				if !errors.Is(err, finengine.ErrInvalidInput) {
					t.Fatalf("HoldingValue() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HoldingValue() error = %v", err)
			}
			if v != finengine.C(tt.value) {
				t.Errorf("HoldingValue() = %d, want %d", v.Int64(), tt.value)
			}
			g, _ := UnrealizedGain(tt.h)
			if g != finengine.C(tt.gain) {
				t.Errorf("UnrealizedGain() = %d, want %d", g.Int64(), tt.gain)
			}
			pct, _ := GainPercent(tt.h)
			if !pct.Equal(dec(tt.gainPct)) {
				t.Errorf("GainPercent() = %v, want %v", pct, tt.gainPct)
			}
		})
	}
}

func TestPortfolioTotals(t *testing.T) {
	holdings := []Holding{
		{Symbol: "VTI", Shares: dec("10"), CostBasis: finengine.C(200000), CurrentPrice: finengine.C(25000)},
		{Symbol: "AAPL", Shares: dec("2.5"), CostBasis: finengine.C(50000), CurrentPrice: finengine.C(18999)},
	}
	tests := []struct {
		name     string
		holdings []Holding
		value    int64
		cost     int64
	}{
		{"empty", nil, 0, 0},
		{"one", holdings[:1], 250000, 200000},
		{"two", holdings, 297498, 250000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := PortfolioValue(tt.holdings)
			if err != nil {
				t.Fatalf("PortfolioValue() error = %v", err)
			}
			if got, want := v, finengine.C(tt.value); got != want {
				t.Errorf("PortfolioValue() = %d, want %d", got.Int64(), want.Int64())
			}
			cost, err := PortfolioCostBasis(tt.holdings)
			if err != nil {
				t.Fatalf("PortfolioCostBasis() error = %v", err)
			}
			if got, want := cost, finengine.C(tt.cost); got != want {
				t.Errorf("PortfolioCostBasis() = %d, want %d", got.Int64(), want.Int64())
			}
		})
	}

	bad := []Holding{{Symbol: "X", Shares: dec("-1"), CurrentPrice: finengine.C(100)}}
	if _, err := PortfolioValue(bad); !errors.Is(err, finengine.ErrInvalidInput) {
		t.Errorf("PortfolioValue(negative shares) error = %v, want ErrInvalidInput", err)
	}
}

func TestAggregatePortfolio(t *testing.T) {
	holdings := []Holding{
		{Symbol: "VTI", Shares: dec("10"), CostBasis: finengine.C(200000), CurrentPrice: finengine.C(22500)},
		{Symbol: "BND", Shares: dec("10"), CostBasis: finengine.C(80000), CurrentPrice: finengine.C(7500)},
	}
	txs := []Transaction{
		{Type: Contribution, Date: date.New(2024, time.January, 5), Amount: finengine.C(300000)},
		{Type: Withdrawal, Date: date.New(2024, time.June, 5), Amount: finengine.C(20000)},
		{Type: Dividend, Date: date.New(2024, time.March, 31), Amount: finengine.C(3000), Symbol: "VTI"},
		{Type: Reinvestment, Date: date.New(2024, time.March, 31), Amount: finengine.C(3000), Symbol: "VTI"},
	}
	s, err := AggregatePortfolio(holdings, txs)
	if err != nil {
		t.Fatalf("AggregatePortfolio() error = %v", err)
	}
	if got, want := s.TotalValue, finengine.C(300000); got != want {
		t.Errorf("TotalValue = %v, want %v", got, want)
	}
	if got, want := s.TotalCostBasis, finengine.C(280000); got != want {
		t.Errorf("TotalCostBasis = %v, want %v", got, want)
	}
	if got, want := s.UnrealizedGain, finengine.C(20000); got != want {
		t.Errorf("UnrealizedGain = %v, want %v", got, want)
	}
	if got, want := s.Holdings[0].AllocationPercent, dec("75"); !got.Equal(want) {
		t.Errorf("VTI allocation = %v, want %v", got, want)
	}
	if got, want := s.Holdings[1].AllocationPercent, dec("25"); !got.Equal(want) {
		t.Errorf("BND allocation = %v, want %v", got, want)
	}
	if got, want := s.Totals.NetContributions, finengine.C(280000); got != want {
		t.Errorf("NetContributions = %v, want %v", got, want)
	}
	if got, want := s.TotalReturn, finengine.C(23000); got != want {
		t.Errorf("TotalReturn = %v, want %v", got, want)
	}
	// 23000 / 280000
	if got, want := s.TotalReturnPercent, dec("8.21"); !got.Equal(want) {
		t.Errorf("TotalReturnPercent = %v, want %v", got, want)
	}
}

func TestAggregatePortfolio_Empty(t *testing.T) {
	s, err := AggregatePortfolio(nil, nil)
	if err != nil {
		t.Fatalf("AggregatePortfolio() error = %v", err)
	}
	if !s.TotalValue.IsZero() || !s.TotalReturnPercent.IsZero() || len(s.Holdings) != 0 {
		t.Errorf("AggregatePortfolio(nil) = %+v, want a zero summary", s)
	}

	zero := []Holding{{Symbol: "X", Shares: decimal.Zero, CurrentPrice: finengine.C(100)}}
	s, err = AggregatePortfolio(zero, nil)
	if err != nil {
		t.Fatalf("AggregatePortfolio() error = %v", err)
	}
	if !s.Holdings[0].AllocationPercent.IsZero() {
		t.Errorf("allocation = %v, want 0 for an empty portfolio value", s.Holdings[0].AllocationPercent)
	}
}

func TestAggregateByPeriod(t *testing.T) {
	txs := []Transaction{
		{Type: Contribution, Date: date.New(2024, time.May, 2), Amount: finengine.C(1000)},
		{Type: Dividend, Date: date.New(2023, time.December, 31), Amount: finengine.C(50)},
		{Type: Contribution, Date: date.New(2024, time.January, 15), Amount: finengine.C(2000)},
		{Type: Withdrawal, Date: date.New(2024, time.February, 1), Amount: finengine.C(500)},
		{Type: Dividend, Date: date.New(2024, time.March, 31), Amount: finengine.C(70)},
	}

	tests := []struct {
		period date.Period
		labels []string
	}{
		{date.Monthly, []string{"2023-12", "2024-01", "2024-02", "2024-03", "2024-05"}},
		{date.Quarterly, []string{"2023-Q4", "2024-Q1", "2024-Q2"}},
		{date.Yearly, []string{"2023", "2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			got, err := AggregateByPeriod(txs, tt.period)
			if err != nil {
				t.Fatalf("AggregateByPeriod() error = %v", err)
			}
			var labels []string
			for _, p := range got {
				labels = append(labels, p.Period)
			}
			if !slices.Equal(labels, tt.labels) {
				t.Errorf("periods = %v, want %v", labels, tt.labels)
			}
		})
	}

	q, _ := AggregateByPeriod(txs, date.Quarterly)
	if got, want := q[1].Totals.NetContributions, finengine.C(1500); got != want {
		t.Errorf("2024-Q1 net contributions = %v, want %v", got, want)
	}
	if got, want := q[1].Totals.Dividends, finengine.C(70); got != want {
		t.Errorf("2024-Q1 dividends = %v, want %v", got, want)
	}

	if _, err := AggregateByPeriod(txs, date.Weekly); !errors.Is(err, finengine.ErrInvalidInput) {
		t.Errorf("AggregateByPeriod(weekly) error = %v, want ErrInvalidInput", err)
	}
	undated := append(slices.Clone(txs), Transaction{Type: Dividend, Amount: finengine.C(1)})
	if _, err := AggregateByPeriod(undated, date.Monthly); !errors.Is(err, finengine.ErrInvalidInput) {
		t.Errorf("AggregateByPeriod(undated) error = %v, want ErrInvalidInput", err)
	}
}

func TestDividendsByPeriod(t *testing.T) {
	txs := []Transaction{
		{Type: Dividend, Date: date.New(2024, time.June, 30), Amount: finengine.C(80)},
		{Type: Contribution, Date: date.New(2024, time.July, 1), Amount: finengine.C(1000)},
		{Type: Dividend, Date: date.New(2024, time.March, 31), Amount: finengine.C(70)},
		{Type: Dividend, Date: date.New(2024, time.January, 31), Amount: finengine.C(5)},
	}
	got, err := DividendsByPeriod(txs, date.Quarterly)
	if err != nil {
		t.Fatalf("DividendsByPeriod() error = %v", err)
	}
	want := []PeriodAmount{{"2024-Q1", finengine.C(75)}, {"2024-Q2", finengine.C(80)}}
	if !slices.Equal(got, want) {
		t.Errorf("DividendsByPeriod() = %v, want %v", got, want)
	}
}

func TestBuildPortfolioTimeSeries(t *testing.T) {
	snaps := []ValueSnapshot{
		{Date: date.New(2024, time.March, 1), Value: finengine.C(11000)},
		{Date: date.New(2024, time.January, 1), Value: finengine.C(10000)},
		{Date: date.New(2024, time.February, 1), Value: finengine.C(12000)},
	}
	original := slices.Clone(snaps)

	got, err := BuildPortfolioTimeSeries(snaps)
	if err != nil {
		t.Fatalf("BuildPortfolioTimeSeries() error = %v", err)
	}
	if !slices.Equal(snaps, original) {
		t.Errorf("input was reordered: %v", snaps)
	}
	want := []TimeSeriesPoint{
		{Date: date.New(2024, time.January, 1), Value: finengine.C(10000), ChangePercent: decimal.Zero},
		{Date: date.New(2024, time.February, 1), Value: finengine.C(12000), Change: finengine.C(2000), ChangePercent: dec("20")},
		{Date: date.New(2024, time.March, 1), Value: finengine.C(11000), Change: finengine.C(-1000), ChangePercent: dec("-8.33")},
	}
	for i := range want {
		if got[i].Date != want[i].Date || got[i].Value != want[i].Value || got[i].Change != want[i].Change || !got[i].ChangePercent.Equal(want[i].ChangePercent) {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if _, err := BuildPortfolioTimeSeries([]ValueSnapshot{{Value: finengine.C(1)}}); !errors.Is(err, finengine.ErrInvalidInput) {
		t.Errorf("BuildPortfolioTimeSeries(undated) error = %v, want ErrInvalidInput", err)
	}
}
