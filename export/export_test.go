package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/amortization"
	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/household"
	"github.com/etnz/finengine/projection"
	"github.com/etnz/finengine/rentvsbuy"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var start = date.New(2025, time.January, 1)

// open reads back a written workbook.
func open(t *testing.T, b *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(b)
	if err != nil {
		t.Fatalf("excelize.OpenReader() error = %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s) error = %v", sheet, axis, err)
	}
	return v
}

func rows(t *testing.T, f *excelize.File, sheet string) int {
	t.Helper()
	r, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", sheet, err)
	}
	return len(r)
}

func TestSchedule(t *testing.T) {
	s, err := amortization.GenerateSchedule(amortization.Input{
		Principal:          finengine.C(50000000),
		AnnualInterestRate: decimal.NewFromInt(5),
		TermMonths:         360,
		StartDate:          start,
	})
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}
	var b bytes.Buffer
	if err := Schedule(&b, s); err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	f := open(t, &b)

	if got, want := f.GetSheetList(), []string{"Summary", "Payments"}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("GetSheetList() = %q, want %q", got, want)
	}
	tests := []struct {
		sheet, axis, want string
	}{
		{"Summary", "A2", "Monthly Payment"},
		{"Summary", "B2", "2684.11"},
		{"Summary", "B3", "360"},
		{"Payments", "A1", "#"},
		{"Payments", "B2", "2025-02-01"},
		{"Payments", "C2", "500000"},
		{"Payments", "H361", "0"},
	}
	for _, tt := range tests {
		if got := cell(t, f, tt.sheet, tt.axis); got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.axis, got, tt.want)
		}
	}
	if got, want := rows(t, f, "Payments"), 361; got != want {
		t.Errorf("Payments rows = %d, want %d", got, want)
	}
}

func TestProjection(t *testing.T) {
	res, err := projection.RunProjection(projection.Input{
		StartDate:    start,
		HorizonYears: 5,
		Assets: []household.Asset{
			{ID: "brokerage", Type: household.AssetInvestment, CurrentValue: finengine.C(100000), AnnualGrowthRate: decimal.NewFromInt(10)},
		},
	})
	if err != nil {
		t.Fatalf("RunProjection() error = %v", err)
	}
	var b bytes.Buffer
	if err := Projection(&b, res); err != nil {
		t.Fatalf("Projection() error = %v", err)
	}
	f := open(t, &b)

	// no liabilities, no sheet
	if got, want := len(f.GetSheetList()), 3; got != want {
		t.Errorf("len(GetSheetList()) = %d, want %d", got, want)
	}
	if got, want := cell(t, f, "Assets", "B1"), "brokerage"; got != want {
		t.Errorf("Assets!B1 = %q, want %q", got, want)
	}
	if got, want := cell(t, f, "Assets", "B7"), "1610.51"; got != want {
		t.Errorf("Assets!B7 = %q, want %q", got, want)
	}
	if got, want := rows(t, f, "Years"), 7; got != want {
		t.Errorf("Years rows = %d, want %d", got, want)
	}
}

func TestRentVsBuy(t *testing.T) {
	res, err := rentvsbuy.CalculateRentVsBuy(rentvsbuy.Input{
		HomePrice:          finengine.C(40000000),
		DownPaymentPercent: decimal.NewFromInt(20),
		MortgageRate:       decimal.NewFromInt(6),
		MortgageTermYears:  30,
		MonthlyRent:        finengine.C(200000),
		ProjectionYears:    10,
	})
	if err != nil {
		t.Fatalf("CalculateRentVsBuy() error = %v", err)
	}
	var b bytes.Buffer
	if err := RentVsBuy(&b, res); err != nil {
		t.Fatalf("RentVsBuy() error = %v", err)
	}
	f := open(t, &b)

	if got, want := cell(t, f, "Summary", "B2"), string(res.Summary.Recommendation); got != want {
		t.Errorf("Summary!B2 = %q, want %q", got, want)
	}
	if got, want := cell(t, f, "Summary", "B4"), "80000"; got != want {
		t.Errorf("Summary!B4 = %q, want %q", got, want)
	}
	if got, want := rows(t, f, "Years"), 11; got != want {
		t.Errorf("Years rows = %d, want %d", got, want)
	}
	// Year, 14 buy columns, 6 rent columns, then the difference.
	last, err := excelize.CoordinatesToCellName(22, 1)
	if err != nil {
		t.Fatalf("CoordinatesToCellName() error = %v", err)
	}
	if got, want := cell(t, f, "Years", last), "Difference"; got != want {
		t.Errorf("Years!%s = %q, want %q", last, got, want)
	}
	if got, want := cell(t, f, "Years", "P1"), "Rent"; got != want {
		t.Errorf("Years!P1 = %q, want %q", got, want)
	}
}
