package scenario

import (
	"errors"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/household"
	"github.com/shopspring/decimal"
)

func home() household.Asset {
	return household.Asset{
		ID:               "home",
		Name:             "Home",
		Type:             household.AssetRealEstate,
		CurrentValue:     finengine.C(40000000),
		AnnualGrowthRate: decimal.NewFromInt(3),
		Tags:             []string{"primary"},
	}
}

func TestApplyOverrides(t *testing.T) {
	base := home()
	overrides := []EntityOverride{
		{EntityID: "home", Target: household.TargetAsset, Fields: []FieldOverride{
			{Field: "name", Value: "House"},
			{Field: "currentValueCents", Value: 45000000},
		}},
		// other entity
		{EntityID: "car", Target: household.TargetAsset, Fields: []FieldOverride{{Field: "name", Value: "Car"}}},
		// wrong target
		{EntityID: "home", Target: household.TargetLiability, Fields: []FieldOverride{{Field: "balanceCents", Value: 1}}},
		// later wins, unknown ignored
		{EntityID: "home", Target: household.TargetAsset, Fields: []FieldOverride{
			{Field: "currentValueCents", Value: 50000000},
			{Field: "color", Value: "blue"},
		}},
	}

	got, err := ApplyOverrides(base, "home", overrides)
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}
	if want := []string{"currentValueCents", "name"}; !slices.Equal(got.AppliedFields, want) {
		t.Errorf("AppliedFields = %v, want %v", got.AppliedFields, want)
	}
	if !got.IsModified {
		t.Error("IsModified = false, want true")
	}
	if got, want := got.Entity.CurrentValue, finengine.C(50000000); got != want {
		t.Errorf("CurrentValue = %v, want %v", got, want)
	}
	if got, want := got.Entity.Name, "House"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if !reflect.DeepEqual(base, home()) {
		t.Errorf("base was mutated: %+v", base)
	}
}

func TestApplyOverrides_Unmodified(t *testing.T) {
	got, err := ApplyOverrides(home(), "home", nil)
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}
	if got.IsModified || len(got.AppliedFields) != 0 {
		t.Errorf("ApplyOverrides(nil) = %+v, want unmodified", got)
	}
	if !reflect.DeepEqual(got.Entity, home()) {
		t.Errorf("Entity = %+v, want %+v", got.Entity, home())
	}
	got.Entity.Tags[0] = "changed"
	if home().Tags[0] != "primary" {
		t.Error("result shares tags with base")
	}
}

func TestApplyOverrides_Errors(t *testing.T) {
	if _, err := ApplyOverrides(home(), "", nil); !errors.Is(err, finengine.ErrInvalidInput) {
		t.Errorf("empty id error = %v, want ErrInvalidInput", err)
	}
	bad := []EntityOverride{{EntityID: "home", Target: household.TargetAsset, Fields: []FieldOverride{
		{Field: "currentValueCents", Value: true},
	}}}
	if _, err := ApplyOverrides(home(), "home", bad); !errors.Is(err, finengine.ErrInvalidInput) {
		t.Errorf("wrong value type error = %v, want ErrInvalidInput", err)
	}
}

func TestApplyOverrides_InvalidOverride(t *testing.T) {
	tests := []struct {
		name     string
		override EntityOverride
	}{
		{"empty entity id", EntityOverride{EntityID: "", Target: household.TargetAsset}},
		{"unknown target", EntityOverride{EntityID: "home", Target: "spaceship"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides := []EntityOverride{tt.override}
			if _, err := ApplyOverrides(home(), "home", overrides); !errors.Is(err, finengine.ErrInvalidInput) {
				t.Errorf("ApplyOverrides() error = %v, want ErrInvalidInput", err)
			}
			s := Scenario{ID: "bad", Overrides: overrides}
			if _, err := ApplyScenarioToEntities([]household.Asset{home()}, s); !errors.Is(err, finengine.ErrInvalidInput) {
				t.Errorf("ApplyScenarioToEntities() error = %v, want ErrInvalidInput", err)
			}
			if _, err := ApplyScenarioToEntities[household.Asset](nil, s); !errors.Is(err, finengine.ErrInvalidInput) {
				t.Errorf("ApplyScenarioToEntities(nil) error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestApplyOverrides_Deterministic(t *testing.T) {
	start := date.New(2025, time.January, 1)
	item := household.CashFlowItem{ID: "rent", Type: household.Expense, Amount: finengine.C(200000), Frequency: household.Monthly, StartDate: &start}
	newStart := date.New(2026, time.March, 1)
	overrides := []EntityOverride{{EntityID: "rent", Target: household.TargetCashFlowItem, Fields: []FieldOverride{
		{Field: "startDate", Value: &newStart},
		{Field: "amountCents", Value: 250000},
		{Field: "frequency", Value: "annually"},
	}}}

	first, err := ApplyOverrides(item, "rent", overrides)
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}
	for range 5 {
		again, err := ApplyOverrides(item, "rent", overrides)
		if err != nil {
			t.Fatalf("ApplyOverrides() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ApplyOverrides() is not deterministic: %+v != %+v", first, again)
		}
	}
	if want := []string{"amountCents", "frequency", "startDate"}; !slices.Equal(first.AppliedFields, want) {
		t.Errorf("AppliedFields = %v, want %v", first.AppliedFields, want)
	}

	// the result must not alias the override value
	newStart = date.New(2040, time.January, 1)
	if got, want := *first.Entity.StartDate, date.New(2026, time.March, 1); got != want {
		t.Errorf("StartDate = %v, want %v", got, want)
	}
	if got, want := *item.StartDate, start; got != want {
		t.Errorf("base StartDate = %v, want %v", got, want)
	}
}

func TestApplyToSnapshot(t *testing.T) {
	snap := household.Snapshot{
		Assets: []household.Asset{home()},
		Liabilities: []household.Liability{{
			ID: "mortgage", Type: household.LiabilityMortgage, Balance: finengine.C(30000000),
			AnnualInterestRate: decimal.NewFromInt(6), RemainingTermMonths: 360,
		}},
	}
	s := Scenario{ID: "refi", Name: "Refinance", Overrides: []EntityOverride{
		{EntityID: "mortgage", Target: household.TargetLiability, Fields: []FieldOverride{{Field: "interestRate", Value: 4.5}}},
	}}

	got, err := ApplyToSnapshot(s, snap)
	if err != nil {
		t.Fatalf("ApplyToSnapshot() error = %v", err)
	}
	if got, want := got.Liabilities[0].AnnualInterestRate, decimal.RequireFromString("4.5"); !got.Equal(want) {
		t.Errorf("AnnualInterestRate = %v, want %v", got, want)
	}
	if got, want := snap.Liabilities[0].AnnualInterestRate, decimal.NewFromInt(6); !got.Equal(want) {
		t.Errorf("original AnnualInterestRate = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(got.Assets, snap.Assets) {
		t.Errorf("Assets = %+v, want %+v", got.Assets, snap.Assets)
	}

	invalid := Scenario{Overrides: []EntityOverride{{EntityID: "x", Target: "house"}}}
	if _, err := ApplyToSnapshot(invalid, snap); !errors.Is(err, finengine.ErrInvalidInput) {
		t.Errorf("ApplyToSnapshot(invalid) error = %v, want ErrInvalidInput", err)
	}
}

func TestMergeScenarios(t *testing.T) {
	base := Scenario{ID: "base", Name: "Base", IsBaseline: true, Overrides: []EntityOverride{
		{EntityID: "home", Target: household.TargetAsset, Fields: []FieldOverride{
			{Field: "name", Value: "Home"},
			{Field: "annualGrowthRate", Value: 3},
		}},
		{EntityID: "salary", Target: household.TargetCashFlowItem, Fields: []FieldOverride{{Field: "amountCents", Value: 500000}}},
	}}
	overlay := Scenario{ID: "boom", Name: "Boom", Overrides: []EntityOverride{
		{EntityID: "car", Target: household.TargetAsset, Fields: []FieldOverride{{Field: "name", Value: "Car"}}},
		{EntityID: "home", Target: household.TargetAsset, Fields: []FieldOverride{
			{Field: "annualGrowthRate", Value: 8},
			{Field: "currentValueCents", Value: 1},
		}},
	}}

	got := MergeScenarios(base, overlay)
	if got.ID != "boom" || got.Name != "Boom" || got.IsBaseline {
		t.Errorf("identity = %q %q baseline=%v, want boom Boom false", got.ID, got.Name, got.IsBaseline)
	}
	want := []EntityOverride{
		{EntityID: "home", Target: household.TargetAsset, Fields: []FieldOverride{
			{Field: "name", Value: "Home"},
			{Field: "annualGrowthRate", Value: 8},
			{Field: "currentValueCents", Value: 1},
		}},
		{EntityID: "salary", Target: household.TargetCashFlowItem, Fields: []FieldOverride{{Field: "amountCents", Value: 500000}}},
		{EntityID: "car", Target: household.TargetAsset, Fields: []FieldOverride{{Field: "name", Value: "Car"}}},
	}
	if !reflect.DeepEqual(got.Overrides, want) {
		t.Errorf("Overrides = %+v, want %+v", got.Overrides, want)
	}
	if got := base.Overrides[0].Fields[1].Value; got != 3 {
		t.Errorf("base was mutated: annualGrowthRate = %v", got)
	}
	if len(base.Overrides[0].Fields) != 2 {
		t.Errorf("base was mutated: %d fields", len(base.Overrides[0].Fields))
	}
}
