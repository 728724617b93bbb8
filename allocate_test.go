package finengine

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func ints(cs []Cents) []int64 {
	res := make([]int64, len(cs))
	for i, c := range cs {
		res[i] = c.Int64()
	}
	return res
}

func TestAllocate(t *testing.T) {
	testCases := []struct {
		amount int64
		n      int
		want   []int64
	}{
		{100, 3, []int64{34, 33, 33}},
		{101, 3, []int64{34, 34, 33}},
		{-100, 3, []int64{-34, -33, -33}},
		{0, 2, []int64{0, 0}},
		{5, 1, []int64{5}},
	}
	for _, tc := range testCases {
		got, err := C(tc.amount).Allocate(tc.n)
		if err != nil {
			t.Fatalf("Allocate(%d, %d) error = %v", tc.amount, tc.n, err)
		}
		if !slices.Equal(ints(got), tc.want) {
			t.Errorf("Allocate(%d, %d) = %v, want %v", tc.amount, tc.n, ints(got), tc.want)
		}
		if sum, _ := Sum(got...); sum.Int64() != tc.amount {
			t.Errorf("Allocate(%d, %d) sums to %d", tc.amount, tc.n, sum.Int64())
		}
	}

	if _, err := C(100).Allocate(0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Allocate(0) error = %v, want ErrInvalidInput", err)
	}
}

func TestAllocateByRatios(t *testing.T) {
	d := decimal.NewFromInt
	testCases := []struct {
		name   string
		amount int64
		ratios []decimal.Decimal
		want   []int64
	}{
		{"even", 100, []decimal.Decimal{d(1), d(1), d(1)}, []int64{34, 33, 33}},
		{"weighted", 100, []decimal.Decimal{d(70), d(20), d(10)}, []int64{70, 20, 10}},
		{"remainder to earliest", 5, []decimal.Decimal{d(3), d(7)}, []int64{2, 3}},
		{"zero ratio skipped", 10, []decimal.Decimal{d(0), d(1), d(2)}, []int64{0, 4, 6}},
		{"negative amount", -5, []decimal.Decimal{d(1), d(1)}, []int64{-3, -2}},
		{"fractional ratios", 100, []decimal.Decimal{decimal.RequireFromString("0.5"), decimal.RequireFromString("0.25"), decimal.RequireFromString("0.25")}, []int64{50, 25, 25}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := C(tc.amount).AllocateByRatios(tc.ratios...)
			if err != nil {
				t.Fatalf("AllocateByRatios() error = %v", err)
			}
			if !slices.Equal(ints(got), tc.want) {
				t.Errorf("AllocateByRatios() = %v, want %v", ints(got), tc.want)
			}
		})
	}

	if _, err := C(10).AllocateByRatios(d(0), d(0)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero ratios error = %v, want ErrInvalidInput", err)
	}
	if _, err := C(10).AllocateByRatios(d(-1), d(2)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative ratio error = %v, want ErrInvalidInput", err)
	}
}

func TestCalc_KeepsFirstError(t *testing.T) {
	var c Calc
	a := c.Add(C(MaxCents), C(1))
	b := c.Add(C(1), C(2))
	if !errors.Is(c.Err(), ErrOverflow) {
		t.Fatalf("Err() = %v, want ErrOverflow", c.Err())
	}
	if !a.IsZero() || !b.IsZero() {
		t.Errorf("operations after a failure should return zero, got %d and %d", a.Int64(), b.Int64())
	}

	var ok Calc
	if got := ok.Sum(C(1), C(2), C(3)); got != C(6) || ok.Err() != nil {
		t.Errorf("Sum() = %d, %v", got.Int64(), ok.Err())
	}
}

func TestValidateStruct(t *testing.T) {
	type input struct {
		Amount Cents `json:"amount" validate:"gt=0"`
		Years  int   `json:"years" validate:"gte=1,lte=30"`
	}
	if err := ValidateStruct(input{Amount: C(1), Years: 5}); err != nil {
		t.Errorf("ValidateStruct() error = %v", err)
	}
	err := ValidateStruct(input{Amount: C(0), Years: 31})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ValidateStruct() error = %v, want ErrInvalidInput", err)
	}
}
