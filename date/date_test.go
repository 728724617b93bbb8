package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestFromTime(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	tests := []struct {
		t    time.Time
		want Date
	}{
		{time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC), New(2025, time.March, 10)},
		// the calendar day in the time's own zone
		{time.Date(2025, time.March, 10, 20, 0, 0, 0, time.UTC).In(tokyo), New(2025, time.March, 11)},
	}
	for _, tt := range tests {
		if got := FromTime(tt.t); got != tt.want {
			t.Errorf("FromTime(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		n    int
		want Date
	}{
		{"Plain", New(2025, time.January, 15), 1, New(2025, time.February, 15)},
		{"End of month clamped", New(2025, time.January, 31), 1, New(2025, time.February, 28)},
		{"Leap year clamped", New(2024, time.January, 31), 1, New(2024, time.February, 29)},
		{"Year rollover", New(2025, time.November, 30), 3, New(2026, time.February, 28)},
		{"Backward", New(2025, time.March, 31), -1, New(2025, time.February, 28)},
		{"Thirty years", New(2025, time.June, 1), 360, New(2055, time.June, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.AddMonths(tc.n); got != tc.want {
				t.Errorf("AddMonths(%d) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestAddYears_LeapDay(t *testing.T) {
	if got, want := New(2024, time.February, 29).AddYears(1), New(2025, time.February, 28); got != want {
		t.Errorf("AddYears() = %v, want %v", got, want)
	}
}

func TestMonthsUntil(t *testing.T) {
	start := New(2025, time.January, 15)
	testCases := []struct {
		to   Date
		want int
	}{
		{New(2025, time.January, 15), 0},
		{New(2025, time.February, 14), 0},
		{New(2025, time.February, 15), 1},
		{New(2026, time.January, 20), 12},
		{New(2024, time.December, 15), -1},
		{New(2024, time.December, 16), 0},
	}
	for _, tc := range testCases {
		if got := start.MonthsUntil(tc.to); got != tc.want {
			t.Errorf("MonthsUntil(%v) = %d, want %d", tc.to, got, tc.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	if got := New(2024, time.January, 1).DaysUntil(New(2025, time.January, 1)); got != 366 {
		t.Errorf("DaysUntil() = %d, want 366", got)
	}
}

func TestParse(t *testing.T) {
	if got, want := MustParse("2025-7-1"), New(2025, time.July, 1); got != want {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
	for _, in := range []string{"2025-02-30", "not a date", "2025/01/01", ""} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	var d Date
	if err := d.UnmarshalJSON([]byte(`"2025-03-04"`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if got, want := d, New(2025, time.March, 4); got != want {
		t.Errorf("UnmarshalJSON() = %v, want %v", got, want)
	}
	if err := d.UnmarshalJSON([]byte(`"2025-13-01"`)); err == nil {
		t.Error("UnmarshalJSON() should reject month 13")
	}
}
