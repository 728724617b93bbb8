package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	d := New(2024, time.February, 14) // a Wednesday of a leap year
	tests := []struct {
		period   Period
		from, to Date
		id       string
	}{
		{Daily, d, d, "2024-02-14"},
		{Weekly, New(2024, time.February, 12), New(2024, time.February, 18), "2024-W07"},
		{Monthly, New(2024, time.February, 1), New(2024, time.February, 29), "2024-02"},
		{Quarterly, New(2024, time.January, 1), New(2024, time.March, 31), "2024-Q1"},
		{Yearly, New(2024, time.January, 1), New(2024, time.December, 31), "2024"},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			r := NewRange(d, tt.period)
			if got, want := r, (Range{From: tt.from, To: tt.to}); got != want {
				t.Errorf("NewRange() = %v, want %v", got, want)
			}
			if got, ok := r.Period(); !ok || got != tt.period {
				t.Errorf("Period() = %v, %v, want %v", got, ok, tt.period)
			}
			if got := r.Identifier(); got != tt.id {
				t.Errorf("Identifier() = %q, want %q", got, tt.id)
			}
			if !r.Contains(tt.from) || !r.Contains(tt.to) || r.Contains(tt.to.Add(1)) {
				t.Errorf("Contains() does not match the boundaries of %v", r)
			}
		})
	}
}

func TestRange_Identifier_Special(t *testing.T) {
	r := Range{From: New(2024, time.January, 15), To: New(2024, time.February, 14)}
	if _, ok := r.Period(); ok {
		t.Errorf("Period() of %v: want no standard period", r)
	}
	if got, want := r.Identifier(), "2024-01-15_2024-02-14"; got != want {
		t.Errorf("Identifier() = %q, want %q", got, want)
	}
}

func TestRange_Overlaps(t *testing.T) {
	q1 := NewRange(New(2024, time.February, 1), Quarterly)
	tests := []struct {
		name string
		r    Range
		want bool
	}{
		{"inside", NewRange(New(2024, time.February, 1), Monthly), true},
		{"last day", Range{From: New(2024, time.March, 31), To: New(2024, time.June, 30)}, true},
		{"first day", Range{From: New(2023, time.December, 1), To: New(2024, time.January, 1)}, true},
		{"after", NewRange(New(2024, time.April, 1), Quarterly), false},
		{"before", NewRange(New(2023, time.June, 1), Yearly), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q1.Overlaps(tt.r); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.r, got, tt.want)
			}
			if got := tt.r.Overlaps(q1); got != tt.want {
				t.Errorf("Overlaps() is not symmetric for %v", tt.r)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"day", Daily, false},
		{"Weekly", Weekly, false},
		{" month ", Monthly, false},
		{"quarter", Quarterly, false},
		{"annually", Yearly, false},
		{"fortnight", Daily, true},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPeriod_JSON(t *testing.T) {
	b, err := Quarterly.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if got, want := string(b), `"quarterly"`; got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
	var p Period
	if err := p.UnmarshalJSON([]byte(`"year"`)); err != nil || p != Yearly {
		t.Errorf("UnmarshalJSON(year) = %v, %v, want yearly", p, err)
	}
}
