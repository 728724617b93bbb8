package amortization

import (
	"encoding/json"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/shopspring/decimal"
)

// Limits of a loan the engine accepts.
const (
	MaxTermMonths = 600
	MaxRate       = 100
)

// Input describes a fixed-rate loan.
type Input struct {
	Principal          finengine.Cents `json:"principalCents" validate:"gt=0"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate" validate:"gte=0,lte=100"` // percent
	TermMonths         int             `json:"termMonths" validate:"gte=1,lte=600"`
	StartDate          date.Date       `json:"startDate"`

	// MonthlyPayment replaces the payment derived from the PMT formula when set, for
	// loans with a contractual payment.
	MonthlyPayment *finengine.Cents `json:"monthlyPaymentCents,omitempty"`
}

// Validate checks in.
func (in Input) Validate() error {
	if err := finengine.ValidateStruct(in); err != nil {
		return err
	}
	if in.StartDate.IsZero() {
		return finengine.Invalidf("loan start date is required")
	}
	if in.MonthlyPayment != nil && !in.MonthlyPayment.IsPositive() {
		return finengine.Invalidf("monthly payment must be positive, got %v", *in.MonthlyPayment)
	}
	return nil
}

// Entry is one payment period of a schedule.
//
// EndingBalance = BeginningBalance - Principal - ExtraPayment.
type Entry struct {
	PaymentNumber       int             `json:"paymentNumber"`
	DueDate             date.Date       `json:"dueDate"`
	BeginningBalance    finengine.Cents `json:"beginningBalanceCents"`
	ScheduledPayment    finengine.Cents `json:"scheduledPaymentCents"`
	Principal           finengine.Cents `json:"principalCents"`
	Interest            finengine.Cents `json:"interestCents"`
	ExtraPayment        finengine.Cents `json:"extraPaymentCents"`
	EndingBalance       finengine.Cents `json:"endingBalanceCents"`
	CumulativePrincipal finengine.Cents `json:"cumulativePrincipalCents"` // extra payments included
	CumulativeInterest  finengine.Cents `json:"cumulativeInterestCents"`
}

// Schedule is a complete loan schedule.
type Schedule struct {
	Entries        []Entry         `json:"entries"`
	MonthlyPayment finengine.Cents `json:"monthlyPaymentCents"`
	TotalPayments  finengine.Cents `json:"totalPaymentsCents"`
	TotalPrincipal finengine.Cents `json:"totalPrincipalCents"`
	TotalInterest  finengine.Cents `json:"totalInterestCents"`
	TotalExtra     finengine.Cents `json:"totalExtraCents"`
	PayoffDate     date.Date       `json:"payoffDate"`
}

// NumberOfPayments returns the length of the schedule.
func (s Schedule) NumberOfPayments() int { return len(s.Entries) }

// ExtraFrequency is how often an extra payment repeats.
type ExtraFrequency string

const (
	ExtraOneTime ExtraFrequency = "one_time"
	ExtraMonthly ExtraFrequency = "monthly"
	ExtraYearly  ExtraFrequency = "yearly"
)

func (f ExtraFrequency) valid() bool {
	switch f {
	case ExtraOneTime, ExtraMonthly, ExtraYearly:
		return true
	}
	return false
}

func (f *ExtraFrequency) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return finengine.Invalidf("extra payment frequency: %v", err)
	}
	if s == "" {
		s = string(ExtraOneTime)
	}
	if !ExtraFrequency(s).valid() {
		return finengine.Invalidf("unknown extra payment frequency %q", s)
	}
	*f = ExtraFrequency(s)
	return nil
}

// ExtraPayment is an additional principal payment made with a regular payment.
//
// A one-time extra is paid with payment PaymentNumber only. Monthly and yearly extras
// repeat from PaymentNumber until EndPaymentNumber, or until payoff when it is zero.
type ExtraPayment struct {
	PaymentNumber    int             `json:"paymentNumber" validate:"gte=1"`
	Amount           finengine.Cents `json:"amountCents" validate:"gte=0"`
	Frequency        ExtraFrequency  `json:"frequency,omitempty"`
	EndPaymentNumber int             `json:"endPaymentNumber,omitempty" validate:"gte=0"`
}

// Validate checks e.
func (e ExtraPayment) Validate() error {
	if err := finengine.ValidateStruct(e); err != nil {
		return err
	}
	if e.Frequency != "" && !e.Frequency.valid() {
		return finengine.Invalidf("unknown extra payment frequency %q", e.Frequency)
	}
	if e.EndPaymentNumber != 0 && e.EndPaymentNumber < e.PaymentNumber {
		return finengine.Invalidf("extra payment ends at %d before it starts at %d", e.EndPaymentNumber, e.PaymentNumber)
	}
	return nil
}

// appliesTo reports whether e is paid with payment n.
func (e ExtraPayment) appliesTo(n int) bool {
	if n < e.PaymentNumber || (e.EndPaymentNumber != 0 && n > e.EndPaymentNumber) {
		return false
	}
	switch e.Frequency {
	case ExtraMonthly:
		return true
	case ExtraYearly:
		return (n-e.PaymentNumber)%12 == 0
	default:
		return n == e.PaymentNumber
	}
}

// EarlyPayoff compares a loan paid as scheduled with the same loan paid with extras.
type EarlyPayoff struct {
	OriginalPayments   int             `json:"originalPayments"`
	NewPayments        int             `json:"newPayments"`
	MonthsSaved        int             `json:"monthsSaved"`
	OriginalInterest   finengine.Cents `json:"originalInterestCents"`
	NewInterest        finengine.Cents `json:"newInterestCents"`
	InterestSaved      finengine.Cents `json:"interestSavedCents"`
	TotalExtra         finengine.Cents `json:"totalExtraCents"`
	IsPaidOffEarly     bool            `json:"isPaidOffEarly"`
	OriginalPayoffDate date.Date       `json:"originalPayoffDate"`
	NewPayoffDate      date.Date       `json:"newPayoffDate"`
}

// BalanceSummary is the state of a loan right after a given payment.
type BalanceSummary struct {
	PaymentNumber     int             `json:"paymentNumber"`
	Balance           finengine.Cents `json:"balanceCents"`
	PrincipalPaid     finengine.Cents `json:"principalPaidCents"`
	InterestPaid      finengine.Cents `json:"interestPaidCents"`
	RemainingPayments int             `json:"remainingPayments"`
	RemainingInterest finengine.Cents `json:"remainingInterestCents"`
}
