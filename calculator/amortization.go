// Package calculator holds the loan arithmetic behind every calculator:
// level-payment amortization, repayment time, loan comparison, extra
// repayments, interest-only periods, borrowing power and switching.
//
// All functions are pure and safe for concurrent use. Results are not
// rounded; rounding to cents happens at the presentation edge.
package calculator

import (
	"fmt"
	"math"

	"mortgage-calc/domain"
)

const (
	monthsPerYear = 12

	// MaxTermYears bounds every term the engine accepts.
	MaxTermYears = 100

	// periodTolerance absorbs float error when a solved period count lands
	// a hair above a whole number.
	periodTolerance = 1e-6

	// paymentTolerance is a small fraction of a cent.
	paymentTolerance = 1e-6

	// balanceTolerance below which a balance counts as repaid.
	balanceTolerance = 1e-4
)

func monthlyRate(annualPercent float64) float64 {
	return annualPercent / 100 / monthsPerYear
}

// growth returns (1+r)^n - 1 without cancellation for small r.
func growth(r, n float64) float64 {
	return math.Expm1(n * math.Log1p(r))
}

// MonthlyPayment returns the level payment that repays principal over n
// months at monthly rate r. A zero rate divides the principal evenly.
func MonthlyPayment(principal, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if r == 0 {
		return principal / float64(n)
	}
	// P*r / (1 - (1+r)^-n) stays finite for any rate and tends to P*r.
	return principal * r / -math.Expm1(-float64(n)*math.Log1p(r))
}

// RemainingBalance is the balance left after k level payments.
func RemainingBalance(principal, r, payment float64, k int) float64 {
	if k <= 0 {
		return principal
	}
	if r == 0 {
		return principal - payment*float64(k)
	}
	g := growth(r, float64(k))
	return principal*(1+g) - payment*g/r
}

// PresentValue is the principal that n payments at monthly rate r repay.
func PresentValue(payment, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if r == 0 {
		return payment * float64(n)
	}
	return payment * -math.Expm1(-float64(n)*math.Log1p(r)) / r
}

// FrequencyPayments converts a monthly payment into its fortnightly and
// weekly equivalents. The conversion scales the annual total (x12/26,
// x12/52) rather than re-amortizing on a day count.
func FrequencyPayments(monthly float64) map[domain.Frequency]float64 {
	return map[domain.Frequency]float64{
		domain.FrequencyMonthly:     monthly,
		domain.FrequencyFortnightly: monthly * monthsPerYear / 26,
		domain.FrequencyWeekly:      monthly * monthsPerYear / 52,
	}
}

// Amortize converts loan parameters into payment figures. Invalid input
// yields a zeroed result together with an error wrapping
// domain.ErrInvalidInput.
func Amortize(in domain.LoanInput) (domain.LoanResult, error) {
	if err := validateLoan(in); err != nil {
		return domain.LoanResult{}, err
	}

	n := in.TermYears * monthsPerYear
	monthly := MonthlyPayment(in.Amount, monthlyRate(in.InterestRate), n)
	payments := FrequencyPayments(monthly)
	freq := in.Frequency.OrDefault()
	total := monthly * float64(n)

	return domain.LoanResult{
		Frequency:      freq,
		Payment:        payments[freq],
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  total - in.Amount,
		Payments:       payments,
	}, nil
}

func validateLoan(in domain.LoanInput) error {
	if err := positive("amount", in.Amount); err != nil {
		return err
	}
	if err := nonNegative("interest rate", in.InterestRate); err != nil {
		return err
	}
	if err := termYears("term", in.TermYears); err != nil {
		return err
	}
	if !in.Frequency.Valid() {
		return fmt.Errorf("%w: unknown frequency %q", domain.ErrInvalidInput, in.Frequency)
	}
	return nil
}
