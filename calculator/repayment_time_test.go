package calculator

import (
	"errors"
	"testing"

	"mortgage-calc/domain"
)

func TestSolveRepaymentTime_RoundTrip(t *testing.T) {
	cases := []struct {
		amount float64
		rate   float64
		years  int
	}{
		{500000, 5.5, 25},
		{10000, 12, 2},
		{750000, 0, 30},
		{123456.78, 7.25, 17},
		{2000000, 15, 30},
		{80000, 0.5, 1},
	}

	for _, tc := range cases {
		loan, err := Amortize(domain.LoanInput{Amount: tc.amount, InterestRate: tc.rate, TermYears: tc.years})
		if err != nil {
			t.Fatalf("amortize: %v", err)
		}

		result, err := SolveRepaymentTime(domain.RepaymentTimeInput{
			Amount:         tc.amount,
			InterestRate:   tc.rate,
			MonthlyPayment: loan.MonthlyPayment,
		})
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", tc, err)
		}
		if result.Months != tc.years*12 {
			t.Errorf("%+v: expected %d months, got %d", tc, tc.years*12, result.Months)
		}
		if result.Years != tc.years || result.RemainingMonths != 0 {
			t.Errorf("%+v: expected %d years 0 months, got %d years %d months",
				tc, tc.years, result.Years, result.RemainingMonths)
		}
		if !approx(result.TotalInterest, loan.TotalInterest, 0.01) {
			t.Errorf("%+v: expected interest %.2f, got %.2f", tc, loan.TotalInterest, result.TotalInterest)
		}
	}
}

func TestSolveRepaymentTime_PartialFinalPayment(t *testing.T) {
	result, err := SolveRepaymentTime(domain.RepaymentTimeInput{
		Amount:         500000,
		InterestRate:   4.5,
		MonthlyPayment: 3000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Months != 263 {
		t.Errorf("expected 263 months, got %d", result.Months)
	}
	if result.Years != 21 || result.RemainingMonths != 11 {
		t.Errorf("expected 21 years 11 months, got %d years %d months", result.Years, result.RemainingMonths)
	}
	if result.FinalPayment <= 0 || result.FinalPayment >= 3000 {
		t.Errorf("expected a partial final payment, got %.2f", result.FinalPayment)
	}
	if !approx(result.TotalPayment-result.TotalInterest, 500000, 1e-6) {
		t.Errorf("totals do not reconcile to principal")
	}
}

func TestSolveRepaymentTime_ZeroRate(t *testing.T) {
	result, err := SolveRepaymentTime(domain.RepaymentTimeInput{Amount: 1000, MonthlyPayment: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Months != 4 {
		t.Errorf("expected 4 months, got %d", result.Months)
	}
	if !approx(result.FinalPayment, 100, 1e-9) {
		t.Errorf("expected final payment 100, got %v", result.FinalPayment)
	}
	if !approx(result.TotalInterest, 0, 1e-9) {
		t.Errorf("expected no interest, got %v", result.TotalInterest)
	}
}

func TestSolveRepaymentTime_PaymentTooLow(t *testing.T) {
	cases := []struct {
		name    string
		payment float64
	}{
		{"equal to interest", 2000},
		{"below interest", 1500},
		{"barely above interest", 2000.0000001},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := SolveRepaymentTime(domain.RepaymentTimeInput{
				Amount:         400000,
				InterestRate:   6,
				MonthlyPayment: tc.payment,
			})
			if !errors.Is(err, domain.ErrPaymentTooLow) {
				t.Fatalf("expected ErrPaymentTooLow, got %v", err)
			}
			if !result.PaymentTooLow {
				t.Errorf("expected PaymentTooLow flag")
			}
			if result.Months != 0 {
				t.Errorf("expected no term, got %d", result.Months)
			}
			if result.ExceedsMaxTerm {
				t.Errorf("payment at or below interest is not a max-term overrun")
			}
		})
	}
}

func TestSolveRepaymentTime_TooLongIsTooLow(t *testing.T) {
	// Zero rate never hits the interest check, but a tiny payment still
	// runs past the longest accepted term.
	result, err := SolveRepaymentTime(domain.RepaymentTimeInput{Amount: 1000000, MonthlyPayment: 1})
	if !errors.Is(err, domain.ErrPaymentTooLow) || !result.PaymentTooLow {
		t.Fatalf("expected payment too low, got %+v, %v", result, err)
	}
	if !result.ExceedsMaxTerm {
		t.Errorf("expected the max-term overrun to be flagged")
	}

	// 2001 covers the 2000 of interest but needs more than a century.
	result, err = SolveRepaymentTime(domain.RepaymentTimeInput{Amount: 400000, InterestRate: 6, MonthlyPayment: 2001})
	if !errors.Is(err, domain.ErrPaymentTooLow) || !result.ExceedsMaxTerm {
		t.Errorf("expected a max-term overrun, got %+v, %v", result, err)
	}
}

func TestSolveRepaymentTime_InvalidInput(t *testing.T) {
	cases := []domain.RepaymentTimeInput{
		{Amount: 0, InterestRate: 5, MonthlyPayment: 100},
		{Amount: 1000, InterestRate: -1, MonthlyPayment: 100},
		{Amount: 1000, InterestRate: 5, MonthlyPayment: 0},
	}
	for _, in := range cases {
		result, err := SolveRepaymentTime(in)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%+v: expected ErrInvalidInput, got %v", in, err)
		}
		if result.PaymentTooLow || result.Months != 0 {
			t.Errorf("%+v: expected zeroed result, got %+v", in, result)
		}
	}
}
