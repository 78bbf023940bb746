package calculator

import (
	"fmt"
	"math"

	"mortgage-calc/domain"
)

// DefaultServiceability mirrors the assessment most lenders apply: a three
// point buffer on the rate and repayments capped at 30% of gross income.
var DefaultServiceability = domain.Serviceability{
	BufferRate:        3.0,
	MaxRepaymentRatio: 0.30,
}

// BorrowingPower estimates the largest loan whose repayments, assessed at
// the buffered rate, fit within the borrower's capacity. Capacity is the
// smaller of the income-ratio cap and the monthly surplus, both net of
// existing commitments. A non-positive capacity gives a zero loan, not an
// error.
func BorrowingPower(in domain.BorrowingPowerInput, rules domain.Serviceability) (domain.BorrowingPowerResult, error) {
	if err := positive("gross annual income", in.GrossAnnualIncome); err != nil {
		return domain.BorrowingPowerResult{}, err
	}
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"monthly expenses", in.MonthlyExpenses},
		{"monthly commitments", in.MonthlyCommitments},
		{"interest rate", in.InterestRate},
		{"deposit", in.Deposit},
		{"buffer rate", rules.BufferRate},
	} {
		if err := nonNegative(c.name, c.value); err != nil {
			return domain.BorrowingPowerResult{}, err
		}
	}
	if err := termYears("term", in.TermYears); err != nil {
		return domain.BorrowingPowerResult{}, err
	}
	if !finite(rules.MaxRepaymentRatio) || rules.MaxRepaymentRatio <= 0 || rules.MaxRepaymentRatio > 1 {
		return domain.BorrowingPowerResult{}, fmt.Errorf("%w: repayment ratio must be in (0, 1]", domain.ErrInvalidInput)
	}

	grossMonthly := in.GrossAnnualIncome / monthsPerYear
	capacity := math.Min(
		grossMonthly*rules.MaxRepaymentRatio-in.MonthlyCommitments,
		grossMonthly-in.MonthlyExpenses-in.MonthlyCommitments,
	)

	assessment := in.InterestRate + rules.BufferRate
	res := domain.BorrowingPowerResult{AssessmentRate: assessment}
	if capacity <= 0 {
		return res, nil
	}

	n := in.TermYears * monthsPerYear
	res.MaxMonthlyRepayment = capacity
	res.MaxLoan = PresentValue(capacity, monthlyRate(assessment), n)
	res.ActualRepayment = MonthlyPayment(res.MaxLoan, monthlyRate(in.InterestRate), n)

	if in.Deposit > 0 {
		res.MaxPropertyPrice = res.MaxLoan + in.Deposit
		res.LVR = res.MaxLoan / res.MaxPropertyPrice * 100
	}
	return res, nil
}
