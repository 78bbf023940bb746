package calculator

import (
	"fmt"
	"math"

	"mortgage-calc/domain"
)

// ExtraRepayments adds a fixed amount to the regular monthly payment once
// StartAfterMonths regular payments have been made, and reports the shorter
// term and the interest saved against the original schedule.
func ExtraRepayments(in domain.ExtraRepaymentInput) (domain.ExtraRepaymentResult, error) {
	if err := validateLoan(domain.LoanInput{Amount: in.Amount, InterestRate: in.InterestRate, TermYears: in.TermYears}); err != nil {
		return domain.ExtraRepaymentResult{}, err
	}
	if err := nonNegative("extra repayment", in.ExtraMonthly); err != nil {
		return domain.ExtraRepaymentResult{}, err
	}
	if in.StartAfterMonths < 0 {
		return domain.ExtraRepaymentResult{}, fmt.Errorf("%w: start month must not be negative", domain.ErrInvalidInput)
	}

	n := in.TermYears * monthsPerYear
	r := monthlyRate(in.InterestRate)
	payment := MonthlyPayment(in.Amount, r, n)
	originalInterest := payment*float64(n) - in.Amount

	deferral := in.StartAfterMonths
	if deferral > n {
		deferral = n
	}

	balance := in.Amount
	var paid float64
	months := 0
	for ; months < deferral && balance > balanceTolerance; months++ {
		interest := balance * r
		pay := math.Min(payment, balance+interest)
		balance += interest - pay
		paid += pay
	}

	newPayment := payment + in.ExtraMonthly
	if balance > balanceTolerance {
		rest, err := solveMonths(balance, r, newPayment)
		if err != nil {
			return domain.ExtraRepaymentResult{}, err
		}
		paid += newPayment*float64(rest-1) + finalPayment(balance, r, newPayment, rest)
		months += rest
	}
	newInterest := paid - in.Amount

	return domain.ExtraRepaymentResult{
		MonthlyPayment:   payment,
		NewPayment:       newPayment,
		OriginalMonths:   n,
		NewMonths:        months,
		MonthsSaved:      max(0, n-months),
		OriginalInterest: originalInterest,
		NewInterest:      newInterest,
		InterestSaved:    math.Max(0, originalInterest-newInterest),
	}, nil
}
