package calculator

import (
	"fmt"

	"mortgage-calc/domain"
)

// InterestOnly prices a loan that pays interest only for the first
// InterestOnlyYears and then principal and interest over what is left of
// the term.
func InterestOnly(in domain.InterestOnlyInput) (domain.InterestOnlyResult, error) {
	if err := validateLoan(domain.LoanInput{Amount: in.Amount, InterestRate: in.InterestRate, TermYears: in.TermYears}); err != nil {
		return domain.InterestOnlyResult{}, err
	}
	if in.InterestOnlyYears < 0 || in.InterestOnlyYears >= in.TermYears {
		return domain.InterestOnlyResult{}, fmt.Errorf("%w: interest-only period must be shorter than the term", domain.ErrInvalidInput)
	}

	n := in.TermYears * monthsPerYear
	k := in.InterestOnlyYears * monthsPerYear
	m := n - k
	r := monthlyRate(in.InterestRate)

	ioPayment := in.Amount * r
	piPayment := MonthlyPayment(in.Amount, r, m)
	fullPayment := MonthlyPayment(in.Amount, r, n)

	total := ioPayment*float64(k) + piPayment*float64(m)
	interest := total - in.Amount
	fullInterest := fullPayment*float64(n) - in.Amount

	return domain.InterestOnlyResult{
		InterestOnlyPayment:        ioPayment,
		PrincipalAndInterest:       piPayment,
		FullTermPayment:            fullPayment,
		InterestOnlyMonths:         k,
		PrincipalAndInterestMonths: m,
		TotalPayment:               total,
		TotalInterest:              interest,
		FullTermInterest:           fullInterest,
		ExtraInterest:              interest - fullInterest,
	}, nil
}
