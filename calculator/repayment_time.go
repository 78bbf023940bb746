package calculator

import (
	"errors"
	"fmt"
	"math"

	"mortgage-calc/domain"
)

// maxSolvedMonths caps the solver. A payment that needs longer than the
// longest accepted term is reported as too low.
const maxSolvedMonths = MaxTermYears * monthsPerYear

// SolveRepaymentTime finds how many monthly payments of the given size
// repay the loan, using the inverse of the amortization formula:
//
//	n = -ln(1 - r*P/M) / ln(1+r)
//
// A payment that does not exceed the monthly interest never amortizes; the
// result then has PaymentTooLow set and the error wraps
// domain.ErrPaymentTooLow.
func SolveRepaymentTime(in domain.RepaymentTimeInput) (domain.RepaymentTimeResult, error) {
	if err := positive("amount", in.Amount); err != nil {
		return domain.RepaymentTimeResult{}, err
	}
	if err := nonNegative("interest rate", in.InterestRate); err != nil {
		return domain.RepaymentTimeResult{}, err
	}
	if err := positive("monthly payment", in.MonthlyPayment); err != nil {
		return domain.RepaymentTimeResult{}, err
	}

	r := monthlyRate(in.InterestRate)
	months, err := solveMonths(in.Amount, r, in.MonthlyPayment)
	if err != nil {
		tooLow := errors.Is(err, domain.ErrPaymentTooLow)
		return domain.RepaymentTimeResult{
			PaymentTooLow:  tooLow,
			ExceedsMaxTerm: tooLow && in.MonthlyPayment-in.Amount*r > paymentTolerance,
		}, err
	}

	final := finalPayment(in.Amount, r, in.MonthlyPayment, months)
	total := in.MonthlyPayment*float64(months-1) + final

	return domain.RepaymentTimeResult{
		Months:          months,
		Years:           months / monthsPerYear,
		RemainingMonths: months % monthsPerYear,
		FinalPayment:    final,
		TotalPayment:    total,
		TotalInterest:   total - in.Amount,
	}, nil
}

// solveMonths returns the whole number of payments needed to clear
// principal. The last payment may be smaller than the others.
func solveMonths(principal, r, payment float64) (int, error) {
	var n float64
	if r == 0 {
		n = principal / payment
	} else {
		interest := principal * r
		if payment-interest <= paymentTolerance {
			return 0, fmt.Errorf("%w: payment %.2f does not exceed monthly interest %.2f",
				domain.ErrPaymentTooLow, payment, interest)
		}
		n = -math.Log1p(-interest/payment) / math.Log1p(r)
	}

	if math.IsNaN(n) || math.IsInf(n, 0) || n > maxSolvedMonths {
		return 0, fmt.Errorf("%w: loan would take longer than %d years to repay",
			domain.ErrPaymentTooLow, MaxTermYears)
	}

	months := int(math.Ceil(n - periodTolerance))
	if months < 1 {
		months = 1
	}
	return months, nil
}

// finalPayment is what the last of n payments must be to leave a zero
// balance.
func finalPayment(principal, r, payment float64, n int) float64 {
	final := RemainingBalance(principal, r, payment, n-1) * (1 + r)
	switch {
	case final < 0:
		return 0
	case final > payment:
		return payment
	}
	return final
}
