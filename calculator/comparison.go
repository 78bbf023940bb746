package calculator

import (
	"fmt"
	"math"

	"mortgage-calc/domain"
)

const (
	// costTolerance below which two offers cost the same.
	costTolerance = 0.005

	maxComparisonRate = 10000.0 // percent
	bisectIterations  = 200
)

// Compare prices two loan offers over the same amount and term and reports
// the signed difference cost(B) - cost(A).
//
// Each offer is amortized at its introductory rate over the full term. The
// balance left when the introductory period ends is re-amortized at the
// ongoing rate over the months that remain.
func Compare(in domain.ComparisonInput) (domain.ComparisonResult, error) {
	if err := positive("amount", in.Amount); err != nil {
		return domain.ComparisonResult{}, err
	}
	if err := termYears("term", in.TermYears); err != nil {
		return domain.ComparisonResult{}, err
	}
	if err := validateOffer("offer A", in.OfferA); err != nil {
		return domain.ComparisonResult{}, err
	}
	if err := validateOffer("offer B", in.OfferB); err != nil {
		return domain.ComparisonResult{}, err
	}

	n := in.TermYears * monthsPerYear
	a := OfferCost(in.Amount, n, in.OfferA)
	b := OfferCost(in.Amount, n, in.OfferB)

	diff := b.TotalCost - a.TotalCost
	cheaper := "equal"
	switch {
	case diff > costTolerance:
		cheaper = "A"
	case diff < -costTolerance:
		cheaper = "B"
	}

	return domain.ComparisonResult{
		OfferA:     a,
		OfferB:     b,
		Difference: diff,
		Cheaper:    cheaper,
	}, nil
}

// OfferCost prices a single offer over n months.
func OfferCost(principal float64, n int, o domain.LoanOffer) domain.OfferCost {
	k := o.IntroPeriodMonths
	if k > n {
		k = n
	}
	m := n - k

	var introPayment float64
	balance := principal
	if k > 0 {
		ri := monthlyRate(o.IntroRate)
		introPayment = MonthlyPayment(principal, ri, n)
		balance = math.Max(0, RemainingBalance(principal, ri, introPayment, k))
	}

	var ongoingPayment float64
	if m > 0 {
		ongoingPayment = MonthlyPayment(balance, monthlyRate(o.OngoingRate), m)
	}

	repayments := introPayment*float64(k) + ongoingPayment*float64(m)
	fees := o.UpfrontFees + o.MonthlyFees*float64(n)

	return domain.OfferCost{
		Name:            o.Name,
		IntroPayment:    introPayment,
		IntroMonths:     k,
		BalanceAfter:    balance,
		OngoingPayment:  ongoingPayment,
		TotalRepayments: repayments,
		TotalFees:       fees,
		TotalInterest:   repayments - principal,
		TotalCost:       repayments + fees,
		ComparisonRate:  comparisonRate(principal, o, introPayment, k, ongoingPayment, m),
	}
}

// comparisonRate finds the annual percentage rate at which the offer's
// repayments plus monthly fees discount back to the amount actually
// received (principal less upfront fees).
func comparisonRate(principal float64, o domain.LoanOffer, introPayment float64, k int, ongoingPayment float64, m int) float64 {
	target := principal - o.UpfrontFees
	if target <= 0 {
		return 0
	}

	pv := func(annual float64) float64 {
		r := monthlyRate(annual)
		intro := PresentValue(introPayment+o.MonthlyFees, r, k)
		rest := PresentValue(ongoingPayment+o.MonthlyFees, r, m)
		if r > 0 {
			rest *= math.Exp(-float64(k) * math.Log1p(r))
		}
		return intro + rest
	}

	if pv(0) <= target {
		return 0
	}

	lo, hi := 0.0, 100.0
	for pv(hi) > target {
		if hi >= maxComparisonRate {
			return maxComparisonRate
		}
		lo = hi
		hi *= 2
	}

	for i := 0; i < bisectIterations && hi-lo > 1e-10; i++ {
		mid := (lo + hi) / 2
		if pv(mid) > target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func validateOffer(name string, o domain.LoanOffer) error {
	checks := []struct {
		field string
		value float64
	}{
		{"intro rate", o.IntroRate},
		{"ongoing rate", o.OngoingRate},
		{"upfront fees", o.UpfrontFees},
		{"monthly fees", o.MonthlyFees},
	}
	for _, c := range checks {
		if err := nonNegative(c.field, c.value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if o.IntroPeriodMonths < 0 {
		return fmt.Errorf("%s: %w: intro period must not be negative", name, domain.ErrInvalidInput)
	}
	return nil
}
