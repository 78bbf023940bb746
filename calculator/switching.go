package calculator

import (
	"math"

	"mortgage-calc/domain"
)

// Switching compares staying on the current rate with refinancing the same
// balance over the same remaining term at a new rate.
func Switching(in domain.SwitchingInput) (domain.SwitchingResult, error) {
	if err := positive("balance", in.Balance); err != nil {
		return domain.SwitchingResult{}, err
	}
	if err := nonNegative("current rate", in.CurrentRate); err != nil {
		return domain.SwitchingResult{}, err
	}
	if err := nonNegative("new rate", in.NewRate); err != nil {
		return domain.SwitchingResult{}, err
	}
	if err := nonNegative("switching costs", in.SwitchingCosts); err != nil {
		return domain.SwitchingResult{}, err
	}
	if err := termYears("remaining term", in.RemainingYears); err != nil {
		return domain.SwitchingResult{}, err
	}

	n := in.RemainingYears * monthsPerYear
	current := MonthlyPayment(in.Balance, monthlyRate(in.CurrentRate), n)
	next := MonthlyPayment(in.Balance, monthlyRate(in.NewRate), n)
	saving := current - next
	lifetime := saving*float64(n) - in.SwitchingCosts

	res := domain.SwitchingResult{
		CurrentPayment: current,
		NewPayment:     next,
		MonthlySaving:  saving,
		LifetimeSaving: lifetime,
		Worthwhile:     lifetime > 0,
	}
	// Break-even stays 0 when the new loan never pays back its costs.
	if saving > 0 && res.Worthwhile {
		res.BreakEvenMonths = int(math.Ceil(in.SwitchingCosts / saving))
	}
	return res, nil
}
