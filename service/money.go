package service

import (
	"github.com/shopspring/decimal"

	"mortgage-calc/domain"
)

// roundCents rounds half away from zero to two decimals.
func roundCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

func roundLoanResult(r domain.LoanResult) domain.LoanResult {
	r.Payment = roundCents(r.Payment)
	r.MonthlyPayment = roundCents(r.MonthlyPayment)
	r.TotalPayment = roundCents(r.TotalPayment)
	r.TotalInterest = roundCents(r.TotalInterest)
	payments := make(map[domain.Frequency]float64, len(r.Payments))
	for f, v := range r.Payments {
		payments[f] = roundCents(v)
	}
	r.Payments = payments
	return r
}

func roundSchedule(s domain.Schedule) domain.Schedule {
	s.MonthlyPayment = roundCents(s.MonthlyPayment)
	entries := make([]domain.ScheduleEntry, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = domain.ScheduleEntry{
			Period:    e.Period,
			Payment:   roundCents(e.Payment),
			Interest:  roundCents(e.Interest),
			Principal: roundCents(e.Principal),
			Balance:   roundCents(e.Balance),
		}
	}
	years := make([]domain.YearSummary, len(s.Years))
	for i, y := range s.Years {
		years[i] = domain.YearSummary{
			Year:      y.Year,
			Paid:      roundCents(y.Paid),
			Interest:  roundCents(y.Interest),
			Principal: roundCents(y.Principal),
			Balance:   roundCents(y.Balance),
		}
	}
	s.Entries, s.Years = entries, years
	return s
}

func roundRepaymentTime(r domain.RepaymentTimeResult) domain.RepaymentTimeResult {
	r.FinalPayment = roundCents(r.FinalPayment)
	r.TotalPayment = roundCents(r.TotalPayment)
	r.TotalInterest = roundCents(r.TotalInterest)
	return r
}

func roundOfferCost(c domain.OfferCost) domain.OfferCost {
	c.IntroPayment = roundCents(c.IntroPayment)
	c.BalanceAfter = roundCents(c.BalanceAfter)
	c.OngoingPayment = roundCents(c.OngoingPayment)
	c.TotalRepayments = roundCents(c.TotalRepayments)
	c.TotalFees = roundCents(c.TotalFees)
	c.TotalInterest = roundCents(c.TotalInterest)
	c.TotalCost = roundCents(c.TotalCost)
	c.ComparisonRate = roundCents(c.ComparisonRate)
	return c
}

func roundComparison(r domain.ComparisonResult) domain.ComparisonResult {
	r.OfferA = roundOfferCost(r.OfferA)
	r.OfferB = roundOfferCost(r.OfferB)
	r.Difference = roundCents(r.Difference)
	return r
}

func roundExtraRepayment(r domain.ExtraRepaymentResult) domain.ExtraRepaymentResult {
	r.MonthlyPayment = roundCents(r.MonthlyPayment)
	r.NewPayment = roundCents(r.NewPayment)
	r.OriginalInterest = roundCents(r.OriginalInterest)
	r.NewInterest = roundCents(r.NewInterest)
	r.InterestSaved = roundCents(r.InterestSaved)
	return r
}

func roundInterestOnly(r domain.InterestOnlyResult) domain.InterestOnlyResult {
	r.InterestOnlyPayment = roundCents(r.InterestOnlyPayment)
	r.PrincipalAndInterest = roundCents(r.PrincipalAndInterest)
	r.FullTermPayment = roundCents(r.FullTermPayment)
	r.TotalPayment = roundCents(r.TotalPayment)
	r.TotalInterest = roundCents(r.TotalInterest)
	r.FullTermInterest = roundCents(r.FullTermInterest)
	r.ExtraInterest = roundCents(r.ExtraInterest)
	return r
}

func roundBorrowingPower(r domain.BorrowingPowerResult) domain.BorrowingPowerResult {
	r.MaxLoan = roundCents(r.MaxLoan)
	r.MaxMonthlyRepayment = roundCents(r.MaxMonthlyRepayment)
	r.AssessmentRate = roundCents(r.AssessmentRate)
	r.ActualRepayment = roundCents(r.ActualRepayment)
	r.MaxPropertyPrice = roundCents(r.MaxPropertyPrice)
	r.LVR = roundCents(r.LVR)
	return r
}

func roundSwitching(r domain.SwitchingResult) domain.SwitchingResult {
	r.CurrentPayment = roundCents(r.CurrentPayment)
	r.NewPayment = roundCents(r.NewPayment)
	r.MonthlySaving = roundCents(r.MonthlySaving)
	r.LifetimeSaving = roundCents(r.LifetimeSaving)
	return r
}

func roundTermRecommendation(r domain.TermRecommendationResult) domain.TermRecommendationResult {
	recs := make([]domain.TermRecommendation, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		rec.MonthlyPayment = roundCents(rec.MonthlyPayment)
		rec.TotalInterest = roundCents(rec.TotalInterest)
		rec.Score = roundCents(rec.Score)
		recs[i] = rec
	}
	r.Recommendations = recs
	return r
}
