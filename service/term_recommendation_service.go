package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"mortgage-calc/calculator"
	"mortgage-calc/domain"
)

type TermRecommendationService struct {
	loanService *LoanService
	log         *logrus.Logger
}

func NewTermRecommendationService(loanService *LoanService, log *logrus.Logger) *TermRecommendationService {
	return &TermRecommendationService{
		loanService: loanService,
		log:         log,
	}
}

// RecommendTerm evaluates every whole-year term in the requested range and
// ranks the affordable ones by the borrower's preference. The ranking is
// cached and recorded once, as a single term_recommendation calculation.
func (s *TermRecommendationService) RecommendTerm(
	ctx context.Context,
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {
	if err := s.loanService.checkLoan(input.Amount, input.MaxTermYears, input.InterestRate); err != nil {
		return domain.TermRecommendationResult{}, err
	}
	return run(ctx, s.loanService, KindTermRecommendation, input, s.rankTerms, roundTermRecommendation)
}

func (s *TermRecommendationService) rankTerms(input domain.TermRecommendationInput) (domain.TermRecommendationResult, error) {
	if input.Amount <= 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: invalid amount", domain.ErrInvalidInput)
	}
	if input.InterestRate < 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: invalid interest rate", domain.ErrInvalidInput)
	}
	if input.MinTermYears <= 0 || input.MaxTermYears <= 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: invalid terms", domain.ErrInvalidInput)
	}
	if input.MinTermYears > input.MaxTermYears {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: minimum term is greater than maximum term", domain.ErrInvalidInput)
	}
	if input.MaxTermYears-input.MinTermYears > MaxTermRangeYears {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: term range exceeds %d years", domain.ErrInvalidInput, MaxTermRangeYears)
	}
	if input.MaxMonthlyPayment <= 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: invalid maximum monthly payment", domain.ErrInvalidInput)
	}

	switch input.Preference {
	case domain.PreferenceMinimizeInterest, domain.PreferenceMinimizePayment, domain.PreferenceBalanced:
	default:
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: unknown preference %q", domain.ErrInvalidInput, input.Preference)
	}

	recommendations := []domain.TermRecommendation{}

	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		result, err := calculator.Amortize(domain.LoanInput{
			Amount:       input.Amount,
			InterestRate: input.InterestRate,
			TermYears:    term,
		})
		if err != nil {
			return domain.TermRecommendationResult{}, fmt.Errorf("term of %d years: %w", term, err)
		}
		result = roundLoanResult(result)

		if result.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermYears:      term,
			MonthlyPayment: result.MonthlyPayment,
			TotalInterest:  result.TotalInterest,
			Score:          s.calculateScore(result, input, term),
			Reason:         s.generateReason(input.Preference),
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf("%w: no term keeps the monthly payment within $%.2f",
			domain.ErrInvalidInput, input.MaxMonthlyPayment)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	top := recommendations[0]
	alternatives := recommendations[1:min(len(recommendations), maxAlternatives+1)]
	recommendations[0].Reason = explainRecommendation(top, input.Preference, alternatives)

	s.log.WithFields(logrus.Fields{
		"affordable_terms": len(recommendations),
		"recommended":      top.TermYears,
	}).Debug("ranked loan terms")

	return domain.TermRecommendationResult{
		RecommendedTerm: top.TermYears,
		Recommendations: recommendations,
	}, nil
}

// calculateScore rates a term from 0 to 10 by blending normalized
// interest, payment and term scores with preference weights.
func (s *TermRecommendationService) calculateScore(
	result domain.LoanResult,
	input domain.TermRecommendationInput,
	term int,
) float64 {
	maxPossibleInterest := input.Amount * (input.InterestRate / 100) * float64(input.MaxTermYears)
	minPossibleInterest := input.Amount * (input.InterestRate / 100) * float64(input.MinTermYears)
	minPayment := input.Amount / float64(input.MaxTermYears*12)

	interestRange := maxPossibleInterest - minPossibleInterest
	paymentRange := input.MaxMonthlyPayment - minPayment
	termRange := input.MaxTermYears - input.MinTermYears

	var interestScore, paymentScore, termScore float64
	if interestRange > 0 {
		interestScore = 10.0 * (1.0 - (result.TotalInterest-minPossibleInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10.0 * (1.0 - (result.MonthlyPayment-minPayment)/paymentRange)
	}
	if termRange > 0 {
		termScore = 10.0 * (1.0 - float64(term-input.MinTermYears)/float64(termRange))
	}

	var score float64
	switch input.Preference {
	case domain.PreferenceMinimizeInterest:
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case domain.PreferenceMinimizePayment:
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case domain.PreferenceBalanced:
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return roundCents(score)
}

func (s *TermRecommendationService) generateReason(preference string) string {
	switch preference {
	case domain.PreferenceMinimizeInterest:
		return "Term chosen to keep total interest low"
	case domain.PreferenceMinimizePayment:
		return "Term chosen to keep the monthly payment low"
	case domain.PreferenceBalanced:
		return "Balance between monthly payment and total cost"
	}
	return "Recommendation based on the supplied parameters"
}

func explainRecommendation(top domain.TermRecommendation, preference string, alternatives []domain.TermRecommendation) string {
	var text string
	switch preference {
	case domain.PreferenceMinimizeInterest:
		text = fmt.Sprintf("A %d year term keeps total interest to $%.2f for a monthly payment of $%.2f.",
			top.TermYears, top.TotalInterest, top.MonthlyPayment)
	case domain.PreferenceMinimizePayment:
		text = fmt.Sprintf("A %d year term brings the monthly payment down to $%.2f, with $%.2f in total interest.",
			top.TermYears, top.MonthlyPayment, top.TotalInterest)
	default:
		text = fmt.Sprintf("A %d year term balances a monthly payment of $%.2f against $%.2f in total interest.",
			top.TermYears, top.MonthlyPayment, top.TotalInterest)
	}

	if len(alternatives) > 0 {
		text += " Alternatives:"
		for _, alt := range alternatives {
			text += fmt.Sprintf(" %d years at $%.2f/month;", alt.TermYears, alt.MonthlyPayment)
		}
		text = text[:len(text)-1] + "."
	}
	return text
}
