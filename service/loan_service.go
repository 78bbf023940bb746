package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"mortgage-calc/calculator"
	"mortgage-calc/domain"
	"mortgage-calc/repository"
)

// Limits caps the inputs the service accepts on top of the engine's own
// validation.
type Limits struct {
	MaxLoanAmount   float64
	MaxInterestRate float64
	MaxTermYears    int
}

type Options struct {
	Limits         Limits
	Serviceability domain.Serviceability
	CacheTTL       time.Duration
}

// DefaultOptions returns the limits used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Limits: Limits{
			MaxLoanAmount:   DefaultMaxLoanAmount,
			MaxInterestRate: DefaultMaxInterestRate,
			MaxTermYears:    DefaultMaxTermYears,
		},
		Serviceability: calculator.DefaultServiceability,
		CacheTTL:       DefaultCacheTTL,
	}
}

// LoanService runs the calculators, rounds their output to cents, caches
// rounded results and records every calculation in the history.
type LoanService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
	log   *logrus.Logger
	opts  Options
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	log *logrus.Logger,
	opts Options,
) *LoanService {
	return &LoanService{repo: repo, cache: cache, log: log, opts: opts}
}

// CalculateLoan calculates periodic payments and totals for a loan.
func (s *LoanService) CalculateLoan(ctx context.Context, input domain.LoanInput) (domain.LoanResult, error) {
	if err := s.checkLoan(input.Amount, input.TermYears, input.InterestRate); err != nil {
		return domain.LoanResult{}, err
	}
	return run(ctx, s, KindAmortization, input, calculator.Amortize, roundLoanResult)
}

// Schedule builds the month by month amortization table.
func (s *LoanService) Schedule(ctx context.Context, input domain.LoanInput) (domain.Schedule, error) {
	if err := s.checkLoan(input.Amount, input.TermYears, input.InterestRate); err != nil {
		return domain.Schedule{}, err
	}
	return run(ctx, s, KindSchedule, input, calculator.BuildSchedule, roundSchedule)
}

// RepaymentTime solves for how long a fixed monthly payment takes to repay
// the loan. A payment that never amortizes returns a result with
// PaymentTooLow set together with domain.ErrPaymentTooLow.
func (s *LoanService) RepaymentTime(ctx context.Context, input domain.RepaymentTimeInput) (domain.RepaymentTimeResult, error) {
	if err := s.checkLoan(input.Amount, 0, input.InterestRate); err != nil {
		return domain.RepaymentTimeResult{}, err
	}
	return run(ctx, s, KindRepaymentTime, input, calculator.SolveRepaymentTime, roundRepaymentTime)
}

// Compare prices two offers and reports the signed cost difference.
func (s *LoanService) Compare(ctx context.Context, input domain.ComparisonInput) (domain.ComparisonResult, error) {
	if err := s.checkLoan(input.Amount, input.TermYears,
		input.OfferA.IntroRate, input.OfferA.OngoingRate,
		input.OfferB.IntroRate, input.OfferB.OngoingRate,
	); err != nil {
		return domain.ComparisonResult{}, err
	}
	return run(ctx, s, KindComparison, input, calculator.Compare, roundComparison)
}

// ExtraRepayments reports the effect of paying more than the minimum.
func (s *LoanService) ExtraRepayments(ctx context.Context, input domain.ExtraRepaymentInput) (domain.ExtraRepaymentResult, error) {
	if err := s.checkLoan(input.Amount, input.TermYears, input.InterestRate); err != nil {
		return domain.ExtraRepaymentResult{}, err
	}
	return run(ctx, s, KindExtraRepayment, input, calculator.ExtraRepayments, roundExtraRepayment)
}

// InterestOnly prices an interest-only period followed by principal and
// interest repayments.
func (s *LoanService) InterestOnly(ctx context.Context, input domain.InterestOnlyInput) (domain.InterestOnlyResult, error) {
	if err := s.checkLoan(input.Amount, input.TermYears, input.InterestRate); err != nil {
		return domain.InterestOnlyResult{}, err
	}
	return run(ctx, s, KindInterestOnly, input, calculator.InterestOnly, roundInterestOnly)
}

// BorrowingPower estimates the largest serviceable loan under the
// configured assessment rules.
func (s *LoanService) BorrowingPower(ctx context.Context, input domain.BorrowingPowerInput) (domain.BorrowingPowerResult, error) {
	if err := s.checkLoan(0, input.TermYears, input.InterestRate); err != nil {
		return domain.BorrowingPowerResult{}, err
	}
	rules := s.opts.Serviceability
	calc := func(in domain.BorrowingPowerInput) (domain.BorrowingPowerResult, error) {
		return calculator.BorrowingPower(in, rules)
	}
	return run(ctx, s, KindBorrowingPower, input, calc, roundBorrowingPower)
}

// Switching compares the current loan with refinancing at a new rate.
func (s *LoanService) Switching(ctx context.Context, input domain.SwitchingInput) (domain.SwitchingResult, error) {
	if err := s.checkLoan(input.Balance, input.RemainingYears, input.CurrentRate, input.NewRate); err != nil {
		return domain.SwitchingResult{}, err
	}
	return run(ctx, s, KindSwitching, input, calculator.Switching, roundSwitching)
}

// RecentCalculations returns the newest calculations first.
func (s *LoanService) RecentCalculations(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load calculation history: %w", err)
	}
	return records, nil
}

// checkLoan applies the configured limits. Zero amount or term skips that
// check; the engine rejects non-positive values itself.
func (s *LoanService) checkLoan(amount float64, termYears int, rates ...float64) error {
	l := s.opts.Limits
	if amount > l.MaxLoanAmount {
		return fmt.Errorf("%w: amount exceeds the maximum of $%.2f", domain.ErrInvalidInput, l.MaxLoanAmount)
	}
	if termYears > l.MaxTermYears {
		return fmt.Errorf("%w: term exceeds the maximum of %d years", domain.ErrInvalidInput, l.MaxTermYears)
	}
	for _, rate := range rates {
		if rate > l.MaxInterestRate {
			return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", domain.ErrInvalidInput, l.MaxInterestRate)
		}
	}
	return nil
}

// run executes one calculation with caching and history. Results are
// rounded before they are cached or stored.
func run[I, R any](
	ctx context.Context,
	s *LoanService,
	kind string,
	input I,
	calc func(I) (R, error),
	round func(R) R,
) (R, error) {
	logger := s.log.WithField("kind", kind)

	key, keyErr := cacheKey(kind, input)
	if keyErr != nil {
		logger.WithError(keyErr).Warn("failed to build cache key")
	}

	result, hit := cached[R](ctx, s, key, keyErr == nil)
	if hit {
		logger.Debug("cache hit")
	} else {
		var err error
		result, err = calc(input)
		if err != nil {
			if errors.Is(err, domain.ErrPaymentTooLow) {
				logger.WithError(err).Info("payment does not amortize loan")
				return round(result), err
			}
			logger.WithError(err).Debug("calculation rejected")
			var zero R
			return zero, err
		}
		result = round(result)

		if keyErr == nil {
			if encoded, err := json.Marshal(result); err != nil {
				logger.WithError(err).Warn("failed to encode result for cache")
			} else if err := s.cache.Set(ctx, key, string(encoded), s.opts.CacheTTL); err != nil {
				logger.WithError(err).Warn("failed to cache result")
			}
		}
	}

	// History is best effort.
	if _, err := s.repo.Save(ctx, domain.CalculationRecord{Kind: kind, Input: input, Result: result}); err != nil {
		logger.WithError(err).Warn("failed to save calculation")
	}

	return result, nil
}

func cached[R any](ctx context.Context, s *LoanService, key string, ok bool) (R, bool) {
	var result R
	if !ok {
		return result, false
	}
	raw, found := s.cache.Get(ctx, key)
	if !found {
		return result, false
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("discarding unreadable cache entry")
		var zero R
		return zero, false
	}
	return result, true
}

func cacheKey(kind string, input any) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(raw)), nil
}
