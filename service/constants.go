package service

import "time"

const (
	KindAmortization   = "amortization"
	KindSchedule       = "schedule"
	KindRepaymentTime  = "repayment_time"
	KindComparison     = "comparison"
	KindExtraRepayment = "extra_repayment"
	KindInterestOnly   = "interest_only"
	KindBorrowingPower = "borrowing_power"
	KindSwitching      = "switching"

	KindTermRecommendation = "term_recommendation"

	DefaultMaxLoanAmount   = 100_000_000.0
	DefaultMaxInterestRate = 100.0 // percent per year
	DefaultMaxTermYears    = 50
	DefaultCacheTTL        = 10 * time.Minute

	// MaxTermRangeYears bounds how many terms a recommendation evaluates.
	MaxTermRangeYears = 50

	maxAlternatives = 3
)
