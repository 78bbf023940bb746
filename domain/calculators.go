package domain

type RepaymentTimeInput struct {
	Amount         float64 `json:"amount"`
	InterestRate   float64 `json:"interest_rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

type RepaymentTimeResult struct {
	Months          int     `json:"months"`
	Years           int     `json:"years"`
	RemainingMonths int     `json:"remaining_months"`
	FinalPayment    float64 `json:"final_payment"`
	TotalPayment    float64 `json:"total_payment"`
	TotalInterest   float64 `json:"total_interest"`
	// PaymentTooLow is set when the payment never repays the loan: it does
	// not exceed the monthly interest, or repaying would take longer than
	// the longest accepted term. ExceedsMaxTerm marks the second case.
	PaymentTooLow   bool    `json:"payment_too_low"`
	ExceedsMaxTerm  bool    `json:"exceeds_max_term,omitempty"`
}

// LoanOffer describes one side of a two-loan comparison.
type LoanOffer struct {
	Name              string  `json:"name,omitempty"`
	IntroRate         float64 `json:"intro_rate"`
	IntroPeriodMonths int     `json:"intro_period_months"`
	OngoingRate       float64 `json:"ongoing_rate"`
	UpfrontFees       float64 `json:"upfront_fees"`
	MonthlyFees       float64 `json:"monthly_fees"`
}

type ComparisonInput struct {
	Amount    float64   `json:"amount"`
	TermYears int       `json:"term_years"`
	OfferA    LoanOffer `json:"offer_a"`
	OfferB    LoanOffer `json:"offer_b"`
}

type OfferCost struct {
	Name            string  `json:"name,omitempty"`
	IntroPayment    float64 `json:"intro_payment"`
	IntroMonths     int     `json:"intro_months"`
	BalanceAfter    float64 `json:"balance_after_intro"`
	OngoingPayment  float64 `json:"ongoing_payment"`
	TotalRepayments float64 `json:"total_repayments"`
	TotalFees       float64 `json:"total_fees"`
	TotalInterest   float64 `json:"total_interest"`
	TotalCost       float64 `json:"total_cost"`
	ComparisonRate  float64 `json:"comparison_rate"`
}

type ComparisonResult struct {
	OfferA     OfferCost `json:"offer_a"`
	OfferB     OfferCost `json:"offer_b"`
	Difference float64   `json:"difference"` // cost(B) - cost(A)
	Cheaper    string    `json:"cheaper"`    // "A", "B" or "equal"
}

type ExtraRepaymentInput struct {
	Amount           float64 `json:"amount"`
	InterestRate     float64 `json:"interest_rate"`
	TermYears        int     `json:"term_years"`
	ExtraMonthly     float64 `json:"extra_monthly"`
	StartAfterMonths int     `json:"start_after_months"`
}

type ExtraRepaymentResult struct {
	MonthlyPayment   float64 `json:"monthly_payment"`
	NewPayment       float64 `json:"new_payment"`
	OriginalMonths   int     `json:"original_months"`
	NewMonths        int     `json:"new_months"`
	MonthsSaved      int     `json:"months_saved"`
	OriginalInterest float64 `json:"original_interest"`
	NewInterest      float64 `json:"new_interest"`
	InterestSaved    float64 `json:"interest_saved"`
}

type InterestOnlyInput struct {
	Amount            float64 `json:"amount"`
	InterestRate      float64 `json:"interest_rate"`
	TermYears         int     `json:"term_years"`
	InterestOnlyYears int     `json:"interest_only_years"`
}

type InterestOnlyResult struct {
	InterestOnlyPayment        float64 `json:"interest_only_payment"`
	PrincipalAndInterest       float64 `json:"principal_and_interest_payment"`
	FullTermPayment            float64 `json:"full_term_payment"`
	InterestOnlyMonths         int     `json:"interest_only_months"`
	PrincipalAndInterestMonths int     `json:"principal_and_interest_months"`
	TotalPayment               float64 `json:"total_payment"`
	TotalInterest              float64 `json:"total_interest"`
	FullTermInterest           float64 `json:"full_term_interest"`
	ExtraInterest              float64 `json:"extra_interest"`
}

type BorrowingPowerInput struct {
	GrossAnnualIncome  float64 `json:"gross_annual_income"`
	MonthlyExpenses    float64 `json:"monthly_expenses"`
	MonthlyCommitments float64 `json:"monthly_commitments"`
	InterestRate       float64 `json:"interest_rate"`
	TermYears          int     `json:"term_years"`
	Deposit            float64 `json:"deposit,omitempty"`
}

// Serviceability holds the lender assessment rules applied to a
// borrowing power calculation.
type Serviceability struct {
	BufferRate        float64 `json:"buffer_rate"`         // percentage points added to the rate
	MaxRepaymentRatio float64 `json:"max_repayment_ratio"` // share of gross monthly income
}

type BorrowingPowerResult struct {
	MaxLoan             float64 `json:"max_loan"`
	MaxMonthlyRepayment float64 `json:"max_monthly_repayment"`
	AssessmentRate      float64 `json:"assessment_rate"`
	ActualRepayment     float64 `json:"actual_repayment"`
	MaxPropertyPrice    float64 `json:"max_property_price,omitempty"`
	LVR                 float64 `json:"lvr,omitempty"` // percent
}

type SwitchingInput struct {
	Balance        float64 `json:"balance"`
	CurrentRate    float64 `json:"current_rate"`
	NewRate        float64 `json:"new_rate"`
	RemainingYears int     `json:"remaining_years"`
	SwitchingCosts float64 `json:"switching_costs"`
}

type SwitchingResult struct {
	CurrentPayment  float64 `json:"current_payment"`
	NewPayment      float64 `json:"new_payment"`
	MonthlySaving   float64 `json:"monthly_saving"`
	LifetimeSaving  float64 `json:"lifetime_saving"` // net of switching costs
	BreakEvenMonths int     `json:"break_even_months"`
	Worthwhile      bool    `json:"worthwhile"`
}
