package domain

const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizePayment  = "minimize_payment"
	PreferenceBalanced         = "balanced"
)

type TermRecommendationInput struct {
	Amount            float64 `json:"amount"`
	InterestRate      float64 `json:"interest_rate"`
	MinTermYears      int     `json:"min_term_years"`
	MaxTermYears      int     `json:"max_term_years"`
	MaxMonthlyPayment float64 `json:"max_monthly_payment"`
	Preference        string  `json:"preference"` // "minimize_interest", "minimize_payment", "balanced"
}

type TermRecommendation struct {
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermRecommendationResult struct {
	RecommendedTerm int                  `json:"recommended_term_years"`
	Recommendations []TermRecommendation `json:"recommendations"`
}
