package domain

type Frequency string

const (
	FrequencyMonthly     Frequency = "monthly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyWeekly      Frequency = "weekly"
)

// Frequencies lists every supported payment frequency in display order.
var Frequencies = []Frequency{FrequencyMonthly, FrequencyFortnightly, FrequencyWeekly}

// Valid reports whether f is a supported frequency. The empty value is
// accepted and treated as monthly.
func (f Frequency) Valid() bool {
	switch f {
	case "", FrequencyMonthly, FrequencyFortnightly, FrequencyWeekly:
		return true
	}
	return false
}

// OrDefault returns monthly for the empty frequency.
func (f Frequency) OrDefault() Frequency {
	if f == "" {
		return FrequencyMonthly
	}
	return f
}

// PeriodsPerYear is 12, 26 or 52.
func (f Frequency) PeriodsPerYear() int {
	switch f.OrDefault() {
	case FrequencyFortnightly:
		return 26
	case FrequencyWeekly:
		return 52
	}
	return 12
}

type LoanInput struct {
	Amount       float64   `json:"amount"`
	InterestRate float64   `json:"interest_rate"` // annual, percent
	TermYears    int       `json:"term_years"`
	Frequency    Frequency `json:"frequency,omitempty"`
}

type LoanResult struct {
	Frequency      Frequency             `json:"frequency"`
	Payment        float64               `json:"payment"`
	MonthlyPayment float64               `json:"monthly_payment"`
	TotalPayment   float64               `json:"total_payment"`
	TotalInterest  float64               `json:"total_interest"`
	Payments       map[Frequency]float64 `json:"payments"`
}
