package domain

import "time"

type ScheduleEntry struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type YearSummary struct {
	Year      int     `json:"year"`
	Paid      float64 `json:"paid"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type Schedule struct {
	MonthlyPayment float64         `json:"monthly_payment"`
	Entries        []ScheduleEntry `json:"entries"`
	Years          []YearSummary   `json:"years"`
}

// CalculationRecord is a single stored calculation.
type CalculationRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Input     any       `json:"input"`
	Result    any       `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
