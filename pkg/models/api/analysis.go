package api

import "time"

// SpendingPatterns carries monetary values formatted to two decimal places,
// the shape the frontend renders directly.
type SpendingPatterns struct {
	WeekdayAverage string `json:"weekday_average"`
	WeekendAverage string `json:"weekend_average"`
	EveningTotal   string `json:"evening_spending_total"`
}

// Warning is the wire form of a triggered rule. Only the fields relevant
// to the warning's kind are populated.
type Warning struct {
	Kind       string `json:"type"`
	Message    string `json:"message"`
	Category   string `json:"category,omitempty"`
	Percentage *int   `json:"percentage,omitempty"`
	Difference string `json:"difference,omitempty"`
	Amount     string `json:"amount,omitempty"`
}

type AnalysisReport struct {
	Status     string           `json:"status"`
	Summary    string           `json:"report_summary"`
	Patterns   SpendingPatterns `json:"patterns"`
	Warnings   []Warning        `json:"warnings"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
}

type Expense struct {
	ID         string    `json:"id,omitempty"`
	CategoryID string    `json:"category_id"`
	Amount     string    `json:"amount"`
	SpentAt    time.Time `json:"spent_at"`
}

// ValidationError mirrors the 422 body the presentation boundary returns
// for rejected parameters.
type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
