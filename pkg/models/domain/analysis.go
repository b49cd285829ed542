package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalysisWindow is the trailing range of days an analysis covers.
// The HTTP boundary rejects windows shorter than 30 days; the engine
// itself only requires Days to be positive.
type AnalysisWindow struct {
	Start time.Time
	Days  int
}

func (w AnalysisWindow) End() time.Time {
	return w.Start.AddDate(0, 0, w.Days)
}

// SpendingPatterns holds the aggregate statistics derived from a record set.
// Averages are per spending day (a calendar date with at least one matching
// record), not per elapsed calendar day.
type SpendingPatterns struct {
	WeekdayAverage decimal.Decimal
	WeekendAverage decimal.Decimal
	EveningTotal   decimal.Decimal
}

type WarningKind string

const (
	WarningHighCategorySpending WarningKind = "HighCategorySpending"
	WarningWeekendExcess        WarningKind = "WeekendExcess"
	WarningSpecificTimePattern  WarningKind = "SpecificTimePattern"
)

// Warning is a single rule-triggered observation about spending habits.
// Data carries kind-specific numeric fields (percentage, difference, amount).
type Warning struct {
	Kind    WarningKind
	Message string
	Data    map[string]any
}

// AnalysisReport is the engine's complete output. It is constructed fresh
// on every invocation and never persisted.
type AnalysisReport struct {
	Summary  string
	Window   AnalysisWindow
	Patterns SpendingPatterns
	Warnings []Warning
}
