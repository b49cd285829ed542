package analysis

import (
	"fmt"

	"github.com/de-tools/spend-atlas/pkg/models/domain"
)

// Engine derives a spending-pattern report from a set of expense records.
// It is stateless and performs no I/O: concurrent invocations are fully
// independent and identical inputs yield identical reports.
type Engine struct {
	settings Settings
	registry *Registry
}

func NewEngine(settings Settings, registry *Registry) *Engine {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Engine{
		settings: settings,
		registry: registry,
	}
}

// Analyze filters records to the window, computes aggregate patterns and
// runs the warning rule set. An empty window is a normal outcome reported
// as "no data", not an error; the only failure mode is malformed input.
func (e *Engine) Analyze(records []domain.ExpenseRecord, window domain.AnalysisWindow) (domain.AnalysisReport, error) {
	if window.Days <= 0 {
		return domain.AnalysisReport{}, fmt.Errorf("%w: analysis window must cover at least one day, got %d",
			domain.ErrInvalidInput, window.Days)
	}

	end := window.End()
	matched := make([]domain.ExpenseRecord, 0, len(records))
	for _, r := range records {
		if r.SpentAt.IsZero() {
			return domain.AnalysisReport{}, fmt.Errorf("%w: record %q has no timestamp",
				domain.ErrInvalidInput, r.ID)
		}
		if r.Amount.IsNegative() {
			return domain.AnalysisReport{}, fmt.Errorf("%w: record %q has a negative amount %s",
				domain.ErrInvalidInput, r.ID, r.Amount)
		}
		if r.SpentAt.Before(window.Start) || !r.SpentAt.Before(end) {
			continue
		}
		matched = append(matched, r)
	}

	if len(matched) == 0 {
		return domain.AnalysisReport{
			Summary:  fmt.Sprintf("No expense data found for the past %d days.", window.Days),
			Window:   window,
			Patterns: domain.SpendingPatterns{},
			Warnings: []domain.Warning{},
		}, nil
	}

	patterns := domain.SpendingPatterns{
		WeekdayAverage: dailyAverage(matched, false),
		WeekendAverage: dailyAverage(matched, true),
		EveningTotal:   timeOfDayTotal(matched, e.settings.EveningStartHour, e.settings.EveningEndHour),
	}

	warnings := e.registry.Evaluate(RuleInput{
		Records:  matched,
		Patterns: patterns,
		Settings: e.settings,
	})

	return domain.AnalysisReport{
		Summary:  fmt.Sprintf("Spending pattern analysis for the past %d days.", window.Days),
		Window:   window,
		Patterns: patterns,
		Warnings: warnings,
	}, nil
}
