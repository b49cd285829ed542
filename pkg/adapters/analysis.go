package adapters

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/de-tools/spend-atlas/pkg/models/api"
	"github.com/de-tools/spend-atlas/pkg/models/domain"
)

func MapSpendingPatternsDomainToApi(p domain.SpendingPatterns) api.SpendingPatterns {
	return api.SpendingPatterns{
		WeekdayAverage: p.WeekdayAverage.StringFixed(2),
		WeekendAverage: p.WeekendAverage.StringFixed(2),
		EveningTotal:   p.EveningTotal.StringFixed(2),
	}
}

func MapWarningDomainToApi(w domain.Warning) api.Warning {
	out := api.Warning{
		Kind:    string(w.Kind),
		Message: w.Message,
	}

	if category, ok := w.Data["category"].(string); ok {
		out.Category = category
	}
	if percentage, ok := w.Data["percentage"].(int); ok {
		out.Percentage = &percentage
	}
	if difference, ok := w.Data["difference"].(decimal.Decimal); ok {
		out.Difference = difference.StringFixed(2)
	}
	if amount, ok := w.Data["amount"].(decimal.Decimal); ok {
		out.Amount = amount.StringFixed(2)
	}

	return out
}

func MapAnalysisReportDomainToApi(r domain.AnalysisReport, analyzedAt time.Time) api.AnalysisReport {
	warnings := make([]api.Warning, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		warnings = append(warnings, MapWarningDomainToApi(w))
	}

	return api.AnalysisReport{
		Status:     "success",
		Summary:    r.Summary,
		Patterns:   MapSpendingPatternsDomainToApi(r.Patterns),
		Warnings:   warnings,
		AnalyzedAt: analyzedAt,
	}
}
