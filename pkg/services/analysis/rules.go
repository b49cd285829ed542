package analysis

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/de-tools/spend-atlas/pkg/models/domain"
)

// RuleInput is the immutable snapshot every rule evaluates against. Rules
// never see each other's output and must not mutate the record slice.
type RuleInput struct {
	Records  []domain.ExpenseRecord
	Patterns domain.SpendingPatterns
	Settings Settings
}

// Rule inspects a spending snapshot and either emits a warning or nil.
type Rule interface {
	Kind() domain.WarningKind
	Evaluate(in RuleInput) *domain.Warning
}

// Registry holds warning rules in a fixed evaluation order, so the warnings
// list is deterministic regardless of input record order. New rules are
// appended without touching existing ones.
type Registry struct {
	rules []Rule
}

func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the shipped rule set in its documented order:
// HighCategorySpending, WeekendExcess, SpecificTimePattern.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(HighCategorySpendingRule{})
	_ = r.Register(WeekendExcessRule{})
	_ = r.Register(SpecificTimePatternRule{})
	return r
}

func (r *Registry) Register(rule Rule) error {
	if rule == nil {
		return fmt.Errorf("rule cannot be nil")
	}
	for _, existing := range r.rules {
		if existing.Kind() == rule.Kind() {
			return fmt.Errorf("rule %q is already registered", rule.Kind())
		}
	}
	r.rules = append(r.rules, rule)
	return nil
}

func (r *Registry) Kinds() []domain.WarningKind {
	kinds := make([]domain.WarningKind, 0, len(r.rules))
	for _, rule := range r.rules {
		kinds = append(kinds, rule.Kind())
	}
	return kinds
}

// Evaluate runs every rule in registration order and collects the warnings
// that triggered. A rule that stays quiet contributes nothing.
func (r *Registry) Evaluate(in RuleInput) []domain.Warning {
	warnings := make([]domain.Warning, 0)
	for _, rule := range r.rules {
		if w := rule.Evaluate(in); w != nil {
			warnings = append(warnings, *w)
		}
	}
	return warnings
}

// HighCategorySpendingRule flags the discretionary category when it both
// consumes a disproportionate share of total spending and is materially
// large in absolute terms. The absolute floor (overall daily average scaled
// to a month and halved) keeps a skewed ratio over a tiny total from firing.
type HighCategorySpendingRule struct{}

func (HighCategorySpendingRule) Kind() domain.WarningKind {
	return domain.WarningHighCategorySpending
}

func (HighCategorySpendingRule) Evaluate(in RuleInput) *domain.Warning {
	total := totalSpending(in.Records)
	if !total.IsPositive() {
		return nil
	}

	categorySpend := categoryTotal(in.Records, in.Settings.DiscretionaryCategoryID)
	share := categorySpend.Div(total)
	if share.LessThanOrEqual(decimal.NewFromFloat(in.Settings.CategoryRatioThreshold)) {
		return nil
	}

	overallAvg := in.Patterns.WeekdayAverage.
		Add(in.Patterns.WeekendAverage).
		Div(decimal.NewFromInt(2))
	floor := overallAvg.
		Mul(decimal.NewFromInt(int64(in.Settings.CategoryFloorDays))).
		Mul(decimal.NewFromFloat(in.Settings.CategoryFloorFactor))
	if categorySpend.LessThanOrEqual(floor) {
		return nil
	}

	percentage := int(share.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	label := in.Settings.DiscretionaryCategoryLabel
	return &domain.Warning{
		Kind: domain.WarningHighCategorySpending,
		Message: fmt.Sprintf(
			"Spending on %s makes up %d%% of your total over this period. This is an early sign of a budget overrun.",
			label, percentage),
		Data: map[string]any{
			"percentage": percentage,
			"category":   label,
		},
	}
}

// WeekendExcessRule fires when the weekend daily average outruns the
// weekday one by more than the configured multiplier.
type WeekendExcessRule struct{}

func (WeekendExcessRule) Kind() domain.WarningKind {
	return domain.WarningWeekendExcess
}

func (WeekendExcessRule) Evaluate(in RuleInput) *domain.Warning {
	weekday := in.Patterns.WeekdayAverage
	weekend := in.Patterns.WeekendAverage
	if !weekday.IsPositive() {
		return nil
	}
	limit := weekday.Mul(decimal.NewFromFloat(in.Settings.WeekendExcessMultiplier))
	if weekend.LessThanOrEqual(limit) {
		return nil
	}

	difference := weekend.Sub(weekday)
	return &domain.Warning{
		Kind: domain.WarningWeekendExcess,
		Message: fmt.Sprintf(
			"Your average weekend spending (%s) is more than %.1fx the weekday average. Worth re-evaluating weekend habits.",
			weekend.StringFixed(2), in.Settings.WeekendExcessMultiplier),
		Data: map[string]any{
			"difference": difference,
		},
	}
}

// SpecificTimePatternRule watches a habitual weekday/hour slot (Wednesday
// evenings by default) and fires once its total passes the configured
// threshold.
type SpecificTimePatternRule struct{}

func (SpecificTimePatternRule) Kind() domain.WarningKind {
	return domain.WarningSpecificTimePattern
}

func (SpecificTimePatternRule) Evaluate(in RuleInput) *domain.Warning {
	total := totalSpending(in.Records)
	if !total.IsPositive() {
		return nil
	}

	targetSpend := decimal.Zero
	for _, r := range in.Records {
		if r.SpentAt.Weekday() == in.Settings.TimePatternWeekday &&
			hourOfDay(r.SpentAt) >= in.Settings.TimePatternHour {
			targetSpend = targetSpend.Add(r.Amount)
		}
	}

	if targetSpend.LessThanOrEqual(decimal.NewFromFloat(in.Settings.TimePatternThreshold)) {
		return nil
	}

	return &domain.Warning{
		Kind: domain.WarningSpecificTimePattern,
		Message: fmt.Sprintf(
			"Spending on %s from %02d:00 on is noticeably high. Check for habitual convenience or takeout purchases.",
			in.Settings.TimePatternWeekday, in.Settings.TimePatternHour),
		Data: map[string]any{
			"amount": targetSpend,
		},
	}
}
