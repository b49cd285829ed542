package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/spend-atlas/pkg/models/domain"
)

func patterns(weekday, weekend string) domain.SpendingPatterns {
	return domain.SpendingPatterns{
		WeekdayAverage: decimal.RequireFromString(weekday),
		WeekendAverage: decimal.RequireFromString(weekend),
	}
}

func catRec(category, amount string, spentAt time.Time) domain.ExpenseRecord {
	r := rec(amount, spentAt)
	r.CategoryID = category
	return r
}

func TestHighCategorySpendingRule(t *testing.T) {
	settings := DefaultSettings()
	rule := HighCategorySpendingRule{}

	t.Run("fires when share and absolute floor are both exceeded", func(t *testing.T) {
		// dining 20000 of 100000 total: share 0.20 > 0.15,
		// floor = (500+500)/2 * 30 * 0.5 = 7500 < 20000.
		records := []domain.ExpenseRecord{
			catRec("dining_out", "20000", at(2, 12, 0)),
			catRec("groceries", "50000", at(3, 12, 0)),
			catRec("transport", "30000", at(4, 12, 0)),
		}

		w := rule.Evaluate(RuleInput{
			Records:  records,
			Patterns: patterns("500", "500"),
			Settings: settings,
		})

		require.NotNil(t, w)
		assert.Equal(t, domain.WarningHighCategorySpending, w.Kind)
		assert.Equal(t, 20, w.Data["percentage"])
		assert.Equal(t, "dining out", w.Data["category"])
	})

	t.Run("quiet when share is at or below the ratio threshold", func(t *testing.T) {
		records := []domain.ExpenseRecord{
			catRec("dining_out", "10000", at(2, 12, 0)),
			catRec("groceries", "90000", at(3, 12, 0)),
		}

		w := rule.Evaluate(RuleInput{
			Records:  records,
			Patterns: patterns("500", "500"),
			Settings: settings,
		})

		assert.Nil(t, w)
	})

	t.Run("quiet when the absolute floor keeps a skewed ratio from firing", func(t *testing.T) {
		// share 0.20 but floor = (3000+3000)/2 * 30 * 0.5 = 45000 > 20000.
		records := []domain.ExpenseRecord{
			catRec("dining_out", "20000", at(2, 12, 0)),
			catRec("groceries", "80000", at(3, 12, 0)),
		}

		w := rule.Evaluate(RuleInput{
			Records:  records,
			Patterns: patterns("3000", "3000"),
			Settings: settings,
		})

		assert.Nil(t, w)
	})

	t.Run("quiet on zero total spending", func(t *testing.T) {
		w := rule.Evaluate(RuleInput{
			Records:  nil,
			Patterns: patterns("0", "0"),
			Settings: settings,
		})

		assert.Nil(t, w)
	})
}

func TestWeekendExcessRule(t *testing.T) {
	settings := DefaultSettings()
	rule := WeekendExcessRule{}

	t.Run("fires above the multiplier with the absolute difference", func(t *testing.T) {
		w := rule.Evaluate(RuleInput{
			Patterns: patterns("1000", "2000"),
			Settings: settings,
		})

		require.NotNil(t, w)
		assert.Equal(t, domain.WarningWeekendExcess, w.Kind)
		difference, ok := w.Data["difference"].(decimal.Decimal)
		require.True(t, ok)
		assert.True(t, difference.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("quiet at or below the multiplier", func(t *testing.T) {
		w := rule.Evaluate(RuleInput{
			Patterns: patterns("1000", "1400"),
			Settings: settings,
		})
		assert.Nil(t, w)

		// Exactly 1.5x is not an excess.
		w = rule.Evaluate(RuleInput{
			Patterns: patterns("1000", "1500"),
			Settings: settings,
		})
		assert.Nil(t, w)
	})

	t.Run("quiet when there is no weekday baseline", func(t *testing.T) {
		w := rule.Evaluate(RuleInput{
			Patterns: patterns("0", "5000"),
			Settings: settings,
		})
		assert.Nil(t, w)
	})
}

func TestSpecificTimePatternRule(t *testing.T) {
	settings := DefaultSettings()
	rule := SpecificTimePatternRule{}

	// 2025-06-04 is a Wednesday.
	wednesdayEvening := at(4, 19, 0)

	t.Run("fires when the slot total exceeds the threshold", func(t *testing.T) {
		records := []domain.ExpenseRecord{
			catRec("convenience", "7000", wednesdayEvening),
			catRec("takeout", "5000", at(4, 21, 30)),
		}

		w := rule.Evaluate(RuleInput{
			Records:  records,
			Settings: settings,
		})

		require.NotNil(t, w)
		assert.Equal(t, domain.WarningSpecificTimePattern, w.Kind)
		amount, ok := w.Data["amount"].(decimal.Decimal)
		require.True(t, ok)
		assert.True(t, amount.Equal(decimal.NewFromInt(12000)))
	})

	t.Run("quiet below the threshold", func(t *testing.T) {
		records := []domain.ExpenseRecord{
			catRec("convenience", "9000", wednesdayEvening),
		}

		w := rule.Evaluate(RuleInput{Records: records, Settings: settings})
		assert.Nil(t, w)
	})

	t.Run("ignores the watched weekday before the configured hour", func(t *testing.T) {
		records := []domain.ExpenseRecord{
			catRec("convenience", "12000", at(4, 17, 0)), // Wednesday afternoon
			catRec("convenience", "1", at(4, 18, 0)),
		}

		w := rule.Evaluate(RuleInput{Records: records, Settings: settings})
		assert.Nil(t, w)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("default registry keeps the documented order", func(t *testing.T) {
		registry := DefaultRegistry()
		assert.Equal(t, []domain.WarningKind{
			domain.WarningHighCategorySpending,
			domain.WarningWeekendExcess,
			domain.WarningSpecificTimePattern,
		}, registry.Kinds())
	})

	t.Run("rejects duplicate kinds", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register(WeekendExcessRule{}))
		assert.Error(t, registry.Register(WeekendExcessRule{}))
	})

	t.Run("rejects nil rules", func(t *testing.T) {
		registry := NewRegistry()
		assert.Error(t, registry.Register(nil))
	})
}
