package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/de-tools/spend-atlas/pkg/models/domain"
)

// dailyAverage returns the average amount spent per spending day within the
// weekday or weekend bucket. The divisor is the number of distinct calendar
// dates carrying at least one matching record, not the number of elapsed
// days in the window: the metric answers "how much on a typical day the
// user actually spends", and that divisor choice is load-bearing.
// Rounding happens once, on the final quotient.
func dailyAverage(records []domain.ExpenseRecord, weekendBucket bool) decimal.Decimal {
	total := decimal.Zero
	days := make(map[string]struct{})

	for _, r := range records {
		if isWeekend(r.SpentAt) != weekendBucket {
			continue
		}
		total = total.Add(r.Amount)
		days[calendarDate(r.SpentAt)] = struct{}{}
	}

	if len(days) == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(len(days)))).Round(2)
}

// timeOfDayTotal sums amounts spent in the half-open hour interval
// [startHour, endHour). A record at endHour:00 is excluded.
func timeOfDayTotal(records []domain.ExpenseRecord, startHour, endHour int) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		h := hourOfDay(r.SpentAt)
		if h >= startHour && h < endHour {
			total = total.Add(r.Amount)
		}
	}
	return total.Round(2)
}

func totalSpending(records []domain.ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

func categoryTotal(records []domain.ExpenseRecord, categoryID string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.CategoryID == categoryID {
			total = total.Add(r.Amount)
		}
	}
	return total
}
