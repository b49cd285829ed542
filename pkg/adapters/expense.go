package adapters

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/de-tools/spend-atlas/pkg/models/api"
	"github.com/de-tools/spend-atlas/pkg/models/domain"
	"github.com/de-tools/spend-atlas/pkg/models/store"
)

func MapStoreExpenseToDomain(row store.ExpenseRow) (domain.ExpenseRecord, error) {
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return domain.ExpenseRecord{}, fmt.Errorf("%w: expense %q has malformed amount %q",
			domain.ErrInvalidInput, row.ID, row.Amount)
	}

	return domain.ExpenseRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Amount:     amount,
		SpentAt:    row.SpentAt,
	}, nil
}

func MapDomainExpenseToStore(record domain.ExpenseRecord) store.ExpenseRow {
	return store.ExpenseRow{
		ID:         record.ID,
		UserID:     record.UserID,
		CategoryID: record.CategoryID,
		Amount:     record.Amount.String(),
		SpentAt:    record.SpentAt,
	}
}

func MapExpenseDomainToApi(record domain.ExpenseRecord) api.Expense {
	return api.Expense{
		ID:         record.ID,
		CategoryID: record.CategoryID,
		Amount:     record.Amount.StringFixed(2),
		SpentAt:    record.SpentAt,
	}
}
