package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/de-tools/spend-atlas/pkg/adapters"
	"github.com/de-tools/spend-atlas/pkg/models/domain"
	"github.com/de-tools/spend-atlas/pkg/models/store"
	expensestore "github.com/de-tools/spend-atlas/pkg/store/sqlite/expense"
)

// Service is the record-store collaborator the analysis boundary depends
// on: it persists new expenses and fetches a user's records since a date.
// A store failure surfaces as an error, never as an empty record set.
type Service interface {
	Record(ctx context.Context, record domain.ExpenseRecord) (domain.ExpenseRecord, error)
	GetRecordsSince(ctx context.Context, userID string, since time.Time) ([]domain.ExpenseRecord, error)
}

type service struct {
	store expensestore.Store
}

func NewService(store expensestore.Store) Service {
	return &service{store: store}
}

func (s *service) Record(ctx context.Context, record domain.ExpenseRecord) (domain.ExpenseRecord, error) {
	if record.UserID == "" {
		return domain.ExpenseRecord{}, fmt.Errorf("%w: expense has no user", domain.ErrInvalidInput)
	}
	if record.CategoryID == "" {
		return domain.ExpenseRecord{}, fmt.Errorf("%w: expense has no category", domain.ErrInvalidInput)
	}
	if record.Amount.IsNegative() {
		return domain.ExpenseRecord{}, fmt.Errorf("%w: expense amount %s is negative",
			domain.ErrInvalidInput, record.Amount)
	}
	if record.SpentAt.IsZero() {
		return domain.ExpenseRecord{}, fmt.Errorf("%w: expense has no timestamp", domain.ErrInvalidInput)
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	row := adapters.MapDomainExpenseToStore(record)
	if err := s.store.Add(ctx, []store.ExpenseRow{row}); err != nil {
		return domain.ExpenseRecord{}, fmt.Errorf("persist expense: %w", err)
	}

	return record, nil
}

func (s *service) GetRecordsSince(ctx context.Context, userID string, since time.Time) ([]domain.ExpenseRecord, error) {
	rows, err := s.store.GetSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses for user %q: %w", userID, err)
	}

	records := make([]domain.ExpenseRecord, 0, len(rows))
	for _, row := range rows {
		record, err := adapters.MapStoreExpenseToDomain(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
