package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/spend-atlas/pkg/models/store"
)

// Store supports both ingestion (Add) and read (GetSince) of expense rows.
type Store interface {
	Add(ctx context.Context, rows []store.ExpenseRow) error
	GetSince(ctx context.Context, userID string, since time.Time) ([]store.ExpenseRow, error)
}

type expenseStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &expenseStore{db: db}, nil
}

func (s *expenseStore) Add(ctx context.Context, rows []store.ExpenseRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := `
		INSERT INTO expenses (id, user_id, category_id, amount, spent_at)
		VALUES (?, ?, ?, ?, ?)`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row.ID,
			row.UserID,
			row.CategoryID,
			row.Amount,
			row.SpentAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert expense %q: %w", row.ID, err)
		}
	}
	return nil
}

// GetSince returns every expense for the user with spent_at >= since.
// Ordering is irrelevant to the analysis engine; rows come back newest first
// purely for the raw listing endpoint.
func (s *expenseStore) GetSince(ctx context.Context, userID string, since time.Time) ([]store.ExpenseRow, error) {
	logger := zerolog.Ctx(ctx)

	query := `
		SELECT id, user_id, category_id, amount, spent_at
		FROM expenses
		WHERE user_id = ? AND spent_at >= ?
		ORDER BY spent_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("expenses query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close expense query rows")
		}
	}(rows)

	var result []store.ExpenseRow
	for rows.Next() {
		var row store.ExpenseRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.CategoryID, &row.Amount, &row.SpentAt); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}

	return result, nil
}
