package expense

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/spend-atlas/pkg/models/store"
	"github.com/de-tools/spend-atlas/pkg/store/sqlite"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: s,
	}
}

func row(id, userID string, amount string, spentAt time.Time) store.ExpenseRow {
	return store.ExpenseRow{
		ID:         id,
		UserID:     userID,
		CategoryID: "dining_out",
		Amount:     amount,
		SpentAt:    spentAt,
	}
}

func TestExpenseStore_Add(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	spentAt := time.Date(2025, 6, 2, 19, 30, 0, 0, time.UTC)

	t.Run("success - add rows", func(t *testing.T) {
		rows := []store.ExpenseRow{
			row("e1", "u1", "1200.50", spentAt),
			row("e2", "u1", "340", spentAt.Add(2*time.Hour)),
		}

		err := f.store.Add(ctx, rows)
		require.NoError(t, err)

		var count int
		err = f.db.QueryRow("SELECT COUNT(*) FROM expenses WHERE user_id = ?", "u1").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("success - empty rows", func(t *testing.T) {
		err := f.store.Add(ctx, nil)
		require.NoError(t, err)
	})

	t.Run("error - duplicate id", func(t *testing.T) {
		rows := []store.ExpenseRow{row("dup", "u1", "10", spentAt)}

		err := f.store.Add(ctx, rows)
		require.NoError(t, err)

		err = f.store.Add(ctx, rows)
		assert.Error(t, err)
	})
}

func TestExpenseStore_GetSince(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	seed := []store.ExpenseRow{
		row("old", "u1", "50", base.AddDate(0, 0, -10)),
		row("in-window-1", "u1", "100.25", base.AddDate(0, 0, 5)),
		row("in-window-2", "u1", "200", base.AddDate(0, 0, 20)),
		row("other-user", "u2", "999", base.AddDate(0, 0, 5)),
	}
	require.NoError(t, f.store.Add(ctx, seed))

	t.Run("filters by user and since date", func(t *testing.T) {
		rows, err := f.store.GetSince(ctx, "u1", base)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		ids := []string{rows[0].ID, rows[1].ID}
		assert.ElementsMatch(t, []string{"in-window-1", "in-window-2"}, ids)
		for _, r := range rows {
			assert.Equal(t, "u1", r.UserID)
			assert.False(t, r.SpentAt.Before(base))
		}
	})

	t.Run("includes a record exactly at the boundary", func(t *testing.T) {
		require.NoError(t, f.store.Add(ctx, []store.ExpenseRow{row("boundary", "u3", "10", base)}))

		rows, err := f.store.GetSince(ctx, "u3", base)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "boundary", rows[0].ID)
	})

	t.Run("no records is an empty result, not an error", func(t *testing.T) {
		rows, err := f.store.GetSince(ctx, "nobody", base)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("round-trips the exact amount string", func(t *testing.T) {
		rows, err := f.store.GetSince(ctx, "u1", base)
		require.NoError(t, err)
		for _, r := range rows {
			if r.ID == "in-window-1" {
				assert.Equal(t, "100.25", r.Amount)
			}
		}
	})
}
