package store

import "time"

// ExpenseRow is the storage shape of an expense record. Amounts are kept
// as exact decimal strings so nothing is lost between SQLite and the
// domain's decimal type.
type ExpenseRow struct {
	ID         string
	UserID     string
	CategoryID string
	Amount     string
	SpentAt    time.Time
}
