package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is a single recorded expense. Records are value objects:
// the engine treats them as read-only and never mutates a record it was
// handed.
type ExpenseRecord struct {
	ID         string
	UserID     string
	CategoryID string
	Amount     decimal.Decimal
	SpentAt    time.Time
}

type Category struct {
	ID    string
	Label string
}
