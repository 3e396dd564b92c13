package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the database row for an operating expense.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	ExpenseDate time.Time       `db:"expense_date"`
	Description string          `db:"description"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
