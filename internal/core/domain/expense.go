package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperatingExpense is a day-to-day business expense (flour, fuel, repairs).
type OperatingExpense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (e.g., UUID)
	Category    string          `json:"category"`  // free-form, e.g. "ingredients"
	Amount      decimal.Decimal `json:"amount"`    // > 0
	ExpenseDate time.Time       `json:"expenseDate"`
	Description string          `json:"description"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
