package repositories

import (
	"context"
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
)

// ExpenseReader defines read operations for operating expenses
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.OperatingExpense, error)

	// ListExpenses retrieves expenses within a date range, newest first.
	ListExpenses(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.OperatingExpense, error)
}

// ExpenseWriter defines write operations for operating expenses
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.OperatingExpense) error

	// UpdateExpense persists changes to an existing expense.
	UpdateExpense(ctx context.Context, expense domain.OperatingExpense) error

	// MarkExpenseDeleted soft deletes an expense.
	MarkExpenseDeleted(ctx context.Context, expenseID string, deletedBy string, deletedAt time.Time) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
