package repositories

import (
	"context"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebtReader defines read operations for company debts
type DebtReader interface {
	// FindDebtByID retrieves a company debt by its unique identifier.
	FindDebtByID(ctx context.Context, debtID string) (*domain.CompanyDebt, error)

	// ListDebtsByStaff retrieves all debts for a staff reference.
	ListDebtsByStaff(ctx context.Context, staff domain.StaffRef) ([]domain.CompanyDebt, error)

	// ListDebtHistory retrieves the append-only ledger for a debt, oldest first.
	ListDebtHistory(ctx context.Context, debtID string) ([]domain.DebtHistoryEntry, error)
}

// DebtWriter defines write operations for company debts
type DebtWriter interface {
	// SaveDebt persists a new company debt.
	SaveDebt(ctx context.Context, debt domain.CompanyDebt) error

	// AppendEntryAndUpdateDebt appends a ledger entry and updates the
	// debt's original amount, outstanding balance, and status atomically,
	// so the ledger and the derived balance can never drift apart.
	AppendEntryAndUpdateDebt(ctx context.Context, entry domain.DebtHistoryEntry, newOriginal, newOutstanding decimal.Decimal, newStatus domain.DebtStatus, updatedBy string) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
