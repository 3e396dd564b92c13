package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
)

// LoanReader defines read operations for loan data
type LoanReader interface {
	// FindLoanByID retrieves a loan by its unique identifier.
	FindLoanByID(ctx context.Context, loanID string) (*domain.LoanRecord, error)

	// ListLoansByStaff retrieves loans for a staff reference, oldest first.
	// When unpaidOnly is true only loans with is_paid = false are returned.
	ListLoansByStaff(ctx context.Context, staff domain.StaffRef, unpaidOnly bool) ([]domain.LoanRecord, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	// SaveLoan persists a newly granted loan.
	SaveLoan(ctx context.Context, loan domain.LoanRecord) error

	// MarkLoansPaidInTx marks the given loans paid within the caller's
	// transaction, stamping deducted_date. Only rows still unpaid are
	// touched; the returned count lets the caller detect that the unpaid
	// set changed since it was read.
	MarkLoansPaidInTx(ctx context.Context, tx pgx.Tx, staff domain.StaffRef, loanIDs []string, deductedDate time.Time, updatedBy string, updatedAt time.Time) (int64, error)
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
