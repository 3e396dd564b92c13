package repositories

import (
	"context"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
)

// PaymentReader defines read operations for payment records
type PaymentReader interface {
	// FindPaymentByID retrieves a payment record by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)

	// ListPaymentsByStaff retrieves a paginated list of payment records for
	// a staff reference using token-based pagination, newest first.
	// It returns the records, a token for the next page, and an error.
	ListPaymentsByStaff(ctx context.Context, staff domain.StaffRef, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error)
}

// PaymentWriter defines write operations for payment records
type PaymentWriter interface {
	// SavePaymentAndMarkLoans persists the payment record and marks the
	// settled loans paid within one database transaction. If any listed
	// loan is no longer unpaid the whole transaction rolls back and
	// apperrors.ErrConcurrentModification is returned: a payment record is
	// never created without its loans being cleared, and vice versa.
	SavePaymentAndMarkLoans(ctx context.Context, payment domain.PaymentRecord, loanIDs []string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
