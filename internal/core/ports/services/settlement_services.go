package services

import (
	"context"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
)

// SettlementSvcFacade defines the salary settlement workflow: the pure
// preview computation and the transactional commit that creates a payment
// record and clears the recovered loans.
type SettlementSvcFacade interface {
	// PreviewSettlement computes a settlement for display. Pure read: no
	// state changes, safe to call on every form edit. A negative net is a
	// valid preview result.
	PreviewSettlement(ctx context.Context, staff domain.StaffRef, overrides *domain.SettlementOverrides) (domain.SettlementResult, []domain.LoanRecord, error)

	// SettlePayment recomputes the settlement under the staff member's
	// settlement lock, validates it, persists the payment record, and marks
	// the recovered loans paid, all-or-nothing. Returns
	// apperrors.ErrInvalidSettlement on validation failure and
	// apperrors.ErrConcurrentModification when the unpaid-loan set changed
	// underneath the commit.
	SettlePayment(ctx context.Context, staff domain.StaffRef, req dto.SettlePaymentRequest, actorUserID string) (*domain.PaymentRecord, error)

	// GetPayment retrieves a payment record by ID.
	GetPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)

	// ListPayments retrieves a paginated list of payment records for a staff
	// reference.
	ListPayments(ctx context.Context, staff domain.StaffRef, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// LoanSvcFacade defines the service operations for staff loans.
type LoanSvcFacade interface {
	GrantLoan(ctx context.Context, staff domain.StaffRef, req dto.GrantLoanRequest, actorUserID string) (*domain.LoanRecord, error)
	GetLoanByID(ctx context.Context, loanID string) (*domain.LoanRecord, error)
	ListLoans(ctx context.Context, staff domain.StaffRef, unpaidOnly bool) ([]domain.LoanRecord, error)
}
