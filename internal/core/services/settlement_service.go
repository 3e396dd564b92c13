package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/payroll"
)

// settlementService runs the salary settlement workflow: the pure preview
// computation and the transactional commit. Commits for the same staff
// member are serialized through an in-process lock registry; the repository
// adds a row-level guard so two processes cannot double-settle either.
type settlementService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	loanRepo    portsrepo.LoanRepositoryFacade
	staffSvc    portssvc.StaffSvcFacade

	mu    sync.Mutex
	locks map[string]*sync.Mutex // keyed by StaffRef.Key()
}

// NewSettlementService creates a new settlement service.
func NewSettlementService(paymentRepo portsrepo.PaymentRepositoryFacade, loanRepo portsrepo.LoanRepositoryFacade, staffSvc portssvc.StaffSvcFacade) portssvc.SettlementSvcFacade {
	return &settlementService{
		paymentRepo: paymentRepo,
		loanRepo:    loanRepo,
		staffSvc:    staffSvc,
		locks:       make(map[string]*sync.Mutex),
	}
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

// staffLock returns the mutex serializing settlements for one staff member.
// Locks are never evicted; the registry grows with the number of staff ever
// settled, which is small.
func (s *settlementService) staffLock(staff domain.StaffRef) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[staff.Key()]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[staff.Key()] = lock
	}
	return lock
}

// PreviewSettlement computes a settlement for display. Read-only: nothing is
// persisted, and a negative net comes back as-is for the dashboard to show.
func (s *settlementService) PreviewSettlement(ctx context.Context, staff domain.StaffRef, overrides *domain.SettlementOverrides) (domain.SettlementResult, []domain.LoanRecord, error) {
	profile, err := s.staffSvc.GetCompensationProfile(ctx, staff)
	if err != nil {
		return domain.SettlementResult{}, nil, err
	}

	unpaidLoans, err := s.loanRepo.ListLoansByStaff(ctx, staff, true)
	if err != nil {
		return domain.SettlementResult{}, nil, fmt.Errorf("failed to list unpaid loans for %s: %w", staff.Key(), err)
	}

	result := payroll.ComputeSettlement(*profile, unpaidLoans, overrides)
	return result, unpaidLoans, nil
}

// SettlePayment commits a settlement. The amounts are recomputed from
// current state under the staff member's lock; client-supplied figures are
// never trusted. The payment insert and the loan updates happen in one
// database transaction.
func (s *settlementService) SettlePayment(ctx context.Context, staff domain.StaffRef, req dto.SettlePaymentRequest, actorUserID string) (*domain.PaymentRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if req.PaymentDate.IsZero() {
		return nil, fmt.Errorf("%w: payment date is required", apperrors.ErrInvalidSettlement)
	}
	if req.SalaryPeriod == "" {
		return nil, fmt.Errorf("%w: salary period is required", apperrors.ErrValidation)
	}

	lock := s.staffLock(staff)
	lock.Lock()
	defer lock.Unlock()

	profile, err := s.staffSvc.GetCompensationProfile(ctx, staff)
	if err != nil {
		return nil, err
	}

	unpaidLoans, err := s.loanRepo.ListLoansByStaff(ctx, staff, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid loans for %s: %w", staff.Key(), err)
	}

	overrides := req.Overrides.ToDomainOverrides()
	result := payroll.ComputeSettlement(*profile, unpaidLoans, overrides)

	if err := payroll.ValidateForCommit(*profile, result, overrides); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidSettlement, err)
	}

	loanIDs := make([]string, len(unpaidLoans))
	for i, loan := range unpaidLoans {
		loanIDs[i] = loan.LoanID
	}

	now := time.Now()
	payment := domain.PaymentRecord{
		PaymentID:       uuid.NewString(),
		Staff:           staff,
		GrossAmount:     result.GrossAmount,
		TaxAmount:       result.TaxAmount,
		PensionAmount:   result.PensionAmount,
		OtherDeductions: result.OtherDeductions,
		LoanDeduction:   result.LoanDeduction,
		TotalDeductions: result.TotalDeductions,
		NetAmount:       result.NetAmount,
		SalaryPeriod:    req.SalaryPeriod,
		PaymentDate:     req.PaymentDate,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		Status:          domain.PaymentCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.paymentRepo.SavePaymentAndMarkLoans(ctx, payment, loanIDs); err != nil {
		if errors.Is(err, apperrors.ErrConcurrentModification) {
			logger.Warn("Settlement aborted, unpaid loan set changed during commit",
				slog.String("staff", staff.Key()))
			return nil, err
		}
		return nil, fmt.Errorf("failed to commit settlement for %s: %w", staff.Key(), err)
	}

	logger.Info("Settlement committed",
		slog.String("payment_id", payment.PaymentID),
		slog.String("staff", staff.Key()),
		slog.String("salary_period", req.SalaryPeriod),
		slog.String("net_amount", utils.FormatMoney(result.NetAmount)),
		slog.Int("loans_cleared", len(loanIDs)))
	return &payment, nil
}

func (s *settlementService) GetPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}
	return payment, nil
}

func (s *settlementService) ListPayments(ctx context.Context, staff domain.StaffRef, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if err := s.staffSvc.ResolveStaff(ctx, staff); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	payments, nextToken, err := s.paymentRepo.ListPaymentsByStaff(ctx, staff, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for %s: %w", staff.Key(), err)
	}

	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	}, nil
}
