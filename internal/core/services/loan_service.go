package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
)

// loanService manages salary advances. Loans are only ever marked paid by
// the settlement workflow, never here.
type loanService struct {
	loanRepo portsrepo.LoanRepositoryFacade
	staffSvc portssvc.StaffSvcFacade
}

// NewLoanService creates a new loan service.
func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade, staffSvc portssvc.StaffSvcFacade) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: loanRepo, staffSvc: staffSvc}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) GrantLoan(ctx context.Context, staff domain.StaffRef, req dto.GrantLoanRequest, actorUserID string) (*domain.LoanRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.staffSvc.ResolveStaff(ctx, staff); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: loan amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	loan := domain.LoanRecord{
		LoanID:   uuid.NewString(),
		Staff:    staff,
		Amount:   req.Amount,
		LoanDate: req.LoanDate,
		Reason:   req.Reason,
		IsPaid:   false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}
	logger.Info("Loan granted",
		slog.String("loan_id", loan.LoanID),
		slog.String("staff", staff.Key()),
		slog.String("amount", req.Amount.String()))
	return &loan, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.LoanRecord, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan %s: %w", loanID, err)
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, staff domain.StaffRef, unpaidOnly bool) ([]domain.LoanRecord, error) {
	if err := s.staffSvc.ResolveStaff(ctx, staff); err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.ListLoansByStaff(ctx, staff, unpaidOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans for %s: %w", staff.Key(), err)
	}
	return loans, nil
}
