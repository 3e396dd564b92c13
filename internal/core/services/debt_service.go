package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/payroll"
)

// debtService manages company debts and their append-only reconciliation
// ledger. Ledger appends for one debt are serialized in-process so the
// read-compute-write of the outstanding balance cannot interleave.
type debtService struct {
	debtRepo portsrepo.DebtRepositoryFacade
	staffSvc portssvc.StaffSvcFacade

	mu    sync.Mutex
	locks map[string]*sync.Mutex // keyed by DebtID
}

// NewDebtService creates a new debt service.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade, staffSvc portssvc.StaffSvcFacade) portssvc.DebtSvcFacade {
	return &debtService{
		debtRepo: debtRepo,
		staffSvc: staffSvc,
		locks:    make(map[string]*sync.Mutex),
	}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) debtLock(debtID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[debtID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[debtID] = lock
	}
	return lock
}

func (s *debtService) CreateDebt(ctx context.Context, staff domain.StaffRef, req dto.CreateDebtRequest, actorUserID string) (*domain.CompanyDebt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.staffSvc.ResolveStaff(ctx, staff); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: debt amount must be positive", apperrors.ErrValidation)
	}
	if req.DebtType != domain.OwedToCompany && req.DebtType != domain.OwedByCompany {
		return nil, fmt.Errorf("%w: unknown debt type %q", apperrors.ErrValidation, req.DebtType)
	}

	now := time.Now()
	debt := domain.CompanyDebt{
		DebtID:         uuid.NewString(),
		Staff:          staff,
		OriginalAmount: req.Amount,
		Outstanding:    req.Amount,
		DebtType:       req.DebtType,
		Status:         domain.DebtPending,
		Reason:         req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}
	logger.Info("Company debt recorded",
		slog.String("debt_id", debt.DebtID),
		slog.String("staff", staff.Key()),
		slog.String("debt_type", string(req.DebtType)),
		slog.String("amount", req.Amount.String()))
	return &debt, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, debtID string) (*domain.CompanyDebt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt %s: %w", debtID, err)
	}
	return debt, nil
}

func (s *debtService) ListDebts(ctx context.Context, staff domain.StaffRef) ([]domain.CompanyDebt, error) {
	if err := s.staffSvc.ResolveStaff(ctx, staff); err != nil {
		return nil, err
	}
	debts, err := s.debtRepo.ListDebtsByStaff(ctx, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for %s: %w", staff.Key(), err)
	}
	return debts, nil
}

func (s *debtService) ListDebtHistory(ctx context.Context, debtID string) ([]domain.DebtHistoryEntry, error) {
	if _, err := s.debtRepo.FindDebtByID(ctx, debtID); err != nil {
		return nil, fmt.Errorf("failed to get debt %s: %w", debtID, err)
	}
	entries, err := s.debtRepo.ListDebtHistory(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debt history for %s: %w", debtID, err)
	}
	return entries, nil
}

// ReconcileDebt appends a ledger entry against a debt, derives the new
// outstanding balance and status, and persists entry and debt atomically.
func (s *debtService) ReconcileDebt(ctx context.Context, debtID string, req dto.AppendDebtEntryRequest, actorUserID string) (*dto.ReconcileDebtResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidDebtTransactionType(req.TransactionType) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.TransactionType)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: entry amount must be positive", apperrors.ErrValidation)
	}

	lock := s.debtLock(debtID)
	lock.Lock()
	defer lock.Unlock()

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt %s: %w", debtID, err)
	}

	entry := domain.DebtHistoryEntry{
		EntryID:         uuid.NewString(),
		DebtID:          debtID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Reason:          req.Reason,
		RecordedAt:      time.Now(),
		RecordedBy:      actorUserID,
	}

	newOriginal, newOutstanding, newStatus, err := payroll.ApplyDebtEntry(*debt, entry)
	if err != nil {
		return nil, err
	}

	if err := s.debtRepo.AppendEntryAndUpdateDebt(ctx, entry, newOriginal, newOutstanding, newStatus, actorUserID); err != nil {
		return nil, fmt.Errorf("failed to append entry to debt %s: %w", debtID, err)
	}

	logger.Info("Debt reconciled",
		slog.String("debt_id", debtID),
		slog.String("transaction_type", string(req.TransactionType)),
		slog.String("outstanding", utils.FormatMoney(newOutstanding)),
		slog.String("status", string(newStatus)))
	return &dto.ReconcileDebtResponse{
		DebtID:         debtID,
		UpdatedBalance: newOutstanding,
		UpdatedStatus:  newStatus,
	}, nil
}

// WriteOffDebt applies the terminal manual override. The remaining balance
// is zeroed via an audited adjustment entry rather than silently flipped.
func (s *debtService) WriteOffDebt(ctx context.Context, debtID string, req dto.WriteOffDebtRequest, actorUserID string) (*domain.CompanyDebt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lock := s.debtLock(debtID)
	lock.Lock()
	defer lock.Unlock()

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt %s: %w", debtID, err)
	}
	if debt.Status == domain.DebtWrittenOff {
		return nil, fmt.Errorf("%w: debt %s is already written off", apperrors.ErrConflict, debtID)
	}
	if debt.Outstanding.IsZero() {
		return nil, fmt.Errorf("%w: debt %s has no outstanding balance to write off", apperrors.ErrConflict, debtID)
	}

	entry := domain.DebtHistoryEntry{
		EntryID:         uuid.NewString(),
		DebtID:          debtID,
		Amount:          debt.Outstanding,
		TransactionType: domain.DebtTxnAdjustment,
		Reason:          fmt.Sprintf("write-off: %s", req.Reason),
		RecordedAt:      time.Now(),
		RecordedBy:      actorUserID,
	}

	if err := s.debtRepo.AppendEntryAndUpdateDebt(ctx, entry, debt.OriginalAmount, decimal.Zero, domain.DebtWrittenOff, actorUserID); err != nil {
		return nil, fmt.Errorf("failed to write off debt %s: %w", debtID, err)
	}

	debt.Outstanding = decimal.Zero
	debt.Status = domain.DebtWrittenOff
	debt.LastUpdatedAt = entry.RecordedAt
	debt.LastUpdatedBy = actorUserID

	logger.Info("Debt written off",
		slog.String("debt_id", debtID),
		slog.String("written_off_by", actorUserID),
		slog.String("reason", req.Reason))
	return debt, nil
}
