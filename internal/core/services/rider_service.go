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

// riderService manages delivery riders and their goods-on-credit balances.
type riderService struct {
	riderRepo portsrepo.RiderRepositoryFacade
}

// NewRiderService creates a new rider service.
func NewRiderService(riderRepo portsrepo.RiderRepositoryFacade) portssvc.RiderSvcFacade {
	return &riderService{riderRepo: riderRepo}
}

var _ portssvc.RiderSvcFacade = (*riderService)(nil)

func (s *riderService) CreateRider(ctx context.Context, req dto.CreateRiderRequest, actorUserID string) (*domain.Rider, error) {
	now := time.Now()
	rider := domain.Rider{
		RiderID:  uuid.NewString(),
		Name:     req.Name,
		Phone:    req.Phone,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.riderRepo.SaveRider(ctx, rider); err != nil {
		return nil, fmt.Errorf("failed to save rider: %w", err)
	}
	return &rider, nil
}

func (s *riderService) GetRiderByID(ctx context.Context, riderID string) (*domain.Rider, error) {
	rider, err := s.riderRepo.FindRiderByID(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider %s: %w", riderID, err)
	}
	return rider, nil
}

func (s *riderService) ListRiders(ctx context.Context, limit, offset int) ([]domain.Rider, error) {
	if limit <= 0 {
		limit = 20
	}
	riders, err := s.riderRepo.ListRiders(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list riders: %w", err)
	}
	return riders, nil
}

func (s *riderService) ListRiderPayments(ctx context.Context, riderID string) ([]domain.RiderPayment, error) {
	if _, err := s.riderRepo.FindRiderByID(ctx, riderID); err != nil {
		return nil, fmt.Errorf("failed to get rider %s: %w", riderID, err)
	}
	payments, err := s.riderRepo.ListRiderPayments(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for rider %s: %w", riderID, err)
	}
	return payments, nil
}

// AddCredit records goods going out to a rider on credit.
func (s *riderService) AddCredit(ctx context.Context, riderID string, req dto.AdjustRiderCreditRequest, actorUserID string) (*domain.Rider, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: credit amount must be positive", apperrors.ErrValidation)
	}

	rider, err := s.riderRepo.FindRiderByID(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider %s: %w", riderID, err)
	}
	if !rider.IsActive {
		return nil, fmt.Errorf("%w: rider %s is inactive", apperrors.ErrConflict, riderID)
	}

	if err := s.riderRepo.AdjustCredit(ctx, riderID, req.Amount, actorUserID); err != nil {
		return nil, fmt.Errorf("failed to adjust credit for rider %s: %w", riderID, err)
	}

	rider.CreditBalance = rider.CreditBalance.Add(req.Amount)
	rider.LastUpdatedAt = time.Now()
	rider.LastUpdatedBy = actorUserID

	logger.Info("Rider credit added",
		slog.String("rider_id", riderID),
		slog.String("amount", req.Amount.String()),
		slog.String("balance", rider.CreditBalance.String()))
	return rider, nil
}

// RecordPayment records a rider's payment and reduces their credit balance
// in one transaction. Overpayment is rejected.
func (s *riderService) RecordPayment(ctx context.Context, riderID string, req dto.RiderPaymentRequest, actorUserID string) (*domain.RiderPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	rider, err := s.riderRepo.FindRiderByID(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider %s: %w", riderID, err)
	}
	if req.Amount.GreaterThan(rider.CreditBalance) {
		return nil, fmt.Errorf("%w: payment %s exceeds outstanding credit %s",
			apperrors.ErrValidation, req.Amount.String(), rider.CreditBalance.String())
	}

	now := time.Now()
	payment := domain.RiderPayment{
		RiderPaymentID: uuid.NewString(),
		RiderID:        riderID,
		Amount:         req.Amount,
		PaymentDate:    req.PaymentDate,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.riderRepo.SaveRiderPaymentAndReduceCredit(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment for rider %s: %w", riderID, err)
	}

	logger.Info("Rider payment recorded",
		slog.String("rider_id", riderID),
		slog.String("payment_id", payment.RiderPaymentID),
		slog.String("amount", req.Amount.String()))
	return &payment, nil
}
