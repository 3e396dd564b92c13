package services

import (
	"context"
	"fmt"
	"log/slog"
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
)

// saleService records point-of-sale checkouts. Line and sale totals are
// computed here, never taken from the client, so a tampered cart cannot
// write a mismatched total.
type saleService struct {
	saleRepo portsrepo.SaleRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest, actorUserID string) (*domain.SaleRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a sale needs at least one item", apperrors.ErrValidation)
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	saleID := uuid.NewString()
	total := decimal.Zero
	items := make([]domain.SaleItem, len(req.Items))
	for i, item := range req.Items {
		if item.ItemName == "" {
			return nil, fmt.Errorf("%w: item name must not be empty", apperrors.ErrValidation)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for %q must be positive", apperrors.ErrValidation, item.ItemName)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price for %q must not be negative", apperrors.ErrValidation, item.ItemName)
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		items[i] = domain.SaleItem{
			SaleItemID: uuid.NewString(),
			SaleID:     saleID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  lineTotal,
		}
		total = total.Add(lineTotal)
	}

	now := time.Now()
	sale := domain.SaleRecord{
		SaleID:        saleID,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		SaleDate:      req.SaleDate,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}
	logger.Info("Sale recorded",
		slog.String("sale_id", saleID),
		slog.Int("item_count", len(items)),
		slog.String("total", utils.FormatMoney(total)))
	return &sale, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale %s: %w", saleID, err)
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) ([]domain.SaleRecord, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	// Default to the current month when no range is given.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)
	if params.From != nil {
		from = *params.From
	}
	if params.To != nil {
		to = *params.To
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}

	sales, err := s.saleRepo.ListSales(ctx, from, to, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
