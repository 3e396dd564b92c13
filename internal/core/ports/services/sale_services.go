package services

import (
	"context"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
)

// SaleSvcFacade defines the service operations for point-of-sale records.
type SaleSvcFacade interface {
	// RecordSale validates the cart, computes line and sale totals
	// server-side, and persists the sale with its items atomically.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest, actorUserID string) (*domain.SaleRecord, error)

	GetSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)
	ListSales(ctx context.Context, params dto.ListSalesParams) ([]domain.SaleRecord, error)
}
