package repositories

import (
	"context"
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
)

// SaleReader defines read operations for sale records
type SaleReader interface {
	// FindSaleByID retrieves a sale with its line items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)

	// ListSales retrieves sales within a date range, newest first, with
	// their line items.
	ListSales(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.SaleRecord, error)
}

// SaleWriter defines write operations for sale records
type SaleWriter interface {
	// SaveSale persists a sale and all of its line items atomically.
	SaveSale(ctx context.Context, sale domain.SaleRecord) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
