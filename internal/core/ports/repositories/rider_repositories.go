package repositories

import (
	"context"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RiderReader defines read operations for riders
type RiderReader interface {
	// FindRiderByID retrieves a rider by their unique identifier.
	FindRiderByID(ctx context.Context, riderID string) (*domain.Rider, error)

	// ListRiders retrieves a page of riders.
	ListRiders(ctx context.Context, limit int, offset int) ([]domain.Rider, error)

	// ListRiderPayments retrieves payments a rider made, newest first.
	ListRiderPayments(ctx context.Context, riderID string) ([]domain.RiderPayment, error)
}

// RiderWriter defines write operations for riders
type RiderWriter interface {
	// SaveRider persists a new rider.
	SaveRider(ctx context.Context, rider domain.Rider) error

	// AdjustCredit atomically adds delta to the rider's credit balance
	// (positive when goods go out on credit).
	AdjustCredit(ctx context.Context, riderID string, delta decimal.Decimal, updatedBy string) error

	// SaveRiderPaymentAndReduceCredit persists the payment and reduces the
	// rider's credit balance in one database transaction.
	SaveRiderPaymentAndReduceCredit(ctx context.Context, payment domain.RiderPayment) error
}

// RiderRepositoryFacade combines all rider-related repository interfaces
type RiderRepositoryFacade interface {
	RiderReader
	RiderWriter
}
