package services

import (
	"context"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
)

// DebtSvcFacade defines the service operations for company debts and their
// reconciliation ledger.
type DebtSvcFacade interface {
	CreateDebt(ctx context.Context, staff domain.StaffRef, req dto.CreateDebtRequest, actorUserID string) (*domain.CompanyDebt, error)
	GetDebtByID(ctx context.Context, debtID string) (*domain.CompanyDebt, error)
	ListDebts(ctx context.Context, staff domain.StaffRef) ([]domain.CompanyDebt, error)
	ListDebtHistory(ctx context.Context, debtID string) ([]domain.DebtHistoryEntry, error)

	// ReconcileDebt appends a ledger entry, derives the new outstanding
	// balance and status, and persists entry and debt atomically.
	ReconcileDebt(ctx context.Context, debtID string, req dto.AppendDebtEntryRequest, actorUserID string) (*dto.ReconcileDebtResponse, error)

	// WriteOffDebt applies the terminal manual override, recording an
	// audited ledger entry rather than silently flipping the status.
	WriteOffDebt(ctx context.Context, debtID string, req dto.WriteOffDebtRequest, actorUserID string) (*domain.CompanyDebt, error)
}
