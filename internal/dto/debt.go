package dto

import (
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the payload for recording a company debt.
type CreateDebtRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DebtType domain.DebtType `json:"debtType" binding:"required"`
	Reason   string          `json:"reason"`
}

// AppendDebtEntryRequest defines the payload for appending a ledger entry
// against a debt.
type AppendDebtEntryRequest struct {
	Amount          decimal.Decimal            `json:"amount" binding:"required"`
	TransactionType domain.DebtTransactionType `json:"transactionType" binding:"required"`
	Reason          string                     `json:"reason"`
}

// WriteOffDebtRequest defines the payload for the explicit write-off
// override. A reason is required because the override is audited.
type WriteOffDebtRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// DebtResponse defines the company debt data returned to clients.
type DebtResponse struct {
	DebtID         string            `json:"debtID"`
	Staff          domain.StaffRef   `json:"staff"`
	OriginalAmount decimal.Decimal   `json:"originalAmount"`
	Outstanding    decimal.Decimal   `json:"outstanding"`
	DebtType       domain.DebtType   `json:"debtType"`
	Status         domain.DebtStatus `json:"status"`
	Reason         string            `json:"reason"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ToDebtResponse converts a domain.CompanyDebt to DebtResponse DTO.
func ToDebtResponse(d *domain.CompanyDebt) DebtResponse {
	return DebtResponse{
		DebtID:         d.DebtID,
		Staff:          d.Staff,
		OriginalAmount: d.OriginalAmount,
		Outstanding:    d.Outstanding,
		DebtType:       d.DebtType,
		Status:         d.Status,
		Reason:         d.Reason,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDebtResponses converts a slice of domain.CompanyDebt to DTOs.
func ToDebtResponses(debts []domain.CompanyDebt) []DebtResponse {
	responses := make([]DebtResponse, len(debts))
	for i := range debts {
		responses[i] = ToDebtResponse(&debts[i])
	}
	return responses
}

// DebtEntryResponse defines a ledger entry returned to clients.
type DebtEntryResponse struct {
	EntryID         string                     `json:"entryID"`
	DebtID          string                     `json:"debtID"`
	Amount          decimal.Decimal            `json:"amount"`
	TransactionType domain.DebtTransactionType `json:"transactionType"`
	Reason          string                     `json:"reason"`
	RecordedAt      time.Time                  `json:"recordedAt"`
	RecordedBy      string                     `json:"recordedBy"`
}

// ToDebtEntryResponses converts a slice of ledger entries to DTOs.
func ToDebtEntryResponses(entries []domain.DebtHistoryEntry) []DebtEntryResponse {
	responses := make([]DebtEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = DebtEntryResponse{
			EntryID:         e.EntryID,
			DebtID:          e.DebtID,
			Amount:          e.Amount,
			TransactionType: e.TransactionType,
			Reason:          e.Reason,
			RecordedAt:      e.RecordedAt,
			RecordedBy:      e.RecordedBy,
		}
	}
	return responses
}

// ReconcileDebtResponse is returned after appending a ledger entry.
type ReconcileDebtResponse struct {
	DebtID         string            `json:"debtID"`
	UpdatedBalance decimal.Decimal   `json:"updatedBalance"`
	UpdatedStatus  domain.DebtStatus `json:"updatedStatus"`
}
