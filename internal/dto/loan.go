package dto

import (
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GrantLoanRequest defines the payload for granting a salary advance.
type GrantLoanRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	LoanDate time.Time       `json:"loanDate" binding:"required"`
	Reason   string          `json:"reason"`
}

// LoanResponse defines the loan data returned to clients.
type LoanResponse struct {
	LoanID       string          `json:"loanID"`
	Staff        domain.StaffRef `json:"staff"`
	Amount       decimal.Decimal `json:"amount"`
	LoanDate     time.Time       `json:"loanDate"`
	Reason       string          `json:"reason"`
	IsPaid       bool            `json:"isPaid"`
	DeductedDate *time.Time      `json:"deductedDate,omitempty"`
}

// ToLoanResponse converts a domain.LoanRecord to LoanResponse DTO.
func ToLoanResponse(l *domain.LoanRecord) LoanResponse {
	return LoanResponse{
		LoanID:       l.LoanID,
		Staff:        l.Staff,
		Amount:       l.Amount,
		LoanDate:     l.LoanDate,
		Reason:       l.Reason,
		IsPaid:       l.IsPaid,
		DeductedDate: l.DeductedDate,
	}
}

// ToLoanResponses converts a slice of domain.LoanRecord to []LoanResponse.
func ToLoanResponses(loans []domain.LoanRecord) []LoanResponse {
	responses := make([]LoanResponse, len(loans))
	for i := range loans {
		responses[i] = ToLoanResponse(&loans[i])
	}
	return responses
}
