package dto

import (
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettlementOverridesRequest carries optional per-settlement overrides.
type SettlementOverridesRequest struct {
	TaxRate         *decimal.Decimal `json:"taxRate,omitempty"`
	PensionRate     *decimal.Decimal `json:"pensionRate,omitempty"`
	OtherDeductions *decimal.Decimal `json:"otherDeductions,omitempty"`
}

// ToDomainOverrides converts the request overrides to the domain type.
// Returns nil when no field is set so callers can treat "no overrides"
// uniformly.
func (r *SettlementOverridesRequest) ToDomainOverrides() *domain.SettlementOverrides {
	if r == nil || (r.TaxRate == nil && r.PensionRate == nil && r.OtherDeductions == nil) {
		return nil
	}
	return &domain.SettlementOverrides{
		TaxRate:         r.TaxRate,
		PensionRate:     r.PensionRate,
		OtherDeductions: r.OtherDeductions,
	}
}

// PreviewSettlementRequest defines the payload for the interactive
// settlement preview. Recomputed on every rate change in the form.
type PreviewSettlementRequest struct {
	Overrides *SettlementOverridesRequest `json:"overrides,omitempty"`
}

// SettlementResponse mirrors domain.SettlementResult for clients, together
// with the loans that would be recovered.
type SettlementResponse struct {
	GrossAmount     decimal.Decimal `json:"grossAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	PensionAmount   decimal.Decimal `json:"pensionAmount"`
	OtherDeductions decimal.Decimal `json:"otherDeductions"`
	LoanDeduction   decimal.Decimal `json:"loanDeduction"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	UnpaidLoans     []LoanResponse  `json:"unpaidLoans"`
}

// ToSettlementResponse converts a settlement result and its loan set to the DTO.
func ToSettlementResponse(r domain.SettlementResult, loans []domain.LoanRecord) SettlementResponse {
	return SettlementResponse{
		GrossAmount:     r.GrossAmount,
		TaxAmount:       r.TaxAmount,
		PensionAmount:   r.PensionAmount,
		OtherDeductions: r.OtherDeductions,
		LoanDeduction:   r.LoanDeduction,
		TotalDeductions: r.TotalDeductions,
		NetAmount:       r.NetAmount,
		UnpaidLoans:     ToLoanResponses(loans),
	}
}

// SettlePaymentRequest defines the payload for committing a settlement.
type SettlePaymentRequest struct {
	Overrides       *SettlementOverridesRequest `json:"overrides,omitempty"`
	SalaryPeriod    string                      `json:"salaryPeriod" binding:"required,salaryperiod"`
	PaymentDate     time.Time                   `json:"paymentDate" binding:"required"`
	PaymentMethod   domain.PaymentMethod        `json:"paymentMethod" binding:"required"`
	ReferenceNumber string                      `json:"referenceNumber"`
	Notes           string                      `json:"notes"`
}
