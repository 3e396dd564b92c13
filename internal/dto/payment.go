package dto

import (
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentResponse defines the payment record data returned to clients.
type PaymentResponse struct {
	PaymentID       string               `json:"paymentID"`
	Staff           domain.StaffRef      `json:"staff"`
	GrossAmount     decimal.Decimal      `json:"grossAmount"`
	TaxAmount       decimal.Decimal      `json:"taxAmount"`
	PensionAmount   decimal.Decimal      `json:"pensionAmount"`
	OtherDeductions decimal.Decimal      `json:"otherDeductions"`
	LoanDeduction   decimal.Decimal      `json:"loanDeduction"`
	TotalDeductions decimal.Decimal      `json:"totalDeductions"`
	NetAmount       decimal.Decimal      `json:"netAmount"`
	SalaryPeriod    string               `json:"salaryPeriod"`
	PaymentDate     time.Time            `json:"paymentDate"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
	ReferenceNumber string               `json:"referenceNumber"`
	Notes           string               `json:"notes"`
	Status          domain.PaymentStatus `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ToPaymentResponse converts a domain.PaymentRecord to PaymentResponse DTO.
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		Staff:           p.Staff,
		GrossAmount:     p.GrossAmount,
		TaxAmount:       p.TaxAmount,
		PensionAmount:   p.PensionAmount,
		OtherDeductions: p.OtherDeductions,
		LoanDeduction:   p.LoanDeduction,
		TotalDeductions: p.TotalDeductions,
		NetAmount:       p.NetAmount,
		SalaryPeriod:    p.SalaryPeriod,
		PaymentDate:     p.PaymentDate,
		PaymentMethod:   p.PaymentMethod,
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
	}
}

// ListPaymentsParams holds parameters for listing payment records.
type ListPaymentsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse is the paginated payment list response.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponses converts a slice of domain.PaymentRecord to DTOs.
func ToPaymentResponses(payments []domain.PaymentRecord) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
