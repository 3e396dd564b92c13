package dto

import (
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRiderRequest defines the payload for registering a delivery rider.
type CreateRiderRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// AdjustRiderCreditRequest defines the payload for adding goods-on-credit
// to a rider's balance.
type AdjustRiderCreditRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes"`
}

// RiderPaymentRequest defines the payload for recording a rider's payment
// against their credit balance.
type RiderPaymentRequest struct {
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	PaymentDate   time.Time            `json:"paymentDate" binding:"required"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
	Notes         string               `json:"notes"`
}

// RiderResponse defines the rider data returned to clients.
type RiderResponse struct {
	RiderID       string          `json:"riderID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToRiderResponse converts a domain.Rider to RiderResponse DTO.
func ToRiderResponse(r *domain.Rider) RiderResponse {
	return RiderResponse{
		RiderID:       r.RiderID,
		Name:          r.Name,
		Phone:         r.Phone,
		CreditBalance: r.CreditBalance,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
	}
}

// ToRiderResponses converts a slice of domain.Rider to DTOs.
func ToRiderResponses(riders []domain.Rider) []RiderResponse {
	responses := make([]RiderResponse, len(riders))
	for i := range riders {
		responses[i] = ToRiderResponse(&riders[i])
	}
	return responses
}

// RiderPaymentResponse defines a rider payment returned to clients.
type RiderPaymentResponse struct {
	RiderPaymentID string               `json:"riderPaymentID"`
	RiderID        string               `json:"riderID"`
	Amount         decimal.Decimal      `json:"amount"`
	PaymentDate    time.Time            `json:"paymentDate"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod"`
	Notes          string               `json:"notes"`
}

// ToRiderPaymentResponse converts a rider payment to its DTO.
func ToRiderPaymentResponse(p *domain.RiderPayment) RiderPaymentResponse {
	return RiderPaymentResponse{
		RiderPaymentID: p.RiderPaymentID,
		RiderID:        p.RiderID,
		Amount:         p.Amount,
		PaymentDate:    p.PaymentDate,
		PaymentMethod:  p.PaymentMethod,
		Notes:          p.Notes,
	}
}

// ToRiderPaymentResponses converts a slice of rider payments to DTOs.
func ToRiderPaymentResponses(payments []domain.RiderPayment) []RiderPaymentResponse {
	responses := make([]RiderPaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToRiderPaymentResponse(&p)
	}
	return responses
}
