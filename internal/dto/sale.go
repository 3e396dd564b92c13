package dto

import (
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one cart line in a sale being recorded.
type SaleItemRequest struct {
	ItemName  string          `json:"itemName" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// RecordSaleRequest defines the payload for recording a completed sale.
// Totals are computed server-side from the items.
type RecordSaleRequest struct {
	Items         []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
	SaleDate      time.Time            `json:"saleDate" binding:"required"`
	Notes         string               `json:"notes"`
}

// ListSalesParams holds query parameters for listing sales.
type ListSalesParams struct {
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
	Limit  int        `form:"limit"`
	Offset int        `form:"offset"`
}

// SaleItemResponse defines one sale line returned to clients.
type SaleItemResponse struct {
	SaleItemID string          `json:"saleItemID"`
	ItemName   string          `json:"itemName"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// SaleResponse defines the sale data returned to clients.
type SaleResponse struct {
	SaleID        string               `json:"saleID"`
	Items         []SaleItemResponse   `json:"items"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	SaleDate      time.Time            `json:"saleDate"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ToSaleResponse converts a domain.SaleRecord to its DTO.
func ToSaleResponse(s *domain.SaleRecord) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			SaleItemID: item.SaleItemID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  item.LineTotal,
		}
	}
	return SaleResponse{
		SaleID:        s.SaleID,
		Items:         items,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		SaleDate:      s.SaleDate,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
	}
}

// ToSaleResponses converts a slice of sales to DTOs.
func ToSaleResponses(sales []domain.SaleRecord) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}
