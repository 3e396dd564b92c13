package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is one completed point-of-sale checkout: the cart's line items
// plus payment metadata. Records are append-only; a mistaken sale is
// corrected with a new record, not an edit.
type SaleRecord struct {
	SaleID        string          `json:"saleID"` // Primary Key (e.g., UUID)
	Items         []SaleItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"` // sum of line totals
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	SaleDate      time.Time       `json:"saleDate"`
	Notes         string          `json:"notes"`
	AuditFields
}

// SaleItem is one cart line: a product at a unit price and quantity. The
// line total is fixed at recording time so later price changes cannot
// rewrite past sales.
type SaleItem struct {
	SaleItemID string          `json:"saleItemID"` // Primary Key (e.g., UUID)
	SaleID     string          `json:"saleID"`     // FK -> SaleRecord.saleID
	ItemName   string          `json:"itemName"`
	Quantity   int             `json:"quantity"`  // > 0
	UnitPrice  decimal.Decimal `json:"unitPrice"` // >= 0
	LineTotal  decimal.Decimal `json:"lineTotal"` // unit price * quantity
}
