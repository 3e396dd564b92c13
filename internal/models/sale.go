package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the database row for a point-of-sale checkout.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentMethod string          `db:"payment_method"`
	SaleDate      time.Time       `db:"sale_date"`
	Notes         string          `db:"notes"`
	AuditFields
}

// SaleItem is the database row for one line of a sale.
type SaleItem struct {
	SaleItemID string          `db:"sale_item_id"`
	SaleID     string          `db:"sale_id"`
	ItemName   string          `db:"item_name"`
	Quantity   int             `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	LineTotal  decimal.Decimal `db:"line_total"`
}
