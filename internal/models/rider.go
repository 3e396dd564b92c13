package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rider is the database row for a delivery rider.
type Rider struct {
	RiderID       string          `db:"rider_id"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	CreditBalance decimal.Decimal `db:"credit_balance"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}

// RiderPayment is the database row for one payment a rider made.
type RiderPayment struct {
	RiderPaymentID string          `db:"rider_payment_id"`
	RiderID        string          `db:"rider_id"`
	Amount         decimal.Decimal `db:"amount"`
	PaymentDate    time.Time       `db:"payment_date"`
	PaymentMethod  string          `db:"payment_method"`
	Notes          string          `db:"notes"`
	AuditFields
}
