package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rider is a delivery agent who takes goods on credit and settles later.
// CreditBalance is what the rider currently owes the company; it grows when
// goods go out on credit and shrinks when the rider pays.
type Rider struct {
	RiderID       string          `json:"riderID"` // Primary Key (e.g., UUID)
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// RiderPayment is one payment a rider made against their credit balance.
// Payments are append-only; the balance is adjusted in the same transaction.
type RiderPayment struct {
	RiderPaymentID string          `json:"riderPaymentID"` // Primary Key (e.g., UUID)
	RiderID        string          `json:"riderID"`        // FK -> Rider.riderID
	Amount         decimal.Decimal `json:"amount"`         // > 0
	PaymentDate    time.Time       `json:"paymentDate"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Notes          string          `json:"notes"`
	AuditFields
}
