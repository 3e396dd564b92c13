package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a salary payment was made.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentCash         PaymentMethod = "Cash"
	PaymentCheque       PaymentMethod = "Cheque"
	PaymentMobileMoney  PaymentMethod = "Mobile Money"
)

// ValidPaymentMethod reports whether m is a recognised payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentBankTransfer, PaymentCash, PaymentCheque, PaymentMobileMoney:
		return true
	}
	return false
}

// PaymentStatus indicates the state of a payment record.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentVoided    PaymentStatus = "voided" // compensating record, never an edit
)

// PaymentRecord is an immutable snapshot of a settlement plus its payment
// metadata. Records are append-only: corrections happen via new
// compensating records, not edits.
type PaymentRecord struct {
	PaymentID string   `json:"paymentID"` // Primary Key (e.g., UUID)
	Staff     StaffRef `json:"staff"`

	// Snapshot of the SettlementResult at commit time.
	GrossAmount     decimal.Decimal `json:"grossAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	PensionAmount   decimal.Decimal `json:"pensionAmount"`
	OtherDeductions decimal.Decimal `json:"otherDeductions"`
	LoanDeduction   decimal.Decimal `json:"loanDeduction"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetAmount       decimal.Decimal `json:"netAmount"`

	SalaryPeriod    string        `json:"salaryPeriod"` // e.g., "2026-08"
	PaymentDate     time.Time     `json:"paymentDate"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	ReferenceNumber string        `json:"referenceNumber"` // Nullable
	Notes           string        `json:"notes"`           // Nullable
	Status          PaymentStatus `json:"status"`
	AuditFields
}
