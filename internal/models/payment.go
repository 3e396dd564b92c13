package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database row for a committed salary settlement.
type Payment struct {
	PaymentID       string          `db:"payment_id"`
	StaffKind       string          `db:"staff_kind"`
	StaffID         string          `db:"staff_id"`
	GrossAmount     decimal.Decimal `db:"gross_amount"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
	PensionAmount   decimal.Decimal `db:"pension_amount"`
	OtherDeductions decimal.Decimal `db:"other_deductions"`
	LoanDeduction   decimal.Decimal `db:"loan_deduction"`
	TotalDeductions decimal.Decimal `db:"total_deductions"`
	NetAmount       decimal.Decimal `db:"net_amount"`
	SalaryPeriod    string          `db:"salary_period"`
	PaymentDate     time.Time       `db:"payment_date"`
	PaymentMethod   string          `db:"payment_method"`
	ReferenceNumber string          `db:"reference_number"`
	Notes           string          `db:"notes"`
	Status          string          `db:"status"`
	AuditFields
}
