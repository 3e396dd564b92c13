package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the database row for a salary advance.
type Loan struct {
	LoanID       string          `db:"loan_id"`
	StaffKind    string          `db:"staff_kind"`
	StaffID      string          `db:"staff_id"`
	Amount       decimal.Decimal `db:"amount"`
	LoanDate     time.Time       `db:"loan_date"`
	Reason       string          `db:"reason"`
	IsPaid       bool            `db:"is_paid"`
	DeductedDate *time.Time      `db:"deducted_date"`
	AuditFields
}
