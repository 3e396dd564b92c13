package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRecord is a salary advance granted to a staff member. It is created
// once when the loan is granted and flips IsPaid exactly once, at the moment
// its amount is folded into a salary settlement.
type LoanRecord struct {
	LoanID       string          `json:"loanID"` // Primary Key (e.g., UUID)
	Staff        StaffRef        `json:"staff"`
	Amount       decimal.Decimal `json:"amount"` // > 0
	LoanDate     time.Time       `json:"loanDate"`
	Reason       string          `json:"reason"` // Nullable free text
	IsPaid       bool            `json:"isPaid"`
	DeductedDate *time.Time      `json:"deductedDate,omitempty"` // set when folded into a settlement
	AuditFields
}
