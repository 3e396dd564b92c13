package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyDebt is the database row for a standing balance between the
// company and a staff member.
type CompanyDebt struct {
	DebtID         string          `db:"debt_id"`
	StaffKind      string          `db:"staff_kind"`
	StaffID        string          `db:"staff_id"`
	OriginalAmount decimal.Decimal `db:"original_amount"`
	Outstanding    decimal.Decimal `db:"outstanding"`
	DebtType       string          `db:"debt_type"`
	Status         string          `db:"status"`
	Reason         string          `db:"reason"`
	AuditFields
}

// DebtHistoryEntry is the database row for one ledger line against a debt.
type DebtHistoryEntry struct {
	EntryID         string          `db:"entry_id"`
	DebtID          string          `db:"debt_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type"`
	Reason          string          `db:"reason"`
	RecordedAt      time.Time       `db:"recorded_at"`
	RecordedBy      string          `db:"recorded_by"`
}
