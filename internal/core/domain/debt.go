package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType indicates the direction of a company debt.
type DebtType string

const (
	OwedToCompany DebtType = "owed_to_company"
	OwedByCompany DebtType = "owed_by_company"
)

// DebtStatus is derived from the ledger balance, except WrittenOff which is
// a terminal manual override.
type DebtStatus string

const (
	DebtPending       DebtStatus = "pending"
	DebtPartiallyPaid DebtStatus = "partially_paid"
	DebtPaid          DebtStatus = "paid"
	DebtWrittenOff    DebtStatus = "written_off"
)

// DebtTransactionType classifies a ledger entry against a debt.
type DebtTransactionType string

const (
	DebtTxnPayment        DebtTransactionType = "payment"
	DebtTxnAdjustment     DebtTransactionType = "adjustment"
	DebtTxnGift           DebtTransactionType = "gift"
	DebtTxnAdditionalDebt DebtTransactionType = "additional_debt"
)

// ValidDebtTransactionType reports whether t is a recognised ledger entry type.
func ValidDebtTransactionType(t DebtTransactionType) bool {
	switch t {
	case DebtTxnPayment, DebtTxnAdjustment, DebtTxnGift, DebtTxnAdditionalDebt:
		return true
	}
	return false
}

// CompanyDebt is a standing balance between the company and a staff member,
// independent of the regular salary cycle. Its Outstanding balance and
// Status are derived from the append-only history ledger; the invariant is
// OriginalAmount plus all history deltas equals Outstanding.
type CompanyDebt struct {
	DebtID         string          `json:"debtID"` // Primary Key (e.g., UUID)
	Staff          StaffRef        `json:"staff"`
	OriginalAmount decimal.Decimal `json:"originalAmount"` // > 0
	Outstanding    decimal.Decimal `json:"outstanding"`
	DebtType       DebtType        `json:"debtType"`
	Status         DebtStatus      `json:"status"`
	Reason         string          `json:"reason"`
	AuditFields
}

// DebtHistoryEntry is one append-only ledger line against a CompanyDebt.
type DebtHistoryEntry struct {
	EntryID         string              `json:"entryID"` // Primary Key (e.g., UUID)
	DebtID          string              `json:"debtID"`  // FK -> CompanyDebt.debtID
	Amount          decimal.Decimal     `json:"amount"`  // > 0 except write-off markers
	TransactionType DebtTransactionType `json:"transactionType"`
	Reason          string              `json:"reason"`
	RecordedAt      time.Time           `json:"recordedAt"`
	RecordedBy      string              `json:"recordedBy"` // UserID Reference
}
