package domain

import "github.com/shopspring/decimal"

// SettlementOverrides lets the operator override profile rates for a single
// settlement without touching the stored salary structure. Nil fields fall
// back to the profile's stored values.
type SettlementOverrides struct {
	TaxRate         *decimal.Decimal `json:"taxRate,omitempty"`         // percentage, 0-100
	PensionRate     *decimal.Decimal `json:"pensionRate,omitempty"`     // percentage, 0-100
	OtherDeductions *decimal.Decimal `json:"otherDeductions,omitempty"` // >= 0
}

// SettlementResult is derived fresh on every computation and never
// persisted as its own entity. NetAmount may be negative; the commit step
// rejects negative settlements, not the computation.
type SettlementResult struct {
	GrossAmount     decimal.Decimal `json:"grossAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	PensionAmount   decimal.Decimal `json:"pensionAmount"`
	OtherDeductions decimal.Decimal `json:"otherDeductions"`
	LoanDeduction   decimal.Decimal `json:"loanDeduction"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetAmount       decimal.Decimal `json:"netAmount"`
}
