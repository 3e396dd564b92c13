package models

import "github.com/shopspring/decimal"

// CompensationProfile is the database row for a salary structure version.
// The staff reference is stored as the (staff_kind, staff_id) pair.
type CompensationProfile struct {
	ProfileID       string          `db:"profile_id"`
	StaffKind       string          `db:"staff_kind"`
	StaffID         string          `db:"staff_id"`
	BaseSalary      decimal.Decimal `db:"base_salary"`
	Allowances      decimal.Decimal `db:"allowances"`
	OtherDeductions decimal.Decimal `db:"other_deductions"`
	TaxRate         decimal.Decimal `db:"tax_rate"`
	PensionRate     decimal.Decimal `db:"pension_rate"`
	SalaryType      string          `db:"salary_type"`
	BankName        string          `db:"bank_name"`
	BankAccount     string          `db:"bank_account"`
	Version         int             `db:"version"`
	IsCurrent       bool            `db:"is_current"`
	AuditFields
}
