package domain

import "github.com/shopspring/decimal"

// SalaryType indicates the cadence a staff member is paid on.
type SalaryType string

const (
	SalaryMonthly SalaryType = "monthly"
	SalaryWeekly  SalaryType = "weekly"
	SalaryDaily   SalaryType = "daily"
)

// ValidSalaryType reports whether t is a recognised salary cadence.
func ValidSalaryType(t SalaryType) bool {
	return t == SalaryMonthly || t == SalaryWeekly || t == SalaryDaily
}

// CompensationProfile is a staff member's salary structure. Profiles are
// never deleted or edited in place: an "update salary structure" action
// writes a new row with a bumped Version and the previous row is retained.
type CompensationProfile struct {
	ProfileID       string          `json:"profileID"` // Primary Key (e.g., UUID)
	Staff           StaffRef        `json:"staff"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`      // >= 0
	Allowances      decimal.Decimal `json:"allowances"`      // >= 0
	OtherDeductions decimal.Decimal `json:"otherDeductions"` // >= 0, default discretionary deduction
	TaxRate         decimal.Decimal `json:"taxRate"`         // percentage, 0-100
	PensionRate     decimal.Decimal `json:"pensionRate"`     // percentage, 0-100
	SalaryType      SalaryType      `json:"salaryType"`
	BankName        string          `json:"bankName"`    // opaque display strings
	BankAccount     string          `json:"bankAccount"` //
	Version         int             `json:"version"`     // increments on supersede
	IsCurrent       bool            `json:"isCurrent"`
	AuditFields
}
