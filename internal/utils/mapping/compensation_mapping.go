package mapping

import (
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
)

// ToModelCompensationProfile converts a domain profile to its model row
func ToModelCompensationProfile(d domain.CompensationProfile) models.CompensationProfile {
	return models.CompensationProfile{
		ProfileID:       d.ProfileID,
		StaffKind:       string(d.Staff.Kind),
		StaffID:         d.Staff.ID,
		BaseSalary:      d.BaseSalary,
		Allowances:      d.Allowances,
		OtherDeductions: d.OtherDeductions,
		TaxRate:         d.TaxRate,
		PensionRate:     d.PensionRate,
		SalaryType:      string(d.SalaryType),
		BankName:        d.BankName,
		BankAccount:     d.BankAccount,
		Version:         d.Version,
		IsCurrent:       d.IsCurrent,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompensationProfile converts a model row to the domain profile
func ToDomainCompensationProfile(m models.CompensationProfile) domain.CompensationProfile {
	return domain.CompensationProfile{
		ProfileID:       m.ProfileID,
		Staff:           domain.StaffRef{Kind: domain.StaffKind(m.StaffKind), ID: m.StaffID},
		BaseSalary:      m.BaseSalary,
		Allowances:      m.Allowances,
		OtherDeductions: m.OtherDeductions,
		TaxRate:         m.TaxRate,
		PensionRate:     m.PensionRate,
		SalaryType:      domain.SalaryType(m.SalaryType),
		BankName:        m.BankName,
		BankAccount:     m.BankAccount,
		Version:         m.Version,
		IsCurrent:       m.IsCurrent,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompensationProfileSlice converts model rows to domain profiles
func ToDomainCompensationProfileSlice(ms []models.CompensationProfile) []domain.CompensationProfile {
	ds := make([]domain.CompensationProfile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompensationProfile(m)
	}
	return ds
}
