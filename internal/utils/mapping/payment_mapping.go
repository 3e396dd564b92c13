package mapping

import (
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
)

// ToModelPayment converts a domain PaymentRecord to its model row
func ToModelPayment(d domain.PaymentRecord) models.Payment {
	return models.Payment{
		PaymentID:       d.PaymentID,
		StaffKind:       string(d.Staff.Kind),
		StaffID:         d.Staff.ID,
		GrossAmount:     d.GrossAmount,
		TaxAmount:       d.TaxAmount,
		PensionAmount:   d.PensionAmount,
		OtherDeductions: d.OtherDeductions,
		LoanDeduction:   d.LoanDeduction,
		TotalDeductions: d.TotalDeductions,
		NetAmount:       d.NetAmount,
		SalaryPeriod:    d.SalaryPeriod,
		PaymentDate:     d.PaymentDate,
		PaymentMethod:   string(d.PaymentMethod),
		ReferenceNumber: d.ReferenceNumber,
		Notes:           d.Notes,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model row to the domain PaymentRecord
func ToDomainPayment(m models.Payment) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:       m.PaymentID,
		Staff:           domain.StaffRef{Kind: domain.StaffKind(m.StaffKind), ID: m.StaffID},
		GrossAmount:     m.GrossAmount,
		TaxAmount:       m.TaxAmount,
		PensionAmount:   m.PensionAmount,
		OtherDeductions: m.OtherDeductions,
		LoanDeduction:   m.LoanDeduction,
		TotalDeductions: m.TotalDeductions,
		NetAmount:       m.NetAmount,
		SalaryPeriod:    m.SalaryPeriod,
		PaymentDate:     m.PaymentDate,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		Status:          domain.PaymentStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts model rows to domain PaymentRecords
func ToDomainPaymentSlice(ms []models.Payment) []domain.PaymentRecord {
	ds := make([]domain.PaymentRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
