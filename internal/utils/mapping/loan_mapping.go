package mapping

import (
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
)

// ToModelLoan converts a domain LoanRecord to its model row
func ToModelLoan(d domain.LoanRecord) models.Loan {
	return models.Loan{
		LoanID:       d.LoanID,
		StaffKind:    string(d.Staff.Kind),
		StaffID:      d.Staff.ID,
		Amount:       d.Amount,
		LoanDate:     d.LoanDate,
		Reason:       d.Reason,
		IsPaid:       d.IsPaid,
		DeductedDate: d.DeductedDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model row to the domain LoanRecord
func ToDomainLoan(m models.Loan) domain.LoanRecord {
	return domain.LoanRecord{
		LoanID:       m.LoanID,
		Staff:        domain.StaffRef{Kind: domain.StaffKind(m.StaffKind), ID: m.StaffID},
		Amount:       m.Amount,
		LoanDate:     m.LoanDate,
		Reason:       m.Reason,
		IsPaid:       m.IsPaid,
		DeductedDate: m.DeductedDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoanSlice converts model rows to domain LoanRecords
func ToDomainLoanSlice(ms []models.Loan) []domain.LoanRecord {
	ds := make([]domain.LoanRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoan(m)
	}
	return ds
}
