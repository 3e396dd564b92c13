package mapping

import (
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
)

// ToModelCompanyDebt converts a domain CompanyDebt to its model row
func ToModelCompanyDebt(d domain.CompanyDebt) models.CompanyDebt {
	return models.CompanyDebt{
		DebtID:         d.DebtID,
		StaffKind:      string(d.Staff.Kind),
		StaffID:        d.Staff.ID,
		OriginalAmount: d.OriginalAmount,
		Outstanding:    d.Outstanding,
		DebtType:       string(d.DebtType),
		Status:         string(d.Status),
		Reason:         d.Reason,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompanyDebt converts a model row to the domain CompanyDebt
func ToDomainCompanyDebt(m models.CompanyDebt) domain.CompanyDebt {
	return domain.CompanyDebt{
		DebtID:         m.DebtID,
		Staff:          domain.StaffRef{Kind: domain.StaffKind(m.StaffKind), ID: m.StaffID},
		OriginalAmount: m.OriginalAmount,
		Outstanding:    m.Outstanding,
		DebtType:       domain.DebtType(m.DebtType),
		Status:         domain.DebtStatus(m.Status),
		Reason:         m.Reason,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanyDebtSlice converts model rows to domain CompanyDebts
func ToDomainCompanyDebtSlice(ms []models.CompanyDebt) []domain.CompanyDebt {
	ds := make([]domain.CompanyDebt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompanyDebt(m)
	}
	return ds
}

// ToModelDebtHistoryEntry converts a domain ledger entry to its model row
func ToModelDebtHistoryEntry(d domain.DebtHistoryEntry) models.DebtHistoryEntry {
	return models.DebtHistoryEntry{
		EntryID:         d.EntryID,
		DebtID:          d.DebtID,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		Reason:          d.Reason,
		RecordedAt:      d.RecordedAt,
		RecordedBy:      d.RecordedBy,
	}
}

// ToDomainDebtHistoryEntry converts a model row to the domain ledger entry
func ToDomainDebtHistoryEntry(m models.DebtHistoryEntry) domain.DebtHistoryEntry {
	return domain.DebtHistoryEntry{
		EntryID:         m.EntryID,
		DebtID:          m.DebtID,
		Amount:          m.Amount,
		TransactionType: domain.DebtTransactionType(m.TransactionType),
		Reason:          m.Reason,
		RecordedAt:      m.RecordedAt,
		RecordedBy:      m.RecordedBy,
	}
}

// ToDomainDebtHistoryEntrySlice converts model rows to domain ledger entries
func ToDomainDebtHistoryEntrySlice(ms []models.DebtHistoryEntry) []domain.DebtHistoryEntry {
	ds := make([]domain.DebtHistoryEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebtHistoryEntry(m)
	}
	return ds
}
