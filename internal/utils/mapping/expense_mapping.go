package mapping

import (
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
)

// ToModelExpense converts a domain OperatingExpense to its model row
func ToModelExpense(d domain.OperatingExpense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Category:    d.Category,
		Amount:      d.Amount,
		ExpenseDate: d.ExpenseDate,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainExpense converts a model row to the domain OperatingExpense
func ToDomainExpense(m models.Expense) domain.OperatingExpense {
	return domain.OperatingExpense{
		ExpenseID:   m.ExpenseID,
		Category:    m.Category,
		Amount:      m.Amount,
		ExpenseDate: m.ExpenseDate,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainExpenseSlice converts model rows to domain OperatingExpenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.OperatingExpense {
	ds := make([]domain.OperatingExpense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
