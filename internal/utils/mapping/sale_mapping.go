package mapping

import (
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
)

// ToModelSale converts a domain SaleRecord to its model row. Items are
// mapped separately since they live in their own table.
func ToModelSale(d domain.SaleRecord) models.Sale {
	return models.Sale{
		SaleID:        d.SaleID,
		TotalAmount:   d.TotalAmount,
		PaymentMethod: string(d.PaymentMethod),
		SaleDate:      d.SaleDate,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToModelSaleItem converts a domain SaleItem to its model row
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		SaleItemID: d.SaleItemID,
		SaleID:     d.SaleID,
		ItemName:   d.ItemName,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
		LineTotal:  d.LineTotal,
	}
}

// ToDomainSale converts a sale row and its item rows to the domain SaleRecord
func ToDomainSale(m models.Sale, items []models.SaleItem) domain.SaleRecord {
	ds := make([]domain.SaleItem, len(items))
	for i, item := range items {
		ds[i] = domain.SaleItem{
			SaleItemID: item.SaleItemID,
			SaleID:     item.SaleID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  item.LineTotal,
		}
	}
	return domain.SaleRecord{
		SaleID:        m.SaleID,
		Items:         ds,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		SaleDate:      m.SaleDate,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
